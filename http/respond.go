package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mortgage-engine/service"
)

// maxBodyBytes bounds request bodies; every engine input is a small struct.
const maxBodyBytes = 64 << 10

// serveCalculation decodes a JSON input, runs calc and writes the JSON
// result. Invalid scenarios map to 400, anything else to 500.
func serveCalculation[In, Out any](w http.ResponseWriter, r *http.Request, logger *zap.Logger, calc func(In) (Out, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input In
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		logger.Debug("invalid request body", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := calc(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidScenario) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error("calculation failed", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, result)
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 response.
func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}
