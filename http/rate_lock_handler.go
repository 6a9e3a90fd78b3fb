package http

import (
	"net/http"

	"go.uber.org/zap"

	"mortgage-engine/service"
)

type RateLockHandler struct {
	service *service.RateLockService
	logger  *zap.Logger
}

func NewRateLockHandler(service *service.RateLockService, logger *zap.Logger) *RateLockHandler {
	return &RateLockHandler{service: service, logger: logger}
}

// FeeSchedule lists the lock fee tiers.
func (h *RateLockHandler) FeeSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.logger, service.LockFeeSchedule())
}

func (h *RateLockHandler) CalculateLockFee(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculateLockFee)
}

func (h *RateLockHandler) CalculateExtensionFee(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculateExtensionFee)
}

func (h *RateLockHandler) CompareLockVsFloat(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CompareLockVsFloat)
}

func (h *RateLockHandler) CalculateFloatDown(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculateFloatDownValue)
}
