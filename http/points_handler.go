package http

import (
	"net/http"

	"go.uber.org/zap"

	"mortgage-engine/service"
)

type PointsHandler struct {
	service *service.PointsService
	logger  *zap.Logger
}

func NewPointsHandler(service *service.PointsService, logger *zap.Logger) *PointsHandler {
	return &PointsHandler{service: service, logger: logger}
}

func (h *PointsHandler) CalculateBreakEven(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculatePointsBreakEven)
}

func (h *PointsHandler) CalculateCost(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculatePointsCost)
}

func (h *PointsHandler) CompareCredits(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.ComparePointsVsCredits)
}
