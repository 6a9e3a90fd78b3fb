package http

import (
	"net/http"

	"go.uber.org/zap"

	"mortgage-engine/service"
)

type ClosingCostHandler struct {
	service *service.ClosingCostService
	logger  *zap.Logger
}

func NewClosingCostHandler(service *service.ClosingCostService, logger *zap.Logger) *ClosingCostHandler {
	return &ClosingCostHandler{service: service, logger: logger}
}

func (h *ClosingCostHandler) CalculateClosingCosts(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculateClosingCosts)
}

func (h *ClosingCostHandler) CalculateCashToClose(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculateCashToClose)
}
