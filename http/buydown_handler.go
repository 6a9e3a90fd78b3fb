package http

import (
	"net/http"

	"go.uber.org/zap"

	"mortgage-engine/service"
)

type BuydownHandler struct {
	service *service.BuydownService
	logger  *zap.Logger
}

func NewBuydownHandler(service *service.BuydownService, logger *zap.Logger) *BuydownHandler {
	return &BuydownHandler{service: service, logger: logger}
}

func (h *BuydownHandler) CalculateBuydown(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculateBuydown)
}

func (h *BuydownHandler) CalculateSubsidy(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculateBuydownSubsidy)
}

func (h *BuydownHandler) CalculateSellerConcession(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculateSellerConcessionBuydown)
}

func (h *BuydownHandler) CompareTypes(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CompareBuydownTypes)
}

func (h *BuydownHandler) CalculatePaymentShock(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculatePaymentShock)
}
