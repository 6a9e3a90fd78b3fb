package http

import (
	"net/http"

	"go.uber.org/zap"

	"mortgage-engine/service"
)

type MortgageInsuranceHandler struct {
	service *service.MortgageInsuranceService
	logger  *zap.Logger
}

func NewMortgageInsuranceHandler(service *service.MortgageInsuranceService, logger *zap.Logger) *MortgageInsuranceHandler {
	return &MortgageInsuranceHandler{service: service, logger: logger}
}

func (h *MortgageInsuranceHandler) CalculateInsurance(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculateMortgageInsurance)
}

func (h *MortgageInsuranceHandler) CalculateDropoff(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, h.service.CalculatePMIDropoff)
}
