package service

import (
	"go.uber.org/zap"

	"mortgage-engine/repository"
)

// Engine bundles the calculation services. The services share no mutable
// state, so one Engine can serve any number of concurrent callers.
type Engine struct {
	Loans        *LoanService
	Terms        *TermRecommendationService
	Buydowns     *BuydownService
	Points       *PointsService
	RateLocks    *RateLockService
	ClosingCosts *ClosingCostService
	Insurance    *MortgageInsuranceService
}

func NewEngine(cache repository.CacheRepository, logger *zap.Logger) *Engine {
	loans := NewLoanService(cache, logger.Named("loans"))
	return &Engine{
		Loans:        loans,
		Terms:        NewTermRecommendationService(loans, logger.Named("terms")),
		Buydowns:     NewBuydownService(logger.Named("buydowns")),
		Points:       NewPointsService(logger.Named("points")),
		RateLocks:    NewRateLockService(logger.Named("rate-locks")),
		ClosingCosts: NewClosingCostService(logger.Named("closing-costs")),
		Insurance:    NewMortgageInsuranceService(logger.Named("insurance")),
	}
}
