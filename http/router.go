package http

import (
	"net/http"

	"go.uber.org/zap"

	"mortgage-engine/service"
)

// HealthCheck reports whether a dependency the server relies on is usable.
type HealthCheck func() error

// NewRouter exposes every engine operation as a rate limited JSON endpoint.
// health may be nil.
func NewRouter(
	engine *service.Engine,
	limiter *RateLimiter,
	metrics *Metrics,
	health HealthCheck,
	logger *zap.Logger,
) http.Handler {
	loanHandler := NewLoanHandler(engine.Loans, logger)
	termHandler := NewTermRecommendationHandler(engine.Terms, logger)
	buydownHandler := NewBuydownHandler(engine.Buydowns, logger)
	pointsHandler := NewPointsHandler(engine.Points, logger)
	rateLockHandler := NewRateLockHandler(engine.RateLocks, logger)
	closingCostHandler := NewClosingCostHandler(engine.ClosingCosts, logger)
	insuranceHandler := NewMortgageInsuranceHandler(engine.Insurance, logger)

	routes := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{"/v1/loan/quote", loanHandler.CalculateLoan},
		{"/v1/loan/recommend-term", termHandler.RecommendTerm},

		{"/v1/buydown", buydownHandler.CalculateBuydown},
		{"/v1/buydown/subsidy", buydownHandler.CalculateSubsidy},
		{"/v1/buydown/seller-concession", buydownHandler.CalculateSellerConcession},
		{"/v1/buydown/compare", buydownHandler.CompareTypes},
		{"/v1/buydown/payment-shock", buydownHandler.CalculatePaymentShock},

		{"/v1/points/break-even", pointsHandler.CalculateBreakEven},
		{"/v1/points/cost", pointsHandler.CalculateCost},
		{"/v1/points/vs-credits", pointsHandler.CompareCredits},

		{"/v1/rate-lock/tiers", rateLockHandler.FeeSchedule},
		{"/v1/rate-lock/fee", rateLockHandler.CalculateLockFee},
		{"/v1/rate-lock/extension", rateLockHandler.CalculateExtensionFee},
		{"/v1/rate-lock/compare", rateLockHandler.CompareLockVsFloat},
		{"/v1/rate-lock/float-down", rateLockHandler.CalculateFloatDown},

		{"/v1/closing-costs", closingCostHandler.CalculateClosingCosts},
		{"/v1/closing-costs/cash-to-close", closingCostHandler.CalculateCashToClose},

		{"/v1/mortgage-insurance", insuranceHandler.CalculateInsurance},
		{"/v1/mortgage-insurance/pmi-dropoff", insuranceHandler.CalculateDropoff},
	}

	mux := http.NewServeMux()
	for _, route := range routes {
		mux.Handle(
			route.pattern,
			metrics.Instrument(
				route.pattern,
				RateLimitMiddleware(limiter, logger, route.handler),
			),
		)
	}

	mux.Handle("/healthz", healthHandler(health, logger))
	mux.Handle("/metrics", metrics.Handler())

	return RequestIDMiddleware(AccessLogMiddleware(logger, mux))
}

func healthHandler(health HealthCheck, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if health != nil {
			if err := health(); err != nil {
				logger.Warn("health check failed", zap.Error(err))
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		writeJSON(w, logger, map[string]string{"status": "ok"})
	})
}
