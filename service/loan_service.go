package service

import (
	"encoding/json"

	"go.uber.org/zap"

	"mortgage-engine/domain"
	"mortgage-engine/repository"
)

type LoanService struct {
	cache   repository.CacheRepository
	logger  *zap.Logger
	payment func(loanAmount, annualRatePercent float64, termYears int) float64
}

// NewLoanService creates a new LoanService. A nil cache disables caching.
func NewLoanService(cache repository.CacheRepository, logger *zap.Logger) *LoanService {
	return &LoanService{cache: cache, logger: logger, payment: monthlyPayment}
}

// CalculateLoan quotes the monthly payment and lifetime cost of a scenario.
func (s *LoanService) CalculateLoan(input domain.LoanScenario) (domain.LoanQuote, error) {
	if err := validateScenario(input.LoanAmount, input.Rate, input.TermYears); err != nil {
		return domain.LoanQuote{}, err
	}

	key, keyErr := repository.ScenarioKey("quote", input)
	if s.cache != nil && keyErr == nil {
		if cached, ok := s.cache.Get(key); ok {
			var quote domain.LoanQuote
			if err := json.Unmarshal([]byte(cached), &quote); err == nil {
				return quote, nil
			}
			s.logger.Warn("discarding unreadable cached quote", zap.String("key", key))
		}
	}

	payment := s.payment(input.LoanAmount, input.Rate, input.TermYears)
	total := payment * float64(input.TermYears*monthsPerYear)

	quote := domain.LoanQuote{
		LoanAmount:     roundTo2Decimals(input.LoanAmount),
		Rate:           roundRate(input.Rate),
		TermYears:      input.TermYears,
		MonthlyPayment: roundTo2Decimals(payment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - input.LoanAmount),
	}

	// Caching is best effort.
	if s.cache != nil && keyErr == nil {
		if encoded, err := json.Marshal(quote); err == nil {
			if err := s.cache.Set(key, string(encoded)); err != nil {
				s.logger.Warn("failed to cache loan quote", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return quote, nil
}
