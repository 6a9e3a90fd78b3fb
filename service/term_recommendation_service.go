package service

import (
	"sort"

	"go.uber.org/zap"

	"mortgage-engine/domain"
)

// recommendedTerms are the fixed-rate terms lenders commonly offer.
var recommendedTerms = []int{10, 15, 20, 25, 30}

// termWeights blends the interest, payment and term scores per preference.
var termWeights = map[domain.TermPreference]struct{ interest, payment, term float64 }{
	domain.PreferMinimizeInterest: {0.6, 0.2, 0.2},
	domain.PreferMinimizePayment:  {0.2, 0.6, 0.2},
	domain.PreferBalanced:         {0.4, 0.4, 0.2},
}

var termReasons = map[domain.TermPreference]string{
	domain.PreferMinimizeInterest: "Term chosen to minimize total interest cost",
	domain.PreferMinimizePayment:  "Term chosen to minimize the monthly payment",
	domain.PreferBalanced:         "Best balance between monthly payment and total cost",
}

const alternativeReason = "Affordable alternative term"

type TermRecommendationService struct {
	loanService *LoanService
	logger      *zap.Logger
}

func NewTermRecommendationService(loanService *LoanService, logger *zap.Logger) *TermRecommendationService {
	return &TermRecommendationService{
		loanService: loanService,
		logger:      logger,
	}
}

// RecommendTerm quotes every common term, drops those above the payment cap
// and ranks the rest by preference.
func (s *TermRecommendationService) RecommendTerm(input domain.TermRecommendationInput) (domain.TermRecommendationResult, error) {
	if err := validateNonNegative("max monthly payment", input.MaxMonthlyPayment); err != nil {
		return domain.TermRecommendationResult{}, err
	}

	preference := input.Preference
	if preference == "" {
		preference = domain.PreferBalanced
	}
	weights, ok := termWeights[preference]
	if !ok {
		return domain.TermRecommendationResult{}, invalidScenario("unknown term preference %q", input.Preference)
	}

	quotes := make([]domain.LoanQuote, 0, len(recommendedTerms))
	for _, years := range recommendedTerms {
		quote, err := s.loanService.CalculateLoan(domain.LoanScenario{
			LoanAmount: input.LoanAmount,
			Rate:       input.Rate,
			TermYears:  years,
		})
		if err != nil {
			return domain.TermRecommendationResult{}, err
		}
		quotes = append(quotes, quote)
	}

	// Scores are normalized over every offered term, so dropping terms above
	// the payment cap does not change the remaining scores.
	minInterest, maxInterest := quotes[0].TotalInterest, quotes[len(quotes)-1].TotalInterest
	minPayment, maxPayment := quotes[len(quotes)-1].MonthlyPayment, quotes[0].MonthlyPayment
	minTerm, maxTerm := recommendedTerms[0], recommendedTerms[len(recommendedTerms)-1]

	recommendations := make([]domain.TermRecommendation, 0, len(quotes))
	for _, quote := range quotes {
		if input.MaxMonthlyPayment > 0 && quote.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		interestScore := normalizedScore(quote.TotalInterest, minInterest, maxInterest)
		paymentScore := normalizedScore(quote.MonthlyPayment, minPayment, maxPayment)
		termScore := normalizedScore(float64(quote.TermYears), float64(minTerm), float64(maxTerm))

		recommendations = append(recommendations, domain.TermRecommendation{
			TermYears:      quote.TermYears,
			MonthlyPayment: quote.MonthlyPayment,
			TotalInterest:  quote.TotalInterest,
			Score:          roundTo2Decimals(weights.interest*interestScore + weights.payment*paymentScore + weights.term*termScore),
			Reason:         alternativeReason,
		})
	}

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, invalidScenario("no term keeps the payment at or below $%.2f", input.MaxMonthlyPayment)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
	recommendations[0].Reason = termReasons[preference]

	s.logger.Debug("term recommended",
		zap.Int("termYears", recommendations[0].TermYears),
		zap.String("preference", string(preference)),
		zap.Int("candidates", len(recommendations)),
	)

	return domain.TermRecommendationResult{
		RecommendedTerm: recommendations[0].TermYears,
		Preference:      preference,
		Recommendations: recommendations,
	}, nil
}

// normalizedScore maps value onto 0..10 where the low end of the range
// scores 10.
func normalizedScore(value, low, high float64) float64 {
	if high <= low {
		return 10
	}
	return 10 * (high - value) / (high - low)
}
