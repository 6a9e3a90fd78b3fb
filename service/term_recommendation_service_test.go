package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mortgage-engine/domain"
	"mortgage-engine/repository"
)

func newTermService(cache repository.CacheRepository) *TermRecommendationService {
	return NewTermRecommendationService(NewLoanService(cache, zap.NewNop()), zap.NewNop())
}

func TestRecommendTerm_ByPreference(t *testing.T) {
	svc := newTermService(nil)

	tests := []struct {
		preference domain.TermPreference
		term       int
		score      float64
	}{
		{preference: domain.PreferMinimizeInterest, term: 10, score: 8},
		{preference: domain.PreferMinimizePayment, term: 20, score: 6.74},
		{preference: domain.PreferBalanced, term: 15, score: 6.72},
		{preference: "", term: 15, score: 6.72},
	}

	for _, tt := range tests {
		result, err := svc.RecommendTerm(domain.TermRecommendationInput{
			LoanAmount: 400000,
			Rate:       7,
			Preference: tt.preference,
		})
		require.NoError(t, err)

		assert.Equal(t, tt.term, result.RecommendedTerm, "preference %q", tt.preference)
		require.Len(t, result.Recommendations, 5)
		assert.Equal(t, tt.score, result.Recommendations[0].Score)
		assert.NotEqual(t, alternativeReason, result.Recommendations[0].Reason)
		for i := 1; i < len(result.Recommendations); i++ {
			assert.GreaterOrEqual(t, result.Recommendations[i-1].Score, result.Recommendations[i].Score)
			assert.Equal(t, alternativeReason, result.Recommendations[i].Reason)
		}
	}
}

func TestRecommendTerm_PaymentCap(t *testing.T) {
	svc := newTermService(nil)

	result, err := svc.RecommendTerm(domain.TermRecommendationInput{
		LoanAmount:        400000,
		Rate:              7,
		MaxMonthlyPayment: 3000,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, result.RecommendedTerm)
	assert.Equal(t, domain.PreferBalanced, result.Preference)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, 5.26, result.Recommendations[0].Score)
	assert.Equal(t, 30, result.Recommendations[1].TermYears)
	for _, rec := range result.Recommendations {
		assert.LessOrEqual(t, rec.MonthlyPayment, 3000.0)
	}
}

func TestRecommendTerm_UsesQuoteCache(t *testing.T) {
	cache := NewMockCache()
	svc := newTermService(cache)

	input := domain.TermRecommendationInput{LoanAmount: 400000, Rate: 7}
	_, err := svc.RecommendTerm(input)
	require.NoError(t, err)
	assert.Equal(t, len(recommendedTerms), cache.SetCalled)

	_, err = svc.RecommendTerm(input)
	require.NoError(t, err)
	assert.Equal(t, len(recommendedTerms), cache.SetCalled)
}

func TestRecommendTerm_ZeroRate(t *testing.T) {
	svc := newTermService(nil)

	result, err := svc.RecommendTerm(domain.TermRecommendationInput{
		LoanAmount: 360000,
		Rate:       0,
		Preference: domain.PreferMinimizePayment,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, result.RecommendedTerm)
	assert.Zero(t, result.Recommendations[0].TotalInterest)
}

func TestRecommendTerm_Invalid(t *testing.T) {
	svc := newTermService(nil)

	for name, input := range map[string]domain.TermRecommendationInput{
		"unknown preference": {LoanAmount: 400000, Rate: 7, Preference: "cheapest"},
		"negative cap":       {LoanAmount: 400000, Rate: 7, MaxMonthlyPayment: -1},
		"cap too low":        {LoanAmount: 400000, Rate: 7, MaxMonthlyPayment: 1000},
		"no loan":            {Rate: 7},
	} {
		_, err := svc.RecommendTerm(input)
		assert.True(t, errors.Is(err, ErrInvalidScenario), name)
	}
}

func TestNormalizedScore(t *testing.T) {
	assert.Equal(t, 10.0, normalizedScore(1, 1, 5))
	assert.Equal(t, 0.0, normalizedScore(5, 1, 5))
	assert.Equal(t, 5.0, normalizedScore(3, 1, 5))
	assert.Equal(t, 10.0, normalizedScore(3, 3, 3))
}
