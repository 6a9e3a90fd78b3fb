package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment_ReferenceLoan(t *testing.T) {
	payment, err := MonthlyPayment(400000, 7, 30)
	require.NoError(t, err)
	assert.InDelta(t, 2661.21, payment, 0.005)
	assert.Equal(t, 2661.21, roundTo2Decimals(payment))
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	payment, err := MonthlyPayment(360000, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, payment)

	payment, err = MonthlyPayment(1200, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, payment)
}

func TestMonthlyPayment_InvalidScenario(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		years  int
	}{
		{name: "zero amount", amount: 0, rate: 7, years: 30},
		{name: "negative amount", amount: -1, rate: 7, years: 30},
		{name: "NaN amount", amount: math.NaN(), rate: 7, years: 30},
		{name: "amount over limit", amount: MaxLoanAmount + 1, rate: 7, years: 30},
		{name: "negative rate", amount: 400000, rate: -0.5, years: 30},
		{name: "rate over limit", amount: 400000, rate: 31, years: 30},
		{name: "zero term", amount: 400000, rate: 7, years: 0},
		{name: "negative term", amount: 400000, rate: 7, years: -5},
		{name: "term over limit", amount: 400000, rate: 7, years: MaxTermYears + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := MonthlyPayment(tt.amount, tt.rate, tt.years)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidScenario))
			assert.Zero(t, payment)
		})
	}
}

func TestMonthlyPayment_Monotonic(t *testing.T) {
	prev := 0.0
	for rate := 0.0; rate <= 12; rate += 0.25 {
		payment, err := MonthlyPayment(300000, rate, 30)
		require.NoError(t, err)
		assert.Greater(t, payment, prev, "payment should grow with rate at %.2f%%", rate)
		prev = payment
	}

	prev = 0
	for amount := 50000.0; amount <= 1000000; amount += 50000 {
		payment, err := MonthlyPayment(amount, 6.5, 30)
		require.NoError(t, err)
		assert.Greater(t, payment, prev)
		prev = payment
	}

	prev = math.Inf(1)
	for years := 1; years <= 40; years++ {
		payment, err := MonthlyPayment(300000, 6.5, years)
		require.NoError(t, err)
		assert.Less(t, payment, prev, "payment should shrink with term at %d years", years)
		prev = payment
	}
}

func TestMonthlyPayment_NearZeroRate(t *testing.T) {
	zeroRate, err := MonthlyPayment(400000, 0, 30)
	require.NoError(t, err)

	prev := zeroRate
	for _, rate := range []float64{1e-13, 1e-11, 1e-9, 1e-7, 1e-6} {
		payment, err := MonthlyPayment(400000, rate, 30)
		require.NoError(t, err)
		assert.False(t, math.IsInf(payment, 0) || math.IsNaN(payment), "rate %g", rate)
		assert.Greater(t, payment, prev, "payment should grow with rate at %g%%", rate)
		prev = payment
	}

	for _, rate := range []float64{1e-300, 1e-200, 1e-16} {
		payment, err := MonthlyPayment(400000, rate, 30)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, payment, zeroRate, "rate %g", rate)
		assert.InDelta(t, zeroRate, payment, 1e-6)
	}
}

func TestSimulateBalance_PaysOff(t *testing.T) {
	last := -1.0
	months := 0
	simulateBalance(200000, 6, 15, func(month int, balance float64) bool {
		months = month
		last = balance
		return true
	})

	assert.Equal(t, 180, months)
	assert.InDelta(t, 0, last, 0.01)
}

func TestSimulateBalance_StopsEarly(t *testing.T) {
	visited := 0
	simulateBalance(200000, 6, 15, func(month int, balance float64) bool {
		visited++
		return month < 10
	})

	assert.Equal(t, 11, visited)
}

func TestRounding_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 2.68, roundTo2Decimals(2.675))
	assert.Equal(t, -2.68, roundTo2Decimals(-2.675))
	assert.Equal(t, 0.125, roundRate(0.1245))
	assert.Equal(t, 1.01, roundPercent(1.005))
	assert.True(t, math.IsInf(roundTo2Decimals(math.Inf(1)), 1))
}

func TestMapScenarios(t *testing.T) {
	doubled := mapScenarios([]int{1, 2, 3}, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
	assert.Empty(t, mapScenarios([]int{}, func(v int) int { return v }))
}
