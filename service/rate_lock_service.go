package service

import (
	"math"

	"go.uber.org/zap"

	"mortgage-engine/domain"
)

// lockFeeSchedule is ordered by ascending lock period. Fees are percent of
// the loan amount.
var lockFeeSchedule = [...]domain.LockFeeTier{
	{Days: 15, FeePercent: 0},
	{Days: 30, FeePercent: 0},
	{Days: 45, FeePercent: 0.125},
	{Days: 60, FeePercent: 0.25},
	{Days: 90, FeePercent: 0.375},
	{Days: 120, FeePercent: 0.50},
}

const (
	extensionFeePerWeek  = 0.125
	expiredLockPenalty   = 0.125
	lockThresholdPercent = 0.25
)

// Bisection bounds for the float-down break-even search, in rate percent.
const (
	floatDownSearchUpper     = 2.0
	floatDownSearchTolerance = 0.001
	floatDownSearchMaxIter   = 64
)

var lockVsFloatChanges = []float64{-0.5, -0.25, 0, 0.25, 0.5}

var floatDownDrops = []float64{0.125, 0.25, 0.375, 0.5, 0.75, 1}

const (
	verdictFloatSaves = "Floating saves"
	verdictLockSaves  = "Locking saves"
	verdictNoChange   = "No difference"
)

type RateLockService struct {
	logger *zap.Logger
}

func NewRateLockService(logger *zap.Logger) *RateLockService {
	return &RateLockService{logger: logger}
}

// LockFeeSchedule returns a copy of the lock fee tiers.
func LockFeeSchedule() []domain.LockFeeTier {
	tiers := lockFeeSchedule
	return tiers[:]
}

// lockFeeTier picks the smallest tier covering lockDays, clamping to the
// longest tier.
func lockFeeTier(lockDays int) domain.LockFeeTier {
	for _, tier := range lockFeeSchedule {
		if tier.Days >= lockDays {
			return tier
		}
	}
	return lockFeeSchedule[len(lockFeeSchedule)-1]
}

func (s *RateLockService) CalculateLockFee(input domain.LockFeeInput) (domain.LockFeeResult, error) {
	if err := validateLoanAmount(input.LoanAmount); err != nil {
		return domain.LockFeeResult{}, err
	}
	if input.LockDays <= 0 {
		return domain.LockFeeResult{}, invalidScenario("lock period must be positive, got %d days", input.LockDays)
	}
	return lockFee(input.LoanAmount, input.LockDays), nil
}

func lockFee(loanAmount float64, lockDays int) domain.LockFeeResult {
	tier := lockFeeTier(lockDays)
	return domain.LockFeeResult{
		LockDays:   lockDays,
		TierDays:   tier.Days,
		FeePercent: tier.FeePercent,
		Fee:        roundTo2Decimals(loanAmount * tier.FeePercent / 100),
	}
}

// CalculateExtensionFee prices a lock extension per started week, plus a
// penalty when the lock already expired.
func (s *RateLockService) CalculateExtensionFee(input domain.ExtensionFeeInput) (domain.ExtensionFeeResult, error) {
	if err := validateLoanAmount(input.LoanAmount); err != nil {
		return domain.ExtensionFeeResult{}, err
	}
	if input.ExtensionDays <= 0 {
		return domain.ExtensionFeeResult{}, invalidScenario("extension must be positive, got %d days", input.ExtensionDays)
	}

	weeks := (input.ExtensionDays + 6) / 7
	feePercent := float64(weeks) * extensionFeePerWeek
	if input.CurrentLockExpired {
		feePercent += expiredLockPenalty
	}

	return domain.ExtensionFeeResult{
		ExtensionDays:  input.ExtensionDays,
		Weeks:          weeks,
		FeePercent:     roundRate(feePercent),
		ExpiredPenalty: input.CurrentLockExpired,
		Fee:            roundTo2Decimals(input.LoanAmount * feePercent / 100),
	}, nil
}

// CompareLockVsFloat weighs locking today's rate against floating with an
// expected rate move. Without a strong expected move it defaults to locking.
func (s *RateLockService) CompareLockVsFloat(input domain.LockVsFloatInput) (domain.LockVsFloatResult, error) {
	lockedPayment, err := MonthlyPayment(input.LoanAmount, input.CurrentRate, input.TermYears)
	if err != nil {
		return domain.LockVsFloatResult{}, err
	}
	if input.LockDays < 0 {
		return domain.LockVsFloatResult{}, invalidScenario("lock period must not be negative")
	}

	floatRate := math.Max(0, input.CurrentRate+input.ExpectedRateChange)
	if floatRate > MaxInterestRate {
		return domain.LockVsFloatResult{}, invalidScenario("floated rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	floatPayment := monthlyPayment(input.LoanAmount, floatRate, input.TermYears)
	difference := floatPayment - lockedPayment

	decision, confidence := lockDecision(input.ExpectedRateChange)

	var fee domain.LockFeeResult
	if input.LockDays > 0 {
		fee = lockFee(input.LoanAmount, input.LockDays)
	}

	scenarios := mapScenarios(lockVsFloatChanges, func(change float64) domain.RateScenario {
		rate := math.Max(0, input.CurrentRate+change)
		payment := monthlyPayment(input.LoanAmount, rate, input.TermYears)
		diff := payment - lockedPayment
		return domain.RateScenario{
			RateChange:        change,
			Rate:              roundRate(rate),
			MonthlyPayment:    roundTo2Decimals(payment),
			PaymentDifference: roundTo2Decimals(diff),
			Verdict:           scenarioVerdict(diff),
		}
	})

	return domain.LockVsFloatResult{
		LockedRate:         roundRate(input.CurrentRate),
		FloatRate:          roundRate(floatRate),
		LockedPayment:      roundTo2Decimals(lockedPayment),
		FloatPayment:       roundTo2Decimals(floatPayment),
		PaymentDifference:  roundTo2Decimals(difference),
		LifetimeDifference: roundTo2Decimals(difference * float64(input.TermYears*monthsPerYear)),
		LockFee:            fee,
		Recommendation:     decision,
		Confidence:         confidence,
		Scenarios:          scenarios,
	}, nil
}

func lockDecision(expectedRateChange float64) (domain.LockDecision, domain.Confidence) {
	switch {
	case expectedRateChange > lockThresholdPercent:
		return domain.DecisionLock, domain.ConfidenceHigh
	case expectedRateChange < -lockThresholdPercent:
		return domain.DecisionFloat, domain.ConfidenceHigh
	default:
		return domain.DecisionLock, domain.ConfidenceLow
	}
}

func scenarioVerdict(paymentDifference float64) string {
	switch rounded := roundTo2Decimals(paymentDifference); {
	case rounded < 0:
		return verdictFloatSaves
	case rounded > 0:
		return verdictLockSaves
	default:
		return verdictNoChange
	}
}

// CalculateFloatDownValue values a float-down option over the expected
// holding period and searches for the smallest rate drop that pays back the
// option fee.
func (s *RateLockService) CalculateFloatDownValue(input domain.FloatDownInput) (domain.FloatDownAnalysis, error) {
	lockedPayment, err := MonthlyPayment(input.LoanAmount, input.LockedRate, input.TermYears)
	if err != nil {
		return domain.FloatDownAnalysis{}, err
	}
	if err := validateNonNegative("float-down fee", input.FloatDownFee); err != nil {
		return domain.FloatDownAnalysis{}, err
	}
	if err := validateNonNegative("expected rate drop", input.ExpectedRateDrop); err != nil {
		return domain.FloatDownAnalysis{}, err
	}
	if math.IsNaN(input.HoldingPeriodYears) || input.HoldingPeriodYears <= 0 {
		return domain.FloatDownAnalysis{}, invalidScenario("holding period must be positive")
	}

	termMonths := input.TermYears * monthsPerYear
	holding := math.Round(input.HoldingPeriodYears * monthsPerYear)
	holdingMonths := int(math.Max(1, math.Min(holding, float64(termMonths))))

	feeCost := input.LoanAmount * input.FloatDownFee / 100
	model := floatDownModel{
		loanAmount:    input.LoanAmount,
		termYears:     input.TermYears,
		lockedRate:    input.LockedRate,
		lockedPayment: lockedPayment,
		holdingMonths: holdingMonths,
		feeCost:       feeCost,
	}

	newRate := model.reducedRate(input.ExpectedRateDrop)
	newPayment := monthlyPayment(input.LoanAmount, newRate, input.TermYears)
	netSavings := model.netSavings(input.ExpectedRateDrop)

	minDrop, reachable := model.minRateDropForBreakEven()
	if !reachable {
		s.logger.Debug("float-down fee not recovered within search range",
			zap.Float64("lockedRate", input.LockedRate),
			zap.Float64("feeCost", feeCost),
		)
	}

	scenarios := mapScenarios(floatDownDrops, func(drop float64) domain.FloatDownScenario {
		rate := model.reducedRate(drop)
		net := model.netSavings(drop)
		return domain.FloatDownScenario{
			RateDrop:       drop,
			NewRate:        roundRate(rate),
			MonthlySavings: roundTo2Decimals(lockedPayment - monthlyPayment(input.LoanAmount, rate, input.TermYears)),
			NetSavings:     roundTo2Decimals(net),
			WorthIt:        net > 0,
		}
	})

	return domain.FloatDownAnalysis{
		FeeCost:                 roundTo2Decimals(feeCost),
		LockedPayment:           roundTo2Decimals(lockedPayment),
		NewRate:                 roundRate(newRate),
		NewPayment:              roundTo2Decimals(newPayment),
		MonthlySavings:          roundTo2Decimals(lockedPayment - newPayment),
		HoldingMonths:           holdingMonths,
		NetSavings:              roundTo2Decimals(netSavings),
		WorthIt:                 netSavings > 0,
		MinRateDropForBreakEven: roundRate(minDrop),
		BreakEvenReachable:      reachable,
		Scenarios:               scenarios,
	}, nil
}

type floatDownModel struct {
	loanAmount    float64
	termYears     int
	lockedRate    float64
	lockedPayment float64
	holdingMonths int
	feeCost       float64
}

func (m floatDownModel) reducedRate(drop float64) float64 {
	return math.Max(0, m.lockedRate-drop)
}

// netSavings is non-decreasing in drop.
func (m floatDownModel) netSavings(drop float64) float64 {
	payment := monthlyPayment(m.loanAmount, m.reducedRate(drop), m.termYears)
	return (m.lockedPayment-payment)*float64(m.holdingMonths) - m.feeCost
}

// minRateDropForBreakEven finds the drop where net savings reach zero. The
// rate cannot fall below zero, so the search stops at the locked rate.
func (m floatDownModel) minRateDropForBreakEven() (float64, bool) {
	return bisectBreakEven(m.netSavings, math.Min(floatDownSearchUpper, m.lockedRate))
}

// bisectBreakEven searches [0, upper] for the root of a non-decreasing
// function. It reports false, with upper, when f(upper) is still negative.
func bisectBreakEven(f func(float64) float64, upper float64) (float64, bool) {
	if f(0) >= 0 {
		return 0, true
	}
	if f(upper) < 0 {
		return upper, false
	}

	lo, hi := 0.0, upper
	for i := 0; i < floatDownSearchMaxIter && hi-lo > floatDownSearchTolerance; i++ {
		mid := (lo + hi) / 2
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, true
}
