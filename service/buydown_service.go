package service

import (
	"math"

	"go.uber.org/zap"

	"mortgage-engine/domain"
)

// DefaultBuydownType is used when the requested buydown type is unknown.
const DefaultBuydownType = domain.Buydown21

var comparedBuydownTypes = []domain.BuydownType{
	domain.Buydown10,
	domain.Buydown21,
	domain.Buydown321,
}

type BuydownService struct {
	logger *zap.Logger
}

func NewBuydownService(logger *zap.Logger) *BuydownService {
	return &BuydownService{logger: logger}
}

// buydownReductions resolves a buydown type to its yearly rate reductions.
// Unknown types resolve to the default arm and report known=false.
func buydownReductions(buydownType domain.BuydownType) (resolved domain.BuydownType, reductions []float64, known bool) {
	switch buydownType {
	case domain.Buydown10:
		return domain.Buydown10, []float64{1}, true
	case domain.Buydown21:
		return domain.Buydown21, []float64{2, 1}, true
	case domain.Buydown321:
		return domain.Buydown321, []float64{3, 2, 1}, true
	default:
		return DefaultBuydownType, []float64{2, 1}, false
	}
}

// CalculateBuydown builds the year-by-year schedule of a temporary buydown
// and the total subsidy needed to fund it.
func (s *BuydownService) CalculateBuydown(input domain.BuydownInput) (domain.BuydownResult, error) {
	fullPayment, err := MonthlyPayment(input.LoanAmount, input.NoteRate, input.TermYears)
	if err != nil {
		return domain.BuydownResult{}, err
	}

	buydownType, reductions, known := buydownReductions(input.BuydownType)
	if !known {
		s.logger.Warn("unknown buydown type, using default",
			zap.String("requested", string(input.BuydownType)),
			zap.String("default", string(buydownType)),
		)
	}

	schedule := make([]domain.YearEntry, 0, len(reductions)+1)
	totalCost := 0.0

	for i, reduction := range reductions {
		rate := math.Max(0, input.NoteRate-reduction)
		payment := monthlyPayment(input.LoanAmount, rate, input.TermYears)
		savings := fullPayment - payment
		yearSavings := savings * monthsPerYear
		totalCost += yearSavings

		schedule = append(schedule, domain.YearEntry{
			Year:           i + 1,
			Rate:           roundRate(rate),
			MonthlyPayment: roundTo2Decimals(payment),
			MonthlySavings: roundTo2Decimals(savings),
			YearSavings:    roundTo2Decimals(yearSavings),
		})
	}

	schedule = append(schedule, domain.YearEntry{
		Year:           len(reductions) + 1,
		Rate:           roundRate(input.NoteRate),
		MonthlyPayment: roundTo2Decimals(fullPayment),
		IsNoteRate:     true,
	})

	return domain.BuydownResult{
		BuydownType:      buydownType,
		LoanAmount:       roundTo2Decimals(input.LoanAmount),
		NoteRate:         roundRate(input.NoteRate),
		FullPayment:      roundTo2Decimals(fullPayment),
		Schedule:         schedule,
		TotalBuydownCost: roundTo2Decimals(totalCost),
		PaymentShocks:    scheduleShocks(schedule),
	}, nil
}

// CalculateBuydownSubsidy reports the buydown cost as the subsidy a seller or
// builder has to fund.
func (s *BuydownService) CalculateBuydownSubsidy(input domain.BuydownInput) (domain.BuydownSubsidyResult, error) {
	result, err := s.CalculateBuydown(input)
	if err != nil {
		return domain.BuydownSubsidyResult{}, err
	}

	return domain.BuydownSubsidyResult{
		BuydownResult:   result,
		SubsidyRequired: result.TotalBuydownCost,
		SubsidyPercent:  roundPercent(result.TotalBuydownCost / input.LoanAmount * 100),
	}, nil
}

// CalculateSellerConcessionBuydown checks whether a seller concession covers
// the buydown. At most one of RemainingCredit and Shortfall is nonzero.
func (s *BuydownService) CalculateSellerConcessionBuydown(input domain.SellerConcessionInput) (domain.SellerConcessionResult, error) {
	if err := validateNonNegative("seller concession", input.SellerConcession); err != nil {
		return domain.SellerConcessionResult{}, err
	}

	result, err := s.CalculateBuydown(input.BuydownInput)
	if err != nil {
		return domain.SellerConcessionResult{}, err
	}

	concession := roundTo2Decimals(input.SellerConcession)
	surplus := concession - result.TotalBuydownCost

	return domain.SellerConcessionResult{
		BuydownResult:    result,
		SellerConcession: concession,
		CoversBuydown:    surplus >= 0,
		RemainingCredit:  roundTo2Decimals(math.Max(0, surplus)),
		Shortfall:        roundTo2Decimals(math.Max(0, -surplus)),
	}, nil
}

// CompareBuydownTypes runs the same scenario through every buydown type.
func (s *BuydownService) CompareBuydownTypes(input domain.BuydownInput) (domain.BuydownComparison, error) {
	results := make([]domain.BuydownResult, 0, len(comparedBuydownTypes))
	for _, buydownType := range comparedBuydownTypes {
		scenario := input
		scenario.BuydownType = buydownType

		result, err := s.CalculateBuydown(scenario)
		if err != nil {
			return domain.BuydownComparison{}, err
		}
		results = append(results, result)
	}
	return domain.BuydownComparison{Results: results}, nil
}

// CalculatePaymentShock measures the jump from one payment to the next, e.g.
// when a buydown year ends.
func (s *BuydownService) CalculatePaymentShock(input domain.PaymentShockInput) (domain.PaymentShock, error) {
	if input.CurrentPayment <= 0 || math.IsNaN(input.CurrentPayment) {
		return domain.PaymentShock{}, invalidScenario("current payment must be positive")
	}
	if err := validateNonNegative("new payment", input.NewPayment); err != nil {
		return domain.PaymentShock{}, err
	}
	return paymentShock(input.CurrentPayment, input.NewPayment), nil
}

func paymentShock(current, next float64) domain.PaymentShock {
	shock := next - current
	return domain.PaymentShock{
		Shock:        roundTo2Decimals(shock),
		ShockPercent: roundPercent(shock / current * 100),
	}
}

func scheduleShocks(schedule []domain.YearEntry) []domain.PaymentShock {
	shocks := make([]domain.PaymentShock, 0, len(schedule)-1)
	for i := 1; i < len(schedule); i++ {
		prev, next := schedule[i-1], schedule[i]
		if prev.MonthlyPayment <= 0 {
			continue
		}
		shock := paymentShock(prev.MonthlyPayment, next.MonthlyPayment)
		shock.FromYear = prev.Year
		shock.ToYear = next.Year
		shocks = append(shocks, shock)
	}
	return shocks
}
