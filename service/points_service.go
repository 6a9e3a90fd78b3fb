package service

import (
	"math"

	"go.uber.org/zap"

	"mortgage-engine/domain"
)

// DefaultRateReductionPerPoint is the rate cut one discount point buys when
// the lender does not quote one.
const DefaultRateReductionPerPoint = 0.25

// Break-even bands used to classify a points purchase, in months.
var breakEvenBands = []struct {
	maxMonths      int
	recommendation domain.Recommendation
}{
	{24, domain.StronglyRecommended},
	{48, domain.Recommended},
	{84, domain.ConsiderCarefully},
}

var pointsCostTable = []float64{0.5, 1, 1.5, 2}

var pointsVsCreditsHorizons = []int{36, 60, 84, 120, 180, 360}

type PointsService struct {
	logger *zap.Logger
}

func NewPointsService(logger *zap.Logger) *PointsService {
	return &PointsService{logger: logger}
}

// CalculatePointsBreakEven computes how long the monthly savings of a lower
// rate take to pay back the discount points bought to get it.
func (s *PointsService) CalculatePointsBreakEven(input domain.PointsBreakEvenInput) (domain.PointsBreakEvenResult, error) {
	if err := validateNonNegative("points cost", input.PointsCost); err != nil {
		return domain.PointsBreakEvenResult{}, err
	}

	basePayment, err := MonthlyPayment(input.LoanAmount, input.BaseRate, input.TermYears)
	if err != nil {
		return domain.PointsBreakEvenResult{}, err
	}
	pointsPayment, err := MonthlyPayment(input.LoanAmount, input.PointsRate, input.TermYears)
	if err != nil {
		return domain.PointsBreakEvenResult{}, err
	}

	monthlySavings := basePayment - pointsPayment
	totalCost := input.LoanAmount * input.PointsCost / 100
	breakEven := breakEvenMonths(totalCost, monthlySavings)
	if !breakEven.Reachable {
		s.logger.Debug("points never break even",
			zap.Float64("baseRate", input.BaseRate),
			zap.Float64("pointsRate", input.PointsRate),
		)
	}

	netSavings := func(months int) float64 {
		return roundTo2Decimals(monthlySavings*float64(months) - totalCost)
	}

	return domain.PointsBreakEvenResult{
		BasePayment:     roundTo2Decimals(basePayment),
		PointsPayment:   roundTo2Decimals(pointsPayment),
		MonthlySavings:  roundTo2Decimals(monthlySavings),
		TotalPointsCost: roundTo2Decimals(totalCost),
		RateReduction:   roundRate(input.BaseRate - input.PointsRate),
		BreakEven:       breakEven,
		BreakEvenYears:  roundTo(breakEven.Years(), 1),
		Savings5Years:   netSavings(5 * monthsPerYear),
		Savings10Years:  netSavings(10 * monthsPerYear),
		SavingsFullTerm: netSavings(input.TermYears * monthsPerYear),
		Recommendation:  classifyBreakEven(breakEven),
	}, nil
}

// CalculatePointsCost prices an arbitrary number of points alongside a fixed
// table of common purchases.
func (s *PointsService) CalculatePointsCost(input domain.PointsCostInput) (domain.PointsCostResult, error) {
	if err := validateLoanAmount(input.LoanAmount); err != nil {
		return domain.PointsCostResult{}, err
	}
	if err := validateNonNegative("points", input.Points); err != nil {
		return domain.PointsCostResult{}, err
	}
	if err := validateNonNegative("rate reduction per point", input.RateReductionPerPoint); err != nil {
		return domain.PointsCostResult{}, err
	}

	perPoint := input.RateReductionPerPoint
	if perPoint == 0 {
		perPoint = DefaultRateReductionPerPoint
	}

	row := func(points float64) domain.PointsCostRow {
		return domain.PointsCostRow{
			Points:        points,
			Cost:          roundTo2Decimals(input.LoanAmount * points / 100),
			RateReduction: roundRate(points * perPoint),
		}
	}

	requested := row(input.Points)
	return domain.PointsCostResult{
		Points:        requested.Points,
		Cost:          requested.Cost,
		RateReduction: requested.RateReduction,
		Table:         mapScenarios(pointsCostTable, row),
	}, nil
}

// ComparePointsVsCredits compares paying points for a lower rate against
// taking a lender credit at a higher rate, over several holding horizons.
func (s *PointsService) ComparePointsVsCredits(input domain.PointsVsCreditsInput) (domain.PointsVsCreditsResult, error) {
	if err := validateNonNegative("points cost", input.PointsCost); err != nil {
		return domain.PointsVsCreditsResult{}, err
	}
	if err := validateNonNegative("lender credit", input.LenderCredit); err != nil {
		return domain.PointsVsCreditsResult{}, err
	}

	pointsPayment, err := MonthlyPayment(input.LoanAmount, input.PointsRate, input.TermYears)
	if err != nil {
		return domain.PointsVsCreditsResult{}, err
	}
	creditPayment, err := MonthlyPayment(input.LoanAmount, input.CreditRate, input.TermYears)
	if err != nil {
		return domain.PointsVsCreditsResult{}, err
	}

	upfront := input.LoanAmount * input.PointsCost / 100
	credit := input.LoanAmount * input.LenderCredit / 100
	termMonths := input.TermYears * monthsPerYear

	horizons := make([]domain.HorizonComparison, 0, len(pointsVsCreditsHorizons))
	for _, months := range pointsVsCreditsHorizons {
		if months > termMonths {
			continue
		}
		pointsTotal := pointsPayment*float64(months) + upfront
		creditTotal := creditPayment*float64(months) - credit
		difference := creditTotal - pointsTotal

		horizons = append(horizons, domain.HorizonComparison{
			Months:       months,
			PointsTotal:  roundTo2Decimals(pointsTotal),
			CreditTotal:  roundTo2Decimals(creditTotal),
			Difference:   roundTo2Decimals(difference),
			BetterOption: betterOption(difference),
		})
	}

	return domain.PointsVsCreditsResult{
		PointsPayment:   roundTo2Decimals(pointsPayment),
		CreditPayment:   roundTo2Decimals(creditPayment),
		PointsUpfront:   roundTo2Decimals(upfront),
		CreditAmount:    roundTo2Decimals(credit),
		CrossoverMonths: breakEvenMonths(upfront+credit, creditPayment-pointsPayment),
		Horizons:        horizons,
	}, nil
}

// maxBreakEvenMonths is the longest loan the engine quotes. A payback past it
// never happens.
const maxBreakEvenMonths = MaxTermYears * monthsPerYear

// breakEvenMonths returns ceil(cost/monthlySavings), or the unreachable value
// when there are no savings at cent precision or the payback outlasts any
// loan term.
func breakEvenMonths(cost, monthlySavings float64) domain.BreakEven {
	if roundTo2Decimals(monthlySavings) <= 0 {
		return domain.NeverBreaksEven()
	}
	months := math.Ceil(cost / monthlySavings)
	if math.IsNaN(months) || months > maxBreakEvenMonths {
		return domain.NeverBreaksEven()
	}
	return domain.BreakEven{
		Months:    int(months),
		Reachable: true,
	}
}

func classifyBreakEven(breakEven domain.BreakEven) domain.Recommendation {
	if !breakEven.Reachable {
		return domain.NotRecommended
	}
	for _, band := range breakEvenBands {
		if breakEven.Months <= band.maxMonths {
			return band.recommendation
		}
	}
	return domain.NotRecommended
}

// betterOption picks the cheaper option given creditTotal - pointsTotal.
func betterOption(difference float64) domain.Option {
	switch rounded := roundTo2Decimals(difference); {
	case rounded > 0:
		return domain.OptionPoints
	case rounded < 0:
		return domain.OptionCredit
	default:
		return domain.OptionEqual
	}
}
