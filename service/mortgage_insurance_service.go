package service

import (
	"math"

	"go.uber.org/zap"

	"mortgage-engine/domain"
)

// DefaultLoanType is used when the requested loan type is unknown.
const DefaultLoanType = domain.LoanConventional

const (
	pmiRequiredAboveLTV    = 80.0
	pmiRequestRemovalLTV   = 80.0
	pmiAutomaticRemovalLTV = 78.0

	fhaUpfrontPercent   = 1.75
	fhaAnnualPercent    = 0.55
	vaFundingFeePercent = 2.3
	usdaUpfrontPercent  = 1.0
	usdaAnnualPercent   = 0.35
)

// pmiCreditScoreBands are the lower bounds of each column of the PMI rate
// table. Scores below the last bound use the last column.
var pmiCreditScoreBands = [...]int{760, 740, 720, 700, 680, 660, 640, 620}

// pmiRateTable holds annual PMI rates (percent of the loan) by LTV band.
// LTVs above the last band use the last row.
var pmiRateTable = [...]struct {
	maxLTV float64
	rates  [len(pmiCreditScoreBands)]float64
}{
	{maxLTV: 85, rates: [...]float64{0.19, 0.20, 0.23, 0.27, 0.32, 0.41, 0.50, 0.62}},
	{maxLTV: 90, rates: [...]float64{0.30, 0.34, 0.41, 0.48, 0.57, 0.72, 0.84, 1.02}},
	{maxLTV: 95, rates: [...]float64{0.41, 0.48, 0.58, 0.69, 0.82, 1.02, 1.20, 1.45}},
	{maxLTV: 97, rates: [...]float64{0.55, 0.63, 0.76, 0.91, 1.08, 1.32, 1.56, 1.86}},
}

type MortgageInsuranceService struct {
	logger *zap.Logger
}

func NewMortgageInsuranceService(logger *zap.Logger) *MortgageInsuranceService {
	return &MortgageInsuranceService{logger: logger}
}

// pmiRate looks up the annual conventional PMI rate for an LTV and score.
func pmiRate(ltv float64, creditScore int) float64 {
	column := len(pmiCreditScoreBands) - 1
	for i, minScore := range pmiCreditScoreBands {
		if creditScore >= minScore {
			column = i
			break
		}
	}

	row := pmiRateTable[len(pmiRateTable)-1]
	for _, candidate := range pmiRateTable {
		if ltv <= candidate.maxLTV {
			row = candidate
			break
		}
	}
	return row.rates[column]
}

// CalculateMortgageInsurance estimates the insurance or guarantee cost for
// the loan program. Conventional loans above 80% LTV include the PMI
// dropoff schedule when a term is supplied.
func (s *MortgageInsuranceService) CalculateMortgageInsurance(input domain.MortgageInsuranceInput) (domain.MortgageInsuranceResult, error) {
	if err := validateLoanAmount(input.LoanAmount); err != nil {
		return domain.MortgageInsuranceResult{}, err
	}
	if math.IsNaN(input.HomePrice) || input.HomePrice <= 0 {
		return domain.MortgageInsuranceResult{}, invalidScenario("home price must be positive")
	}

	ltv := input.LoanAmount / input.HomePrice * 100
	result := domain.MortgageInsuranceResult{
		LTV:          roundPercent(ltv),
		FinancedLoan: roundTo2Decimals(input.LoanAmount),
	}

	switch input.LoanType {
	case domain.LoanFHA:
		result.LoanType = domain.LoanFHA
		applyPremiums(&result, input.LoanAmount, fhaUpfrontPercent, fhaAnnualPercent)
	case domain.LoanVA:
		result.LoanType = domain.LoanVA
		applyPremiums(&result, input.LoanAmount, vaFundingFeePercent, 0)
		result.Financeable = true
		result.FinancedLoan = roundTo2Decimals(input.LoanAmount + input.LoanAmount*vaFundingFeePercent/100)
	case domain.LoanUSDA:
		result.LoanType = domain.LoanUSDA
		applyPremiums(&result, input.LoanAmount, usdaUpfrontPercent, usdaAnnualPercent)
	case domain.LoanConventional:
		result.LoanType = domain.LoanConventional
		if err := s.applyPMI(&result, input, ltv); err != nil {
			return domain.MortgageInsuranceResult{}, err
		}
	default:
		s.logger.Warn("unknown loan type, using default",
			zap.String("requested", string(input.LoanType)),
			zap.String("default", string(DefaultLoanType)),
		)
		result.LoanType = DefaultLoanType
		if err := s.applyPMI(&result, input, ltv); err != nil {
			return domain.MortgageInsuranceResult{}, err
		}
	}

	return result, nil
}

func applyPremiums(result *domain.MortgageInsuranceResult, loanAmount, upfrontPercent, annualPercent float64) {
	annualPremium := loanAmount * annualPercent / 100

	result.Required = upfrontPercent > 0 || annualPercent > 0
	result.UpfrontRate = upfrontPercent
	result.AnnualRate = annualPercent
	result.UpfrontFee = roundTo2Decimals(loanAmount * upfrontPercent / 100)
	result.AnnualPremium = roundTo2Decimals(annualPremium)
	result.MonthlyPremium = roundTo2Decimals(annualPremium / monthsPerYear)
}

func (s *MortgageInsuranceService) applyPMI(result *domain.MortgageInsuranceResult, input domain.MortgageInsuranceInput, ltv float64) error {
	if ltv <= pmiRequiredAboveLTV {
		return nil
	}

	applyPremiums(result, input.LoanAmount, 0, pmiRate(ltv, input.CreditScore))
	if input.TermYears <= 0 {
		return nil
	}

	dropoff, err := s.CalculatePMIDropoff(domain.PMIDropoffInput{
		LoanAmount: input.LoanAmount,
		HomePrice:  input.HomePrice,
		Rate:       input.Rate,
		TermYears:  input.TermYears,
	})
	if err != nil {
		return err
	}
	result.Dropoff = &dropoff
	return nil
}

// CalculatePMIDropoff simulates the amortization month by month to find when
// the balance reaches 80% and 78% of the original home price.
func (s *MortgageInsuranceService) CalculatePMIDropoff(input domain.PMIDropoffInput) (domain.PMIDropoffSchedule, error) {
	if err := validateScenario(input.LoanAmount, input.Rate, input.TermYears); err != nil {
		return domain.PMIDropoffSchedule{}, err
	}
	if math.IsNaN(input.HomePrice) || input.HomePrice <= 0 {
		return domain.PMIDropoffSchedule{}, invalidScenario("home price must be positive")
	}

	requestThreshold := input.HomePrice * pmiRequestRemovalLTV / 100
	automaticThreshold := input.HomePrice * pmiAutomaticRemovalLTV / 100
	termMonths := input.TermYears * monthsPerYear

	requestMonth, automaticMonth := -1, -1
	simulateBalance(input.LoanAmount, input.Rate, input.TermYears, func(month int, balance float64) bool {
		if requestMonth < 0 && balance <= requestThreshold {
			requestMonth = month
		}
		if automaticMonth < 0 && balance <= automaticThreshold {
			automaticMonth = month
		}
		return automaticMonth < 0
	})

	// A fully amortized loan always crosses both thresholds; the cap only
	// guards against rounding residue in the final month.
	if requestMonth < 0 {
		requestMonth = termMonths
	}
	if automaticMonth < 0 {
		automaticMonth = termMonths
	}

	return domain.PMIDropoffSchedule{
		RequestRemovalMonth:   requestMonth,
		AutomaticRemovalMonth: automaticMonth,
		RequestRemovalYears:   roundTo(float64(requestMonth)/monthsPerYear, 1),
		AutomaticRemovalYears: roundTo(float64(automaticMonth)/monthsPerYear, 1),
	}, nil
}
