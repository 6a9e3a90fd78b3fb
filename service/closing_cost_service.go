package service

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"mortgage-engine/domain"
)

// DefaultState labels the fallback row of the state fee table.
const DefaultState = "DEFAULT"

// stateFees holds the closing costs that vary by state. Transfer tax is a
// percent of the home price, doc stamps a percent of the loan amount.
type stateFees struct {
	transferTaxPercent float64
	recordingFee       float64
	docStampsPercent   float64
}

var stateFeeTable = map[string]stateFees{
	"CA": {transferTaxPercent: 0.11, recordingFee: 150},
	"CO": {transferTaxPercent: 0.01, recordingFee: 75},
	"FL": {transferTaxPercent: 0.70, recordingFee: 120, docStampsPercent: 0.35},
	"GA": {transferTaxPercent: 0.10, recordingFee: 125},
	"IL": {transferTaxPercent: 0.15, recordingFee: 100},
	"NJ": {transferTaxPercent: 1.00, recordingFee: 200},
	"NY": {transferTaxPercent: 0.40, recordingFee: 250},
	"PA": {transferTaxPercent: 1.00, recordingFee: 250},
	"TX": {transferTaxPercent: 0, recordingFee: 100},
	"WA": {transferTaxPercent: 1.28, recordingFee: 200},
}

var defaultStateFees = stateFees{transferTaxPercent: 0.10, recordingFee: 125}

const (
	originationPercent    = 1.0
	underwritingFee       = 995.0
	processingFee         = 595.0
	appraisalFee          = 550.0
	creditReportFee       = 35.0
	titleInsurancePercent = 0.5 // of loan amount
	escrowFeePercent      = 0.2 // of home price

	defaultPrepaidRate      = 7.0
	defaultPrepaidDays      = 15
	daysPerYear             = 365
	propertyTaxPercent      = 1.1 // annual, of home price
	propertyTaxEscrowMonths = 3
	insurancePercent        = 0.35 // annual premium, of home price
	insuranceEscrowMonths   = 2
	estimateTermYears       = 30
)

var cashToCloseDownPayments = []float64{5, 10, 15, 20}

type ClosingCostService struct {
	logger *zap.Logger
}

func NewClosingCostService(logger *zap.Logger) *ClosingCostService {
	return &ClosingCostService{logger: logger}
}

// lookupStateFees resolves a state code, falling back to the default row for
// codes the table does not carry.
func lookupStateFees(state string) (code string, fees stateFees, known bool) {
	code = strings.ToUpper(strings.TrimSpace(state))
	if fees, ok := stateFeeTable[code]; ok {
		return code, fees, true
	}
	return DefaultState, defaultStateFees, false
}

// CalculateClosingCosts estimates the closing cost worksheet for a purchase.
func (s *ClosingCostService) CalculateClosingCosts(input domain.ClosingCostInput) (domain.ClosingCostWorksheet, error) {
	if err := validateLoanAmount(input.LoanAmount); err != nil {
		return domain.ClosingCostWorksheet{}, err
	}
	if math.IsNaN(input.HomePrice) || input.HomePrice <= 0 {
		return domain.ClosingCostWorksheet{}, invalidScenario("home price must be positive")
	}
	if err := validateRate("interest rate", input.InterestRate); err != nil {
		return domain.ClosingCostWorksheet{}, err
	}
	if input.PrepaidDays < 0 {
		return domain.ClosingCostWorksheet{}, invalidScenario("prepaid days must not be negative")
	}

	state, fees, known := lookupStateFees(input.State)
	if !known {
		s.logger.Debug("no fee row for state, using default",
			zap.String("requested", input.State),
		)
	}

	rate := input.InterestRate
	if rate == 0 {
		rate = defaultPrepaidRate
	}
	days := input.PrepaidDays
	if days == 0 {
		days = defaultPrepaidDays
	}

	loan, price := input.LoanAmount, input.HomePrice

	lender := domain.LenderFees{
		Origination:  roundTo2Decimals(loan * originationPercent / 100),
		Underwriting: underwritingFee,
		Processing:   processingFee,
	}
	lender.Total = sumMoney(lender.Origination, lender.Underwriting, lender.Processing)

	thirdParty := domain.ThirdPartyFees{
		Appraisal:      appraisalFee,
		CreditReport:   creditReportFee,
		TitleInsurance: roundTo2Decimals(loan * titleInsurancePercent / 100),
		Escrow:         roundTo2Decimals(price * escrowFeePercent / 100),
		RecordingFee:   fees.recordingFee,
		TransferTax:    roundTo2Decimals(price * fees.transferTaxPercent / 100),
		DocStamps:      roundTo2Decimals(loan * fees.docStampsPercent / 100),
	}
	thirdParty.Total = sumMoney(
		thirdParty.Appraisal,
		thirdParty.CreditReport,
		thirdParty.TitleInsurance,
		thirdParty.Escrow,
		thirdParty.RecordingFee,
		thirdParty.TransferTax,
		thirdParty.DocStamps,
	)

	annualTax := price * propertyTaxPercent / 100
	annualInsurance := price * insurancePercent / 100
	prepaids := domain.PrepaidItems{
		PrepaidInterest:   roundTo2Decimals(loan * rate / 100 / daysPerYear * float64(days)),
		PropertyTaxEscrow: roundTo2Decimals(annualTax * propertyTaxEscrowMonths / monthsPerYear),
		InsurancePremium:  roundTo2Decimals(annualInsurance),
		InsuranceEscrow:   roundTo2Decimals(annualInsurance * insuranceEscrowMonths / monthsPerYear),
	}
	prepaids.Total = sumMoney(
		prepaids.PrepaidInterest,
		prepaids.PropertyTaxEscrow,
		prepaids.InsurancePremium,
		prepaids.InsuranceEscrow,
	)

	grandTotal := sumMoney(lender.Total, thirdParty.Total, prepaids.Total)

	return domain.ClosingCostWorksheet{
		State:                   state,
		LenderFees:              lender,
		ThirdPartyFees:          thirdParty,
		Prepaids:                prepaids,
		GrandTotal:              grandTotal,
		PercentOfLoan:           roundPercent(grandTotal / loan * 100),
		PercentOfPrice:          roundPercent(grandTotal / price * 100),
		EstimatedMonthlyPayment: roundTo2Decimals(monthlyPayment(loan, rate, estimateTermYears)),
	}, nil
}

// CalculateCashToClose estimates the funds due at closing, with the same
// credits applied across common down payment levels.
func (s *ClosingCostService) CalculateCashToClose(input domain.CashToCloseInput) (domain.CashToCloseResult, error) {
	if math.IsNaN(input.HomePrice) || input.HomePrice <= 0 {
		return domain.CashToCloseResult{}, invalidScenario("home price must be positive")
	}
	if input.DownPaymentPercent < 0 || input.DownPaymentPercent >= 100 {
		return domain.CashToCloseResult{}, invalidScenario("down payment must be between 0 and 100 percent")
	}
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"closing cost percent", input.ClosingCostPercent},
		{"seller credit", input.SellerCredit},
		{"lender credit", input.LenderCredit},
		{"earnest money deposit", input.EarnestMoneyDeposit},
	} {
		if err := validateNonNegative(field.name, field.value); err != nil {
			return domain.CashToCloseResult{}, err
		}
	}

	credits := input.SellerCredit + input.LenderCredit + input.EarnestMoneyDeposit

	scenario := func(downPaymentPercent float64) domain.CashToCloseScenario {
		downPayment := input.HomePrice * downPaymentPercent / 100
		loan := input.HomePrice - downPayment
		closingCosts := loan * input.ClosingCostPercent / 100
		return domain.CashToCloseScenario{
			DownPaymentPercent: downPaymentPercent,
			DownPayment:        roundTo2Decimals(downPayment),
			LoanAmount:         roundTo2Decimals(loan),
			ClosingCosts:       roundTo2Decimals(closingCosts),
			CashToClose:        roundTo2Decimals(math.Max(0, downPayment+closingCosts-credits)),
		}
	}

	requested := scenario(input.DownPaymentPercent)
	return domain.CashToCloseResult{
		DownPayment:  requested.DownPayment,
		LoanAmount:   requested.LoanAmount,
		ClosingCosts: requested.ClosingCosts,
		TotalCredits: roundTo2Decimals(credits),
		CashToClose:  requested.CashToClose,
		Scenarios:    mapScenarios(cashToCloseDownPayments, scenario),
	}, nil
}

// sumMoney adds already rounded amounts so totals match their items.
func sumMoney(items ...float64) float64 {
	total := 0.0
	for _, item := range items {
		total += item
	}
	return roundTo2Decimals(total)
}
