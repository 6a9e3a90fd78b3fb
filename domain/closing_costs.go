package domain

type ClosingCostInput struct {
	LoanAmount   float64 `json:"loanAmount"`
	HomePrice    float64 `json:"homePrice"`
	State        string  `json:"state"`
	InterestRate float64 `json:"interestRate,omitempty"` // defaults to 7%
	PrepaidDays  int     `json:"prepaidDays,omitempty"`  // defaults to 15
}

type LenderFees struct {
	Origination  float64 `json:"origination"`
	Underwriting float64 `json:"underwriting"`
	Processing   float64 `json:"processing"`
	Total        float64 `json:"total"`
}

type ThirdPartyFees struct {
	Appraisal      float64 `json:"appraisal"`
	CreditReport   float64 `json:"creditReport"`
	TitleInsurance float64 `json:"titleInsurance"`
	Escrow         float64 `json:"escrow"`
	RecordingFee   float64 `json:"recordingFee"`
	TransferTax    float64 `json:"transferTax"`
	DocStamps      float64 `json:"docStamps"`
	Total          float64 `json:"total"`
}

type PrepaidItems struct {
	PrepaidInterest   float64 `json:"prepaidInterest"`
	PropertyTaxEscrow float64 `json:"propertyTaxEscrow"`
	InsurancePremium  float64 `json:"insurancePremium"`
	InsuranceEscrow   float64 `json:"insuranceEscrow"`
	Total             float64 `json:"total"`
}

// ClosingCostWorksheet groups the estimated closing costs. Each group's Total
// is the sum of its items and GrandTotal is the sum of the group totals.
type ClosingCostWorksheet struct {
	State                   string         `json:"state"`
	LenderFees              LenderFees     `json:"lenderFees"`
	ThirdPartyFees          ThirdPartyFees `json:"thirdPartyFees"`
	Prepaids                PrepaidItems   `json:"prepaids"`
	GrandTotal              float64        `json:"grandTotal"`
	PercentOfLoan           float64        `json:"percentOfLoan"`
	PercentOfPrice          float64        `json:"percentOfPrice"`
	EstimatedMonthlyPayment float64        `json:"estimatedMonthlyPayment"`
}

type CashToCloseInput struct {
	HomePrice           float64 `json:"homePrice"`
	DownPaymentPercent  float64 `json:"downPaymentPercent"`
	ClosingCostPercent  float64 `json:"closingCostPercent"` // percent of loan amount
	SellerCredit        float64 `json:"sellerCredit"`
	LenderCredit        float64 `json:"lenderCredit"`
	EarnestMoneyDeposit float64 `json:"earnestMoneyDeposit"`
}

type CashToCloseScenario struct {
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	DownPayment        float64 `json:"downPayment"`
	LoanAmount         float64 `json:"loanAmount"`
	ClosingCosts       float64 `json:"closingCosts"`
	CashToClose        float64 `json:"cashToClose"`
}

type CashToCloseResult struct {
	DownPayment  float64               `json:"downPayment"`
	LoanAmount   float64               `json:"loanAmount"`
	ClosingCosts float64               `json:"closingCosts"`
	TotalCredits float64               `json:"totalCredits"`
	CashToClose  float64               `json:"cashToClose"`
	Scenarios    []CashToCloseScenario `json:"scenarios"`
}
