package domain

type LoanType string

const (
	LoanConventional LoanType = "conventional"
	LoanFHA          LoanType = "fha"
	LoanVA           LoanType = "va"
	LoanUSDA         LoanType = "usda"
)

type MortgageInsuranceInput struct {
	LoanType    LoanType `json:"loanType"`
	LoanAmount  float64  `json:"loanAmount"`
	HomePrice   float64  `json:"homePrice"`
	CreditScore int      `json:"creditScore"`
	Rate        float64  `json:"rate"`
	TermYears   int      `json:"termYears"`
}

type MortgageInsuranceResult struct {
	LoanType       LoanType            `json:"loanType"`
	LTV            float64             `json:"ltv"`
	Required       bool                `json:"required"`
	AnnualRate     float64             `json:"annualRate"`
	UpfrontRate    float64             `json:"upfrontRate"`
	UpfrontFee     float64             `json:"upfrontFee"`
	MonthlyPremium float64             `json:"monthlyPremium"`
	AnnualPremium  float64             `json:"annualPremium"`
	Financeable    bool                `json:"financeable"`
	FinancedLoan   float64             `json:"financedLoan"`
	Dropoff        *PMIDropoffSchedule `json:"dropoff,omitempty"`
}

type PMIDropoffInput struct {
	LoanAmount float64 `json:"loanAmount"`
	HomePrice  float64 `json:"homePrice"`
	Rate       float64 `json:"rate"`
	TermYears  int     `json:"termYears"`
}

// PMIDropoffSchedule records when the balance first reaches 80% (borrower may
// request removal) and 78% (automatic termination) of the original price.
type PMIDropoffSchedule struct {
	RequestRemovalMonth   int     `json:"requestRemovalMonth"`
	AutomaticRemovalMonth int     `json:"automaticRemovalMonth"`
	RequestRemovalYears   float64 `json:"requestRemovalYears"`
	AutomaticRemovalYears float64 `json:"automaticRemovalYears"`
}
