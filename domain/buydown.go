package domain

type BuydownType string

const (
	Buydown10  BuydownType = "1-0"
	Buydown21  BuydownType = "2-1"
	Buydown321 BuydownType = "3-2-1"
)

type BuydownInput struct {
	LoanAmount  float64     `json:"loanAmount"`
	NoteRate    float64     `json:"noteRate"`
	TermYears   int         `json:"termYears"`
	BuydownType BuydownType `json:"buydownType"`
}

// YearEntry is one year of a buydown schedule.
type YearEntry struct {
	Year           int     `json:"year"`
	Rate           float64 `json:"rate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	MonthlySavings float64 `json:"monthlySavings"`
	YearSavings    float64 `json:"yearSavings"`
	IsNoteRate     bool    `json:"isNoteRate"`
}

type PaymentShock struct {
	FromYear     int     `json:"fromYear,omitempty"`
	ToYear       int     `json:"toYear,omitempty"`
	Shock        float64 `json:"shock"`
	ShockPercent float64 `json:"shockPercent"`
}

type BuydownResult struct {
	BuydownType      BuydownType    `json:"buydownType"`
	LoanAmount       float64        `json:"loanAmount"`
	NoteRate         float64        `json:"noteRate"`
	FullPayment      float64        `json:"fullPayment"`
	Schedule         []YearEntry    `json:"schedule"`
	TotalBuydownCost float64        `json:"totalBuydownCost"`
	PaymentShocks    []PaymentShock `json:"paymentShocks"`
}

type BuydownSubsidyResult struct {
	BuydownResult
	SubsidyRequired float64 `json:"subsidyRequired"`
	SubsidyPercent  float64 `json:"subsidyPercent"`
}

type SellerConcessionInput struct {
	BuydownInput
	SellerConcession float64 `json:"sellerConcession"`
}

type SellerConcessionResult struct {
	BuydownResult
	SellerConcession float64 `json:"sellerConcession"`
	CoversBuydown    bool    `json:"coversBuydown"`
	RemainingCredit  float64 `json:"remainingCredit"`
	Shortfall        float64 `json:"shortfall"`
}

type BuydownComparison struct {
	Results []BuydownResult `json:"results"`
}

type PaymentShockInput struct {
	CurrentPayment float64 `json:"currentPayment"`
	NewPayment     float64 `json:"newPayment"`
}
