package domain

type Recommendation string

const (
	StronglyRecommended Recommendation = "Strongly Recommended"
	Recommended         Recommendation = "Recommended"
	ConsiderCarefully   Recommendation = "Consider Carefully"
	NotRecommended      Recommendation = "Not Recommended"
)

type PointsBreakEvenInput struct {
	LoanAmount float64 `json:"loanAmount"`
	BaseRate   float64 `json:"baseRate"`
	PointsRate float64 `json:"pointsRate"`
	PointsCost float64 `json:"pointsCost"` // in points, 1 point = 1% of the loan
	TermYears  int     `json:"termYears"`
}

type PointsBreakEvenResult struct {
	BasePayment     float64        `json:"basePayment"`
	PointsPayment   float64        `json:"pointsPayment"`
	MonthlySavings  float64        `json:"monthlySavings"`
	TotalPointsCost float64        `json:"totalPointsCost"`
	RateReduction   float64        `json:"rateReduction"`
	BreakEven       BreakEven      `json:"breakEven"`
	BreakEvenYears  float64        `json:"breakEvenYears"`
	Savings5Years   float64        `json:"savings5Years"`
	Savings10Years  float64        `json:"savings10Years"`
	SavingsFullTerm float64        `json:"savingsFullTerm"`
	Recommendation  Recommendation `json:"recommendation"`
}

type PointsCostInput struct {
	LoanAmount            float64 `json:"loanAmount"`
	Points                float64 `json:"points"`
	RateReductionPerPoint float64 `json:"rateReductionPerPoint,omitempty"`
}

type PointsCostRow struct {
	Points        float64 `json:"points"`
	Cost          float64 `json:"cost"`
	RateReduction float64 `json:"rateReduction"`
}

type PointsCostResult struct {
	Points        float64         `json:"points"`
	Cost          float64         `json:"cost"`
	RateReduction float64         `json:"rateReduction"`
	Table         []PointsCostRow `json:"table"`
}

type PointsVsCreditsInput struct {
	LoanAmount   float64 `json:"loanAmount"`
	TermYears    int     `json:"termYears"`
	PointsRate   float64 `json:"pointsRate"`
	PointsCost   float64 `json:"pointsCost"` // points paid, percent of loan
	CreditRate   float64 `json:"creditRate"`
	LenderCredit float64 `json:"lenderCredit"` // credit received, percent of loan
}

type Option string

const (
	OptionPoints Option = "points"
	OptionCredit Option = "credit"
	OptionEqual  Option = "equal"
)

type HorizonComparison struct {
	Months       int     `json:"months"`
	PointsTotal  float64 `json:"pointsTotal"`
	CreditTotal  float64 `json:"creditTotal"`
	Difference   float64 `json:"difference"`
	BetterOption Option  `json:"betterOption"`
}

type PointsVsCreditsResult struct {
	PointsPayment   float64             `json:"pointsPayment"`
	CreditPayment   float64             `json:"creditPayment"`
	PointsUpfront   float64             `json:"pointsUpfront"`
	CreditAmount    float64             `json:"creditAmount"`
	CrossoverMonths BreakEven           `json:"crossoverMonths"`
	Horizons        []HorizonComparison `json:"horizons"`
}
