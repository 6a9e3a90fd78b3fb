package domain

type TermPreference string

const (
	PreferMinimizeInterest TermPreference = "minimize_interest"
	PreferMinimizePayment  TermPreference = "minimize_payment"
	PreferBalanced         TermPreference = "balanced"
)

type TermRecommendationInput struct {
	LoanAmount        float64        `json:"loanAmount"`
	Rate              float64        `json:"rate"`
	MaxMonthlyPayment float64        `json:"maxMonthlyPayment,omitempty"` // 0 means no cap
	Preference        TermPreference `json:"preference,omitempty"`        // defaults to balanced
}

type TermRecommendation struct {
	TermYears      int     `json:"termYears"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

// TermRecommendationResult lists the affordable terms, best score first.
type TermRecommendationResult struct {
	RecommendedTerm int                  `json:"recommendedTerm"`
	Preference      TermPreference       `json:"preference"`
	Recommendations []TermRecommendation `json:"recommendations"`
}
