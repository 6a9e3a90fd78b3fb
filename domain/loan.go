package domain

// LoanScenario is the baseline scenario every calculation starts from.
type LoanScenario struct {
	LoanAmount float64 `json:"loanAmount"`
	Rate       float64 `json:"rate"`
	TermYears  int     `json:"termYears"`
}

type LoanQuote struct {
	LoanAmount     float64 `json:"loanAmount"`
	Rate           float64 `json:"rate"`
	TermYears      int     `json:"termYears"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// BreakEven is the number of months needed for monthly savings to recover an
// upfront cost. Reachable is false when the savings never recover it.
type BreakEven struct {
	Months    int  `json:"months"`
	Reachable bool `json:"reachable"`
}

// NeverBreaksEven is the unreachable break-even value.
func NeverBreaksEven() BreakEven {
	return BreakEven{Months: 0, Reachable: false}
}

// Years returns the break-even point in years, or 0 when unreachable.
func (b BreakEven) Years() float64 {
	if !b.Reachable {
		return 0
	}
	return float64(b.Months) / 12
}
