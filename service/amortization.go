package service

import (
	"math"
)

// MonthlyPayment returns the fixed principal-and-interest payment of a fully
// amortizing loan. The result is not rounded so it can feed other
// calculations without compounding rounding error.
func MonthlyPayment(loanAmount, annualRatePercent float64, termYears int) (float64, error) {
	if err := validateScenario(loanAmount, annualRatePercent, termYears); err != nil {
		return 0, err
	}
	return monthlyPayment(loanAmount, annualRatePercent, termYears), nil
}

// monthlyPayment assumes validated inputs.
func monthlyPayment(loanAmount, annualRatePercent float64, termYears int) float64 {
	n := float64(termYears * monthsPerYear)
	r := annualRatePercent / 100 / monthsPerYear

	// growth is (1+r)^n - 1, kept accurate for rates close to zero.
	growth := math.Expm1(n * math.Log1p(r))
	if growth == 0 {
		return loanAmount / n
	}
	return loanAmount * r * (growth + 1) / growth
}

// simulateBalance steps the loan forward one month at a time, calling visit
// with the ending balance of each month. Month 0 is the opening balance.
// It stops when visit returns false or the term runs out.
func simulateBalance(loanAmount, annualRatePercent float64, termYears int, visit func(month int, balance float64) bool) {
	payment := monthlyPayment(loanAmount, annualRatePercent, termYears)
	r := annualRatePercent / 100 / monthsPerYear
	balance := loanAmount

	if !visit(0, balance) {
		return
	}
	for month := 1; month <= termYears*monthsPerYear; month++ {
		interest := balance * r
		balance -= payment - interest
		if balance < 0 {
			balance = 0
		}
		if !visit(month, balance) {
			return
		}
	}
}

func validateScenario(loanAmount, annualRatePercent float64, termYears int) error {
	if err := validateLoanAmount(loanAmount); err != nil {
		return err
	}
	if err := validateRate("rate", annualRatePercent); err != nil {
		return err
	}
	if termYears <= 0 {
		return invalidScenario("term must be positive, got %d years", termYears)
	}
	if termYears > MaxTermYears {
		return invalidScenario("term exceeds the maximum of %d years", MaxTermYears)
	}
	return nil
}

func validateLoanAmount(loanAmount float64) error {
	if math.IsNaN(loanAmount) || loanAmount <= 0 {
		return invalidScenario("loan amount must be positive")
	}
	if loanAmount > MaxLoanAmount {
		return invalidScenario("loan amount exceeds the maximum of $%.2f", MaxLoanAmount)
	}
	return nil
}

func validateRate(field string, rate float64) error {
	if math.IsNaN(rate) || rate < 0 {
		return invalidScenario("%s must not be negative", field)
	}
	if rate > MaxInterestRate {
		return invalidScenario("%s exceeds the maximum of %.2f%%", field, MaxInterestRate)
	}
	return nil
}

func validateNonNegative(field string, value float64) error {
	if math.IsNaN(value) || value < 0 {
		return invalidScenario("%s must not be negative", field)
	}
	return nil
}

// mapScenarios runs the same calculation over a fixed list of inputs.
func mapScenarios[In, Out any](inputs []In, calc func(In) Out) []Out {
	out := make([]Out, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, calc(in))
	}
	return out
}
