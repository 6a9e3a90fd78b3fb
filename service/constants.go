package service

const (
	MaxLoanAmount   = 100_000_000.0
	MaxInterestRate = 30.0 // annual percent
	MaxTermYears    = 50

	monthsPerYear = 12
)

// Money is rounded to cents; rate deltas keep a third decimal.
const (
	moneyPlaces   = 2
	percentPlaces = 2
	ratePlaces    = 3
)
