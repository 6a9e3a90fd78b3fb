package domain

type LockFeeInput struct {
	LoanAmount float64 `json:"loanAmount"`
	LockDays   int     `json:"lockDays"`
}

// LockFeeTier is one row of the lock-period pricing schedule.
type LockFeeTier struct {
	Days       int     `json:"days"`
	FeePercent float64 `json:"feePercent"`
}

type LockFeeResult struct {
	LockDays   int     `json:"lockDays"`
	TierDays   int     `json:"tierDays"`
	FeePercent float64 `json:"feePercent"`
	Fee        float64 `json:"fee"`
}

type ExtensionFeeInput struct {
	LoanAmount         float64 `json:"loanAmount"`
	ExtensionDays      int     `json:"extensionDays"`
	CurrentLockExpired bool    `json:"currentLockExpired"`
}

type ExtensionFeeResult struct {
	ExtensionDays  int     `json:"extensionDays"`
	Weeks          int     `json:"weeks"`
	FeePercent     float64 `json:"feePercent"`
	ExpiredPenalty bool    `json:"expiredPenalty"`
	Fee            float64 `json:"fee"`
}

type LockDecision string

const (
	DecisionLock  LockDecision = "Lock"
	DecisionFloat LockDecision = "Float"
)

type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

type LockVsFloatInput struct {
	LoanAmount         float64 `json:"loanAmount"`
	TermYears          int     `json:"termYears"`
	CurrentRate        float64 `json:"currentRate"`
	LockDays           int     `json:"lockDays"`
	ExpectedRateChange float64 `json:"expectedRateChange"`
}

type RateScenario struct {
	RateChange        float64 `json:"rateChange"`
	Rate              float64 `json:"rate"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
	PaymentDifference float64 `json:"paymentDifference"`
	Verdict           string  `json:"verdict"`
}

type LockVsFloatResult struct {
	LockedRate         float64        `json:"lockedRate"`
	FloatRate          float64        `json:"floatRate"`
	LockedPayment      float64        `json:"lockedPayment"`
	FloatPayment       float64        `json:"floatPayment"`
	PaymentDifference  float64        `json:"paymentDifference"`
	LifetimeDifference float64        `json:"lifetimeDifference"`
	LockFee            LockFeeResult  `json:"lockFee"`
	Recommendation     LockDecision   `json:"recommendation"`
	Confidence         Confidence     `json:"confidence"`
	Scenarios          []RateScenario `json:"scenarios"`
}

type FloatDownInput struct {
	LoanAmount         float64 `json:"loanAmount"`
	TermYears          int     `json:"termYears"`
	LockedRate         float64 `json:"lockedRate"`
	FloatDownFee       float64 `json:"floatDownFee"` // percent of loan
	ExpectedRateDrop   float64 `json:"expectedRateDrop"`
	HoldingPeriodYears float64 `json:"holdingPeriodYears"`
}

type FloatDownScenario struct {
	RateDrop       float64 `json:"rateDrop"`
	NewRate        float64 `json:"newRate"`
	MonthlySavings float64 `json:"monthlySavings"`
	NetSavings     float64 `json:"netSavings"`
	WorthIt        bool    `json:"worthIt"`
}

// FloatDownAnalysis values a float-down option. MinRateDropForBreakEven is
// only meaningful when BreakEvenReachable is true.
type FloatDownAnalysis struct {
	FeeCost                 float64             `json:"feeCost"`
	LockedPayment           float64             `json:"lockedPayment"`
	NewRate                 float64             `json:"newRate"`
	NewPayment              float64             `json:"newPayment"`
	MonthlySavings          float64             `json:"monthlySavings"`
	HoldingMonths           int                 `json:"holdingMonths"`
	NetSavings              float64             `json:"netSavings"`
	WorthIt                 bool                `json:"worthIt"`
	MinRateDropForBreakEven float64             `json:"minRateDropForBreakEven"`
	BreakEvenReachable      bool                `json:"breakEvenReachable"`
	Scenarios               []FloatDownScenario `json:"scenarios"`
}
