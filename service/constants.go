package service

const (
	MaxMonetaryAmount = 1_000_000_000_000 // 1 trillion currency units
	MaxInterestRate   = 100.0             // 100% annual
	MaxPercent        = 100.0
	MaxTermYears      = 50
	MinTermYears      = 1
	MaxHoldingMonths  = 120 // 10 years

	MonthsPerYear = 12

	// Flat monthly carrying cost of a flip (utilities, insurance, taxes) as a
	// fraction of the purchase price.
	FlipMonthlyHoldingCostRate = 0.01

	// widest span of loan terms a single comparison may evaluate
	MaxTermRangeYears = 40
)
