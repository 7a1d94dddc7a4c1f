package domain

// LoanTerms describes a fixed-rate, fully amortizing loan.
type LoanTerms struct {
	Principal         int64   `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         int     `json:"termYears"`
}

type LoanResult struct {
	MonthlyPayment int64 `json:"monthlyPayment"`
	TotalPayment   int64 `json:"totalPayment"`
	TotalInterest  int64 `json:"totalInterest"`
}

type AmortizationRow struct {
	Month            int   `json:"month"`
	Payment          int64 `json:"payment"`
	Interest         int64 `json:"interest"`
	Principal        int64 `json:"principal"`
	RemainingBalance int64 `json:"remainingBalance"`
}

// AmortizationSchedule lists every monthly payment of a loan. The last row
// absorbs whatever the rounded payment left over, so the balance ends at zero.
type AmortizationSchedule struct {
	MonthlyPayment int64             `json:"monthlyPayment"`
	TotalPayment   int64             `json:"totalPayment"`
	TotalInterest  int64             `json:"totalInterest"`
	Rows           []AmortizationRow `json:"rows"`
}
