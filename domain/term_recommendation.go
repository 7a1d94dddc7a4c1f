package domain

type TermPreference string

const (
	PreferMaxCashFlow      TermPreference = "maximize_cash_flow"
	PreferMinimizeInterest TermPreference = "minimize_interest"
	PreferBalanced         TermPreference = "balanced"
)

type TermComparisonInput struct {
	Rental       RentalInput    `json:"rental"`
	MinTermYears int            `json:"minTermYears"`
	MaxTermYears int            `json:"maxTermYears"`
	Preference   TermPreference `json:"preference"`
}

type TermRecommendation struct {
	TermYears        int     `json:"termYears"`
	MonthlyPayment   int64   `json:"monthlyPayment"`
	TotalInterest    int64   `json:"totalInterest"`
	MonthlyCashFlow  int64   `json:"monthlyCashFlow"`
	CashOnCashReturn float64 `json:"cashOnCashReturn"`
	Score            float64 `json:"score"`
	Reason           string  `json:"reason"`
}

type TermComparisonResult struct {
	RecommendedTermYears int                  `json:"recommendedTermYears"`
	Recommendations      []TermRecommendation `json:"recommendations"`
}
