package domain

type BRRRRInput struct {
	PurchasePrice          int64   `json:"purchasePrice"`
	DownPaymentPercent     float64 `json:"downPaymentPercent"`
	InterestRate           float64 `json:"interestRate"`
	LoanTermYears          int     `json:"loanTermYears"`
	ClosingCosts           int64   `json:"closingCosts"`
	RenovationCost         int64   `json:"renovationCost"`
	AfterRepairValue       int64   `json:"afterRepairValue"`
	RefinanceLTV           float64 `json:"refinanceLTV"`
	RefinanceRate          float64 `json:"refinanceRate"`
	RefinanceLoanTermYears int     `json:"refinanceLoanTermYears"`
	OperatingInputs
}

type BRRRRResult struct {
	PurchasePrice          int64 `json:"purchasePrice"`
	DownPayment            int64 `json:"downPayment"`
	RenovationCost         int64 `json:"renovationCost"`
	TotalInitialInvestment int64 `json:"totalInitialInvestment"`

	// AcquisitionMortgagePayment is what the acquisition loan would cost per
	// month if it were kept. It is informational only; cash flow uses the
	// refinance payment.
	AcquisitionMortgagePayment int64 `json:"acquisitionMortgagePayment"`

	AfterRepairValue    int64 `json:"afterRepairValue"`
	RefinanceAmount     int64 `json:"refinanceAmount"`
	OriginalLoanBalance int64 `json:"originalLoanBalance"`
	CashOutRefinance    int64 `json:"cashOutRefinance"`
	CashLeftInDeal      int64 `json:"cashLeftInDeal"`

	MonthlyMortgagePayment int64            `json:"monthlyMortgagePayment"`
	MonthlyRent            int64            `json:"monthlyRent"`
	MonthlyExpenses        int64            `json:"monthlyExpenses"`
	MonthlyCashFlow        int64            `json:"monthlyCashFlow"`
	AnnualCashFlow         int64            `json:"annualCashFlow"`
	Expenses               ExpenseBreakdown `json:"expenses"`

	InfiniteReturn   bool       `json:"infiniteReturn"`
	CashOnCashReturn ReturnRate `json:"cashOnCashReturn"`
	TotalEquity      int64      `json:"totalEquity"`
}
