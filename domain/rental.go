package domain

// OperatingInputs holds the recurring income and cost assumptions shared by
// the buy-and-hold strategies.
type OperatingInputs struct {
	MonthlyRent               int64   `json:"monthlyRent"`
	VacancyRate               float64 `json:"vacancyRate"`
	PropertyManagementPercent float64 `json:"propertyManagementPercent"`
	MonthlyInsurance          int64   `json:"monthlyInsurance"`
	MonthlyPropertyTax        int64   `json:"monthlyPropertyTax"`
	MonthlyHOA                int64   `json:"monthlyHOA"`
	MonthlyMaintenance        int64   `json:"monthlyMaintenance"`
}

type RentalInput struct {
	PurchasePrice      int64   `json:"purchasePrice"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	InterestRate       float64 `json:"interestRate"`
	LoanTermYears      int     `json:"loanTermYears"`
	ClosingCosts       int64   `json:"closingCosts"`
	OperatingInputs
}

// ExpenseBreakdown itemizes the monthly outflows of a rented property.
type ExpenseBreakdown struct {
	Mortgage           int64 `json:"mortgage"`
	Insurance          int64 `json:"insurance"`
	PropertyTax        int64 `json:"propertyTax"`
	HOA                int64 `json:"hoa"`
	Maintenance        int64 `json:"maintenance"`
	Vacancy            int64 `json:"vacancy"`
	PropertyManagement int64 `json:"propertyManagement"`
	Total              int64 `json:"total"`
}

// Operating returns the expenses that count against NOI, i.e. everything
// except debt service.
func (e ExpenseBreakdown) Operating() int64 {
	return e.Total - e.Mortgage
}

type RentalResult struct {
	PurchasePrice   int64 `json:"purchasePrice"`
	DownPayment     int64 `json:"downPayment"`
	LoanAmount      int64 `json:"loanAmount"`
	TotalCashNeeded int64 `json:"totalCashNeeded"`

	MonthlyMortgagePayment int64 `json:"monthlyMortgagePayment"`
	MonthlyRent            int64 `json:"monthlyRent"`
	MonthlyExpenses        int64 `json:"monthlyExpenses"`
	MonthlyCashFlow        int64 `json:"monthlyCashFlow"`

	AnnualCashFlow   int64   `json:"annualCashFlow"`
	AnnualNOI        int64   `json:"annualNOI"`
	AnnualROI        float64 `json:"annualROI"`
	CashOnCashReturn float64 `json:"cashOnCashReturn"`
	CapRate          float64 `json:"capRate"`

	Expenses ExpenseBreakdown `json:"expenses"`
}
