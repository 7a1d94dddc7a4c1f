package service

import "deal-analyzer/domain"

// operatingExpenses itemizes the monthly outflows of a rented property given
// the mortgage payment that services it. Vacancy and management are charged
// as a share of gross rent.
func operatingExpenses(o domain.OperatingInputs, mortgage int64) domain.ExpenseBreakdown {
	e := domain.ExpenseBreakdown{
		Mortgage:           mortgage,
		Insurance:          o.MonthlyInsurance,
		PropertyTax:        o.MonthlyPropertyTax,
		HOA:                o.MonthlyHOA,
		Maintenance:        o.MonthlyMaintenance,
		Vacancy:            percentOf(o.MonthlyRent, o.VacancyRate),
		PropertyManagement: percentOf(o.MonthlyRent, o.PropertyManagementPercent),
	}
	e.Total = e.Mortgage + e.Insurance + e.PropertyTax + e.HOA +
		e.Maintenance + e.Vacancy + e.PropertyManagement
	return e
}

// ratio returns numerator/denominator as a percentage, or 0 when the
// denominator is not positive.
func ratio(numerator, denominator int64) float64 {
	if denominator <= 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

func validateRental(in domain.RentalInput) error {
	v := validator{}
	v.positiveMoney("purchasePrice", in.PurchasePrice)
	v.percent("downPaymentPercent", in.DownPaymentPercent)
	v.rate("interestRate", in.InterestRate)
	v.termYears("loanTermYears", in.LoanTermYears)
	v.money("closingCosts", in.ClosingCosts)
	v.operating(in.OperatingInputs)
	return v.err
}

// CalculateRental computes cash flow and return metrics for a buy-and-hold
// rental financed with a conventional amortizing mortgage.
func CalculateRental(in domain.RentalInput) (domain.RentalResult, error) {
	if err := validateRental(in); err != nil {
		return domain.RentalResult{}, err
	}

	downPayment := percentOf(in.PurchasePrice, in.DownPaymentPercent)
	loanAmount := in.PurchasePrice - downPayment
	totalCashNeeded := downPayment + in.ClosingCosts

	mortgage := monthlyPayment(domain.LoanTerms{
		Principal:         loanAmount,
		AnnualRatePercent: in.InterestRate,
		TermYears:         in.LoanTermYears,
	})

	expenses := operatingExpenses(in.OperatingInputs, mortgage)
	monthlyCashFlow := in.MonthlyRent - expenses.Total
	annualCashFlow := monthlyCashFlow * MonthsPerYear
	cashOnCash := ratio(annualCashFlow, totalCashNeeded)

	// NOI excludes debt service.
	annualNOI := in.MonthlyRent*MonthsPerYear - expenses.Operating()*MonthsPerYear
	capRate := float64(annualNOI) / float64(in.PurchasePrice) * 100

	return domain.RentalResult{
		PurchasePrice:          in.PurchasePrice,
		DownPayment:            downPayment,
		LoanAmount:             loanAmount,
		TotalCashNeeded:        totalCashNeeded,
		MonthlyMortgagePayment: mortgage,
		MonthlyRent:            in.MonthlyRent,
		MonthlyExpenses:        expenses.Total,
		MonthlyCashFlow:        monthlyCashFlow,
		AnnualCashFlow:         annualCashFlow,
		AnnualNOI:              annualNOI,
		AnnualROI:              cashOnCash,
		CashOnCashReturn:       cashOnCash,
		CapRate:                capRate,
		Expenses:               expenses,
	}, nil
}
