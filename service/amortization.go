package service

import (
	"math"

	"deal-analyzer/domain"
)

// roundCurrency rounds to the nearest whole currency unit, halves away from zero.
func roundCurrency(value float64) int64 {
	return int64(math.Round(value))
}

// percentOf returns round(amount × percent/100).
func percentOf(amount int64, percent float64) int64 {
	return roundCurrency(float64(amount) * (percent / 100))
}

// monthlyRate converts an annual percentage into the periodic rate.
func monthlyRate(annualRatePercent float64) float64 {
	return (annualRatePercent / 100) / MonthsPerYear
}

// annuityPayment is the unrounded fixed payment that retires principal in n
// monthly installments at the given annual rate.
func annuityPayment(principal float64, annualRatePercent float64, n int) float64 {
	if annualRatePercent == 0 {
		return principal / float64(n)
	}
	r := monthlyRate(annualRatePercent)
	// (1+r)^n - 1, kept accurate when 1+r rounds to 1.
	factor := math.Expm1(float64(n) * math.Log1p(r))
	if factor == 0 {
		return principal / float64(n)
	}
	return principal * r * (factor + 1) / factor
}

func validateLoan(field string, terms domain.LoanTerms) error {
	v := validator{}
	v.money(field, terms.Principal)
	v.rate("annualRatePercent", terms.AnnualRatePercent)
	v.termYears("termYears", terms.TermYears)
	return v.err
}

// MonthlyPayment returns the fixed monthly installment, rounded to a whole
// currency unit, that fully repays principal over termYears at
// annualRatePercent. A zero rate splits the principal evenly, and that
// quotient is rounded to a whole unit as well.
func MonthlyPayment(principal int64, annualRatePercent float64, termYears int) (int64, error) {
	terms := domain.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermYears:         termYears,
	}
	if err := validateLoan("principal", terms); err != nil {
		return 0, err
	}
	return monthlyPayment(terms), nil
}

// monthlyPayment assumes terms were validated.
func monthlyPayment(terms domain.LoanTerms) int64 {
	n := terms.TermYears * MonthsPerYear
	return roundCurrency(annuityPayment(float64(terms.Principal), terms.AnnualRatePercent, n))
}

// AmortizationSchedule walks the loan month by month using the rounded
// payment. Interest is rounded each month; the final installment pays off
// whatever balance remains.
func AmortizationSchedule(terms domain.LoanTerms) (domain.AmortizationSchedule, error) {
	if err := validateLoan("principal", terms); err != nil {
		return domain.AmortizationSchedule{}, err
	}

	payment := monthlyPayment(terms)
	r := monthlyRate(terms.AnnualRatePercent)
	n := terms.TermYears * MonthsPerYear

	schedule := domain.AmortizationSchedule{
		MonthlyPayment: payment,
		Rows:           make([]domain.AmortizationRow, 0, n),
	}

	balance := terms.Principal
	for month := 1; month <= n; month++ {
		interest := roundCurrency(float64(balance) * r)
		installment := payment
		if month == n || installment > balance+interest {
			installment = balance + interest
		}
		principalPaid := installment - interest
		balance -= principalPaid

		schedule.Rows = append(schedule.Rows, domain.AmortizationRow{
			Month:            month,
			Payment:          installment,
			Interest:         interest,
			Principal:        principalPaid,
			RemainingBalance: balance,
		})
		schedule.TotalPayment += installment
		schedule.TotalInterest += interest
	}

	return schedule, nil
}
