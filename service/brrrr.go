package service

import "deal-analyzer/domain"

func validateBRRRR(in domain.BRRRRInput) error {
	v := validator{}
	v.positiveMoney("purchasePrice", in.PurchasePrice)
	v.percent("downPaymentPercent", in.DownPaymentPercent)
	v.rate("interestRate", in.InterestRate)
	v.termYears("loanTermYears", in.LoanTermYears)
	v.money("closingCosts", in.ClosingCosts)
	v.money("renovationCost", in.RenovationCost)
	v.money("afterRepairValue", in.AfterRepairValue)
	v.percent("refinanceLTV", in.RefinanceLTV)
	v.rate("refinanceRate", in.RefinanceRate)
	v.termYears("refinanceLoanTermYears", in.RefinanceLoanTermYears)
	v.operating(in.OperatingInputs)
	return v.err
}

// CalculateBRRRR models a purchase financed with an acquisition loan, a
// cash-out refinance sized off the after-repair value, and the rental cash
// flow under the new permanent loan.
//
// The acquisition loan is assumed to be repaid in full by the refinance with
// no principal paid down beforehand. When the refinance returns all of the
// capital put in, cash-on-cash is reported as infinite.
func CalculateBRRRR(in domain.BRRRRInput) (domain.BRRRRResult, error) {
	if err := validateBRRRR(in); err != nil {
		return domain.BRRRRResult{}, err
	}

	downPayment := percentOf(in.PurchasePrice, in.DownPaymentPercent)
	totalInitialInvestment := downPayment + in.ClosingCosts + in.RenovationCost
	originalLoanBalance := in.PurchasePrice - downPayment

	acquisitionPayment := monthlyPayment(domain.LoanTerms{
		Principal:         originalLoanBalance,
		AnnualRatePercent: in.InterestRate,
		TermYears:         in.LoanTermYears,
	})

	refinanceAmount := percentOf(in.AfterRepairValue, in.RefinanceLTV)
	cashOutRefinance := refinanceAmount - originalLoanBalance
	cashLeftInDeal := max(0, totalInitialInvestment-cashOutRefinance)

	mortgage := monthlyPayment(domain.LoanTerms{
		Principal:         refinanceAmount,
		AnnualRatePercent: in.RefinanceRate,
		TermYears:         in.RefinanceLoanTermYears,
	})

	expenses := operatingExpenses(in.OperatingInputs, mortgage)
	monthlyCashFlow := in.MonthlyRent - expenses.Total
	annualCashFlow := monthlyCashFlow * MonthsPerYear

	infinite := cashLeftInDeal <= 0
	cashOnCash := domain.InfiniteReturn()
	if !infinite {
		cashOnCash = domain.FiniteReturn(ratio(annualCashFlow, cashLeftInDeal))
	}

	return domain.BRRRRResult{
		PurchasePrice:              in.PurchasePrice,
		DownPayment:                downPayment,
		RenovationCost:             in.RenovationCost,
		TotalInitialInvestment:     totalInitialInvestment,
		AcquisitionMortgagePayment: acquisitionPayment,
		AfterRepairValue:           in.AfterRepairValue,
		RefinanceAmount:            refinanceAmount,
		OriginalLoanBalance:        originalLoanBalance,
		CashOutRefinance:           cashOutRefinance,
		CashLeftInDeal:             cashLeftInDeal,
		MonthlyMortgagePayment:     mortgage,
		MonthlyRent:                in.MonthlyRent,
		MonthlyExpenses:            expenses.Total,
		MonthlyCashFlow:            monthlyCashFlow,
		AnnualCashFlow:             annualCashFlow,
		Expenses:                   expenses,
		InfiniteReturn:             infinite,
		CashOnCashReturn:           cashOnCash,
		TotalEquity:                in.AfterRepairValue - refinanceAmount,
	}, nil
}
