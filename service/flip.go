package service

import "deal-analyzer/domain"

func validateFlip(in domain.FlipInput) error {
	v := validator{}
	v.positiveMoney("purchasePrice", in.PurchasePrice)
	v.percent("downPaymentPercent", in.DownPaymentPercent)
	v.rate("interestRate", in.InterestRate)
	v.money("closingCosts", in.ClosingCosts)
	v.money("renovationCost", in.RenovationCost)
	v.months("holdingMonths", in.HoldingMonths)
	v.money("afterRepairValue", in.AfterRepairValue)
	v.percent("sellingCostsPercent", in.SellingCostsPercent)
	return v.err
}

// CalculateFlip computes the profit of a single buy, renovate and sell cycle.
// The acquisition loan is treated as interest-only for the holding period.
func CalculateFlip(in domain.FlipInput) (domain.FlipResult, error) {
	if err := validateFlip(in); err != nil {
		return domain.FlipResult{}, err
	}

	downPayment := percentOf(in.PurchasePrice, in.DownPaymentPercent)
	loanAmount := in.PurchasePrice - downPayment
	totalInvestment := downPayment + in.ClosingCosts + in.RenovationCost

	monthlyInterest := float64(loanAmount) * (in.InterestRate / 100) / MonthsPerYear
	interestCosts := roundCurrency(monthlyInterest * float64(in.HoldingMonths))

	monthlyHoldingCost := roundCurrency(float64(in.PurchasePrice) * FlipMonthlyHoldingCostRate)
	holdingCosts := monthlyHoldingCost * int64(in.HoldingMonths)

	sellingCosts := percentOf(in.AfterRepairValue, in.SellingCostsPercent)

	totalCosts := in.PurchasePrice + in.ClosingCosts + in.RenovationCost +
		interestCosts + holdingCosts + sellingCosts

	grossProfit := in.AfterRepairValue - in.PurchasePrice - in.RenovationCost
	netProfit := in.AfterRepairValue - totalCosts

	return domain.FlipResult{
		PurchasePrice:    in.PurchasePrice,
		DownPayment:      downPayment,
		LoanAmount:       loanAmount,
		RenovationCost:   in.RenovationCost,
		TotalInvestment:  totalInvestment,
		HoldingCosts:     holdingCosts,
		InterestCosts:    interestCosts,
		SellingCosts:     sellingCosts,
		TotalCosts:       totalCosts,
		AfterRepairValue: in.AfterRepairValue,
		GrossProfit:      grossProfit,
		NetProfit:        netProfit,
		ROI:              ratio(netProfit, totalInvestment),
	}, nil
}
