package domain

type FlipInput struct {
	PurchasePrice       int64   `json:"purchasePrice"`
	DownPaymentPercent  float64 `json:"downPaymentPercent"`
	InterestRate        float64 `json:"interestRate"`
	ClosingCosts        int64   `json:"closingCosts"`
	RenovationCost      int64   `json:"renovationCost"`
	HoldingMonths       int     `json:"holdingMonths"`
	AfterRepairValue    int64   `json:"afterRepairValue"`
	SellingCostsPercent float64 `json:"sellingCostsPercent"`
}

type FlipResult struct {
	PurchasePrice   int64 `json:"purchasePrice"`
	DownPayment     int64 `json:"downPayment"`
	LoanAmount      int64 `json:"loanAmount"`
	RenovationCost  int64 `json:"renovationCost"`
	TotalInvestment int64 `json:"totalInvestment"`

	HoldingCosts  int64 `json:"holdingCosts"`
	InterestCosts int64 `json:"interestCosts"`
	SellingCosts  int64 `json:"sellingCosts"`
	TotalCosts    int64 `json:"totalCosts"`

	AfterRepairValue int64   `json:"afterRepairValue"`
	GrossProfit      int64   `json:"grossProfit"`
	NetProfit        int64   `json:"netProfit"`
	ROI              float64 `json:"roi"`
}
