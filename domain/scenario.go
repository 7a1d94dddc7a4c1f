package domain

import (
	"encoding/json"
	"time"
)

type StrategyType string

const (
	StrategyRental StrategyType = "rental"
	StrategyFlip   StrategyType = "flip"
	StrategyBRRRR  StrategyType = "brrrr"
)

func (s StrategyType) Valid() bool {
	switch s {
	case StrategyRental, StrategyFlip, StrategyBRRRR:
		return true
	}
	return false
}

// ScenarioMetrics is the headline summary kept alongside a saved scenario.
// Fields that do not apply to the scenario's strategy stay zero.
type ScenarioMetrics struct {
	PurchasePrice          int64       `json:"purchasePrice"`
	DownPaymentPercent     float64     `json:"downPaymentPercent"`
	DownPayment            int64       `json:"downPayment"`
	LoanAmount             int64       `json:"loanAmount"`
	InterestRate           float64     `json:"interestRate"`
	MonthlyMortgagePayment int64       `json:"monthlyMortgagePayment"`
	MonthlyCashFlow        int64       `json:"monthlyCashFlow"`
	AnnualCashFlow         int64       `json:"annualCashFlow"`
	CashOnCashReturn       *ReturnRate `json:"cashOnCashReturn,omitempty"`
	CapRate                *float64    `json:"capRate,omitempty"`
	ROI                    *float64    `json:"roi,omitempty"`
	TotalProfit            *int64      `json:"totalProfit,omitempty"`
}

// Scenario is a named calculation saved against a property. Input holds the
// strategy input exactly as it was analyzed.
type Scenario struct {
	ID         int64           `json:"id"`
	PropertyID int64           `json:"propertyId"`
	UserID     int64           `json:"userId"`
	Name       string          `json:"scenarioName"`
	Strategy   StrategyType    `json:"strategyType"`
	Input      json.RawMessage `json:"input"`
	Metrics    ScenarioMetrics `json:"metrics"`
	CreatedAt  time.Time       `json:"createdAt"`
}
