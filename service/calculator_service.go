package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"

	"deal-analyzer/domain"
)

// CalculatorService exposes the three strategy analyzers to request
// handlers. The analyzers themselves are pure; this is where calls are logged.
type CalculatorService struct {
	logger *slog.Logger
}

func NewCalculatorService(logger *slog.Logger) *CalculatorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CalculatorService{logger: logger}
}

func (s *CalculatorService) Rental(in domain.RentalInput) (domain.RentalResult, error) {
	result, err := CalculateRental(in)
	s.record(domain.StrategyRental, err)
	return result, err
}

func (s *CalculatorService) Flip(in domain.FlipInput) (domain.FlipResult, error) {
	result, err := CalculateFlip(in)
	s.record(domain.StrategyFlip, err)
	return result, err
}

func (s *CalculatorService) BRRRR(in domain.BRRRRInput) (domain.BRRRRResult, error) {
	result, err := CalculateBRRRR(in)
	s.record(domain.StrategyBRRRR, err)
	return result, err
}

func (s *CalculatorService) record(strategy domain.StrategyType, err error) {
	var invalidErr *InvalidInputError
	switch {
	case err == nil:
		s.logger.Debug("deal analyzed", "strategy", strategy)
	case errors.As(err, &invalidErr):
		s.logger.Debug("deal rejected", "strategy", strategy, "field", invalidErr.Field, "reason", invalidErr.Reason)
	default:
		s.logger.Error("deal analysis failed", "strategy", strategy, "error", err)
	}
}

// Analysis is the outcome of analyzing a raw strategy input.
type Analysis struct {
	Strategy domain.StrategyType
	Result   any
	Metrics  domain.ScenarioMetrics
}

// Analyze decodes raw as the input of strategy, runs the matching analyzer
// and summarizes the result. Unknown fields in raw are rejected.
func (s *CalculatorService) Analyze(strategy domain.StrategyType, raw json.RawMessage) (Analysis, error) {
	switch strategy {
	case domain.StrategyRental:
		var in domain.RentalInput
		if err := decodeStrict(raw, &in); err != nil {
			return Analysis{}, err
		}
		r, err := s.Rental(in)
		if err != nil {
			return Analysis{}, err
		}
		return Analysis{Strategy: strategy, Result: r, Metrics: rentalMetrics(in, r)}, nil

	case domain.StrategyFlip:
		var in domain.FlipInput
		if err := decodeStrict(raw, &in); err != nil {
			return Analysis{}, err
		}
		r, err := s.Flip(in)
		if err != nil {
			return Analysis{}, err
		}
		return Analysis{Strategy: strategy, Result: r, Metrics: flipMetrics(in, r)}, nil

	case domain.StrategyBRRRR:
		var in domain.BRRRRInput
		if err := decodeStrict(raw, &in); err != nil {
			return Analysis{}, err
		}
		r, err := s.BRRRR(in)
		if err != nil {
			return Analysis{}, err
		}
		return Analysis{Strategy: strategy, Result: r, Metrics: brrrrMetrics(in, r)}, nil
	}
	return Analysis{}, invalid("strategyType", "must be one of rental, flip, brrrr")
}

func decodeStrict(raw json.RawMessage, v any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return invalid("input", "is required")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return invalid("input", "is malformed: %v", err)
	}
	return nil
}

func rentalMetrics(in domain.RentalInput, r domain.RentalResult) domain.ScenarioMetrics {
	coc := domain.FiniteReturn(r.CashOnCashReturn)
	capRate := r.CapRate
	return domain.ScenarioMetrics{
		PurchasePrice:          r.PurchasePrice,
		DownPaymentPercent:     in.DownPaymentPercent,
		DownPayment:            r.DownPayment,
		LoanAmount:             r.LoanAmount,
		InterestRate:           in.InterestRate,
		MonthlyMortgagePayment: r.MonthlyMortgagePayment,
		MonthlyCashFlow:        r.MonthlyCashFlow,
		AnnualCashFlow:         r.AnnualCashFlow,
		CashOnCashReturn:       &coc,
		CapRate:                &capRate,
	}
}

func flipMetrics(in domain.FlipInput, r domain.FlipResult) domain.ScenarioMetrics {
	roi := r.ROI
	profit := r.NetProfit
	return domain.ScenarioMetrics{
		PurchasePrice:      r.PurchasePrice,
		DownPaymentPercent: in.DownPaymentPercent,
		DownPayment:        r.DownPayment,
		LoanAmount:         r.LoanAmount,
		InterestRate:       in.InterestRate,
		ROI:                &roi,
		TotalProfit:        &profit,
	}
}

// brrrrMetrics describes the permanent (refinance) loan, since that is the
// financing the property carries after the cycle completes.
func brrrrMetrics(in domain.BRRRRInput, r domain.BRRRRResult) domain.ScenarioMetrics {
	coc := r.CashOnCashReturn
	return domain.ScenarioMetrics{
		PurchasePrice:          r.PurchasePrice,
		DownPaymentPercent:     in.DownPaymentPercent,
		DownPayment:            r.DownPayment,
		LoanAmount:             r.RefinanceAmount,
		InterestRate:           in.RefinanceRate,
		MonthlyMortgagePayment: r.MonthlyMortgagePayment,
		MonthlyCashFlow:        r.MonthlyCashFlow,
		AnnualCashFlow:         r.AnnualCashFlow,
		CashOnCashReturn:       &coc,
	}
}
