package service

import (
	"log/slog"
	"math"
	"sort"

	"deal-analyzer/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type TermRecommendationService struct {
	loanService *LoanService
	logger      *slog.Logger
}

func NewTermRecommendationService(loanService *LoanService, logger *slog.Logger) *TermRecommendationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TermRecommendationService{
		loanService: loanService,
		logger:      logger,
	}
}

type termCandidate struct {
	term   int
	loan   domain.LoanResult
	rental domain.RentalResult
}

// CompareRentalTerms analyzes a rental deal under every loan term in the
// requested range and ranks the terms by the caller's preference.
func (s *TermRecommendationService) CompareRentalTerms(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	v := validator{}
	v.termYears("minTermYears", input.MinTermYears)
	v.termYears("maxTermYears", input.MaxTermYears)
	if v.err != nil {
		return domain.TermComparisonResult{}, v.err
	}
	if input.MinTermYears > input.MaxTermYears {
		return domain.TermComparisonResult{}, invalid("minTermYears", "must not exceed maxTermYears")
	}
	if input.MaxTermYears-input.MinTermYears > MaxTermRangeYears {
		return domain.TermComparisonResult{}, invalid("maxTermYears", "range exceeds %d years", MaxTermRangeYears)
	}

	switch input.Preference {
	case domain.PreferMaxCashFlow, domain.PreferMinimizeInterest, domain.PreferBalanced:
	default:
		return domain.TermComparisonResult{}, invalid("preference",
			"must be one of maximize_cash_flow, minimize_interest, balanced")
	}

	candidates := make([]termCandidate, 0, input.MaxTermYears-input.MinTermYears+1)
	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		rentalInput := input.Rental
		rentalInput.LoanTermYears = term

		rental, err := CalculateRental(rentalInput)
		if err != nil {
			return domain.TermComparisonResult{}, err
		}
		loan, err := s.loanService.CalculateLoan(domain.LoanTerms{
			Principal:         rental.LoanAmount,
			AnnualRatePercent: rentalInput.InterestRate,
			TermYears:         term,
		})
		if err != nil {
			return domain.TermComparisonResult{}, err
		}
		candidates = append(candidates, termCandidate{term: term, loan: loan, rental: rental})
	}

	minInterest, maxInterest := candidates[0].loan.TotalInterest, candidates[0].loan.TotalInterest
	minFlow, maxFlow := candidates[0].rental.MonthlyCashFlow, candidates[0].rental.MonthlyCashFlow
	for _, c := range candidates[1:] {
		minInterest = min(minInterest, c.loan.TotalInterest)
		maxInterest = max(maxInterest, c.loan.TotalInterest)
		minFlow = min(minFlow, c.rental.MonthlyCashFlow)
		maxFlow = max(maxFlow, c.rental.MonthlyCashFlow)
	}

	recommendations := make([]domain.TermRecommendation, 0, len(candidates))
	for _, c := range candidates {
		// Normalizar valores para scoring (0-10)
		interestScore := 10.0
		if maxInterest > minInterest {
			interestScore = 10 - normalize(c.loan.TotalInterest, minInterest, maxInterest)
		}
		cashFlowScore := normalize(c.rental.MonthlyCashFlow, minFlow, maxFlow)
		termScore := 10.0
		if input.MaxTermYears > input.MinTermYears {
			termScore = 10 * (1 - float64(c.term-input.MinTermYears)/float64(input.MaxTermYears-input.MinTermYears))
		}

		var score float64
		switch input.Preference {
		case domain.PreferMinimizeInterest:
			score = 0.6*interestScore + 0.2*cashFlowScore + 0.2*termScore
		case domain.PreferMaxCashFlow:
			score = 0.2*interestScore + 0.6*cashFlowScore + 0.2*termScore
		case domain.PreferBalanced:
			score = 0.4*interestScore + 0.4*cashFlowScore + 0.2*termScore
		}

		recommendations = append(recommendations, domain.TermRecommendation{
			TermYears:        c.term,
			MonthlyPayment:   c.loan.MonthlyPayment,
			TotalInterest:    c.loan.TotalInterest,
			MonthlyCashFlow:  c.rental.MonthlyCashFlow,
			CashOnCashReturn: c.rental.CashOnCashReturn,
			Score:            roundTo2Decimals(score),
			Reason:           termReason(input.Preference),
		})
	}

	// Ordenar por score descendente; empates favorecen el plazo más corto
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	s.logger.Debug("rental loan terms compared",
		"minTermYears", input.MinTermYears,
		"maxTermYears", input.MaxTermYears,
		"preference", input.Preference,
		"recommendedTermYears", recommendations[0].TermYears)

	return domain.TermComparisonResult{
		RecommendedTermYears: recommendations[0].TermYears,
		Recommendations:      recommendations,
	}, nil
}

// normalize maps value onto 0-10 within [lo, hi]. A degenerate range scores 10.
func normalize(value, lo, hi int64) float64 {
	if hi == lo {
		return 10
	}
	return 10 * float64(value-lo) / float64(hi-lo)
}

func termReason(preference domain.TermPreference) string {
	switch preference {
	case domain.PreferMinimizeInterest:
		return "Term optimized to minimize total interest paid"
	case domain.PreferMaxCashFlow:
		return "Term optimized to maximize monthly cash flow"
	case domain.PreferBalanced:
		return "Balance between monthly cash flow and total interest"
	}
	return "Recommendation based on the provided parameters"
}
