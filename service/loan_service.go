package service

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"deal-analyzer/domain"
	"deal-analyzer/repository"
)

type LoanService struct {
	cache  repository.CacheRepository
	logger *slog.Logger
}

// NewLoanService creates a new LoanService backed by the given cache.
func NewLoanService(cache repository.CacheRepository, logger *slog.Logger) *LoanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoanService{cache: cache, logger: logger}
}

func loanCacheKey(terms domain.LoanTerms) string {
	return fmt.Sprintf("loan:%d:%g:%d", terms.Principal, terms.AnnualRatePercent, terms.TermYears)
}

// CalculateLoan calculates the monthly payment and lifetime cost of a loan.
func (s *LoanService) CalculateLoan(terms domain.LoanTerms) (domain.LoanResult, error) {
	if err := validateLoan("principal", terms); err != nil {
		return domain.LoanResult{}, err
	}

	key := loanCacheKey(terms)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.LoanResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		s.logger.Warn("discarding unreadable cached loan result", "key", key)
	}

	payment := monthlyPayment(terms)
	total := payment * int64(terms.TermYears*MonthsPerYear)

	result := domain.LoanResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - terms.Principal,
	}

	// Guardar el resultado (no crítico si falla)
	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			s.logger.Warn("failed to cache loan calculation", "key", key, "error", err)
		}
	}

	return result, nil
}

// Schedule returns the month-by-month amortization table for terms.
func (s *LoanService) Schedule(terms domain.LoanTerms) (domain.AmortizationSchedule, error) {
	return AmortizationSchedule(terms)
}
