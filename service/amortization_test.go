package service

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"deal-analyzer/domain"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		rate      float64
		years     int
		want      int64
	}{
		{"30 year at 6.5%", 200000, 6.5, 30, 1264},
		{"refinance at 6.5%", 225000, 6.5, 30, 1422},
		{"acquisition at 7%", 160000, 7, 30, 1064},
		{"15 year at 12%", 100000, 12, 15, 1200},
		{"zero principal", 0, 6.5, 30, 0},
		{"zero rate", 36000, 0, 3, 1000},
		{"zero rate rounds the quotient", 1000, 0, 1, 83},
		{"rate too small to compound", 200000, 1e-14, 30, 556},
		{"tiny rate and zero principal", 0, 1e-17, 30, 0},
		{"smallest positive rate", 200000, math.SmallestNonzeroFloat64, 30, 556},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyPayment(tt.principal, tt.rate, tt.years)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MonthlyPayment(%d, %g, %d) = %d, want %d", tt.principal, tt.rate, tt.years, got, tt.want)
			}
		})
	}
}

func TestMonthlyPayment_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		rate      float64
		years     int
		field     string
	}{
		{"negative principal", -1, 5, 30, "principal"},
		{"negative rate", 1000, -0.1, 30, "annualRatePercent"},
		{"NaN rate", 1000, math.NaN(), 30, "annualRatePercent"},
		{"zero term", 1000, 5, 0, "termYears"},
		{"negative term", 1000, 5, -3, "termYears"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MonthlyPayment(tt.principal, tt.rate, tt.years)
			var invalidErr *InvalidInputError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if invalidErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, invalidErr.Field)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected errors.Is(err, ErrInvalidInput)")
			}
		})
	}
}

func TestMonthlyPayment_ZeroRateSplitsPrincipalEvenly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		years := 1 + rng.Intn(MaxTermYears)
		n := int64(years * MonthsPerYear)
		installments := rng.Int63n(50000)
		principal := installments * n

		got, err := MonthlyPayment(principal, 0, years)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != installments {
			t.Fatalf("MonthlyPayment(%d, 0, %d) = %d, want %d", principal, years, got, installments)
		}

		// Uneven principals round to the nearest unit.
		odd := principal + rng.Int63n(n)
		got, _ = MonthlyPayment(odd, 0, years)
		if want := int64(math.Round(float64(odd) / float64(n))); got != want {
			t.Fatalf("MonthlyPayment(%d, 0, %d) = %d, want %d", odd, years, got, want)
		}
	}
}

// simulate applies n payments against principal with monthly interest and
// returns the remaining balance.
func simulate(principal, payment float64, annualRate float64, n int) float64 {
	r := monthlyRate(annualRate)
	balance := principal
	for i := 0; i < n; i++ {
		balance = balance*(1+r) - payment
	}
	return balance
}

func TestAnnuityPayment_RetiresLoan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		principal := float64(rng.Int63n(2_000_000))
		rate := float64(rng.Intn(2000)) / 100 // 0.00% .. 19.99%
		years := 1 + rng.Intn(40)
		n := years * MonthsPerYear

		payment := annuityPayment(principal, rate, n)
		if residual := simulate(principal, payment, rate, n); math.Abs(residual) > 1 {
			t.Fatalf("principal=%g rate=%g years=%d: residual balance %g", principal, rate, years, residual)
		}
	}
}

func TestMonthlyPayment_RoundingResidualIsBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		principal := rng.Int63n(2_000_000)
		rate := float64(1+rng.Intn(1999)) / 100
		years := 1 + rng.Intn(40)
		n := years * MonthsPerYear

		payment, err := MonthlyPayment(principal, rate, years)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Each payment is off by at most half a unit; that error compounds
		// like an annuity of 0.5 per month.
		r := monthlyRate(rate)
		bound := 0.5*(math.Pow(1+r, float64(n))-1)/r + 1
		if residual := simulate(float64(principal), float64(payment), rate, n); math.Abs(residual) > bound {
			t.Fatalf("principal=%d rate=%g years=%d: residual %g exceeds %g", principal, rate, years, residual, bound)
		}
	}
}

func TestAmortizationSchedule(t *testing.T) {
	terms := domain.LoanTerms{Principal: 200000, AnnualRatePercent: 6.5, TermYears: 30}

	schedule, err := AmortizationSchedule(terms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedule.Rows) != 360 {
		t.Fatalf("expected 360 rows, got %d", len(schedule.Rows))
	}
	if schedule.MonthlyPayment != 1264 {
		t.Errorf("expected payment 1264, got %d", schedule.MonthlyPayment)
	}

	first := schedule.Rows[0]
	// 200000 × 6.5% / 12 = 1083.33
	if first.Interest != 1083 || first.Principal != 181 || first.RemainingBalance != 199819 {
		t.Errorf("unexpected first row: %+v", first)
	}

	last := schedule.Rows[len(schedule.Rows)-1]
	if last.RemainingBalance != 0 {
		t.Errorf("expected loan to be fully repaid, balance %d", last.RemainingBalance)
	}

	var principalPaid, interestPaid int64
	for _, row := range schedule.Rows {
		principalPaid += row.Principal
		interestPaid += row.Interest
		if row.Payment != row.Interest+row.Principal {
			t.Fatalf("row %d: payment %d != interest %d + principal %d", row.Month, row.Payment, row.Interest, row.Principal)
		}
	}
	if principalPaid != terms.Principal {
		t.Errorf("expected principal repaid %d, got %d", terms.Principal, principalPaid)
	}
	if schedule.TotalInterest != interestPaid {
		t.Errorf("expected total interest %d, got %d", interestPaid, schedule.TotalInterest)
	}
	if schedule.TotalPayment != terms.Principal+interestPaid {
		t.Errorf("expected total payment %d, got %d", terms.Principal+interestPaid, schedule.TotalPayment)
	}
}

func TestAmortizationSchedule_ZeroRateStopsAtPayoff(t *testing.T) {
	// round(7/12) = 1, so the loan is repaid after seven months.
	schedule, err := AmortizationSchedule(domain.LoanTerms{Principal: 7, AnnualRatePercent: 0, TermYears: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range schedule.Rows {
		if row.RemainingBalance < 0 {
			t.Fatalf("row %d: negative balance %d", row.Month, row.RemainingBalance)
		}
	}
	if schedule.TotalPayment != 7 {
		t.Errorf("expected total payment 7, got %d", schedule.TotalPayment)
	}
	if schedule.Rows[7].Payment != 0 {
		t.Errorf("expected no payment after payoff, got %d", schedule.Rows[7].Payment)
	}
}
