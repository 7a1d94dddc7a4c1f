package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"deal-analyzer/domain"
)

func sampleScenario(propertyID, userID int64) domain.Scenario {
	coc := domain.FiniteReturn(-4.4661)
	capRate := 5.04
	return domain.Scenario{
		PropertyID: propertyID,
		UserID:     userID,
		Name:       "conventional",
		Strategy:   domain.StrategyRental,
		Input:      []byte(`{"purchasePrice":250000}`),
		Metrics: domain.ScenarioMetrics{
			PurchasePrice:          250000,
			DownPaymentPercent:     20,
			DownPayment:            50000,
			LoanAmount:             200000,
			InterestRate:           6.5,
			MonthlyMortgagePayment: 1264,
			MonthlyCashFlow:        -214,
			AnnualCashFlow:         -2568,
			CashOnCashReturn:       &coc,
			CapRate:                &capRate,
		},
	}
}

func brrrrScenario(propertyID, userID int64) domain.Scenario {
	infinite := domain.InfiniteReturn()
	return domain.Scenario{
		PropertyID: propertyID,
		UserID:     userID,
		Name:       "cash out",
		Strategy:   domain.StrategyBRRRR,
		Input:      []byte(`{}`),
		Metrics: domain.ScenarioMetrics{
			PurchasePrice:    200000,
			LoanAmount:       240000,
			InterestRate:     6.5,
			CashOnCashReturn: &infinite,
		},
	}
}

// runScenarioRepositoryTests checks behavior shared by every
// ScenarioRepository implementation.
func runScenarioRepositoryTests(t *testing.T, newRepo func(t *testing.T) ScenarioRepository) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Create(ctx, sampleScenario(1, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID == 0 || saved.CreatedAt.IsZero() {
			t.Fatalf("expected ID and timestamp, got %+v", saved)
		}

		got, err := repo.GetByID(ctx, saved.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "conventional" || got.Strategy != domain.StrategyRental {
			t.Errorf("unexpected scenario: %+v", got)
		}
		if string(got.Input) != `{"purchasePrice":250000}` {
			t.Errorf("unexpected input %s", got.Input)
		}
		if !got.CreatedAt.Equal(saved.CreatedAt) {
			t.Errorf("created at changed: %v vs %v", got.CreatedAt, saved.CreatedAt)
		}

		m := got.Metrics
		if m.MonthlyCashFlow != -214 || m.InterestRate != 6.5 || m.DownPaymentPercent != 20 {
			t.Errorf("unexpected metrics: %+v", m)
		}
		if coc, ok := m.CashOnCashReturn.Value(); !ok || coc != -4.47 {
			t.Errorf("expected cash-on-cash -4.47, got %v", m.CashOnCashReturn)
		}
		if m.CapRate == nil || *m.CapRate != 5.04 {
			t.Errorf("expected cap rate 5.04, got %v", m.CapRate)
		}
		if m.ROI != nil || m.TotalProfit != nil {
			t.Errorf("expected unset flip metrics, got %+v", m)
		}
	})

	t.Run("infinite return", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Create(ctx, brrrrScenario(2, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := repo.GetByID(ctx, saved.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Metrics.CashOnCashReturn == nil || !got.Metrics.CashOnCashReturn.IsInfinite() {
			t.Errorf("expected infinite return, got %v", got.Metrics.CashOnCashReturn)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)

		if _, err := repo.GetByID(ctx, 42); !errors.Is(err, ErrScenarioNotFound) {
			t.Errorf("expected ErrScenarioNotFound, got %v", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		repo := newRepo(t)

		for _, s := range []domain.Scenario{
			sampleScenario(1, 1),
			sampleScenario(1, 2),
			brrrrScenario(2, 1),
		} {
			if _, err := repo.Create(ctx, s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		byProperty, err := repo.ListByProperty(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(byProperty) != 2 || byProperty[0].ID > byProperty[1].ID {
			t.Errorf("expected 2 scenarios in insertion order, got %+v", byProperty)
		}

		byUser, err := repo.ListByUser(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(byUser) != 2 {
			t.Errorf("expected 2 scenarios for user 1, got %d", len(byUser))
		}

		empty, err := repo.ListByProperty(ctx, 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if empty == nil || len(empty) != 0 {
			t.Errorf("expected empty non-nil list, got %#v", empty)
		}
	})

	t.Run("delete checks owner", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Create(ctx, sampleScenario(1, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, saved.ID, 2); !errors.Is(err, ErrScenarioNotFound) {
			t.Fatalf("expected ErrScenarioNotFound for another user, got %v", err)
		}
		if err := repo.Delete(ctx, saved.ID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.GetByID(ctx, saved.ID); !errors.Is(err, ErrScenarioNotFound) {
			t.Errorf("expected scenario to be gone, got %v", err)
		}
	})
}

func TestScenarioRepositoryMemory(t *testing.T) {
	runScenarioRepositoryTests(t, func(t *testing.T) ScenarioRepository {
		return NewScenarioRepositoryMemory()
	})
}

func TestScenarioRepositoryMemory_CancelledContext(t *testing.T) {
	repo := NewScenarioRepositoryMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.Create(ctx, sampleScenario(1, 1)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestScenarioRepositoryMemory_ResultsDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	repo := NewScenarioRepositoryMemory()

	saved, err := repo.Create(ctx, sampleScenario(1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saved.Input[0] = 'X'
	*saved.Metrics.CapRate = 99

	got, err := repo.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.Input[0] = 'Y'
	*got.Metrics.CapRate = 42
	*got.Metrics.CashOnCashReturn = domain.InfiniteReturn()

	list, err := repo.ListByProperty(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	*list[0].Metrics.CapRate = 7

	stored, err := repo.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stored.Input) != `{"purchasePrice":250000}` {
		t.Errorf("stored input changed: %s", stored.Input)
	}
	if *stored.Metrics.CapRate != 5.04 {
		t.Errorf("stored cap rate changed: %g", *stored.Metrics.CapRate)
	}
	if stored.Metrics.CashOnCashReturn.IsInfinite() {
		t.Errorf("stored cash-on-cash changed")
	}
}

func TestSQLiteScenarioRepository(t *testing.T) {
	runScenarioRepositoryTests(t, func(t *testing.T) ScenarioRepository {
		path := filepath.Join(t.TempDir(), "scenarios.db")
		repo, err := NewSQLiteScenarioRepository(context.Background(), path)
		if err != nil {
			t.Fatalf("open repository: %v", err)
		}
		t.Cleanup(func() { repo.Close() })

		if err := repo.Ping(context.Background()); err != nil {
			t.Fatalf("ping: %v", err)
		}
		return repo
	})
}

func TestSQLiteScenarioRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scenarios.db")

	repo, err := NewSQLiteScenarioRepository(ctx, path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	saved, err := repo.Create(ctx, sampleScenario(3, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.Close()

	reopened, err := NewSQLiteScenarioRepository(ctx, path)
	if err != nil {
		t.Fatalf("reopen repository: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != saved.Name || got.Metrics.LoanAmount != 200000 {
		t.Errorf("unexpected scenario after reopen: %+v", got)
	}
}
