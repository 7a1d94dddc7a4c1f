package repository

import (
	"context"
	"sync"
	"time"

	"deal-analyzer/domain"
)

// ScenarioRepositoryMemory is an in-memory implementation of ScenarioRepository.
// Metrics pass through the same basis-point encoding as the SQLite store so
// both return identical values.
type ScenarioRepositoryMemory struct {
	mu     sync.RWMutex
	nextID int64
	data   []domain.Scenario
	now    func() time.Time
}

// NewScenarioRepositoryMemory creates a new in-memory scenario repository.
func NewScenarioRepositoryMemory() *ScenarioRepositoryMemory {
	return &ScenarioRepositoryMemory{
		nextID: 1,
		data:   []domain.Scenario{},
		now:    time.Now,
	}
}

// Create stores the scenario in memory and assigns its ID.
func (r *ScenarioRepositoryMemory) Create(
	ctx context.Context,
	scenario domain.Scenario,
) (domain.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return domain.Scenario{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	scenario.ID = r.nextID
	r.nextID++
	scenario.CreatedAt = r.now().UTC()
	scenario.Input = append([]byte(nil), scenario.Input...)
	decodeMetrics(encodeMetrics(scenario.Metrics), &scenario.Metrics)

	r.data = append(r.data, scenario)
	return cloneScenario(scenario), nil
}

func (r *ScenarioRepositoryMemory) GetByID(ctx context.Context, id int64) (domain.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return domain.Scenario{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.data {
		if s.ID == id {
			return cloneScenario(s), nil
		}
	}
	return domain.Scenario{}, ErrScenarioNotFound
}

func (r *ScenarioRepositoryMemory) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Scenario, error) {
	return r.filter(ctx, func(s domain.Scenario) bool { return s.PropertyID == propertyID })
}

func (r *ScenarioRepositoryMemory) ListByUser(ctx context.Context, userID int64) ([]domain.Scenario, error) {
	return r.filter(ctx, func(s domain.Scenario) bool { return s.UserID == userID })
}

func (r *ScenarioRepositoryMemory) filter(
	ctx context.Context,
	keep func(domain.Scenario) bool,
) ([]domain.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Scenario{}
	for _, s := range r.data {
		if keep(s) {
			out = append(out, cloneScenario(s))
		}
	}
	return out, nil
}

func (r *ScenarioRepositoryMemory) Delete(ctx context.Context, id, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.data {
		if s.ID == id && s.UserID == userID {
			r.data = append(r.data[:i], r.data[i+1:]...)
			return nil
		}
	}
	return ErrScenarioNotFound
}

// cloneScenario copies the fields a Scenario shares by reference so callers
// never alias stored data.
func cloneScenario(s domain.Scenario) domain.Scenario {
	s.Input = append([]byte(nil), s.Input...)
	m := &s.Metrics
	if m.CashOnCashReturn != nil {
		v := *m.CashOnCashReturn
		m.CashOnCashReturn = &v
	}
	if m.CapRate != nil {
		v := *m.CapRate
		m.CapRate = &v
	}
	if m.ROI != nil {
		v := *m.ROI
		m.ROI = &v
	}
	if m.TotalProfit != nil {
		v := *m.TotalProfit
		m.TotalProfit = &v
	}
	return s
}
