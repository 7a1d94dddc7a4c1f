package repository

import (
	"context"
	"errors"

	"deal-analyzer/domain"
)

var ErrScenarioNotFound = errors.New("scenario not found")

type ScenarioRepository interface {
	Create(ctx context.Context, scenario domain.Scenario) (domain.Scenario, error)
	GetByID(ctx context.Context, id int64) (domain.Scenario, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.Scenario, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Scenario, error)
	// Delete removes the scenario only when it belongs to userID.
	Delete(ctx context.Context, id, userID int64) error
}

// scenarioRecord is the storage shape of a scenario: percentages become
// basis points and an infinite cash-on-cash return is a flag with no value.
type scenarioRecord struct {
	DownPaymentBP  int64
	InterestRateBP int64
	CashOnCashBP   *int64
	InfiniteReturn bool
	CapRateBP      *int64
	ROIBP          *int64
}

func encodeMetrics(m domain.ScenarioMetrics) scenarioRecord {
	rec := scenarioRecord{
		DownPaymentBP:  ToBasisPoints(m.DownPaymentPercent),
		InterestRateBP: ToBasisPoints(m.InterestRate),
		CapRateBP:      toBasisPointsPtr(m.CapRate),
		ROIBP:          toBasisPointsPtr(m.ROI),
	}
	if m.CashOnCashReturn != nil {
		if pct, ok := m.CashOnCashReturn.Value(); ok {
			bp := ToBasisPoints(pct)
			rec.CashOnCashBP = &bp
		} else {
			rec.InfiniteReturn = true
		}
	}
	return rec
}

// decodeMetrics restores the percentage fields of m from rec.
func decodeMetrics(rec scenarioRecord, m *domain.ScenarioMetrics) {
	m.DownPaymentPercent = FromBasisPoints(rec.DownPaymentBP)
	m.InterestRate = FromBasisPoints(rec.InterestRateBP)
	m.CapRate = fromBasisPointsPtr(rec.CapRateBP)
	m.ROI = fromBasisPointsPtr(rec.ROIBP)
	m.CashOnCashReturn = nil
	switch {
	case rec.InfiniteReturn:
		r := domain.InfiniteReturn()
		m.CashOnCashReturn = &r
	case rec.CashOnCashBP != nil:
		r := domain.FiniteReturn(FromBasisPoints(*rec.CashOnCashBP))
		m.CashOnCashReturn = &r
	}
}
