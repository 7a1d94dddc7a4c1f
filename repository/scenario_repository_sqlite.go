package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"deal-analyzer/domain"

	_ "modernc.org/sqlite"
)

const createScenariosTable = `
CREATE TABLE IF NOT EXISTS financial_scenarios (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	property_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	scenario_name TEXT NOT NULL,
	strategy_type TEXT NOT NULL,
	input TEXT NOT NULL,
	purchase_price INTEGER NOT NULL,
	down_payment_percent_bp INTEGER NOT NULL,
	down_payment_amount INTEGER NOT NULL,
	loan_amount INTEGER NOT NULL,
	interest_rate_bp INTEGER NOT NULL,
	monthly_mortgage_payment INTEGER NOT NULL,
	monthly_cash_flow INTEGER NOT NULL,
	annual_cash_flow INTEGER NOT NULL,
	cash_on_cash_bp INTEGER,
	infinite_return BOOLEAN NOT NULL DEFAULT FALSE,
	cap_rate_bp INTEGER,
	roi_bp INTEGER,
	total_profit INTEGER,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_financial_scenarios_property ON financial_scenarios(property_id);
CREATE INDEX IF NOT EXISTS idx_financial_scenarios_user ON financial_scenarios(user_id);
`

const scenarioColumns = `id, property_id, user_id, scenario_name, strategy_type, input,
	purchase_price, down_payment_percent_bp, down_payment_amount, loan_amount, interest_rate_bp,
	monthly_mortgage_payment, monthly_cash_flow, annual_cash_flow,
	cash_on_cash_bp, infinite_return, cap_rate_bp, roi_bp, total_profit, created_at`

// SQLiteScenarioRepository persists scenarios in a SQLite database.
type SQLiteScenarioRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteScenarioRepository opens (or creates) the database at path and
// makes sure the scenarios table exists.
func NewSQLiteScenarioRepository(ctx context.Context, path string) (*SQLiteScenarioRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database at %s: %w", path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createScenariosTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create scenarios table: %w", err)
	}
	return &SQLiteScenarioRepository{db: db, now: time.Now}, nil
}

func (r *SQLiteScenarioRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteScenarioRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteScenarioRepository) Create(
	ctx context.Context,
	scenario domain.Scenario,
) (domain.Scenario, error) {
	rec := encodeMetrics(scenario.Metrics)
	m := scenario.Metrics
	createdAt := r.now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO financial_scenarios (
			property_id, user_id, scenario_name, strategy_type, input,
			purchase_price, down_payment_percent_bp, down_payment_amount, loan_amount, interest_rate_bp,
			monthly_mortgage_payment, monthly_cash_flow, annual_cash_flow,
			cash_on_cash_bp, infinite_return, cap_rate_bp, roi_bp, total_profit, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		scenario.PropertyID, scenario.UserID, scenario.Name, string(scenario.Strategy), string(scenario.Input),
		m.PurchasePrice, rec.DownPaymentBP, m.DownPayment, m.LoanAmount, rec.InterestRateBP,
		m.MonthlyMortgagePayment, m.MonthlyCashFlow, m.AnnualCashFlow,
		nullableInt(rec.CashOnCashBP), rec.InfiniteReturn, nullableInt(rec.CapRateBP), nullableInt(rec.ROIBP),
		nullableInt(m.TotalProfit), createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("insert scenario: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("read scenario id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteScenarioRepository) GetByID(ctx context.Context, id int64) (domain.Scenario, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scenarioColumns+` FROM financial_scenarios WHERE id = ?`, id)
	s, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Scenario{}, ErrScenarioNotFound
	}
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("get scenario %d: %w", id, err)
	}
	return s, nil
}

func (r *SQLiteScenarioRepository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Scenario, error) {
	return r.list(ctx, `SELECT `+scenarioColumns+` FROM financial_scenarios WHERE property_id = ? ORDER BY id`, propertyID)
}

func (r *SQLiteScenarioRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Scenario, error) {
	return r.list(ctx, `SELECT `+scenarioColumns+` FROM financial_scenarios WHERE user_id = ? ORDER BY id`, userID)
}

func (r *SQLiteScenarioRepository) list(ctx context.Context, query string, arg int64) ([]domain.Scenario, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	out := []domain.Scenario{}
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	return out, nil
}

func (r *SQLiteScenarioRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM financial_scenarios WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete scenario %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete scenario %d: %w", id, err)
	}
	if n == 0 {
		return ErrScenarioNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (domain.Scenario, error) {
	var (
		s            domain.Scenario
		strategy     string
		input        string
		createdAt    string
		cashOnCashBP sql.NullInt64
		capRateBP    sql.NullInt64
		roiBP        sql.NullInt64
		totalProfit  sql.NullInt64
		rec          scenarioRecord
	)

	err := row.Scan(
		&s.ID, &s.PropertyID, &s.UserID, &s.Name, &strategy, &input,
		&s.Metrics.PurchasePrice, &rec.DownPaymentBP, &s.Metrics.DownPayment, &s.Metrics.LoanAmount, &rec.InterestRateBP,
		&s.Metrics.MonthlyMortgagePayment, &s.Metrics.MonthlyCashFlow, &s.Metrics.AnnualCashFlow,
		&cashOnCashBP, &rec.InfiniteReturn, &capRateBP, &roiBP, &totalProfit, &createdAt,
	)
	if err != nil {
		return domain.Scenario{}, err
	}

	s.Strategy = domain.StrategyType(strategy)
	s.Input = []byte(input)
	rec.CashOnCashBP = int64Ptr(cashOnCashBP)
	rec.CapRateBP = int64Ptr(capRateBP)
	rec.ROIBP = int64Ptr(roiBP)
	s.Metrics.TotalProfit = int64Ptr(totalProfit)
	decodeMetrics(rec, &s.Metrics)

	s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return s, nil
}

func nullableInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
