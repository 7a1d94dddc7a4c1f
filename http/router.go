package http

import (
	"log/slog"
	"net/http"
)

type Handlers struct {
	Loan               *LoanHandler
	Calculator         *CalculatorHandler
	TermRecommendation *TermRecommendationHandler
	Scenario           *ScenarioHandler
	Health             *HealthHandler
}

// NewRouter wires every endpoint. Calculation endpoints are rate limited
// per client; all requests are logged.
func NewRouter(h Handlers, limiter *RateLimiter, logger *slog.Logger) http.Handler {
	limited := func(fn http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, logger, fn)
	}

	mux := http.NewServeMux()
	mux.Handle("/loan/calculate", limited(h.Loan.CalculateLoan))
	mux.Handle("/loan/schedule", limited(h.Loan.Schedule))

	mux.Handle("/calculator/rental", limited(h.Calculator.CalculateRental))
	mux.Handle("/calculator/flip", limited(h.Calculator.CalculateFlip))
	mux.Handle("/calculator/brrrr", limited(h.Calculator.CalculateBRRRR))
	mux.Handle("/calculator/rental/compare-terms", limited(h.TermRecommendation.CompareRentalTerms))

	mux.Handle("POST /scenarios", limited(h.Scenario.SaveScenario))
	mux.HandleFunc("GET /scenarios", h.Scenario.ListScenarios)
	mux.HandleFunc("GET /scenarios/{id}", h.Scenario.GetScenario)
	mux.HandleFunc("DELETE /scenarios/{id}", h.Scenario.DeleteScenario)

	mux.HandleFunc("GET /healthz", h.Health.Health)

	return LoggingMiddleware(logger, mux)
}
