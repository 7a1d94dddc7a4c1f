package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"deal-analyzer/repository"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the service's backing stores respond.
type HealthHandler struct {
	checks map[string]repository.Pinger
	logger *slog.Logger
}

func NewHealthHandler(checks map[string]repository.Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{checks: checks, logger: logger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	report := map[string]string{}
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.logger.Warn("health check failed", "component", name, "error", err)
			report[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		report[name] = "ok"
	}

	writeJSON(w, h.logger, status, map[string]any{
		"status":     http.StatusText(status),
		"components": report,
	})
}
