package http

import (
	"log/slog"
	"net/http"

	"deal-analyzer/domain"
	"deal-analyzer/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(service *service.LoanService, logger *slog.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {

	if !requirePost(w, r) {
		return
	}

	var input domain.LoanTerms
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.CalculateLoan(input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *LoanHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var input domain.LoanTerms
	if !decodeBody(w, r, &input) {
		return
	}

	schedule, err := h.service.Schedule(input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, schedule)
}
