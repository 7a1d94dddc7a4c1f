package http

import (
	"log/slog"
	"net/http"

	"deal-analyzer/domain"
	"deal-analyzer/service"
)

type CalculatorHandler struct {
	service *service.CalculatorService
	logger  *slog.Logger
}

func NewCalculatorHandler(service *service.CalculatorService, logger *slog.Logger) *CalculatorHandler {
	return &CalculatorHandler{service: service, logger: logger}
}

func (h *CalculatorHandler) CalculateRental(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var input domain.RentalInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.Rental(input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *CalculatorHandler) CalculateFlip(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var input domain.FlipInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.Flip(input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *CalculatorHandler) CalculateBRRRR(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var input domain.BRRRRInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.BRRRR(input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}
