package http

import (
	"log/slog"
	"net/http"
	"strings"

	"deal-analyzer/domain"
	"deal-analyzer/service"
)

type TermRecommendationHandler struct {
	service *service.TermRecommendationService
	logger  *slog.Logger
}

func NewTermRecommendationHandler(service *service.TermRecommendationService, logger *slog.Logger) *TermRecommendationHandler {
	return &TermRecommendationHandler{service: service, logger: logger}
}

func (h *TermRecommendationHandler) CompareRentalTerms(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json", "")
		return
	}

	var input domain.TermComparisonInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.CompareRentalTerms(input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
