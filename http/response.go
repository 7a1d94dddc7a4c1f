package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"deal-analyzer/service"
)

const maxRequestBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeJSON encodes v into a buffer first so a failed encode never leaves a
// half-written 200 response.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message, Field: field})
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var invalidErr *service.InvalidInputError
	switch {
	case errors.As(err, &invalidErr):
		writeError(w, http.StatusBadRequest, invalidErr.Error(), invalidErr.Field)
	case errors.Is(err, service.ErrScenarioNotFound):
		writeError(w, http.StatusNotFound, "scenario not found", "")
	default:
		logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

// decodeBody reads a JSON request body into v, rejecting fields v does not
// declare. It writes the error response itself and reports whether decoding
// succeeded.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), "")
		return false
	}
	return true
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return false
	}
	return true
}
