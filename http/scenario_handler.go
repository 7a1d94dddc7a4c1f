package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"deal-analyzer/service"
)

// UserIDHeader carries the authenticated user's ID. It is set by the
// authentication layer in front of this service.
const UserIDHeader = "X-User-ID"

type ScenarioHandler struct {
	service *service.ScenarioService
	logger  *slog.Logger
}

func NewScenarioHandler(service *service.ScenarioService, logger *slog.Logger) *ScenarioHandler {
	return &ScenarioHandler{service: service, logger: logger}
}

func userID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *ScenarioHandler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing or invalid "+UserIDHeader+" header", "")
		return
	}

	var input service.SaveScenarioInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.UserID = uid

	scenario, err := h.service.Save(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, scenario)
}

// ListScenarios lists by ?propertyId= or, failing that, ?userId=.
func (h *ScenarioHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if raw := query.Get("propertyId"); raw != "" {
		propertyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid propertyId", "propertyId")
			return
		}
		scenarios, err := h.service.ListByProperty(r.Context(), propertyID)
		if err != nil {
			writeServiceError(w, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, scenarios)
		return
	}

	if raw := query.Get("userId"); raw != "" {
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid userId", "userId")
			return
		}
		scenarios, err := h.service.ListByUser(r.Context(), uid)
		if err != nil {
			writeServiceError(w, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, scenarios)
		return
	}

	writeError(w, http.StatusBadRequest, "propertyId or userId query parameter is required", "")
}

func (h *ScenarioHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scenario id", "id")
		return
	}

	scenario, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, scenario)
}

func (h *ScenarioHandler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing or invalid "+UserIDHeader+" header", "")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scenario id", "id")
		return
	}

	if err := h.service.Delete(r.Context(), id, uid); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]bool{"success": true})
}
