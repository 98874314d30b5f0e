package handler

import (
	"net/http"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	strategies int
}

// NewHealthHandler creates a new HealthHandler. strategies is the number of registered strategies.
func NewHealthHandler(strategies int) *HealthHandler {
	return &HealthHandler{strategies: strategies}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once at least one strategy is registered.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.strategies == 0 {
		writeError(w, http.StatusServiceUnavailable, "no strategies registered", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ready",
		"strategies": h.strategies,
	})
}
