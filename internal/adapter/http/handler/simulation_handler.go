package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/iho/payoffsim/internal/adapter/http/dto"
	"github.com/iho/payoffsim/internal/usecase"
)

// maxRequestBody caps a simulation request body.
const maxRequestBody = 1 << 20

// SimulationService defines the behavior needed by SimulationHandler.
type SimulationService interface {
	Compare(ctx context.Context, input usecase.CompareInput) (*usecase.ComparisonResult, error)
	Strategies() []string
}

// SimulationHandler handles simulation-related HTTP requests.
type SimulationHandler struct {
	simulationUC SimulationService
	defaults     dto.SimulationDefaults
	now          func() time.Time
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationUC SimulationService, defaults dto.SimulationDefaults) *SimulationHandler {
	return &SimulationHandler{
		simulationUC: simulationUC,
		defaults:     defaults,
		now:          time.Now,
	}
}

// Create runs a strategy comparison for the debts in the request body.
func (h *SimulationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(h.defaults, h.now())
	if err != nil {
		writeError(w, mapDomainError(err), "invalid simulation parameters", err.Error())
		return
	}

	result, err := h.simulationUC.Compare(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to run simulation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SimulationFromUseCase(result, req.IncludeSchedule))
}

// ListStrategies lists the registered strategies in report order.
func (h *SimulationHandler) ListStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.StrategiesResponse{Strategies: h.simulationUC.Strategies()})
}
