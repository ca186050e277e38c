package queries

import (
	"context"
	"fmt"

	"github.com/jferrer/voyagecast-go/internal/application/mediator"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// GetSimulationRunQuery retrieves a persisted simulation run by ID
type GetSimulationRunQuery struct {
	RunID string
}

// GetSimulationRunResponse carries the run
type GetSimulationRunResponse struct {
	Run *voyage.SimulationRun
}

// GetSimulationRunHandler handles the GetSimulationRun query
type GetSimulationRunHandler struct {
	runs voyage.SimulationRunRepository
}

// NewGetSimulationRunHandler creates a new GetSimulationRunHandler
func NewGetSimulationRunHandler(runs voyage.SimulationRunRepository) *GetSimulationRunHandler {
	return &GetSimulationRunHandler{runs: runs}
}

// Handle executes the GetSimulationRun query
func (h *GetSimulationRunHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetSimulationRunQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetSimulationRunQuery")
	}

	if query.RunID == "" {
		return nil, fmt.Errorf("run id must be provided")
	}

	run, err := h.runs.FindByID(ctx, query.RunID)
	if err != nil {
		return nil, fmt.Errorf("failed to load simulation run: %w", err)
	}

	return &GetSimulationRunResponse{Run: run}, nil
}
