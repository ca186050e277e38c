package queries

import (
	"context"
	"fmt"

	"github.com/jferrer/voyagecast-go/internal/application/mediator"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// DefaultRunListLimit caps run listings when the query does not set one
const DefaultRunListLimit = 20

// ListSimulationRunsQuery retrieves recent simulation runs, newest first
type ListSimulationRunsQuery struct {
	Limit int
}

// ListSimulationRunsResponse carries the runs
type ListSimulationRunsResponse struct {
	Runs []*voyage.SimulationRun
}

// ListSimulationRunsHandler handles the ListSimulationRuns query
type ListSimulationRunsHandler struct {
	runs voyage.SimulationRunRepository
}

// NewListSimulationRunsHandler creates a new ListSimulationRunsHandler
func NewListSimulationRunsHandler(runs voyage.SimulationRunRepository) *ListSimulationRunsHandler {
	return &ListSimulationRunsHandler{runs: runs}
}

// Handle executes the ListSimulationRuns query
func (h *ListSimulationRunsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListSimulationRunsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListSimulationRunsQuery")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = DefaultRunListLimit
	}

	runs, err := h.runs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation runs: %w", err)
	}

	return &ListSimulationRunsResponse{Runs: runs}, nil
}
