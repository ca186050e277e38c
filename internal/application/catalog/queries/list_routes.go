package queries

import (
	"context"
	"fmt"

	"github.com/jferrer/voyagecast-go/internal/application/mediator"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// ListRoutesQuery retrieves every route in the catalog
type ListRoutesQuery struct{}

// ListRoutesResponse carries the routes
type ListRoutesResponse struct {
	Routes []*voyage.RouteProfile
}

// ListRoutesHandler handles the ListRoutes query
type ListRoutesHandler struct {
	routes voyage.RouteRepository
}

// NewListRoutesHandler creates a new ListRoutesHandler
func NewListRoutesHandler(routes voyage.RouteRepository) *ListRoutesHandler {
	return &ListRoutesHandler{routes: routes}
}

// Handle executes the ListRoutes query
func (h *ListRoutesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ListRoutesQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListRoutesQuery")
	}

	routes, err := h.routes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	return &ListRoutesResponse{Routes: routes}, nil
}
