package queries

import (
	"context"
	"fmt"

	"github.com/jferrer/voyagecast-go/internal/application/mediator"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// ListShipsQuery retrieves every ship class in the catalog
type ListShipsQuery struct{}

// ListShipsResponse carries the ship classes
type ListShipsResponse struct {
	Ships []*voyage.ShipProfile
}

// ListShipsHandler handles the ListShips query
type ListShipsHandler struct {
	ships voyage.ShipRepository
}

// NewListShipsHandler creates a new ListShipsHandler
func NewListShipsHandler(ships voyage.ShipRepository) *ListShipsHandler {
	return &ListShipsHandler{ships: ships}
}

// Handle executes the ListShips query
func (h *ListShipsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ListShipsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListShipsQuery")
	}

	ships, err := h.ships.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ship classes: %w", err)
	}

	return &ListShipsResponse{Ships: ships}, nil
}
