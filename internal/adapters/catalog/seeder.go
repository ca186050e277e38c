package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// Seeder populates empty catalog tables with the built-in ship classes
// and routes. Existing rows are left untouched so that operator edits
// survive restarts.
type Seeder struct {
	ships  voyage.ShipRepository
	routes voyage.RouteRepository
}

// NewSeeder creates a catalog seeder
func NewSeeder(ships voyage.ShipRepository, routes voyage.RouteRepository) *Seeder {
	return &Seeder{ships: ships, routes: routes}
}

// Seed writes the default catalog into any empty repository
func (s *Seeder) Seed(ctx context.Context) error {
	shipCount, err := s.ships.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count ship classes: %w", err)
	}
	if shipCount == 0 {
		for _, ship := range DefaultShipClasses() {
			if err := s.ships.Save(ctx, ship); err != nil {
				return fmt.Errorf("failed to seed ship class %s: %w", ship.Class, err)
			}
		}
		log.Printf("Seeded %d ship classes", len(DefaultShipClasses()))
	}

	routeCount, err := s.routes.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count routes: %w", err)
	}
	if routeCount == 0 {
		for _, route := range DefaultRoutes() {
			if err := s.routes.Save(ctx, route); err != nil {
				return fmt.Errorf("failed to seed route %s: %w", route.Symbol, err)
			}
		}
		log.Printf("Seeded %d routes", len(DefaultRoutes()))
	}

	return nil
}
