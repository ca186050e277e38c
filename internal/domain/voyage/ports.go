package voyage

import "context"

// ShipRepository provides access to the ship class catalog
type ShipRepository interface {
	FindByClass(ctx context.Context, class string) (*ShipProfile, error)
	List(ctx context.Context) ([]*ShipProfile, error)
	Save(ctx context.Context, ship *ShipProfile) error
	Count(ctx context.Context) (int64, error)
}

// RouteRepository provides access to the route catalog
type RouteRepository interface {
	FindBySymbol(ctx context.Context, symbol string) (*RouteProfile, error)
	List(ctx context.Context) ([]*RouteProfile, error)
	Save(ctx context.Context, route *RouteProfile) error
	Count(ctx context.Context) (int64, error)
}

// SimulationRunRepository stores completed simulation runs
type SimulationRunRepository interface {
	Save(ctx context.Context, run *SimulationRun) error
	FindByID(ctx context.Context, id string) (*SimulationRun, error)
	List(ctx context.Context, limit int) ([]*SimulationRun, error)
}
