package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jferrer/voyagecast-go/internal/application/mediator"
	"github.com/jferrer/voyagecast-go/internal/domain/shared"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// DefaultLaycanWindowDays is the laycan span assumed when a request omits
// the window entirely
const DefaultLaycanWindowDays = 30

// RunSimulationCommand requests one simulation run. Zero-valued optional
// fields fall back to catalog and pricing defaults.
type RunSimulationCommand struct {
	ShipClass   string `validate:"required"`
	RouteSymbol string `validate:"required"`

	// Optional; ship design speed when zero
	CommandedSpeedKnots float64 `validate:"omitempty,gt=0"`

	// Optional; neutral (1.0) when zero
	WeatherFactor float64 `validate:"omitempty,gt=0"`

	// Optional; configured pricing defaults when zero
	BunkerPriceUSDPerTon float64 `validate:"omitempty,gt=0"`
	CO2PriceUSDPerTon    float64 `validate:"omitempty,gte=0"`

	// Optional; now .. now+30d when zero
	LaycanStart time.Time
	LaycanEnd   time.Time

	// Compute the four standard comparison scenarios instead of a single one
	AllScenarios bool

	// Label for a single-scenario run
	ScenarioName string
}

// RunSimulationResponse carries the persisted run
type RunSimulationResponse struct {
	Run *voyage.SimulationRun
}

// RunSimulationHandler handles the RunSimulation command
type RunSimulationHandler struct {
	ships        voyage.ShipRepository
	routes       voyage.RouteRepository
	runs         voyage.SimulationRunRepository
	calculator   *voyage.Calculator
	defaultCosts voyage.CostParameters
	clock        shared.Clock
	validate     *validator.Validate
}

// NewRunSimulationHandler creates a new RunSimulationHandler.
// A nil clock selects the real clock.
func NewRunSimulationHandler(
	ships voyage.ShipRepository,
	routes voyage.RouteRepository,
	runs voyage.SimulationRunRepository,
	calculator *voyage.Calculator,
	defaultCosts voyage.CostParameters,
	clock shared.Clock,
) *RunSimulationHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &RunSimulationHandler{
		ships:        ships,
		routes:       routes,
		runs:         runs,
		calculator:   calculator,
		defaultCosts: defaultCosts,
		clock:        clock,
		validate:     validator.New(),
	}
}

// Handle executes the RunSimulation command
func (h *RunSimulationHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RunSimulationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RunSimulationCommand")
	}

	if err := h.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid simulation request: %w", err)
	}

	ship, err := h.ships.FindByClass(ctx, cmd.ShipClass)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ship class: %w", err)
	}
	if err := ship.Validate(); err != nil {
		return nil, fmt.Errorf("ship profile %s is invalid: %w", ship.Class, err)
	}

	route, err := h.routes.FindBySymbol(ctx, cmd.RouteSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve route: %w", err)
	}
	if err := route.Validate(); err != nil {
		return nil, fmt.Errorf("route profile %s is invalid: %w", route.Symbol, err)
	}

	speed := cmd.CommandedSpeedKnots
	if speed == 0 {
		speed = ship.BaseSpeedKnots
	}
	weather := cmd.WeatherFactor
	if weather == 0 {
		weather = voyage.NeutralWeatherFactor
	}

	costs := h.defaultCosts
	if cmd.BunkerPriceUSDPerTon > 0 {
		costs.BunkerPriceUSDPerTon = cmd.BunkerPriceUSDPerTon
	}
	if cmd.CO2PriceUSDPerTon > 0 {
		costs.CO2PriceUSDPerTon = cmd.CO2PriceUSDPerTon
	}

	laycan := voyage.LaycanWindow{Start: cmd.LaycanStart, End: cmd.LaycanEnd}
	if laycan.Start.IsZero() {
		laycan.Start = h.clock.Now()
	}
	if laycan.End.IsZero() {
		laycan.End = laycan.Start.Add(DefaultLaycanWindowDays * 24 * time.Hour)
	}

	var scenarios []*voyage.VoyageScenario
	if cmd.AllScenarios {
		scenarios = voyage.StandardScenarios(ship, route, costs, laycan)
	} else {
		name := cmd.ScenarioName
		if name == "" {
			name = voyage.ScenarioNormal
		}
		scenarios = []*voyage.VoyageScenario{{
			Name:                name,
			Ship:                ship,
			Route:               route,
			Costs:               costs,
			Laycan:              laycan,
			CommandedSpeedKnots: speed,
			WeatherFactor:       weather,
		}}
	}

	results, err := voyage.ComputeAll(h.calculator, scenarios)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	run := &voyage.SimulationRun{
		ID:                  uuid.New().String(),
		ShipClass:           ship.Class,
		RouteSymbol:         route.Symbol,
		CommandedSpeedKnots: speed,
		WeatherFactor:       weather,
		Costs:               costs,
		Laycan:              laycan,
		CreatedAt:           h.clock.Now(),
		Results:             results,
	}

	if err := h.runs.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to persist simulation run: %w", err)
	}

	return &RunSimulationResponse{Run: run}, nil
}
