package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/jferrer/voyagecast-go/internal/adapters/catalog"
	"github.com/jferrer/voyagecast-go/internal/adapters/persistence"
	"github.com/jferrer/voyagecast-go/internal/application/simulation/commands"
	"github.com/jferrer/voyagecast-go/internal/domain/shared"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
	"github.com/jferrer/voyagecast-go/internal/infrastructure/database"
)

type simulationContext struct {
	handler *commands.RunSimulationHandler
	runs    voyage.SimulationRunRepository
	run     *voyage.SimulationRun
	err     error
}

func (sc *simulationContext) reset() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}

	ships := persistence.NewGormShipRepository(db)
	routes := persistence.NewGormRouteRepository(db)
	runs := persistence.NewGormSimulationRunRepository(db)

	clock := shared.NewMockClock(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	costs := voyage.CostParameters{BunkerPriceUSDPerTon: 650, CO2PriceUSDPerTon: 90}

	sc.handler = commands.NewRunSimulationHandler(ships, routes, runs, voyage.NewCalculator(), costs, clock)
	sc.runs = runs
	sc.run = nil
	sc.err = nil

	seeder := catalog.NewSeeder(ships, routes)
	return seeder.Seed(context.Background())
}

// Setup steps

func (sc *simulationContext) theDefaultCatalogIsSeeded() error {
	// Seeding happens in reset; this step documents the precondition
	if sc.handler == nil {
		return fmt.Errorf("simulation context not initialized")
	}
	return nil
}

// Action steps

func (sc *simulationContext) runSimulation(shipClass, routeSymbol string, allScenarios bool) error {
	resp, err := sc.handler.Handle(context.Background(), &commands.RunSimulationCommand{
		ShipClass:    shipClass,
		RouteSymbol:  routeSymbol,
		AllScenarios: allScenarios,
	})
	if err != nil {
		sc.err = err
		return nil
	}
	sc.run = resp.(*commands.RunSimulationResponse).Run
	return nil
}

func (sc *simulationContext) iRunAllScenarios(shipClass, routeSymbol string) error {
	if err := sc.runSimulation(shipClass, routeSymbol, true); err != nil {
		return err
	}
	if sc.err != nil {
		return fmt.Errorf("unexpected simulation error: %w", sc.err)
	}
	return nil
}

func (sc *simulationContext) iRunSingleScenario(shipClass, routeSymbol string) error {
	if err := sc.runSimulation(shipClass, routeSymbol, false); err != nil {
		return err
	}
	if sc.err != nil {
		return fmt.Errorf("unexpected simulation error: %w", sc.err)
	}
	return nil
}

func (sc *simulationContext) iAttemptToRunSimulation(shipClass, routeSymbol string) error {
	return sc.runSimulation(shipClass, routeSymbol, false)
}

// Assertion steps

func (sc *simulationContext) theRunShouldContainResults(count int) error {
	if sc.run == nil {
		return fmt.Errorf("no run produced")
	}
	if len(sc.run.Results) != count {
		return fmt.Errorf("expected %d results, got %d", count, len(sc.run.Results))
	}
	return nil
}

func (sc *simulationContext) theRunShouldBeRetrievable() error {
	if sc.run == nil {
		return fmt.Errorf("no run produced")
	}
	stored, err := sc.runs.FindByID(context.Background(), sc.run.ID)
	if err != nil {
		return fmt.Errorf("failed to reload run %s: %w", sc.run.ID, err)
	}
	if stored.ID != sc.run.ID {
		return fmt.Errorf("reloaded run ID %s does not match %s", stored.ID, sc.run.ID)
	}
	return nil
}

func (sc *simulationContext) resultShouldBeCheaperThan(cheaper, pricier string) error {
	if sc.run == nil {
		return fmt.Errorf("no run produced")
	}
	costs := make(map[string]float64)
	for _, result := range sc.run.Results {
		costs[result.ScenarioName] = result.Totals.Costs.TotalUSD
	}
	a, ok := costs[cheaper]
	if !ok {
		return fmt.Errorf("scenario %q not found in run", cheaper)
	}
	b, ok := costs[pricier]
	if !ok {
		return fmt.Errorf("scenario %q not found in run", pricier)
	}
	if a >= b {
		return fmt.Errorf("expected %q (%.2f) to be cheaper than %q (%.2f)", cheaper, a, pricier, b)
	}
	return nil
}

func (sc *simulationContext) theSimulationShouldFailWithNotFound() error {
	if sc.err == nil {
		return fmt.Errorf("expected simulation to fail, but it succeeded")
	}
	var notFound *shared.NotFoundError
	if !errors.As(sc.err, &notFound) {
		return fmt.Errorf("expected a not found error, got: %v", sc.err)
	}
	return nil
}

// InitializeSimulationScenario registers all simulation run step definitions
func InitializeSimulationScenario(sc *godog.ScenarioContext) {
	ctx := &simulationContext{}

	sc.Before(func(c context.Context, sn *godog.Scenario) (context.Context, error) {
		return c, ctx.reset()
	})

	sc.Step(`^the default catalog is seeded$`, ctx.theDefaultCatalogIsSeeded)
	sc.Step(`^I run a simulation for ship "([^"]*)" on route "([^"]*)" with all scenarios$`, ctx.iRunAllScenarios)
	sc.Step(`^I run a simulation for ship "([^"]*)" on route "([^"]*)"$`, ctx.iRunSingleScenario)
	sc.Step(`^I attempt to run a simulation for ship "([^"]*)" on route "([^"]*)"$`, ctx.iAttemptToRunSimulation)
	sc.Step(`^the run should contain (\d+) results$`, ctx.theRunShouldContainResults)
	sc.Step(`^the run should be retrievable by its ID$`, ctx.theRunShouldBeRetrievable)
	sc.Step(`^the "([^"]*)" result should be cheaper than the "([^"]*)" result$`, ctx.resultShouldBeCheaperThan)
	sc.Step(`^the simulation should fail with a not found error$`, ctx.theSimulationShouldFailWithNotFound)
}
