package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jferrer/voyagecast-go/internal/adapters/catalog"
	"github.com/jferrer/voyagecast-go/internal/adapters/persistence"
	"github.com/jferrer/voyagecast-go/internal/application/simulation/commands"
	"github.com/jferrer/voyagecast-go/internal/domain/shared"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
	"github.com/jferrer/voyagecast-go/test/helpers"
)

type handlerFixture struct {
	handler *commands.RunSimulationHandler
	runs    voyage.SimulationRunRepository
	clock   *shared.MockClock
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	db := helpers.NewTestDB(t)
	ships := persistence.NewGormShipRepository(db)
	routes := persistence.NewGormRouteRepository(db)
	runs := persistence.NewGormSimulationRunRepository(db)

	seeder := catalog.NewSeeder(ships, routes)
	require.NoError(t, seeder.Seed(context.Background()))

	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	costs := voyage.CostParameters{BunkerPriceUSDPerTon: 650, CO2PriceUSDPerTon: 90}

	return &handlerFixture{
		handler: commands.NewRunSimulationHandler(ships, routes, runs, voyage.NewCalculator(), costs, clock),
		runs:    runs,
		clock:   clock,
	}
}

func TestRunSimulationDefaults(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	cmd := &commands.RunSimulationCommand{
		ShipClass:   "container",
		RouteSymbol: "rotterdam-singapore",
	}

	// Act
	resp, err := f.handler.Handle(context.Background(), cmd)

	// Assert
	require.NoError(t, err)
	response := resp.(*commands.RunSimulationResponse)
	run := response.Run

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "container", run.ShipClass)
	assert.Equal(t, 18.0, run.CommandedSpeedKnots)
	assert.Equal(t, voyage.NeutralWeatherFactor, run.WeatherFactor)
	assert.Equal(t, 650.0, run.Costs.BunkerPriceUSDPerTon)
	assert.Equal(t, f.clock.CurrentTime, run.Laycan.Start)
	assert.Equal(t, f.clock.CurrentTime.Add(30*24*time.Hour), run.Laycan.End)
	assert.Equal(t, f.clock.CurrentTime, run.CreatedAt)
	require.Len(t, run.Results, 1)
	assert.Equal(t, voyage.ScenarioNormal, run.Results[0].ScenarioName)
}

func TestRunSimulationAllScenarios(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	cmd := &commands.RunSimulationCommand{
		ShipClass:    "tanker",
		RouteSymbol:  "rotterdam-singapore",
		AllScenarios: true,
	}

	// Act
	resp, err := f.handler.Handle(context.Background(), cmd)

	// Assert
	require.NoError(t, err)
	run := resp.(*commands.RunSimulationResponse).Run
	require.Len(t, run.Results, 4)

	names := make([]string, 0, 4)
	for _, result := range run.Results {
		names = append(names, result.ScenarioName)
	}
	assert.Contains(t, names, voyage.ScenarioNormal)
	assert.Contains(t, names, voyage.ScenarioEco)
	assert.Contains(t, names, voyage.ScenarioHindered)
	assert.Contains(t, names, voyage.ScenarioOptimal)
}

func TestRunSimulationOverrides(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	start := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(20 * 24 * time.Hour)
	cmd := &commands.RunSimulationCommand{
		ShipClass:            "container",
		RouteSymbol:          "rotterdam-singapore",
		CommandedSpeedKnots:  15,
		WeatherFactor:        1.2,
		BunkerPriceUSDPerTon: 700,
		CO2PriceUSDPerTon:    95,
		LaycanStart:          start,
		LaycanEnd:            end,
		ScenarioName:         "Charter Case",
	}

	// Act
	resp, err := f.handler.Handle(context.Background(), cmd)

	// Assert
	require.NoError(t, err)
	run := resp.(*commands.RunSimulationResponse).Run

	assert.Equal(t, 15.0, run.CommandedSpeedKnots)
	assert.Equal(t, 1.2, run.WeatherFactor)
	assert.Equal(t, 700.0, run.Costs.BunkerPriceUSDPerTon)
	assert.Equal(t, 95.0, run.Costs.CO2PriceUSDPerTon)
	assert.Equal(t, start, run.Laycan.Start)
	assert.Equal(t, end, run.Laycan.End)
	require.Len(t, run.Results, 1)
	assert.Equal(t, "Charter Case", run.Results[0].ScenarioName)
	assert.InDelta(t, 15.0/1.2, run.Results[0].EffectiveSpeedKnots, 1e-9)
}

func TestRunSimulationPersistsRun(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	cmd := &commands.RunSimulationCommand{
		ShipClass:   "bulk",
		RouteSymbol: "rotterdam-singapore",
	}

	// Act
	resp, err := f.handler.Handle(context.Background(), cmd)

	// Assert
	require.NoError(t, err)
	run := resp.(*commands.RunSimulationResponse).Run

	stored, err := f.runs.FindByID(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, stored.ID)
	assert.Equal(t, "bulk", stored.ShipClass)
	require.Len(t, stored.Results, 1)
}

func TestRunSimulationUnknownShipClass(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	cmd := &commands.RunSimulationCommand{
		ShipClass:   "submarine",
		RouteSymbol: "rotterdam-singapore",
	}

	// Act
	_, err := f.handler.Handle(context.Background(), cmd)

	// Assert
	require.Error(t, err)
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRunSimulationUnknownRoute(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	cmd := &commands.RunSimulationCommand{
		ShipClass:   "container",
		RouteSymbol: "nowhere-fast",
	}

	// Act
	_, err := f.handler.Handle(context.Background(), cmd)

	// Assert
	require.Error(t, err)
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRunSimulationRejectsMissingFields(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	cmd := &commands.RunSimulationCommand{}

	// Act
	_, err := f.handler.Handle(context.Background(), cmd)

	// Assert
	assert.Error(t, err)
}

func TestRunSimulationRejectsNegativeSpeed(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	cmd := &commands.RunSimulationCommand{
		ShipClass:           "container",
		RouteSymbol:         "rotterdam-singapore",
		CommandedSpeedKnots: -5,
	}

	// Act
	_, err := f.handler.Handle(context.Background(), cmd)

	// Assert
	assert.Error(t, err)
}
