package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jferrer/voyagecast-go/internal/adapters/persistence"
	"github.com/jferrer/voyagecast-go/internal/domain/shared"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
	"github.com/jferrer/voyagecast-go/test/helpers"
)

func newTestRun(t *testing.T, createdAt time.Time) *voyage.SimulationRun {
	t.Helper()

	start := time.Date(2025, 9, 21, 0, 0, 0, 0, time.UTC)
	scenario := &voyage.VoyageScenario{
		Name: voyage.ScenarioNormal,
		Ship: &voyage.ShipProfile{
			Class:                  "container",
			Name:                   "Container Ship",
			BaseSpeedKnots:         18,
			BaseFuelRatePerDayTons: 45,
			CargoCapacityDWT:       150000,
			FuelCapacityTons:       5000,
		},
		Route: &voyage.RouteProfile{
			Symbol:           "rotterdam-singapore",
			Name:             "Rotterdam - Singapore",
			From:             shared.Coordinate{Lat: 51.9225, Lon: 4.4792},
			To:               shared.Coordinate{Lat: 1.3521, Lon: 103.8198},
			TotalDistanceNm:  8387.79,
			ECADistanceNm:    2355.37,
			Canal:            voyage.Canal{Name: "Suez Canal", CostUSD: 222864},
			BasePortCostsUSD: 62439,
			Alternate: voyage.AlternateRoute{
				Name:           "Cape of Good Hope",
				DistanceNm:     11720,
				CostMultiplier: 1.12,
			},
		},
		Costs:               voyage.CostParameters{BunkerPriceUSDPerTon: 650, CO2PriceUSDPerTon: 90},
		Laycan:              voyage.LaycanWindow{Start: start, End: start.Add(30 * 24 * time.Hour)},
		CommandedSpeedKnots: 18,
		WeatherFactor:       1.0,
	}

	result, err := voyage.NewCalculator().Compute(scenario)
	require.NoError(t, err)

	return &voyage.SimulationRun{
		ID:                  uuid.New().String(),
		ShipClass:           "container",
		RouteSymbol:         "rotterdam-singapore",
		CommandedSpeedKnots: 18,
		WeatherFactor:       1.0,
		Costs:               scenario.Costs,
		Laycan:              scenario.Laycan,
		CreatedAt:           createdAt,
		Results:             []*voyage.VoyageResult{result},
	}
}

func TestSimulationRunRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSimulationRunRepository(db)
	run := newTestRun(t, time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC))

	// Act
	err := repo.Save(context.Background(), run)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), run.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, run.ID, found.ID)
	assert.Equal(t, run.ShipClass, found.ShipClass)
	assert.Equal(t, run.RouteSymbol, found.RouteSymbol)
	assert.Equal(t, run.Costs, found.Costs)
	require.Len(t, found.Results, 1)
	assert.Equal(t, run.Results[0].ScenarioName, found.Results[0].ScenarioName)
	assert.InDelta(t, run.Results[0].Totals.Costs.TotalUSD, found.Results[0].Totals.Costs.TotalUSD, 1e-6)
}

func TestSimulationRunRepository_FindMissing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSimulationRunRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New().String())

	require.Error(t, err)
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSimulationRunRepository_ListNewestFirst(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSimulationRunRepository(db)

	base := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	oldest := newTestRun(t, base)
	middle := newTestRun(t, base.Add(1*time.Hour))
	newest := newTestRun(t, base.Add(2*time.Hour))

	for _, run := range []*voyage.SimulationRun{oldest, middle, newest} {
		require.NoError(t, repo.Save(context.Background(), run))
	}

	runs, err := repo.List(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newest.ID, runs[0].ID)
	assert.Equal(t, middle.ID, runs[1].ID)
}
