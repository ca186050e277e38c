package voyage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jferrer/voyagecast-go/internal/domain/shared"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

func referenceShip() *voyage.ShipProfile {
	return &voyage.ShipProfile{
		Class:                  "container",
		Name:                   "Container Ship",
		BaseSpeedKnots:         18,
		BaseFuelRatePerDayTons: 45,
		CargoCapacityDWT:       150000,
		FuelCapacityTons:       5000,
	}
}

func referenceRoute() *voyage.RouteProfile {
	return &voyage.RouteProfile{
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
	}
}

func referenceScenario() *voyage.VoyageScenario {
	start := time.Date(2025, 9, 21, 0, 0, 0, 0, time.UTC)
	return &voyage.VoyageScenario{
		Name:                "Normal Voyage",
		Ship:                referenceShip(),
		Route:               referenceRoute(),
		Costs:               voyage.CostParameters{BunkerPriceUSDPerTon: 650, CO2PriceUSDPerTon: 90},
		Laycan:              voyage.LaycanWindow{Start: start, End: start.Add(30 * 24 * time.Hour)},
		CommandedSpeedKnots: 18,
		WeatherFactor:       1.0,
	}
}

func TestCompute_ReferenceScenario(t *testing.T) {
	// Arrange
	calc := voyage.NewCalculator()
	scenario := referenceScenario()

	// Act
	result, err := calc.Compute(scenario)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 18.0, result.EffectiveSpeedKnots, 1e-9)
	assert.InDelta(t, 8387.79/18.0, result.Totals.DurationHours, 1e-6)
	assert.InDelta(t, 45.0, result.Totals.DailyFuelTons, 1e-9)

	voyageDays := 8387.79 / 18.0 / 24.0
	expectedFuel := 45.0 * voyageDays
	assert.InDelta(t, expectedFuel, result.Totals.FuelTons, 1e-6)

	// Cost components recomputed by hand per the model
	dwtFactor := 150000.0 / voyage.ReferenceDWT
	expectedBunker := expectedFuel * 650
	expectedCO2 := expectedFuel * voyage.CO2EmissionFactor * 90
	expectedPort := 62439 * dwtFactor
	expectedCanal := 222864 * dwtFactor

	assert.InDelta(t, expectedBunker, result.Totals.Costs.BunkerCostUSD, 1e-6)
	assert.InDelta(t, expectedCO2, result.Totals.Costs.CO2CostUSD, 1e-6)
	assert.InDelta(t, expectedPort, result.Totals.Costs.PortCostsUSD, 1e-6)
	assert.InDelta(t, expectedCanal, result.Totals.Costs.CanalCostUSD, 1e-6)
	assert.InDelta(t,
		expectedBunker+expectedCO2+expectedPort+expectedCanal,
		result.Totals.Costs.TotalUSD, 1e-6)

	require.Len(t, result.Legs, 1)
	assert.Equal(t, scenario.Route.From, result.Legs[0].From)
	assert.Equal(t, scenario.Route.To, result.Legs[0].To)
	assert.Equal(t, result.Totals.ETA, result.Legs[0].ArrivalTime)
}

func TestCompute_Deterministic(t *testing.T) {
	calc := voyage.NewCalculator()
	scenario := referenceScenario()

	first, err := calc.Compute(scenario)
	require.NoError(t, err)
	second, err := calc.Compute(scenario)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_CubicFuelLaw(t *testing.T) {
	// Doubling commanded speed relative to base speed multiplies the
	// daily burn by exactly eight.
	calc := voyage.NewCalculator()

	base := referenceScenario()
	base.CommandedSpeedKnots = base.Ship.BaseSpeedKnots
	atBase, err := calc.Compute(base)
	require.NoError(t, err)

	doubled := referenceScenario()
	doubled.CommandedSpeedKnots = doubled.Ship.BaseSpeedKnots * 2
	atDouble, err := calc.Compute(doubled)
	require.NoError(t, err)

	assert.InDelta(t, atBase.Totals.DailyFuelTons*8, atDouble.Totals.DailyFuelTons, 1e-6)
}

func TestCompute_ECASplitConservation(t *testing.T) {
	calc := voyage.NewCalculator()

	for _, ecaDistance := range []float64{0, 1000, 2355.37, 8387.79} {
		scenario := referenceScenario()
		scenario.Route.ECADistanceNm = ecaDistance

		result, err := calc.Compute(scenario)
		require.NoError(t, err)

		split := result.Totals.FuelSplit
		assert.InDelta(t, result.Totals.FuelTons, split.ECAFuelTons+split.NonECAFuelTons, 1e-6,
			"eca %f", ecaDistance)
	}
}

func TestCompute_WeatherFactorMonotonicity(t *testing.T) {
	// Worse weather leaves the daily burn untouched (it depends on
	// commanded speed only) but stretches the voyage, so total fuel grows
	// in direct proportion to the factor.
	calc := voyage.NewCalculator()

	calm, err := calc.Compute(referenceScenario())
	require.NoError(t, err)

	prevHours := calm.Totals.DurationHours
	prevFuel := calm.Totals.FuelTons
	for _, factor := range []float64{1.1, 1.25, 1.5} {
		scenario := referenceScenario()
		scenario.WeatherFactor = factor

		result, err := calc.Compute(scenario)
		require.NoError(t, err)

		assert.Greater(t, result.Totals.DurationHours, prevHours)
		assert.InDelta(t, calm.Totals.DailyFuelTons, result.Totals.DailyFuelTons, 1e-9)
		assert.Greater(t, result.Totals.FuelTons, prevFuel)
		assert.InDelta(t, calm.Totals.FuelTons*factor, result.Totals.FuelTons, 1e-6)

		prevHours = result.Totals.DurationHours
		prevFuel = result.Totals.FuelTons
	}
}

func TestCompute_ZeroECADistance(t *testing.T) {
	calc := voyage.NewCalculator()
	scenario := referenceScenario()
	scenario.Route.ECADistanceNm = 0

	result, err := calc.Compute(scenario)
	require.NoError(t, err)

	assert.Zero(t, result.Totals.FuelSplit.ECAFuelTons)
	assert.Zero(t, result.Totals.Costs.ECAFuelCostUSD)
	assert.InDelta(t, result.Totals.FuelTons, result.Totals.FuelSplit.NonECAFuelTons, 1e-9)
}

func TestCompute_FullECARoute(t *testing.T) {
	calc := voyage.NewCalculator()
	scenario := referenceScenario()
	scenario.Route.ECADistanceNm = scenario.Route.TotalDistanceNm

	result, err := calc.Compute(scenario)
	require.NoError(t, err)

	assert.Zero(t, result.Totals.FuelSplit.NonECAFuelTons)
	assert.InDelta(t, result.Totals.FuelTons, result.Totals.FuelSplit.ECAFuelTons, 1e-9)
}

func TestCompute_ZeroDistanceRoute(t *testing.T) {
	// Degenerate route yields a complete zero-valued result, not an error
	calc := voyage.NewCalculator()
	scenario := referenceScenario()
	scenario.Route.TotalDistanceNm = 0
	scenario.Route.ECADistanceNm = 0

	result, err := calc.Compute(scenario)
	require.NoError(t, err)

	assert.Zero(t, result.Totals.DurationHours)
	assert.Zero(t, result.Totals.FuelTons)
	assert.Zero(t, result.Totals.Costs.BunkerCostUSD)
	assert.Zero(t, result.Totals.Costs.CO2CostUSD)
	assert.Equal(t, scenario.Laycan.Start, result.Totals.ETA)
}

func TestCompute_InvalidInput(t *testing.T) {
	calc := voyage.NewCalculator()

	tests := []struct {
		name   string
		mutate func(*voyage.VoyageScenario)
	}{
		{"zero speed", func(s *voyage.VoyageScenario) { s.CommandedSpeedKnots = 0 }},
		{"negative speed", func(s *voyage.VoyageScenario) { s.CommandedSpeedKnots = -5 }},
		{"zero weather factor", func(s *voyage.VoyageScenario) { s.WeatherFactor = 0 }},
		{"eca beyond route", func(s *voyage.VoyageScenario) { s.Route.ECADistanceNm = s.Route.TotalDistanceNm + 1 }},
		{"negative eca", func(s *voyage.VoyageScenario) { s.Route.ECADistanceNm = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scenario := referenceScenario()
			tc.mutate(scenario)

			result, err := calc.Compute(scenario)

			require.Error(t, err)
			assert.Nil(t, result)

			var invalid *shared.InvalidInputError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestCompute_LaycanLateDetection(t *testing.T) {
	// 20h voyage against a 10h window arrives 10h late
	calc := voyage.NewCalculator()
	scenario := referenceScenario()
	scenario.Route.TotalDistanceNm = 360 // 20 hours at 18 knots
	scenario.Route.ECADistanceNm = 0
	scenario.Laycan.End = scenario.Laycan.Start.Add(10 * time.Hour)

	result, err := calc.Compute(scenario)
	require.NoError(t, err)

	assert.Equal(t, voyage.LaycanLate, result.Totals.Laycan.Status)
	assert.InDelta(t, -10.0, result.Totals.Laycan.DiffHours, 1e-6)
}

func TestCompute_NegativeDurationLaycanWindow(t *testing.T) {
	// An inverted window is legal input and simply verdicts late
	calc := voyage.NewCalculator()
	scenario := referenceScenario()
	scenario.Laycan.End = scenario.Laycan.Start.Add(-24 * time.Hour)

	result, err := calc.Compute(scenario)
	require.NoError(t, err)

	assert.Equal(t, voyage.LaycanLate, result.Totals.Laycan.Status)
	assert.Negative(t, result.Totals.Laycan.DiffHours)
}

func TestCompute_AlternateRouteEstimate(t *testing.T) {
	calc := voyage.NewCalculator()
	scenario := referenceScenario()

	result, err := calc.Compute(scenario)
	require.NoError(t, err)

	alt := result.Totals.Alternate
	assert.Equal(t, "Cape of Good Hope", alt.Name)
	assert.InDelta(t, (11720.0/18.0)/24.0, alt.VoyageDays, 1e-6)
	assert.InDelta(t, result.Totals.Costs.TotalUSD*1.12, alt.CostUSD, 1e-6)
}

func TestCompute_FuelStopAdvisory(t *testing.T) {
	calc := voyage.NewCalculator()

	t.Run("within bunker capacity", func(t *testing.T) {
		result, err := calc.Compute(referenceScenario())
		require.NoError(t, err)
		assert.Nil(t, result.Totals.FuelStop)
	})

	t.Run("beyond bunker capacity", func(t *testing.T) {
		scenario := referenceScenario()
		scenario.Ship.FuelCapacityTons = 500

		result, err := calc.Compute(scenario)
		require.NoError(t, err)

		stop := result.Totals.FuelStop
		require.NotNil(t, stop)
		assert.Equal(t, "Fujairah", stop.PortName) // cheapest hub
		assert.InDelta(t,
			result.Totals.FuelTons-500+voyage.FuelStopBufferTons,
			stop.FuelNeededTons, 1e-6)
	})

	t.Run("no declared capacity", func(t *testing.T) {
		scenario := referenceScenario()
		scenario.Ship.FuelCapacityTons = 0

		result, err := calc.Compute(scenario)
		require.NoError(t, err)
		assert.Nil(t, result.Totals.FuelStop)
	})
}
