package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cucumber/godog"

	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

type voyageContext struct {
	ship   *voyage.ShipProfile
	route  *voyage.RouteProfile
	costs  voyage.CostParameters
	laycan voyage.LaycanWindow
	result *voyage.VoyageResult
	err    error
}

func (vc *voyageContext) reset() {
	vc.ship = nil
	vc.route = nil
	vc.costs = voyage.CostParameters{}
	vc.laycan = voyage.LaycanWindow{}
	vc.result = nil
	vc.err = nil
}

// Setup steps

func (vc *voyageContext) aShipClassWith(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		speed, err := strconv.ParseFloat(row.Cells[0].Value, 64)
		if err != nil {
			return err
		}
		fuelRate, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return err
		}
		dwt, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return err
		}
		fuelCap, err := strconv.ParseFloat(row.Cells[3].Value, 64)
		if err != nil {
			return err
		}
		vc.ship = &voyage.ShipProfile{
			Class:                  "container",
			Name:                   "Test Container Ship",
			BaseSpeedKnots:         speed,
			BaseFuelRatePerDayTons: fuelRate,
			CargoCapacityDWT:       dwt,
			FuelCapacityTons:       fuelCap,
		}
	}
	return nil
}

func (vc *voyageContext) aRouteWith(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		total, err := strconv.ParseFloat(row.Cells[0].Value, 64)
		if err != nil {
			return err
		}
		eca, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return err
		}
		canal, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return err
		}
		ports, err := strconv.ParseFloat(row.Cells[3].Value, 64)
		if err != nil {
			return err
		}
		vc.route = &voyage.RouteProfile{
			Symbol:           "test-route",
			Name:             "Test Route",
			TotalDistanceNm:  total,
			ECADistanceNm:    eca,
			Canal:            voyage.Canal{Name: "Test Canal", CostUSD: canal},
			BasePortCostsUSD: ports,
		}
	}
	return nil
}

func (vc *voyageContext) pricing(bunker, co2 int) error {
	vc.costs = voyage.CostParameters{
		BunkerPriceUSDPerTon: float64(bunker),
		CO2PriceUSDPerTon:    float64(co2),
	}
	return nil
}

func (vc *voyageContext) aLaycanWindowOfDays(days int) error {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	vc.laycan = voyage.LaycanWindow{
		Start: start,
		End:   start.Add(time.Duration(days) * 24 * time.Hour),
	}
	return nil
}

// Action steps

func (vc *voyageContext) compute(speed, weather float64) error {
	calc := voyage.NewCalculator()
	vc.result, vc.err = calc.Compute(&voyage.VoyageScenario{
		Name:                "BDD Scenario",
		Ship:                vc.ship,
		Route:               vc.route,
		Costs:               vc.costs,
		Laycan:              vc.laycan,
		CommandedSpeedKnots: speed,
		WeatherFactor:       weather,
	})
	return nil
}

func (vc *voyageContext) iComputeTheVoyage(speed, weather float64) error {
	if err := vc.compute(speed, weather); err != nil {
		return err
	}
	if vc.err != nil {
		return fmt.Errorf("unexpected computation error: %w", vc.err)
	}
	return nil
}

func (vc *voyageContext) iAttemptToComputeTheVoyage(speed, weather float64) error {
	return vc.compute(speed, weather)
}

// Assertion steps

func (vc *voyageContext) theEffectiveSpeedShouldBe(expected float64) error {
	if vc.result == nil {
		return fmt.Errorf("no result computed")
	}
	if math.Abs(vc.result.EffectiveSpeedKnots-expected) > 1e-6 {
		return fmt.Errorf("expected effective speed %.3f, got %.3f", expected, vc.result.EffectiveSpeedKnots)
	}
	return nil
}

func (vc *voyageContext) theDailyFuelRateShouldBe(expected float64) error {
	if vc.result == nil {
		return fmt.Errorf("no result computed")
	}
	if math.Abs(vc.result.Totals.DailyFuelTons-expected) > 1e-6 {
		return fmt.Errorf("expected daily fuel %.3f, got %.3f", expected, vc.result.Totals.DailyFuelTons)
	}
	return nil
}

func (vc *voyageContext) theTotalFuelShouldBe(expected float64) error {
	if vc.result == nil {
		return fmt.Errorf("no result computed")
	}
	if math.Abs(vc.result.Totals.FuelTons-expected) > 1e-6 {
		return fmt.Errorf("expected total fuel %.3f, got %.3f", expected, vc.result.Totals.FuelTons)
	}
	return nil
}

func (vc *voyageContext) theVoyageShouldArrive(status string) error {
	if vc.result == nil {
		return fmt.Errorf("no result computed")
	}
	if string(vc.result.Totals.Laycan.Status) != status {
		return fmt.Errorf("expected laycan status %q, got %q", status, vc.result.Totals.Laycan.Status)
	}
	return nil
}

func (vc *voyageContext) theLaycanSlackShouldBeNegative() error {
	if vc.result == nil {
		return fmt.Errorf("no result computed")
	}
	if vc.result.Totals.Laycan.DiffHours >= 0 {
		return fmt.Errorf("expected negative laycan slack, got %.1f hours", vc.result.Totals.Laycan.DiffHours)
	}
	return nil
}

func (vc *voyageContext) theTotalCostShouldBePositive() error {
	if vc.result == nil {
		return fmt.Errorf("no result computed")
	}
	if vc.result.Totals.Costs.TotalUSD <= 0 {
		return fmt.Errorf("expected positive total cost, got %.2f", vc.result.Totals.Costs.TotalUSD)
	}
	return nil
}

func (vc *voyageContext) ecaFuelShouldSumToTotal() error {
	if vc.result == nil {
		return fmt.Errorf("no result computed")
	}
	split := vc.result.Totals.FuelSplit
	sum := split.ECAFuelTons + split.NonECAFuelTons
	if math.Abs(sum-vc.result.Totals.FuelTons) > 1e-6 {
		return fmt.Errorf("ECA split does not conserve fuel: %.6f + %.6f != %.6f",
			split.ECAFuelTons, split.NonECAFuelTons, vc.result.Totals.FuelTons)
	}
	return nil
}

func (vc *voyageContext) theComputationShouldFailWithError(expected string) error {
	if vc.err == nil {
		return fmt.Errorf("expected computation to fail, but it succeeded")
	}
	if vc.err.Error() != expected {
		return fmt.Errorf("expected error %q, got %q", expected, vc.err.Error())
	}
	return nil
}

// InitializeVoyageScenario registers all voyage calculation step definitions
func InitializeVoyageScenario(sc *godog.ScenarioContext) {
	ctx := &voyageContext{}

	sc.Before(func(c context.Context, sn *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return c, nil
	})

	// Setup steps
	sc.Step(`^a ship class with:$`, ctx.aShipClassWith)
	sc.Step(`^a route with:$`, ctx.aRouteWith)
	sc.Step(`^bunker price (\d+) USD and CO2 price (\d+) USD per ton$`, ctx.pricing)
	sc.Step(`^a laycan window of (\d+) days$`, ctx.aLaycanWindowOfDays)

	// Action steps
	sc.Step(`^I compute the voyage at ([\d.]+) knots with weather factor ([\d.]+)$`, ctx.iComputeTheVoyage)
	sc.Step(`^I attempt to compute the voyage at ([\d.]+) knots with weather factor ([\d.]+)$`, ctx.iAttemptToComputeTheVoyage)

	// Assertion steps
	sc.Step(`^the effective speed should be ([\d.]+) knots$`, ctx.theEffectiveSpeedShouldBe)
	sc.Step(`^the daily fuel rate should be ([\d.]+) tons$`, ctx.theDailyFuelRateShouldBe)
	sc.Step(`^the total fuel should be ([\d.]+) tons$`, ctx.theTotalFuelShouldBe)
	sc.Step(`^the voyage should arrive "([^"]*)"$`, ctx.theVoyageShouldArrive)
	sc.Step(`^the laycan slack should be negative$`, ctx.theLaycanSlackShouldBeNegative)
	sc.Step(`^the total cost should be positive$`, ctx.theTotalCostShouldBePositive)
	sc.Step(`^the ECA and non-ECA fuel should sum to the total fuel$`, ctx.ecaFuelShouldSumToTotal)
	sc.Step(`^the computation should fail with error "([^"]*)"$`, ctx.theComputationShouldFailWithError)
}
