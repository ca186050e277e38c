package voyage

import (
	"math"
	"time"

	"github.com/jferrer/voyagecast-go/internal/domain/shared"
)

// Model constants for conventional fuel oil and the cost scaling basis.
const (
	// CO2EmissionFactor is tons of CO2 emitted per ton of fuel burned (HFO)
	CO2EmissionFactor = 3.17

	// ReferenceDWT is the deadweight basis the catalog port and canal
	// tariffs are quoted against; actual costs scale linearly with DWT
	ReferenceDWT = 120000.0

	// FuelStopBufferTons is the reserve added on top of the bunker
	// shortfall when recommending a fuel stop
	FuelStopBufferTons = 500.0

	hoursPerDay = 24.0
)

// BunkerPort is a bunkering call candidate for fuel stop advisories
type BunkerPort struct {
	Name                 string
	Position             shared.Coordinate
	BunkerPriceUSDPerTon float64
}

// DefaultBunkerPorts are the major bunkering hubs considered for fuel stops
var DefaultBunkerPorts = []BunkerPort{
	{Name: "Singapore", Position: shared.Coordinate{Lat: 1.3521, Lon: 103.8198}, BunkerPriceUSDPerTon: 680},
	{Name: "Rotterdam", Position: shared.Coordinate{Lat: 51.9225, Lon: 4.4792}, BunkerPriceUSDPerTon: 650},
	{Name: "Fujairah", Position: shared.Coordinate{Lat: 25.1164, Lon: 56.3467}, BunkerPriceUSDPerTon: 645},
	{Name: "Gibraltar", Position: shared.Coordinate{Lat: 36.1408, Lon: -5.3536}, BunkerPriceUSDPerTon: 660},
}

// Calculator derives a complete voyage cost, time and fuel breakdown from a
// scenario. It is stateless apart from the bunker port table it advises
// fuel stops from: identical input always produces identical output.
type Calculator struct {
	bunkerPorts []BunkerPort
}

// NewCalculator creates a calculator using the default bunker port table
func NewCalculator() *Calculator {
	return &Calculator{bunkerPorts: DefaultBunkerPorts}
}

// NewCalculatorWithPorts creates a calculator advising fuel stops from a
// custom bunker port table. An empty table disables fuel stop advisories.
func NewCalculatorWithPorts(ports []BunkerPort) *Calculator {
	return &Calculator{bunkerPorts: ports}
}

// Compute runs one voyage scenario and returns its full breakdown.
//
// The only failure modes are the two scenario preconditions: non-positive
// commanded speed or weather factor, and an ECA distance outside the route
// bounds. Every other degenerate input (zero distance, zero laycan window)
// produces a complete zero-valued result rather than an error.
func (c *Calculator) Compute(s *VoyageScenario) (*VoyageResult, error) {
	if s.CommandedSpeedKnots <= 0 || s.WeatherFactor <= 0 {
		return nil, shared.NewInvalidInputError("non-positive speed or weather factor")
	}
	if s.Route.ECADistanceNm < 0 || s.Route.ECADistanceNm > s.Route.TotalDistanceNm {
		return nil, shared.NewInvalidInputError("eca distance out of range")
	}

	ship := s.Ship
	route := s.Route

	// A weather factor above 1.0 degrades the achievable speed over ground;
	// 1.0 is the neutral case.
	effectiveSpeed := s.CommandedSpeedKnots / s.WeatherFactor

	voyageHours := 0.0
	if route.TotalDistanceNm > 0 {
		voyageHours = route.TotalDistanceNm / effectiveSpeed
	}
	voyageDays := voyageHours / hoursPerDay

	// Cubic law: fuel burn scales with the cube of speed through the water.
	// The ratio uses the commanded speed, not the weather-adjusted ground
	// speed, since burn is a function of propulsion effort.
	dailyFuel := 0.0
	if ship.BaseSpeedKnots > 0 {
		ratio := s.CommandedSpeedKnots / ship.BaseSpeedKnots
		dailyFuel = ship.BaseFuelRatePerDayTons * math.Pow(ratio, 3)
	}
	totalFuel := dailyFuel * voyageDays

	ecaRatio := 0.0
	if route.TotalDistanceNm > 0 {
		ecaRatio = route.ECADistanceNm / route.TotalDistanceNm
	}
	ecaFuel := totalFuel * ecaRatio
	nonECAFuel := totalFuel * (1 - ecaRatio)

	bunkerCost := totalFuel * s.Costs.BunkerPriceUSDPerTon
	co2Cost := totalFuel * CO2EmissionFactor * s.Costs.CO2PriceUSDPerTon

	dwtFactor := ship.CargoCapacityDWT / ReferenceDWT
	portCosts := route.BasePortCostsUSD * dwtFactor
	canalCost := route.Canal.CostUSD * dwtFactor

	totalCost := bunkerCost + co2Cost + portCosts + canalCost

	// Departure is pinned to the laycan window start; the model carries no
	// independent departure time input.
	arrival := s.Laycan.Start.Add(hoursToDuration(voyageHours))
	diffHours := s.Laycan.End.Sub(arrival).Hours()
	status := LaycanOnTime
	if diffHours < 0 {
		status = LaycanLate
	}

	alternateDays := 0.0
	if effectiveSpeed > 0 {
		alternateDays = (route.Alternate.DistanceNm / effectiveSpeed) / hoursPerDay
	}

	result := &VoyageResult{
		ScenarioName:        s.Name,
		EffectiveSpeedKnots: effectiveSpeed,
		Legs: []Leg{{
			From:                route.From,
			To:                  route.To,
			DistanceNm:          route.TotalDistanceNm,
			SpeedCommandedKnots: s.CommandedSpeedKnots,
			SpeedEffectiveKnots: effectiveSpeed,
			DurationHours:       voyageHours,
			FuelConsumedTons:    totalFuel,
			ArrivalTime:         arrival,
		}},
		Totals: Totals{
			DistanceNm:    route.TotalDistanceNm,
			DurationHours: voyageHours,
			DurationDays:  voyageDays,
			DailyFuelTons: dailyFuel,
			FuelTons:      totalFuel,
			ETA:           arrival,
			Costs: CostBreakdown{
				BunkerCostUSD:     bunkerCost,
				ECAFuelCostUSD:    ecaFuel * s.Costs.BunkerPriceUSDPerTon,
				NonECAFuelCostUSD: nonECAFuel * s.Costs.BunkerPriceUSDPerTon,
				CO2CostUSD:        co2Cost,
				CanalCostUSD:      canalCost,
				PortCostsUSD:      portCosts,
				TotalUSD:          totalCost,
			},
			FuelSplit: FuelSplit{
				ECADistanceNm:    route.ECADistanceNm,
				NonECADistanceNm: route.TotalDistanceNm - route.ECADistanceNm,
				ECAFuelTons:      ecaFuel,
				NonECAFuelTons:   nonECAFuel,
			},
			Laycan: LaycanRisk{
				Status:    status,
				DiffHours: diffHours,
			},
			Alternate: AlternateEstimate{
				Name:       route.Alternate.Name,
				DistanceNm: route.Alternate.DistanceNm,
				VoyageDays: alternateDays,
				CostUSD:    totalCost * route.Alternate.CostMultiplier,
			},
			FuelStop: c.adviseFuelStop(ship, totalFuel),
		},
	}

	return result, nil
}

// adviseFuelStop recommends the cheapest bunkering hub when the voyage
// burns more fuel than the ship can carry. Ships with no declared capacity
// get no advisory.
func (c *Calculator) adviseFuelStop(ship *ShipProfile, totalFuel float64) *FuelStop {
	if ship.FuelCapacityTons <= 0 || totalFuel <= ship.FuelCapacityTons {
		return nil
	}
	if len(c.bunkerPorts) == 0 {
		return nil
	}

	cheapest := c.bunkerPorts[0]
	for _, port := range c.bunkerPorts[1:] {
		if port.BunkerPriceUSDPerTon < cheapest.BunkerPriceUSDPerTon {
			cheapest = port
		}
	}

	return &FuelStop{
		PortName:             cheapest.Name,
		BunkerPriceUSDPerTon: cheapest.BunkerPriceUSDPerTon,
		FuelNeededTons:       totalFuel - ship.FuelCapacityTons + FuelStopBufferTons,
	}
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
