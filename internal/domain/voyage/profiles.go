package voyage

import (
	"time"

	"github.com/jferrer/voyagecast-go/internal/domain/shared"
)

// ShipProfile describes a vessel class. Loaded from the static catalog and
// immutable for the lifetime of a simulation run.
type ShipProfile struct {
	Class                  string  `json:"class"`
	Name                   string  `json:"name"`
	BaseSpeedKnots         float64 `json:"base_speed_knots"`
	BaseFuelRatePerDayTons float64 `json:"base_fuel_rate_tons_per_day"`
	CargoCapacityDWT       float64 `json:"cargo_capacity_dwt"`
	FuelCapacityTons       float64 `json:"fuel_capacity_tons"`
}

// Validate checks the ship profile invariants
func (s *ShipProfile) Validate() error {
	if s.BaseSpeedKnots <= 0 {
		return shared.NewValidationError("base_speed_knots", "must be positive")
	}
	if s.BaseFuelRatePerDayTons <= 0 {
		return shared.NewValidationError("base_fuel_rate_tons_per_day", "must be positive")
	}
	return nil
}

// Canal describes an optional canal transit on a route.
// CostUSD is zero and Name empty when no canal is transited.
type Canal struct {
	Name    string  `json:"name"`
	CostUSD float64 `json:"cost_usd"`
}

// AlternateRoute describes the fallback routing option for a route,
// estimated against the primary voyage rather than computed independently.
type AlternateRoute struct {
	Name           string  `json:"name"`
	DistanceNm     float64 `json:"distance_nm"`
	CostMultiplier float64 `json:"cost_multiplier"`
}

// RouteProfile describes a point-to-point maritime route
type RouteProfile struct {
	Symbol           string            `json:"symbol"`
	Name             string            `json:"name"`
	From             shared.Coordinate `json:"from"`
	To               shared.Coordinate `json:"to"`
	TotalDistanceNm  float64           `json:"total_distance_nm"`
	ECADistanceNm    float64           `json:"eca_distance_nm"`
	Canal            Canal             `json:"canal"`
	BasePortCostsUSD float64           `json:"base_port_costs_usd"`
	Alternate        AlternateRoute    `json:"alternate_route"`
}

// Validate checks the route profile invariants
func (r *RouteProfile) Validate() error {
	if r.TotalDistanceNm < 0 || r.ECADistanceNm < 0 || r.Alternate.DistanceNm < 0 {
		return shared.NewValidationError("distances", "must be non-negative")
	}
	if r.ECADistanceNm > r.TotalDistanceNm {
		return shared.NewValidationError("eca_distance_nm", "exceeds total route distance")
	}
	return nil
}

// CostParameters holds the market prices a voyage is costed against
type CostParameters struct {
	BunkerPriceUSDPerTon float64 `json:"bunker_price_usd_per_ton"`
	CO2PriceUSDPerTon    float64 `json:"co2_price_usd_per_ton"`
}

// LaycanWindow is the contractual arrival window of a charter.
// A negative-duration window is legal input; it simply produces a late verdict.
type LaycanWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// VoyageScenario is the complete immutable input to the calculator
type VoyageScenario struct {
	Name                string
	Ship                *ShipProfile
	Route               *RouteProfile
	Costs               CostParameters
	Laycan              LaycanWindow
	CommandedSpeedKnots float64
	WeatherFactor       float64
}
