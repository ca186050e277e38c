package voyage

import (
	"time"

	"github.com/jferrer/voyagecast-go/internal/domain/shared"
)

// LaycanStatus is the arrival verdict against the laycan window
type LaycanStatus string

const (
	LaycanOnTime LaycanStatus = "on_time"
	LaycanLate   LaycanStatus = "late"
)

// Leg represents one computed sailing leg. The current model produces a
// single leg per voyage; the sequence form leaves room for waypoint routing.
type Leg struct {
	From                shared.Coordinate `json:"from"`
	To                  shared.Coordinate `json:"to"`
	DistanceNm          float64           `json:"distance_nm"`
	SpeedCommandedKnots float64           `json:"speed_commanded_knots"`
	SpeedEffectiveKnots float64           `json:"speed_effective_knots"`
	DurationHours       float64           `json:"duration_hours"`
	FuelConsumedTons    float64           `json:"fuel_consumed_tons"`
	ArrivalTime         time.Time         `json:"arrival_time"`
}

// CostBreakdown itemizes the voyage cost in USD
type CostBreakdown struct {
	BunkerCostUSD     float64 `json:"bunker_cost_usd"`
	ECAFuelCostUSD    float64 `json:"eca_fuel_cost_usd"`
	NonECAFuelCostUSD float64 `json:"non_eca_fuel_cost_usd"`
	CO2CostUSD        float64 `json:"co2_cost_usd"`
	CanalCostUSD      float64 `json:"canal_cost_usd"`
	PortCostsUSD      float64 `json:"port_costs_usd"`
	TotalUSD          float64 `json:"total_voyage_cost_usd"`
}

// FuelSplit is the ECA / non-ECA distance and fuel apportionment
type FuelSplit struct {
	ECADistanceNm    float64 `json:"eca_distance_nm"`
	NonECADistanceNm float64 `json:"non_eca_distance_nm"`
	ECAFuelTons      float64 `json:"eca_fuel_tons"`
	NonECAFuelTons   float64 `json:"non_eca_fuel_tons"`
}

// LaycanRisk is the laycan verdict for the computed ETA.
// DiffHours is positive slack before the window closes, negative when late.
type LaycanRisk struct {
	Status    LaycanStatus `json:"status"`
	DiffHours float64      `json:"diff_hours"`
}

// AlternateEstimate is the projected time and cost over the alternate route
type AlternateEstimate struct {
	Name       string  `json:"name"`
	DistanceNm float64 `json:"distance_nm"`
	VoyageDays float64 `json:"voyage_days"`
	CostUSD    float64 `json:"cost_usd"`
}

// FuelStop is an advisory bunkering call, emitted when the computed fuel
// consumption exceeds the ship's bunker capacity. It never alters cost totals.
type FuelStop struct {
	PortName             string  `json:"port_name"`
	BunkerPriceUSDPerTon float64 `json:"bunker_price_usd_per_ton"`
	FuelNeededTons       float64 `json:"fuel_needed_tons"`
}

// Totals aggregates every computed voyage figure
type Totals struct {
	DistanceNm    float64           `json:"distance_nm"`
	DurationHours float64           `json:"voyage_hours"`
	DurationDays  float64           `json:"voyage_days"`
	DailyFuelTons float64           `json:"daily_fuel_tons"`
	FuelTons      float64           `json:"fuel_consumption_tons"`
	ETA           time.Time         `json:"eta"`
	Costs         CostBreakdown     `json:"costs"`
	FuelSplit     FuelSplit         `json:"fuel_split"`
	Laycan        LaycanRisk        `json:"laycan_risk"`
	Alternate     AlternateEstimate `json:"alternate_route"`
	FuelStop      *FuelStop         `json:"fuel_stop,omitempty"`
}

// VoyageResult is the immutable output of one calculator call
type VoyageResult struct {
	ScenarioName        string  `json:"scenario_name"`
	EffectiveSpeedKnots float64 `json:"effective_speed_knots"`
	Legs                []Leg   `json:"legs"`
	Totals              Totals  `json:"totals"`
}
