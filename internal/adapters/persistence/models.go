package persistence

import (
	"time"
)

// ShipClassModel represents the ship_classes table
type ShipClassModel struct {
	Class                  string  `gorm:"column:class;primaryKey"`
	Name                   string  `gorm:"column:name;not null"`
	BaseSpeedKnots         float64 `gorm:"column:base_speed_knots;not null"`
	BaseFuelRatePerDayTons float64 `gorm:"column:base_fuel_rate_tons_per_day;not null"`
	CargoCapacityDWT       float64 `gorm:"column:cargo_capacity_dwt;not null"`
	FuelCapacityTons       float64 `gorm:"column:fuel_capacity_tons;not null;default:0"`
}

func (ShipClassModel) TableName() string {
	return "ship_classes"
}

// RouteModel represents the routes table
type RouteModel struct {
	Symbol                  string  `gorm:"column:symbol;primaryKey"`
	Name                    string  `gorm:"column:name;not null"`
	FromLat                 float64 `gorm:"column:from_lat;not null"`
	FromLon                 float64 `gorm:"column:from_lon;not null"`
	ToLat                   float64 `gorm:"column:to_lat;not null"`
	ToLon                   float64 `gorm:"column:to_lon;not null"`
	TotalDistanceNm         float64 `gorm:"column:total_distance_nm;not null"`
	ECADistanceNm           float64 `gorm:"column:eca_distance_nm;not null;default:0"`
	CanalName               string  `gorm:"column:canal_name"`
	CanalCostUSD            float64 `gorm:"column:canal_cost_usd;default:0"`
	BasePortCostsUSD        float64 `gorm:"column:base_port_costs_usd;default:0"`
	AlternateName           string  `gorm:"column:alternate_name"`
	AlternateDistanceNm     float64 `gorm:"column:alternate_distance_nm;default:0"`
	AlternateCostMultiplier float64 `gorm:"column:alternate_cost_multiplier;default:1"`
}

func (RouteModel) TableName() string {
	return "routes"
}

// SimulationRunModel represents the simulation_runs table.
// Results are stored as a JSON document: runs are written once and read
// back whole, never queried by scenario field.
type SimulationRunModel struct {
	ID                   string    `gorm:"column:id;primaryKey"`
	ShipClass            string    `gorm:"column:ship_class;not null"`
	RouteSymbol          string    `gorm:"column:route_symbol;not null"`
	CommandedSpeedKnots  float64   `gorm:"column:commanded_speed_knots;not null"`
	WeatherFactor        float64   `gorm:"column:weather_factor;not null"`
	BunkerPriceUSDPerTon float64   `gorm:"column:bunker_price_usd_per_ton;not null"`
	CO2PriceUSDPerTon    float64   `gorm:"column:co2_price_usd_per_ton;not null"`
	LaycanStart          time.Time `gorm:"column:laycan_start;not null"`
	LaycanEnd            time.Time `gorm:"column:laycan_end;not null"`
	CreatedAt            time.Time `gorm:"column:created_at;not null;index"`
	Results              string    `gorm:"column:results;type:text;not null"`
}

func (SimulationRunModel) TableName() string {
	return "simulation_runs"
}
