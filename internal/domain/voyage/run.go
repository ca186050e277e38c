package voyage

import (
	"time"
)

// SimulationRun is the persisted record of one simulation request: the
// inputs as submitted plus every scenario result computed from them.
type SimulationRun struct {
	ID                  string          `json:"id"`
	ShipClass           string          `json:"ship_class"`
	RouteSymbol         string          `json:"route_symbol"`
	CommandedSpeedKnots float64         `json:"commanded_speed_knots"`
	WeatherFactor       float64         `json:"weather_factor"`
	Costs               CostParameters  `json:"costs"`
	Laycan              LaycanWindow    `json:"laycan"`
	CreatedAt           time.Time       `json:"created_at"`
	Results             []*VoyageResult `json:"results"`
}

// BestResult returns the cheapest scenario of the run, or nil for an empty run
func (r *SimulationRun) BestResult() *VoyageResult {
	var best *VoyageResult
	for _, result := range r.Results {
		if best == nil || result.Totals.Costs.TotalUSD < best.Totals.Costs.TotalUSD {
			best = result
		}
	}
	return best
}
