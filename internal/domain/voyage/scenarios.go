package voyage

// Preset scenario parameters. The eco speed fraction follows the usual
// slow-steaming setting; the hindered factor models heavy weather on the
// commanded heading.
const (
	EcoSpeedFraction      = 0.85
	HinderedWeatherFactor = 1.2
	NeutralWeatherFactor  = 1.0
)

// Standard scenario names
const (
	ScenarioNormal   = "Normal Voyage"
	ScenarioEco      = "Eco Voyage"
	ScenarioHindered = "Weather Hindered"
	ScenarioOptimal  = "Optimal Voyage"
)

// StandardScenarios builds the four comparison scenarios for one ship,
// route and market: design speed in neutral weather, slow steaming, design
// speed through heavy weather, and slow steaming held through the same
// weather. Each shares the ship, route, costs and laycan window.
func StandardScenarios(
	ship *ShipProfile,
	route *RouteProfile,
	costs CostParameters,
	laycan LaycanWindow,
) []*VoyageScenario {
	base := ship.BaseSpeedKnots

	build := func(name string, speed, weather float64) *VoyageScenario {
		return &VoyageScenario{
			Name:                name,
			Ship:                ship,
			Route:               route,
			Costs:               costs,
			Laycan:              laycan,
			CommandedSpeedKnots: speed,
			WeatherFactor:       weather,
		}
	}

	return []*VoyageScenario{
		build(ScenarioNormal, base, NeutralWeatherFactor),
		build(ScenarioEco, base*EcoSpeedFraction, NeutralWeatherFactor),
		build(ScenarioHindered, base, HinderedWeatherFactor),
		build(ScenarioOptimal, base*EcoSpeedFraction, HinderedWeatherFactor),
	}
}

// ComputeAll runs every scenario through the calculator, failing on the
// first invalid one.
func ComputeAll(calc *Calculator, scenarios []*VoyageScenario) ([]*VoyageResult, error) {
	results := make([]*VoyageResult, 0, len(scenarios))
	for _, s := range scenarios {
		result, err := calc.Compute(s)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
