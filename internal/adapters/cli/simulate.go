package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jferrer/voyagecast-go/internal/application/simulation/commands"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var (
		shipClass    string
		routeSymbol  string
		speed        float64
		weather      float64
		bunkerPrice  float64
		co2Price     float64
		laycanStart  string
		laycanEnd    string
		allScenarios bool
		scenarioName string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a voyage cost simulation",
		Long: `Run a voyage cost simulation for a ship class on a route.

The simulation computes sailing duration, fuel consumption with the ECA
split, bunker and CO2 costs, canal and port costs scaled by ship size,
the laycan verdict, and an alternate-route estimate. With --all-scenarios
the four standard operating scenarios are compared in one run.

Every run is persisted and can be reviewed later with 'voyagecast runs'.

Examples:
  voyagecast simulate --ship container --route rotterdam-singapore
  voyagecast simulate --ship tanker --route rotterdam-singapore --speed 13 --weather 1.2
  voyagecast simulate --ship container --route rotterdam-singapore --all-scenarios
  voyagecast simulate --ship bulk --route rotterdam-singapore \
    --laycan-start 2025-04-01 --laycan-end 2025-04-20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(shipClass, routeSymbol, speed, weather,
				bunkerPrice, co2Price, laycanStart, laycanEnd, allScenarios, scenarioName)
		},
	}

	cmd.Flags().StringVar(&shipClass, "ship", "", "Ship class (container, bulk, tanker, general, roro) [required]")
	cmd.Flags().StringVar(&routeSymbol, "route", "", "Route symbol [required]")
	cmd.Flags().Float64Var(&speed, "speed", 0, "Commanded speed in knots (default: ship design speed)")
	cmd.Flags().Float64Var(&weather, "weather", 0, "Weather factor >= 1.0 (default: 1.0, calm)")
	cmd.Flags().Float64Var(&bunkerPrice, "bunker-price", 0, "Bunker price in USD/ton (default: configured)")
	cmd.Flags().Float64Var(&co2Price, "co2-price", 0, "CO2 price in USD/ton (default: configured)")
	cmd.Flags().StringVar(&laycanStart, "laycan-start", "", "Laycan window open (YYYY-MM-DD, default: now)")
	cmd.Flags().StringVar(&laycanEnd, "laycan-end", "", "Laycan window close (YYYY-MM-DD, default: start+30d)")
	cmd.Flags().BoolVar(&allScenarios, "all-scenarios", false, "Compare the four standard scenarios")
	cmd.Flags().StringVar(&scenarioName, "name", "", "Label for a single-scenario run")
	cmd.MarkFlagRequired("ship")
	cmd.MarkFlagRequired("route")

	return cmd
}

// runSimulate executes the simulate command
func runSimulate(shipClass, routeSymbol string, speed, weather, bunkerPrice, co2Price float64,
	laycanStart, laycanEnd string, allScenarios bool, scenarioName string) error {

	ctx := context.Background()
	app, err := newAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	simCmd := &commands.RunSimulationCommand{
		ShipClass:            shipClass,
		RouteSymbol:          routeSymbol,
		CommandedSpeedKnots:  speed,
		WeatherFactor:        weather,
		BunkerPriceUSDPerTon: bunkerPrice,
		CO2PriceUSDPerTon:    co2Price,
		AllScenarios:         allScenarios,
		ScenarioName:         scenarioName,
	}

	if laycanStart != "" {
		parsed, err := time.Parse("2006-01-02", laycanStart)
		if err != nil {
			return fmt.Errorf("invalid laycan start date format: %w", err)
		}
		simCmd.LaycanStart = parsed
	}
	if laycanEnd != "" {
		parsed, err := time.Parse("2006-01-02", laycanEnd)
		if err != nil {
			return fmt.Errorf("invalid laycan end date format: %w", err)
		}
		// Window closes at end of day
		simCmd.LaycanEnd = parsed.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}

	result, err := app.mediator.Send(ctx, simCmd)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	response := result.(*commands.RunSimulationResponse)
	displaySimulationRun(response.Run)

	return nil
}

// displaySimulationRun formats and displays a simulation run
func displaySimulationRun(run *voyage.SimulationRun) {
	fmt.Printf("\nVOYAGE SIMULATION  %s -> %s  (%s, run %s)\n",
		run.RouteSymbol, run.ShipClass, run.CreatedAt.Format("2006-01-02 15:04"), shortID(run.ID))
	fmt.Println("─────────────────────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Scenario\tSpeed\tDuration\tFuel\tTotal Cost\tLaycan\tSlack")
	fmt.Fprintln(w, "────────\t─────\t────────\t────\t──────────\t──────\t─────")

	for _, result := range run.Results {
		totals := result.Totals
		fmt.Fprintf(w, "%s\t%.1f kn\t%s\t%s\t%s\t%s\t%+.1fh\n",
			result.ScenarioName,
			result.EffectiveSpeedKnots,
			formatHours(totals.DurationHours),
			formatTons(totals.FuelTons),
			formatUSD(totals.Costs.TotalUSD),
			totals.Laycan.Status,
			totals.Laycan.DiffHours,
		)
	}
	w.Flush()

	best := run.BestResult()
	if best != nil {
		fmt.Println("─────────────────────────────────────────────────────────────────────────────")
		fmt.Printf("Cheapest: %s at %s\n", best.ScenarioName, formatUSD(best.Totals.Costs.TotalUSD))
	}

	if len(run.Results) == 1 {
		displayResultDetail(run.Results[0])
	}
	fmt.Println()
}

// displayResultDetail prints the full breakdown for a single scenario
func displayResultDetail(result *voyage.VoyageResult) {
	totals := result.Totals

	fmt.Printf("\nETA: %s  (%s)\n", totals.ETA.Format("2006-01-02 15:04 MST"), totals.Laycan.Status)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Distance\t%.1f nm (ECA %.1f nm)\n", totals.DistanceNm, totals.FuelSplit.ECADistanceNm)
	fmt.Fprintf(w, "Daily fuel\t%s/day\n", formatTons(totals.DailyFuelTons))
	fmt.Fprintf(w, "Bunker cost\t%s\n", formatUSD(totals.Costs.BunkerCostUSD))
	fmt.Fprintf(w, "CO2 cost\t%s\n", formatUSD(totals.Costs.CO2CostUSD))
	fmt.Fprintf(w, "Canal cost\t%s\n", formatUSD(totals.Costs.CanalCostUSD))
	fmt.Fprintf(w, "Port costs\t%s\n", formatUSD(totals.Costs.PortCostsUSD))
	fmt.Fprintf(w, "Total\t%s\n", formatUSD(totals.Costs.TotalUSD))
	w.Flush()

	if totals.Alternate.Name != "" {
		fmt.Printf("Alternate via %s: %.1f days, %s\n",
			totals.Alternate.Name, totals.Alternate.VoyageDays, formatUSD(totals.Alternate.CostUSD))
	}
	if totals.FuelStop != nil {
		fmt.Printf("Fuel stop advised: %s at %s/t for %s\n",
			totals.FuelStop.PortName,
			formatUSD(totals.FuelStop.BunkerPriceUSDPerTon),
			formatTons(totals.FuelStop.FuelNeededTons))
	}
}

// shortID truncates a run ID for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
