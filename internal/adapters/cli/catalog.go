package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	catalogqueries "github.com/jferrer/voyagecast-go/internal/application/catalog/queries"
)

// NewShipsCommand creates the ships command with subcommands
func NewShipsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ships",
		Short: "Ship class catalog operations",
	}

	cmd.AddCommand(newShipsListCommand())

	return cmd
}

// newShipsListCommand creates the ships list subcommand
func newShipsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available ship classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShipsList()
		},
	}
}

// NewRoutesCommand creates the routes command with subcommands
func NewRoutesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Route catalog operations",
	}

	cmd.AddCommand(newRoutesListCommand())

	return cmd
}

// newRoutesListCommand creates the routes list subcommand
func newRoutesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutesList()
		},
	}
}

// runShipsList executes the ships list command
func runShipsList() error {
	ctx := context.Background()
	app, err := newAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.mediator.Send(ctx, &catalogqueries.ListShipsQuery{})
	if err != nil {
		return fmt.Errorf("failed to list ship classes: %w", err)
	}

	response := result.(*catalogqueries.ListShipsResponse)
	if len(response.Ships) == 0 {
		fmt.Println("No ship classes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Class\tName\tSpeed\tFuel/day\tDWT\tBunker Cap")
	fmt.Fprintln(w, "─────\t────\t─────\t────────\t───\t──────────")

	for _, ship := range response.Ships {
		fmt.Fprintf(w, "%s\t%s\t%.1f kn\t%s\t%s\t%s\n",
			ship.Class,
			ship.Name,
			ship.BaseSpeedKnots,
			formatTons(ship.BaseFuelRatePerDayTons),
			addThousandsSeparator(int64(ship.CargoCapacityDWT)),
			formatTons(ship.FuelCapacityTons),
		)
	}
	w.Flush()

	return nil
}

// runRoutesList executes the routes list command
func runRoutesList() error {
	ctx := context.Background()
	app, err := newAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.mediator.Send(ctx, &catalogqueries.ListRoutesQuery{})
	if err != nil {
		return fmt.Errorf("failed to list routes: %w", err)
	}

	response := result.(*catalogqueries.ListRoutesResponse)
	if len(response.Routes) == 0 {
		fmt.Println("No routes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Symbol\tName\tDistance\tECA\tCanal\tPort Costs\tAlternate")
	fmt.Fprintln(w, "──────\t────\t────────\t───\t─────\t──────────\t─────────")

	for _, route := range response.Routes {
		canal := "-"
		if route.Canal.Name != "" {
			canal = fmt.Sprintf("%s (%s)", route.Canal.Name, formatUSD(route.Canal.CostUSD))
		}
		alternate := "-"
		if route.Alternate.Name != "" {
			alternate = fmt.Sprintf("%s (%.0f nm)", route.Alternate.Name, route.Alternate.DistanceNm)
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f nm\t%.1f nm\t%s\t%s\t%s\n",
			route.Symbol,
			route.Name,
			route.TotalDistanceNm,
			route.ECADistanceNm,
			canal,
			formatUSD(route.BasePortCostsUSD),
			alternate,
		)
	}
	w.Flush()

	return nil
}
