package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	simqueries "github.com/jferrer/voyagecast-go/internal/application/simulation/queries"
)

// NewRunsCommand creates the runs command with subcommands
func NewRunsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Simulation run history operations",
		Long: `Review persisted simulation runs.

Every 'voyagecast simulate' invocation stores its inputs and full
results. Use these commands to list recent runs or reprint one.

Examples:
  voyagecast runs list --limit 10
  voyagecast runs show 4f7c2a1e-...`,
	}

	cmd.AddCommand(newRunsListCommand())
	cmd.AddCommand(newRunsShowCommand())

	return cmd
}

// newRunsListCommand creates the runs list subcommand
func newRunsListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent simulation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunsList(limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to return")

	return cmd
}

// newRunsShowCommand creates the runs show subcommand
func newRunsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one simulation run in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunsShow(args[0])
		},
	}
}

// runRunsList executes the runs list command
func runRunsList(limit int) error {
	ctx := context.Background()
	app, err := newAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.mediator.Send(ctx, &simqueries.ListSimulationRunsQuery{Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to list simulation runs: %w", err)
	}

	response := result.(*simqueries.ListSimulationRunsResponse)
	if len(response.Runs) == 0 {
		fmt.Println("No simulation runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Run\tCreated\tShip\tRoute\tSpeed\tWeather\tScenarios")
	fmt.Fprintln(w, "───\t───────\t────\t─────\t─────\t───────\t─────────")

	for _, run := range response.Runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f kn\t%.2f\t%d\n",
			shortID(run.ID),
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.ShipClass,
			run.RouteSymbol,
			run.CommandedSpeedKnots,
			run.WeatherFactor,
			len(run.Results),
		)
	}
	w.Flush()
	fmt.Printf("Total: %d runs\n", len(response.Runs))

	return nil
}

// runRunsShow executes the runs show command
func runRunsShow(runID string) error {
	ctx := context.Background()
	app, err := newAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.mediator.Send(ctx, &simqueries.GetSimulationRunQuery{RunID: runID})
	if err != nil {
		return fmt.Errorf("failed to load simulation run: %w", err)
	}

	response := result.(*simqueries.GetSimulationRunResponse)
	displaySimulationRun(response.Run)

	return nil
}
