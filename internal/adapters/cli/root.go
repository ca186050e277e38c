package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "voyagecast",
		Short: "Voyagecast - Maritime voyage cost and laycan simulator",
		Long: `Voyagecast estimates voyage duration, fuel consumption, emissions
cost, and laycan risk for a ship on a trade route, comparing operating
scenarios such as eco steaming and weather-hindered passages.

Examples:
  voyagecast simulate --ship container --route rotterdam-singapore
  voyagecast simulate --ship tanker --route rotterdam-singapore --speed 13 --weather 1.2
  voyagecast simulate --ship container --route rotterdam-singapore --all-scenarios
  voyagecast ships list
  voyagecast routes list
  voyagecast runs list --limit 10
  voyagecast runs show <run-id>
  voyagecast serve`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewShipsCommand())
	rootCmd.AddCommand(NewRoutesCommand())
	rootCmd.AddCommand(NewRunsCommand())
	rootCmd.AddCommand(NewServeCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
