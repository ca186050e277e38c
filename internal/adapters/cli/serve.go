package cli

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jferrer/voyagecast-go/internal/adapters/api"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

The server exposes the simulation and catalog operations as JSON
endpoints and shuts down gracefully on SIGINT or SIGTERM.

Endpoints:
  GET  /health
  POST /api/simulations
  GET  /api/simulations
  GET  /api/simulations/{id}
  GET  /api/ships
  GET  /api/routes

Example:
  voyagecast serve --port 5000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Bind address (default: configured)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default: configured)")

	return cmd
}

// runServe executes the serve command
func runServe(host string, port int) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	serverCfg := app.cfg.Server
	if host != "" {
		serverCfg.Host = host
	}
	if port != 0 {
		serverCfg.Port = port
	}

	server := api.NewServer(app.mediator, serverCfg)

	log.Printf("Starting voyagecast API server")
	return server.Start(ctx)
}
