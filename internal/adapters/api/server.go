package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jferrer/voyagecast-go/internal/application/mediator"
	"github.com/jferrer/voyagecast-go/internal/infrastructure/config"
)

// Server exposes the simulation and catalog operations over HTTP
type Server struct {
	mediator mediator.Mediator
	cfg      config.ServerConfig
	httpSrv  *http.Server
}

// NewServer creates a new Server
func NewServer(m mediator.Mediator, cfg config.ServerConfig) *Server {
	return &Server{mediator: m, cfg: cfg}
}

// Router constructs the HTTP router
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Use(rateLimitMiddleware(s.cfg.RateLimit.RequestsPerSecond, s.cfg.RateLimit.Burst))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/simulations", s.handleRunSimulation)
		r.Get("/simulations", s.handleListRuns)
		r.Get("/simulations/{id}", s.handleGetRun)
		r.Get("/ships", s.handleListShips)
		r.Get("/routes", s.handleListRoutes)
	})

	return r
}

// Start begins serving and blocks until ctx is cancelled, then shuts
// down gracefully within the configured timeout
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	log.Printf("Shutting down HTTP server")
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
