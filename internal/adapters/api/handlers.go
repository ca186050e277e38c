package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	catalogqueries "github.com/jferrer/voyagecast-go/internal/application/catalog/queries"
	"github.com/jferrer/voyagecast-go/internal/application/simulation/commands"
	simqueries "github.com/jferrer/voyagecast-go/internal/application/simulation/queries"
	"github.com/jferrer/voyagecast-go/internal/domain/shared"
)

// runSimulationRequest is the JSON body for POST /api/simulations
type runSimulationRequest struct {
	ShipClass            string     `json:"ship_class"`
	RouteSymbol          string     `json:"route_symbol"`
	CommandedSpeedKnots  float64    `json:"commanded_speed_knots,omitempty"`
	WeatherFactor        float64    `json:"weather_factor,omitempty"`
	BunkerPriceUSDPerTon float64    `json:"bunker_price_usd_per_ton,omitempty"`
	CO2PriceUSDPerTon    float64    `json:"co2_price_usd_per_ton,omitempty"`
	LaycanStart          *time.Time `json:"laycan_start,omitempty"`
	LaycanEnd            *time.Time `json:"laycan_end,omitempty"`
	AllScenarios         bool       `json:"all_scenarios,omitempty"`
	ScenarioName         string     `json:"scenario_name,omitempty"`
}

func (s *Server) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	var req runSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := &commands.RunSimulationCommand{
		ShipClass:            req.ShipClass,
		RouteSymbol:          req.RouteSymbol,
		CommandedSpeedKnots:  req.CommandedSpeedKnots,
		WeatherFactor:        req.WeatherFactor,
		BunkerPriceUSDPerTon: req.BunkerPriceUSDPerTon,
		CO2PriceUSDPerTon:    req.CO2PriceUSDPerTon,
		AllScenarios:         req.AllScenarios,
		ScenarioName:         req.ScenarioName,
	}
	if req.LaycanStart != nil {
		cmd.LaycanStart = *req.LaycanStart
	}
	if req.LaycanEnd != nil {
		cmd.LaycanEnd = *req.LaycanEnd
	}

	resp, err := s.mediator.Send(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := resp.(*commands.RunSimulationResponse)
	writeJSON(w, http.StatusCreated, result.Run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeJSONError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	resp, err := s.mediator.Send(r.Context(), &simqueries.ListSimulationRunsQuery{Limit: limit})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := resp.(*simqueries.ListSimulationRunsResponse)
	writeJSON(w, http.StatusOK, result.Runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := s.mediator.Send(r.Context(), &simqueries.GetSimulationRunQuery{RunID: id})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := resp.(*simqueries.GetSimulationRunResponse)
	writeJSON(w, http.StatusOK, result.Run)
}

func (s *Server) handleListShips(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &catalogqueries.ListShipsQuery{})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := resp.(*catalogqueries.ListShipsResponse)
	writeJSON(w, http.StatusOK, result.Ships)
}

func (s *Server) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &catalogqueries.ListRoutesQuery{})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := resp.(*catalogqueries.ListRoutesResponse)
	writeJSON(w, http.StatusOK, result.Routes)
}

// writeDomainError maps domain failures to HTTP status codes
func writeDomainError(w http.ResponseWriter, err error) {
	var notFound *shared.NotFoundError
	if errors.As(err, &notFound) {
		writeJSONError(w, http.StatusNotFound, notFound.Error())
		return
	}

	var invalid *shared.InvalidInputError
	if errors.As(err, &invalid) {
		writeJSONError(w, http.StatusBadRequest, invalid.Error())
		return
	}

	var validation *shared.ValidationError
	if errors.As(err, &validation) {
		writeJSONError(w, http.StatusBadRequest, validation.Error())
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
