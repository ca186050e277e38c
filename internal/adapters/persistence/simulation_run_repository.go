package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jferrer/voyagecast-go/internal/domain/shared"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// GormSimulationRunRepository implements voyage.SimulationRunRepository using GORM
type GormSimulationRunRepository struct {
	db *gorm.DB
}

// NewGormSimulationRunRepository creates a new GORM simulation run repository
func NewGormSimulationRunRepository(db *gorm.DB) *GormSimulationRunRepository {
	return &GormSimulationRunRepository{db: db}
}

// Save stores a completed simulation run
func (r *GormSimulationRunRepository) Save(ctx context.Context, run *voyage.SimulationRun) error {
	resultsJSON, err := json.Marshal(run.Results)
	if err != nil {
		return fmt.Errorf("failed to serialize results for run %s: %w", run.ID, err)
	}

	model := SimulationRunModel{
		ID:                   run.ID,
		ShipClass:            run.ShipClass,
		RouteSymbol:          run.RouteSymbol,
		CommandedSpeedKnots:  run.CommandedSpeedKnots,
		WeatherFactor:        run.WeatherFactor,
		BunkerPriceUSDPerTon: run.Costs.BunkerPriceUSDPerTon,
		CO2PriceUSDPerTon:    run.Costs.CO2PriceUSDPerTon,
		LaycanStart:          run.Laycan.Start,
		LaycanEnd:            run.Laycan.End,
		CreatedAt:            run.CreatedAt,
		Results:              string(resultsJSON),
	}

	if result := r.db.WithContext(ctx).Create(&model); result.Error != nil {
		return fmt.Errorf("failed to save simulation run %s: %w", run.ID, result.Error)
	}

	return nil
}

// FindByID retrieves a simulation run by its identifier
func (r *GormSimulationRunRepository) FindByID(ctx context.Context, id string) (*voyage.SimulationRun, error) {
	var model SimulationRunModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("simulation run", id)
		}
		return nil, fmt.Errorf("failed to find simulation run: %w", result.Error)
	}

	return modelToRun(&model)
}

// List retrieves the most recent simulation runs, newest first
func (r *GormSimulationRunRepository) List(ctx context.Context, limit int) ([]*voyage.SimulationRun, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []SimulationRunModel
	if result := query.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to list simulation runs: %w", result.Error)
	}

	runs := make([]*voyage.SimulationRun, 0, len(models))
	for i := range models {
		run, err := modelToRun(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert simulation run %s: %w", models[i].ID, err)
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func modelToRun(model *SimulationRunModel) (*voyage.SimulationRun, error) {
	var results []*voyage.VoyageResult
	if model.Results != "" {
		if err := json.Unmarshal([]byte(model.Results), &results); err != nil {
			return nil, fmt.Errorf("failed to deserialize results: %w", err)
		}
	}

	return &voyage.SimulationRun{
		ID:                  model.ID,
		ShipClass:           model.ShipClass,
		RouteSymbol:         model.RouteSymbol,
		CommandedSpeedKnots: model.CommandedSpeedKnots,
		WeatherFactor:       model.WeatherFactor,
		Costs: voyage.CostParameters{
			BunkerPriceUSDPerTon: model.BunkerPriceUSDPerTon,
			CO2PriceUSDPerTon:    model.CO2PriceUSDPerTon,
		},
		Laycan: voyage.LaycanWindow{
			Start: model.LaycanStart,
			End:   model.LaycanEnd,
		},
		CreatedAt: model.CreatedAt,
		Results:   results,
	}, nil
}
