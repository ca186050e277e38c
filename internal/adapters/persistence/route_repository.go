package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jferrer/voyagecast-go/internal/domain/shared"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// GormRouteRepository implements voyage.RouteRepository using GORM
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// FindBySymbol retrieves a route by symbol
func (r *GormRouteRepository) FindBySymbol(ctx context.Context, symbol string) (*voyage.RouteProfile, error) {
	var model RouteModel
	result := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("route", symbol)
		}
		return nil, fmt.Errorf("failed to find route: %w", result.Error)
	}

	return modelToRoute(&model), nil
}

// List retrieves all routes ordered by symbol
func (r *GormRouteRepository) List(ctx context.Context) ([]*voyage.RouteProfile, error) {
	var models []RouteModel
	result := r.db.WithContext(ctx).Order("symbol").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list routes: %w", result.Error)
	}

	routes := make([]*voyage.RouteProfile, 0, len(models))
	for i := range models {
		routes = append(routes, modelToRoute(&models[i]))
	}

	return routes, nil
}

// Save upserts a route profile
func (r *GormRouteRepository) Save(ctx context.Context, route *voyage.RouteProfile) error {
	model := RouteModel{
		Symbol:                  route.Symbol,
		Name:                    route.Name,
		FromLat:                 route.From.Lat,
		FromLon:                 route.From.Lon,
		ToLat:                   route.To.Lat,
		ToLon:                   route.To.Lon,
		TotalDistanceNm:         route.TotalDistanceNm,
		ECADistanceNm:           route.ECADistanceNm,
		CanalName:               route.Canal.Name,
		CanalCostUSD:            route.Canal.CostUSD,
		BasePortCostsUSD:        route.BasePortCostsUSD,
		AlternateName:           route.Alternate.Name,
		AlternateDistanceNm:     route.Alternate.DistanceNm,
		AlternateCostMultiplier: route.Alternate.CostMultiplier,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		UpdateAll: true,
	}).Create(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to save route %s: %w", route.Symbol, result.Error)
	}

	return nil
}

// Count returns the number of routes in the catalog
func (r *GormRouteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&RouteModel{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count routes: %w", result.Error)
	}
	return count, nil
}

func modelToRoute(model *RouteModel) *voyage.RouteProfile {
	return &voyage.RouteProfile{
		Symbol:          model.Symbol,
		Name:            model.Name,
		From:            shared.Coordinate{Lat: model.FromLat, Lon: model.FromLon},
		To:              shared.Coordinate{Lat: model.ToLat, Lon: model.ToLon},
		TotalDistanceNm: model.TotalDistanceNm,
		ECADistanceNm:   model.ECADistanceNm,
		Canal: voyage.Canal{
			Name:    model.CanalName,
			CostUSD: model.CanalCostUSD,
		},
		BasePortCostsUSD: model.BasePortCostsUSD,
		Alternate: voyage.AlternateRoute{
			Name:           model.AlternateName,
			DistanceNm:     model.AlternateDistanceNm,
			CostMultiplier: model.AlternateCostMultiplier,
		},
	}
}
