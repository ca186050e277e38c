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

// GormShipRepository implements voyage.ShipRepository using GORM
type GormShipRepository struct {
	db *gorm.DB
}

// NewGormShipRepository creates a new GORM ship repository
func NewGormShipRepository(db *gorm.DB) *GormShipRepository {
	return &GormShipRepository{db: db}
}

// FindByClass retrieves a ship profile by class identifier
func (r *GormShipRepository) FindByClass(ctx context.Context, class string) (*voyage.ShipProfile, error) {
	var model ShipClassModel
	result := r.db.WithContext(ctx).Where("class = ?", class).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("ship class", class)
		}
		return nil, fmt.Errorf("failed to find ship class: %w", result.Error)
	}

	return modelToShip(&model), nil
}

// List retrieves all ship classes ordered by class identifier
func (r *GormShipRepository) List(ctx context.Context) ([]*voyage.ShipProfile, error) {
	var models []ShipClassModel
	result := r.db.WithContext(ctx).Order("class").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list ship classes: %w", result.Error)
	}

	ships := make([]*voyage.ShipProfile, 0, len(models))
	for i := range models {
		ships = append(ships, modelToShip(&models[i]))
	}

	return ships, nil
}

// Save upserts a ship profile
func (r *GormShipRepository) Save(ctx context.Context, ship *voyage.ShipProfile) error {
	model := ShipClassModel{
		Class:                  ship.Class,
		Name:                   ship.Name,
		BaseSpeedKnots:         ship.BaseSpeedKnots,
		BaseFuelRatePerDayTons: ship.BaseFuelRatePerDayTons,
		CargoCapacityDWT:       ship.CargoCapacityDWT,
		FuelCapacityTons:       ship.FuelCapacityTons,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "class"}},
		UpdateAll: true,
	}).Create(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to save ship class %s: %w", ship.Class, result.Error)
	}

	return nil
}

// Count returns the number of ship classes in the catalog
func (r *GormShipRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&ShipClassModel{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count ship classes: %w", result.Error)
	}
	return count, nil
}

func modelToShip(model *ShipClassModel) *voyage.ShipProfile {
	return &voyage.ShipProfile{
		Class:                  model.Class,
		Name:                   model.Name,
		BaseSpeedKnots:         model.BaseSpeedKnots,
		BaseFuelRatePerDayTons: model.BaseFuelRatePerDayTons,
		CargoCapacityDWT:       model.CargoCapacityDWT,
		FuelCapacityTons:       model.FuelCapacityTons,
	}
}
