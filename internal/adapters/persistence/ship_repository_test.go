package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jferrer/voyagecast-go/internal/adapters/persistence"
	"github.com/jferrer/voyagecast-go/internal/domain/shared"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
	"github.com/jferrer/voyagecast-go/test/helpers"
)

func TestShipRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormShipRepository(db)

	ship := &voyage.ShipProfile{
		Class:                  "container",
		Name:                   "Container Ship",
		BaseSpeedKnots:         18,
		BaseFuelRatePerDayTons: 45,
		CargoCapacityDWT:       150000,
		FuelCapacityTons:       5000,
	}

	// Act - Save
	err := repo.Save(context.Background(), ship)
	require.NoError(t, err)

	// Act - FindByClass
	found, err := repo.FindByClass(context.Background(), "container")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ship, found)
}

func TestShipRepository_SaveUpserts(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormShipRepository(db)

	ship := &voyage.ShipProfile{
		Class:                  "bulk",
		Name:                   "Bulk Carrier",
		BaseSpeedKnots:         14,
		BaseFuelRatePerDayTons: 35,
		CargoCapacityDWT:       180000,
		FuelCapacityTons:       4000,
	}
	require.NoError(t, repo.Save(context.Background(), ship))

	ship.BaseFuelRatePerDayTons = 38
	require.NoError(t, repo.Save(context.Background(), ship))

	found, err := repo.FindByClass(context.Background(), "bulk")
	require.NoError(t, err)
	assert.Equal(t, 38.0, found.BaseFuelRatePerDayTons)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestShipRepository_FindMissing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormShipRepository(db)

	_, err := repo.FindByClass(context.Background(), "hovercraft")

	require.Error(t, err)
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestShipRepository_List(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormShipRepository(db)

	classes := []string{"tanker", "bulk", "container"}
	for _, class := range classes {
		require.NoError(t, repo.Save(context.Background(), &voyage.ShipProfile{
			Class:                  class,
			Name:                   class,
			BaseSpeedKnots:         15,
			BaseFuelRatePerDayTons: 40,
			CargoCapacityDWT:       100000,
		}))
	}

	ships, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, ships, 3)
	// Ordered by class
	assert.Equal(t, "bulk", ships[0].Class)
	assert.Equal(t, "container", ships[1].Class)
	assert.Equal(t, "tanker", ships[2].Class)
}
