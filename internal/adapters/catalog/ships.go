package catalog

import (
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// DefaultShipClasses is the built-in vessel class catalog. Speeds and fuel
// rates are design figures at service speed; DWT is a representative
// mid-range value per class.
func DefaultShipClasses() []*voyage.ShipProfile {
	return []*voyage.ShipProfile{
		{
			Class:                  "container",
			Name:                   "Container Ship",
			BaseSpeedKnots:         18,
			BaseFuelRatePerDayTons: 45,
			CargoCapacityDWT:       150000,
			FuelCapacityTons:       5000,
		},
		{
			Class:                  "bulk",
			Name:                   "Bulk Carrier",
			BaseSpeedKnots:         14,
			BaseFuelRatePerDayTons: 35,
			CargoCapacityDWT:       180000,
			FuelCapacityTons:       4000,
		},
		{
			Class:                  "tanker",
			Name:                   "Oil Tanker",
			BaseSpeedKnots:         15,
			BaseFuelRatePerDayTons: 40,
			CargoCapacityDWT:       160000,
			FuelCapacityTons:       4500,
		},
		{
			Class:                  "general",
			Name:                   "General Cargo",
			BaseSpeedKnots:         16,
			BaseFuelRatePerDayTons: 28,
			CargoCapacityDWT:       30000,
			FuelCapacityTons:       2500,
		},
		{
			Class:                  "roro",
			Name:                   "RoRo Vessel",
			BaseSpeedKnots:         20,
			BaseFuelRatePerDayTons: 38,
			CargoCapacityDWT:       40000,
			FuelCapacityTons:       3000,
		},
	}
}
