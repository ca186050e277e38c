package shared

import (
	"fmt"
	"math"
)

// EarthRadiusNm is the mean Earth radius expressed in nautical miles.
const EarthRadiusNm = 3440.065

// Coordinate represents an immutable geographic position in decimal degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewCoordinate creates a coordinate with range validation
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, NewValidationError("lat", "must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, NewValidationError("lon", "must be between -180 and 180")
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

// DistanceNm calculates the great-circle distance to another coordinate
// in nautical miles using the haversine formula.
func (c Coordinate) DistanceNm(other Coordinate) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLon := (other.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	chord := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusNm * chord
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lon)
}
