package catalog

import (
	"github.com/jferrer/voyagecast-go/internal/domain/shared"
)

// Port is a major commercial port referenced by the route catalog
type Port struct {
	Name                 string
	Position             shared.Coordinate
	BunkerPriceUSDPerTon float64
}

// Major ports used as route endpoints
var (
	PortRotterdam  = Port{Name: "Rotterdam", Position: shared.Coordinate{Lat: 51.9225, Lon: 4.4792}, BunkerPriceUSDPerTon: 650}
	PortSingapore  = Port{Name: "Singapore", Position: shared.Coordinate{Lat: 1.3521, Lon: 103.8198}, BunkerPriceUSDPerTon: 680}
	PortShanghai   = Port{Name: "Shanghai", Position: shared.Coordinate{Lat: 31.2304, Lon: 121.4737}, BunkerPriceUSDPerTon: 670}
	PortLosAngeles = Port{Name: "Los Angeles", Position: shared.Coordinate{Lat: 33.7485, Lon: -118.2436}, BunkerPriceUSDPerTon: 720}
	PortMumbai     = Port{Name: "Mumbai", Position: shared.Coordinate{Lat: 19.0760, Lon: 72.8777}, BunkerPriceUSDPerTon: 635}
)
