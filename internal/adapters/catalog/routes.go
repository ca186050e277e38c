package catalog

import (
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
)

// RoutingFactor converts a great-circle distance into a practical sailing
// distance, accounting for coastal routing and traffic separation.
const RoutingFactor = 1.15

// DefaultRoutes is the built-in route catalog. The Rotterdam-Singapore
// reference route carries surveyed distances; the others derive their
// sailing distance from the great circle between the port positions,
// with ECA mileage covering the North American and North Sea approaches.
func DefaultRoutes() []*voyage.RouteProfile {
	return []*voyage.RouteProfile{
		{
			Symbol:           "rotterdam-singapore",
			Name:             "Rotterdam - Singapore",
			From:             PortRotterdam.Position,
			To:               PortSingapore.Position,
			TotalDistanceNm:  8387.79,
			ECADistanceNm:    2355.37,
			Canal:            voyage.Canal{Name: "Suez Canal", CostUSD: 222864},
			BasePortCostsUSD: 62439,
			Alternate: voyage.AlternateRoute{
				Name:           "Cape of Good Hope",
				DistanceNm:     11720,
				CostMultiplier: 1.12,
			},
		},
		{
			Symbol:           "shanghai-losangeles",
			Name:             "Shanghai - Los Angeles",
			From:             PortShanghai.Position,
			To:               PortLosAngeles.Position,
			TotalDistanceNm:  sailingDistance(PortShanghai, PortLosAngeles),
			ECADistanceNm:    850,
			Canal:            voyage.Canal{},
			BasePortCostsUSD: 58400,
			Alternate: voyage.AlternateRoute{
				Name:           "Southern Great Circle",
				DistanceNm:     sailingDistance(PortShanghai, PortLosAngeles) * 1.08,
				CostMultiplier: 1.05,
			},
		},
		{
			Symbol:           "mumbai-rotterdam",
			Name:             "Mumbai - Rotterdam",
			From:             PortMumbai.Position,
			To:               PortRotterdam.Position,
			TotalDistanceNm:  sailingDistance(PortMumbai, PortRotterdam),
			ECADistanceNm:    980,
			Canal:            voyage.Canal{Name: "Suez Canal", CostUSD: 198750},
			BasePortCostsUSD: 54200,
			Alternate: voyage.AlternateRoute{
				Name:           "Cape of Good Hope",
				DistanceNm:     sailingDistance(PortMumbai, PortRotterdam) * 1.55,
				CostMultiplier: 1.18,
			},
		},
	}
}

func sailingDistance(a, b Port) float64 {
	return a.Position.DistanceNm(b.Position) * RoutingFactor
}
