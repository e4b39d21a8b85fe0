package transit

import "github.com/y-smart/service-tripplan/internal/domain/congestion"

func intPtr(v int) *int { return &v }

// MockArrivals is the fixed illustrative arrival set substituted when the
// bus information provider is unavailable.
func MockArrivals() []BusArrival {
	return []BusArrival{
		{BusNumber: "5-3", ArrivalMin: 5, StationsLeft: 2, BusType: "일반", Congestion: congestion.LevelLow},
		{BusNumber: "5-3", ArrivalMin: 15, StationsLeft: 5, BusType: "일반", Congestion: congestion.LevelMedium},
		{BusNumber: "66", ArrivalMin: 3, StationsLeft: 1, BusType: "저상", Congestion: congestion.LevelLow},
	}
}

// MockLocations is the fixed illustrative vehicle position set.
func MockLocations() []BusLocation {
	return []BusLocation{
		{
			StationSeq:     5,
			PlateNumber:    "경기70사1234",
			RemainingSeats: intPtr(10),
			Congestion:     congestion.FromRemainingSeats(intPtr(10)),
			StationID:      "station001",
		},
		{
			StationSeq:     8,
			PlateNumber:    "경기70사5678",
			RemainingSeats: intPtr(3),
			Congestion:     congestion.FromRemainingSeats(intPtr(3)),
			StationID:      "station002",
		},
	}
}

// MockRoutes is the fixed illustrative bus line set.
func MockRoutes() []BusRoute {
	return []BusRoute{
		{RouteID: "route001", RouteNumber: "5-3", RouteType: "간선", StartPoint: "수지구청", EndPoint: "용인시청"},
		{RouteID: "route002", RouteNumber: "66", RouteType: "지선", StartPoint: "죽전역", EndPoint: "신갈오거리"},
	}
}
