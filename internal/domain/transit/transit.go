package transit

import "github.com/y-smart/service-tripplan/internal/domain/congestion"

// BusArrival is one upcoming arrival at a station, remapped from the
// provider payload into the app's shape.
type BusArrival struct {
	BusNumber    string           `json:"busNumber"`
	ArrivalMin   int              `json:"arrivalTime"`
	StationsLeft int              `json:"stationsLeft"`
	BusType      string           `json:"busType"`
	Congestion   congestion.Level `json:"congestion"`
	PlateNumber  string           `json:"plateNumber,omitempty"`
	StationID    string           `json:"stationId,omitempty"`
	RouteID      string           `json:"routeId,omitempty"`
}

// BusLocation is the live position of one vehicle on a route.
type BusLocation struct {
	StationSeq     int              `json:"stationSeq"`
	PlateNumber    string           `json:"plateNumber"`
	RemainingSeats *int             `json:"remainingSeats,omitempty"`
	Congestion     congestion.Level `json:"congestion"`
	StationID      string           `json:"stationId,omitempty"`
}

// BusRoute is a bus line summary from the route lookup.
type BusRoute struct {
	RouteID     string `json:"routeId"`
	RouteNumber string `json:"routeNumber"`
	RouteType   string `json:"routeType"`
	StartPoint  string `json:"startPoint"`
	EndPoint    string `json:"endPoint"`
}
