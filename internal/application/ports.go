package application

import (
	"context"

	"github.com/y-smart/service-tripplan/internal/domain/geo"
	"github.com/y-smart/service-tripplan/internal/domain/place"
	"github.com/y-smart/service-tripplan/internal/domain/route"
	"github.com/y-smart/service-tripplan/internal/domain/transit"
	"github.com/y-smart/service-tripplan/internal/repository"
)

// MapService is the injected mapping capability. It replaces what the mobile
// front-end read from an ambient global map object: constructed once at
// startup and passed to whatever needs it.
type MapService interface {
	// Geocode resolves a free-text place name; ok=false means not found.
	Geocode(ctx context.Context, address string) (coord geo.Coordinate, ok bool, err error)

	// ReverseGeocode resolves a coordinate to an address name.
	ReverseGeocode(ctx context.Context, coord geo.Coordinate) (address string, ok bool, err error)

	// SearchPlaces runs a keyword place search.
	SearchPlaces(ctx context.Context, keyword string) ([]place.Place, error)

	// DistanceBetween returns the straight-line distance in meters.
	DistanceBetween(a, b geo.Coordinate) int
}

// DirectionsProvider returns candidate route summaries between two
// coordinates.
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, dest geo.Coordinate) ([]route.Candidate, error)
}

// TransitProvider exposes the transit-authority data feeds.
type TransitProvider interface {
	Arrivals(ctx context.Context, stationID string) ([]transit.BusArrival, error)
	Locations(ctx context.Context, routeID string) ([]transit.BusLocation, error)
	RoutesByName(ctx context.Context, routeName string) ([]transit.BusRoute, error)
}

// SearchStore keeps search result sets addressable across the screens of
// one navigation session.
type SearchStore interface {
	Save(search *repository.TripSearch)
	Find(id string) (*repository.TripSearch, bool)
	FindRoute(searchID, routeID string) (route.Route, bool)
}
