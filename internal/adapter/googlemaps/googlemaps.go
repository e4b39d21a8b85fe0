// Package googlemaps adapts the Google Maps Platform client to the app's
// map capability interface, as an alternative to the Kakao provider.
package googlemaps

import (
	"context"

	"github.com/y-smart/service-tripplan/internal/domain"
	"github.com/y-smart/service-tripplan/internal/domain/geo"
	"github.com/y-smart/service-tripplan/internal/domain/place"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// Service wraps a Google Maps client.
type Service struct {
	client *maps.Client
	logger *zap.Logger
}

// New creates a Google Maps backed map service.
func New(apiKey string, logger *zap.Logger) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Service{client: client, logger: logger}, nil
}

// Geocode resolves a free-text address to a coordinate. A provider miss is
// (zero, false, nil), not an error.
func (s *Service) Geocode(ctx context.Context, address string) (geo.Coordinate, bool, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return geo.Coordinate{}, false, domain.NewUpstreamError("geocode request failed", err)
	}
	if len(results) == 0 {
		return geo.Coordinate{}, false, nil
	}
	loc := results[0].Geometry.Location
	return geo.Coordinate{Lat: loc.Lat, Lng: loc.Lng}, true, nil
}

// ReverseGeocode resolves a coordinate to its formatted address.
func (s *Service) ReverseGeocode(ctx context.Context, coord geo.Coordinate) (string, bool, error) {
	results, err := s.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: coord.Lat, Lng: coord.Lng},
	})
	if err != nil {
		return "", false, domain.NewUpstreamError("reverse geocode request failed", err)
	}
	if len(results) == 0 {
		return "", false, nil
	}
	return results[0].FormattedAddress, true, nil
}

// SearchPlaces runs a text place search.
func (s *Service) SearchPlaces(ctx context.Context, keyword string) ([]place.Place, error) {
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: keyword})
	if err != nil {
		return nil, domain.NewUpstreamError("place search request failed", err)
	}

	places := make([]place.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		category := ""
		if len(r.Types) > 0 {
			category = r.Types[0]
		}
		places = append(places, place.Place{
			Name:     r.Name,
			Address:  r.FormattedAddress,
			Category: category,
			Coord: geo.Coordinate{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
		})
	}
	return places, nil
}

// DistanceBetween returns the straight-line distance in meters.
func (s *Service) DistanceBetween(a, b geo.Coordinate) int {
	return geo.DistanceMeters(a, b)
}
