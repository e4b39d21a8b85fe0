package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y-smart/service-tripplan/internal/domain"
	"github.com/y-smart/service-tripplan/internal/domain/geo"
	"github.com/y-smart/service-tripplan/internal/domain/place"
	"github.com/y-smart/service-tripplan/internal/domain/route"
	"github.com/y-smart/service-tripplan/internal/metrics"
	"github.com/y-smart/service-tripplan/internal/repository"
	"go.uber.org/zap"
)

// fakeMapService resolves anything listed in coords and misses otherwise.
type fakeMapService struct {
	coords map[string]geo.Coordinate
	places []place.Place
	err    error
}

func (f *fakeMapService) Geocode(_ context.Context, address string) (geo.Coordinate, bool, error) {
	if f.err != nil {
		return geo.Coordinate{}, false, f.err
	}
	c, ok := f.coords[address]
	return c, ok, nil
}

func (f *fakeMapService) ReverseGeocode(context.Context, geo.Coordinate) (string, bool, error) {
	return "", false, nil
}

func (f *fakeMapService) SearchPlaces(context.Context, string) ([]place.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.places, nil
}

func (f *fakeMapService) DistanceBetween(a, b geo.Coordinate) int {
	return geo.DistanceMeters(a, b)
}

type fakeDirections struct {
	candidates []route.Candidate
	err        error
	calls      int
}

func (f *fakeDirections) Directions(context.Context, geo.Coordinate, geo.Coordinate) ([]route.Candidate, error) {
	f.calls++
	return f.candidates, f.err
}

func yonginCoords() map[string]geo.Coordinate {
	return map[string]geo.Coordinate{
		"수지구청역": {Lat: 37.3219, Lng: 127.0947},
		"용인시청":  {Lat: 37.2411, Lng: 127.1776},
	}
}

func newTripService(maps MapService, directions DirectionsProvider, demoMode bool) (*TripService, *repository.TripStore) {
	store := repository.NewTripStore(time.Minute)
	svc := NewTripService(maps, directions, store, demoMode, time.Second, metrics.NewCollector(), zap.NewNop())
	return svc, store
}

func TestSearchTrips_NormalizesCandidates(t *testing.T) {
	maps := &fakeMapService{coords: yonginCoords()}
	directions := &fakeDirections{candidates: []route.Candidate{
		{DurationSec: 1800, DistanceM: 8400, TaxiFareKRW: 9800},
		{DurationSec: 1230, DistanceM: 3200},
	}}
	svc, _ := newTripService(maps, directions, true)

	result, err := svc.SearchTrips(context.Background(), SearchRequest{
		Departure:   "수지구청역",
		Destination: "용인시청",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.SearchID)
	require.Len(t, result.Routes, 2)
	assert.True(t, result.Routes[0].Recommended)
	assert.False(t, result.Routes[1].Recommended)
	assert.Equal(t, 1, directions.calls)
}

func TestSearchTrips_UpstreamFailureFallsBackToMock(t *testing.T) {
	// The end-to-end degradation path: directions throws, the caller still
	// gets three renderable itineraries labeled with both places.
	maps := &fakeMapService{coords: yonginCoords()}
	directions := &fakeDirections{err: errors.New("connection refused")}
	svc, _ := newTripService(maps, directions, true)

	result, err := svc.SearchTrips(context.Background(), SearchRequest{
		Departure:   "수지구청역",
		Destination: "용인시청",
	})

	require.NoError(t, err)
	require.Len(t, result.Routes, 3)

	first := result.Routes[0]
	assert.Equal(t, 35, first.DurationMin)
	assert.Equal(t, 2400, first.Price)
	assert.True(t, first.Recommended)
	require.Len(t, first.Steps, 4)
	assert.Contains(t, first.Steps[0].Name, "수지구청역")
	assert.Contains(t, first.Steps[3].Name, "용인시청")
}

func TestSearchTrips_ZeroCandidatesFallsBackToMock(t *testing.T) {
	maps := &fakeMapService{coords: yonginCoords()}
	svc, _ := newTripService(maps, &fakeDirections{}, true)

	result, err := svc.SearchTrips(context.Background(), SearchRequest{
		Departure:   "수지구청역",
		Destination: "용인시청",
	})

	require.NoError(t, err)
	assert.Len(t, result.Routes, 3)
}

func TestSearchTrips_DemoModeOffSurfacesUpstreamError(t *testing.T) {
	maps := &fakeMapService{coords: yonginCoords()}
	directions := &fakeDirections{err: errors.New("boom")}
	svc, _ := newTripService(maps, directions, false)

	_, err := svc.SearchTrips(context.Background(), SearchRequest{
		Departure:   "수지구청역",
		Destination: "용인시청",
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
}

func TestSearchTrips_DemoModeOffZeroCandidatesIsEmptyResult(t *testing.T) {
	maps := &fakeMapService{coords: yonginCoords()}
	svc, _ := newTripService(maps, &fakeDirections{}, false)

	result, err := svc.SearchTrips(context.Background(), SearchRequest{
		Departure:   "수지구청역",
		Destination: "용인시청",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Routes)
}

func TestSearchTrips_UnknownPlaceIsNotFound(t *testing.T) {
	maps := &fakeMapService{coords: yonginCoords()}
	directions := &fakeDirections{}
	svc, _ := newTripService(maps, directions, true)

	_, err := svc.SearchTrips(context.Background(), SearchRequest{
		Departure:   "수지구청역",
		Destination: "아틀란티스",
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Zero(t, directions.calls, "directions must not be called without both coordinates")
}

func TestSearchTrips_GeocoderErrorTreatedAsNotFound(t *testing.T) {
	// A failing geocoder is logged and treated as "no coordinate", never
	// surfaced as an upstream error.
	maps := &fakeMapService{err: errors.New("timeout")}
	svc, _ := newTripService(maps, &fakeDirections{}, true)

	_, err := svc.SearchTrips(context.Background(), SearchRequest{
		Departure:   "수지구청역",
		Destination: "용인시청",
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestSearchTrips_EmptyInputRejected(t *testing.T) {
	svc, _ := newTripService(&fakeMapService{}, &fakeDirections{}, true)

	_, err := svc.SearchTrips(context.Background(), SearchRequest{Destination: "용인시청"})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestGetSearchAndGetRoute(t *testing.T) {
	maps := &fakeMapService{coords: yonginCoords()}
	svc, _ := newTripService(maps, &fakeDirections{err: errors.New("down")}, true)

	created, err := svc.SearchTrips(context.Background(), SearchRequest{
		Departure:   "수지구청역",
		Destination: "용인시청",
	})
	require.NoError(t, err)

	// The results screen re-reads the stored set.
	fetched, err := svc.GetSearch(created.SearchID)
	require.NoError(t, err)
	assert.Equal(t, created.Routes, fetched.Routes)

	// The navigation screen carries one itinerary forward.
	r, err := svc.GetRoute(created.SearchID, created.Routes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, created.Routes[0], *r)

	_, err = svc.GetRoute(created.SearchID, "no-such-route")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = svc.GetSearch("no-such-search")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
