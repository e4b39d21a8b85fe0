package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/y-smart/service-tripplan/internal/domain"
	"github.com/y-smart/service-tripplan/internal/domain/geo"
	"github.com/y-smart/service-tripplan/internal/domain/route"
	"github.com/y-smart/service-tripplan/internal/metrics"
	"github.com/y-smart/service-tripplan/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SearchRequest holds the labels the search screen hands forward.
type SearchRequest struct {
	Departure   string `json:"departure" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

// SearchResultDTO is the response representation of one search.
type SearchResultDTO struct {
	SearchID    string        `json:"search_id"`
	Departure   string        `json:"departure"`
	Destination string        `json:"destination"`
	Routes      []route.Route `json:"routes"`
}

// TripService orchestrates one trip search: geocode both endpoints, ask the
// directions provider once, normalize the answer, and keep the result set
// addressable for the rest of the navigation session.
type TripService struct {
	maps       MapService
	directions DirectionsProvider
	store      SearchStore
	demoMode   bool
	timeout    time.Duration
	collector  *metrics.Collector
	logger     *zap.Logger
}

// NewTripService creates a TripService.
func NewTripService(
	maps MapService,
	directions DirectionsProvider,
	store SearchStore,
	demoMode bool,
	timeout time.Duration,
	collector *metrics.Collector,
	logger *zap.Logger,
) *TripService {
	return &TripService{
		maps:       maps,
		directions: directions,
		store:      store,
		demoMode:   demoMode,
		timeout:    timeout,
		collector:  collector,
		logger:     logger,
	}
}

// SearchTrips runs one best-effort search. No retries, no caching: a hung
// upstream is cut off by the per-search timeout instead of leaving the
// caller loading forever.
func (s *TripService) SearchTrips(ctx context.Context, req SearchRequest) (*SearchResultDTO, error) {
	if req.Departure == "" || req.Destination == "" {
		return nil, domain.NewValidationError("departure and destination are required")
	}

	start := time.Now()
	s.collector.SearchesTotal.Inc()
	defer func() {
		s.collector.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	origin, dest, err := s.geocodeEndpoints(ctx, req.Departure, req.Destination)
	if err != nil {
		return nil, err
	}

	routes, err := s.resolveRoutes(ctx, req, origin, dest)
	if err != nil {
		return nil, err
	}

	result := &repository.TripSearch{
		ID:          uuid.NewString(),
		Departure:   req.Departure,
		Destination: req.Destination,
		Routes:      routes,
		CreatedAt:   time.Now().UTC(),
	}
	s.store.Save(result)

	return &SearchResultDTO{
		SearchID:    result.ID,
		Departure:   result.Departure,
		Destination: result.Destination,
		Routes:      result.Routes,
	}, nil
}

// geocodeEndpoints resolves both labels concurrently; both must complete
// before the directions call is issued. Geocoder failures are logged and
// treated as not found, never surfaced as upstream errors.
func (s *TripService) geocodeEndpoints(ctx context.Context, departure, destination string) (geo.Coordinate, geo.Coordinate, error) {
	var (
		origin, dest     geo.Coordinate
		originOK, destOK bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		coord, ok, err := s.maps.Geocode(gctx, departure)
		if err != nil {
			s.collector.ProviderErrors.WithLabelValues("geocoder").Inc()
			s.logger.Warn("departure geocoding failed", zap.String("query", departure), zap.Error(err))
			return nil
		}
		origin, originOK = coord, ok
		return nil
	})
	g.Go(func() error {
		coord, ok, err := s.maps.Geocode(gctx, destination)
		if err != nil {
			s.collector.ProviderErrors.WithLabelValues("geocoder").Inc()
			s.logger.Warn("destination geocoding failed", zap.String("query", destination), zap.Error(err))
			return nil
		}
		dest, destOK = coord, ok
		return nil
	})
	_ = g.Wait()

	if !originOK {
		return geo.Coordinate{}, geo.Coordinate{}, domain.NewNotFoundError(fmt.Sprintf("place not found: %s", departure))
	}
	if !destOK {
		return geo.Coordinate{}, geo.Coordinate{}, domain.NewNotFoundError(fmt.Sprintf("place not found: %s", destination))
	}
	return origin, dest, nil
}

func (s *TripService) resolveRoutes(ctx context.Context, req SearchRequest, origin, dest geo.Coordinate) ([]route.Route, error) {
	candidates, err := s.directions.Directions(ctx, origin, dest)
	if err != nil {
		s.collector.ProviderErrors.WithLabelValues("directions").Inc()
		s.logger.Warn("directions call failed",
			zap.String("departure", req.Departure),
			zap.String("destination", req.Destination),
			zap.Error(err),
		)
		if !s.demoMode {
			return nil, domain.NewUpstreamError("route search unavailable", err)
		}
		s.collector.SearchFallbacks.WithLabelValues("upstream_error").Inc()
		return route.MockRoutes(req.Departure, req.Destination), nil
	}

	if len(candidates) == 0 {
		if !s.demoMode {
			return []route.Route{}, nil
		}
		s.collector.SearchFallbacks.WithLabelValues("no_candidates").Inc()
		return route.MockRoutes(req.Departure, req.Destination), nil
	}

	return route.Normalize(req.Departure, req.Destination, candidates), nil
}

// GetSearch returns a stored search result set.
func (s *TripService) GetSearch(searchID string) (*SearchResultDTO, error) {
	search, ok := s.store.Find(searchID)
	if !ok {
		return nil, domain.NewNotFoundError("search not found or expired")
	}
	return &SearchResultDTO{
		SearchID:    search.ID,
		Departure:   search.Departure,
		Destination: search.Destination,
		Routes:      search.Routes,
	}, nil
}

// GetRoute returns one itinerary of a stored search, as handed forward from
// the results screen to the navigation screen.
func (s *TripService) GetRoute(searchID, routeID string) (*route.Route, error) {
	r, ok := s.store.FindRoute(searchID, routeID)
	if !ok {
		return nil, domain.NewNotFoundError("route not found")
	}
	return &r, nil
}
