package application

import (
	"context"

	"github.com/y-smart/service-tripplan/internal/domain/transit"
	"github.com/y-smart/service-tripplan/internal/metrics"
	"go.uber.org/zap"
)

// TransitService answers live bus information queries. Provider failure
// always degrades to the fixed illustrative record sets, mirroring the
// route search fallback policy.
type TransitService struct {
	provider  TransitProvider
	collector *metrics.Collector
	logger    *zap.Logger
}

// NewTransitService creates a TransitService.
func NewTransitService(provider TransitProvider, collector *metrics.Collector, logger *zap.Logger) *TransitService {
	return &TransitService{provider: provider, collector: collector, logger: logger}
}

// Arrivals returns upcoming arrivals for a station.
func (s *TransitService) Arrivals(ctx context.Context, stationID string) []transit.BusArrival {
	s.collector.BusLookups.WithLabelValues("arrivals").Inc()

	arrivals, err := s.provider.Arrivals(ctx, stationID)
	if err != nil {
		s.degrade(ctx, "arrivals", err)
		return transit.MockArrivals()
	}
	return arrivals
}

// Locations returns live vehicle positions for a route.
func (s *TransitService) Locations(ctx context.Context, routeID string) []transit.BusLocation {
	s.collector.BusLookups.WithLabelValues("locations").Inc()

	locations, err := s.provider.Locations(ctx, routeID)
	if err != nil {
		s.degrade(ctx, "locations", err)
		return transit.MockLocations()
	}
	return locations
}

// Routes returns bus lines matching a route name.
func (s *TransitService) Routes(ctx context.Context, routeName string) []transit.BusRoute {
	s.collector.BusLookups.WithLabelValues("routes").Inc()

	routes, err := s.provider.RoutesByName(ctx, routeName)
	if err != nil {
		s.degrade(ctx, "routes", err)
		return transit.MockRoutes()
	}
	return routes
}

func (s *TransitService) degrade(_ context.Context, kind string, err error) {
	s.collector.ProviderErrors.WithLabelValues("gbis").Inc()
	s.collector.BusLookupMocked.WithLabelValues(kind).Inc()
	s.logger.Warn("bus information lookup failed, serving mock records",
		zap.String("kind", kind), zap.Error(err))
}
