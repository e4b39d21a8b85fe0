package application

import (
	"context"
	"strings"

	"github.com/y-smart/service-tripplan/internal/domain/place"
	"github.com/y-smart/service-tripplan/internal/metrics"
	"go.uber.org/zap"
)

const (
	// minKeywordLen suppresses autocomplete below two characters.
	minKeywordLen = 2
	// maxSuggestions truncates autocomplete results.
	maxSuggestions = 5
)

// PlaceService answers destination autocomplete queries. Provider failure
// degrades to an empty list, never an error.
type PlaceService struct {
	maps      MapService
	collector *metrics.Collector
	logger    *zap.Logger
}

// NewPlaceService creates a PlaceService.
func NewPlaceService(maps MapService, collector *metrics.Collector, logger *zap.Logger) *PlaceService {
	return &PlaceService{maps: maps, collector: collector, logger: logger}
}

// Suggest returns up to five place suggestions for a keyword. Keywords
// shorter than two characters suppress the provider query entirely.
func (s *PlaceService) Suggest(ctx context.Context, keyword string) []place.Place {
	keyword = strings.TrimSpace(keyword)
	if len([]rune(keyword)) < minKeywordLen {
		return []place.Place{}
	}

	s.collector.PlaceQueries.Inc()
	results, err := s.maps.SearchPlaces(ctx, keyword)
	if err != nil {
		s.collector.ProviderErrors.WithLabelValues("places").Inc()
		s.logger.Warn("place search failed", zap.String("keyword", keyword), zap.Error(err))
		return []place.Place{}
	}

	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	return results
}
