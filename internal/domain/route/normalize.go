package route

import (
	"fmt"
	"math"

	"github.com/y-smart/service-tripplan/internal/domain/congestion"
)

const (
	// longJourneyThresholdM is the distance above which a candidate is
	// rendered as a bus+metro combination instead of a single bus leg.
	longJourneyThresholdM = 5000

	// fareCapKRW caps the provider's taxi fare estimate; defaultFareKRW is
	// used when no positive estimate is present.
	fareCapKRW     = 15000
	defaultFareKRW = 2400

	leadingWalkMin       = 3
	leadingWalkDistanceM = 200
	trailingWalkMin      = 2
	trailingWalkDistM    = 150

	// Station counts are derived from distance by a fixed per-segment unit.
	longSegmentUnitM  = 1000
	shortSegmentUnitM = 500

	defaultBusLine    = "5-3"
	metroStationCount = 4
)

// Normalize converts raw directions candidates into a renderable itinerary
// list. The first candidate in input order is marked recommended. When there
// are no candidates the fixed mock set is substituted, so the caller always
// receives a non-empty result.
func Normalize(originName, destName string, candidates []Candidate) []Route {
	if len(candidates) == 0 {
		return MockRoutes(originName, destName)
	}

	routes := make([]Route, 0, len(candidates))
	for i, c := range candidates {
		routes = append(routes, convertCandidate(originName, destName, i, c))
	}
	return routes
}

func convertCandidate(originName, destName string, index int, c Candidate) Route {
	durationMin := int(math.Round(float64(c.DurationSec) / 60))

	steps := make([]Step, 0, 4)

	steps = append(steps, Step{
		Type:        StepWalk,
		Name:        departureLabel(originName),
		DurationMin: leadingWalkMin,
		DistanceM:   intPtr(leadingWalkDistanceM),
	})

	if c.DistanceM > longJourneyThresholdM {
		// Long journeys become a bus leg plus a metro transfer.
		steps = append(steps,
			Step{
				Type:        StepBus,
				DurationMin: int(math.Round(float64(durationMin) * 0.6)),
				BusNumber:   defaultBusLine,
				Stations:    intPtr(c.DistanceM / longSegmentUnitM),
				Congestion:  congestion.LevelLow,
			},
			Step{
				Type:        StepMetro,
				DurationMin: int(math.Round(float64(durationMin) * 0.3)),
				Stations:    intPtr(metroStationCount),
				Congestion:  congestion.LevelLow,
			},
		)
	} else {
		steps = append(steps, Step{
			Type:        StepBus,
			DurationMin: int(math.Round(float64(durationMin) * 0.8)),
			BusNumber:   defaultBusLine,
			Stations:    intPtr(c.DistanceM / shortSegmentUnitM),
		})
	}

	steps = append(steps, Step{
		Type:        StepWalk,
		Name:        arrivalLabel(destName),
		DurationMin: trailingWalkMin,
		DistanceM:   intPtr(trailingWalkDistM),
	})

	return Route{
		ID:          fmt.Sprintf("route-%d", index),
		DurationMin: durationMin,
		Price:       normalizeFare(c.TaxiFareKRW),
		Recommended: index == 0,
		Congestion:  congestion.LevelLow,
		Steps:       steps,
	}
}

func normalizeFare(fare int) int {
	if fare > 0 {
		if fare > fareCapKRW {
			return fareCapKRW
		}
		return fare
	}
	return defaultFareKRW
}

func departureLabel(originName string) string {
	return fmt.Sprintf("%s에서 출발", originName)
}

func arrivalLabel(destName string) string {
	return fmt.Sprintf("%s까지", destName)
}
