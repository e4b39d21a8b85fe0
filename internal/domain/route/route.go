package route

import (
	"fmt"

	"github.com/y-smart/service-tripplan/internal/domain/congestion"
)

// StepType tags one leg of an itinerary by transport mode.
type StepType string

const (
	StepWalk  StepType = "walk"
	StepBus   StepType = "bus"
	StepMetro StepType = "metro"
	StepTaxi  StepType = "taxi"
	// StepShuttle is the Tabayong demand-responsive local shuttle.
	StepShuttle StepType = "tabayong"
)

// IsValid returns true if the step type is a recognized transport mode.
func (t StepType) IsValid() bool {
	switch t {
	case StepWalk, StepBus, StepMetro, StepTaxi, StepShuttle:
		return true
	}
	return false
}

// Step is one leg of an itinerary. Which optional fields are meaningful is
// determined by Type; a nil pointer or empty string means unknown or not
// applicable, never zero.
type Step struct {
	Type        StepType         `json:"type"`
	Name        string           `json:"name,omitempty"`
	DurationMin int              `json:"duration"`
	DistanceM   *int             `json:"distance,omitempty"`
	StartTime   string           `json:"startTime,omitempty"`
	EndTime     string           `json:"endTime,omitempty"`
	Stations    *int             `json:"stations,omitempty"`
	BusNumber   string           `json:"busNumber,omitempty"`
	Congestion  congestion.Level `json:"congestion,omitempty"`
}

// Route is one complete proposed journey from origin to destination,
// composed of ordered steps. The ID is unique within one search result set.
type Route struct {
	ID          string           `json:"id"`
	DurationMin int              `json:"duration"`
	Price       int              `json:"price"`
	Recommended bool             `json:"recommended,omitempty"`
	Congestion  congestion.Level `json:"congestion,omitempty"`
	Steps       []Step           `json:"steps"`
}

// Validate checks the itinerary invariants: at least one step with a valid
// transport mode each.
func (r Route) Validate() error {
	if len(r.Steps) == 0 {
		return fmt.Errorf("route %s has no steps", r.ID)
	}
	for i, s := range r.Steps {
		if !s.Type.IsValid() {
			return fmt.Errorf("route %s step %d has invalid type %q", r.ID, i, s.Type)
		}
	}
	return nil
}

// Candidate is one raw route summary from the directions provider.
// Ephemeral: discarded once the itinerary list is produced.
type Candidate struct {
	DurationSec int
	DistanceM   int
	// TaxiFareKRW is the provider's taxi fare estimate, 0 when absent.
	TaxiFareKRW int
}

func intPtr(v int) *int { return &v }
