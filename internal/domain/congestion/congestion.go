package congestion

// Level is an ordinal crowding level, either reported by a provider or
// derived from seat availability.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// IsValid returns true if the level is one of the recognized values.
func (l Level) IsValid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// String returns the string representation of the level.
func (l Level) String() string {
	return string(l)
}

// FromRemainingSeats maps a remaining-seat count to a congestion level.
// An unknown count defaults to medium rather than low, so the app never
// over-promises comfort.
func FromRemainingSeats(remaining *int) Level {
	if remaining == nil || *remaining <= 0 {
		return LevelMedium
	}
	if *remaining > 15 {
		return LevelLow
	}
	if *remaining > 5 {
		return LevelMedium
	}
	return LevelHigh
}

// Parse converts a provider-sent congestion string to a Level, falling back
// to medium for anything unrecognized.
func Parse(s string) Level {
	l := Level(s)
	if !l.IsValid() {
		return LevelMedium
	}
	return l
}
