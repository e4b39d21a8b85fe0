package route

import "github.com/y-smart/service-tripplan/internal/domain/congestion"

// MockRoutes returns the fixed three-route illustrative set used whenever the
// directions provider fails or yields nothing: light rail + bus, the Tabayong
// shuttle, and taxi. Only the origin/destination labels vary.
func MockRoutes(originName, destName string) []Route {
	return []Route{
		{
			ID:          "1",
			DurationMin: 35,
			Price:       2400,
			Recommended: true,
			Congestion:  congestion.LevelLow,
			Steps: []Step{
				{Type: StepWalk, DurationMin: 5, Name: departureLabel(originName)},
				{
					Type:        StepMetro,
					DurationMin: 12,
					Stations:    intPtr(4),
					StartTime:   "14:20",
					EndTime:     "14:32",
					Congestion:  congestion.LevelLow,
				},
				{
					Type:        StepBus,
					DurationMin: 15,
					Stations:    intPtr(3),
					BusNumber:   "5-3",
					Congestion:  congestion.LevelLow,
				},
				{Type: StepWalk, DurationMin: 3, Name: arrivalLabel(destName)},
			},
		},
		{
			ID:          "2",
			DurationMin: 42,
			Price:       1950,
			Steps: []Step{
				{Type: StepWalk, DurationMin: 7, Name: departureLabel(originName)},
				{
					Type:        StepShuttle,
					DurationMin: 32,
					Name:        "타바용 이용",
					StartTime:   "14:25",
					EndTime:     "14:57",
				},
				{Type: StepWalk, DurationMin: 3, Name: arrivalLabel(destName)},
			},
		},
		{
			ID:          "3",
			DurationMin: 28,
			Price:       15000,
			Congestion:  congestion.LevelMedium,
			Steps: []Step{
				{
					Type:        StepTaxi,
					DurationMin: 28,
					Name:        "택시",
					StartTime:   "14:20",
					EndTime:     "14:48",
				},
			},
		},
	}
}
