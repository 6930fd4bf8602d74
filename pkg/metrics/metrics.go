package metrics

import (
	"fmt"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/layout"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/validation"
)

// ConfigurationError reports a habitat configuration whose derived metrics
// are meaningless, such as a capsule too short for its radius.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("habitat configuration %s: %s", e.Field, e.Reason)
}

// Summary holds the derived values for a habitat layout.
type Summary struct {
	Shape              habitat.Shape           `json:"shape"`
	VolumeM3           float64                 `json:"volume_m3"`
	FloorAreaM2        float64                 `json:"floor_area_m2"`
	PerCrewVolumeM3    float64                 `json:"per_crew_volume_m3"`
	PressurizedLengthM float64                 `json:"pressurized_length_m"`
	Crew               int                     `json:"crew"`
	TotalZones         int                     `json:"total_zones"`
	ZoneCounts         map[layout.ZoneType]int `json:"zone_counts"`
	OccupiedFloorM2    float64                 `json:"occupied_floor_m2"`
	OccupiedFloorShare float64                 `json:"occupied_floor_share"`
}

// Resolve computes the habitat summary and a habitability report for the
// layout. The error is a *ConfigurationError when the shell cannot be
// summarized at all (non-positive volume, crew below one); habitability
// shortfalls that still admit a summary come back as report findings
// instead.
func Resolve(l *layout.Layout) (*Summary, *validation.Report, error) {
	report := validation.NewReport()
	shell := l.Shell()

	if shell.Crew < 1 {
		return nil, report, &ConfigurationError{
			Field:  "crew",
			Reason: fmt.Sprintf("must be at least 1, got %d", shell.Crew),
		}
	}

	volume := shell.Volume()
	if volume <= 0 {
		reason := "computed volume is not positive"
		if shell.Shape == habitat.ShapeCapsule && shell.Height <= 2*shell.Radius {
			reason = fmt.Sprintf("capsule height %.2f leaves no cylindrical section (needs > %.2f)",
				shell.Height, 2*shell.Radius)
		}
		return nil, report, &ConfigurationError{Field: "height", Reason: reason}
	}

	s := &Summary{
		Shape:           shell.Shape,
		VolumeM3:        volume,
		FloorAreaM2:     shell.FloorArea(),
		PerCrewVolumeM3: shell.PerCrewVolume(),
		Crew:            shell.Crew,
		TotalZones:      l.Count(),
		ZoneCounts:      make(map[layout.ZoneType]int),
	}
	if shell.Shape == habitat.ShapeCapsule {
		s.PressurizedLengthM = shell.Height - 2*shell.Radius
	}

	for _, z := range l.Zones() {
		s.ZoneCounts[z.Type]++
		s.OccupiedFloorM2 += z.Dimensions.Width * z.Dimensions.Depth * z.Scale * z.Scale
	}
	s.OccupiedFloorShare = s.OccupiedFloorM2 / s.FloorAreaM2

	checkHabitability(s, report)
	return s, report, nil
}

func checkHabitability(s *Summary, r *validation.Report) {
	if s.PerCrewVolumeM3 < MinPerCrewVolumeM3 {
		r.AddWarning(validation.Result{
			Level: validation.LevelMetrics,
			Message: fmt.Sprintf("per-crew volume %.1f m3 is below the %.0f m3 long-duration minimum",
				s.PerCrewVolumeM3, MinPerCrewVolumeM3),
			FieldPath:   "habitat.crew",
			ActualValue: s.PerCrewVolumeM3,
			Expected:    fmt.Sprintf(">= %.0f m3 per crew member", MinPerCrewVolumeM3),
			Suggestions: []string{"Reduce crew or enlarge the shell"},
		})
	}

	sleeping := s.ZoneCounts[layout.ZoneSleeping]
	needed := int(float64(s.Crew) * SleepingPerCrew)
	if sleeping < needed {
		r.AddWarning(validation.Result{
			Level: validation.LevelMetrics,
			Message: fmt.Sprintf("%d sleeping zones for a crew of %d; plan at least %d",
				sleeping, s.Crew, needed),
			FieldPath:   "zones",
			ActualValue: sleeping,
			Expected:    fmt.Sprintf(">= %d sleeping zones", needed),
		})
	}

	if s.ZoneCounts[layout.ZoneAirlock] == 0 {
		r.AddWarning(validation.Result{
			Level:     validation.LevelMetrics,
			Message:   "layout has no airlock zone",
			FieldPath: "zones",
			Expected:  "at least one airlock",
		})
	}

	if s.OccupiedFloorShare > DenseFloorShare {
		r.AddInfo(validation.Result{
			Level: validation.LevelMetrics,
			Message: fmt.Sprintf("zones occupy %.0f%% of the floor; placement headroom is getting tight",
				s.OccupiedFloorShare*100),
			FieldPath:   "zones",
			ActualValue: s.OccupiedFloorShare,
		})
	}
}
