package main

import (
	"fmt"
	"sort"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/layout"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/metrics"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", e.FieldPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Printf("    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", w.FieldPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSummary(name string, s *metrics.Summary) {
	fmt.Printf("Habitat Metrics: %s\n", name)
	fmt.Println("=========================")
	fmt.Println()
	fmt.Printf("  Shape:               %s\n", s.Shape)
	fmt.Printf("  Pressurized volume:  %.1f m3\n", s.VolumeM3)
	fmt.Printf("  Floor area:          %.1f m2\n", s.FloorAreaM2)
	fmt.Printf("  Crew:                %d\n", s.Crew)
	fmt.Printf("  Volume per crew:     %.1f m3\n", s.PerCrewVolumeM3)
	if s.PressurizedLengthM > 0 {
		fmt.Printf("  Cylinder section:    %.1f m\n", s.PressurizedLengthM)
	}
	fmt.Println()

	fmt.Printf("Zones (%d total, %.1f%% of floor)\n", s.TotalZones, s.OccupiedFloorShare*100)
	fmt.Println("-------------------------")
	types := make([]string, 0, len(s.ZoneCounts))
	for t := range s.ZoneCounts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf("  %-14s %3d\n", t, s.ZoneCounts[layout.ZoneType(t)])
	}
}
