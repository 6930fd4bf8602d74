package metrics

import (
	"fmt"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/layout"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/validation"
)

// Audit re-checks every zone's current position against the placement rules
// and reports violations as warnings. Imported layouts may legally violate
// the rules (placement is enforced at edit time, never retroactively), so
// the audit only reports; it never moves anything.
func Audit(l *layout.Layout) *validation.Report {
	r := validation.NewReport()

	for _, z := range l.Zones() {
		res := l.ValidatePlacement(z.ID, z.Position)
		if res.Valid {
			continue
		}

		switch res.Reason {
		case layout.ReasonOutOfBounds:
			r.AddWarning(validation.Result{
				Level: validation.LevelPlacement,
				Message: fmt.Sprintf("zone %s (%s) sits %.2f m from center, outside the %.2f m usable radius",
					z.ID, z.Type, z.Position.PlanarLength(), l.Shell().Radius-layout.ZoneClearance),
				FieldPath:   fmt.Sprintf("zones.%s.position", z.ID),
				ActualValue: z.Position.PlanarLength(),
				Expected:    fmt.Sprintf("< %.2f m from center", l.Shell().Radius-layout.ZoneClearance),
			})
		case layout.ReasonCollision:
			r.AddWarning(validation.Result{
				Level: validation.LevelPlacement,
				Message: fmt.Sprintf("zone %s (%s) is closer than %.1f m to zone %s",
					z.ID, z.Type, layout.MinZoneSeparation, res.Collider),
				FieldPath:    fmt.Sprintf("zones.%s.position", z.ID),
				ConflictWith: res.Collider,
				Expected:     fmt.Sprintf(">= %.1f m separation", layout.MinZoneSeparation),
			})
		}
	}

	return r
}
