package layout

import (
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
)

// FromSpec builds a layout from a habitat project plan. Positioned entries
// land exactly where the plan says; loading a plan is not interactive
// editing, so the placement rules are not applied to them. Counted entries
// get the same default placement as interactive adds.
func FromSpec(s *habitat.Spec) *Layout {
	l := New(s.Habitat)
	for _, p := range s.Zones {
		if p.Position != nil {
			l.AddZoneAt(ZoneType(p.Type), geo.V3(p.Position.X, FloorY, p.Position.Z))
			continue
		}
		n := p.Count
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			l.AddZone(ZoneType(p.Type))
		}
	}
	return l
}
