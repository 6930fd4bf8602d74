package layout

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
)

// Placement rule constants. The separation derives from the standard 2x2x2
// zone footprint: two zone centers closer than 2.5 m would interpenetrate.
const (
	ZoneClearance     = 1.5 // m, keep-out band inside the shell wall
	MinZoneSeparation = 2.5 // m, minimum center-to-center zone distance
	FloorY            = 1.0 // m, fixed floor offset for zone centers
)

// DefaultDuplicateOffset displaces a duplicated zone from its source.
var DefaultDuplicateOffset = geo.V3(3, 0, 0)

// Layout is the aggregate root: one habitat shell and the zones placed in
// it. Zones keep insertion order for stable display; order never affects
// placement decisions. All mutation goes through the methods below so the
// placement rules cannot be bypassed; position writes in particular flow
// only through MoveZone.
type Layout struct {
	shell habitat.Shell
	zones []*Zone
}

// New creates an empty layout for the given shell.
func New(shell habitat.Shell) *Layout {
	return &Layout{shell: shell}
}

// Shell returns the habitat parameters.
func (l *Layout) Shell() habitat.Shell {
	return l.shell
}

// SetShell replaces the habitat parameters. Zones already placed are not
// revalidated; the placement rules apply again at their next move.
func (l *Layout) SetShell(s habitat.Shell) {
	l.shell = s
}

// Count returns the number of zones.
func (l *Layout) Count() int {
	return len(l.zones)
}

// Zone returns a copy of the zone with the given id.
func (l *Layout) Zone(id string) (Zone, bool) {
	if z := l.find(id); z != nil {
		return *z, true
	}
	return Zone{}, false
}

// Zones returns copies of all zones in insertion order.
func (l *Layout) Zones() []Zone {
	out := make([]Zone, len(l.zones))
	for i, z := range l.zones {
		out[i] = *z
	}
	return out
}

// AddZone creates a zone of the given type at a default position chosen
// uniformly within the central half of the floor, at the floor offset.
// The default position is deliberately not validated: for reasonably sized
// habitats it usually lands clear, and the user is about to drag the zone
// anyway. Validation applies at the first move.
func (l *Layout) AddZone(zoneType ZoneType) Zone {
	half := l.shell.Radius / 2
	pos := geo.V3(randomOffset(half), FloorY, randomOffset(half))
	return l.AddZoneAt(zoneType, pos)
}

// AddZoneAt creates a zone of the given type at an exact position, without
// validation. Import and plan loading use this path; positions they carry
// are trusted as written.
func (l *Layout) AddZoneAt(zoneType ZoneType, pos geo.Vec3) Zone {
	z := &Zone{
		ID:         uuid.NewString(),
		Type:       zoneType,
		Position:   pos,
		Scale:      1,
		Dimensions: DefaultDimensions,
	}
	l.zones = append(l.zones, z)
	return *z
}

// RemoveZone removes the zone with the given id if present and reports
// whether removal occurred. Removing an absent id is a no-op.
func (l *Layout) RemoveZone(id string) bool {
	for i, z := range l.zones {
		if z.ID == id {
			l.zones = append(l.zones[:i], l.zones[i+1:]...)
			return true
		}
	}
	return false
}

// MoveZone validates pos for the zone and writes it if the placement is
// valid or commitOnInvalid is set; otherwise the position is unchanged and
// the caller reverts any preview. This is the single gate through which all
// position mutation flows. The second return is false when no zone has the
// given id.
func (l *Layout) MoveZone(id string, pos geo.Vec3, commitOnInvalid bool) (PlacementResult, bool) {
	z := l.find(id)
	if z == nil {
		return PlacementResult{}, false
	}
	res := l.ValidatePlacement(id, pos)
	if res.Valid || commitOnInvalid {
		z.Position = pos
	}
	return res, true
}

// DuplicateZone clones the zone's type and presentation attributes at the
// source position displaced by offset. The new position is not validated,
// same as AddZone defaults. The second return is false when no zone has the
// given id.
func (l *Layout) DuplicateZone(id string, offset geo.Vec3) (Zone, bool) {
	src := l.find(id)
	if src == nil {
		return Zone{}, false
	}
	dup := l.AddZoneAt(src.Type, src.Position.Add(offset))
	d := l.find(dup.ID)
	d.Rotation = src.Rotation
	d.Scale = src.Scale
	d.Dimensions = src.Dimensions
	return *d, true
}

// UpdateZone applies presentation attribute edits to the zone. Position is
// untouched; it moves only through MoveZone. The second return is false
// when no zone has the given id.
func (l *Layout) UpdateZone(id string, attrs Attrs) (Zone, bool) {
	z := l.find(id)
	if z == nil {
		return Zone{}, false
	}
	if attrs.Rotation != nil {
		z.Rotation = *attrs.Rotation
	}
	if attrs.Scale != nil {
		z.Scale = *attrs.Scale
	}
	if attrs.Dimensions != nil {
		z.Dimensions = *attrs.Dimensions
	}
	return *z, true
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	c := &Layout{shell: l.shell, zones: make([]*Zone, len(l.zones))}
	for i, z := range l.zones {
		zz := *z
		c.zones[i] = &zz
	}
	return c
}

func (l *Layout) find(id string) *Zone {
	for _, z := range l.zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// randomOffset returns a uniform value in [-half, half].
func randomOffset(half float64) float64 {
	return (rand.Float64()*2 - 1) * half
}
