package layout

import (
	"math"
	"testing"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
)

const tolerance = 1e-9

func testShell() habitat.Shell {
	return habitat.Shell{Shape: habitat.ShapeDome, Radius: 10, Height: 15, Crew: 8}
}

// --- Add / remove ---

func TestAddZoneAssignsUniqueIDs(t *testing.T) {
	l := New(testShell())
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		z := l.AddZone(ZoneSleeping)
		if z.ID == "" {
			t.Fatal("expected non-empty zone id")
		}
		if seen[z.ID] {
			t.Fatalf("duplicate zone id %s", z.ID)
		}
		seen[z.ID] = true
	}
	if l.Count() != 20 {
		t.Errorf("expected 20 zones, got %d", l.Count())
	}
}

func TestAddZoneDefaultPosition(t *testing.T) {
	l := New(testShell())
	for i := 0; i < 50; i++ {
		z := l.AddZone(ZoneStorage)
		if math.Abs(z.Position.Y-FloorY) > tolerance {
			t.Fatalf("expected y=%v, got %v", FloorY, z.Position.Y)
		}
		// Default placement stays within the central [-r/2, r/2] square.
		if math.Abs(z.Position.X) > 5+tolerance || math.Abs(z.Position.Z) > 5+tolerance {
			t.Fatalf("default position (%f, %f) outside central square", z.Position.X, z.Position.Z)
		}
	}
}

func TestAddZoneDefaults(t *testing.T) {
	l := New(testShell())
	z := l.AddZone(ZoneKitchen)
	if z.Scale != 1 {
		t.Errorf("expected scale 1, got %f", z.Scale)
	}
	if z.Dimensions != DefaultDimensions {
		t.Errorf("expected default dimensions, got %+v", z.Dimensions)
	}
}

func TestRemoveZoneIdempotent(t *testing.T) {
	l := New(testShell())
	z := l.AddZone(ZoneMedical)
	if !l.RemoveZone(z.ID) {
		t.Fatal("expected first removal to succeed")
	}
	if l.RemoveZone(z.ID) {
		t.Error("expected second removal to report false")
	}
	if l.Count() != 0 {
		t.Errorf("expected 0 zones, got %d", l.Count())
	}
}

func TestRemoveThenAddYieldsFreshID(t *testing.T) {
	l := New(testShell())
	z := l.AddZoneAt(ZoneExercise, geo.V3(2, FloorY, 2))
	l.RemoveZone(z.ID)
	again := l.AddZoneAt(ZoneExercise, geo.V3(2, FloorY, 2))
	if l.Count() != 1 {
		t.Fatalf("expected 1 zone, got %d", l.Count())
	}
	if again.ID == z.ID {
		t.Error("expected a fresh id after remove and re-add")
	}
}

// --- Placement validation ---

func TestValidatePlacementCollision(t *testing.T) {
	l := New(testShell())
	a := l.AddZoneAt(ZoneSleeping, geo.V3(0, FloorY, 0))
	res := l.ValidatePlacement("", geo.V3(2, FloorY, 0))
	if res.Valid {
		t.Fatal("expected collision at distance 2.0")
	}
	if res.Reason != ReasonCollision {
		t.Errorf("expected reason %q, got %q", ReasonCollision, res.Reason)
	}
	if res.Collider != a.ID {
		t.Errorf("expected collider %s, got %s", a.ID, res.Collider)
	}
}

func TestValidatePlacementOutOfBounds(t *testing.T) {
	l := New(testShell())
	res := l.ValidatePlacement("", geo.V3(9, FloorY, 0))
	if res.Valid {
		t.Fatal("expected out of bounds: planar distance 9 >= 10-1.5")
	}
	if res.Reason != ReasonOutOfBounds {
		t.Errorf("expected reason %q, got %q", ReasonOutOfBounds, res.Reason)
	}
}

func TestValidatePlacementBoundsBoundary(t *testing.T) {
	l := New(testShell())
	// Exactly radius - clearance is out of bounds; strictly inside is OK.
	at := l.ValidatePlacement("", geo.V3(8.5, FloorY, 0))
	if at.Valid || at.Reason != ReasonOutOfBounds {
		t.Errorf("expected out_of_bounds at exactly 8.5, got %+v", at)
	}
	in := l.ValidatePlacement("", geo.V3(8.49, FloorY, 0))
	if !in.Valid {
		t.Errorf("expected valid just inside the boundary, got %+v", in)
	}
}

func TestValidatePlacementSeparationBoundary(t *testing.T) {
	l := New(testShell())
	l.AddZoneAt(ZoneBathroom, geo.V3(0, FloorY, 0))
	// Exactly the minimum separation is not a collision.
	res := l.ValidatePlacement("", geo.V3(2.5, FloorY, 0))
	if !res.Valid {
		t.Errorf("expected valid at exactly 2.5 separation, got %+v", res)
	}
	res = l.ValidatePlacement("", geo.V3(2.499, FloorY, 0))
	if res.Valid || res.Reason != ReasonCollision {
		t.Errorf("expected collision just inside 2.5, got %+v", res)
	}
}

func TestValidatePlacementUsesEuclidean3D(t *testing.T) {
	l := New(testShell())
	l.AddZoneAt(ZoneStorage, geo.V3(0, FloorY, 0))
	// Same planar spot but 2.6 above: 3D distance clears the separation.
	res := l.ValidatePlacement("", geo.V3(0, FloorY+2.6, 0))
	if !res.Valid {
		t.Errorf("expected valid at 3D distance 2.6, got %+v", res)
	}
	res = l.ValidatePlacement("", geo.V3(0, FloorY+2.4, 0))
	if res.Valid {
		t.Errorf("expected collision at 3D distance 2.4, got %+v", res)
	}
}

func TestValidatePlacementExcludesOwnZone(t *testing.T) {
	l := New(testShell())
	z := l.AddZoneAt(ZoneWorkstation, geo.V3(0, FloorY, 0))
	// A small nudge collides with nothing once the zone itself is excluded.
	res := l.ValidatePlacement(z.ID, geo.V3(0.1, FloorY, 0))
	if !res.Valid {
		t.Errorf("expected valid move of the zone itself, got %+v", res)
	}
}

func TestValidatePlacementPure(t *testing.T) {
	l := New(testShell())
	l.AddZoneAt(ZoneSleeping, geo.V3(0, FloorY, 0))
	l.AddZoneAt(ZoneKitchen, geo.V3(5, FloorY, 5))
	before := l.Zones()

	pos := geo.V3(2, FloorY, 0)
	first := l.ValidatePlacement("", pos)
	second := l.ValidatePlacement("", pos)
	if first != second {
		t.Errorf("expected identical results, got %+v then %+v", first, second)
	}

	after := l.Zones()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("zone %d mutated by validation: %+v -> %+v", i, before[i], after[i])
		}
	}
}

// --- Move ---

func TestMoveZoneCommitsValidPosition(t *testing.T) {
	l := New(testShell())
	z := l.AddZoneAt(ZoneSleeping, geo.V3(0, FloorY, 0))
	res, ok := l.MoveZone(z.ID, geo.V3(4, FloorY, 0), false)
	if !ok {
		t.Fatal("expected zone to be found")
	}
	if !res.Valid {
		t.Fatalf("expected valid move, got %+v", res)
	}
	moved, _ := l.Zone(z.ID)
	if moved.Position.X != 4 {
		t.Errorf("expected committed x=4, got %f", moved.Position.X)
	}
}

func TestMoveZoneLeavesPositionOnInvalid(t *testing.T) {
	l := New(testShell())
	l.AddZoneAt(ZoneSleeping, geo.V3(0, FloorY, 0))
	z := l.AddZoneAt(ZoneKitchen, geo.V3(5, FloorY, 0))
	res, ok := l.MoveZone(z.ID, geo.V3(1, FloorY, 0), false)
	if !ok {
		t.Fatal("expected zone to be found")
	}
	if res.Valid {
		t.Fatal("expected invalid move into occupied space")
	}
	unchanged, _ := l.Zone(z.ID)
	if unchanged.Position.X != 5 {
		t.Errorf("expected position unchanged at x=5, got %f", unchanged.Position.X)
	}
}

func TestMoveZoneCommitOnInvalid(t *testing.T) {
	l := New(testShell())
	l.AddZoneAt(ZoneSleeping, geo.V3(0, FloorY, 0))
	z := l.AddZoneAt(ZoneKitchen, geo.V3(5, FloorY, 0))
	res, ok := l.MoveZone(z.ID, geo.V3(1, FloorY, 0), true)
	if !ok {
		t.Fatal("expected zone to be found")
	}
	if res.Valid {
		t.Fatal("expected result to still report the collision")
	}
	forced, _ := l.Zone(z.ID)
	if forced.Position.X != 1 {
		t.Errorf("expected forced commit to x=1, got %f", forced.Position.X)
	}
}

func TestMoveZoneUnknownID(t *testing.T) {
	l := New(testShell())
	if _, ok := l.MoveZone("nope", geo.V3(0, FloorY, 0), false); ok {
		t.Error("expected ok=false for unknown zone id")
	}
}

// --- Duplicate / update ---

func TestDuplicateZone(t *testing.T) {
	l := New(testShell())
	src := l.AddZoneAt(ZoneMedical, geo.V3(-2, FloorY, 1))
	rot := 0.5
	l.UpdateZone(src.ID, Attrs{Rotation: &rot})

	dup, ok := l.DuplicateZone(src.ID, DefaultDuplicateOffset)
	if !ok {
		t.Fatal("expected duplicate to succeed")
	}
	if dup.ID == src.ID {
		t.Error("expected duplicate to get a fresh id")
	}
	if dup.Type != ZoneMedical {
		t.Errorf("expected type %q, got %q", ZoneMedical, dup.Type)
	}
	if math.Abs(dup.Position.X-1) > tolerance || math.Abs(dup.Position.Z-1) > tolerance {
		t.Errorf("expected position (1, %v, 1), got %+v", FloorY, dup.Position)
	}
	if dup.Rotation != rot {
		t.Errorf("expected rotation copied, got %f", dup.Rotation)
	}
	if l.Count() != 2 {
		t.Errorf("expected 2 zones, got %d", l.Count())
	}
}

func TestDuplicateZoneUnknownID(t *testing.T) {
	l := New(testShell())
	if _, ok := l.DuplicateZone("nope", DefaultDuplicateOffset); ok {
		t.Error("expected ok=false for unknown zone id")
	}
}

func TestUpdateZoneAttrs(t *testing.T) {
	l := New(testShell())
	z := l.AddZoneAt(ZoneStorage, geo.V3(3, FloorY, 3))
	scale := 1.5
	dims := Dimensions{Width: 3, Height: 2, Depth: 2}
	got, ok := l.UpdateZone(z.ID, Attrs{Scale: &scale, Dimensions: &dims})
	if !ok {
		t.Fatal("expected update to succeed")
	}
	if got.Scale != 1.5 || got.Dimensions != dims {
		t.Errorf("expected attrs applied, got %+v", got)
	}
	if got.Position != z.Position {
		t.Error("update must not move the zone")
	}
	if got.Rotation != 0 {
		t.Errorf("expected rotation untouched, got %f", got.Rotation)
	}
}

// --- Clone / plan ---

func TestCloneIsIndependent(t *testing.T) {
	l := New(testShell())
	z := l.AddZoneAt(ZoneAirlock, geo.V3(6, FloorY, 0))
	c := l.Clone()

	l.MoveZone(z.ID, geo.V3(-6, FloorY, 0), false)
	orig, _ := c.Zone(z.ID)
	if orig.Position.X != 6 {
		t.Errorf("expected clone untouched at x=6, got %f", orig.Position.X)
	}
}

func TestFromSpec(t *testing.T) {
	s := &habitat.Spec{
		Habitat: testShell(),
		Zones: []habitat.ZonePlan{
			{Type: "sleeping", Count: 4},
			{Type: "kitchen", Position: &habitat.PlanPosition{X: -4, Z: 3}},
		},
	}
	l := FromSpec(s)
	if l.Count() != 5 {
		t.Fatalf("expected 5 zones, got %d", l.Count())
	}
	var kitchen *Zone
	for _, z := range l.Zones() {
		if z.Type == ZoneKitchen {
			zz := z
			kitchen = &zz
		}
	}
	if kitchen == nil {
		t.Fatal("expected a kitchen zone")
	}
	want := geo.V3(-4, FloorY, 3)
	if kitchen.Position != want {
		t.Errorf("expected kitchen at %+v, got %+v", want, kitchen.Position)
	}
}

// --- Zone types ---

func TestZoneTypeColors(t *testing.T) {
	for _, zt := range BuiltinZoneTypes {
		if zt.Color() == DefaultZoneColor {
			t.Errorf("built-in type %q has no registered color", zt)
		}
		if !zt.Known() {
			t.Errorf("built-in type %q not reported as known", zt)
		}
	}
	if ZoneType("greenhouse").Color() != DefaultZoneColor {
		t.Error("expected fallback color for unknown type")
	}
	if ZoneType("greenhouse").Known() {
		t.Error("expected unknown type to report Known()==false")
	}
}
