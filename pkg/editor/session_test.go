package editor

import (
	"errors"
	"testing"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/layout"
)

func testSession() *Session {
	shell := habitat.Shell{Shape: habitat.ShapeDome, Radius: 10, Height: 15, Crew: 8}
	return NewSession("test", layout.New(shell))
}

func collectPatches(s *Session) *[]Patch {
	var patches []Patch
	s.Subscribe(func(p Patch) {
		patches = append(patches, p)
	})
	return &patches
}

func TestSessionPatchSequence(t *testing.T) {
	s := testSession()
	patches := collectPatches(s)

	z := s.AddZone(layout.ZoneSleeping, nil)
	s.MoveZone(z.ID, geo.V3(3, layout.FloorY, 0), false)
	s.RemoveZone(z.ID)

	if len(*patches) != 3 {
		t.Fatalf("expected 3 patches, got %d", len(*patches))
	}
	wantTypes := []PatchType{PatchZoneAdded, PatchZoneMoved, PatchZoneRemoved}
	for i, p := range *patches {
		if p.Type != wantTypes[i] {
			t.Errorf("patch %d: expected %q, got %q", i, wantTypes[i], p.Type)
		}
		if p.Seq != uint64(i+1) {
			t.Errorf("patch %d: expected seq %d, got %d", i, i+1, p.Seq)
		}
	}
}

func TestSessionInvalidMoveEmitsNoPatch(t *testing.T) {
	s := testSession()
	s.AddZone(layout.ZoneSleeping, ptr(geo.V3(0, layout.FloorY, 0)))
	z := s.AddZone(layout.ZoneKitchen, ptr(geo.V3(5, layout.FloorY, 0)))
	patches := collectPatches(s)

	res, err := s.MoveZone(z.ID, geo.V3(1, layout.FloorY, 0), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid {
		t.Fatal("expected the move to be rejected")
	}
	if len(*patches) != 0 {
		t.Errorf("rejected move must not emit a patch, got %+v", *patches)
	}
}

func TestSessionSetShellValidates(t *testing.T) {
	s := testSession()
	err := s.SetShell(habitat.Shell{Shape: "pyramid", Radius: 10, Height: 15, Crew: 8})
	if err == nil {
		t.Fatal("expected an unknown shape to be rejected")
	}
	if s.Snapshot().Habitat.Shape != habitat.ShapeDome {
		t.Error("rejected shell must leave the layout untouched")
	}

	if err := s.SetShell(habitat.Shell{Shape: habitat.ShapeCylinder, Radius: 8, Height: 20, Crew: 6}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Snapshot().Habitat.Shape != habitat.ShapeCylinder {
		t.Error("expected the new shell to be committed")
	}
}

func TestSessionSelection(t *testing.T) {
	s := testSession()
	z := s.AddZone(layout.ZoneMedical, nil)

	if err := s.Select("nope"); !errors.Is(err, ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
	if err := s.Select(z.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Selection() != z.ID {
		t.Errorf("expected selection %s, got %s", z.ID, s.Selection())
	}

	// Removing the selected zone clears the selection.
	s.RemoveZone(z.ID)
	if s.Selection() != "" {
		t.Errorf("expected empty selection, got %s", s.Selection())
	}
}

func TestSessionDragCommit(t *testing.T) {
	s := testSession()
	z := s.AddZone(layout.ZoneSleeping, ptr(geo.V3(0, layout.FloorY, 0)))

	if err := s.BeginDrag(z.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.BeginDrag(z.ID); !errors.Is(err, ErrDragActive) {
		t.Errorf("expected ErrDragActive, got %v", err)
	}

	res, err := s.DragTo(geo.V3(4, layout.FloorY, 0))
	if err != nil || !res.Valid {
		t.Fatalf("expected a valid preview, got %+v, %v", res, err)
	}

	res, err = s.EndDrag(true)
	if err != nil || !res.Valid {
		t.Fatalf("expected a committed drag, got %+v, %v", res, err)
	}
	snap := s.Snapshot()
	if snap.Zones[0].Position.X != 4 {
		t.Errorf("expected committed x=4, got %f", snap.Zones[0].Position.X)
	}
}

func TestSessionDragRevertOnInvalid(t *testing.T) {
	s := testSession()
	s.AddZone(layout.ZoneSleeping, ptr(geo.V3(0, layout.FloorY, 0)))
	z := s.AddZone(layout.ZoneKitchen, ptr(geo.V3(5, layout.FloorY, 0)))

	if err := s.BeginDrag(z.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := s.DragTo(geo.V3(1, layout.FloorY, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid {
		t.Fatal("expected the preview to flag a collision")
	}

	res, err = s.EndDrag(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid {
		t.Fatal("expected the commit to be rejected")
	}
	moved, _ := s.Layout().Zone(z.ID)
	if moved.Position.X != 5 {
		t.Errorf("expected zone left at origin x=5, got %f", moved.Position.X)
	}
}

func TestSessionCancelDrag(t *testing.T) {
	s := testSession()
	z := s.AddZone(layout.ZoneSleeping, ptr(geo.V3(0, layout.FloorY, 0)))

	if err := s.CancelDrag(); !errors.Is(err, ErrNoActiveDrag) {
		t.Errorf("expected ErrNoActiveDrag, got %v", err)
	}
	if err := s.BeginDrag(z.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.DragTo(geo.V3(4, layout.FloorY, 0))
	if err := s.CancelDrag(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unchanged, _ := s.Layout().Zone(z.ID)
	if unchanged.Position.X != 0 {
		t.Errorf("expected zone left at origin, got x=%f", unchanged.Position.X)
	}
}

func TestSessionImportReplaces(t *testing.T) {
	s := testSession()
	s.AddZone(layout.ZoneSleeping, nil)
	s.Select(s.Snapshot().Zones[0].ID)
	patches := collectPatches(s)

	doc := []byte(`{
		"habitat": {"shape": "cylinder", "radius": 12, "height": 20, "crew": 6},
		"zones": [
			{"type": "kitchen", "position": {"x": "-3.50", "y": "1.00", "z": "2.25"}}
		]
	}`)
	if err := s.Import(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := s.Snapshot()
	if snap.Habitat.Shape != habitat.ShapeCylinder || snap.Habitat.Crew != 6 {
		t.Errorf("expected imported shell, got %+v", snap.Habitat)
	}
	if len(snap.Zones) != 1 || snap.Zones[0].Type != layout.ZoneKitchen {
		t.Errorf("expected a single kitchen zone, got %+v", snap.Zones)
	}
	if snap.Selection != "" {
		t.Error("import must clear the selection")
	}
	if len(*patches) != 1 || (*patches)[0].Type != PatchLayoutReplaced {
		t.Errorf("expected a single layout_replaced patch, got %+v", *patches)
	}
}

func TestSessionImportKeepsLayoutOnError(t *testing.T) {
	s := testSession()
	s.AddZone(layout.ZoneSleeping, nil)

	if err := s.Import([]byte(`{not json`)); err == nil {
		t.Fatal("expected a parse error")
	}
	if len(s.Snapshot().Zones) != 1 {
		t.Error("failed import must keep the previous layout")
	}
}

func TestSessionExportImportRoundTrip(t *testing.T) {
	s := testSession()
	s.AddZone(layout.ZoneAirlock, ptr(geo.V3(-3.5, layout.FloorY, 2.25)))

	data, err := s.Export()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Import(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := s.Snapshot()
	if len(snap.Zones) != 1 {
		t.Fatalf("expected 1 zone after round trip, got %d", len(snap.Zones))
	}
	if snap.Zones[0].Position != geo.V3(-3.5, 1, 2.25) {
		t.Errorf("expected position preserved to 2dp, got %+v", snap.Zones[0].Position)
	}
}

func ptr(v geo.Vec3) *geo.Vec3 {
	return &v
}
