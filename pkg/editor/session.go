package editor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/layout"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/validation"
)

var (
	ErrZoneNotFound = errors.New("zone not found")
	ErrNoActiveDrag = errors.New("no drag in progress")
	ErrDragActive   = errors.New("a drag is already in progress")
)

// Session is the explicit editing state: the layout under edit, the current
// selection, and the in-flight drag. Editing is logically single-mutator (at
// most one zone is being dragged at a time), but the dev server is
// concurrent, so the session carries its own lock.
type Session struct {
	mu        sync.Mutex
	name      string
	layout    *layout.Layout
	selection string
	drag      *dragState
	seq       uint64
	listeners []func(Patch)
}

type dragState struct {
	zoneID   string
	origin   geo.Vec3
	proposed geo.Vec3
	has      bool
}

// Snapshot is the full session state handed to a client on connect.
type Snapshot struct {
	Name      string        `json:"name"`
	Seq       uint64        `json:"seq"`
	Habitat   habitat.Shell `json:"habitat"`
	Zones     []layout.Zone `json:"zones"`
	Selection string        `json:"selection,omitempty"`
}

// ZoneMove is the payload of a zone_moved patch.
type ZoneMove struct {
	ID       string                 `json:"id"`
	Position geo.Vec3               `json:"position"`
	Result   layout.PlacementResult `json:"result"`
}

// NewSession wraps a layout for interactive editing.
func NewSession(name string, l *layout.Layout) *Session {
	return &Session{name: name, layout: l}
}

// Subscribe registers a patch listener. Listeners run with the session lock
// held so patches arrive in sequence order; they must not call back into the
// session.
func (s *Session) Subscribe(fn func(Patch)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Name:      s.name,
		Seq:       s.seq,
		Habitat:   s.layout.Shell(),
		Zones:     s.layout.Zones(),
		Selection: s.selection,
	}
}

// Layout returns an independent copy of the layout for read-only consumers
// (scene assembly, metrics, export).
func (s *Session) Layout() *layout.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.Clone()
}

// SetShell replaces the habitat parameters after schema validation.
func (s *Session) SetShell(shell habitat.Shell) error {
	if err := validation.Struct(&shell); err != nil {
		if fes := validation.FieldErrors(err); len(fes) > 0 {
			return fmt.Errorf("habitat %s failed %s constraint",
				validation.FieldPath(fes[0]), fes[0].Tag())
		}
		return fmt.Errorf("validating habitat: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout.SetShell(shell)
	s.emit(PatchHabitatChanged, shell)
	return nil
}

// AddZone creates a zone, at pos when given, else at the default random
// position.
func (s *Session) AddZone(t layout.ZoneType, pos *geo.Vec3) layout.Zone {
	s.mu.Lock()
	defer s.mu.Unlock()

	var z layout.Zone
	if pos != nil {
		z = s.layout.AddZoneAt(t, *pos)
	} else {
		z = s.layout.AddZone(t)
	}
	s.emit(PatchZoneAdded, z)
	return z
}

// RemoveZone removes a zone. A removed zone loses its selection and cancels
// an in-flight drag on it.
func (s *Session) RemoveZone(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.layout.RemoveZone(id) {
		return false
	}
	if s.selection == id {
		s.selection = ""
		s.emit(PatchSelectionChanged, "")
	}
	if s.drag != nil && s.drag.zoneID == id {
		s.drag = nil
	}
	s.emit(PatchZoneRemoved, id)
	return true
}

// MoveZone commits a position through the layout's mutation gate.
func (s *Session) MoveZone(id string, pos geo.Vec3, commitOnInvalid bool) (layout.PlacementResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.layout.MoveZone(id, pos, commitOnInvalid)
	if !ok {
		return layout.PlacementResult{}, ErrZoneNotFound
	}
	if res.Valid || commitOnInvalid {
		s.emit(PatchZoneMoved, ZoneMove{ID: id, Position: pos, Result: res})
	}
	return res, nil
}

// DuplicateZone clones a zone; a nil offset means the default.
func (s *Session) DuplicateZone(id string, offset *geo.Vec3) (layout.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	off := layout.DefaultDuplicateOffset
	if offset != nil {
		off = *offset
	}
	dup, ok := s.layout.DuplicateZone(id, off)
	if !ok {
		return layout.Zone{}, ErrZoneNotFound
	}
	s.emit(PatchZoneAdded, dup)
	return dup, nil
}

// UpdateZone applies presentation attribute edits.
func (s *Session) UpdateZone(id string, attrs layout.Attrs) (layout.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	z, ok := s.layout.UpdateZone(id, attrs)
	if !ok {
		return layout.Zone{}, ErrZoneNotFound
	}
	s.emit(PatchZoneUpdated, z)
	return z, nil
}

// Preview validates a position without committing anything. Safe to call at
// pointer-move rates.
func (s *Session) Preview(zoneID string, pos geo.Vec3) layout.PlacementResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.ValidatePlacement(zoneID, pos)
}

// Select marks a zone as the current editing target; an empty id clears the
// selection.
func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if _, ok := s.layout.Zone(id); !ok {
			return ErrZoneNotFound
		}
	}
	if s.selection == id {
		return nil
	}
	s.selection = id
	s.emit(PatchSelectionChanged, id)
	return nil
}

// Selection returns the currently selected zone id, or empty.
func (s *Session) Selection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Export serializes the layout as a layout document.
func (s *Session) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return layout.Encode(s.layout)
}

// Import replaces the whole layout from a layout document. On any parse or
// schema failure the previous layout stays in place.
func (s *Session) Import(data []byte) error {
	l, err := layout.Decode(data)
	if err != nil {
		return err
	}
	s.Replace(l)
	return nil
}

// Replace swaps in a new layout wholesale, clearing selection and drag.
func (s *Session) Replace(l *layout.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.layout = l
	s.selection = ""
	s.drag = nil
	s.emit(PatchLayoutReplaced, Snapshot{
		Name:    s.name,
		Habitat: l.Shell(),
		Zones:   l.Zones(),
	})
}

// BeginDrag starts dragging a zone, capturing its origin for revert.
func (s *Session) BeginDrag(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drag != nil {
		return ErrDragActive
	}
	z, ok := s.layout.Zone(id)
	if !ok {
		return ErrZoneNotFound
	}
	s.drag = &dragState{zoneID: id, origin: z.Position}
	return nil
}

// DragTo records the latest proposed position and returns a pure preview of
// its validity. Nothing commits until EndDrag.
func (s *Session) DragTo(pos geo.Vec3) (layout.PlacementResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drag == nil {
		return layout.PlacementResult{}, ErrNoActiveDrag
	}
	s.drag.proposed = pos
	s.drag.has = true
	return s.layout.ValidatePlacement(s.drag.zoneID, pos), nil
}

// EndDrag finishes the drag. With commit, the last proposed position goes
// through MoveZone; an invalid position leaves the zone at its origin, and
// the caller reverts its preview. Without commit, the drag is abandoned.
func (s *Session) EndDrag(commit bool) (layout.PlacementResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drag == nil {
		return layout.PlacementResult{}, ErrNoActiveDrag
	}
	drag := s.drag
	s.drag = nil

	if !commit || !drag.has {
		return layout.PlacementResult{Valid: true, Reason: layout.ReasonOK}, nil
	}
	res, ok := s.layout.MoveZone(drag.zoneID, drag.proposed, false)
	if !ok {
		return layout.PlacementResult{}, ErrZoneNotFound
	}
	if res.Valid {
		s.emit(PatchZoneMoved, ZoneMove{ID: drag.zoneID, Position: drag.proposed, Result: res})
	}
	return res, nil
}

// CancelDrag abandons the drag, leaving the zone at its origin.
func (s *Session) CancelDrag() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drag == nil {
		return ErrNoActiveDrag
	}
	s.drag = nil
	return nil
}

// emit must run with the lock held.
func (s *Session) emit(t PatchType, payload any) {
	s.seq++
	p := Patch{Seq: s.seq, Type: t, Payload: payload}
	for _, fn := range s.listeners {
		fn(p)
	}
}
