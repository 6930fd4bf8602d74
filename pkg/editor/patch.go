package editor

// PatchType identifies what changed in the session.
type PatchType string

const (
	PatchZoneAdded        PatchType = "zone_added"
	PatchZoneRemoved      PatchType = "zone_removed"
	PatchZoneMoved        PatchType = "zone_moved"
	PatchZoneUpdated      PatchType = "zone_updated"
	PatchHabitatChanged   PatchType = "habitat_changed"
	PatchLayoutReplaced   PatchType = "layout_replaced"
	PatchSelectionChanged PatchType = "selection_changed"
)

// Patch is one sequence-numbered change notification pushed to live mirrors
// of the session (websocket clients). Sequence numbers are strictly
// increasing per session; a gap tells a mirror it must refetch the snapshot.
type Patch struct {
	Seq     uint64    `json:"seq"`
	Type    PatchType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}
