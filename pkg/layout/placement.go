package layout

import "github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"

// PlacementReason explains a placement verdict.
type PlacementReason string

const (
	ReasonOK          PlacementReason = "ok"
	ReasonOutOfBounds PlacementReason = "out_of_bounds"
	ReasonCollision   PlacementReason = "collision"
)

// PlacementResult is the verdict for a proposed zone position. Collider is
// the first colliding zone found; which one that is depends on insertion
// order and is informational only, the contract is Valid and Reason.
type PlacementResult struct {
	Valid    bool            `json:"valid"`
	Reason   PlacementReason `json:"reason"`
	Collider string          `json:"collider,omitempty"`
}

// ValidatePlacement decides whether a zone may occupy pos. zoneID names the
// zone being moved and is excluded from the collision scan; pass an empty
// id to validate a position for a zone that does not exist yet.
//
// Bounds first: the planar distance from the habitat axis must stay
// strictly inside radius - ZoneClearance. Then separation: any other zone
// strictly closer than MinZoneSeparation in 3D is a collision. The check is
// pure and O(zones); it runs on every pointer move during a drag, so it
// mutates nothing and allocates nothing.
func (l *Layout) ValidatePlacement(zoneID string, pos geo.Vec3) PlacementResult {
	if pos.PlanarLength() >= l.shell.Radius-ZoneClearance {
		return PlacementResult{Valid: false, Reason: ReasonOutOfBounds}
	}
	for _, z := range l.zones {
		if z.ID == zoneID {
			continue
		}
		if z.Position.Distance(pos) < MinZoneSeparation {
			return PlacementResult{Valid: false, Reason: ReasonCollision, Collider: z.ID}
		}
	}
	return PlacementResult{Valid: true, Reason: ReasonOK}
}
