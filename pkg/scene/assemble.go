package scene

import (
	"math"
	"time"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/layout"
)

const floorThickness = 0.1 // meters

// Assemble converts a layout into the scene graph the browser renderer
// draws: the habitat shell, the floor disc, and one box per zone.
func Assemble(name string, l *layout.Layout) *Graph {
	g := NewGraph()
	shell := l.Shell()

	assembleShell(shell, g)
	assembleFloor(shell, g)
	assembleZones(l.Zones(), g)

	g.Metadata = Metadata{
		Name:        name,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Bounds:      computeBounds(g.Entities),
		Cameras:     cameraPresets(shell),
	}

	return g
}

func assembleShell(s habitat.Shell, g *Graph) {
	height := s.Height
	if s.Shape == habitat.ShapeDome {
		// A dome's vertical extent is its radius; height is not used.
		height = s.Radius
	}

	addEntity(g, Entity{
		ID:         "habitat_shell",
		Kind:       EntityShell,
		Position:   geo.V3(0, 0, 0),
		Dimensions: geo.V3(2*s.Radius, height, 2*s.Radius),
		Rotation:   identityQuat(),
		Material:   "hull",
		Metadata: map[string]any{
			"shape":  string(s.Shape),
			"radius": s.Radius,
			"height": s.Height,
			"crew":   s.Crew,
		},
	})
}

func assembleFloor(s habitat.Shell, g *Graph) {
	usable := s.Radius - layout.ZoneClearance
	outline := geo.ApproximateCircle(geo.Origin, usable, geo.DefaultCircleSegments)

	addEntity(g, Entity{
		ID:         "habitat_floor",
		Kind:       EntityFloor,
		Position:   geo.V3(0, 0, 0),
		Dimensions: geo.V3(2*s.Radius, floorThickness, 2*s.Radius),
		Rotation:   identityQuat(),
		Material:   "deck",
		Metadata: map[string]any{
			"usable_radius":  usable,
			"usable_area_m2": outline.Area(),
		},
	})
}

func assembleZones(zones []layout.Zone, g *Graph) {
	for _, z := range zones {
		addEntity(g, Entity{
			ID:   z.ID,
			Kind: EntityZone,
			Position: geo.V3(
				z.Position.X,
				z.Position.Y-z.Dimensions.Height*z.Scale/2,
				z.Position.Z,
			),
			Dimensions: geo.V3(
				z.Dimensions.Width*z.Scale,
				z.Dimensions.Height*z.Scale,
				z.Dimensions.Depth*z.Scale,
			),
			Rotation: yawQuat(z.Rotation),
			Material: z.Type.Color(),
			ZoneType: string(z.Type),
		})
	}
}

// cameraPresets derives the standard viewpoints from the shell proportions.
func cameraPresets(s habitat.Shell) []CameraPreset {
	r := s.Radius
	h := math.Max(s.Height, r)
	center := geo.V3(0, layout.FloorY, 0)

	return []CameraPreset{
		{Name: "overview", Position: geo.V3(r*2.2, h*1.6, r*2.2), Target: center},
		{Name: "top", Position: geo.V3(0, h*3, 0.01), Target: geo.V3(0, 0, 0)},
		{Name: "side", Position: geo.V3(r*2.5, layout.FloorY+2, 0), Target: center},
		{Name: "interior", Position: geo.V3(0, 2, r*0.5), Target: geo.V3(0, layout.FloorY, -r*0.5)},
	}
}

// addEntity appends an entity and updates the group indices.
func addEntity(g *Graph, e Entity) {
	g.Entities = append(g.Entities, e)

	g.Groups.Kinds[e.Kind] = append(g.Groups.Kinds[e.Kind], e.ID)
	if e.ZoneType != "" {
		g.Groups.ZoneTypes[e.ZoneType] = append(g.Groups.ZoneTypes[e.ZoneType], e.ID)
	}
}

// computeBounds calculates the AABB of all entities.
func computeBounds(entities []Entity) BoundingBox {
	if len(entities) == 0 {
		return BoundingBox{}
	}
	minV := geo.V3(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
	maxV := geo.V3(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64)

	for _, e := range entities {
		halfX := e.Dimensions.X / 2
		halfZ := e.Dimensions.Z / 2

		loX := e.Position.X - halfX
		hiX := e.Position.X + halfX
		loY := e.Position.Y
		hiY := e.Position.Y + e.Dimensions.Y
		loZ := e.Position.Z - halfZ
		hiZ := e.Position.Z + halfZ

		if loX < minV.X {
			minV.X = loX
		}
		if hiX > maxV.X {
			maxV.X = hiX
		}
		if loY < minV.Y {
			minV.Y = loY
		}
		if hiY > maxV.Y {
			maxV.Y = hiY
		}
		if loZ < minV.Z {
			minV.Z = loZ
		}
		if hiZ > maxV.Z {
			maxV.Z = hiZ
		}
	}
	return BoundingBox{Min: minV, Max: maxV}
}

func identityQuat() [4]float64 {
	return [4]float64{0, 0, 0, 1}
}

func yawQuat(angle float64) [4]float64 {
	half := angle / 2
	return [4]float64{0, math.Sin(half), 0, math.Cos(half)}
}
