package scene

import "github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"

// EntityKind identifies the kind of scene entity.
type EntityKind string

const (
	EntityShell EntityKind = "shell"
	EntityFloor EntityKind = "floor"
	EntityZone  EntityKind = "zone"
)

// BoundingBox is an axis-aligned bounding box.
type BoundingBox struct {
	Min geo.Vec3 `json:"min"`
	Max geo.Vec3 `json:"max"`
}

// CameraPreset is a named viewpoint the renderer can animate to. Positions
// are data only; easing and motion belong to the renderer.
type CameraPreset struct {
	Name     string   `json:"name"`
	Position geo.Vec3 `json:"position"`
	Target   geo.Vec3 `json:"target"`
}

// Entity is a single element in the scene graph. Rotation is a quaternion
// [x, y, z, w]; zone rotation is always a yaw around the vertical axis.
type Entity struct {
	ID         string         `json:"id"`
	Kind       EntityKind     `json:"kind"`
	Position   geo.Vec3       `json:"position"`
	Dimensions geo.Vec3       `json:"dimensions"`
	Rotation   [4]float64     `json:"rotation"`
	Material   string         `json:"material"`
	ZoneType   string         `json:"zone_type,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Graph is the complete scene handed to the browser renderer.
type Graph struct {
	Metadata Metadata `json:"metadata"`
	Entities []Entity `json:"entities"`
	Groups   Groups   `json:"groups"`
}

// Metadata holds scene-level information.
type Metadata struct {
	Name        string         `json:"name"`
	GeneratedAt string         `json:"generated_at"`
	Bounds      BoundingBox    `json:"bounds"`
	Cameras     []CameraPreset `json:"cameras"`
}

// Groups organizes entity IDs by kind and by zone type for fast filtering.
type Groups struct {
	Kinds     map[EntityKind][]string `json:"kinds"`
	ZoneTypes map[string][]string     `json:"zone_types"`
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		Entities: []Entity{},
		Groups: Groups{
			Kinds:     make(map[EntityKind][]string),
			ZoneTypes: make(map[string][]string),
		},
	}
}
