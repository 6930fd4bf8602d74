package habitat

import "math"

// Shape is the parametric form of the habitat shell.
type Shape string

const (
	ShapeDome     Shape = "dome"
	ShapeCylinder Shape = "cylinder"
	ShapeCapsule  Shape = "capsule"
)

// Shapes lists every supported shell shape.
var Shapes = []Shape{ShapeDome, ShapeCylinder, ShapeCapsule}

// Known reports whether the shape is one of the supported shell forms.
func (s Shape) Known() bool {
	switch s {
	case ShapeDome, ShapeCylinder, ShapeCapsule:
		return true
	}
	return false
}

// Shell is the outer parametric enclosure bounding all zones.
// Radius and Height are meters; Height semantics depend on Shape
// (ignored for dome, full length for cylinder and capsule).
type Shell struct {
	Shape  Shape   `yaml:"shape" json:"shape" validate:"required,oneof=dome cylinder capsule"`
	Radius float64 `yaml:"radius" json:"radius" validate:"required,gt=0"`
	Height float64 `yaml:"height" json:"height" validate:"required,gt=0"`
	Crew   int     `yaml:"crew" json:"crew" validate:"required,min=1"`
}

// Volume returns the pressurized volume in cubic meters.
// A capsule with height <= 2*radius has no cylindrical section and the
// result degenerates to zero or below; callers must treat a non-positive
// volume as an invalid configuration rather than display it.
func (s Shell) Volume() float64 {
	r := s.Radius
	switch s.Shape {
	case ShapeDome:
		return (2.0 / 3.0) * math.Pi * r * r * r
	case ShapeCylinder:
		return math.Pi * r * r * s.Height
	case ShapeCapsule:
		return math.Pi*r*r*(s.Height-2*r) + (4.0/3.0)*math.Pi*r*r*r
	}
	return 0
}

// FloorArea returns the usable floor disc area in square meters.
func (s Shell) FloorArea() float64 {
	return math.Pi * s.Radius * s.Radius
}

// PerCrewVolume returns the pressurized volume per crew member.
// Returns 0 when crew is not positive.
func (s Shell) PerCrewVolume() float64 {
	if s.Crew <= 0 {
		return 0
	}
	return s.Volume() / float64(s.Crew)
}

// Spec is the top-level specification for a habitat project.
type Spec struct {
	SpecVersion string     `yaml:"spec_version" json:"spec_version"`
	Name        string     `yaml:"name" json:"name"`
	Habitat     Shell      `yaml:"habitat" json:"habitat"`
	Zones       []ZonePlan `yaml:"zones" json:"zones" validate:"dive"`
}

// ZonePlan is one planned zone entry. Entries with an explicit position
// place a single zone there; entries without one place Count zones at
// editor-chosen default positions.
type ZonePlan struct {
	Type     string        `yaml:"type" json:"type" validate:"required"`
	Count    int           `yaml:"count,omitempty" json:"count,omitempty" validate:"omitempty,min=1"`
	Position *PlanPosition `yaml:"position,omitempty" json:"position,omitempty"`
}

// PlanPosition is a planar placement in the spec file. Zones always sit on
// the floor plane, so only X and Z are given.
type PlanPosition struct {
	X float64 `yaml:"x" json:"x"`
	Z float64 `yaml:"z" json:"z"`
}

// PlannedZones returns the total number of zones the plan will create.
func (s *Spec) PlannedZones() int {
	total := 0
	for _, p := range s.Zones {
		n := p.Count
		if n < 1 {
			n = 1
		}
		total += n
	}
	return total
}
