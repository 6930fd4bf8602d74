package layout

import "github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"

// ZoneType identifies the functional purpose of a zone. The built-in types
// cover the standard habitat program; imported documents may carry other
// strings, which are preserved as-is.
type ZoneType string

const (
	ZoneSleeping    ZoneType = "sleeping"
	ZoneBathroom    ZoneType = "bathroom"
	ZoneStorage     ZoneType = "storage"
	ZoneExercise    ZoneType = "exercise"
	ZoneWorkstation ZoneType = "workstation"
	ZoneKitchen     ZoneType = "kitchen"
	ZoneAirlock     ZoneType = "airlock"
	ZoneMedical     ZoneType = "medical"
)

// BuiltinZoneTypes lists the types the editor offers directly.
var BuiltinZoneTypes = []ZoneType{
	ZoneSleeping,
	ZoneBathroom,
	ZoneStorage,
	ZoneExercise,
	ZoneWorkstation,
	ZoneKitchen,
	ZoneAirlock,
	ZoneMedical,
}

// zoneColors maps built-in types to their display colors.
var zoneColors = map[ZoneType]string{
	ZoneSleeping:    "#5b7fd4",
	ZoneBathroom:    "#4db6ac",
	ZoneStorage:     "#a1887f",
	ZoneExercise:    "#ef6c4d",
	ZoneWorkstation: "#7e57c2",
	ZoneKitchen:     "#f2a93b",
	ZoneAirlock:     "#e53950",
	ZoneMedical:     "#66bb6a",
}

// DefaultZoneColor is used for zone types without a registered color.
const DefaultZoneColor = "#9e9e9e"

// Color returns the display color for the zone type.
func (t ZoneType) Color() string {
	if c, ok := zoneColors[t]; ok {
		return c
	}
	return DefaultZoneColor
}

// Known reports whether t is one of the built-in types.
func (t ZoneType) Known() bool {
	_, ok := zoneColors[t]
	return ok
}

// Dimensions is a zone's box footprint in meters.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// DefaultDimensions is the standard zone footprint.
var DefaultDimensions = Dimensions{Width: 2, Height: 2, Depth: 2}

// Zone is a placeable functional area within the habitat. Position is the
// center of the zone's footprint; Rotation is radians around the vertical
// axis. Rotation, Scale and Dimensions are presentation attributes and play
// no part in placement validity.
type Zone struct {
	ID         string     `json:"id"`
	Type       ZoneType   `json:"type"`
	Position   geo.Vec3   `json:"position"`
	Rotation   float64    `json:"rotation"`
	Scale      float64    `json:"scale"`
	Dimensions Dimensions `json:"dimensions"`
}

// Attrs carries the editable presentation attributes of a zone.
// Nil fields are left unchanged.
type Attrs struct {
	Rotation   *float64    `json:"rotation,omitempty"`
	Scale      *float64    `json:"scale,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}
