package geo

import "math"

// Vec3 is a position or offset in the habitat's 3D space. Y is up; zones sit
// on the floor plane at a fixed Y offset with X/Z relative to habitat center.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// V3 is a shorthand constructor for Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean 3D distance from v to w.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Lerp returns the linear interpolation between v and w at t in [0,1].
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// XZ projects the vector onto the floor plane.
func (v Vec3) XZ() Point2D {
	return Point2D{X: v.X, Z: v.Z}
}

// PlanarLength returns the distance from the habitat's vertical axis,
// ignoring height.
func (v Vec3) PlanarLength() float64 {
	return math.Hypot(v.X, v.Z)
}

// WithY returns the vector with its Y component replaced.
func (v Vec3) WithY(y float64) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Z}
}
