package geo

import "math"

// DefaultCircleSegments is the default resolution for circle approximation.
// 64 segments keeps the area error of a unit circle under 0.2%.
const DefaultCircleSegments = 64

// ApproximateCircle returns a polygon approximating a circle with the given
// center, radius, and number of segments. Vertices are in CCW order.
func ApproximateCircle(center Point2D, radius float64, segments int) Polygon {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Point2D, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point2D{
			X: center.X + radius*math.Cos(angle),
			Z: center.Z + radius*math.Sin(angle),
		}
	}
	return Polygon{Vertices: pts}
}
