package geo

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Point2D tests ---

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointAngle(t *testing.T) {
	p := Pt(1, 0)
	if !approxEqual(p.Angle(), 0, tolerance) {
		t.Errorf("expected angle 0, got %f", p.Angle())
	}
	p2 := Pt(0, 1)
	if !approxEqual(p2.Angle(), math.Pi/2, tolerance) {
		t.Errorf("expected angle pi/2, got %f", p2.Angle())
	}
}

func TestPointRotate(t *testing.T) {
	p := Pt(1, 0)
	r := p.Rotate(math.Pi / 2)
	if !approxEqual(r.X, 0, tolerance) || !approxEqual(r.Z, 1, tolerance) {
		t.Errorf("expected (0,1), got (%f,%f)", r.X, r.Z)
	}
}

func TestPointNormalize(t *testing.T) {
	p := Pt(3, 4)
	n := p.Normalize()
	if !approxEqual(n.Length(), 1.0, tolerance) {
		t.Errorf("expected unit length, got %f", n.Length())
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 10)
	mid := a.Lerp(b, 0.5)
	if !approxEqual(mid.X, 5, tolerance) || !approxEqual(mid.Z, 5, tolerance) {
		t.Errorf("expected (5,5), got (%f,%f)", mid.X, mid.Z)
	}
}

// --- Vec3 tests ---

func TestVec3Distance(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(3, 4, 12)
	if !approxEqual(a.Distance(b), 13.0, tolerance) {
		t.Errorf("expected distance 13.0, got %f", a.Distance(b))
	}
}

func TestVec3PlanarLengthIgnoresY(t *testing.T) {
	v := V3(3, 99, 4)
	if !approxEqual(v.PlanarLength(), 5.0, tolerance) {
		t.Errorf("expected planar length 5.0, got %f", v.PlanarLength())
	}
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 1, 0)
	b := V3(10, 1, 10)
	mid := a.Lerp(b, 0.5)
	if !approxEqual(mid.X, 5, tolerance) || !approxEqual(mid.Y, 1, tolerance) || !approxEqual(mid.Z, 5, tolerance) {
		t.Errorf("expected (5,1,5), got (%f,%f,%f)", mid.X, mid.Y, mid.Z)
	}
}

func TestVec3XZ(t *testing.T) {
	v := V3(2, 1, -7)
	p := v.XZ()
	if !approxEqual(p.X, 2, tolerance) || !approxEqual(p.Z, -7, tolerance) {
		t.Errorf("expected (2,-7), got (%f,%f)", p.X, p.Z)
	}
}

func TestVec3WithY(t *testing.T) {
	v := V3(2, 5, 3).WithY(1)
	if !approxEqual(v.Y, 1, tolerance) {
		t.Errorf("expected y 1, got %f", v.Y)
	}
}

// --- Polygon tests ---

func TestPolygonAreaSquare(t *testing.T) {
	// 10x10 square
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	area := sq.Area()
	if !approxEqual(area, 100, tolerance) {
		t.Errorf("expected area 100, got %f", area)
	}
}

func TestPolygonAreaTriangle(t *testing.T) {
	tri := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(0, 10))
	area := tri.Area()
	if !approxEqual(area, 50, tolerance) {
		t.Errorf("expected area 50, got %f", area)
	}
}

func TestPolygonContains(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if !sq.Contains(Pt(5, 5)) {
		t.Error("expected (5,5) inside square")
	}
	if sq.Contains(Pt(15, 5)) {
		t.Error("expected (15,5) outside square")
	}
	if sq.Contains(Pt(-1, 5)) {
		t.Error("expected (-1,5) outside square")
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	sq := NewPolygon(Pt(-5, -3), Pt(10, 0), Pt(7, 12))
	mn, mx := sq.BoundingBox()
	if !approxEqual(mn.X, -5, tolerance) || !approxEqual(mn.Z, -3, tolerance) {
		t.Errorf("expected min (-5,-3), got (%f,%f)", mn.X, mn.Z)
	}
	if !approxEqual(mx.X, 10, tolerance) || !approxEqual(mx.Z, 12, tolerance) {
		t.Errorf("expected max (10,12), got (%f,%f)", mx.X, mx.Z)
	}
}

func TestPolygonPerimeter(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if !approxEqual(sq.Perimeter(), 40, tolerance) {
		t.Errorf("expected perimeter 40, got %f", sq.Perimeter())
	}
}

// --- Circle approximation tests ---

func TestApproximateCircleArea(t *testing.T) {
	circle := ApproximateCircle(Origin, 100, 128)
	expectedArea := math.Pi * 100 * 100
	if !approxEqual(circle.Area(), expectedArea, expectedArea*0.001) {
		t.Errorf("expected circle area ~%f, got %f", expectedArea, circle.Area())
	}
}

func TestApproximateCircleContains(t *testing.T) {
	circle := ApproximateCircle(Origin, 10, DefaultCircleSegments)
	if !circle.Contains(Pt(8, 0)) {
		t.Error("expected (8,0) inside radius-10 circle")
	}
	if circle.Contains(Pt(11, 0)) {
		t.Error("expected (11,0) outside radius-10 circle")
	}
}
