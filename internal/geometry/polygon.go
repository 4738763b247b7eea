package geometry

import "math"

// Bounds is an axis-aligned bounding box in feet.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the bounds' horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the bounds' vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// CenterX returns the horizontal midpoint of the bounds.
func (b Bounds) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY returns the vertical midpoint of the bounds.
func (b Bounds) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// PointInPolygon reports whether (x,y) lies inside the polygon described
// by vertices, using a standard ray-casting test. Orientation (CW/CCW)
// does not matter.
func PointInPolygon(x, y float64, vertices []Vertex) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi := vertices[i]
		vj := vertices[j]

		crosses := (vi.Y > y) != (vj.Y > y)
		if !crosses {
			continue
		}

		xIntersect := (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y) + vi.X
		if x < xIntersect {
			inside = !inside
		}
	}
	return inside
}

// PolygonArea returns the absolute area of the polygon in square feet
// via the shoelace formula.
func PolygonArea(vertices []Vertex) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// PolygonBounds returns the axis-aligned bounding box of vertices.
func PolygonBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinX: vertices[0].X, MaxX: vertices[0].X,
		MinY: vertices[0].Y, MaxY: vertices[0].Y,
	}
	for _, v := range vertices[1:] {
		b.MinX = math.Min(b.MinX, v.X)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	return b
}

// IsSimple reports whether the polygon is non-self-intersecting: no two
// non-adjacent edges cross. Used to enforce the invariant that the
// engine refuses to advance history on a self-intersecting room.
func IsSimple(vertices []Vertex) bool {
	n := len(vertices)
	if n < 3 {
		return true
	}

	segs := SegmentsOf(vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacent(i, j, n) {
				continue
			}
			if segmentsIntersect(segs[i], segs[j]) {
				return false
			}
		}
	}
	return true
}

func adjacent(i, j, n int) bool {
	return i == j || (i+1)%n == j || (j+1)%n == i
}

// segmentsIntersect reports whether two segments cross using the
// standard orientation-based test, excluding shared-endpoint touches.
func segmentsIntersect(a, b Segment) bool {
	p1, p2 := Point{a.X1, a.Y1}, Point{a.X2, a.Y2}
	p3, p4 := Point{b.X1, b.Y1}, Point{b.X2, b.Y2}

	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if math.Abs(d1) < Epsilon && onSegment(p3, p4, p1) {
		return true
	}
	if math.Abs(d2) < Epsilon && onSegment(p3, p4, p2) {
		return true
	}
	if math.Abs(d3) < Epsilon && onSegment(p1, p2, p3) {
		return true
	}
	if math.Abs(d4) < Epsilon && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func onSegment(p, q, r Point) bool {
	return r.X <= math.Max(p.X, q.X)+Epsilon && r.X >= math.Min(p.X, q.X)-Epsilon &&
		r.Y <= math.Max(p.Y, q.Y)+Epsilon && r.Y >= math.Min(p.Y, q.Y)-Epsilon
}
