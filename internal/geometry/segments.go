// Package geometry provides pure math over polygons,
// segments, and furniture rectangles. It holds no scene state and makes
// no UI calls; every function is a plain value-in, value-out computation
// expressed in feet.
package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance below which a segment length or distance is
// treated as zero.
const Epsilon = 1e-6

// Point is a 2D coordinate in feet.
type Point struct {
	X, Y float64
}

// Segment is a wall edge derived from two consecutive room vertices.
type Segment struct {
	ID     string
	X1, Y1 float64
	X2, Y2 float64
	Length float64
	Angle  float64 // radians, atan2(y2-y1, x2-x1)
}

// Vertex mirrors the scene's RoomVertex shape without importing the
// scene package, keeping this package dependency-free.
type Vertex struct {
	X, Y float64
}

// SegmentsOf derives the ordered wall segments of a closed polygon,
// including the implicit last-to-first edge. The id of each segment is
// stable for a given index and endpoint pair, but not across vertex
// insertion/removal, since the index is part of the id.
func SegmentsOf(vertices []Vertex) []Segment {
	n := len(vertices)
	if n < 2 {
		return nil
	}

	segments := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		dx := b.X - a.X
		dy := b.Y - a.Y
		segments = append(segments, Segment{
			ID:     hashSegment(i, a.X, a.Y, b.X, b.Y),
			X1:     a.X,
			Y1:     a.Y,
			X2:     b.X,
			Y2:     b.Y,
			Length: math.Hypot(dx, dy),
			Angle:  math.Atan2(dy, dx),
		})
	}
	return segments
}

// hashSegment produces a stable, human-debuggable id from a segment's
// index and endpoints. It deliberately avoids any global counter so
// that re-deriving segments from the same vertices always yields the
// same ids.
func hashSegment(index int, x1, y1, x2, y2 float64) string {
	return fmt.Sprintf("wall-%d-%.4f-%.4f-%.4f-%.4f", index, x1, y1, x2, y2)
}

// PointAt linearly interpolates along a segment; t is clamped to [0,1].
func PointAt(s Segment, t float64) Point {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{
		X: s.X1 + (s.X2-s.X1)*t,
		Y: s.Y1 + (s.Y2-s.Y1)*t,
	}
}

// NearestResult is the outcome of a NearestWall query.
type NearestResult struct {
	Wall Segment
	T    float64
	Dist float64
}

// NearestWall projects (x,y) onto every segment, clamping the projection
// to [0,1], and returns the closest one within maxDist feet. It reports
// ok=false when no segment is within range or the segment list is empty.
func NearestWall(x, y float64, segments []Segment, maxDist float64) (NearestResult, bool) {
	best := NearestResult{}
	found := false

	for _, seg := range segments {
		t, dist := projectPoint(x, y, seg)
		if !found || dist < best.Dist {
			best = NearestResult{Wall: seg, T: t, Dist: dist}
			found = true
		}
	}

	if !found || best.Dist > maxDist {
		return NearestResult{}, false
	}
	return best, true
}

// projectPoint returns the clamped parametric position t and the
// distance from (x,y) to the point at t along the segment.
func projectPoint(x, y float64, s Segment) (t float64, dist float64) {
	dx := s.X2 - s.X1
	dy := s.Y2 - s.Y1
	lenSq := dx*dx + dy*dy

	if lenSq < Epsilon {
		// Degenerate (near-zero-length) segment: treat as a point.
		return 0, math.Hypot(x-s.X1, y-s.Y1)
	}

	t = ((x-s.X1)*dx + (y-s.Y1)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	px := s.X1 + dx*t
	py := s.Y1 + dy*t
	return t, math.Hypot(x-px, y-py)
}
