// Package snap computes grid and smart-alignment snapping for furniture
// drags. It resolves directly to an adjusted (x,y) plus the guide
// lines that fired, matching the single-pass contract the editor's
// interaction state machine needs, rather than scoring a list of
// candidate snap points by distance.
package snap

import (
	"math"

	"github.com/gofloorplan/editor/internal/scene"
)

// Axis identifies which coordinate a Guide aligns.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// GuideSource records what the guide aligned against, strongest first in
// the priority order item-edge > item-center > room-edge > room-center.
type GuideSource int

const (
	SourceItemEdge GuideSource = iota
	SourceItemCenter
	SourceRoomEdge
	SourceRoomCenter
)

// Guide is a transient alignment line surfaced to the renderer while a
// drag is in progress.
type Guide struct {
	Axis   Axis
	Pos    float64 // world-space X for a vertical guide, Y for horizontal
	Source GuideSource
}

// MinThreshold and MaxThreshold bound the world-space snap tolerance
// computed from the screen-space pixel tolerance.
const (
	MinThreshold = 0.15
	MaxThreshold = 0.5
)

// SnapPixels is the default screen-space snap tolerance, SNAP_PX.
const SnapPixels = 8.0

// Threshold converts a screen-space pixel tolerance to world feet at the
// given pixels-per-foot scale and zoom level, clamped to
// [MinThreshold, MaxThreshold] so snapping stays usable across the zoom
// range.
func Threshold(snapPixels, pxPerFt, zoom float64) float64 {
	if pxPerFt <= 0 || zoom <= 0 {
		return MinThreshold
	}
	t := snapPixels / (pxPerFt * zoom)
	if t < MinThreshold {
		return MinThreshold
	}
	if t > MaxThreshold {
		return MaxThreshold
	}
	return t
}

// ToGrid rounds x and y to the nearest multiple of gridSize. gridSize<=0
// is a no-op (returns x,y unchanged).
func ToGrid(x, y, gridSize float64) (float64, float64) {
	if gridSize <= 0 {
		return x, y
	}
	return math.Round(x/gridSize) * gridSize, math.Round(y/gridSize) * gridSize
}

// edge is a single candidate alignment line on one axis.
type edge struct {
	pos    float64
	source GuideSource
}

// Result is the outcome of ApplySmartSnap.
type Result struct {
	X, Y   float64
	Guides []Guide
}

// ApplySmartSnap aligns the candidate rect (x,y,w,h) — x,y is the
// top-left corner — against the edges and centers of every other
// furniture item, the room's wall bounds, and the room's midlines,
// within threshold feet. Priority is item-edge > item-center >
// room-edge > room-center; only the strongest guide per axis is
// emitted. Pure: identical inputs yield identical outputs (invariant 5).
func ApplySmartSnap(x, y, w, h float64, others []scene.Furniture, room scene.Room, threshold float64) Result {
	bounds := roomBounds(room)

	vertEdges, horizEdges := candidateEdges(others, bounds)

	snapX, vGuide := snapAxis(x, x+w/2, x+w, vertEdges, threshold)
	snapY, hGuide := snapAxis(y, y+h/2, y+h, horizEdges, threshold)

	guides := []Guide{}
	if vGuide != nil {
		guides = append(guides, Guide{Axis: AxisVertical, Pos: vGuide.pos, Source: vGuide.source})
	}
	if hGuide != nil {
		guides = append(guides, Guide{Axis: AxisHorizontal, Pos: hGuide.pos, Source: hGuide.source})
	}

	return Result{X: snapX, Y: snapY, Guides: guides}
}

// candidateEdges gathers every edge/center alignment line for the X and
// Y axes, grouped by GuideSource priority: all item edges first, then
// all item centers, then the room edges, then the room center.
func candidateEdges(others []scene.Furniture, bounds rectBounds) (vert, horiz []edge) {
	var vertCenters, horizCenters []edge

	for _, f := range others {
		left, right := f.X-f.W/2, f.X+f.W/2
		top, bottom := f.Y-f.H/2, f.Y+f.H/2
		vert = append(vert, edge{left, SourceItemEdge}, edge{right, SourceItemEdge})
		horiz = append(horiz, edge{top, SourceItemEdge}, edge{bottom, SourceItemEdge})
		vertCenters = append(vertCenters, edge{(left + right) / 2, SourceItemCenter})
		horizCenters = append(horizCenters, edge{(top + bottom) / 2, SourceItemCenter})
	}
	vert = append(vert, vertCenters...)
	horiz = append(horiz, horizCenters...)

	vert = append(vert,
		edge{bounds.minX, SourceRoomEdge}, edge{bounds.maxX, SourceRoomEdge},
		edge{(bounds.minX + bounds.maxX) / 2, SourceRoomCenter},
	)
	horiz = append(horiz,
		edge{bounds.minY, SourceRoomEdge}, edge{bounds.maxY, SourceRoomEdge},
		edge{(bounds.minY + bounds.maxY) / 2, SourceRoomCenter},
	)
	return vert, horiz
}

// snapAxis walks candidates in priority order (item-edge > item-center >
// room-edge > room-center); the first candidate within threshold of the
// rect's leading edge, center, or trailing edge wins and the whole rect
// shifts by the same delta. Leading
// edge, then center, then trailing edge is tried for each candidate so a
// higher-priority source always beats a lower-priority one regardless of
// which rect point matched.
func snapAxis(lead, center, trail float64, candidates []edge, threshold float64) (float64, *edge) {
	for i := range candidates {
		e := candidates[i]
		switch {
		case math.Abs(lead-e.pos) <= threshold:
			return e.pos, &candidates[i]
		case math.Abs(center-e.pos) <= threshold:
			return e.pos - (center - lead), &candidates[i]
		case math.Abs(trail-e.pos) <= threshold:
			return e.pos - (trail - lead), &candidates[i]
		}
	}
	return lead, nil
}

type rectBounds struct{ minX, minY, maxX, maxY float64 }

func roomBounds(room scene.Room) rectBounds {
	if len(room.Vertices) == 0 {
		return rectBounds{}
	}
	minX, minY := room.Vertices[0].X, room.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range room.Vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return rectBounds{minX, minY, maxX, maxY}
}
