// Package hittest derives world-space hit results for furniture,
// openings, room vertices, and selection handles from a cursor
// position. Every tolerance is clamped so a handle stays clickable at
// any zoom level.
package hittest

import (
	"math"

	"github.com/gofloorplan/editor/internal/geometry"
	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/spatialindex"
)

// PxPerFt is the baseline pixels-per-foot scale at zoom=1.
const PxPerFt = 32.0

// ToWorld converts a cursor pixel position to world-space feet, given
// the current pan and zoom.
func ToWorld(cx, cy, panX, panY, zoom float64) (x, y float64) {
	return (cx - panX) / (PxPerFt * zoom), (cy - panY) / (PxPerFt * zoom)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FurnitureAt returns the topmost furniture item under (x,y), or false.
func FurnitureAt(idx *spatialindex.Hash, x, y float64) (scene.Furniture, bool) {
	return idx.Query(x, y)
}

// OpeningKind distinguishes a door hit from a window hit.
type OpeningKind int

const (
	OpeningNone OpeningKind = iota
	OpeningDoor
	OpeningWindow
)

// OpeningHit is the result of testing a cursor position against every
// door and window.
type OpeningHit struct {
	Kind OpeningKind
	ID   string
}

// OpeningTolerance is clamp(0.6/zoom, 0.4, 1.0) feet.
func OpeningTolerance(zoom float64) float64 {
	return clamp(0.6/zoom, 0.4, 1.0)
}

// OpeningAt finds the door or window whose position on its host wall is
// within OpeningTolerance(zoom) of (x,y).
func OpeningAt(walls []scene.Wall, doors []scene.Door, windows []scene.Window, x, y, zoom float64) (OpeningHit, bool) {
	tolerance := OpeningTolerance(zoom)
	wallByID := make(map[string]scene.Wall, len(walls))
	for _, w := range walls {
		wallByID[w.ID] = w
	}

	for _, d := range doors {
		w, ok := wallByID[d.WallID]
		if !ok {
			continue
		}
		p := geometry.PointAt(toSegment(w), d.Position)
		if math.Hypot(x-p.X, y-p.Y) <= tolerance {
			return OpeningHit{Kind: OpeningDoor, ID: d.ID}, true
		}
	}
	for _, win := range windows {
		w, ok := wallByID[win.WallID]
		if !ok {
			continue
		}
		p := geometry.PointAt(toSegment(w), win.Position)
		if math.Hypot(x-p.X, y-p.Y) <= tolerance {
			return OpeningHit{Kind: OpeningWindow, ID: win.ID}, true
		}
	}
	return OpeningHit{}, false
}

func toSegment(w scene.Wall) geometry.Segment {
	return geometry.Segment{ID: w.ID, X1: w.X1, Y1: w.Y1, X2: w.X2, Y2: w.Y2, Length: w.Length, Angle: w.Angle}
}

// VertexTolerance is clamp(0.5/zoom, 0.3, 0.8) feet.
func VertexTolerance(zoom float64) float64 {
	return clamp(0.5/zoom, 0.3, 0.8)
}

// VertexAt returns the index of the room vertex within VertexTolerance
// of (x,y), or -1 if none.
func VertexAt(vertices []scene.RoomVertex, x, y, zoom float64) int {
	tolerance := VertexTolerance(zoom)
	for i, v := range vertices {
		if math.Hypot(x-v.X, y-v.Y) <= tolerance {
			return i
		}
	}
	return -1
}

// ResizeHandleTolerance is clamp(8/(PxPerFt·zoom), 0.2, 0.6) feet.
func ResizeHandleTolerance(zoom float64) float64 {
	return clamp(8/(PxPerFt*zoom), 0.2, 0.6)
}

// RotationHandleTolerance is clamp(0.4/√zoom, 0.3, 0.6) feet.
func RotationHandleTolerance(zoom float64) float64 {
	return clamp(0.4/math.Sqrt(zoom), 0.3, 0.6)
}

// ResizeHandle identifies one of the 8 resize handles around a
// selection's bounding box.
type ResizeHandle int

const (
	HandleN ResizeHandle = iota
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
	HandleNW
)

// HandlePositions returns the world-space centers of the 8 resize
// handles and the rotation handle (above the top edge) for a selection
// bounding rect.
func HandlePositions(rect geometry.Rect) (resize [8]geometry.Point, rotation geometry.Point) {
	minX, minY, maxX, maxY := rect.MinX(), rect.MinY(), rect.MaxX(), rect.MaxY()
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	resize[HandleN] = geometry.Point{X: midX, Y: minY}
	resize[HandleNE] = geometry.Point{X: maxX, Y: minY}
	resize[HandleE] = geometry.Point{X: maxX, Y: midY}
	resize[HandleSE] = geometry.Point{X: maxX, Y: maxY}
	resize[HandleS] = geometry.Point{X: midX, Y: maxY}
	resize[HandleSW] = geometry.Point{X: minX, Y: maxY}
	resize[HandleW] = geometry.Point{X: minX, Y: midY}
	resize[HandleNW] = geometry.Point{X: minX, Y: minY}

	rotation = geometry.Point{X: midX, Y: minY - RotationHandleOffset}
	return
}

// RotationHandleOffset is the fixed world-space distance above the
// selection's top edge where the rotation handle is drawn.
const RotationHandleOffset = 1.5

// ResizeHandleAt returns the resize handle within ResizeHandleTolerance
// of (x,y), or false if none match.
func ResizeHandleAt(rect geometry.Rect, x, y, zoom float64) (ResizeHandle, bool) {
	handles, _ := HandlePositions(rect)
	tolerance := ResizeHandleTolerance(zoom)
	for h, p := range handles {
		if math.Hypot(x-p.X, y-p.Y) <= tolerance {
			return ResizeHandle(h), true
		}
	}
	return 0, false
}

// RotationHandleAt reports whether (x,y) is within
// RotationHandleTolerance of rect's rotation handle.
func RotationHandleAt(rect geometry.Rect, x, y, zoom float64) bool {
	_, rotation := HandlePositions(rect)
	return math.Hypot(x-rotation.X, y-rotation.Y) <= RotationHandleTolerance(zoom)
}
