package interaction

import (
	"math"

	"github.com/gofloorplan/editor/internal/geometry"
	"github.com/gofloorplan/editor/internal/hittest"
	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/snap"
)

// PointerMoveEvent carries the cursor's world-space position and the
// raw screen-pixel delta since the last move (pan mode translates in
// screen pixels, not world feet).
type PointerMoveEvent struct {
	X, Y           float64 // world space
	ScreenDX, ScreenDY float64
	ShiftHeld      bool
	Zoom           float64
}

// PointerMove applies the behavior for the currently active mode and
// returns the (possibly mutated) scene.
func (m *Machine) PointerMove(s scene.Scene, ev PointerMoveEvent) scene.Scene {
	dx := ev.X - m.dragStartWX
	dy := ev.Y - m.dragStartWY

	switch m.Mode {
	case ModePan:
		next := s
		next.PanX += ev.ScreenDX
		next.PanY += ev.ScreenDY
		return next

	case ModeRubberBand:
		m.RubberBand = normalizeRect(m.RubberBand.X, m.RubberBand.Y, ev.X, ev.Y)
		return s

	case ModeDragSingle:
		next := m.dragSingle(s, ev)
		m.dragStartWX, m.dragStartWY = ev.X, ev.Y
		return next

	case ModeDragMulti:
		next := scene.MoveMany(s, m.Selection.FurnitureIDs, dx, dy)
		m.sceneDirty = true
		m.dragStartWX, m.dragStartWY = ev.X, ev.Y
		return next

	case ModeVertexDrag:
		pos := scene.RoomVertex{X: ev.X, Y: ev.Y}
		if s.SnapToGrid {
			pos.X, pos.Y = snap.ToGrid(pos.X, pos.Y, s.GridSize)
		}
		m.sceneDirty = true
		return scene.MoveVertex(s, m.vertexIndex, pos)

	case ModeRotate:
		return m.rotate(s, ev)

	case ModeResize:
		next := m.resize(s, ev, dx, dy)
		m.dragStartWX, m.dragStartWY = ev.X, ev.Y
		return next

	case ModeMeasure:
		m.Measure.EndX, m.Measure.EndY = ev.X, ev.Y
		return s
	}
	return s
}

func normalizeRect(x1, y1, x2, y2 float64) geometry.Rect {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return geometry.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

func (m *Machine) dragSingle(s scene.Scene, ev PointerMoveEvent) scene.Scene {
	f := findFurniture(s, m.dragItemID)
	dx := ev.X - m.dragStartWX
	dy := ev.Y - m.dragStartWY

	candidateLeft := (f.X + dx) - f.W/2
	candidateTop := (f.Y + dy) - f.H/2
	if s.SnapToGrid {
		candidateLeft, candidateTop = snap.ToGrid(candidateLeft, candidateTop, s.GridSize)
	}

	others := otherFurniture(s.Furniture, m.dragItemID)
	threshold := snap.Threshold(snap.SnapPixels, hittest.PxPerFt, ev.Zoom)
	result := snap.ApplySmartSnap(candidateLeft, candidateTop, f.W, f.H, others, s.Room, threshold)
	m.Guides = result.Guides

	newCenterX := result.X + f.W/2
	newCenterY := result.Y + f.H/2

	m.Collision = false
	movedRect := geometry.CenterRect(newCenterX, newCenterY, f.W, f.H)
	for _, other := range others {
		if geometry.RectsOverlap(movedRect, geometry.CenterRect(other.X, other.Y, other.W, other.H)) {
			m.Collision = true
			break
		}
	}

	m.sceneDirty = true
	return scene.Move(s, m.dragItemID, newCenterX, newCenterY)
}

func otherFurniture(items []scene.Furniture, excludeID string) []scene.Furniture {
	out := make([]scene.Furniture, 0, len(items))
	for _, f := range items {
		if f.ID != excludeID {
			out = append(out, f)
		}
	}
	return out
}

func (m *Machine) rotate(s scene.Scene, ev PointerMoveEvent) scene.Scene {
	f := findFurniture(s, m.dragItemID)
	target := math.Atan2(ev.Y-f.Y, ev.X-f.X)*180/math.Pi + 90

	step := 1.0
	if ev.ShiftHeld {
		step = 15.0
	}
	target = math.Round(target/step) * step

	next := s
	next = scene.Rotate(s, m.dragItemID, target-f.Rotation)
	m.sceneDirty = true
	return next
}

// resizeAxes maps a handle to its active axes and growth sign per axis.
func resizeAxes(h hittest.ResizeHandle) (hasX, hasY bool, wSign, hSign float64) {
	switch h {
	case hittest.HandleN:
		return false, true, 0, -1
	case hittest.HandleNE:
		return true, true, 1, -1
	case hittest.HandleE:
		return true, false, 1, 0
	case hittest.HandleSE:
		return true, true, 1, 1
	case hittest.HandleS:
		return false, true, 0, 1
	case hittest.HandleSW:
		return true, true, -1, 1
	case hittest.HandleW:
		return true, false, -1, 0
	default: // HandleNW
		return true, true, -1, -1
	}
}

func (m *Machine) resize(s scene.Scene, ev PointerMoveEvent, dx, dy float64) scene.Scene {
	f := findFurniture(s, m.dragItemID)
	hasX, hasY, wSign, hSign := resizeAxes(m.resizeHandle)

	deltaW := wSign * dx
	deltaH := hSign * dy

	if ev.ShiftHeld && f.H > 0 && f.W > 0 {
		aspect := f.W / f.H
		if hasX && hasY {
			deltaH = deltaW / aspect
			if hSign != 0 {
				deltaH = math.Abs(deltaW) / aspect * hSign
			}
		} else if hasX {
			deltaH = math.Abs(deltaW) / aspect
		} else if hasY {
			deltaW = math.Abs(deltaH) * aspect
		}
	}

	newW, newH := f.W+deltaW, f.H+deltaH
	centerShiftX, centerShiftY := 0.0, 0.0
	if hasX {
		centerShiftX = dx / 2
	}
	if hasY {
		centerShiftY = dy / 2
	}

	next := scene.Resize(s, m.dragItemID, newW, newH)
	next = scene.Move(next, m.dragItemID, f.X+centerShiftX, f.Y+centerShiftY)
	m.sceneDirty = true
	return next
}

// PointerUp commits the current scene as one history snapshot if a
// mutating mode changed it, and returns the machine to idle. The caller
// is responsible for actually pushing snap to its history stack; PointerUp
// only reports whether a commit is due.
func (m *Machine) PointerUp(s scene.Scene) (shouldCommit bool) {
	switch m.Mode {
	case ModeRubberBand:
		m.SelectInRubberBand(s)
		m.Mode = ModeIdle
		return false // selection change alone is not a history event

	case ModeDragSingle, ModeDragMulti, ModeVertexDrag, ModeResize, ModeRotate:
		dirty := m.sceneDirty
		m.Mode = ModeIdle
		m.Guides = nil
		m.Collision = false
		return dirty

	case ModePan:
		m.Mode = ModeIdle
		return false

	case ModeIdle:
		// Eraser deletions and door/window insertions commit immediately
		// from PointerDown, arming sceneDirty without ever changing Mode
		// off ModeIdle; PointerUp still has to report that commit.
		dirty := m.sceneDirty
		m.sceneDirty = false
		return dirty
	}
	m.Mode = ModeIdle
	return false
}

// SelectInRubberBand selects every furniture item whose center lies
// inside the current rubber-band rectangle.
func (m *Machine) SelectInRubberBand(s scene.Scene) {
	var ids []string
	for _, f := range s.Furniture {
		if m.RubberBand.Contains(f.X, f.Y) {
			ids = append(ids, f.ID)
		}
	}
	m.Selection = Selection{FurnitureIDs: ids}
}
