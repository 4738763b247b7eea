// Package interaction implements the editor's single-threaded,
// event-driven interaction state machine: tool selection,
// pointer-down dispatch priority, per-mode pointer-move behavior, and
// the commit-on-pointer-up rule. It holds the current tool/mode/
// selection as mutable fields (mutated synchronously by one dispatch
// at a time) but every scene edit itself goes through internal/scene's
// pure mutation functions, splitting the lifecycle into a start/update/
// complete/cancel sequence applied to furniture/vertex/resize/rotate
// drags alike.
package interaction

import (
	"math"

	"github.com/gofloorplan/editor/internal/geometry"
	"github.com/gofloorplan/editor/internal/hittest"
	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/snap"
	"github.com/gofloorplan/editor/internal/spatialindex"
)

// Tool is one of the mutually exclusive editing tools.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPan
	ToolDoor
	ToolWindow
	ToolMeasure
	ToolEraser
)

// Mode is the interaction mode active during a pointer sequence.
type Mode int

const (
	ModeIdle Mode = iota
	ModePan
	ModeDragSingle
	ModeDragMulti
	ModeResize
	ModeRotate
	ModeVertexDrag
	ModeRubberBand
	ModeMeasure
)

// Button identifies the pointer button that went down.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// PointerDownEvent carries everything the dispatch priority needs.
type PointerDownEvent struct {
	X, Y        float64 // world space
	Button      Button
	SpaceHeld   bool
	ShiftHeld   bool
	PanX, PanY  float64
	Zoom        float64
	Fullscreen  bool
}

// Selection is the current set of selected furniture ids and, mutually
// exclusively, a selected opening.
type Selection struct {
	FurnitureIDs []string
	OpeningKind  hittest.OpeningKind
	OpeningID    string
}

func (s Selection) contains(id string) bool {
	for _, existing := range s.FurnitureIDs {
		if existing == id {
			return true
		}
	}
	return false
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// MeasureState is the in-progress or completed measurement ruler.
type MeasureState struct {
	HasStart bool
	StartX   float64
	StartY   float64
	EndX     float64
	EndY     float64
}

// Machine holds interaction state that is not part of the persisted
// scene: the active tool/mode, selection, in-progress drag/resize/
// rotate/vertex-drag/rubber-band/measure state, snap guides, and the
// collision flag.
type Machine struct {
	Tool      Tool
	Mode      Mode
	Selection Selection
	Guides    []snap.Guide
	Collision bool
	Measure   MeasureState
	RubberBand geometry.Rect

	spacePanActive bool

	dragStartWX, dragStartWY float64
	dragOrigins              map[string]geometry.Point // furniture id -> original center, for drag-multi delta
	dragItemID                string                     // furniture id for drag-single/resize/rotate
	dragOrigW, dragOrigH      float64
	dragOrigRotation          float64
	resizeHandle              hittest.ResizeHandle
	vertexIndex               int

	sceneDirty bool // true once a mutating mode has changed the scene since pointer-down
}

// New returns a Machine in the select tool, idle mode.
func New() *Machine {
	return &Machine{Tool: ToolSelect, Mode: ModeIdle, vertexIndex: -1}
}

// SetTool switches the active tool and resets to idle mode.
func (m *Machine) SetTool(t Tool) {
	m.Tool = t
	m.Mode = ModeIdle
}

// PointerDown runs the hit-test dispatch priority against s and returns the
// (possibly mutated) scene. Door/window insertion and eraser deletion
// commit immediately; every other branch only arms a mode, leaving the
// commit to PointerUp.
func (m *Machine) PointerDown(s scene.Scene, idx *spatialindex.Hash, ev PointerDownEvent) scene.Scene {
	m.sceneDirty = false

	switch {
	case ev.Button == ButtonRight:
		// Context menu is a host UI concern; the state machine leaves
		// the scene and its own state unchanged on a right-button press.
		return s

	case ev.Button == ButtonMiddle || ev.SpaceHeld || m.Tool == ToolPan:
		m.Mode = ModePan
		m.dragStartWX, m.dragStartWY = ev.X, ev.Y
		return s

	case m.Tool == ToolEraser:
		return m.eraseAt(s, idx, ev)

	case m.Tool == ToolMeasure:
		m.Mode = ModeMeasure
		if !m.Measure.HasStart {
			m.Measure = MeasureState{HasStart: true, StartX: ev.X, StartY: ev.Y, EndX: ev.X, EndY: ev.Y}
		} else {
			m.Measure.EndX, m.Measure.EndY = ev.X, ev.Y
			m.Measure.HasStart = false
		}
		return s

	case m.Tool == ToolDoor || m.Tool == ToolWindow:
		return m.insertOpening(s, ev)

	case m.Tool == ToolSelect:
		return m.selectDispatch(s, idx, ev)
	}
	return s
}

func (m *Machine) eraseAt(s scene.Scene, idx *spatialindex.Hash, ev PointerDownEvent) scene.Scene {
	if f, ok := hittest.FurnitureAt(idx, ev.X, ev.Y); ok {
		m.Mode = ModeIdle
		m.sceneDirty = true
		return scene.Delete(s, f.ID)
	}
	if hit, ok := hittest.OpeningAt(s.Walls, s.Doors, s.Windows, ev.X, ev.Y, ev.Zoom); ok {
		m.Mode = ModeIdle
		m.sceneDirty = true
		if hit.Kind == hittest.OpeningDoor {
			return scene.RemoveDoor(s, hit.ID)
		}
		return scene.RemoveWindow(s, hit.ID)
	}
	return s
}

func (m *Machine) insertOpening(s scene.Scene, ev PointerDownEvent) scene.Scene {
	segments := wallSegments(s.Walls)
	nearest, ok := geometry.NearestWall(ev.X, ev.Y, segments, 1.0)
	if !ok {
		return s
	}
	m.sceneDirty = true
	if m.Tool == ToolDoor {
		return scene.AddDoorToWall(s, nearest.Wall.ID, nearest.T)
	}
	return scene.AddWindowToWall(s, nearest.Wall.ID, nearest.T)
}

func wallSegments(walls []scene.Wall) []geometry.Segment {
	segments := make([]geometry.Segment, len(walls))
	for i, w := range walls {
		segments[i] = geometry.Segment{ID: w.ID, X1: w.X1, Y1: w.Y1, X2: w.X2, Y2: w.Y2, Length: w.Length, Angle: w.Angle}
	}
	return segments
}

func (m *Machine) selectDispatch(s scene.Scene, idx *spatialindex.Hash, ev PointerDownEvent) scene.Scene {
	if len(m.Selection.FurnitureIDs) > 0 {
		if rect, ok := selectionRect(s, m.Selection.FurnitureIDs); ok {
			if m.RotationHandleHit(rect, ev) {
				m.Mode = ModeRotate
				m.dragItemID = m.Selection.FurnitureIDs[0]
				f := findFurniture(s, m.dragItemID)
				m.dragOrigRotation = f.Rotation
				m.dragStartWX, m.dragStartWY = ev.X, ev.Y
				return s
			}
			if handle, ok := hittest.ResizeHandleAt(rect, ev.X, ev.Y, ev.Zoom); ok {
				m.Mode = ModeResize
				m.resizeHandle = handle
				m.dragItemID = m.Selection.FurnitureIDs[0]
				f := findFurniture(s, m.dragItemID)
				m.dragOrigW, m.dragOrigH = f.W, f.H
				m.dragStartWX, m.dragStartWY = ev.X, ev.Y
				return s
			}
		}
	}

	if ev.Fullscreen {
		if vi := hittest.VertexAt(s.Room.Vertices, ev.X, ev.Y, ev.Zoom); vi >= 0 {
			m.Mode = ModeVertexDrag
			m.vertexIndex = vi
			return s
		}
	}

	if f, ok := hittest.FurnitureAt(idx, ev.X, ev.Y); ok {
		if ev.ShiftHeld {
			if m.Selection.contains(f.ID) {
				m.Selection.FurnitureIDs = without(m.Selection.FurnitureIDs, f.ID)
			} else {
				m.Selection.FurnitureIDs = append(append([]string(nil), m.Selection.FurnitureIDs...), f.ID)
			}
			m.Mode = ModeIdle
			return s
		}

		wasMulti := len(m.Selection.FurnitureIDs) > 1 && m.Selection.contains(f.ID)
		if !wasMulti {
			m.Selection = Selection{FurnitureIDs: []string{f.ID}}
		}
		if f.Locked {
			m.Mode = ModeIdle
			return s
		}

		m.dragStartWX, m.dragStartWY = ev.X, ev.Y
		if wasMulti {
			m.Mode = ModeDragMulti
			m.dragOrigins = originsOf(s, m.Selection.FurnitureIDs)
		} else {
			m.Mode = ModeDragSingle
			m.dragItemID = f.ID
		}
		return s
	}

	if hit, ok := hittest.OpeningAt(s.Walls, s.Doors, s.Windows, ev.X, ev.Y, ev.Zoom); ok {
		m.Selection = Selection{OpeningKind: hit.Kind, OpeningID: hit.ID}
		m.Mode = ModeIdle
		return s
	}

	m.Selection = Selection{}
	m.Mode = ModeRubberBand
	m.RubberBand = geometry.Rect{X: ev.X, Y: ev.Y, W: 0, H: 0}
	return s
}

// RotationHandleHit exposes the rotation-handle test so PointerDown can
// be read top-to-bottom without a nested closure.
func (m *Machine) RotationHandleHit(rect geometry.Rect, ev PointerDownEvent) bool {
	return hittest.RotationHandleAt(rect, ev.X, ev.Y, ev.Zoom)
}

func selectionRect(s scene.Scene, ids []string) (geometry.Rect, bool) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for _, f := range s.Furniture {
		if !set[f.ID] {
			continue
		}
		r := geometry.CenterRect(f.X, f.Y, f.W, f.H)
		if r.MinX() < minX {
			minX = r.MinX()
		}
		if r.MinY() < minY {
			minY = r.MinY()
		}
		if r.MaxX() > maxX {
			maxX = r.MaxX()
		}
		if r.MaxY() > maxY {
			maxY = r.MaxY()
		}
		found = true
	}
	if !found {
		return geometry.Rect{}, false
	}
	return geometry.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

func originsOf(s scene.Scene, ids []string) map[string]geometry.Point {
	out := make(map[string]geometry.Point, len(ids))
	for _, id := range ids {
		f := findFurniture(s, id)
		out[id] = geometry.Point{X: f.X, Y: f.Y}
	}
	return out
}

func findFurniture(s scene.Scene, id string) scene.Furniture {
	for _, f := range s.Furniture {
		if f.ID == id {
			return f
		}
	}
	return scene.Furniture{}
}
