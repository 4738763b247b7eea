package interaction

import (
	"github.com/gofloorplan/editor/internal/geometry"
	"github.com/gofloorplan/editor/internal/hittest"
	"github.com/gofloorplan/editor/internal/history"
	"github.com/gofloorplan/editor/internal/scene"
)

// Key identifies a keyboard shortcut recognized in fullscreen mode
//. Text-field focus suppression is the host UI's responsibility;
// Key never represents a text character.
type Key int

const (
	KeyEscape Key = iota
	KeyDelete
	KeyR
	KeyUndo
	KeyRedo
	KeyDuplicate
	KeySelectAll
	KeyFitRoom
	KeyToggleGrid
	KeyToolSelect
	KeyToolPan
	KeyToolDoor
	KeyToolWindow
	KeyToolMeasure
	KeyToolEraser
	KeyZoomIn
	KeyZoomOut
	KeyNudgeUp
	KeyNudgeDown
	KeyNudgeLeft
	KeyNudgeRight
	KeySpaceDown
	KeySpaceUp
)

var toolKeys = map[Key]Tool{
	KeyToolSelect:  ToolSelect,
	KeyToolPan:     ToolPan,
	KeyToolDoor:    ToolDoor,
	KeyToolWindow:  ToolWindow,
	KeyToolMeasure: ToolMeasure,
	KeyToolEraser:  ToolEraser,
}

// NudgeStep is 0.5 ft, or 0.1 ft with Shift held.
func NudgeStep(shiftHeld bool) float64 {
	if shiftHeld {
		return 0.1
	}
	return 0.5
}

// KeyDown dispatches one fullscreen keyboard shortcut. h is the history
// stack (for undo/redo) and coalescer batches nudge runs into one entry;
// both may be nil if the key is not Undo/Redo/Nudge*.
func (m *Machine) KeyDown(s scene.Scene, key Key, shiftHeld bool, h *history.History, coalescer *history.Coalescer) scene.Scene {
	switch key {
	case KeyEscape:
		m.Selection = Selection{}
		m.Guides = nil
		m.Measure = MeasureState{}
		return s

	case KeyDelete:
		return m.deleteSelection(s)

	case KeyR:
		if len(m.Selection.FurnitureIDs) == 0 {
			return s
		}
		return scene.RotateMany(s, m.Selection.FurnitureIDs, 90)

	case KeyUndo:
		if h == nil {
			return s
		}
		if snap, ok := h.Undo(); ok {
			return s.WithSnapshot(snap)
		}
		return s

	case KeyRedo:
		if h == nil {
			return s
		}
		if snap, ok := h.Redo(); ok {
			return s.WithSnapshot(snap)
		}
		return s

	case KeyDuplicate:
		if len(m.Selection.FurnitureIDs) == 0 {
			return s
		}
		return scene.DuplicateMany(s, m.Selection.FurnitureIDs)

	case KeySelectAll:
		ids := make([]string, len(s.Furniture))
		for i, f := range s.Furniture {
			ids[i] = f.ID
		}
		m.Selection = Selection{FurnitureIDs: ids}
		return s

	case KeyFitRoom:
		return fitRoom(s)

	case KeyToggleGrid:
		next := s
		next.ShowGrid = !next.ShowGrid
		return next

	case KeyZoomIn:
		next := s
		next.Zoom = clampZoom(next.Zoom * 1.2)
		return next

	case KeyZoomOut:
		next := s
		next.Zoom = clampZoom(next.Zoom / 1.2)
		return next

	case KeyNudgeUp, KeyNudgeDown, KeyNudgeLeft, KeyNudgeRight:
		return m.nudge(s, key, shiftHeld, coalescer)

	case KeySpaceDown:
		m.spacePanActive = true
		return s

	case KeySpaceUp:
		m.spacePanActive = false
		return s
	}

	if tool, ok := toolKeys[key]; ok {
		m.SetTool(tool)
	}
	return s
}

func (m *Machine) deleteSelection(s scene.Scene) scene.Scene {
	if m.Selection.OpeningID != "" {
		id := m.Selection.OpeningID
		kind := m.Selection.OpeningKind
		m.Selection = Selection{}
		if kind == hittest.OpeningDoor {
			return scene.RemoveDoor(s, id)
		}
		return scene.RemoveWindow(s, id)
	}
	if len(m.Selection.FurnitureIDs) == 0 {
		return s
	}
	next := scene.DeleteMany(s, m.Selection.FurnitureIDs)
	m.Selection = Selection{}
	return next
}

// nudge moves the current selection by NudgeStep(shiftHeld) feet in the
// direction of key, coalescing the resulting snapshot into one history
// entry per run via coalescer.
func (m *Machine) nudge(s scene.Scene, key Key, shiftHeld bool, coalescer *history.Coalescer) scene.Scene {
	if len(m.Selection.FurnitureIDs) == 0 {
		return s
	}
	step := NudgeStep(shiftHeld)
	var dx, dy float64
	switch key {
	case KeyNudgeUp:
		dy = -step
	case KeyNudgeDown:
		dy = step
	case KeyNudgeLeft:
		dx = -step
	case KeyNudgeRight:
		dx = step
	}

	next := scene.MoveMany(s, m.Selection.FurnitureIDs, dx, dy)
	if coalescer != nil {
		coalescer.Nudge(next.ToSnapshot())
	}
	return next
}

func fitRoom(s scene.Scene) scene.Scene {
	if len(s.Room.Vertices) == 0 {
		return s
	}
	vertices := make([]geometry.Vertex, len(s.Room.Vertices))
	for i, v := range s.Room.Vertices {
		vertices[i] = geometry.Vertex{X: v.X, Y: v.Y}
	}
	bounds := geometry.PolygonBounds(vertices)

	next := s
	next.Zoom = 1
	next.PanX = -bounds.MinX * 32
	next.PanY = -bounds.MinY * 32
	return next
}
