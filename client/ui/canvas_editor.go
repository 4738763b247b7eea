// Package ui provides Client UI layer components for the floor-plan
// editor following iDesign methodology: Client.UI sits above
// Client.Managers; besides the manager it imports internal/interaction's
// event and key types, internal/render's frame plan, and
// internal/templates' shape names.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gofloorplan/editor/client/managers"
	"github.com/gofloorplan/editor/internal/interaction"
	"github.com/gofloorplan/editor/internal/render"
)

// CanvasEditor is the Fyne custom widget hosting the floor-plan view.
// It owns no editing state of its own: every input event is translated
// into a managers.WorkflowManager.Edit() call, and every repaint reads
// back the manager's current scene and overlays.
type CanvasEditor struct {
	widget.BaseWidget

	workflowManager managers.WorkflowManager

	lastMouseX, lastMouseY float32
	shiftHeld              bool

	onFrameChanged func()
}

// NewCanvasEditor wires wm into a fresh widget and extends the base
// widget so Fyne drives CreateRenderer.
func NewCanvasEditor(wm managers.WorkflowManager) *CanvasEditor {
	c := &CanvasEditor{workflowManager: wm}
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget.
func (c *CanvasEditor) CreateRenderer() fyne.WidgetRenderer {
	return newCanvasEditorRenderer(c)
}

// SetOnFrameChanged registers a callback fired after every mutating
// event, letting the app shell update undo/redo button state.
func (c *CanvasEditor) SetOnFrameChanged(fn func()) {
	c.onFrameChanged = fn
}

func (c *CanvasEditor) frame() render.Frame {
	s := c.workflowManager.Edit().Scene()
	ov := c.workflowManager.Edit().Overlays()
	return render.Build(s, ov)
}

func (c *CanvasEditor) notify() {
	c.Refresh()
	if c.onFrameChanged != nil {
		c.onFrameChanged()
	}
}

func (c *CanvasEditor) worldCoords(pos fyne.Position) (float64, float64) {
	s := c.workflowManager.Edit().Scene()
	zoom := s.Zoom
	if zoom == 0 {
		zoom = 1
	}
	wx := (float64(pos.X)/render.PxPerFt)/zoom + s.PanX
	wy := (float64(pos.Y)/render.PxPerFt)/zoom + s.PanY
	return wx, wy
}

// MouseDown implements desktop.Mouseable. A plain Tappable/Draggable
// pair cannot distinguish "press" from "press that becomes a drag"
// until a movement threshold fires; precise resize/rotate/vertex
// dragging needs the down event itself, so this widget reaches for
// desktop.Mouseable instead.
func (c *CanvasEditor) MouseDown(ev *desktop.MouseEvent) {
	wx, wy := c.worldCoords(ev.Position)
	c.lastMouseX, c.lastMouseY = ev.Position.X, ev.Position.Y

	button := interaction.ButtonLeft
	switch ev.Button {
	case desktop.MouseButtonSecondary:
		button = interaction.ButtonRight
	case desktop.MouseButtonTertiary:
		button = interaction.ButtonMiddle
	}

	s := c.workflowManager.Edit().Scene()
	c.workflowManager.Edit().PointerDown(interaction.PointerDownEvent{
		X: wx, Y: wy,
		Button:     button,
		ShiftHeld:  ev.Modifier&fyne.KeyModifierShift != 0,
		PanX:       s.PanX, PanY: s.PanY,
		Zoom:       s.Zoom,
		Fullscreen: true,
	})
	c.shiftHeld = ev.Modifier&fyne.KeyModifierShift != 0
	c.notify()
}

// MouseUp implements desktop.Mouseable.
func (c *CanvasEditor) MouseUp(ev *desktop.MouseEvent) {
	c.workflowManager.Edit().PointerUp()
	c.notify()
}

// Dragged implements fyne.Draggable for pointer-move-while-down.
func (c *CanvasEditor) Dragged(ev *fyne.DragEvent) {
	wx, wy := c.worldCoords(ev.Position)
	s := c.workflowManager.Edit().Scene()
	c.workflowManager.Edit().PointerMove(interaction.PointerMoveEvent{
		X: wx, Y: wy,
		ScreenDX: ev.Dragged.DX, ScreenDY: ev.Dragged.DY,
		ShiftHeld: c.shiftHeld,
		Zoom:      s.Zoom,
	})
	c.lastMouseX, c.lastMouseY = ev.Position.X, ev.Position.Y
	c.notify()
}

// DragEnd implements fyne.Draggable.
func (c *CanvasEditor) DragEnd() {
	c.workflowManager.Edit().PointerUp()
	c.notify()
}

// Scrolled implements fyne.Scrollable, driving zoom and pan.
func (c *CanvasEditor) Scrolled(ev *fyne.ScrollEvent) {
	c.workflowManager.Edit().Wheel(interaction.WheelEvent{
		CursorX: float64(ev.Position.X), CursorY: float64(ev.Position.Y),
		DeltaX: float64(ev.Scrolled.DX), DeltaY: float64(ev.Scrolled.DY),
	})
	c.notify()
}

// TypedKey implements fyne.Focusable's keyboard hook (via the app
// shell's canvas.Focus, not desktop.Keyable). fyne.KeyEvent carries no
// modifier state, so the Shift flag passed on is the one recorded at
// the last MouseDown.
func (c *CanvasEditor) TypedKey(ev *fyne.KeyEvent) {
	key, ok := mapKey(ev.Name)
	if !ok {
		return
	}
	c.workflowManager.Edit().KeyDown(key, c.shiftHeld)
	c.notify()
}

// TypedRune is required by fyne.Focusable; the editor has no text
// entry, so printable runes are ignored.
func (c *CanvasEditor) TypedRune(rune) {}

// FocusGained and FocusLost implement fyne.Focusable.
func (c *CanvasEditor) FocusGained() {}
func (c *CanvasEditor) FocusLost()   {}

func mapKey(name fyne.KeyName) (interaction.Key, bool) {
	switch name {
	case fyne.KeyEscape:
		return interaction.KeyEscape, true
	case fyne.KeyDelete, fyne.KeyBackspace:
		return interaction.KeyDelete, true
	case fyne.KeyR:
		return interaction.KeyR, true
	case fyne.KeyD:
		return interaction.KeyDuplicate, true
	case fyne.KeyA:
		return interaction.KeySelectAll, true
	case fyne.KeyF:
		return interaction.KeyFitRoom, true
	case fyne.KeyG:
		return interaction.KeyToggleGrid, true
	case fyne.KeyZ:
		return interaction.KeyUndo, true
	case fyne.KeyY:
		return interaction.KeyRedo, true
	case fyne.KeyPlus, fyne.KeyEqual:
		return interaction.KeyZoomIn, true
	case fyne.KeyMinus:
		return interaction.KeyZoomOut, true
	case fyne.KeyUp:
		return interaction.KeyNudgeUp, true
	case fyne.KeyDown:
		return interaction.KeyNudgeDown, true
	case fyne.KeyLeft:
		return interaction.KeyNudgeLeft, true
	case fyne.KeyRight:
		return interaction.KeyNudgeRight, true
	case fyne.Key1:
		return interaction.KeyToolSelect, true
	case fyne.Key2:
		return interaction.KeyToolPan, true
	case fyne.Key3:
		return interaction.KeyToolDoor, true
	case fyne.Key4:
		return interaction.KeyToolWindow, true
	case fyne.Key5:
		return interaction.KeyToolEraser, true
	case fyne.Key6:
		return interaction.KeyToolMeasure, true
	default:
		return 0, false
	}
}
