package interaction

import (
	"testing"

	"github.com/gofloorplan/editor/internal/hittest"
	"github.com/gofloorplan/editor/internal/scene"
	"github.com/stretchr/testify/assert"
)

func zoomScene() scene.Scene {
	return scene.Scene{Zoom: 1}
}

func TestWheelCtrlZoomsInOnNegativeDelta(t *testing.T) {
	s := zoomScene()
	next := Wheel(s, WheelEvent{CursorX: 100, CursorY: 100, DeltaY: -10, CtrlOrMeta: true})
	assert.InDelta(t, 1.04, next.Zoom, 1e-9)
}

func TestWheelCtrlZoomsOutOnPositiveDelta(t *testing.T) {
	s := zoomScene()
	next := Wheel(s, WheelEvent{CursorX: 100, CursorY: 100, DeltaY: 10, CtrlOrMeta: true})
	assert.InDelta(t, 0.96, next.Zoom, 1e-9)
}

func TestWheelZoomClampsToMinMax(t *testing.T) {
	s := zoomScene()
	s.Zoom = MinZoom
	next := Wheel(s, WheelEvent{CursorX: 0, CursorY: 0, DeltaY: 10, CtrlOrMeta: true})
	assert.Equal(t, MinZoom, next.Zoom)

	s2 := zoomScene()
	s2.Zoom = MaxZoom
	next2 := Wheel(s2, WheelEvent{CursorX: 0, CursorY: 0, DeltaY: -10, CtrlOrMeta: true})
	assert.Equal(t, MaxZoom, next2.Zoom)
}

func TestWheelZoomKeepsCursorWorldPointFixed(t *testing.T) {
	s := zoomScene()
	s.PanX, s.PanY = 20, 30
	wantX, wantY := hittest.ToWorld(200, 150, s.PanX, s.PanY, s.Zoom)

	next := Wheel(s, WheelEvent{CursorX: 200, CursorY: 150, DeltaY: -10, CtrlOrMeta: true})

	gotX, gotY := hittest.ToWorld(200, 150, next.PanX, next.PanY, next.Zoom)
	assert.InDelta(t, wantX, gotX, 1e-9)
	assert.InDelta(t, wantY, gotY, 1e-9)
	assert.NotEqual(t, s.Zoom, next.Zoom)
}

func TestWheelHorizontalDeltaPans(t *testing.T) {
	s := zoomScene()
	next := Wheel(s, WheelEvent{DeltaX: 5, DeltaY: 2})
	assert.Equal(t, -5.0, next.PanX)
	assert.Equal(t, -2.0, next.PanY)
}

func TestWheelPlainVerticalZooms(t *testing.T) {
	s := zoomScene()
	next := Wheel(s, WheelEvent{DeltaY: -20})
	assert.InDelta(t, 1.08, next.Zoom, 1e-9)
}
