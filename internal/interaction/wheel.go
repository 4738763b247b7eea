package interaction

import (
	"github.com/gofloorplan/editor/internal/hittest"
	"github.com/gofloorplan/editor/internal/scene"
)

// MinZoom and MaxZoom bound the viewport scale.
const (
	MinZoom = 0.4
	MaxZoom = 3.0
)

// WheelEvent carries the raw deltas and modifier state of one wheel
// tick, already classified by the caller (ctrl/meta held, pinch gesture,
// or a two-finger-pan-shaped delta).
type WheelEvent struct {
	CursorX, CursorY float64 // screen space
	DeltaX, DeltaY   float64 // screen pixels
	CtrlOrMeta       bool
	Pinch            bool
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// Wheel applies one wheel tick's zoom or pan to s:
//   - ctrl/meta held or a pinch gesture zooms toward the cursor at
//     1.04/0.96 per tick, clamped to [0.4, 3], keeping the world point
//     under the cursor fixed.
//   - a horizontal delta, or a small vertical delta with no modifier,
//     pans by (-deltaX, -deltaY).
//   - otherwise, zooms toward the cursor at 1.08/0.92 per tick.
func Wheel(s scene.Scene, ev WheelEvent) scene.Scene {
	switch {
	case ev.CtrlOrMeta || ev.Pinch:
		return zoomToward(s, ev.CursorX, ev.CursorY, zoomFactor(ev.DeltaY, 1.04, 0.96))

	case ev.DeltaX != 0 || (ev.DeltaY != 0 && absf(ev.DeltaY) < 12 && !ev.CtrlOrMeta):
		next := s
		next.PanX -= ev.DeltaX
		next.PanY -= ev.DeltaY
		return next

	default:
		return zoomToward(s, ev.CursorX, ev.CursorY, zoomFactor(ev.DeltaY, 1.08, 0.92))
	}
}

func zoomFactor(deltaY, zoomIn, zoomOut float64) float64 {
	if deltaY < 0 {
		return zoomIn
	}
	return zoomOut
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// zoomToward scales s.Zoom by factor, clamped, and adjusts PanX/PanY so
// the world point under (cursorX,cursorY) stays fixed on screen.
func zoomToward(s scene.Scene, cursorX, cursorY, factor float64) scene.Scene {
	newZoom := clampZoom(s.Zoom * factor)
	if newZoom == s.Zoom {
		return s
	}

	worldX, worldY := hittest.ToWorld(cursorX, cursorY, s.PanX, s.PanY, s.Zoom)

	next := s
	next.Zoom = newZoom
	next.PanX = cursorX - worldX*hittest.PxPerFt*newZoom
	next.PanY = cursorY - worldY*hittest.PxPerFt*newZoom
	return next
}
