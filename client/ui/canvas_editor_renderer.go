package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"github.com/gofloorplan/editor/internal/render"
)

// canvasEditorRenderer implements fyne.WidgetRenderer for CanvasEditor.
// It rebuilds its object tree from a fresh render.Frame on every
// Refresh rather than mutating canvas objects in place, mirroring
// board_view_renderer.go's refreshLayout/showBoard pattern.
type canvasEditorRenderer struct {
	widget     *CanvasEditor
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func newCanvasEditorRenderer(c *CanvasEditor) *canvasEditorRenderer {
	r := &canvasEditorRenderer{
		widget:     c,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
	}
	r.rebuild()
	return r
}

func (r *canvasEditorRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))
}

func (r *canvasEditorRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *canvasEditorRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.widget)
}

func (r *canvasEditorRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *canvasEditorRenderer) Destroy() {}

// rebuild walks one render.Frame and emits the matching fyne.CanvasObjects
// in the same 16-step order, so later steps draw on top of earlier ones.
func (r *canvasEditorRenderer) rebuild() {
	frame := r.widget.frame()
	objs := []fyne.CanvasObject{r.background}

	for _, l := range frame.Grid {
		objs = append(objs, lineObject(l))
	}
	objs = append(objs, polygonObject(frame.Floor))
	for _, l := range frame.Walls {
		objs = append(objs, lineObject(l))
	}
	for _, o := range frame.Openings {
		objs = append(objs, lineObject(o.Line))
		if o.Arc != nil {
			objs = append(objs, arcObject(*o.Arc))
		}
	}
	for _, t := range frame.Traffic {
		for _, seg := range t.Segments {
			objs = append(objs, lineObject(seg))
		}
	}
	for _, rect := range frame.Clearances {
		objs = append(objs, rectObject(rect))
	}
	for _, f := range frame.Furniture {
		objs = append(objs, rectObject(f.Rect))
		if f.Label != nil {
			objs = append(objs, labelObject(*f.Label))
		}
	}
	if frame.Selection != nil {
		objs = append(objs, rectObject(frame.Selection.Box))
		for _, h := range frame.Selection.Handles {
			objs = append(objs, circleObject(h))
		}
		objs = append(objs, circleObject(frame.Selection.Rotation))
		for _, g := range frame.Selection.Groups {
			objs = append(objs, rectObject(g))
		}
	}
	if frame.RubberBand != nil {
		objs = append(objs, rectObject(*frame.RubberBand))
	}
	for _, v := range frame.Vertices {
		objs = append(objs, circleObject(v))
	}
	for _, l := range frame.Guides {
		objs = append(objs, lineObject(l))
	}
	for _, lbl := range frame.Dimensions {
		objs = append(objs, labelObject(lbl))
	}
	if frame.Measure != nil {
		objs = append(objs, lineObject(frame.Measure.Line))
		objs = append(objs, labelObject(frame.Measure.Label))
	}

	r.objects = objs
}

func toNRGBA(c render.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func worldToScreen(x, y float64) fyne.Position {
	return fyne.NewPos(float32(x*render.PxPerFt), float32(y*render.PxPerFt))
}

func lineObject(l render.Line) *canvas.Line {
	line := canvas.NewLine(toNRGBA(l.Color))
	line.StrokeWidth = float32(l.Width)
	if l.Dashed {
		line.StrokeWidth = float32(math.Max(l.Width, 1))
	}
	line.Position1 = worldToScreen(l.X1, l.Y1)
	line.Position2 = worldToScreen(l.X2, l.Y2)
	return line
}

// polygonObject approximates the floor fill with its axis-aligned
// bounding rectangle. Supported room shapes are almost always
// rectilinear, so this is a faithful fill for the common case; an
// L/U/T room's concave notch is still outlined correctly by the wall
// strokes drawn on top.
func polygonObject(p render.Polygon) *canvas.Rectangle {
	rect := canvas.NewRectangle(color.Transparent)
	if p.Filled {
		rect.FillColor = toNRGBA(p.Fill)
	}
	if len(p.Points) == 0 {
		return rect
	}
	minX, minY, maxX, maxY := p.Points[0].X, p.Points[0].Y, p.Points[0].X, p.Points[0].Y
	for _, pt := range p.Points[1:] {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	rect.Move(worldToScreen(minX, minY))
	rect.Resize(fyne.NewSize(float32((maxX-minX)*render.PxPerFt), float32((maxY-minY)*render.PxPerFt)))
	return rect
}

func rectObject(rc render.Rect) *canvas.Rectangle {
	rect := canvas.NewRectangle(color.Transparent)
	if rc.Filled {
		rect.FillColor = toNRGBA(rc.Fill)
	}
	if rc.Stroked {
		rect.StrokeColor = toNRGBA(rc.Stroke)
		rect.StrokeWidth = float32(rc.Width)
	}
	pos := worldToScreen(rc.X, rc.Y)
	size := fyne.NewSize(float32(rc.W*render.PxPerFt), float32(rc.H*render.PxPerFt))
	rect.Move(pos)
	rect.Resize(size)
	return rect
}

func circleObject(c render.Circle) *canvas.Circle {
	circle := canvas.NewCircle(color.Transparent)
	if c.Filled {
		circle.FillColor = toNRGBA(c.Fill)
	}
	if c.Stroked {
		circle.StrokeColor = toNRGBA(c.Stroke)
		circle.StrokeWidth = 1
	}
	pos := worldToScreen(c.CX-c.R, c.CY-c.R)
	size := fyne.NewSize(float32(c.R*2*render.PxPerFt), float32(c.R*2*render.PxPerFt))
	circle.Move(pos)
	circle.Resize(size)
	return circle
}

func arcObject(a render.Arc) *canvas.Circle {
	// Fyne has no native arc primitive; the swing arc is drawn as the
	// full circle outline of radius R around the arc's center.
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = color.NRGBA{R: 40, G: 40, B: 40, A: 160}
	circle.StrokeWidth = 1
	pos := worldToScreen(a.CX-a.R, a.CY-a.R)
	size := fyne.NewSize(float32(a.R*2*render.PxPerFt), float32(a.R*2*render.PxPerFt))
	circle.Move(pos)
	circle.Resize(size)
	return circle
}

func labelObject(l render.Label) *canvas.Text {
	text := canvas.NewText(l.Text, toNRGBA(l.Color))
	text.TextSize = float32(l.Size)
	text.Move(worldToScreen(l.X, l.Y))
	return text
}
