// Package render turns a scene, its derived advisory overlays, and the
// interaction state machine's transient state into an ordered list of
// draw primitives. It is pure — no Fyne import — so the frame plan is
// unit-testable; client/ui's CanvasEditor renderer walks the plan and
// emits fyne.CanvasObjects from it, rebuilding its object tree from the
// current scene on each Refresh rather than mutating canvas objects in
// place.
package render

import (
	"math"

	"github.com/gofloorplan/editor/internal/clearance"
	"github.com/gofloorplan/editor/internal/geometry"
	"github.com/gofloorplan/editor/internal/hittest"
	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/snap"
	"github.com/gofloorplan/editor/internal/utilities"
)

// PxPerFt is the baseline pixels-per-foot scale at zoom=1.
const PxPerFt = hittest.PxPerFt

// Overlays carries the interaction-local state the frame plan needs
// beyond the persisted scene: current selection, in-progress guides,
// rubber-band rect, collision flag, and measurement ruler.
type Overlays struct {
	SelectedFurniture []string
	SelectedOpening   hittest.OpeningHit
	Guides            []snap.Guide
	Collision         bool
	RubberBand        geometry.Rect
	HasRubberBand     bool
	Measure           MeasureOverlay
	Fullscreen        bool
}

// MeasureOverlay is the active or completed measurement ruler.
type MeasureOverlay struct {
	Active           bool
	StartX, StartY   float64
	EndX, EndY       float64
}

// Line is a single stroked segment, dashed or solid.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64 // screen pixels, already zoom-compensated
	Dashed         bool
	Color          Color
}

// Polygon is a closed, optionally filled shape.
type Polygon struct {
	Points []geometry.Point
	Fill   Color
	Filled bool
	Stroke Color
	Stroked bool
	Width   float64
}

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	X, Y, W, H float64
	Rotation   float64 // degrees, about the rect's center
	Fill       Color
	Filled     bool
	Stroke     Color
	Stroked    bool
	Width      float64
	Dashed     bool
}

// Circle is used for round/oval furniture and handle markers.
type Circle struct {
	CX, CY, R float64
	Fill      Color
	Filled    bool
	Stroke    Color
	Stroked   bool
}

// Arc renders a door swing.
type Arc struct {
	CX, CY, R          float64
	StartDeg, SweepDeg float64
	Dashed             bool
}

// Label is a positioned text string.
type Label struct {
	X, Y    float64
	Text    string
	Size    float64 // screen pixels, zoom-compensated
	Color   Color
}

// Color is a simple RGBA carrier, independent of image/color so this
// package stays Fyne/stdlib-image free; the client layer converts.
type Color struct {
	R, G, B, A uint8
}

var (
	colorGrid      = Color{200, 200, 200, 255}
	colorGridMinor = Color{230, 230, 230, 255}
	colorWallOuter = Color{40, 40, 40, 255}
	colorWallInner = Color{250, 250, 250, 255}
	colorFloor     = Color{235, 224, 201, 255}
	colorFurniture = Color{180, 200, 220, 255}
	colorSelected  = Color{60, 130, 246, 255}
	colorClearance = Color{255, 165, 0, 90}
	colorTraffic   = Color{120, 120, 255, 200}
	colorSnapGuide = Color{255, 0, 160, 200}
	colorCollision = Color{220, 40, 40, 255}
	colorMeasure   = Color{20, 20, 20, 255}
)

// Frame is the full ordered draw plan for one repaint.
type Frame struct {
	Grid       []Line
	Floor      Polygon
	Walls      []Line
	Openings   []openingDraw
	Traffic    []tracePath
	Clearances []Rect
	Furniture  []furnitureDraw
	Selection  *selectionDraw
	RubberBand *Rect
	Vertices   []Circle
	Guides     []Line
	Dimensions []Label
	Measure    *measureDraw
}

type openingDraw struct {
	Line Line
	Arc  *Arc
}

type tracePath struct {
	Segments []Line
}

type furnitureDraw struct {
	Rect     Rect
	Label    *Label
	Selected bool
}

type selectionDraw struct {
	Box     Rect
	Handles []Circle
	Rotation Circle
	Groups  []Rect
}

type measureDraw struct {
	Line  Line
	Label Label
}

// Build assembles the step-1..16 frame for s, given the current zoom
// and the interaction overlays. Screen-space widths/sizes are
// pre-divided by zoom so the caller can draw in world coordinates
// throughout and let a single world-to-screen transform (pan + scale by
// PxPerFt*zoom) place everything.
func Build(s scene.Scene, ov Overlays) Frame {
	var f Frame

	f.Grid = buildGrid(s)
	f.Floor = buildFloor(s)
	f.Walls = buildWalls(s, ov.Fullscreen)
	f.Openings = buildOpenings(s)

	if s.ShowTrafficFlow {
		f.Traffic = buildTraffic(s)
	}
	if s.ShowClearances {
		f.Clearances = buildClearances(s)
	}

	f.Furniture = buildFurniture(s, ov)
	f.Selection = buildSelection(s, ov)

	if ov.HasRubberBand {
		rb := ov.RubberBand
		f.RubberBand = &Rect{X: rb.X, Y: rb.Y, W: rb.W, H: rb.H, Stroked: true, Stroke: colorSelected, Dashed: true, Width: 1}
	}

	if ov.Fullscreen {
		f.Vertices = buildVertices(s, ov.Fullscreen)
	}

	f.Guides = buildGuides(s, ov.Guides)
	f.Dimensions = buildDimensions(s)

	if ov.Measure.Active {
		f.Measure = buildMeasure(ov.Measure)
	}

	return f
}

// buildGrid draws 1 ft coarse lines and 0.5 ft subdivisions when
// zoom > 1, clipped to the room's bounding box plus a 2 ft margin.
func buildGrid(s scene.Scene) []Line {
	vertices := toGeometryVertices(s.Room.Vertices)
	if len(vertices) == 0 {
		return nil
	}
	bounds := geometry.PolygonBounds(vertices)
	margin := 2.0
	minX, maxX := bounds.MinX-margin, bounds.MaxX+margin
	minY, maxY := bounds.MinY-margin, bounds.MaxY+margin

	step := 1.0
	if s.Zoom > 1 {
		step = 0.5
	}

	var lines []Line
	for x := snapDown(minX, step); x <= maxX; x += step {
		color := colorGrid
		if step == 0.5 && mod2(x, 1.0) != 0 {
			color = colorGridMinor
		}
		lines = append(lines, Line{X1: x, Y1: minY, X2: x, Y2: maxY, Width: 1, Color: color})
	}
	for y := snapDown(minY, step); y <= maxY; y += step {
		color := colorGrid
		if step == 0.5 && mod2(y, 1.0) != 0 {
			color = colorGridMinor
		}
		lines = append(lines, Line{X1: minX, Y1: y, X2: maxX, Y2: y, Width: 1, Color: color})
	}
	return lines
}

func snapDown(v, step float64) float64 {
	n := int(v / step)
	if v < 0 {
		n--
	}
	return float64(n) * step
}

func mod2(v, m float64) float64 {
	n := v / m
	return v - float64(int(n))*m
}

func buildFloor(s scene.Scene) Polygon {
	return Polygon{Points: pointsOf(s.Room.Vertices), Filled: true, Fill: colorFloor}
}

func pointsOf(vertices []scene.RoomVertex) []geometry.Point {
	points := make([]geometry.Point, len(vertices))
	for i, v := range vertices {
		points[i] = geometry.Point{X: v.X, Y: v.Y}
	}
	return points
}

func toGeometryVertices(vs []scene.RoomVertex) []geometry.Vertex {
	out := make([]geometry.Vertex, len(vs))
	for i, v := range vs {
		out[i] = geometry.Vertex{X: v.X, Y: v.Y}
	}
	return out
}

// wallWidth implements width ∝ √(1/zoom), clamped to a sane pixel range
//.
func wallWidth(zoom float64) float64 {
	if zoom <= 0 {
		zoom = 1
	}
	w := 4.0 / math.Sqrt(zoom)
	return clampF(w, 2, 8)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// buildWalls emits the outer/inner double-stroke outline.
func buildWalls(s scene.Scene, fullscreen bool) []Line {
	width := wallWidth(s.Zoom)
	lines := make([]Line, 0, len(s.Walls)*2)
	for _, w := range s.Walls {
		lines = append(lines, Line{X1: w.X1, Y1: w.Y1, X2: w.X2, Y2: w.Y2, Width: width, Color: colorWallOuter})
		lines = append(lines, Line{X1: w.X1, Y1: w.Y1, X2: w.X2, Y2: w.Y2, Width: width * 0.4, Color: colorWallInner})
	}
	return lines
}

func findWall(walls []scene.Wall, id string) (scene.Wall, bool) {
	for _, w := range walls {
		if w.ID == id {
			return w, true
		}
	}
	return scene.Wall{}, false
}

// buildOpenings places doors/windows along their host wall and draws a
// dashed swing arc for doors.
func buildOpenings(s scene.Scene) []openingDraw {
	var out []openingDraw
	for _, d := range s.Doors {
		w, ok := findWall(s.Walls, d.WallID)
		if !ok {
			continue
		}
		seg := geometry.Segment{X1: w.X1, Y1: w.Y1, X2: w.X2, Y2: w.Y2, Length: w.Length, Angle: w.Angle}
		center := geometry.PointAt(seg, d.Position)
		half := d.Width / 2
		dx, dy := half*cos(seg.Angle), half*sin(seg.Angle)
		draw := openingDraw{Line: Line{X1: center.X - dx, Y1: center.Y - dy, X2: center.X + dx, Y2: center.Y + dy, Width: 3}}
		startDeg := seg.Angle * 180 / math.Pi
		draw.Arc = &Arc{CX: center.X - dx, CY: center.Y - dy, R: d.Width, StartDeg: startDeg, SweepDeg: 90, Dashed: true}
		out = append(out, draw)
	}
	for _, win := range s.Windows {
		w, ok := findWall(s.Walls, win.WallID)
		if !ok {
			continue
		}
		seg := geometry.Segment{X1: w.X1, Y1: w.Y1, X2: w.X2, Y2: w.Y2, Length: w.Length, Angle: w.Angle}
		center := geometry.PointAt(seg, win.Position)
		half := win.Width / 2
		dx, dy := half*cos(seg.Angle), half*sin(seg.Angle)
		out = append(out, openingDraw{Line: Line{X1: center.X - dx, Y1: center.Y - dy, X2: center.X + dx, Y2: center.Y + dy, Width: 2, Color: colorWallInner}})
	}
	return out
}

func cos(rad float64) float64 { return math.Cos(rad) }
func sin(rad float64) float64 { return math.Sin(rad) }

func buildTraffic(s scene.Scene) []tracePath {
	segments := wallSegments(s.Walls)
	paths := clearance.ComputeTrafficPaths(s.Furniture, s.Doors, segments, s.Room)
	out := make([]tracePath, 0, len(paths))
	for _, p := range paths {
		var segs []Line
		for i := 0; i+1 < len(p.Points); i++ {
			a, b := p.Points[i], p.Points[i+1]
			segs = append(segs, Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y, Width: 1.5, Dashed: true, Color: colorTraffic})
		}
		out = append(out, tracePath{Segments: segs})
	}
	return out
}

func wallSegments(walls []scene.Wall) []geometry.Segment {
	segments := make([]geometry.Segment, len(walls))
	for i, w := range walls {
		segments[i] = geometry.Segment{ID: w.ID, X1: w.X1, Y1: w.Y1, X2: w.X2, Y2: w.Y2, Length: w.Length, Angle: w.Angle}
	}
	return segments
}

func buildClearances(s scene.Scene) []Rect {
	zones := clearance.ComputeClearances(s.Furniture)
	out := make([]Rect, 0, len(zones))
	for _, z := range zones {
		out = append(out, Rect{X: z.X, Y: z.Y, W: z.W, H: z.H, Filled: true, Fill: colorClearance, Dashed: true, Stroked: true, Stroke: colorClearance, Width: 1})
	}
	return out
}

func buildFurniture(s scene.Scene, ov Overlays) []furnitureDraw {
	selected := make(map[string]bool, len(ov.SelectedFurniture))
	for _, id := range ov.SelectedFurniture {
		selected[id] = true
	}

	out := make([]furnitureDraw, 0, len(s.Furniture))
	labelSize := clampF(12/s.Zoom, 8, 20)
	for _, item := range s.Furniture {
		fill := colorFurniture
		if selected[item.ID] {
			fill = colorSelected
		}
		if ov.Collision && selected[item.ID] {
			fill = colorCollision
		}
		r := Rect{
			X: item.X - item.W/2, Y: item.Y - item.H/2, W: item.W, H: item.H,
			Rotation: item.Rotation, Filled: true, Fill: fill, Stroked: true, Stroke: colorWallOuter, Width: 1,
		}
		var label *Label
		if item.Label != "" {
			label = &Label{X: item.X, Y: item.Y, Text: item.Label, Size: labelSize}
		}
		out = append(out, furnitureDraw{Rect: r, Label: label, Selected: selected[item.ID]})
	}
	return out
}

func buildSelection(s scene.Scene, ov Overlays) *selectionDraw {
	if len(ov.SelectedFurniture) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ov.SelectedFurniture))
	for _, id := range ov.SelectedFurniture {
		set[id] = true
	}

	var box geometry.Rect
	found := false
	var groups []Rect
	for _, item := range s.Furniture {
		if !set[item.ID] {
			continue
		}
		r := geometry.CenterRect(item.X, item.Y, item.W, item.H)
		groups = append(groups, Rect{X: r.X, Y: r.Y, W: r.W, H: r.H, Stroked: true, Dashed: true, Stroke: colorSelected, Width: 1})
		if !found {
			box = r
			found = true
		} else {
			box = union(box, r)
		}
	}
	if !found {
		return nil
	}

	handles, rotation := hittest.HandlePositions(box)
	handleR := clampF(5/s.Zoom, 3, 8)

	sel := &selectionDraw{
		Box: Rect{X: box.X, Y: box.Y, W: box.W, H: box.H, Stroked: true, Dashed: true, Stroke: colorSelected, Width: 1.5},
		Rotation: Circle{CX: rotation.X, CY: rotation.Y, R: handleR, Filled: true, Fill: colorSelected},
	}
	if len(ov.SelectedFurniture) > 1 {
		sel.Groups = groups
	}
	for _, p := range handles {
		sel.Handles = append(sel.Handles, Circle{CX: p.X, CY: p.Y, R: handleR, Filled: true, Fill: colorSelected, Stroked: true, Stroke: colorWallOuter})
	}
	return sel
}

func union(a, b geometry.Rect) geometry.Rect {
	minX, minY := minF(a.MinX(), b.MinX()), minF(a.MinY(), b.MinY())
	maxX, maxY := maxF(a.MaxX(), b.MaxX()), maxF(a.MaxY(), b.MaxY())
	return geometry.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func buildVertices(s scene.Scene, fullscreen bool) []Circle {
	if !fullscreen {
		return nil
	}
	r := clampF(4/s.Zoom, 2, 6)
	out := make([]Circle, 0, len(s.Room.Vertices))
	for _, v := range s.Room.Vertices {
		out = append(out, Circle{CX: v.X, CY: v.Y, R: r, Filled: true, Fill: colorWallOuter})
	}
	return out
}

func buildGuides(s scene.Scene, guides []snap.Guide) []Line {
	vertices := toGeometryVertices(s.Room.Vertices)
	if len(vertices) == 0 {
		return nil
	}
	bounds := geometry.PolygonBounds(vertices)
	margin := 2.0

	out := make([]Line, 0, len(guides))
	for _, g := range guides {
		if g.Axis == snap.AxisVertical {
			out = append(out, Line{X1: g.Pos, Y1: bounds.MinY - margin, X2: g.Pos, Y2: bounds.MaxY + margin, Width: 1, Dashed: true, Color: colorSnapGuide})
		} else {
			out = append(out, Line{X1: bounds.MinX - margin, Y1: g.Pos, X2: bounds.MaxX + margin, Y2: g.Pos, Width: 1, Dashed: true, Color: colorSnapGuide})
		}
	}
	return out
}

func buildDimensions(s scene.Scene) []Label {
	if !s.ShowDimensions {
		return nil
	}
	vertices := toGeometryVertices(s.Room.Vertices)
	if len(vertices) == 0 {
		return nil
	}
	bounds := geometry.PolygonBounds(vertices)
	return []Label{
		{X: bounds.CenterX(), Y: bounds.MinY - 1, Text: utilities.FormatFeetInches(bounds.Width()), Size: 12},
		{X: bounds.MinX - 1, Y: bounds.CenterY(), Text: utilities.FormatFeetInches(bounds.Height()), Size: 12},
	}
}

func buildMeasure(m MeasureOverlay) *measureDraw {
	dist := math.Hypot(m.EndX-m.StartX, m.EndY-m.StartY)
	midX, midY := (m.StartX+m.EndX)/2, (m.StartY+m.EndY)/2
	return &measureDraw{
		Line:  Line{X1: m.StartX, Y1: m.StartY, X2: m.EndX, Y2: m.EndY, Width: 1.5, Color: colorMeasure},
		Label: Label{X: midX, Y: midY, Text: utilities.FormatFeetInches(dist), Size: 12},
	}
}
