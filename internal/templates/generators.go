// Package templates provides parametric room generators, a named
// template catalog, a furniture library, and a versioned on-disk store
// for both. Grounded on client/ui/board_view.go's NewBoardView default-
// config construction (a parametric factory producing a structured
// default) and internal/resource_access/configuration_facet.go for the
// persisted-catalog side.
package templates

import "github.com/gofloorplan/editor/internal/scene"

// Shape selects which parametric generator to run.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeL
	ShapeU
	ShapeT
)

// Params parameterizes a room generator: outer width/depth plus the
// cut-out dimensions used by the L/U/T shapes (ignored by Rectangle).
type Params struct {
	Width, Depth   float64
	CutWidth       float64
	CutDepth       float64
	WallThickness  float64
}

// Generate produces a closed, clockwise vertex list for shape with the
// given params. Unknown shapes fall back to Rectangle.
func Generate(shape Shape, p Params) []scene.RoomVertex {
	switch shape {
	case ShapeL:
		return generateL(p)
	case ShapeU:
		return generateU(p)
	case ShapeT:
		return generateT(p)
	default:
		return generateRectangle(p)
	}
}

func generateRectangle(p Params) []scene.RoomVertex {
	w, d := p.Width, p.Depth
	return []scene.RoomVertex{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: d}, {X: 0, Y: d},
	}
}

// generateL removes a CutWidth x CutDepth rectangle from the top-right
// corner of the outer rectangle.
func generateL(p Params) []scene.RoomVertex {
	w, d := p.Width, p.Depth
	cw, cd := clampCut(p.CutWidth, w), clampCut(p.CutDepth, d)
	return []scene.RoomVertex{
		{X: 0, Y: 0},
		{X: w - cw, Y: 0},
		{X: w - cw, Y: cd},
		{X: w, Y: cd},
		{X: w, Y: d},
		{X: 0, Y: d},
	}
}

// generateU removes one (Width-2*CutWidth) x CutDepth notch from the
// middle of the top edge, leaving two arms of width CutWidth at the top
// corners.
func generateU(p Params) []scene.RoomVertex {
	w, d := p.Width, p.Depth
	cw, cd := clampCut(p.CutWidth, w/2), clampCut(p.CutDepth, d)
	return []scene.RoomVertex{
		{X: 0, Y: 0},
		{X: cw, Y: 0},
		{X: cw, Y: cd},
		{X: w - cw, Y: cd},
		{X: w - cw, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: d},
		{X: 0, Y: d},
	}
}

// generateT removes two symmetric rectangles from the top edge, leaving
// a centered stem of width CutWidth protruding upward the full depth.
func generateT(p Params) []scene.RoomVertex {
	w, d := p.Width, p.Depth
	stemW := clampCut(p.CutWidth, w)
	stemD := clampCut(p.CutDepth, d)
	left := (w - stemW) / 2
	right := left + stemW

	return []scene.RoomVertex{
		{X: left, Y: 0},
		{X: right, Y: 0},
		{X: right, Y: stemD},
		{X: w, Y: stemD},
		{X: w, Y: d},
		{X: 0, Y: d},
		{X: 0, Y: stemD},
		{X: left, Y: stemD},
	}
}

// clampCut keeps a cut-out dimension within (0, limit) so generators
// never produce a degenerate or self-intersecting outline.
func clampCut(cut, limit float64) float64 {
	if cut <= 0 {
		return limit / 4
	}
	if cut >= limit {
		return limit - 0.1
	}
	return cut
}
