package templates

import "github.com/gofloorplan/editor/internal/scene"

// TemplateDefinition binds a generator and its parameters to a fixed
// catalog entry. Style is optional, informational free-form metadata
// (living-room/bedroom/studio decor tagging) — never required for
// ApplyTemplate to succeed.
type TemplateDefinition struct {
	Name  string
	Shape Shape
	Params
	Style string
}

// DefaultCatalog is the fixed set of named room templates.
func DefaultCatalog() []TemplateDefinition {
	return []TemplateDefinition{
		{Name: "Studio", Shape: ShapeRectangle, Params: Params{Width: 16, Depth: 14, WallThickness: 0.5}, Style: "studio"},
		{Name: "Small Bedroom", Shape: ShapeRectangle, Params: Params{Width: 11, Depth: 10, WallThickness: 0.5}, Style: "bedroom"},
		{Name: "Master Bedroom", Shape: ShapeRectangle, Params: Params{Width: 16, Depth: 14, WallThickness: 0.5}, Style: "bedroom"},
		{Name: "Living Room", Shape: ShapeRectangle, Params: Params{Width: 20, Depth: 16, WallThickness: 0.5}, Style: "living-room"},
		{Name: "L-Shaped Living Room", Shape: ShapeL, Params: Params{Width: 22, Depth: 18, CutWidth: 8, CutDepth: 6, WallThickness: 0.5}, Style: "living-room"},
		{Name: "Galley Kitchen", Shape: ShapeRectangle, Params: Params{Width: 8, Depth: 14, WallThickness: 0.5}, Style: "kitchen"},
		{Name: "U-Shaped Kitchen", Shape: ShapeU, Params: Params{Width: 14, Depth: 12, CutWidth: 4, CutDepth: 5, WallThickness: 0.5}, Style: "kitchen"},
		{Name: "T-Shaped Great Room", Shape: ShapeT, Params: Params{Width: 24, Depth: 20, CutWidth: 10, CutDepth: 8, WallThickness: 0.5}, Style: "living-room"},
	}
}

// ByName returns the named template from catalog, or false if absent.
func ByName(catalog []TemplateDefinition, name string) (TemplateDefinition, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return TemplateDefinition{}, false
}

// ByStyle filters catalog to entries tagged with the given style.
func ByStyle(catalog []TemplateDefinition, style string) []TemplateDefinition {
	var out []TemplateDefinition
	for _, t := range catalog {
		if t.Style == style {
			out = append(out, t)
		}
	}
	return out
}

// ApplyTemplate replaces s's room outline with the one the template
// generates, rebuilding walls and pruning openings whose wall
// disappeared.
func ApplyTemplate(s scene.Scene, t TemplateDefinition) scene.Scene {
	vertices := Generate(t.Shape, t.Params)
	return scene.ReplaceRoom(s, vertices, t.Params.WallThickness)
}
