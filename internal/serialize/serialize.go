// Package serialize converts a scene.Scene to and from its on-disk JSON
// representation, using json.MarshalIndent/json.Unmarshal with errors
// wrapped via fmt.Errorf("...: %w", err).
package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/gofloorplan/editor/internal/geometry"
	"github.com/gofloorplan/editor/internal/interaction"
	"github.com/gofloorplan/editor/internal/scene"
)

// FormatVersion identifies the document schema this package reads and
// writes. It is bumped when a field is added or reinterpreted in a way
// that would change how an older file is read.
const FormatVersion = 1

// document is the on-disk envelope: a format version alongside the
// scene payload, so a future version can detect and migrate older
// files instead of guessing from field presence.
type document struct {
	FormatVersion int         `json:"format_version"`
	Scene         scene.Scene `json:"scene"`
}

// InvariantError reports that a deserialized scene violates one of the
// model's structural invariants. Deserialize never attempts to
// repair a violation — it surfaces the error so the caller can decide
// whether to reject the file or offer the user a recovery path.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("serialize: scene violates invariant: %s", e.Reason)
}

// Serialize renders s as an indented JSON document.
func Serialize(s scene.Scene) ([]byte, error) {
	content, err := json.MarshalIndent(document{FormatVersion: FormatVersion, Scene: s}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize: failed to marshal scene: %w", err)
	}
	return content, nil
}

// Deserialize parses content into a Scene and validates its structural
// invariants. It does not repair a violation — it returns an
// *InvariantError instead.
func Deserialize(content []byte) (scene.Scene, error) {
	var doc document
	if err := json.Unmarshal(content, &doc); err != nil {
		return scene.Scene{}, fmt.Errorf("serialize: failed to unmarshal scene: %w", err)
	}

	if doc.FormatVersion > FormatVersion {
		return scene.Scene{}, fmt.Errorf("serialize: document format version %d is newer than supported version %d", doc.FormatVersion, FormatVersion)
	}

	if err := validate(doc.Scene); err != nil {
		return scene.Scene{}, err
	}
	return doc.Scene, nil
}

// validate checks every structural invariant a Deserialize caller
// depends on: a simple room polygon, openings referencing existing
// walls with a position and width that fit that wall, furniture no
// smaller than the minimum footprint, unique furniture ids, and a
// viewport zoom within the editor's supported range.
func validate(s scene.Scene) error {
	vertices := make([]geometry.Vertex, len(s.Room.Vertices))
	for i, v := range s.Room.Vertices {
		vertices[i] = geometry.Vertex{X: v.X, Y: v.Y}
	}
	if len(vertices) >= 3 && !geometry.IsSimple(vertices) {
		return &InvariantError{Reason: "room polygon is self-intersecting"}
	}
	if len(vertices) < 3 {
		return &InvariantError{Reason: "room polygon has fewer than 3 vertices"}
	}

	walls := make(map[string]scene.Wall, len(s.Walls))
	for _, w := range s.Walls {
		walls[w.ID] = w
	}
	for _, d := range s.Doors {
		wall, ok := walls[d.WallID]
		if !ok {
			return &InvariantError{Reason: fmt.Sprintf("door %s references unknown wall %s", d.ID, d.WallID)}
		}
		if err := validateOpeningBounds("door", d.ID, d.Position, d.Width, wall.Length); err != nil {
			return err
		}
	}
	for _, w := range s.Windows {
		wall, ok := walls[w.WallID]
		if !ok {
			return &InvariantError{Reason: fmt.Sprintf("window %s references unknown wall %s", w.ID, w.WallID)}
		}
		if err := validateOpeningBounds("window", w.ID, w.Position, w.Width, wall.Length); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(s.Furniture))
	for _, f := range s.Furniture {
		if seen[f.ID] {
			return &InvariantError{Reason: fmt.Sprintf("furniture id %s is used more than once", f.ID)}
		}
		seen[f.ID] = true
		if f.W < scene.MinFurnitureSize || f.H < scene.MinFurnitureSize {
			return &InvariantError{Reason: fmt.Sprintf("furniture %s is smaller than the minimum footprint", f.ID)}
		}
	}

	if s.Zoom < interaction.MinZoom || s.Zoom > interaction.MaxZoom {
		return &InvariantError{Reason: fmt.Sprintf("zoom %g is outside the supported range", s.Zoom)}
	}
	return nil
}

// validateOpeningBounds checks that an opening's fractional position
// lies within the wall it sits on and that its width does not exceed
// the wall's length.
func validateOpeningBounds(kind, id string, position, width, wallLength float64) error {
	if position < 0 || position > 1 {
		return &InvariantError{Reason: fmt.Sprintf("%s %s has position %g outside [0,1]", kind, id, position)}
	}
	if width > wallLength {
		return &InvariantError{Reason: fmt.Sprintf("%s %s has width %g wider than its wall", kind, id, width)}
	}
	return nil
}
