// Package rules evaluates scene-level invariants against a proposed
// scene edit and aggregates the outcome into a single
// RuleEvaluationResult.
package rules

import (
	"github.com/gofloorplan/editor/internal/geometry"
	"github.com/gofloorplan/editor/internal/scene"
)

// RuleViolation is a single failed invariant: a rule id, a human
// message, and a category.
type RuleViolation struct {
	RuleID   string `json:"rule_id"`
	Message  string `json:"message"`
	Category string `json:"category"` // "geometry", "placement", "opening"
}

// RuleEvaluationResult is the outcome of evaluating a proposed scene.
type RuleEvaluationResult struct {
	Allowed    bool            `json:"allowed"`
	Violations []RuleViolation `json:"violations,omitempty"`
}

// IRuleEngine defines scene-invariant evaluation against a single
// proposed scene edit.
type IRuleEngine interface {
	// EvaluateEdit checks a proposed scene against every invariant and
	// returns the combined result. It never mutates next.
	EvaluateEdit(prev, next scene.Scene) RuleEvaluationResult
}

// Engine is the default IRuleEngine implementation. It holds no state;
// every call is a pure function of its arguments.
type Engine struct{}

// NewEngine returns a stateless Engine.
func NewEngine() *Engine { return &Engine{} }

// EvaluateEdit runs every rule and aggregates violations. Geometry
// violations (non-simple room polygon) are the only ones that an
// engine operation can produce as a *rejection*, since
// internal/scene already refuses those edits internally; the remaining
// checks are advisory and surfaced to the UI without blocking the edit.
func (e *Engine) EvaluateEdit(prev, next scene.Scene) RuleEvaluationResult {
	var violations []RuleViolation

	if v := checkSimplePolygon(next); v != nil {
		violations = append(violations, *v)
	}
	violations = append(violations, checkFurnitureMinSize(next)...)
	violations = append(violations, checkPlacement(next)...)
	violations = append(violations, checkOpeningBounds(next)...)

	return RuleEvaluationResult{
		Allowed:    !hasBlockingViolation(violations),
		Violations: violations,
	}
}

func hasBlockingViolation(violations []RuleViolation) bool {
	for _, v := range violations {
		if v.Category == "geometry" {
			return true
		}
	}
	return false
}

func checkSimplePolygon(s scene.Scene) *RuleViolation {
	verts := make([]geometry.Vertex, len(s.Room.Vertices))
	for i, v := range s.Room.Vertices {
		verts[i] = geometry.Vertex{X: v.X, Y: v.Y}
	}
	if len(verts) >= 3 && !geometry.IsSimple(verts) {
		return &RuleViolation{
			RuleID:   "room-simple-polygon",
			Message:  "room outline self-intersects",
			Category: "geometry",
		}
	}
	return nil
}

func checkFurnitureMinSize(s scene.Scene) []RuleViolation {
	var violations []RuleViolation
	for _, f := range s.Furniture {
		if f.W < scene.MinFurnitureSize || f.H < scene.MinFurnitureSize {
			violations = append(violations, RuleViolation{
				RuleID:   "furniture-min-size",
				Message:  "furniture item " + f.ID + " is below the minimum footprint",
				Category: "placement",
			})
		}
	}
	return violations
}

func checkPlacement(s scene.Scene) []RuleViolation {
	issues := scene.ValidatePlacement(s.Furniture, s.Room)
	violations := make([]RuleViolation, 0, len(issues))
	for _, issue := range issues {
		violations = append(violations, RuleViolation{
			RuleID:   "placement-" + string(issue.Issue),
			Message:  "furniture item " + issue.ID + " " + string(issue.Issue),
			Category: "placement",
		})
	}
	return violations
}

func checkOpeningBounds(s scene.Scene) []RuleViolation {
	wallIDs := make(map[string]bool, len(s.Walls))
	for _, w := range s.Walls {
		wallIDs[w.ID] = true
	}

	var violations []RuleViolation
	for _, d := range s.Doors {
		if !wallIDs[d.WallID] {
			violations = append(violations, RuleViolation{
				RuleID:   "opening-orphaned",
				Message:  "door " + d.ID + " references a wall that no longer exists",
				Category: "opening",
			})
		}
	}
	for _, w := range s.Windows {
		if !wallIDs[w.WallID] {
			violations = append(violations, RuleViolation{
				RuleID:   "opening-orphaned",
				Message:  "window " + w.ID + " references a wall that no longer exists",
				Category: "opening",
			})
		}
	}
	return violations
}
