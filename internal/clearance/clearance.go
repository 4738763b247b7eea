// Package clearance computes advisory circulation rectangles and
// traffic-flow polylines over the furniture layout: clearance zones
// reserved in front of furniture, and a route-finding pass around
// furniture bounding boxes for the traffic-flow overlay.
package clearance

import "github.com/gofloorplan/editor/internal/scene"

// Zone is an advisory rectangle reserving circulation space in front of
// a furniture item.
type Zone struct {
	FurnitureID string
	X, Y, W, H  float64
}

// frontDepth returns the required front clearance depth in feet for a
// furniture category, or 0 if the category has no defined clearance.
func frontDepth(category string) float64 {
	switch category {
	case "sofa", "bed":
		return 2.5
	case "chair", "table":
		return 2.0
	default:
		return 0
	}
}

// ComputeClearances yields one Zone per furniture item whose category
// requires front-of-object circulation space, positioned against the
// item's "front" (unrotated: below its footprint; rotation determines
// which rotated side this maps to).
func ComputeClearances(furniture []scene.Furniture) []Zone {
	var zones []Zone
	for _, f := range furniture {
		depth := frontDepth(f.Category)
		if depth <= 0 {
			continue
		}
		zones = append(zones, frontZone(f, depth))
	}
	return zones
}

// frontZone places the clearance rectangle along the item's long front
// edge, rotated with the item about its center.
func frontZone(f scene.Furniture, depth float64) Zone {
	cx, cy := f.X, f.Y
	left, top := f.X-f.W/2, f.Y-f.H/2
	right, bottom := f.X+f.W/2, f.Y+f.H/2
	w, h := f.W, f.H
	if w < h {
		w, h = h, w // long edge is the front for a portrait footprint
	}

	// Unrotated: zone sits flush below the item's footprint, centered
	// on X. Rotation is applied as a coarse quadrant snap (0/90/180/270)
	// since clearance is advisory, not a precise oriented rectangle.
	quadrant := int(normalizeDegrees(f.Rotation)+45) / 90 % 4

	switch quadrant {
	case 0: // front faces +Y (down)
		return Zone{FurnitureID: f.ID, X: cx - w/2, Y: bottom, W: w, H: depth}
	case 1: // front faces -X (left)
		return Zone{FurnitureID: f.ID, X: left - depth, Y: cy - w/2, W: depth, H: w}
	case 2: // front faces -Y (up)
		return Zone{FurnitureID: f.ID, X: cx - w/2, Y: top - depth, W: w, H: depth}
	default: // front faces +X (right)
		return Zone{FurnitureID: f.ID, X: right, Y: cy - w/2, W: depth, H: w}
	}
}

func normalizeDegrees(deg float64) float64 {
	d := deg
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}
