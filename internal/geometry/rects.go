package geometry

// Rect is an axis-aligned rectangle in feet, used for furniture bounds
// and collision tests. Rotation is visual only (per spec) and never
// enters collision math — rects are always axis-aligned.
type Rect struct {
	X, Y, W, H float64 // (X,Y) is the top-left corner
}

// CenterRect builds the axis-aligned rect for a furniture item given its
// center point and footprint.
func CenterRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// MinX, MaxX, MinY, MaxY are the rect's edges.
func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether (x,y) lies within the rect, inclusive of
// edges.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX() && x <= r.MaxX() && y >= r.MinY() && y <= r.MaxY()
}

// RectsOverlap reports whether two axis-aligned rects intersect with a
// positive area. Touching edges do not count as overlap.
func RectsOverlap(a, b Rect) bool {
	return a.MinX() < b.MaxX() && a.MaxX() > b.MinX() &&
		a.MinY() < b.MaxY() && a.MaxY() > b.MinY()
}
