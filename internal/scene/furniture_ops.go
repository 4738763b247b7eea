package scene

import (
	"sort"

	"github.com/gofloorplan/editor/internal/geometry"
)

// MinFurnitureSize is the floor enforced by Resize.
const MinFurnitureSize = 0.5

// findFurniture returns the index of the item with id, or -1.
func findFurniture(items []Furniture, id string) int {
	for i, f := range items {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// withFurniture returns a copy of items with the item at index replaced.
func withFurniture(items []Furniture, index int, updated Furniture) []Furniture {
	next := append([]Furniture(nil), items...)
	next[index] = updated
	return next
}

// Move relocates furniture id to (x,y). Locked items silently reject the
// move and the scene is returned unchanged.
func Move(s Scene, id string, x, y float64) Scene {
	i := findFurniture(s.Furniture, id)
	if i < 0 || s.Furniture[i].Locked {
		return s
	}
	item := s.Furniture[i]
	item.X, item.Y = x, y

	next := s
	next.Furniture = withFurniture(s.Furniture, i, item)
	return next
}

// Rotate adds deltaDeg to furniture id's rotation, normalized to
// [0,360). Locked items are unaffected.
func Rotate(s Scene, id string, deltaDeg float64) Scene {
	i := findFurniture(s.Furniture, id)
	if i < 0 || s.Furniture[i].Locked {
		return s
	}
	item := s.Furniture[i]
	item.Rotation = normalizeDegrees(item.Rotation + deltaDeg)

	next := s
	next.Furniture = withFurniture(s.Furniture, i, item)
	return next
}

func normalizeDegrees(deg float64) float64 {
	deg = mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func mod(a, b float64) float64 {
	m := a - float64(int(a/b))*b
	return m
}

// Resize sets furniture id's footprint, enforcing the MinFurnitureSize
// floor on both axes. Locked items are unaffected.
func Resize(s Scene, id string, w, h float64) Scene {
	i := findFurniture(s.Furniture, id)
	if i < 0 || s.Furniture[i].Locked {
		return s
	}
	if w < MinFurnitureSize {
		w = MinFurnitureSize
	}
	if h < MinFurnitureSize {
		h = MinFurnitureSize
	}

	item := s.Furniture[i]
	item.W, item.H = w, h

	next := s
	next.Furniture = withFurniture(s.Furniture, i, item)
	return next
}

// Delete removes furniture id from the scene. Unlike move/resize/rotate,
// locking does not block deletion.
func Delete(s Scene, id string) Scene {
	i := findFurniture(s.Furniture, id)
	if i < 0 {
		return s
	}
	next := s
	next.Furniture = append(append([]Furniture(nil), s.Furniture[:i]...), s.Furniture[i+1:]...)
	return next
}

// Duplicate clones furniture id, offsetting the copy by +0.5 ft on both
// axes and giving it a fresh id. The copy is appended (front-most).
func Duplicate(s Scene, id string) Scene {
	i := findFurniture(s.Furniture, id)
	if i < 0 {
		return s
	}
	clone := s.Furniture[i]
	clone.ID = NewID()
	clone.X += 0.5
	clone.Y += 0.5

	next := s
	next.Furniture = append(append([]Furniture(nil), s.Furniture...), clone)
	return next
}

// ToggleLock flips furniture id's locked flag.
func ToggleLock(s Scene, id string) Scene {
	i := findFurniture(s.Furniture, id)
	if i < 0 {
		return s
	}
	item := s.Furniture[i]
	item.Locked = !item.Locked

	next := s
	next.Furniture = withFurniture(s.Furniture, i, item)
	return next
}

// --- Multi-item operations ---

func idSet(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// MoveMany translates every item in ids by (dx,dy). Locked items within
// the set are skipped individually.
func MoveMany(s Scene, ids []string, dx, dy float64) Scene {
	set := idSet(ids)
	next := s
	items := append([]Furniture(nil), s.Furniture...)
	for i, f := range items {
		if !set[f.ID] || f.Locked {
			continue
		}
		f.X += dx
		f.Y += dy
		items[i] = f
	}
	next.Furniture = items
	return next
}

// RotateMany adds deltaDeg to every item in ids, skipping locked items.
func RotateMany(s Scene, ids []string, deltaDeg float64) Scene {
	set := idSet(ids)
	next := s
	items := append([]Furniture(nil), s.Furniture...)
	for i, f := range items {
		if !set[f.ID] || f.Locked {
			continue
		}
		f.Rotation = normalizeDegrees(f.Rotation + deltaDeg)
		items[i] = f
	}
	next.Furniture = items
	return next
}

// DeleteMany removes every item in ids.
func DeleteMany(s Scene, ids []string) Scene {
	set := idSet(ids)
	next := s
	items := make([]Furniture, 0, len(s.Furniture))
	for _, f := range s.Furniture {
		if !set[f.ID] {
			items = append(items, f)
		}
	}
	next.Furniture = items
	return next
}

// DuplicateMany clones every item in ids, offsetting each by +0.5 ft.
func DuplicateMany(s Scene, ids []string) Scene {
	set := idSet(ids)
	next := s
	items := append([]Furniture(nil), s.Furniture...)
	for _, f := range s.Furniture {
		if !set[f.ID] {
			continue
		}
		clone := f
		clone.ID = NewID()
		clone.X += 0.5
		clone.Y += 0.5
		items = append(items, clone)
	}
	next.Furniture = items
	return next
}

// LockMany sets Locked=true on every item in ids.
func LockMany(s Scene, ids []string) Scene { return setLockMany(s, ids, true) }

// UnlockMany sets Locked=false on every item in ids.
func UnlockMany(s Scene, ids []string) Scene { return setLockMany(s, ids, false) }

func setLockMany(s Scene, ids []string, locked bool) Scene {
	set := idSet(ids)
	next := s
	items := append([]Furniture(nil), s.Furniture...)
	for i, f := range items {
		if set[f.ID] {
			f.Locked = locked
			items[i] = f
		}
	}
	next.Furniture = items
	return next
}

// selectionBounds computes the union bounds of ids' rectangles.
func selectionBounds(items []Furniture, ids []string) (geometry.Bounds, bool) {
	set := idSet(ids)
	first := true
	var b geometry.Bounds
	for _, f := range items {
		if !set[f.ID] {
			continue
		}
		r := geometry.CenterRect(f.X, f.Y, f.W, f.H)
		if first {
			b = geometry.Bounds{MinX: r.MinX(), MinY: r.MinY(), MaxX: r.MaxX(), MaxY: r.MaxY()}
			first = false
			continue
		}
		if r.MinX() < b.MinX {
			b.MinX = r.MinX()
		}
		if r.MaxX() > b.MaxX {
			b.MaxX = r.MaxX()
		}
		if r.MinY() < b.MinY {
			b.MinY = r.MinY()
		}
		if r.MaxY() > b.MaxY {
			b.MaxY = r.MaxY()
		}
	}
	return b, !first
}

// FlipH reflects every item in ids about the selection bounds' vertical
// center line.
func FlipH(s Scene, ids []string) Scene {
	bounds, ok := selectionBounds(s.Furniture, ids)
	if !ok {
		return s
	}
	set := idSet(ids)
	cx := bounds.CenterX()

	next := s
	items := append([]Furniture(nil), s.Furniture...)
	for i, f := range items {
		if !set[f.ID] {
			continue
		}
		f.X = 2*cx - f.X
		items[i] = f
	}
	next.Furniture = items
	return next
}

// FlipV reflects every item in ids about the selection bounds' horizontal
// center line.
func FlipV(s Scene, ids []string) Scene {
	bounds, ok := selectionBounds(s.Furniture, ids)
	if !ok {
		return s
	}
	set := idSet(ids)
	cy := bounds.CenterY()

	next := s
	items := append([]Furniture(nil), s.Furniture...)
	for i, f := range items {
		if !set[f.ID] {
			continue
		}
		f.Y = 2*cy - f.Y
		items[i] = f
	}
	next.Furniture = items
	return next
}

// AlignEdge names which edge or center an AlignMany call targets.
type AlignEdge int

const (
	AlignLeft AlignEdge = iota
	AlignRight
	AlignTop
	AlignBottom
	AlignCenterH
	AlignCenterV
)

// AlignMany moves every item in ids so its corresponding edge/center
// matches the selection bounding box's edge/center.
func AlignMany(s Scene, ids []string, edge AlignEdge) Scene {
	bounds, ok := selectionBounds(s.Furniture, ids)
	if !ok {
		return s
	}
	set := idSet(ids)

	next := s
	items := append([]Furniture(nil), s.Furniture...)
	for i, f := range items {
		if !set[f.ID] {
			continue
		}
		switch edge {
		case AlignLeft:
			f.X = bounds.MinX + f.W/2
		case AlignRight:
			f.X = bounds.MaxX - f.W/2
		case AlignTop:
			f.Y = bounds.MinY + f.H/2
		case AlignBottom:
			f.Y = bounds.MaxY - f.H/2
		case AlignCenterH:
			f.X = bounds.CenterX()
		case AlignCenterV:
			f.Y = bounds.CenterY()
		}
		items[i] = f
	}
	next.Furniture = items
	return next
}

// DistributeH spaces the items in ids evenly along X between the
// extreme-left and extreme-right items, leaving those two in place.
func DistributeH(s Scene, ids []string) Scene {
	return distribute(s, ids, true)
}

// DistributeV spaces the items in ids evenly along Y between the
// extreme-top and extreme-bottom items, leaving those two in place.
func DistributeV(s Scene, ids []string) Scene {
	return distribute(s, ids, false)
}

func distribute(s Scene, ids []string, horizontal bool) Scene {
	set := idSet(ids)
	indices := make([]int, 0, len(ids))
	for i, f := range s.Furniture {
		if set[f.ID] {
			indices = append(indices, i)
		}
	}
	if len(indices) < 3 {
		return s
	}

	sort.Slice(indices, func(a, b int) bool {
		if horizontal {
			return s.Furniture[indices[a]].X < s.Furniture[indices[b]].X
		}
		return s.Furniture[indices[a]].Y < s.Furniture[indices[b]].Y
	})

	items := append([]Furniture(nil), s.Furniture...)
	first := items[indices[0]]
	last := items[indices[len(indices)-1]]
	n := len(indices) - 1

	for k := 1; k < n; k++ {
		f := items[indices[k]]
		t := float64(k) / float64(n)
		if horizontal {
			f.X = first.X + (last.X-first.X)*t
		} else {
			f.Y = first.Y + (last.Y-first.Y)*t
		}
		items[indices[k]] = f
	}

	next := s
	next.Furniture = items
	return next
}

// --- Z-order operations ---

// BringToFront moves id to the end of the furniture list (front-most).
func BringToFront(s Scene, id string) Scene {
	i := findFurniture(s.Furniture, id)
	if i < 0 || i == len(s.Furniture)-1 {
		return s
	}
	items := append([]Furniture(nil), s.Furniture...)
	item := items[i]
	items = append(items[:i], items[i+1:]...)
	items = append(items, item)

	next := s
	next.Furniture = items
	return next
}

// SendToBack moves id to the start of the furniture list (back-most).
func SendToBack(s Scene, id string) Scene {
	i := findFurniture(s.Furniture, id)
	if i <= 0 {
		return s
	}
	items := append([]Furniture(nil), s.Furniture...)
	item := items[i]
	items = append(items[:i], items[i+1:]...)
	items = append([]Furniture{item}, items...)

	next := s
	next.Furniture = items
	return next
}

// BringForward swaps id one position toward the front.
func BringForward(s Scene, id string) Scene {
	i := findFurniture(s.Furniture, id)
	if i < 0 || i == len(s.Furniture)-1 {
		return s
	}
	items := append([]Furniture(nil), s.Furniture...)
	items[i], items[i+1] = items[i+1], items[i]

	next := s
	next.Furniture = items
	return next
}

// SendBackward swaps id one position toward the back.
func SendBackward(s Scene, id string) Scene {
	i := findFurniture(s.Furniture, id)
	if i <= 0 {
		return s
	}
	items := append([]Furniture(nil), s.Furniture...)
	items[i], items[i-1] = items[i-1], items[i]

	next := s
	next.Furniture = items
	return next
}
