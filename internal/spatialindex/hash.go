// Package spatialindex buckets furniture into a uniform grid for O(1)
// point and rectangle queries (an AABB overlap test over a memoized
// grid), rebuilt wholesale rather than incrementally maintained since
// the editor rebuilds the index whenever the furniture list identity
// changes.
package spatialindex

import (
	"math"

	"github.com/gofloorplan/editor/internal/geometry"
	"github.com/gofloorplan/editor/internal/scene"
)

// DefaultCellSize is the grid cell size in feet.
const DefaultCellSize = 4.0

type cellKey struct{ cx, cy int }

// Hash buckets furniture axis-aligned bounds into integer grid cells.
type Hash struct {
	cellSize float64
	cells    map[cellKey][]int // index into items, in original (z) order
	items    []scene.Furniture
}

// Build constructs a spatial hash over furniture using cellSize-foot
// cells. cellSize<=0 falls back to DefaultCellSize.
func Build(furniture []scene.Furniture, cellSize float64) *Hash {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	h := &Hash{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
		items:    furniture,
	}
	for i, f := range furniture {
		for _, k := range cellsCovering(bounds(f), cellSize) {
			h.cells[k] = append(h.cells[k], i)
		}
	}
	return h
}

func bounds(f scene.Furniture) geometry.Rect {
	return geometry.CenterRect(f.X, f.Y, f.W, f.H)
}

func cellsCovering(r geometry.Rect, cellSize float64) []cellKey {
	minCX := int(math.Floor(r.MinX() / cellSize))
	maxCX := int(math.Floor(r.MaxX() / cellSize))
	minCY := int(math.Floor(r.MinY() / cellSize))
	maxCY := int(math.Floor(r.MaxY() / cellSize))

	var keys []cellKey
	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			keys = append(keys, cellKey{cx, cy})
		}
	}
	return keys
}

// Query returns the topmost furniture item (last in z-order, i.e.
// frontmost) whose rectangle contains (x,y), or false if none do
//.
func (h *Hash) Query(x, y float64) (scene.Furniture, bool) {
	key := cellKey{int(math.Floor(x / h.cellSize)), int(math.Floor(y / h.cellSize))}
	candidates := h.cells[key]

	for i := len(candidates) - 1; i >= 0; i-- {
		idx := candidates[i]
		if bounds(h.items[idx]).Contains(x, y) {
			return h.items[idx], true
		}
	}
	return scene.Furniture{}, false
}

// QueryRect returns every furniture item whose center lies within the
// rectangle [x1,y1]-[x2,y2], in original z-order.
func (h *Hash) QueryRect(x1, y1, x2, y2 float64) []scene.Furniture {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	region := geometry.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}

	seen := make(map[int]bool)
	var result []scene.Furniture
	var order []int
	for _, key := range cellsCovering(region, h.cellSize) {
		for _, idx := range h.cells[key] {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			order = append(order, idx)
		}
	}

	for _, idx := range orderedIndices(order) {
		f := h.items[idx]
		if region.Contains(f.X, f.Y) {
			result = append(result, f)
		}
	}
	return result
}

// orderedIndices restores original z-order for a set of item indices
// gathered (possibly out of order) from multiple grid cells.
func orderedIndices(idxs []int) []int {
	max := -1
	for _, i := range idxs {
		if i > max {
			max = i
		}
	}
	present := make([]bool, max+1)
	for _, i := range idxs {
		present[i] = true
	}
	var ordered []int
	for i, ok := range present {
		if ok {
			ordered = append(ordered, i)
		}
	}
	return ordered
}
