package spatialindex

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/utilities"
)

// MemoizedBuilder caches spatial hash builds keyed by the furniture
// list's content (ids, positions and sizes), so a render tick that only pans
// or zooms the viewport does not force a rebuild. It memoizes index
// construction behind the shared CacheUtility.
type MemoizedBuilder struct {
	cache    utilities.ICacheUtility
	cellSize float64
	ttl      time.Duration
}

// NewMemoizedBuilder wires a CacheUtility instance to spatial hash
// construction. cache may be shared with other memoized lookups
// elsewhere in the client.
func NewMemoizedBuilder(cache utilities.ICacheUtility, cellSize float64) *MemoizedBuilder {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &MemoizedBuilder{cache: cache, cellSize: cellSize, ttl: time.Minute}
}

// Build returns the cached Hash for furniture's content if present, or
// builds and caches a fresh one. Cache keys embed every id+position+size
// pair so any edit to the list produces a cache miss, while an
// identical list (e.g. across repeated pan/zoom repaints) hits.
func (m *MemoizedBuilder) Build(furniture []scene.Furniture) *Hash {
	key := contentKey(furniture, m.cellSize)
	if cached, ok := m.cache.Get(key); ok {
		if h, ok := cached.(*Hash); ok {
			return h
		}
	}
	h := Build(furniture, m.cellSize)
	m.cache.Set(key, h, m.ttl)
	return h
}

func contentKey(furniture []scene.Furniture, cellSize float64) string {
	var b strings.Builder
	b.WriteString("spatialindex:")
	b.WriteString(strconv.FormatFloat(cellSize, 'f', -1, 64))
	for _, f := range furniture {
		b.WriteByte('|')
		b.WriteString(f.ID)
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(f.X, 'f', 4, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(f.Y, 'f', 4, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(f.W, 'f', 4, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(f.H, 'f', 4, 64))
	}
	return b.String()
}
