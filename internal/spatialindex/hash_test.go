package spatialindex

import (
	"testing"

	"github.com/gofloorplan/editor/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFindsContainingItem(t *testing.T) {
	furniture := []scene.Furniture{
		{ID: "sofa", X: 2, Y: 2, W: 7, H: 3},
		{ID: "chair", X: 9, Y: 5, W: 2, H: 2},
	}
	h := Build(furniture, DefaultCellSize)

	f, ok := h.Query(3, 3)
	require.True(t, ok)
	assert.Equal(t, "sofa", f.ID)

	f, ok = h.Query(10, 6)
	require.True(t, ok)
	assert.Equal(t, "chair", f.ID)

	_, ok = h.Query(0, 0)
	assert.False(t, ok)
}

func TestQueryPrefersFrontmostOnOverlap(t *testing.T) {
	furniture := []scene.Furniture{
		{ID: "back", X: 0, Y: 0, W: 5, H: 5},
		{ID: "front", X: 1, Y: 1, W: 5, H: 5},
	}
	h := Build(furniture, DefaultCellSize)

	f, ok := h.Query(3, 3)
	require.True(t, ok)
	assert.Equal(t, "front", f.ID, "last item in z-order wins an overlap")
}

func TestQueryRectReturnsItemsByCenter(t *testing.T) {
	furniture := []scene.Furniture{
		{ID: "inside", X: 1, Y: 1, W: 2, H: 2},    // center (X,Y) itself
		{ID: "outside", X: 10, Y: 10, W: 2, H: 2},
	}
	h := Build(furniture, DefaultCellSize)

	result := h.QueryRect(0, 0, 5, 5)
	require.Len(t, result, 1)
	assert.Equal(t, "inside", result[0].ID)
}

func TestQueryRectSpansMultipleCells(t *testing.T) {
	furniture := []scene.Furniture{
		{ID: "wide", X: 5, Y: 1, W: 10, H: 1}, // bounds cross several 4ft cells
	}
	h := Build(furniture, DefaultCellSize)

	result := h.QueryRect(0, 0, 10, 2)
	require.Len(t, result, 1)
	assert.Equal(t, "wide", result[0].ID)
}

func TestQueryEmptyHash(t *testing.T) {
	h := Build(nil, DefaultCellSize)
	_, ok := h.Query(1, 1)
	assert.False(t, ok)
	assert.Empty(t, h.QueryRect(0, 0, 10, 10))
}
