package spatialindex

import (
	"testing"

	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/utilities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoizedBuilderReturnsSameHashForUnchangedFurniture(t *testing.T) {
	cache := utilities.NewCacheUtility()
	b := NewMemoizedBuilder(cache, 4)
	furniture := []scene.Furniture{{ID: "sofa", X: 1, Y: 1, W: 2, H: 2}}

	first := b.Build(furniture)
	second := b.Build(furniture)

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestMemoizedBuilderRebuildsWhenFurnitureMoves(t *testing.T) {
	cache := utilities.NewCacheUtility()
	b := NewMemoizedBuilder(cache, 4)
	furniture := []scene.Furniture{{ID: "sofa", X: 1, Y: 1, W: 2, H: 2}}

	first := b.Build(furniture)

	moved := []scene.Furniture{{ID: "sofa", X: 5, Y: 5, W: 2, H: 2}}
	second := b.Build(moved)

	assert.NotSame(t, first, second)
	f, ok := second.Query(5, 5)
	require.True(t, ok)
	assert.Equal(t, "sofa", f.ID)
}
