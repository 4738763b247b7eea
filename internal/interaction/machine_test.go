package interaction

import (
	"testing"

	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/spatialindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectRoom() scene.Room {
	return scene.Room{Vertices: []scene.RoomVertex{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
}

func baseScene() scene.Scene {
	room := rectRoom()
	return scene.Scene{
		Room:  room,
		Walls: scene.RebuildWalls(room),
		Furniture: []scene.Furniture{
			{ID: "sofa", X: 5, Y: 5, W: 2, H: 2},
		},
		Zoom: 1,
	}
}

func TestSetToolResetsMode(t *testing.T) {
	m := New()
	m.Mode = ModeDragSingle
	m.SetTool(ToolPan)
	assert.Equal(t, ToolPan, m.Tool)
	assert.Equal(t, ModeIdle, m.Mode)
}

func TestPointerDownSelectsFurnitureAndArmsDrag(t *testing.T) {
	s := baseScene()
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()

	m.PointerDown(s, idx, PointerDownEvent{X: 5, Y: 5, Button: ButtonLeft, Zoom: 1})

	require.Len(t, m.Selection.FurnitureIDs, 1)
	assert.Equal(t, "sofa", m.Selection.FurnitureIDs[0])
	assert.Equal(t, ModeDragSingle, m.Mode)
}

func TestPointerDownOnLockedFurnitureSelectsButDoesNotArmDrag(t *testing.T) {
	s := baseScene()
	s.Furniture[0].Locked = true
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()

	m.PointerDown(s, idx, PointerDownEvent{X: 5, Y: 5, Button: ButtonLeft, Zoom: 1})

	require.Len(t, m.Selection.FurnitureIDs, 1)
	assert.Equal(t, ModeIdle, m.Mode)
}

func TestPointerDownEmptySpaceStartsRubberBand(t *testing.T) {
	s := baseScene()
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()

	m.PointerDown(s, idx, PointerDownEvent{X: 1, Y: 1, Button: ButtonLeft, Zoom: 1})

	assert.Equal(t, ModeRubberBand, m.Mode)
	assert.Empty(t, m.Selection.FurnitureIDs)
}

func TestPointerDownMiddleButtonOrSpaceHeldPans(t *testing.T) {
	s := baseScene()
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()

	m.PointerDown(s, idx, PointerDownEvent{X: 1, Y: 1, Button: ButtonMiddle, Zoom: 1})
	assert.Equal(t, ModePan, m.Mode)

	m2 := New()
	m2.PointerDown(s, idx, PointerDownEvent{X: 1, Y: 1, Button: ButtonLeft, SpaceHeld: true, Zoom: 1})
	assert.Equal(t, ModePan, m2.Mode)
}

func TestEraserToolDeletesFurnitureOnHit(t *testing.T) {
	s := baseScene()
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()
	m.SetTool(ToolEraser)

	next := m.PointerDown(s, idx, PointerDownEvent{X: 5, Y: 5, Button: ButtonLeft, Zoom: 1})

	assert.Empty(t, next.Furniture)
	assert.Equal(t, ModeIdle, m.Mode)
}

func TestDoorToolInsertsDoorOnNearestWall(t *testing.T) {
	s := baseScene()
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()
	m.SetTool(ToolDoor)

	next := m.PointerDown(s, idx, PointerDownEvent{X: 5, Y: 0, Button: ButtonLeft, Zoom: 1})

	require.Len(t, next.Doors, 1)
	assert.Equal(t, s.Walls[0].ID, next.Doors[0].WallID)
}

func TestEraserToolCommitsOnPointerUp(t *testing.T) {
	s := baseScene()
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()
	m.SetTool(ToolEraser)

	next := m.PointerDown(s, idx, PointerDownEvent{X: 5, Y: 5, Button: ButtonLeft, Zoom: 1})

	assert.True(t, m.PointerUp(next), "eraser deletion must be reported as a commit")
}

func TestDoorToolCommitsOnPointerUp(t *testing.T) {
	s := baseScene()
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()
	m.SetTool(ToolDoor)

	next := m.PointerDown(s, idx, PointerDownEvent{X: 5, Y: 0, Button: ButtonLeft, Zoom: 1})

	assert.True(t, m.PointerUp(next), "door insertion must be reported as a commit")
}

func TestEraserMissNoCommitOnPointerUp(t *testing.T) {
	s := baseScene()
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()
	m.SetTool(ToolEraser)

	next := m.PointerDown(s, idx, PointerDownEvent{X: 9, Y: 9, Button: ButtonLeft, Zoom: 1})

	assert.False(t, m.PointerUp(next), "a miss must not be reported as a commit")
}

func TestMeasureToolTogglesStartAndEnd(t *testing.T) {
	s := baseScene()
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()
	m.SetTool(ToolMeasure)

	m.PointerDown(s, idx, PointerDownEvent{X: 1, Y: 1, Button: ButtonLeft, Zoom: 1})
	assert.True(t, m.Measure.HasStart)

	m.PointerDown(s, idx, PointerDownEvent{X: 4, Y: 1, Button: ButtonLeft, Zoom: 1})
	assert.False(t, m.Measure.HasStart)
	assert.Equal(t, 4.0, m.Measure.EndX)
}

func TestShiftClickTogglesMultiSelection(t *testing.T) {
	s := baseScene()
	s.Furniture = append(s.Furniture, scene.Furniture{ID: "chair", X: 8, Y: 8, W: 1, H: 1})
	idx := spatialindex.Build(s.Furniture, spatialindex.DefaultCellSize)
	m := New()

	m.PointerDown(s, idx, PointerDownEvent{X: 5, Y: 5, Button: ButtonLeft, Zoom: 1})
	m.PointerDown(s, idx, PointerDownEvent{X: 8, Y: 8, Button: ButtonLeft, ShiftHeld: true, Zoom: 1})

	assert.ElementsMatch(t, []string{"sofa", "chair"}, m.Selection.FurnitureIDs)

	m.PointerDown(s, idx, PointerDownEvent{X: 8, Y: 8, Button: ButtonLeft, ShiftHeld: true, Zoom: 1})
	assert.ElementsMatch(t, []string{"sofa"}, m.Selection.FurnitureIDs)
}
