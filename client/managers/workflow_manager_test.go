package managers

import (
	"testing"

	"github.com/gofloorplan/editor/internal/interaction"
	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/templates"
	"github.com/gofloorplan/editor/internal/utilities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareRoomScene() scene.Scene {
	room := scene.Room{
		Vertices: []scene.RoomVertex{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		},
		WallThickness: 0.5,
	}
	return scene.Scene{
		Room:  room,
		Walls: scene.RebuildWalls(room),
		Zoom:  1,
		GridSize: 1,
	}
}

func newTestManager() *workflowManager {
	return NewWorkflowManager(squareRoomScene(), utilities.NewNopLoggingUtility(), utilities.NewCacheUtility()).(*workflowManager)
}

func withSofa(s scene.Scene) scene.Scene {
	s.Furniture = append(append([]scene.Furniture(nil), s.Furniture...), scene.Furniture{ID: "sofa", X: 5, Y: 5, W: 2, H: 2})
	return s
}

func TestPointerDownSelectsFurniture(t *testing.T) {
	wm := newTestManager()
	wm.current = withSofa(wm.current)

	wm.Edit().PointerDown(interaction.PointerDownEvent{X: 5, Y: 5, Button: interaction.ButtonLeft, Zoom: 1})

	assert.Equal(t, []string{"sofa"}, wm.Edit().Overlays().SelectedFurniture)
}

func TestPointerUpCommitsHistoryOnDrag(t *testing.T) {
	wm := newTestManager()
	wm.current = withSofa(wm.current)
	before := wm.hist.Len()

	edit := wm.Edit()
	edit.PointerDown(interaction.PointerDownEvent{X: 5, Y: 5, Button: interaction.ButtonLeft, Zoom: 1})
	edit.PointerMove(interaction.PointerMoveEvent{X: 6, Y: 6, Zoom: 1})
	edit.PointerUp()

	assert.Greater(t, wm.hist.Len(), before)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	wm := newTestManager()
	wm.current = withSofa(wm.current)
	wm.hist.Push(wm.current.ToSnapshot())

	h := wm.History()
	require.True(t, h.CanUndo())
	h.Undo()
	assert.Empty(t, wm.current.Furniture)

	require.True(t, h.CanRedo())
	h.Redo()
	assert.Len(t, wm.current.Furniture, 1)
}

func TestNewRoomResetsSceneAndHistory(t *testing.T) {
	wm := newTestManager()
	wm.current = withSofa(wm.current)
	wm.hist.Push(wm.current.ToSnapshot())

	err := wm.Document().NewRoom(templates.ShapeRectangle, templates.Params{Width: 12, Depth: 8})
	require.NoError(t, err)

	assert.Empty(t, wm.current.Furniture)
	assert.False(t, wm.History().CanUndo())
}

func TestAddFromLibraryUnknownProductErrors(t *testing.T) {
	wm := newTestManager()
	err := wm.Document().AddFromLibrary("does-not-exist", 1, 1)
	assert.Error(t, err)
}

func TestPointerUpCommitsEraserDeletionToHistory(t *testing.T) {
	wm := newTestManager()
	wm.current = withSofa(wm.current)
	before := wm.hist.Len()

	edit := wm.Edit()
	edit.SetTool(interaction.ToolEraser)
	edit.PointerDown(interaction.PointerDownEvent{X: 5, Y: 5, Button: interaction.ButtonLeft, Zoom: 1})
	edit.PointerUp()

	assert.Greater(t, wm.hist.Len(), before)
	assert.Empty(t, wm.Edit().Scene().Furniture)
}

func TestUndersizedFurnitureSurfacesAsViolation(t *testing.T) {
	wm := newTestManager()
	wm.current = withSofa(wm.current)
	wm.current.Furniture[0].W = 0.1

	edit := wm.Edit()
	edit.PointerDown(interaction.PointerDownEvent{X: 5, Y: 5, Button: interaction.ButtonLeft, Zoom: 1})
	edit.PointerMove(interaction.PointerMoveEvent{X: 6, Y: 6, Zoom: 1})
	edit.PointerUp()

	violations := edit.Violations()
	require.NotEmpty(t, violations)
	assert.Equal(t, "furniture-min-size", violations[0].RuleID)
}

func TestHistoryFlushCommitsPendingNudge(t *testing.T) {
	wm := newTestManager()
	wm.current = withSofa(wm.current)
	before := wm.hist.Len()

	wm.coal.Nudge(wm.current.ToSnapshot())
	assert.Equal(t, before, wm.hist.Len(), "a nudge alone must not commit before the debounce window")

	wm.History().Flush()
	assert.Greater(t, wm.hist.Len(), before, "Flush must commit the pending nudge immediately")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	wm := newTestManager()
	wm.current = withSofa(wm.current)

	content, err := wm.Document().Save()
	require.NoError(t, err)

	wm2 := newTestManager()
	require.NoError(t, wm2.Document().Load(content))
	assert.Len(t, wm2.current.Furniture, 1)
	assert.Equal(t, "sofa", wm2.current.Furniture[0].ID)
}
