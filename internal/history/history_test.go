package history

import (
	"testing"
	"time"

	"github.com/gofloorplan/editor/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(n int) scene.Snapshot {
	return scene.Snapshot{
		Furniture: []scene.Furniture{{ID: "f", X: float64(n)}},
	}
}

func TestPushUndoRedo(t *testing.T) {
	h := New(nil)
	h.Push(snap(1))
	h.Push(snap(2))

	require.True(t, h.CanUndo())
	s, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, snap(1), s)

	s, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, snap(2), s)

	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestUndoRedoMonotonicity(t *testing.T) {
	h := New(nil)
	for i := 0; i < 5; i++ {
		h.Push(snap(i))
	}

	for i := 0; i < 4; i++ {
		_, ok := h.Undo()
		require.True(t, ok)
	}
	for i := 0; i < 4; i++ {
		_, ok := h.Redo()
		require.True(t, ok)
	}

	current, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, snap(4), current)
}

func TestBoundedHistory(t *testing.T) {
	h := New(nil)
	for i := 0; i < MaxEntries+10; i++ {
		h.Push(snap(i))
	}
	assert.Equal(t, MaxEntries, h.Len())

	current, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, snap(MaxEntries+9), current)
}

func TestPushDiscardsRedoLine(t *testing.T) {
	h := New(nil)
	h.Push(snap(1))
	h.Push(snap(2))
	h.Undo()
	h.Push(snap(3))

	assert.False(t, h.CanRedo())
	assert.Equal(t, 2, h.Len())
}

func TestCoalescerDebouncesNudges(t *testing.T) {
	h := New(nil)
	c := NewCoalescer(h)

	for i := 0; i < 4; i++ {
		c.Nudge(snap(i))
	}
	assert.Equal(t, 0, h.Len(), "no push before debounce elapses")

	time.Sleep(NudgeDebounce + 100*time.Millisecond)
	assert.Equal(t, 1, h.Len(), "exactly one push after debounce")

	current, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, snap(3), current)
}

func TestCoalescerFlush(t *testing.T) {
	h := New(nil)
	c := NewCoalescer(h)

	c.Nudge(snap(7))
	c.Flush()
	assert.Equal(t, 1, h.Len())

	c.Flush() // no-op, nothing pending
	assert.Equal(t, 1, h.Len())
}

func TestCoalescerCancel(t *testing.T) {
	h := New(nil)
	c := NewCoalescer(h)

	c.Nudge(snap(1))
	c.Cancel()

	time.Sleep(NudgeDebounce + 100*time.Millisecond)
	assert.Equal(t, 0, h.Len())
}
