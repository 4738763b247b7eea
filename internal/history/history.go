// Package history implements the editor's command/history model: a
// bounded stack of immutable scene snapshots with a redo cursor, plus
// coalescing of rapid arrow-key nudges into a single history entry.
// The log holds in-memory scene snapshots rather than committing
// anything to disk, since this engine performs no file I/O of its own.
package history

import (
	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/utilities"
)

// MaxEntries is the bounded capacity of the history stack.
const MaxEntries = 60

// History is a bounded undo/redo stack of scene snapshots.
type History struct {
	entries []scene.Snapshot
	cursor  int // index of the current entry in entries; -1 if empty
	logger  utilities.ILoggingUtility
}

// New creates an empty History. A nil logger disables logging.
func New(logger utilities.ILoggingUtility) *History {
	if logger == nil {
		logger = utilities.NewNopLoggingUtility()
	}
	return &History{cursor: -1, logger: logger}
}

// Push discards every entry after the cursor, appends snap, and advances
// the cursor. When the stack would exceed MaxEntries, the oldest entry
// is dropped so the size never exceeds MaxEntries.
func (h *History) Push(snap scene.Snapshot) {
	h.entries = append(h.entries[:h.cursor+1], snap)
	h.cursor = len(h.entries) - 1

	if len(h.entries) > MaxEntries {
		overflow := len(h.entries) - MaxEntries
		h.entries = h.entries[overflow:]
		h.cursor -= overflow
	}

	h.logger.Log(utilities.Debug, "History", "pushed snapshot", map[string]interface{}{
		"size":   len(h.entries),
		"cursor": h.cursor,
	})
}

// Undo moves the cursor back one entry and returns it. ok is false if
// there is nothing to undo.
func (h *History) Undo() (scene.Snapshot, bool) {
	if h.cursor <= 0 {
		return scene.Snapshot{}, false
	}
	h.cursor--
	h.logger.Log(utilities.Debug, "History", "undo", map[string]interface{}{"cursor": h.cursor})
	return h.entries[h.cursor], true
}

// Redo moves the cursor forward one entry and returns it. ok is false if
// there is nothing to redo.
func (h *History) Redo() (scene.Snapshot, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries)-1 {
		return scene.Snapshot{}, false
	}
	h.cursor++
	h.logger.Log(utilities.Debug, "History", "redo", map[string]interface{}{"cursor": h.cursor})
	return h.entries[h.cursor], true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return h.cursor >= 0 && h.cursor < len(h.entries)-1 }

// Len returns the current number of entries on the stack.
func (h *History) Len() int { return len(h.entries) }

// Current returns the entry at the cursor, if any.
func (h *History) Current() (scene.Snapshot, bool) {
	if h.cursor < 0 {
		return scene.Snapshot{}, false
	}
	return h.entries[h.cursor], true
}
