package history

import (
	"sync"
	"time"

	"github.com/gofloorplan/editor/internal/scene"
)

// NudgeDebounce is the quiet period after the last nudge before a single
// snapshot is committed.
const NudgeDebounce = 400 * time.Millisecond

// Coalescer batches a continuous run of arrow-key nudges into exactly
// one History.Push call, using a sync.Mutex-guarded timer to own the
// debounce window.
type Coalescer struct {
	mu      sync.Mutex
	history *History
	timer   *time.Timer
	pending scene.Snapshot
	dirty   bool
}

// NewCoalescer returns a Coalescer that commits into h.
func NewCoalescer(h *History) *Coalescer {
	return &Coalescer{history: h}
}

// Nudge records snap as the latest state of an in-progress nudge run and
// (re)starts the debounce timer. Repeated calls within NudgeDebounce
// replace the pending snapshot without pushing to history.
func (c *Coalescer) Nudge(snap scene.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = snap
	c.dirty = true

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(NudgeDebounce, c.flush)
}

// Flush commits the pending snapshot immediately, if any, cancelling the
// debounce timer. Used on scene teardown and can be called
// explicitly to force an early commit.
func (c *Coalescer) Flush() {
	c.flush()
}

func (c *Coalescer) flush() {
	c.mu.Lock()
	if !c.dirty {
		c.mu.Unlock()
		return
	}
	snap := c.pending
	c.dirty = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.history.Push(snap)
}

// Cancel stops any pending debounce timer without committing — used when
// an in-progress nudge run is abandoned rather than completed.
func (c *Coalescer) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.dirty = false
}
