// Package managers provides client-side orchestration that sits between
// the Fyne UI layer and the pure editing engines in internal/. Following
// iDesign namespace conventions, this is the Client.Managers layer.
package managers

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofloorplan/editor/internal/history"
	"github.com/gofloorplan/editor/internal/hittest"
	"github.com/gofloorplan/editor/internal/interaction"
	"github.com/gofloorplan/editor/internal/render"
	"github.com/gofloorplan/editor/internal/rules"
	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/serialize"
	"github.com/gofloorplan/editor/internal/spatialindex"
	"github.com/gofloorplan/editor/internal/templates"
	"github.com/gofloorplan/editor/internal/utilities"
)

// WorkflowManager orchestrates floor-plan editing by coordinating the
// pure internal/interaction state machine and internal/scene mutations
// with the Fyne UI's event stream. It owns the one mutable scene
// reference of the running editor.
type WorkflowManager interface {
	Edit() IEdit
	History() IHistory
	Document() IDocument
}

// IEdit drives scene mutation from UI input events.
type IEdit interface {
	PointerDown(ev interaction.PointerDownEvent)
	PointerMove(ev interaction.PointerMoveEvent)
	PointerUp()
	Wheel(ev interaction.WheelEvent)
	KeyDown(key interaction.Key, shiftHeld bool)
	SetTool(tool interaction.Tool)
	Scene() scene.Scene
	Overlays() render.Overlays
	Violations() []rules.RuleViolation
}

// IHistory exposes undo/redo over the command stack.
type IHistory interface {
	CanUndo() bool
	CanRedo() bool
	Undo()
	Redo()
	// Flush commits any pending coalesced nudge immediately, for callers
	// that need the history stack settled before tearing down (e.g. a
	// window close) without waiting out the debounce window.
	Flush()
}

// IDocument handles whole-scene lifecycle: new/load/save and applying
// a room template or furniture-library item.
type IDocument interface {
	NewRoom(shape templates.Shape, params templates.Params) error
	ApplyTemplate(name string) error
	AddFromLibrary(productID string, x, y float64) error
	Load(content []byte) error
	Save() ([]byte, error)
}

// Data Types for workflow state telemetry: begin/end bookkeeping
// scoped to the editor's own operation types.
type WorkflowType string
type WorkflowStatus string

const (
	WorkflowTypePointer  WorkflowType = "pointer"
	WorkflowTypeWheel    WorkflowType = "wheel"
	WorkflowTypeKeyboard WorkflowType = "keyboard"
	WorkflowTypeHistory  WorkflowType = "history"
	WorkflowTypeDocument WorkflowType = "document"

	WorkflowStatusPending   WorkflowStatus = "pending"
	WorkflowStatusCompleted WorkflowStatus = "completed"
	WorkflowStatusFailed    WorkflowStatus = "failed"
)

type workflowState struct {
	WorkflowID   string
	WorkflowType WorkflowType
	Status       WorkflowStatus
	StartTime    time.Time
	LastUpdate   time.Time
}

// workflowManager is the shared mutable state behind all three facets.
// The mutex exists so the Fyne render goroutine can read the latest
// scene while the event-dispatch path mutates it; it is never held
// across an event's full dispatch.
type workflowManager struct {
	mu sync.RWMutex

	current scene.Scene
	machine *interaction.Machine
	hist    *history.History
	coal    *history.Coalescer
	index   *spatialindex.MemoizedBuilder

	rules            *rules.Engine
	violations       rules.RuleEvaluationResult
	pointerDownScene scene.Scene

	logger utilities.ILoggingUtility

	activeWorkflows map[string]*workflowState
	wfMu            sync.Mutex
}

// NewWorkflowManager wires a fresh document into the editor's
// interaction machine and history stack.
func NewWorkflowManager(initial scene.Scene, logger utilities.ILoggingUtility, cache utilities.ICacheUtility) WorkflowManager {
	if logger == nil {
		logger = utilities.NewNopLoggingUtility()
	}
	h := history.New(logger)
	h.Push(initial.ToSnapshot())

	wm := &workflowManager{
		current:         initial,
		machine:         interaction.New(),
		hist:            h,
		logger:          logger,
		index:           spatialindex.NewMemoizedBuilder(cache, spatialindex.DefaultCellSize),
		rules:           rules.NewEngine(),
		activeWorkflows: make(map[string]*workflowState),
	}
	wm.coal = history.NewCoalescer(h)
	wm.violations = wm.rules.EvaluateEdit(initial, initial)
	return wm
}

// evaluateRules runs the rule engine over a prev->next edit and stores
// the result for Violations to read. Caller must hold wm.mu.
func (wm *workflowManager) evaluateRules(prev, next scene.Scene) {
	wm.violations = wm.rules.EvaluateEdit(prev, next)
}

func (wm *workflowManager) Edit() IEdit         { return &editFacet{wm: wm} }
func (wm *workflowManager) History() IHistory   { return &historyFacet{wm: wm} }
func (wm *workflowManager) Document() IDocument { return &documentFacet{wm: wm} }

func (wm *workflowManager) beginWorkflow(t WorkflowType) string {
	wm.wfMu.Lock()
	defer wm.wfMu.Unlock()
	id := fmt.Sprintf("%s_%d", t, time.Now().UnixNano())
	wm.activeWorkflows[id] = &workflowState{WorkflowID: id, WorkflowType: t, Status: WorkflowStatusPending, StartTime: time.Now(), LastUpdate: time.Now()}
	return id
}

func (wm *workflowManager) endWorkflow(id string, err error) {
	wm.wfMu.Lock()
	defer wm.wfMu.Unlock()
	wf, ok := wm.activeWorkflows[id]
	if !ok {
		return
	}
	wf.LastUpdate = time.Now()
	if err != nil {
		wf.Status = WorkflowStatusFailed
		wm.logger.LogError(string(wf.WorkflowType), err, map[string]interface{}{"workflow_id": id})
	} else {
		wf.Status = WorkflowStatusCompleted
	}
	delete(wm.activeWorkflows, id)
}

// editFacet dispatches pointer/wheel/keyboard events into the
// interaction state machine, committing to history on pointer-up and
// coalescing nudges via the shared Coalescer.
type editFacet struct{ wm *workflowManager }

func (e *editFacet) PointerDown(ev interaction.PointerDownEvent) {
	wm := e.wm
	id := wm.beginWorkflow(WorkflowTypePointer)
	wm.mu.Lock()
	wm.pointerDownScene = wm.current
	idx := wm.index.Build(wm.current.Furniture)
	wm.current = wm.machine.PointerDown(wm.current, idx, ev)
	wm.mu.Unlock()
	wm.endWorkflow(id, nil)
}

func (e *editFacet) PointerMove(ev interaction.PointerMoveEvent) {
	wm := e.wm
	wm.mu.Lock()
	wm.current = wm.machine.PointerMove(wm.current, ev)
	wm.mu.Unlock()
}

func (e *editFacet) PointerUp() {
	wm := e.wm
	wm.mu.Lock()
	commit := wm.machine.PointerUp(wm.current)
	if commit {
		wm.hist.Push(wm.current.ToSnapshot())
		wm.evaluateRules(wm.pointerDownScene, wm.current)
	}
	wm.mu.Unlock()
}

func (e *editFacet) Wheel(ev interaction.WheelEvent) {
	wm := e.wm
	wm.mu.Lock()
	wm.current = interaction.Wheel(wm.current, ev)
	wm.mu.Unlock()
}

func (e *editFacet) KeyDown(key interaction.Key, shiftHeld bool) {
	wm := e.wm
	id := wm.beginWorkflow(WorkflowTypeKeyboard)
	wm.mu.Lock()
	prev := wm.current
	wm.current = wm.machine.KeyDown(wm.current, key, shiftHeld, wm.hist, wm.coal)
	wm.evaluateRules(prev, wm.current)
	wm.mu.Unlock()
	wm.endWorkflow(id, nil)
}

func (e *editFacet) SetTool(tool interaction.Tool) {
	e.wm.mu.Lock()
	e.wm.machine.SetTool(tool)
	e.wm.mu.Unlock()
}

func (e *editFacet) Scene() scene.Scene {
	e.wm.mu.RLock()
	defer e.wm.mu.RUnlock()
	return e.wm.current
}

func (e *editFacet) Overlays() render.Overlays {
	wm := e.wm
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	m := wm.machine
	var opening hittest.OpeningHit
	if m.Selection.OpeningID != "" {
		opening = hittest.OpeningHit{Kind: m.Selection.OpeningKind, ID: m.Selection.OpeningID}
	}
	return render.Overlays{
		SelectedFurniture: append([]string(nil), m.Selection.FurnitureIDs...),
		SelectedOpening:   opening,
		Guides:            m.Guides,
		Collision:         m.Collision,
		RubberBand:         m.RubberBand,
		HasRubberBand:     m.Mode == interaction.ModeRubberBand,
		Measure: render.MeasureOverlay{
			Active: m.Measure.HasStart && m.Mode == interaction.ModeMeasure,
			StartX: m.Measure.StartX, StartY: m.Measure.StartY,
			EndX: m.Measure.EndX, EndY: m.Measure.EndY,
		},
		Fullscreen: m.Tool != interaction.ToolPan,
	}
}

// Violations returns the rule engine's findings against the most
// recently committed edit, for the sidebar panel to render.
func (e *editFacet) Violations() []rules.RuleViolation {
	e.wm.mu.RLock()
	defer e.wm.mu.RUnlock()
	return e.wm.violations.Violations
}

// historyFacet is a thin read/dispatch wrapper over *history.History.
type historyFacet struct{ wm *workflowManager }

func (h *historyFacet) CanUndo() bool {
	h.wm.mu.RLock()
	defer h.wm.mu.RUnlock()
	return h.wm.hist.CanUndo()
}

func (h *historyFacet) CanRedo() bool {
	h.wm.mu.RLock()
	defer h.wm.mu.RUnlock()
	return h.wm.hist.CanRedo()
}

func (h *historyFacet) Undo() {
	wm := h.wm
	id := wm.beginWorkflow(WorkflowTypeHistory)
	wm.mu.Lock()
	if snap, ok := wm.hist.Undo(); ok {
		wm.current = wm.current.WithSnapshot(snap)
	}
	wm.mu.Unlock()
	wm.endWorkflow(id, nil)
}

func (h *historyFacet) Redo() {
	wm := h.wm
	id := wm.beginWorkflow(WorkflowTypeHistory)
	wm.mu.Lock()
	if snap, ok := wm.hist.Redo(); ok {
		wm.current = wm.current.WithSnapshot(snap)
	}
	wm.mu.Unlock()
	wm.endWorkflow(id, nil)
}

func (h *historyFacet) Flush() {
	h.wm.mu.RLock()
	coal := h.wm.coal
	h.wm.mu.RUnlock()
	coal.Flush()
}

// documentFacet handles whole-document operations: new room shapes,
// template/catalog application, and JSON load/save.
type documentFacet struct{ wm *workflowManager }

func (d *documentFacet) resetTo(next scene.Scene) {
	wm := d.wm
	wm.mu.Lock()
	prev := wm.current
	wm.current = next
	wm.machine = interaction.New()
	wm.hist = history.New(wm.logger)
	wm.hist.Push(next.ToSnapshot())
	wm.coal = history.NewCoalescer(wm.hist)
	wm.evaluateRules(prev, next)
	wm.mu.Unlock()
}

func (d *documentFacet) NewRoom(shape templates.Shape, params templates.Params) error {
	id := d.wm.beginWorkflow(WorkflowTypeDocument)
	vertices := templates.Generate(shape, params)
	room := scene.Room{Vertices: vertices, WallThickness: 0.5}
	next := scene.Scene{Room: room, Walls: scene.RebuildWalls(room), Zoom: 1, GridSize: 1}
	d.resetTo(next)
	d.wm.endWorkflow(id, nil)
	return nil
}

func (d *documentFacet) ApplyTemplate(name string) error {
	id := d.wm.beginWorkflow(WorkflowTypeDocument)
	def, ok := templates.ByName(templates.DefaultCatalog(), name)
	if !ok {
		err := fmt.Errorf("ApplyTemplate: unknown template %q", name)
		d.wm.endWorkflow(id, err)
		return err
	}
	d.wm.mu.Lock()
	prev := d.wm.current
	d.wm.current = templates.ApplyTemplate(d.wm.current, def)
	d.wm.hist.Push(d.wm.current.ToSnapshot())
	d.wm.evaluateRules(prev, d.wm.current)
	d.wm.mu.Unlock()
	d.wm.endWorkflow(id, nil)
	return nil
}

func (d *documentFacet) AddFromLibrary(productID string, x, y float64) error {
	id := d.wm.beginWorkflow(WorkflowTypeDocument)
	item, ok := templates.ByProductID(templates.FurnitureLibrary(), productID)
	if !ok {
		err := fmt.Errorf("AddFromLibrary: unknown product %q", productID)
		d.wm.endWorkflow(id, err)
		return err
	}
	d.wm.mu.Lock()
	prev := d.wm.current
	d.wm.current = templates.AddFromLibrary(d.wm.current, item, x, y)
	d.wm.hist.Push(d.wm.current.ToSnapshot())
	d.wm.evaluateRules(prev, d.wm.current)
	d.wm.mu.Unlock()
	d.wm.endWorkflow(id, nil)
	return nil
}

func (d *documentFacet) Load(content []byte) error {
	id := d.wm.beginWorkflow(WorkflowTypeDocument)
	next, err := serialize.Deserialize(content)
	if err != nil {
		d.wm.endWorkflow(id, err)
		return fmt.Errorf("Load: %w", err)
	}
	d.resetTo(next)
	d.wm.endWorkflow(id, nil)
	return nil
}

func (d *documentFacet) Save() ([]byte, error) {
	id := d.wm.beginWorkflow(WorkflowTypeDocument)
	d.wm.mu.RLock()
	s := d.wm.current
	d.wm.mu.RUnlock()
	content, err := serialize.Serialize(s)
	if err != nil {
		d.wm.endWorkflow(id, err)
		return nil, fmt.Errorf("Save: %w", err)
	}
	d.wm.endWorkflow(id, nil)
	return content, nil
}
