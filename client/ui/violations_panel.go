package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gofloorplan/editor/client/managers"
)

// ViolationsPanel is the advisory sidebar that lists the rule engine's
// findings against the most recently committed edit. It has no
// interaction of its own — Refresh re-reads the workflow manager and
// redraws the list.
type ViolationsPanel struct {
	workflowManager managers.WorkflowManager
	list            *widget.List
	empty           *widget.Label
	box             *fyne.Container

	items []string
}

// NewViolationsPanel wires wm into a fresh, empty panel. Call Refresh
// after any edit to pick up new violations.
func NewViolationsPanel(wm managers.WorkflowManager) *ViolationsPanel {
	p := &ViolationsPanel{workflowManager: wm}

	p.list = widget.NewList(
		func() int { return len(p.items) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(p.items[id])
		},
	)
	p.empty = widget.NewLabel("No issues")
	body := container.NewStack(p.list, p.empty)

	p.box = container.NewBorder(
		widget.NewLabelWithStyle("Issues", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		body,
	)
	p.Refresh()
	return p
}

// CanvasObject returns the panel's root, for placement in a border layout.
func (p *ViolationsPanel) CanvasObject() fyne.CanvasObject {
	return p.box
}

// Refresh re-reads Edit().Violations() and redraws the list.
func (p *ViolationsPanel) Refresh() {
	violations := p.workflowManager.Edit().Violations()
	p.items = make([]string, len(violations))
	for i, v := range violations {
		p.items[i] = fmt.Sprintf("[%s] %s", v.Category, v.Message)
	}
	if len(violations) == 0 {
		p.empty.Show()
		p.list.Hide()
	} else {
		p.list.Show()
		p.empty.Hide()
	}
	p.list.Refresh()
}
