package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	clientutil "github.com/gofloorplan/editor/client/utilities"
	"github.com/gofloorplan/editor/client/managers"
	"github.com/gofloorplan/editor/internal/templates"
)

// TemplateDialog presents a modal room-shape/dimension picker, grounded
// on create_task_dialog.go's modal form pattern, generalized from task
// field entry to room parameters.
type TemplateDialog struct {
	workflowManager managers.WorkflowManager
	parentWindow    fyne.Window
	onApplied       func()
}

// NewTemplateDialog wires wm into a fresh dialog controller.
func NewTemplateDialog(wm managers.WorkflowManager, parent fyne.Window) *TemplateDialog {
	return &TemplateDialog{workflowManager: wm, parentWindow: parent}
}

// SetOnApplied registers a callback fired after a successful New Room.
func (d *TemplateDialog) SetOnApplied(fn func()) {
	d.onApplied = fn
}

// Show displays the shape/dimension form and, on confirm, replaces the
// current document via Document().NewRoom.
func (d *TemplateDialog) Show() {
	shapeOptions := []string{"Rectangle", "L-Shaped", "U-Shaped", "T-Shaped"}
	shapeSelect := widget.NewSelect(shapeOptions, nil)
	shapeSelect.SetSelected(shapeOptions[0])

	widthEntry := widget.NewEntry()
	widthEntry.SetText("12")
	depthEntry := widget.NewEntry()
	depthEntry.SetText("10")
	cutWidthEntry := widget.NewEntry()
	cutWidthEntry.SetText("4")
	cutDepthEntry := widget.NewEntry()
	cutDepthEntry.SetText("4")

	items := []*widget.FormItem{
		widget.NewFormItem("Shape", shapeSelect),
		widget.NewFormItem("Width (ft)", widthEntry),
		widget.NewFormItem("Depth (ft)", depthEntry),
		widget.NewFormItem("Cut Width (ft)", cutWidthEntry),
		widget.NewFormItem("Cut Depth (ft)", cutDepthEntry),
	}

	form := dialog.NewForm("New Room", "Create", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		shape := shapeFromLabel(shapeSelect.Selected)
		params := templates.Params{
			Width:    parseFeet(widthEntry.Text, 12),
			Depth:    parseFeet(depthEntry.Text, 10),
			CutWidth: parseFeet(cutWidthEntry.Text, 4),
			CutDepth: parseFeet(cutDepthEntry.Text, 4),
		}
		if err := d.workflowManager.Document().NewRoom(shape, params); err != nil {
			dialog.ShowError(err, d.parentWindow)
			return
		}
		if d.onApplied != nil {
			d.onApplied()
		}
	}, d.parentWindow)

	form.Show()
}

func shapeFromLabel(label string) templates.Shape {
	switch label {
	case "L-Shaped":
		return templates.ShapeL
	case "U-Shaped":
		return templates.ShapeU
	case "T-Shaped":
		return templates.ShapeT
	default:
		return templates.ShapeRectangle
	}
}

func parseFeet(text string, fallback float64) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fallback
	}
	result, err := clientutil.ValidateNumber(v, clientutil.NumericConstraints{PositiveOnly: true})
	if err != nil || !result.Valid {
		return fallback
	}
	return v
}
