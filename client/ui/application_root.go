// Package ui provides Client UI layer components for the floor-plan
// editor following iDesign methodology.
// Following iDesign namespace: gofloorplan.editor.Client.UI
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	clientutil "github.com/gofloorplan/editor/client/utilities"
	"github.com/gofloorplan/editor/client/managers"
	"github.com/gofloorplan/editor/internal/interaction"
	"github.com/gofloorplan/editor/internal/scene"
	"github.com/gofloorplan/editor/internal/templates"
	"github.com/gofloorplan/editor/internal/utilities"
)

// ApplicationRoot provides the main application controller: a single
// window hosting one open floor-plan document. There is no board
// selection/navigation layer — the editor has exactly one document at
// a time, opened via the File menu's Open/New actions.
type ApplicationRoot struct {
	app    fyne.App
	window fyne.Window

	workflowManager managers.WorkflowManager
	canvas          *CanvasEditor
	violations      *ViolationsPanel

	documentDir string
	currentPath string

	undoItem *fyne.MenuItem
	redoItem *fyne.MenuItem

	mutex sync.RWMutex
}

// NewApplicationRoot creates a new ApplicationRoot using the default
// per-user document directory.
func NewApplicationRoot() *ApplicationRoot {
	return NewApplicationRootWithDocumentDir("")
}

// NewApplicationRootWithDocumentDir creates a new ApplicationRoot
// rooted at a custom document directory, primarily for tests.
func NewApplicationRootWithDocumentDir(documentDir string) *ApplicationRoot {
	ar := &ApplicationRoot{}
	if err := ar.initializeDependencies(documentDir); err != nil {
		fmt.Printf("Warning: failed to initialize dependencies: %v\n", err)
	}
	return ar
}

// initializeDependencies wires the logging/cache utilities and an
// initial empty-room scene into a fresh WorkflowManager, mirroring
// application_root.go's initializeDependencies but trading the
// kanban-board bootstrap (BoardAccess/RuleEngine/TaskManager) for a
// floor-plan document bootstrap.
func (ar *ApplicationRoot) initializeDependencies(customDir string) error {
	dir := customDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		dir = filepath.Join(homeDir, "FloorPlanEditor", "documents")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	ar.documentDir = dir

	logger := utilities.NewLoggingUtility()
	cache := utilities.NewCacheUtility()

	initial := emptyRoomScene()
	ar.workflowManager = managers.NewWorkflowManager(initial, logger, cache)

	return nil
}

func emptyRoomScene() scene.Scene {
	room := scene.Room{
		Vertices:      templates.Generate(templates.ShapeRectangle, templates.Params{Width: 12, Depth: 10}),
		WallThickness: 0.5,
	}
	return scene.Scene{
		Room:       room,
		Walls:      scene.RebuildWalls(room),
		Zoom:       1,
		GridSize:   1,
		SnapToGrid: true,
		ShowGrid:   true,
	}
}

// StartApplication initializes the Fyne application, builds the main
// window, and blocks in ShowAndRun until the user exits.
func (ar *ApplicationRoot) StartApplication() error {
	ar.mutex.Lock()
	defer ar.mutex.Unlock()

	ar.app = app.New()
	if ar.app == nil {
		return fmt.Errorf("failed to create Fyne application")
	}

	ar.window = ar.app.NewWindow("Floor Plan Editor")
	if ar.window == nil {
		return fmt.Errorf("failed to create main window")
	}
	ar.window.Resize(fyne.NewSize(1280, 800))
	clientutil.CenterWindow(ar.window)

	ar.canvas = NewCanvasEditor(ar.workflowManager)
	ar.violations = NewViolationsPanel(ar.workflowManager)
	ar.canvas.SetOnFrameChanged(func() {
		ar.refreshMenuState()
		ar.violations.Refresh()
	})

	ar.window.SetMainMenu(ar.buildMainMenu())
	ar.window.SetContent(container.NewBorder(ar.buildToolbar(), nil, nil, ar.violations.CanvasObject(), ar.canvas))
	ar.window.Canvas().Focus(ar.canvas)

	ar.window.SetCloseIntercept(func() {
		ar.workflowManager.History().Flush()
		ar.app.Quit()
	})

	ar.refreshMenuState()
	ar.window.ShowAndRun()
	return nil
}

func (ar *ApplicationRoot) buildMainMenu() *fyne.MainMenu {
	ar.undoItem = fyne.NewMenuItem("Undo", func() { ar.undo() })
	ar.redoItem = fyne.NewMenuItem("Redo", func() { ar.redo() })

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Room...", func() { ar.showNewRoomDialog() }),
		fyne.NewMenuItem("Open...", func() { ar.showOpenDialog() }),
		fyne.NewMenuItem("Save As...", func() { ar.showSaveDialog() }),
	)
	editMenu := fyne.NewMenu("Edit", ar.undoItem, ar.redoItem)
	return fyne.NewMainMenu(fileMenu, editMenu)
}

func (ar *ApplicationRoot) buildToolbar() *widget.Toolbar {
	setTool := func(t interaction.Tool) func() {
		return func() {
			ar.workflowManager.Edit().SetTool(t)
			ar.canvas.Refresh()
		}
	}
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentCutIcon(), setTool(interaction.ToolSelect)),
		widget.NewToolbarAction(theme.MoveUpIcon(), setTool(interaction.ToolPan)),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentAddIcon(), setTool(interaction.ToolDoor)),
		widget.NewToolbarAction(theme.ViewRestoreIcon(), setTool(interaction.ToolWindow)),
		widget.NewToolbarAction(theme.ContentClearIcon(), setTool(interaction.ToolEraser)),
		widget.NewToolbarAction(theme.SearchIcon(), setTool(interaction.ToolMeasure)),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { ar.undo() }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { ar.redo() }),
	)
}

func (ar *ApplicationRoot) undo() {
	ar.workflowManager.History().Undo()
	ar.canvas.Refresh()
	ar.refreshMenuState()
}

func (ar *ApplicationRoot) redo() {
	ar.workflowManager.History().Redo()
	ar.canvas.Refresh()
	ar.refreshMenuState()
}

func (ar *ApplicationRoot) refreshMenuState() {
	if ar.undoItem == nil || ar.redoItem == nil {
		return
	}
	ar.undoItem.Disabled = !ar.workflowManager.History().CanUndo()
	ar.redoItem.Disabled = !ar.workflowManager.History().CanRedo()
}

func (ar *ApplicationRoot) showNewRoomDialog() {
	d := NewTemplateDialog(ar.workflowManager, ar.window)
	d.SetOnApplied(func() {
		ar.canvas.Refresh()
		ar.refreshMenuState()
	})
	d.Show()
}

func (ar *ApplicationRoot) showOpenDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			clientutil.ShowErrorDialog("Error", err.Error(), ar.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		ar.loadFrom(reader)
	}, ar.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".floorplan", ".json"}))
	if lister, err := storage.ListerForURI(storage.NewFileURI(ar.documentDir)); err == nil {
		fd.SetLocation(lister)
	}
	fd.Show()
}

func (ar *ApplicationRoot) loadFrom(reader fyne.URIReadCloser) {
	content := make([]byte, 0, 4096)
	buf := make([]byte, 4096)
	for {
		n, err := reader.Read(buf)
		content = append(content, buf[:n]...)
		if err != nil {
			break
		}
	}
	if err := ar.workflowManager.Document().Load(content); err != nil {
		clientutil.ShowErrorDialog("Error", err.Error(), ar.window)
		return
	}
	ar.currentPath = reader.URI().Path()
	ar.canvas.Refresh()
	ar.refreshMenuState()
}

func (ar *ApplicationRoot) showSaveDialog() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			clientutil.ShowErrorDialog("Error", err.Error(), ar.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()
		content, err := ar.workflowManager.Document().Save()
		if err != nil {
			clientutil.ShowErrorDialog("Error", err.Error(), ar.window)
			return
		}
		if _, err := writer.Write(content); err != nil {
			clientutil.ShowErrorDialog("Error", err.Error(), ar.window)
			return
		}
		ar.currentPath = writer.URI().Path()
	}, ar.window)
	fd.SetFileName("floorplan.json")
	if lister, err := storage.ListerForURI(storage.NewFileURI(ar.documentDir)); err == nil {
		fd.SetLocation(lister)
	}
	fd.Show()
}
