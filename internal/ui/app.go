// Package ui is the FloorCalc desktop interface built on fyne.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/model"
	"github.com/piwi3910/FloorCalc/internal/project"
	"github.com/piwi3910/FloorCalc/internal/ui/widgets"
)

// unitOptions are the labels of the unit toggle, imperial first.
var unitOptions = []string{"Imperial (ft)", "Metric (m)"}

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	logger  *zap.Logger
	store   *project.Store
	theme   *FloorCalcTheme
	config  model.AppConfig
	catalog model.Catalog

	session     *Session
	projectPath string

	// UI references for dynamic updates
	roomsContainer  *fyne.Container
	resultContainer *fyne.Container
	unitsRadio      *widget.RadioGroup
	undoItem        *fyne.MenuItem
	redoItem        *fyne.MenuItem
}

// NewApp loads the config and catalog from store and opens an empty project.
func NewApp(application fyne.App, window fyne.Window, logger *zap.Logger, store *project.Store) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = project.NewStore("", logger)
	}

	a := &App{
		app:    application,
		window: window,
		logger: logger.Named("ui"),
		store:  store,
		theme:  NewFloorCalcTheme(),
	}
	a.config = store.LoadConfig()
	a.catalog = store.LoadCatalog()
	a.session = NewSession(a.newProject(), engine.New())

	a.theme.ApplyThemeName(a.config.Theme)
	application.Settings().SetTheme(a.theme)
	return a
}

// blankRoom returns an unnamed room with the configured defaults and no size yet.
func (a *App) blankRoom() model.Room {
	room := model.NewRoom("", 0, 0, model.MaterialTile, model.PatternStraight)
	a.config.ApplyToRoom(&room)
	return room
}

// newProject starts a project with one blank room ready to fill in.
func (a *App) newProject() model.Project {
	p := a.config.NewProject()
	p.Rooms = append(p.Rooms, a.blankRoom())
	return p
}

// SetupMenus creates the native menu bar and keyboard shortcuts.
func (a *App) SetupMenus() {
	a.undoItem = fyne.NewMenuItem("Undo", a.undo)
	a.redoItem = fyne.NewMenuItem("Redo", a.redo)

	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", a.confirmReset),
		fyne.NewMenuItem("Open Project...", a.loadProject),
		fyne.NewMenuItem("Save Project", a.saveProject),
		fyne.NewMenuItem("Save Project As...", a.saveProjectAs),
		a.recentProjectsMenu(),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Rooms from CSV...", a.importCSV),
		fyne.NewMenuItem("Import Rooms from Excel...", a.importExcel),
		fyne.NewMenuItem("Import Floor Plan (DXF)...", a.importDXF),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Estimate PDF...", a.printResults),
		fyne.NewMenuItem("Export Estimate Excel...", a.exportExcel),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		a.undoItem,
		a.redoItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add Room...", func() { a.showRoomDialog(-1) }),
		fyne.NewMenuItem("Clear All Rooms", a.confirmReset),
	)

	// Tools Menu
	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Calculate", a.runCalculate),
		fyne.NewMenuItem("Compare Patterns", a.showPatternComparison),
		fyne.NewMenuItem("Copy Share Text", a.shareResults),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Product Catalog...", a.showCatalogDialog),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Waste Factors", a.showWasteFactors),
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
	a.updateUndoMenu()

	canvas := a.window.Canvas()
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.undo() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.redo() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.saveProject() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.runCalculate() })
}

func (a *App) recentProjectsMenu() *fyne.MenuItem {
	item := fyne.NewMenuItem("Open Recent", nil)
	var items []*fyne.MenuItem
	for _, path := range a.config.RecentProjects {
		p := path
		items = append(items, fyne.NewMenuItem(p, func() { a.openProjectPath(p) }))
	}
	if len(items) == 0 {
		none := fyne.NewMenuItem("No recent projects", nil)
		none.Disabled = true
		items = append(items, none)
	}
	item.ChildMenu = fyne.NewMenu("", items...)
	return item
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About FloorCalc",
		"FloorCalc - Flooring Material Estimator\n\n"+
			"Estimates flooring area with waste, boxes to buy,\n"+
			"material cost and the underlayment, adhesive and grout\n"+
			"a project needs.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

func (a *App) showWasteFactors() {
	table := a.session.estimator.WasteFactors()
	var b strings.Builder
	for _, e := range table.Entries() {
		name := e.Material.Label()
		if e.Pattern != model.AnyPattern {
			name += " - " + e.Pattern.Label()
		} else {
			name += " - any pattern"
		}
		fmt.Fprintf(&b, "%s: %s\n", name, engine.FormatPercent(e.Factor))
	}
	fmt.Fprintf(&b, "\nAny other combination: %s", engine.FormatPercent(table.Fallback()))

	label := widget.NewLabel(b.String())
	d := dialog.NewCustom("Waste Factors", "Close", container.NewVScroll(label), a.window)
	d.Resize(fyne.NewSize(380, 420))
	d.Show()
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	split := container.NewHSplit(a.buildRoomsPanel(), a.buildResultsPanel())
	split.Offset = 0.45
	a.updateTitle()
	return split
}

// ─── Rooms Panel ───────────────────────────────────────────

func (a *App) buildRoomsPanel() fyne.CanvasObject {
	a.roomsContainer = container.NewVBox()
	a.refreshRoomsList()

	a.unitsRadio = widget.NewRadioGroup(unitOptions, func(selected string) {
		units := model.UnitsImperial
		if selected == unitOptions[1] {
			units = model.UnitsMetric
		}
		if units == a.session.Units() {
			return
		}
		a.session.SetUnits(units)
		a.logger.Debug("units changed", zap.String("units", string(units)))
		a.refreshAll()
	})
	a.unitsRadio.Horizontal = true
	a.unitsRadio.Required = true
	a.syncUnitsRadio()

	addBtn := widget.NewButtonWithIcon("Add Room", theme.ContentAddIcon(), func() {
		a.showRoomDialog(-1)
	})

	calculateBtn := widget.NewButtonWithIcon("Calculate", theme.ConfirmIcon(), a.runCalculate)
	calculateBtn.Importance = widget.HighImportance

	actions := container.NewGridWithColumns(4,
		calculateBtn,
		newButtonWithTooltip("Print", theme.DocumentPrintIcon(), "Save the estimate as a printable PDF", a.printResults),
		newButtonWithTooltip("Share", theme.ContentCopyIcon(), "Copy a short summary to the clipboard", a.shareResults),
		newButtonWithTooltip("Reset", theme.ContentClearIcon(), "Clear all rooms and start over", a.confirmReset),
	)

	return container.NewBorder(
		container.NewVBox(
			container.NewHBox(
				widget.NewLabelWithStyle("Rooms", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				layout.NewSpacer(),
				addBtn,
			),
			a.unitsRadio,
			widget.NewSeparator(),
		),
		actions,
		nil, nil,
		container.NewVScroll(a.roomsContainer),
	)
}

func (a *App) syncUnitsRadio() {
	if a.unitsRadio == nil {
		return
	}
	selected := unitOptions[0]
	if a.session.Units() == model.UnitsMetric {
		selected = unitOptions[1]
	}
	if a.unitsRadio.Selected != selected {
		a.unitsRadio.SetSelected(selected)
	}
}

func (a *App) refreshRoomsList() {
	a.roomsContainer.RemoveAll()

	rooms := a.session.Rooms()
	if len(rooms) == 0 {
		a.roomsContainer.Add(widget.NewLabel("No rooms added yet. Click 'Add Room' to begin."))
		return
	}

	units := a.session.Units()

	// Header
	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Room", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Size ("+units.LengthLabel()+")", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Flooring", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Price / Box", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(""),
		widget.NewLabel(""),
	)
	a.roomsContainer.Add(header)
	a.roomsContainer.Add(widget.NewSeparator())

	for i := range rooms {
		idx := i // capture
		r := rooms[idx]
		row := container.NewGridWithColumns(6,
			widget.NewLabel(r.DisplayName(idx+1)),
			widget.NewLabel(fmt.Sprintf("%.1f x %.1f", r.Length, r.Width)),
			widget.NewLabel(r.Material.Label()+", "+r.Pattern.Label()),
			widget.NewLabel(priceSummary(r, units)),
			newIconButtonWithTooltip(theme.DocumentCreateIcon(), "Edit room", func() {
				a.showRoomDialog(idx)
			}),
			container.NewGridWithColumns(2,
				newIconButtonWithTooltip(theme.ContentCopyIcon(), "Duplicate room", func() {
					a.applyEdit(a.session.DuplicateRoom(idx))
				}),
				newIconButtonWithTooltip(theme.DeleteIcon(), "Remove room", func() {
					a.applyEdit(a.session.RemoveRoom(idx))
				}),
			),
		)
		a.roomsContainer.Add(row)
	}
}

// priceSummary renders the optional price and package size of a room.
func priceSummary(r model.Room, units model.UnitSystem) string {
	var parts []string
	if r.CostPerUnit > 0 {
		parts = append(parts, fmt.Sprintf("$%s/%s", engine.Format2(r.CostPerUnit), units.AreaLabel()))
	}
	if r.PackageCoverage > 0 {
		parts = append(parts, fmt.Sprintf("%s %s/box", engine.Format2(r.PackageCoverage), units.AreaLabel()))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// applyEdit refreshes the UI after a session edit, showing err if it failed.
func (a *App) applyEdit(err error) {
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.refreshAll()
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(widget.NewLabel(widgets.PlaceholderText))
	return a.resultContainer
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderResults(a.session.Result(), a.session.Units()))
	a.resultContainer.Refresh()
}

func (a *App) refreshAll() {
	a.syncUnitsRadio()
	a.refreshRoomsList()
	a.refreshResults()
	a.updateUndoMenu()
	a.updateTitle()
}

func (a *App) updateUndoMenu() {
	if a.undoItem == nil {
		return
	}
	a.undoItem.Disabled = !a.session.CanUndo()
	a.redoItem.Disabled = !a.session.CanRedo()
	if menu := a.window.MainMenu(); menu != nil {
		menu.Refresh()
	}
}

func (a *App) updateTitle() {
	a.window.SetTitle(fmt.Sprintf("FloorCalc - %s", a.session.Project().Name))
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runCalculate() {
	result, err := a.session.Calculate()
	switch {
	case errors.Is(err, ErrNoRooms):
		dialog.ShowInformation("Nothing to calculate", "Add at least one room first.", a.window)
		a.refreshResults()
		return
	case errors.Is(err, engine.ErrInvalidDimensions):
		a.logger.Info("calculation rejected", zap.Error(err))
		dialog.ShowError(fmt.Errorf("please enter valid dimensions for all rooms: %w", err), a.window)
		a.refreshResults()
		return
	case err != nil:
		a.logger.Error("calculation failed", zap.Error(err))
		dialog.ShowError(err, a.window)
		return
	}

	a.logger.Debug("calculated estimate",
		zap.Int("rooms", len(result.Rooms)),
		zap.Float64("area_with_waste", result.Totals.TotalAreaWithWaste),
		zap.Int("packages", result.Totals.TotalPackages))
	a.refreshResults()
}

func (a *App) undo() {
	if a.session.Undo() {
		a.refreshAll()
	}
}

func (a *App) redo() {
	if a.session.Redo() {
		a.refreshAll()
	}
}

func (a *App) confirmReset() {
	dialog.ShowConfirm("Reset",
		"This will clear all rooms and start a new project. Continue?",
		func(ok bool) {
			if !ok {
				return
			}
			a.session.Reset(a.blankRoom())
			a.projectPath = ""
			a.session.Rename(a.config.NewProject().Name)
			a.refreshAll()
		},
		a.window,
	)
}

// requireResult returns the current estimate, telling the user to
// calculate first when there is none.
func (a *App) requireResult() (model.ProjectResult, bool) {
	result := a.session.Result()
	if result == nil || len(result.Rooms) == 0 {
		dialog.ShowInformation("No results", "Click Calculate before printing, sharing or exporting.", a.window)
		return model.ProjectResult{}, false
	}
	return *result, true
}
