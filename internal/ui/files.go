package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/FloorCalc/internal/export"
	"github.com/piwi3910/FloorCalc/internal/importer"
	"github.com/piwi3910/FloorCalc/internal/project"
)

// ─── Project Files ─────────────────────────────────────────

func (a *App) saveProject() {
	if a.projectPath == "" {
		a.saveProjectAs()
		return
	}
	a.writeProject(a.projectPath)
}

func (a *App) saveProjectAs() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		a.writeProject(project.EnsureExtension(writer.URI().Path()))
	}, a.window)
	d.SetFileName(a.session.Project().Name + project.FileExtension)
	d.Show()
}

func (a *App) writeProject(path string) {
	if err := a.store.SaveProject(path, a.session.Project(), &a.config); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.projectPath = path
	a.SetupMenus()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openProjectPath(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) openProjectPath(path string) {
	proj, err := a.store.OpenProject(path, &a.config)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.session.Load(proj)
	a.projectPath = path
	a.SetupMenus()
	a.refreshAll()
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportCSV(reader.URI().Path())
		a.handleImportResult(result, "Import CSV")
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportExcel(reader.URI().Path())
		a.handleImportResult(result, "Import Excel")
	}, a.window)
}

// importDXF asks for the drawing scale, then reads closed outlines as rooms.
func (a *App) importDXF() {
	scaleEntry := widget.NewEntry()
	scaleEntry.SetText("1")

	form := dialog.NewForm("Import Floor Plan", "Choose File...", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem(fmt.Sprintf("Drawing units per %s", a.session.Units().LengthLabel()), scaleEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			perUnit, err := importer.ParseNumber(scaleEntry.Text)
			if err != nil || perUnit <= 0 {
				dialog.ShowError(fmt.Errorf("drawing scale must be a positive number"), a.window)
				return
			}
			dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil || reader == nil {
					return
				}
				defer reader.Close()

				result := importer.ImportDXF(reader.URI().Path(), 1/perUnit)
				a.handleImportResult(result, "Import DXF")
			}, a.window)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(380, 180))
	form.Show()
}

func (a *App) handleImportResult(result importer.ImportResult, label string) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	// Warnings are logged, they do not block the import
	for _, w := range result.Warnings {
		a.logger.Warn("import warning", zap.String("source", label), zap.String("warning", w))
	}

	if len(result.Rooms) > 0 {
		a.session.AddRooms(result.Rooms, label)
		a.refreshAll()
		a.logger.Info("imported rooms", zap.String("source", label),
			zap.Int("rooms", len(result.Rooms)), zap.Int("errors", len(result.Errors)))

		msg := fmt.Sprintf("Successfully imported %d rooms.", len(result.Rooms))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}

// ─── Export ────────────────────────────────────────────────

// printResults saves the estimate as a PDF suitable for printing.
func (a *App) printResults() {
	result, ok := a.requireResult()
	if !ok {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportPDF(path, a.session.Project(), result); err != nil {
			a.logger.Error("failed to export pdf", zap.String("path", path), zap.Error(err))
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Estimate saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(a.session.Project().Name + "-estimate.pdf")
	d.Show()
}

func (a *App) exportExcel() {
	result, ok := a.requireResult()
	if !ok {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportExcel(path, a.session.Project(), result); err != nil {
			a.logger.Error("failed to export excel", zap.String("path", path), zap.Error(err))
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Estimate saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(a.session.Project().Name + "-estimate.xlsx")
	d.Show()
}

// shareResults copies a short summary of the estimate to the clipboard.
func (a *App) shareResults() {
	result, ok := a.requireResult()
	if !ok {
		return
	}
	text := export.ShareText(result, a.session.Units(), "")
	a.app.Clipboard().SetContent(text)
	dialog.ShowInformation("Copied", "Results copied to clipboard!\n\n"+text, a.window)
}
