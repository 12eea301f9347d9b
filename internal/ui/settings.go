package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/importer"
	"github.com/piwi3910/FloorCalc/internal/model"
	"github.com/piwi3910/FloorCalc/internal/project"
)

var themeOptions = []string{"system", "light", "dark"}

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	unitsSelect := widget.NewSelect(unitOptions, nil)
	if cfg.DefaultUnits == model.UnitsMetric {
		unitsSelect.SetSelected(unitOptions[1])
	} else {
		unitsSelect.SetSelected(unitOptions[0])
	}

	materialSelect := newMaterialSelect(cfg.DefaultMaterial)
	patternSelect := newPatternSelect(cfg.DefaultPattern)

	costEntry := widget.NewEntry()
	costEntry.SetPlaceHolder("Optional")
	if cfg.DefaultCostPerUnit > 0 {
		costEntry.SetText(engine.Format2(cfg.DefaultCostPerUnit))
	}
	coverageEntry := widget.NewEntry()
	coverageEntry.SetPlaceHolder("Optional")
	if cfg.DefaultPackageCoverage > 0 {
		coverageEntry.SetText(engine.Format2(cfg.DefaultPackageCoverage))
	}

	themeSelect := widget.NewSelect(themeOptions, nil)
	themeSelect.SetSelected(cfg.Theme)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Units", unitsSelect),
		widget.NewFormItem("Default Flooring Type", materialSelect),
		widget.NewFormItem("Default Pattern", patternSelect),
		widget.NewFormItem("Default Cost per Unit Area", costEntry),
		widget.NewFormItem("Default Package Coverage", coverageEntry),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			cost, err := optionalAmount("default cost", costEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			coverage, err := optionalAmount("default package coverage", coverageEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}

			cfg.DefaultUnits = model.UnitsImperial
			if unitsSelect.Selected == unitOptions[1] {
				cfg.DefaultUnits = model.UnitsMetric
			}
			cfg.DefaultMaterial = selectedMaterial(materialSelect)
			cfg.DefaultPattern = selectedPattern(patternSelect)
			cfg.DefaultCostPerUnit = cost
			cfg.DefaultPackageCoverage = coverage
			cfg.Theme = themeSelect.Selected

			a.config = cfg
			a.applyTheme()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(480, 420))
	d.Show()
}

// optionalAmount parses a blank-or-non-negative number.
func optionalAmount(field, text string) (float64, error) {
	if text == "" {
		return 0, nil
	}
	v, err := importer.ParseNumber(text)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return v, nil
}

func (a *App) applyTheme() {
	a.theme.ApplyThemeName(a.config.Theme)
	a.app.Settings().SetTheme(a.theme)
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.catalog); err != nil {
				a.logger.Error("failed to export data", zap.String("path", path), zap.Error(err))
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("floorcalc-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and product catalog.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					path := reader.URI().Path()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.catalog = backup.Catalog
					a.applyTheme()
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					a.saveCatalog()
					a.logger.Info("imported data", zap.String("path", path), zap.Int("products", len(a.catalog.Products)))
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings, product catalog) to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return a.store.SaveConfig(a.config)
}
