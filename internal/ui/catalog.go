package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/model"
	"github.com/piwi3910/FloorCalc/internal/project"
)

// ─── Product Catalog Dialog ────────────────────────────────

func (a *App) showCatalogDialog() {
	productList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		productList.RemoveAll()

		if len(a.catalog.Products) == 0 {
			productList.Add(widget.NewLabel("No flooring products defined."))
			return
		}

		header := container.NewGridWithColumns(6,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Type", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Price / Unit", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Box Coverage", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabel(""),
			widget.NewLabel(""),
		)
		productList.Add(header)
		productList.Add(widget.NewSeparator())

		for i := range a.catalog.Products {
			idx := i
			p := a.catalog.Products[idx]
			row := container.NewGridWithColumns(6,
				widget.NewLabel(p.Name),
				widget.NewLabel(p.Material.Label()),
				widget.NewLabel("$"+engine.Format2(p.CostPerUnit)),
				widget.NewLabel(coverageText(p.PackageCoverage)),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showProductDialog(idx, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.catalog.Products = append(a.catalog.Products[:idx:idx], a.catalog.Products[idx+1:]...)
					a.saveCatalog()
					refreshList()
				}),
			)
			productList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Product", theme.ContentAddIcon(), func() {
		a.showProductDialog(-1, refreshList)
	})

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importCatalog(refreshList)
	})

	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportCatalog()
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn)

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(productList),
	)

	d := dialog.NewCustom("Product Catalog", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

func coverageText(v float64) string {
	if v <= 0 {
		return "-"
	}
	return engine.Format2(v)
}

// showProductDialog adds a product when idx is -1 and edits it otherwise.
func (a *App) showProductDialog(idx int, onDone func()) {
	p := model.NewFlooringProduct("New Product", model.MaterialTile, 0, 0)
	title, confirm := "Add Product", "Add"
	if idx >= 0 {
		p = a.catalog.Products[idx]
		title, confirm = "Edit Product", "Save"
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Product name")
	nameEntry.SetText(p.Name)

	materialSelect := newMaterialSelect(p.Material)

	costEntry := widget.NewEntry()
	costEntry.SetText(engine.Format2(p.CostPerUnit))

	coverageEntry := widget.NewEntry()
	coverageEntry.SetPlaceHolder("Leave blank for sold by area")
	if p.PackageCoverage > 0 {
		coverageEntry.SetText(engine.Format2(p.PackageCoverage))
	}

	form := dialog.NewForm(title, confirm, "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Flooring Type", materialSelect),
			widget.NewFormItem("Cost per Unit Area", costEntry),
			widget.NewFormItem("Box Coverage", coverageEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			if nameEntry.Text == "" {
				dialog.ShowError(fmt.Errorf("product name must not be empty"), a.window)
				return
			}
			cost, err := optionalAmount("cost", costEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			coverage, err := optionalAmount("box coverage", coverageEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}

			p.Name = nameEntry.Text
			p.Material = selectedMaterial(materialSelect)
			p.CostPerUnit = cost
			p.PackageCoverage = coverage
			if idx >= 0 {
				a.catalog.Products[idx] = p
			} else {
				a.catalog.Products = append(a.catalog.Products, p)
			}
			a.saveCatalog()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(450, 320))
	form.Show()
}

// ─── Import / Export ───────────────────────────────────────

func (a *App) importCatalog(onDone func()) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, added, err := project.ImportCatalog(reader.URI().Path(), a.catalog)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.catalog = merged
		a.saveCatalog()
		onDone()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Added %d products. The catalog now contains %d products.",
				added, len(a.catalog.Products)),
			a.window)
	}, a.window)
}

func (a *App) exportCatalog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := project.SaveCatalog(writer.URI().Path(), a.catalog); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Catalog exported to %s", writer.URI().Path()),
				a.window)
		}
	}, a.window)
	d.SetFileName("catalog.json")
	d.Show()
}

// saveCatalog persists the current catalog to disk.
func (a *App) saveCatalog() {
	if err := a.store.SaveCatalog(a.catalog); err != nil {
		a.logger.Error("failed to save catalog", zap.Error(err))
		dialog.ShowError(fmt.Errorf("failed to save catalog: %w", err), a.window)
	}
}

// buildProductSelector creates a dropdown that copies a catalog product's
// material, price and box size into the room form.
func (a *App) buildProductSelector(onSelect func(model.FlooringProduct)) fyne.CanvasObject {
	names := a.catalog.Names()
	if len(names) == 0 {
		return widget.NewLabel("No products. Use Tools > Product Catalog to add some.")
	}

	productSelect := widget.NewSelect(names, func(selected string) {
		p := a.catalog.FindByName(selected)
		if p == nil {
			return
		}
		onSelect(*p)
	})
	productSelect.PlaceHolder = "Fill from product..."
	return productSelect
}
