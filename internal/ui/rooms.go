package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/importer"
	"github.com/piwi3910/FloorCalc/internal/model"
)

func materialLabels() []string {
	labels := make([]string, len(model.Materials))
	for i, m := range model.Materials {
		labels[i] = m.Label()
	}
	return labels
}

func patternLabels() []string {
	labels := make([]string, len(model.Patterns))
	for i, p := range model.Patterns {
		labels[i] = p.Label()
	}
	return labels
}

func newMaterialSelect(current model.Material) *widget.Select {
	s := widget.NewSelect(materialLabels(), nil)
	if !current.Valid() {
		current = model.MaterialTile
	}
	s.SetSelected(current.Label())
	return s
}

func newPatternSelect(current model.Pattern) *widget.Select {
	s := widget.NewSelect(patternLabels(), nil)
	if !current.Valid() {
		current = model.PatternStraight
	}
	s.SetSelected(current.Label())
	return s
}

func selectedMaterial(s *widget.Select) model.Material {
	if m, err := model.ParseMaterial(s.Selected); err == nil {
		return m
	}
	return model.MaterialTile
}

func selectedPattern(s *widget.Select) model.Pattern {
	if p, err := model.ParsePattern(s.Selected); err == nil {
		return p
	}
	return model.PatternStraight
}

func amountText(v float64) string {
	if v <= 0 {
		return ""
	}
	return engine.Format2(v)
}

// showRoomDialog adds a room when idx is -1 and edits room idx otherwise.
func (a *App) showRoomDialog(idx int) {
	units := a.session.Units()

	room := a.blankRoom()
	title, confirm := "Add Room", "Add"
	if idx >= 0 {
		room = a.session.Rooms()[idx]
		title, confirm = "Edit Room", "Save"
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(fmt.Sprintf("Room %d", len(a.session.Rooms())+1))
	nameEntry.SetText(room.Name)

	lengthEntry := widget.NewEntry()
	lengthEntry.SetPlaceHolder("e.g. 12.5")
	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("e.g. 10")
	if room.Length > 0 {
		lengthEntry.SetText(fmt.Sprintf("%g", room.Length))
	}
	if room.Width > 0 {
		widthEntry.SetText(fmt.Sprintf("%g", room.Width))
	}

	materialSelect := newMaterialSelect(room.Material)
	patternSelect := newPatternSelect(room.Pattern)

	costEntry := widget.NewEntry()
	costEntry.SetPlaceHolder("Optional")
	costEntry.SetText(amountText(room.CostPerUnit))

	coverageEntry := widget.NewEntry()
	coverageEntry.SetPlaceHolder("Optional")
	coverageEntry.SetText(amountText(room.PackageCoverage))

	productSelector := a.buildProductSelector(func(p model.FlooringProduct) {
		materialSelect.SetSelected(p.Material.Label())
		costEntry.SetText(amountText(p.CostPerUnit))
		coverageEntry.SetText(amountText(p.PackageCoverage))
	})

	items := []*widget.FormItem{
		widget.NewFormItem("Room Name", nameEntry),
		widget.NewFormItem(units.LengthFieldLabel(), lengthEntry),
		widget.NewFormItem(units.WidthFieldLabel(), widthEntry),
		widget.NewFormItem("Product", productSelector),
		widget.NewFormItem("Flooring Type", materialSelect),
		widget.NewFormItem("Installation Pattern", patternSelect),
		widget.NewFormItem(fmt.Sprintf("Cost per %s", units.AreaLabel()), costEntry),
		widget.NewFormItem(fmt.Sprintf("Box Coverage (%s)", units.AreaLabel()), coverageEntry),
	}
	if len(room.Outline) > 2 {
		items = append(items, widget.NewFormItem("Floor Plan",
			widget.NewLabel(fmt.Sprintf("Imported outline, %s %s", engine.Format2(room.Outline.Area()), units.AreaLabel()))))
	}

	form := dialog.NewForm(title, confirm, "Cancel", items,
		func(ok bool) {
			if !ok {
				return
			}
			parsed, err := importer.ParseRoomFields(importer.RoomFields{
				Name:     nameEntry.Text,
				Length:   lengthEntry.Text,
				Width:    widthEntry.Text,
				Material: materialSelect.Selected,
				Pattern:  patternSelect.Selected,
				Cost:     costEntry.Text,
				Coverage: coverageEntry.Text,
			})
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if idx >= 0 {
				a.applyEdit(a.session.UpdateRoom(idx, parsed))
				return
			}
			a.session.AddRoom(parsed)
			a.refreshAll()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(460, 520))
	form.Show()
}

// showPatternComparison estimates the project under each installation
// pattern and lists how much extra material and money each one costs.
func (a *App) showPatternComparison() {
	results, err := a.session.ComparePatterns()
	if err != nil {
		if errors.Is(err, ErrNoRooms) {
			dialog.ShowInformation("Compare Patterns", "Add at least one room first.", a.window)
			return
		}
		dialog.ShowError(err, a.window)
		return
	}

	area := a.session.Units().AreaLabel()
	grid := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("With Waste ("+area+")", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Boxes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Cost", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("vs. As Entered", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	for i, r := range results {
		diff := "-"
		if i > 0 {
			diff = fmt.Sprintf("%+.2f %s, %+d boxes, %s", engine.Round2(r.ExtraArea), area, r.ExtraPackages, signedMoney(r.ExtraCost))
		}
		grid.Add(widget.NewLabel(r.Scenario.Name))
		grid.Add(widget.NewLabel(engine.Format2(r.Result.Totals.TotalAreaWithWaste)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%d", r.Result.Totals.TotalPackages)))
		grid.Add(widget.NewLabel("$" + engine.Format2(r.Result.Totals.TotalCost)))
		grid.Add(widget.NewLabel(diff))
	}

	d := dialog.NewCustom("Compare Patterns", "Close", container.NewVScroll(grid), a.window)
	d.Resize(fyne.NewSize(820, 320))
	d.Show()
}

func signedMoney(v float64) string {
	if engine.Round2(v) < 0 {
		return "-$" + engine.Format2(-v)
	}
	return "+$" + engine.Format2(v)
}
