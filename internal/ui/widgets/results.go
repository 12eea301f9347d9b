package widgets

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/export"
	"github.com/piwi3910/FloorCalc/internal/model"
)

// PlaceholderText is shown before the first calculation.
const PlaceholderText = "No results yet. Add rooms, then click Calculate."

// RenderResults builds a scrollable view of an estimate: one card per room
// with a to-scale plan, the totals, auxiliary materials and a per-material
// breakdown when more than one material is used.
func RenderResults(result *model.ProjectResult, units model.UnitSystem) fyne.CanvasObject {
	if result == nil || len(result.Rooms) == 0 {
		return widget.NewLabel(PlaceholderText)
	}

	report := export.BuildReport(*result, units, model.DefaultCoverageRates())
	var items []fyne.CanvasObject

	for i, card := range report.Rooms {
		plan := NewRoomCanvas(result.Rooms[i].Room, units, 220, 140)
		body := container.NewBorder(nil, nil, nil, container.NewPadded(plan), linesGrid(card.Lines))
		items = append(items, widget.NewCard(card.Title, "", body))
	}

	items = append(items, widget.NewCard(report.Totals.Title, "", linesGrid(report.Totals.Lines)))

	if breakdown := MaterialBreakdown(*result, units); len(breakdown) > 1 {
		box := container.NewVBox()
		for _, line := range breakdown {
			box.Add(widget.NewLabel(line))
		}
		items = append(items, widget.NewCard("By Material", "", box))
	}

	if aux := report.Auxiliary; aux != nil {
		note := widget.NewLabel("Note: " + aux.Note)
		note.Wrapping = fyne.TextWrapWord
		items = append(items, widget.NewCard(aux.Title, "", container.NewVBox(linesGrid(aux.Lines), note)))
	}

	tips := container.NewVBox()
	for _, tip := range report.Tips {
		tips.Add(widget.NewLabel("✓ " + tip))
	}
	items = append(items, widget.NewCard("Pro Tips", "", tips))

	disclaimer := widget.NewLabel(report.Disclaimer)
	disclaimer.Wrapping = fyne.TextWrapWord
	disclaimer.Importance = widget.WarningImportance
	items = append(items, widget.NewCard("Disclaimer", "", disclaimer))

	return container.NewVScroll(container.NewVBox(items...))
}

func linesGrid(lines []export.Line) fyne.CanvasObject {
	grid := container.NewGridWithColumns(2)
	for _, l := range lines {
		value := widget.NewLabel(l.Value)
		if l.Highlight {
			value.TextStyle = fyne.TextStyle{Bold: true}
			value.Importance = widget.SuccessImportance
		}
		grid.Add(widget.NewLabel(l.Label + ":"))
		grid.Add(value)
	}
	return grid
}

// MaterialBreakdown groups the room results by material and reports rooms,
// waste-adjusted area and packages for each, in material order.
func MaterialBreakdown(result model.ProjectResult, units model.UnitSystem) []string {
	if len(result.Rooms) == 0 {
		return nil
	}

	type materialStats struct {
		rooms    int
		area     float64
		packages int
		cost     float64
	}

	stats := make(map[model.Material]*materialStats)
	for _, rr := range result.Rooms {
		s, ok := stats[rr.Room.Material]
		if !ok {
			s = &materialStats{}
			stats[rr.Room.Material] = s
		}
		s.rooms++
		s.area += rr.AreaWithWaste
		s.packages += rr.PackagesNeeded
		s.cost += rr.Cost
	}

	order := make([]model.Material, 0, len(stats))
	for m := range stats {
		order = append(order, m)
	}
	sort.Slice(order, func(i, j int) bool { return materialRank(order[i]) < materialRank(order[j]) })

	var lines []string
	for _, m := range order {
		s := stats[m]
		line := fmt.Sprintf("%s: %d room(s), %s %s", m.Label(), s.rooms, engine.Format2(s.area), units.AreaLabel())
		if s.packages > 0 {
			line += fmt.Sprintf(", %d boxes", s.packages)
		}
		if s.cost > 0 {
			line += ", $" + engine.Format2(s.cost)
		}
		lines = append(lines, line)
	}
	return lines
}

func materialRank(m model.Material) int {
	for i, known := range model.Materials {
		if m == known {
			return i
		}
	}
	return len(model.Materials)
}
