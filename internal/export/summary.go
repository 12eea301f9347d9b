// Package export renders flooring estimates for people: a plain-text summary,
// share text, a printable PDF and an XLSX workbook.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/model"
)

// DefaultShareLink is appended to shared estimates.
const DefaultShareLink = "https://github.com/piwi3910/FloorCalc"

// Tips are printed under every estimate.
var Tips = []string{
	"Waste factors are based on NWFA and TCNA industry standards",
	"Purchase boxes rounded up to ensure complete coverage",
	"Order extra material for future repairs and replacements",
	"Herringbone and diagonal patterns require higher waste factors due to increased cuts",
}

const (
	// Disclaimer closes every estimate.
	Disclaimer = "This calculator provides estimates based on industry standard waste factors. " +
		"Actual material needs may vary depending on room complexity, material defects, " +
		"installer experience, and specific product requirements. Always consult with a " +
		"professional installer and purchase extra material for irregularly shaped rooms, " +
		"pattern matching, or future repairs. Verify all measurements before ordering materials."

	auxiliaryNote = "Auxiliary material estimates are approximate. Coverage rates vary by " +
		"product and application method. Consult manufacturer specifications for accurate quantities."
)

// Line is one label/value row of a report card.
type Line struct {
	Label     string
	Value     string
	Highlight bool
}

// Card is a titled group of lines.
type Card struct {
	Title string
	Lines []Line
	Note  string
}

// Report is the display form of a ProjectResult. Every number is already
// rounded and formatted; the text, PDF and UI renderers only lay it out.
type Report struct {
	Rooms      []Card
	Totals     Card
	Auxiliary  *Card // nil when no room needs auxiliary materials
	Tips       []string
	Disclaimer string
}

// BuildReport formats a result for display. Per-room packages and cost
// lines only appear when positive, as do the matching totals.
func BuildReport(result model.ProjectResult, units model.UnitSystem, rates model.CoverageRates) Report {
	area := units.AreaLabel()
	rep := Report{
		Rooms:      make([]Card, 0, len(result.Rooms)),
		Tips:       Tips,
		Disclaimer: Disclaimer,
	}

	for _, rr := range result.Rooms {
		card := Card{Title: rr.Name}
		card.Lines = append(card.Lines,
			Line{Label: "Dimensions", Value: fmt.Sprintf("%s × %s %s",
				format1(rr.Room.Length), format1(rr.Room.Width), units.LengthLabel())},
			Line{Label: "Floor Area", Value: areaValue(rr.Area, area)},
			Line{Label: "Flooring Type", Value: rr.Room.Material.Label() + " - " + rr.Room.Pattern.Label()},
			Line{Label: "Waste Factor", Value: engine.FormatPercent(rr.WasteFactor)},
			Line{Label: "Material Needed (with waste)", Value: areaValue(rr.AreaWithWaste, area), Highlight: true},
		)
		if rr.PackagesNeeded > 0 {
			card.Lines = append(card.Lines, Line{
				Label:     "Boxes/Packages Needed",
				Value:     fmt.Sprintf("%d boxes (%s total)", rr.PackagesNeeded, areaValue(rr.ActualCoverage, area)),
				Highlight: true,
			})
		}
		if rr.Cost > 0 {
			card.Lines = append(card.Lines, Line{Label: "Estimated Material Cost", Value: money(rr.Cost), Highlight: true})
		}
		rep.Rooms = append(rep.Rooms, card)
	}

	t := result.Totals
	rep.Totals = Card{Title: "Project Totals"}
	rep.Totals.Lines = append(rep.Totals.Lines,
		Line{Label: "Total Floor Area", Value: areaValue(t.TotalArea, area), Highlight: true},
		Line{Label: "Total Material with Waste", Value: areaValue(t.TotalAreaWithWaste, area), Highlight: true},
	)
	if t.TotalPackages > 0 {
		rep.Totals.Lines = append(rep.Totals.Lines, Line{Label: "Total Boxes Needed", Value: fmt.Sprintf("%d boxes", t.TotalPackages), Highlight: true})
	}
	if t.TotalCost > 0 {
		rep.Totals.Lines = append(rep.Totals.Lines, Line{Label: "Total Material Cost", Value: money(t.TotalCost), Highlight: true})
	}

	aux := result.Auxiliary
	if !aux.IsEmpty() {
		card := &Card{Title: "Additional Materials Needed", Note: auxiliaryNote}
		if aux.NeedsUnderlayment {
			card.Lines = append(card.Lines, Line{
				Label: fmt.Sprintf("Underlayment Rolls (%s %s/roll)", rate(rates.Underlayment), area),
				Value: fmt.Sprintf("%d rolls", aux.UnderlaymentRolls),
			})
		}
		if aux.NeedsAdhesive {
			card.Lines = append(card.Lines, Line{
				Label: fmt.Sprintf("Adhesive/Thinset (%s %s/gal)", rate(rates.Adhesive), area),
				Value: fmt.Sprintf("%d gallons", aux.AdhesiveGallons),
			})
		}
		if aux.NeedsGrout {
			card.Lines = append(card.Lines, Line{
				Label: fmt.Sprintf("Grout (%s %s/25lb bag)", rate(rates.Grout), area),
				Value: fmt.Sprintf("%d bags", aux.GroutBags),
			})
		}
		rep.Auxiliary = card
	}

	return rep
}

// Cards returns the room cards, the totals card and the auxiliary card if any.
func (r Report) Cards() []Card {
	cards := make([]Card, 0, len(r.Rooms)+2)
	cards = append(cards, r.Rooms...)
	cards = append(cards, r.Totals)
	if r.Auxiliary != nil {
		cards = append(cards, *r.Auxiliary)
	}
	return cards
}

// Text renders the report as plain text.
func (r Report) Text() string {
	var b strings.Builder
	for _, c := range r.Cards() {
		b.WriteString(c.Title)
		b.WriteByte('\n')
		for _, l := range c.Lines {
			fmt.Fprintf(&b, "  %s: %s\n", l.Label, l.Value)
		}
		if c.Note != "" {
			fmt.Fprintf(&b, "  Note: %s\n", c.Note)
		}
		b.WriteByte('\n')
	}

	b.WriteString("Pro Tips:\n")
	for _, tip := range r.Tips {
		fmt.Fprintf(&b, "  - %s\n", tip)
	}
	b.WriteString("\nDisclaimer: ")
	b.WriteString(r.Disclaimer)
	b.WriteByte('\n')
	return b.String()
}

// FormatSummary renders result as plain text using the standard coverage rates.
func FormatSummary(result model.ProjectResult, units model.UnitSystem) string {
	return BuildReport(result, units, model.DefaultCoverageRates()).Text()
}

// ShareText is the short message copied to the clipboard or encoded in the
// PDF's QR code. An empty link uses DefaultShareLink.
func ShareText(result model.ProjectResult, units model.UnitSystem, link string) string {
	if link == "" {
		link = DefaultShareLink
	}
	area := units.AreaLabel()
	return fmt.Sprintf("Flooring Project Estimate:\n\nTotal Area: %s\nMaterial Needed: %s\n\nCalculate yours at: %s",
		areaValue(result.Totals.TotalArea, area),
		areaValue(result.Totals.TotalAreaWithWaste, area),
		link)
}

func areaValue(v float64, label string) string {
	return engine.Format2(v) + " " + label
}

func money(v float64) string {
	return "$" + engine.Format2(v)
}

func format1(v float64) string {
	return strconv.FormatFloat(engine.RoundHalfUp(v, 1), 'f', 1, 64)
}

// rate prints coverage rates without trailing zeros: 100, 37.5.
func rate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
