package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
)

// roomColumns are the room table headers and widths; widths sum to contentWidth.
var roomColumns = []struct {
	header string
	width  float64
}{
	{"Room", 34},
	{"Dimensions", 26},
	{"Flooring", 38},
	{"Waste", 14},
	{"Area", 20},
	{"With Waste", 20},
	{"Boxes", 14},
	{"Cost", 14},
}

// ExportPDF writes a printable estimate: a room table, the totals, any
// auxiliary materials, tips, the disclaimer and a QR code of the share text.
func ExportPDF(path string, project model.Project, result model.ProjectResult) error {
	if len(result.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	report := BuildReport(result, project.Units, model.DefaultCoverageRates())

	pdf.AddPage()
	renderHeader(pdf, tr, project)
	if err := drawShareCode(pdf, pageWidth-marginRight-qrSize, marginTop, ShareText(result, project.Units, "")); err != nil {
		return err
	}

	pdf.SetY(marginTop + qrSize + 8)
	renderRoomTable(pdf, tr, result, project.Units)
	renderCard(pdf, tr, report.Totals)
	if report.Auxiliary != nil {
		renderCard(pdf, tr, *report.Auxiliary)
	}
	renderFooterText(pdf, tr, report)

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, tr func(string) string, project model.Project) {
	name := project.Name
	if name == "" {
		name = "Untitled"
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize-5, 10, "Flooring Estimate", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentWidth-qrSize-5, 6, tr(name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentWidth-qrSize-5, 5,
		fmt.Sprintf("%d room(s), lengths in %s, areas in %s", len(project.Rooms), project.Units.LengthLabel(), project.Units.AreaLabel()),
		"", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+qrSize+4, pageWidth-marginRight, marginTop+qrSize+4)
}

// renderRoomTable draws one row per room result.
func renderRoomTable(pdf *fpdf.Fpdf, tr func(string) string, result model.ProjectResult, units model.UnitSystem) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentWidth, 7, "Rooms", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range roomColumns {
		pdf.CellFormat(col.width, rowHeight, col.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", 8)
	for i, rr := range result.Rooms {
		boxes := "-"
		if rr.PackagesNeeded > 0 {
			boxes = fmt.Sprintf("%d", rr.PackagesNeeded)
		}
		cost := "-"
		if rr.Cost > 0 {
			cost = money(rr.Cost)
		}
		cells := []string{
			truncate(pdf, tr(rr.Name), roomColumns[0].width-2),
			fmt.Sprintf("%s x %s %s", format1(rr.Room.Length), format1(rr.Room.Width), units.LengthLabel()),
			truncate(pdf, tr(rr.Room.Material.Label()+" - "+rr.Room.Pattern.Label()), roomColumns[2].width-2),
			engine.FormatPercent(rr.WasteFactor),
			engine.Format2(rr.Area),
			engine.Format2(rr.AreaWithWaste),
			boxes,
			cost,
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range cells {
			align := "R"
			if j < 3 {
				align = "L"
			}
			pdf.CellFormat(roomColumns[j].width, rowHeight, cell, "1", 0, align, true, 0, "")
		}
		pdf.Ln(rowHeight)
	}
	pdf.Ln(4)
}

// renderCard draws a titled block of label/value lines.
func renderCard(pdf *fpdf.Fpdf, tr func(string) string, card Card) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentWidth, 7, tr(card.Title), "", 1, "L", false, 0, "")

	for _, l := range card.Lines {
		pdf.SetX(marginLeft + 5)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(80, rowHeight, tr(l.Label)+":", "", 0, "L", false, 0, "")
		if l.Highlight {
			pdf.SetFont("Helvetica", "B", 10)
		}
		pdf.CellFormat(contentWidth-85, rowHeight, tr(l.Value), "", 1, "L", false, 0, "")
	}
	if card.Note != "" {
		pdf.SetX(marginLeft + 5)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentWidth-5, 4, tr("Note: "+card.Note), "", "L", false)
	}
	pdf.Ln(4)
}

func renderFooterText(pdf *fpdf.Fpdf, tr func(string) string, report Report) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentWidth, 6, "Pro Tips", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, tip := range report.Tips {
		pdf.SetX(marginLeft + 5)
		pdf.MultiCell(contentWidth-5, 5, tr("- "+tip), "", "L", false)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.MultiCell(contentWidth, 4, tr("Disclaimer: "+report.Disclaimer), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
}

// truncate shortens s with an ellipsis until it fits in width.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
