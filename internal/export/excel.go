package export

import (
	"fmt"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names written by ExportExcel.
const (
	SheetRooms     = "Rooms"
	SheetTotals    = "Totals"
	SheetMaterials = "Materials"
)

// RoomHeaders is the header row of the Rooms sheet. The first seven columns
// use names the importer recognises, so the sheet can be imported again.
var RoomHeaders = []string{
	"Name", "Length", "Width", "Material", "Pattern", "Cost", "Coverage",
	"Area", "Waste Factor", "Area With Waste", "Packages", "Actual Coverage", "Room Cost",
}

// ExportExcel writes the estimate to an XLSX workbook with one sheet each
// for rooms, project totals and auxiliary materials. Numbers are rounded to
// two decimals.
func ExportExcel(path string, project model.Project, result model.ProjectResult) error {
	if len(result.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetRooms); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetTotals, SheetMaterials} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	rows := [][]interface{}{toRow(RoomHeaders)}
	for _, rr := range result.Rooms {
		rows = append(rows, []interface{}{
			rr.Name,
			rr.Room.Length,
			rr.Room.Width,
			string(rr.Room.Material),
			string(rr.Room.Pattern),
			rr.Room.CostPerUnit,
			rr.Room.PackageCoverage,
			engine.Round2(rr.Area),
			rr.WasteFactor,
			engine.Round2(rr.AreaWithWaste),
			rr.PackagesNeeded,
			engine.Round2(rr.ActualCoverage),
			engine.Round2(rr.Cost),
		})
	}
	if err := writeRows(f, SheetRooms, rows, bold); err != nil {
		return err
	}

	area := project.Units.AreaLabel()
	t := result.Totals
	totals := [][]interface{}{
		{"Project", project.Name},
		{"Units", string(project.Units)},
		{"Total Floor Area (" + area + ")", engine.Round2(t.TotalArea)},
		{"Total Material with Waste (" + area + ")", engine.Round2(t.TotalAreaWithWaste)},
		{"Total Boxes Needed", t.TotalPackages},
		{"Total Material Cost", engine.Round2(t.TotalCost)},
	}
	if err := writeRows(f, SheetTotals, totals, 0); err != nil {
		return err
	}

	aux := result.Auxiliary
	materials := [][]interface{}{
		{"Material", "Needed", "Quantity", "Unit"},
		{"Underlayment", aux.NeedsUnderlayment, aux.UnderlaymentRolls, "rolls"},
		{"Adhesive/Thinset", aux.NeedsAdhesive, aux.AdhesiveGallons, "gallons"},
		{"Grout", aux.NeedsGrout, aux.GroutBags, "25lb bags"},
	}
	if err := writeRows(f, SheetMaterials, materials, bold); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetRooms, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(SheetTotals, "A", "A", 36); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeRows fills sheet from A1. A non-zero headerStyle is applied to the first row.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to create cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
			}
		}
	}

	if headerStyle != 0 && len(rows) > 0 {
		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return fmt.Errorf("failed to create cell reference: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}
	return nil
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
