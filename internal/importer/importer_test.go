package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/FloorCalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Length,Width,Material\nKitchen,12.5,10,tile\nHall,3,12,vinyl\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Length;Width;Material\nKitchen;12,5;10;tile\nHall;3;12;vinyl\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tLength\tWidth\nKitchen\t12.5\t10\nHall\t3\t12\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Name|Length|Width\nKitchen|12.5|10\nHall|3|12\n")
	if got := DetectCSVDelimiter(data); got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Name", "Length", "Width", "Material", "Pattern", "Cost", "Coverage"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	want := ColumnMapping{Name: 0, Length: 1, Width: 2, Material: 3, Pattern: 4, Cost: 5, Coverage: 6}
	if mapping != want {
		t.Errorf("expected %+v, got %+v", want, mapping)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	row := []string{"PRICE", "Room", "Box Size", "W", "L", "Flooring Type", "Layout"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	want := ColumnMapping{Name: 1, Length: 4, Width: 3, Material: 5, Pattern: 6, Cost: 0, Coverage: 2}
	if mapping != want {
		t.Errorf("expected %+v, got %+v", want, mapping)
	}
}

func TestDetectColumns_OptionalColumnsMissing(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Length", "Width"})
	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Name != -1 || mapping.Material != -1 || mapping.Cost != -1 {
		t.Errorf("expected unmapped optional columns, got %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Kitchen", "12.5", "10", "tile"})
	if isHeader {
		t.Error("expected no header")
	}
	if mapping.Length != 1 || mapping.Width != 2 || mapping.Coverage != 6 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Name,Length,Width,Material,Pattern,Cost,Coverage\n" +
		"Kitchen,12.5,10,tile,straight,3.50,23.91\n" +
		"Hall,3,12,vinyl,diagonal,,\n"

	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(result.Rooms))
	}

	k := result.Rooms[0]
	if k.Name != "Kitchen" || k.Length != 12.5 || k.Width != 10 {
		t.Errorf("unexpected kitchen: %+v", k)
	}
	if k.Material != model.MaterialTile || k.Pattern != model.PatternStraight {
		t.Errorf("expected tile/straight, got %s/%s", k.Material, k.Pattern)
	}
	if k.CostPerUnit != 3.50 || k.PackageCoverage != 23.91 {
		t.Errorf("expected 3.50 / 23.91, got %.2f / %.2f", k.CostPerUnit, k.PackageCoverage)
	}

	h := result.Rooms[1]
	if h.Material != model.MaterialVinyl || h.Pattern != model.PatternDiagonal {
		t.Errorf("expected vinyl/diagonal, got %s/%s", h.Material, h.Pattern)
	}
	if h.CostPerUnit != 0 || h.PackageCoverage != 0 {
		t.Errorf("blank cost and coverage should default to 0, got %.2f / %.2f", h.CostPerUnit, h.PackageCoverage)
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Kitchen,12.5,10,tile\nBedroom,14,12,carpet,herringbone\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
	if result.Rooms[1].Pattern != model.PatternHerringbone {
		t.Errorf("expected herringbone, got %s", result.Rooms[1].Pattern)
	}
}

func TestImportCSVFromReader_UnrecognizedHeaderSkipped(t *testing.T) {
	data := "Zone,Long side,Short side\nKitchen,12,10\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a header warning")
	}
}

func TestImportCSVFromReader_DefaultsMaterialAndPattern(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Length,Width\n10,8\n"), ',')

	if len(result.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
	r := result.Rooms[0]
	if r.Material != model.MaterialTile || r.Pattern != model.PatternStraight {
		t.Errorf("expected tile/straight defaults, got %s/%s", r.Material, r.Pattern)
	}
	if r.Name != "" {
		t.Errorf("expected empty name so the estimate can number it, got %q", r.Name)
	}
}

func TestImportCSVFromReader_SemicolonDelimiter(t *testing.T) {
	data := "Name;Length;Width\nKitchen;12.5;10\n"
	result := ImportCSVFromReader(strings.NewReader(data), ';')

	if len(result.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}
}

func TestImportCSVFromReader_InvalidRows(t *testing.T) {
	data := "Name,Length,Width,Material,Cost\n" +
		"Good,10,10,tile,1\n" +
		"NoLength,,10,tile,1\n" +
		"Text,abc,10,tile,1\n" +
		"Zero,0,10,tile,1\n" +
		"Negative,10,-4,tile,1\n" +
		"Marble,10,10,marble,1\n" +
		"BadCost,10,10,tile,free\n" +
		"NaN,NaN,10,tile,1\n"

	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Rooms) != 1 {
		t.Errorf("expected 1 valid room, got %d", len(result.Rooms))
	}
	if len(result.Errors) != 7 {
		t.Errorf("expected 7 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Line 3") {
		t.Errorf("expected error to name the line, got %q", result.Errors[0])
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Name,Length,Material\nKitchen,10,tile\n"), ',')

	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing Width column")
	}
	if !strings.Contains(result.Errors[0], "Width") {
		t.Errorf("expected error to mention Width, got %q", result.Errors[0])
	}
}

func TestImportCSVFromReader_EmptyRows(t *testing.T) {
	data := "Name,Length,Width\nKitchen,12,10\n,,\nHall,3,12\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Rooms) != 2 {
		t.Errorf("expected 2 rooms (empty row skipped), got %d", len(result.Rooms))
	}
}

func TestImportCSVFromReader_WhitespaceInValues(t *testing.T) {
	data := "Name , Length , Width\n  Den  ,  11.5 , 9 \n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
	if result.Rooms[0].Name != "Den" || result.Rooms[0].Length != 11.5 {
		t.Errorf("unexpected room %+v", result.Rooms[0])
	}
}

func TestImportCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.csv")
	content := "Room;Length;Width;Type\nKitchen;12.5;10;tile\nBath;8;5;vinyl\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(result.Rooms))
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/rooms.csv")
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if result := ImportCSV(path); len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rooms.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Length", "Width", "Material", "Pattern", "Price", "Box"},
		{"Kitchen", 12.5, 10, "Tile", "Diagonal", 3.5, 23.91},
		{"Living", 20, 15, "Hardwood", "Straight", 6.25, 20},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(result.Rooms))
	}
	r := result.Rooms[0]
	if r.Name != "Kitchen" || r.Length != 12.5 || r.Pattern != model.PatternDiagonal {
		t.Errorf("unexpected room %+v", r)
	}
	if r.PackageCoverage != 23.91 {
		t.Errorf("expected coverage 23.91, got %f", r.PackageCoverage)
	}
	if result.Rooms[1].Material != model.MaterialHardwood {
		t.Errorf("expected hardwood, got %s", result.Rooms[1].Material)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Kitchen", 12.5, 10},
		{"Hall", 3, 12},
	})

	result := ImportExcel(path)
	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	if result := ImportExcel("/nonexistent/rooms.xlsx"); len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportExcel_InvalidData(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Length", "Width"},
		{"Kitchen", "abc", 10},
	})
	if result := ImportExcel(path); len(result.Errors) == 0 {
		t.Error("expected error for invalid length")
	}
}
