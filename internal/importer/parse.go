package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/model"
)

// RoomFields holds the raw text of one room form or spreadsheet row.
type RoomFields struct {
	Name     string
	Length   string
	Width    string
	Material string
	Pattern  string
	Cost     string
	Coverage string
}

// ParseRoomFields converts raw field text into a typed room. Length and width
// are required and must be positive numbers; failures wrap
// engine.ErrInvalidDimensions. Cost and coverage default to 0 when blank but
// must be non-negative numbers when present. A blank material means tile and
// a blank pattern means straight, matching the empty room form.
func ParseRoomFields(f RoomFields) (model.Room, error) {
	length, err := parseDimension("length", f.Length)
	if err != nil {
		return model.Room{}, err
	}
	width, err := parseDimension("width", f.Width)
	if err != nil {
		return model.Room{}, err
	}

	material := model.MaterialTile
	if strings.TrimSpace(f.Material) != "" {
		material, err = model.ParseMaterial(f.Material)
		if err != nil {
			return model.Room{}, err
		}
	}
	pattern, err := model.ParsePattern(f.Pattern)
	if err != nil {
		return model.Room{}, err
	}

	cost, err := parseAmount("cost", f.Cost)
	if err != nil {
		return model.Room{}, err
	}
	coverage, err := parseAmount("package coverage", f.Coverage)
	if err != nil {
		return model.Room{}, err
	}

	room := model.NewRoom(strings.TrimSpace(f.Name), length, width, material, pattern)
	room.CostPerUnit = cost
	room.PackageCoverage = coverage
	return room, nil
}

// ParseNumber parses a decimal number, rejecting blanks, trailing text and
// the NaN / Inf spellings strconv would otherwise accept.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func parseDimension(field, s string) (float64, error) {
	v, err := ParseNumber(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", engine.ErrInvalidDimensions, field, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0", engine.ErrInvalidDimensions, field)
	}
	return v, nil
}

func parseAmount(field, s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	v, err := ParseNumber(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return v, nil
}
