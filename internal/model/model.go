package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Material is the flooring material installed in a room.
type Material string

const (
	MaterialTile     Material = "tile"
	MaterialHardwood Material = "hardwood"
	MaterialLaminate Material = "laminate"
	MaterialVinyl    Material = "vinyl"
	MaterialCarpet   Material = "carpet"
)

// Materials lists every material in display order.
var Materials = []Material{MaterialTile, MaterialHardwood, MaterialLaminate, MaterialVinyl, MaterialCarpet}

// Label returns the human-readable name used in forms and reports.
func (m Material) Label() string {
	switch m {
	case MaterialTile:
		return "Tile"
	case MaterialHardwood:
		return "Hardwood"
	case MaterialLaminate:
		return "Laminate"
	case MaterialVinyl:
		return "Vinyl/LVP"
	case MaterialCarpet:
		return "Carpet"
	default:
		return capitalize(string(m))
	}
}

// Valid reports whether m is one of the known materials.
func (m Material) Valid() bool {
	for _, known := range Materials {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMaterial converts a user-facing name into a Material.
// Matching is case-insensitive and accepts the labels shown in the UI.
func ParseMaterial(s string) (Material, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tile", "tiles", "ceramic", "porcelain":
		return MaterialTile, nil
	case "hardwood", "wood":
		return MaterialHardwood, nil
	case "laminate":
		return MaterialLaminate, nil
	case "vinyl", "lvp", "vinyl/lvp", "lvt":
		return MaterialVinyl, nil
	case "carpet":
		return MaterialCarpet, nil
	}
	return "", fmt.Errorf("unknown flooring material %q", s)
}

// Pattern is the installation layout of the flooring.
type Pattern string

const (
	PatternStraight    Pattern = "straight"
	PatternDiagonal    Pattern = "diagonal"
	PatternHerringbone Pattern = "herringbone"
)

// Patterns lists every pattern in display order.
var Patterns = []Pattern{PatternStraight, PatternDiagonal, PatternHerringbone}

func (p Pattern) Label() string {
	switch p {
	case PatternStraight:
		return "Straight/Standard"
	case PatternDiagonal:
		return "Diagonal (45°)"
	case PatternHerringbone:
		return "Herringbone/Chevron"
	default:
		return capitalize(string(p))
	}
}

// Valid reports whether p is one of the known patterns.
func (p Pattern) Valid() bool {
	for _, known := range Patterns {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePattern converts a user-facing name into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight", "standard", "straight/standard", "":
		return PatternStraight, nil
	case "diagonal", "45", "diagonal (45°)":
		return PatternDiagonal, nil
	case "herringbone", "chevron", "herringbone/chevron":
		return PatternHerringbone, nil
	}
	return "", fmt.Errorf("unknown installation pattern %q", s)
}

// UnitSystem selects the labels used when presenting lengths and areas.
// Values are never converted between systems.
type UnitSystem string

const (
	UnitsImperial UnitSystem = "imperial"
	UnitsMetric   UnitSystem = "metric"
)

// LengthLabel returns the short length unit, e.g. "ft".
func (u UnitSystem) LengthLabel() string {
	if u == UnitsMetric {
		return "m"
	}
	return "ft"
}

// AreaLabel returns the short area unit, e.g. "sq ft".
func (u UnitSystem) AreaLabel() string {
	if u == UnitsMetric {
		return "sq m"
	}
	return "sq ft"
}

// LengthFieldLabel returns the form label for a length input.
func (u UnitSystem) LengthFieldLabel() string {
	if u == UnitsMetric {
		return "Length (meters)"
	}
	return "Length (feet)"
}

// WidthFieldLabel returns the form label for a width input.
func (u UnitSystem) WidthFieldLabel() string {
	if u == UnitsMetric {
		return "Width (meters)"
	}
	return "Width (feet)"
}

// Point2D represents a 2D coordinate in drawing units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: o[0].X, Y: o[0].Y}
	max = Point2D{X: o[0].X, Y: o[0].Y}
	for _, p := range o[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Area returns the enclosed area using the shoelace formula.
func (o Outline) Area() float64 {
	if len(o) < 3 {
		return 0
	}
	var sum float64
	for i := range o {
		j := (i + 1) % len(o)
		sum += o[i].X*o[j].Y - o[j].X*o[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// Room is the input record for one room of a flooring project.
type Room struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"` // optional; "Room N" is used when empty
	Length          float64  `json:"length"`
	Width           float64  `json:"width"`
	Material        Material `json:"material"`
	Pattern         Pattern  `json:"pattern"`
	CostPerUnit     float64  `json:"cost_per_unit"`    // price per area unit, 0 = not priced
	PackageCoverage float64  `json:"package_coverage"` // area per box/roll, 0 = not packaged
	Outline         Outline  `json:"outline,omitempty"`
}

func NewRoom(name string, length, width float64, material Material, pattern Pattern) Room {
	return Room{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Length:   length,
		Width:    width,
		Material: material,
		Pattern:  pattern,
	}
}

// DisplayName returns the room name, or "Room N" for the 1-based position
// when no name was entered.
func (r Room) DisplayName(position int) string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return fmt.Sprintf("Room %d", position)
}

// RoomResult is the derived estimate for one room.
type RoomResult struct {
	Room           Room    `json:"room"`
	Name           string  `json:"name"`
	Area           float64 `json:"area"`
	WasteFactor    float64 `json:"waste_factor"`
	AreaWithWaste  float64 `json:"area_with_waste"`
	Cost           float64 `json:"cost"`
	PackagesNeeded int     `json:"packages_needed"`
	ActualCoverage float64 `json:"actual_coverage"`
}

// ProjectTotals sums the room results of one calculation.
type ProjectTotals struct {
	TotalArea          float64 `json:"total_area"`
	TotalAreaWithWaste float64 `json:"total_area_with_waste"`
	TotalCost          float64 `json:"total_cost"`
	TotalPackages      int     `json:"total_packages"`
}

// AuxiliaryMaterials holds the secondary materials derived from the project
// totals. Quantities are always filled in; the Needs flags decide which of
// them apply to the materials in the project.
type AuxiliaryMaterials struct {
	UnderlaymentRolls int `json:"underlayment_rolls"`
	AdhesiveGallons   int `json:"adhesive_gallons"`
	GroutBags         int `json:"grout_bags"`

	NeedsUnderlayment bool `json:"needs_underlayment"`
	NeedsAdhesive     bool `json:"needs_adhesive"`
	NeedsGrout        bool `json:"needs_grout"`
}

// IsEmpty reports whether no auxiliary material applies.
func (a AuxiliaryMaterials) IsEmpty() bool {
	return !a.NeedsUnderlayment && !a.NeedsAdhesive && !a.NeedsGrout
}

// ProjectResult is the full output of one calculation request.
type ProjectResult struct {
	Rooms     []RoomResult       `json:"rooms"`
	Totals    ProjectTotals      `json:"totals"`
	Auxiliary AuxiliaryMaterials `json:"auxiliary"`
}

// MaterialSet is the set of materials used across a batch of rooms.
type MaterialSet map[Material]bool

// MaterialsIn collects the materials used by the given rooms.
func MaterialsIn(rooms []Room) MaterialSet {
	set := make(MaterialSet, len(rooms))
	for _, r := range rooms {
		set[r.Material] = true
	}
	return set
}

// Has reports whether any of the given materials is in the set.
func (s MaterialSet) Has(materials ...Material) bool {
	for _, m := range materials {
		if s[m] {
			return true
		}
	}
	return false
}

// Project ties everything together for save/load.
// Result is session state only and is replaced on every calculation.
type Project struct {
	Name   string         `json:"name"`
	Units  UnitSystem     `json:"units"`
	Rooms  []Room         `json:"rooms"`
	Result *ProjectResult `json:"-"`
}

func NewProject() Project {
	return Project{
		Name:  "Untitled",
		Units: UnitsImperial,
		Rooms: []Room{},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
