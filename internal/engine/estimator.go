// Package engine computes flooring material estimates: waste-adjusted area,
// purchase package counts, cost and the auxiliary materials a project needs.
//
// Every function here is pure. Results depend only on the room inputs and the
// waste and coverage tables, so an Estimator can be shared freely.
package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/FloorCalc/internal/model"
)

// Estimator runs estimates against a fixed pair of lookup tables.
type Estimator struct {
	waste model.WasteFactorTable
	rates model.CoverageRates
}

// New returns an Estimator using the standard waste factors and coverage rates.
func New() *Estimator {
	return NewWithTables(model.DefaultWasteFactors(), model.DefaultCoverageRates())
}

// NewWithTables returns an Estimator using custom waste and coverage tables.
func NewWithTables(waste model.WasteFactorTable, rates model.CoverageRates) *Estimator {
	return &Estimator{waste: waste, rates: rates}
}

// WasteFactors returns the waste table used by this estimator.
func (e *Estimator) WasteFactors() model.WasteFactorTable { return e.waste }

// CoverageRates returns the auxiliary coverage rates used by this estimator.
func (e *Estimator) CoverageRates() model.CoverageRates { return e.rates }

// ComputeProject validates every room, then estimates each one in order and
// sums the totals. If any room has an invalid length or width the whole
// batch fails with an *InvalidDimensionsError and no room result is returned.
// An empty batch yields an empty result.
func (e *Estimator) ComputeProject(rooms []model.Room) (model.ProjectResult, error) {
	if err := ValidateRooms(rooms); err != nil {
		return model.ProjectResult{}, err
	}

	result := model.ProjectResult{
		Rooms: make([]model.RoomResult, 0, len(rooms)),
	}
	for i, room := range rooms {
		rr, err := ComputeRoomResult(room, e.waste)
		if err != nil {
			return model.ProjectResult{}, err
		}
		rr.Name = room.DisplayName(i + 1)
		result.Rooms = append(result.Rooms, rr)
	}

	result.Totals = SumTotals(result.Rooms)
	result.Auxiliary = ComputeAuxiliaryMaterials(result.Totals, model.MaterialsIn(rooms), e.rates)
	return result, nil
}

// ComputeProject estimates rooms with the standard tables.
func ComputeProject(rooms []model.Room) (model.ProjectResult, error) {
	return New().ComputeProject(rooms)
}

// ComputeRoomResult estimates a single room. The room's Name is copied as is;
// ComputeProject fills in the "Room N" default.
func ComputeRoomResult(room model.Room, waste model.WasteFactorTable) (model.RoomResult, error) {
	if !validRoomSize(room.Length, room.Width) {
		return model.RoomResult{}, fmt.Errorf("%w: length %g, width %g", ErrInvalidDimensions, room.Length, room.Width)
	}

	area := room.Length * room.Width
	wasteFactor := waste.Lookup(room.Material, room.Pattern)
	areaWithWaste := area * (1 + wasteFactor)
	if math.IsInf(areaWithWaste, 0) || math.IsNaN(areaWithWaste) {
		return model.RoomResult{}, fmt.Errorf("%w: area with waste overflows for length %g, width %g",
			ErrInvalidDimensions, room.Length, room.Width)
	}
	coverage := amount(room.PackageCoverage)
	packages := PackagesNeeded(areaWithWaste, coverage)

	return model.RoomResult{
		Room:           room,
		Name:           room.Name,
		Area:           area,
		WasteFactor:    wasteFactor,
		AreaWithWaste:  areaWithWaste,
		Cost:           areaWithWaste * amount(room.CostPerUnit),
		PackagesNeeded: packages,
		ActualCoverage: float64(packages) * coverage,
	}, nil
}

// PackagesNeeded returns the smallest whole number of packages covering
// area, or 0 when the package coverage is not positive. Counts too large
// for an int saturate at math.MaxInt.
func PackagesNeeded(area, coverage float64) int {
	if !(coverage > 0) || math.IsInf(coverage, 1) || !(area > 0) {
		return 0
	}
	n := math.Ceil(area / coverage)
	if n >= maxPackages {
		return math.MaxInt
	}
	return int(n)
}

// maxPackages is the first float64 that no longer converts to an int.
const maxPackages = float64(math.MaxInt)

// SumTotals adds up the room results.
func SumTotals(rooms []model.RoomResult) model.ProjectTotals {
	var t model.ProjectTotals
	for _, r := range rooms {
		t.TotalArea += r.Area
		t.TotalAreaWithWaste += r.AreaWithWaste
		t.TotalCost += r.Cost
		t.TotalPackages = addPackages(t.TotalPackages, r.PackagesNeeded)
	}
	return t
}

func addPackages(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

// ComputeAuxiliaryMaterials derives underlayment, adhesive and grout from
// the project's waste-adjusted area. Laminate and vinyl need underlayment,
// tile and hardwood need adhesive, tile needs grout. Quantities are filled
// in even when the matching Needs flag is false.
func ComputeAuxiliaryMaterials(totals model.ProjectTotals, present model.MaterialSet, rates model.CoverageRates) model.AuxiliaryMaterials {
	area := totals.TotalAreaWithWaste
	return model.AuxiliaryMaterials{
		UnderlaymentRolls: PackagesNeeded(area, rates.Underlayment),
		AdhesiveGallons:   PackagesNeeded(area, rates.Adhesive),
		GroutBags:         PackagesNeeded(area, rates.Grout),

		NeedsUnderlayment: present.Has(model.MaterialLaminate, model.MaterialVinyl),
		NeedsAdhesive:     present.Has(model.MaterialTile, model.MaterialHardwood),
		NeedsGrout:        present.Has(model.MaterialTile),
	}
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// maxArea keeps area * (1 + waste) finite for waste factors up to 1.
const maxArea = math.MaxFloat64 / 2

func validRoomSize(length, width float64) bool {
	return validDimension(length) && validDimension(width) && length*width <= maxArea
}

// amount treats missing, negative or non-finite prices and sizes as 0.
func amount(v float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return 0
}
