package engine

import (
	"fmt"

	"github.com/piwi3910/FloorCalc/internal/model"
)

// ComparisonScenario is a named variation of a project's rooms.
type ComparisonScenario struct {
	Name  string
	Rooms []model.Room
}

// ComparisonResult holds the estimate for one scenario and its difference
// from the first scenario in the comparison.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.ProjectResult
	ExtraArea     float64 // waste-adjusted area above the baseline
	ExtraCost     float64
	ExtraPackages int
}

// CompareScenarios estimates each scenario in order. The first scenario is
// the baseline the extras are measured against. Any invalid scenario fails
// the whole comparison.
func (e *Estimator) CompareScenarios(scenarios []ComparisonScenario) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	var base model.ProjectTotals
	for i, scenario := range scenarios {
		result, err := e.ComputeProject(scenario.Rooms)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		if i == 0 {
			base = result.Totals
		}
		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			ExtraArea:     result.Totals.TotalAreaWithWaste - base.TotalAreaWithWaste,
			ExtraCost:     result.Totals.TotalCost - base.TotalCost,
			ExtraPackages: result.Totals.TotalPackages - base.TotalPackages,
		})
	}

	return results, nil
}

// BuildPatternScenarios returns the rooms as entered followed by one
// what-if scenario per installation pattern applied to every room.
func BuildPatternScenarios(rooms []model.Room) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "As Entered", Rooms: rooms},
	}

	for _, p := range model.Patterns {
		alt := make([]model.Room, len(rooms))
		copy(alt, rooms)
		for i := range alt {
			alt[i].Pattern = p
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:  "All " + p.Label(),
			Rooms: alt,
		})
	}

	return scenarios
}
