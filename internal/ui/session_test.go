package ui

import (
	"errors"
	"testing"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return NewSession(model.NewProject(), nil)
}

func TestSessionCalculateRequiresRooms(t *testing.T) {
	s := newTestSession()
	_, err := s.Calculate()
	assert.ErrorIs(t, err, ErrNoRooms)
	assert.Nil(t, s.Result())

	_, err = s.ComparePatterns()
	assert.ErrorIs(t, err, ErrNoRooms)
}

func TestSessionCalculate(t *testing.T) {
	s := newTestSession()
	r := model.NewRoom("", 12.5, 10, model.MaterialTile, model.PatternStraight)
	r.CostPerUnit = 3.50
	r.PackageCoverage = 23.91
	s.AddRoom(r)

	result, err := s.Calculate()
	require.NoError(t, err)
	require.NotNil(t, s.Result())
	assert.Equal(t, "Room 1", result.Rooms[0].Name)
	assert.Equal(t, 6, result.Totals.TotalPackages)
	assert.InDelta(t, 481.25, result.Totals.TotalCost, 1e-9)
}

func TestSessionCalculateInvalidDimensionsClearsResult(t *testing.T) {
	s := newTestSession()
	s.AddRoom(model.NewRoom("Good", 10, 10, model.MaterialTile, model.PatternStraight))
	_, err := s.Calculate()
	require.NoError(t, err)

	// Rooms loaded from a file may carry bad dimensions
	p := s.Project()
	p.Rooms = append(p.Rooms, model.Room{ID: "bad", Width: 5, Material: model.MaterialTile, Pattern: model.PatternStraight})
	s.Load(p)

	_, err = s.Calculate()
	assert.ErrorIs(t, err, engine.ErrInvalidDimensions)
	var dimErr *engine.InvalidDimensionsError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, []int{2}, dimErr.Positions)
	assert.Nil(t, s.Result(), "no partial result after a failed batch")
}

func TestSessionEditsInvalidateResult(t *testing.T) {
	s := newTestSession()
	s.AddRoom(model.NewRoom("A", 10, 10, model.MaterialVinyl, model.PatternStraight))
	_, err := s.Calculate()
	require.NoError(t, err)

	// Switching units keeps the result
	s.SetUnits(model.UnitsMetric)
	assert.NotNil(t, s.Result())
	assert.Equal(t, model.UnitsMetric, s.Units())

	require.NoError(t, s.UpdateRoom(0, model.NewRoom("A", 11, 10, model.MaterialVinyl, model.PatternStraight)))
	assert.Nil(t, s.Result())
}

func TestSessionUpdateKeepsIDAndOutline(t *testing.T) {
	s := newTestSession()
	orig := model.NewRoom("Plan", 12, 10, model.MaterialTile, model.PatternStraight)
	orig.Outline = model.Outline{{X: 0, Y: 0}, {X: 12, Y: 0}, {X: 12, Y: 10}, {X: 0, Y: 10}}
	s.AddRoom(orig)

	require.NoError(t, s.UpdateRoom(0, model.NewRoom("Renamed", 12, 10, model.MaterialCarpet, model.PatternStraight)))
	got := s.Rooms()[0]
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, "Renamed", got.Name)
	assert.Len(t, got.Outline, 4)

	assert.Error(t, s.UpdateRoom(5, orig))
}

func TestSessionRemoveAndDuplicate(t *testing.T) {
	s := newTestSession()
	s.AddRoom(model.NewRoom("A", 1, 1, model.MaterialTile, model.PatternStraight))
	s.AddRoom(model.NewRoom("", 2, 2, model.MaterialTile, model.PatternStraight))
	s.AddRoom(model.NewRoom("C", 3, 3, model.MaterialTile, model.PatternStraight))

	require.NoError(t, s.DuplicateRoom(0))
	names := func() []string {
		var out []string
		for _, r := range s.Rooms() {
			out = append(out, r.Name)
		}
		return out
	}
	assert.Equal(t, []string{"A", "A (copy)", "", "C"}, names())
	assert.NotEqual(t, s.Rooms()[0].ID, s.Rooms()[1].ID)

	require.NoError(t, s.DuplicateRoom(2))
	assert.Equal(t, []string{"A", "A (copy)", "", "", "C"}, names())

	require.NoError(t, s.RemoveRoom(1))
	assert.Equal(t, []string{"A", "", "", "C"}, names())
	assert.Error(t, s.RemoveRoom(-1))
	assert.Error(t, s.DuplicateRoom(4))
}

func TestSessionResetWithStarterRoom(t *testing.T) {
	s := newTestSession()
	s.AddRoom(model.NewRoom("A", 1, 1, model.MaterialTile, model.PatternStraight))
	s.AddRoom(model.NewRoom("B", 2, 2, model.MaterialVinyl, model.PatternStraight))

	starter := model.NewRoom("", 0, 0, model.MaterialLaminate, model.PatternDiagonal)
	s.Reset(starter)
	require.Len(t, s.Rooms(), 1)
	assert.Equal(t, starter.ID, s.Rooms()[0].ID)
	assert.Nil(t, s.Result())

	// The blank starter room must be sized before a calculation succeeds
	_, err := s.Calculate()
	assert.ErrorIs(t, err, engine.ErrInvalidDimensions)

	require.True(t, s.Undo())
	assert.Len(t, s.Rooms(), 2)
}

func TestSessionUndoRedoAndReset(t *testing.T) {
	s := newTestSession()
	assert.False(t, s.Undo())

	s.AddRoom(model.NewRoom("A", 1, 1, model.MaterialTile, model.PatternStraight))
	s.AddRooms([]model.Room{
		model.NewRoom("B", 2, 2, model.MaterialTile, model.PatternStraight),
		model.NewRoom("C", 3, 3, model.MaterialTile, model.PatternStraight),
	}, "Import CSV")
	s.AddRooms(nil, "Import nothing")
	require.Len(t, s.Rooms(), 3)

	s.Reset()
	assert.Empty(t, s.Rooms())
	assert.NotNil(t, s.Rooms())

	require.True(t, s.Undo())
	assert.Len(t, s.Rooms(), 3)
	require.True(t, s.Undo())
	assert.Len(t, s.Rooms(), 1)
	require.True(t, s.Undo())
	assert.Empty(t, s.Rooms())
	assert.False(t, s.CanUndo())

	require.True(t, s.Redo())
	assert.Len(t, s.Rooms(), 1)
	assert.True(t, s.CanRedo())
}

func TestSessionLoadClearsHistory(t *testing.T) {
	s := newTestSession()
	s.AddRoom(model.NewRoom("A", 1, 1, model.MaterialTile, model.PatternStraight))

	p := model.NewProject()
	p.Name = "Other"
	s.Load(p)
	assert.False(t, s.CanUndo())
	assert.Equal(t, "Other", s.Project().Name)

	s.Rename("Renamed")
	assert.Equal(t, "Renamed", s.Project().Name)
	assert.False(t, s.CanUndo())
}

func TestSessionComparePatterns(t *testing.T) {
	s := newTestSession()
	s.AddRoom(model.NewRoom("Hall", 10, 10, model.MaterialTile, model.PatternStraight))

	results, err := s.ComparePatterns()
	require.NoError(t, err)
	require.Len(t, results, 1+len(model.Patterns))
	assert.Equal(t, "As Entered", results[0].Scenario.Name)
	assert.Zero(t, results[0].ExtraArea)
}

func TestSessionSetUnitsNoop(t *testing.T) {
	s := newTestSession()
	s.SetUnits(model.UnitsImperial)
	assert.False(t, s.CanUndo(), "unchanged units record nothing")
	s.SetUnits("furlongs")
	assert.Equal(t, model.UnitsImperial, s.Units())
}
