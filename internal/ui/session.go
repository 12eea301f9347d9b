package ui

import (
	"errors"
	"fmt"

	"github.com/piwi3910/FloorCalc/internal/engine"
	"github.com/piwi3910/FloorCalc/internal/model"
)

// ErrNoRooms is returned by Calculate when the project has no rooms.
var ErrNoRooms = errors.New("add at least one room before calculating")

// Session is the editable state behind the window: the open project, its
// undo history and the estimator. Every room edit records a snapshot first
// and drops the previous result, because a result always describes the
// rooms it was computed from.
type Session struct {
	project   model.Project
	history   *History
	estimator *engine.Estimator
}

// NewSession starts editing p with the given estimator; nil means the standard tables.
func NewSession(p model.Project, estimator *engine.Estimator) *Session {
	if estimator == nil {
		estimator = engine.New()
	}
	return &Session{project: p, history: NewHistory(), estimator: estimator}
}

// Project returns the project being edited.
func (s *Session) Project() model.Project { return s.project }

// Rooms returns the current rooms. The slice must not be modified.
func (s *Session) Rooms() []model.Room { return s.project.Rooms }

// Units returns the project's unit system.
func (s *Session) Units() model.UnitSystem { return s.project.Units }

// Result returns the last successful estimate, or nil.
func (s *Session) Result() *model.ProjectResult { return s.project.Result }

func (s *Session) record(label string) {
	s.history.Push(MakeSnapshot(s.project.Rooms, s.project.Units, label))
	s.project.Result = nil
}

func (s *Session) checkIndex(idx int) error {
	if idx < 0 || idx >= len(s.project.Rooms) {
		return fmt.Errorf("no room at position %d", idx+1)
	}
	return nil
}

// AddRoom appends a room.
func (s *Session) AddRoom(r model.Room) {
	s.record("Add Room")
	s.project.Rooms = append(s.project.Rooms, r)
}

// AddRooms appends imported rooms as one undoable step.
func (s *Session) AddRooms(rooms []model.Room, label string) {
	if len(rooms) == 0 {
		return
	}
	s.record(label)
	s.project.Rooms = append(s.project.Rooms, rooms...)
}

// UpdateRoom replaces the room at idx, keeping its ID and imported outline.
func (s *Session) UpdateRoom(idx int, r model.Room) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	s.record("Edit Room")
	old := s.project.Rooms[idx]
	r.ID = old.ID
	if r.Outline == nil {
		r.Outline = old.Outline
	}
	s.project.Rooms[idx] = r
	return nil
}

// RemoveRoom deletes the room at idx.
func (s *Session) RemoveRoom(idx int) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	s.record("Remove Room")
	s.project.Rooms = append(s.project.Rooms[:idx:idx], s.project.Rooms[idx+1:]...)
	return nil
}

// DuplicateRoom inserts a copy of the room at idx right after it.
func (s *Session) DuplicateRoom(idx int) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	s.record("Duplicate Room")
	src := s.project.Rooms[idx]
	dup := model.NewRoom("", src.Length, src.Width, src.Material, src.Pattern)
	if src.Name != "" {
		dup.Name = src.Name + " (copy)"
	}
	dup.CostPerUnit = src.CostPerUnit
	dup.PackageCoverage = src.PackageCoverage
	dup.Outline = copyRooms([]model.Room{src})[0].Outline

	rooms := make([]model.Room, 0, len(s.project.Rooms)+1)
	rooms = append(rooms, s.project.Rooms[:idx+1]...)
	rooms = append(rooms, dup)
	rooms = append(rooms, s.project.Rooms[idx+1:]...)
	s.project.Rooms = rooms
	return nil
}

// SetUnits switches the unit labels. Values are not converted, so an
// existing result stays valid.
func (s *Session) SetUnits(u model.UnitSystem) {
	if u != model.UnitsMetric {
		u = model.UnitsImperial
	}
	if u == s.project.Units {
		return
	}
	result := s.project.Result
	s.record("Change Units")
	s.project.Units = u
	s.project.Result = result
}

// Reset clears every room and the result, then adds the given starter
// rooms. It can be undone.
func (s *Session) Reset(starters ...model.Room) {
	s.record("Reset")
	s.project.Rooms = append([]model.Room{}, starters...)
}

// Load replaces the project and forgets the undo history.
func (s *Session) Load(p model.Project) {
	s.project = p
	s.history.Clear()
}

// Rename sets the project name without touching the history.
func (s *Session) Rename(name string) {
	s.project.Name = name
}

// Undo restores the previous room list. It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo(MakeSnapshot(s.project.Rooms, s.project.Units, "Undo"))
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// Redo reapplies the last undone change.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo(MakeSnapshot(s.project.Rooms, s.project.Units, "Redo"))
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

func (s *Session) restore(snap Snapshot) {
	s.project.Rooms = snap.Rooms
	if s.project.Rooms == nil {
		s.project.Rooms = []model.Room{}
	}
	s.project.Units = snap.Units
	s.project.Result = nil
}

// CanUndo reports whether Undo would do anything.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Calculate estimates every room. It fails with ErrNoRooms on an empty
// project and with the estimator's error (wrapping
// engine.ErrInvalidDimensions) when a room is invalid; either way the
// previous result is cleared.
func (s *Session) Calculate() (model.ProjectResult, error) {
	s.project.Result = nil
	if len(s.project.Rooms) == 0 {
		return model.ProjectResult{}, ErrNoRooms
	}
	result, err := s.estimator.ComputeProject(s.project.Rooms)
	if err != nil {
		return model.ProjectResult{}, err
	}
	s.project.Result = &result
	return result, nil
}

// ComparePatterns estimates the rooms as entered and with each pattern
// applied to every room.
func (s *Session) ComparePatterns() ([]engine.ComparisonResult, error) {
	if len(s.project.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	return s.estimator.CompareScenarios(engine.BuildPatternScenarios(s.project.Rooms))
}
