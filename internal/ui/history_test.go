package ui

import (
	"testing"

	"github.com/piwi3910/FloorCalc/internal/model"
)

func room(id, name string, length, width float64) model.Room {
	return model.Room{ID: id, Name: name, Length: length, Width: width,
		Material: model.MaterialTile, Pattern: model.PatternStraight}
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	// Push initial state (before adding a room)
	h.Push(MakeSnapshot(nil, model.UnitsImperial, "initial"))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	current := MakeSnapshot([]model.Room{room("r1", "Kitchen", 12, 10)}, model.UnitsImperial, "current")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.Rooms) != 0 {
		t.Errorf("expected 0 rooms after undo, got %d", len(restored.Rooms))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, model.UnitsImperial, "empty"))
	rooms1 := []model.Room{room("r1", "Kitchen", 12, 10)}
	h.Push(MakeSnapshot(rooms1, model.UnitsImperial, "one room"))

	// Current state: two rooms, switched to metric
	rooms2 := []model.Room{room("r1", "Kitchen", 12, 10), room("r2", "Hall", 3, 9)}
	current := MakeSnapshot(rooms2, model.UnitsMetric, "two rooms")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if len(restored.Rooms) != 1 {
		t.Errorf("expected 1 room, got %d", len(restored.Rooms))
	}
	if restored.Units != model.UnitsImperial {
		t.Errorf("expected imperial units after undo, got %s", restored.Units)
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(redone.Rooms) != 2 {
		t.Errorf("expected 2 rooms after redo, got %d", len(redone.Rooms))
	}
	if redone.Units != model.UnitsMetric {
		t.Errorf("expected metric units after redo, got %s", redone.Units)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, model.UnitsImperial, "empty"))

	current := MakeSnapshot([]model.Room{room("r1", "Den", 10, 10)}, model.UnitsImperial, "one room")
	if _, ok := h.Undo(current); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	// Push new state - should clear redo
	h.Push(MakeSnapshot(nil, model.UnitsImperial, "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(nil, model.UnitsImperial, ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	h := NewHistory()
	current := MakeSnapshot(nil, model.UnitsImperial, "current")
	if _, ok := h.Undo(current); ok {
		t.Error("undo on empty history should return false")
	}
	if _, ok := h.Redo(current); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, model.UnitsImperial, "a"))
	h.Push(MakeSnapshot(nil, model.UnitsImperial, "b"))
	h.Undo(MakeSnapshot(nil, model.UnitsImperial, "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestDeepCopyRooms(t *testing.T) {
	r := room("r1", "Kitchen", 12, 10)
	r.Outline = model.Outline{{X: 0, Y: 0}, {X: 12, Y: 0}, {X: 12, Y: 10}, {X: 0, Y: 10}}
	original := []model.Room{r}
	snap := MakeSnapshot(original, model.UnitsImperial, "test")

	// Mutate original
	original[0].Name = "Modified"
	original[0].Outline[1].X = 999

	if snap.Rooms[0].Name != "Kitchen" {
		t.Error("snapshot should be independent of original slice")
	}
	if snap.Rooms[0].Outline[1].X != 12 {
		t.Error("snapshot outline should be independent of original")
	}
}

func TestCopyNilRooms(t *testing.T) {
	snap := MakeSnapshot(nil, model.UnitsMetric, "nil test")
	if snap.Rooms != nil {
		t.Error("nil rooms should stay nil")
	}
}

func TestMultipleUndoRedo(t *testing.T) {
	h := NewHistory()

	// Build up states: empty -> 1 room -> 2 rooms, current has 3
	r1, r2, r3 := room("r1", "A", 1, 1), room("r2", "B", 2, 2), room("r3", "C", 3, 3)
	h.Push(MakeSnapshot(nil, model.UnitsImperial, "empty"))
	h.Push(MakeSnapshot([]model.Room{r1}, model.UnitsImperial, "1 room"))
	h.Push(MakeSnapshot([]model.Room{r1, r2}, model.UnitsImperial, "2 rooms"))
	current := MakeSnapshot([]model.Room{r1, r2, r3}, model.UnitsImperial, "3 rooms")

	s, ok := h.Undo(current)
	if !ok || len(s.Rooms) != 2 {
		t.Fatalf("first undo: expected 2 rooms, got %d", len(s.Rooms))
	}
	s, ok = h.Undo(s)
	if !ok || len(s.Rooms) != 1 {
		t.Fatalf("second undo: expected 1 room, got %d", len(s.Rooms))
	}
	s, ok = h.Undo(s)
	if !ok || len(s.Rooms) != 0 {
		t.Fatalf("third undo: expected 0 rooms, got %d", len(s.Rooms))
	}
	if h.CanUndo() {
		t.Error("should not be able to undo further")
	}

	for want := 1; want <= 3; want++ {
		s, ok = h.Redo(s)
		if !ok || len(s.Rooms) != want {
			t.Fatalf("redo: expected %d rooms, got %d", want, len(s.Rooms))
		}
	}
	if h.CanRedo() {
		t.Error("should not be able to redo further")
	}
}
