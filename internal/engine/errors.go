package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piwi3910/FloorCalc/internal/model"
)

// ErrInvalidDimensions reports a room with a missing, zero, negative or
// non-numeric length or width.
var ErrInvalidDimensions = errors.New("invalid room dimensions")

// InvalidDimensionsError lists the 1-based positions of every room in a
// batch that failed validation. It matches ErrInvalidDimensions with errors.Is.
type InvalidDimensionsError struct {
	Positions []int
}

func (e *InvalidDimensionsError) Error() string {
	positions := make([]string, len(e.Positions))
	for i, p := range e.Positions {
		positions[i] = fmt.Sprintf("%d", p)
	}
	noun := "room"
	if len(e.Positions) > 1 {
		noun = "rooms"
	}
	return fmt.Sprintf("%s: %s %s need a positive length and width",
		ErrInvalidDimensions, noun, strings.Join(positions, ", "))
}

func (e *InvalidDimensionsError) Unwrap() error {
	return ErrInvalidDimensions
}

// ValidateRooms checks every room before any estimate is produced.
func ValidateRooms(rooms []model.Room) error {
	var bad []int
	for i, r := range rooms {
		if !validRoomSize(r.Length, r.Width) {
			bad = append(bad, i+1)
		}
	}
	if len(bad) > 0 {
		return &InvalidDimensionsError{Positions: bad}
	}
	return nil
}
