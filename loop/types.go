package loop

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pipemaze/pipe"
)

// Sentinel errors for loop discovery. Both are structural: the maze has no
// usable loop and nothing can be classified.
var (
	// ErrStartNotLoop indicates the start cell is not joined to exactly two neighbors.
	ErrStartNotLoop = errors.New("loop: start tile is not loop-valid")
	// ErrLoopNotClosed indicates the walk could not return to the start.
	ErrLoopNotClosed = errors.New("loop: loop does not close")
)

// Entry is the result of locating the loop from the start cell.
type Entry struct {
	// Shape is the pipe shape synthesized for the start cell.
	Shape pipe.Tile
	// Departure is the direction of travel when leaving the start cell.
	Departure pipe.Direction
	// First is the loop cell reached by leaving the start in Departure.
	First pipe.Pos
}

// Step is one visited loop cell.
type Step struct {
	Pos pipe.Pos
	// Incoming is the direction of travel when entering the cell.
	Incoming pipe.Direction
	// Tile is the cell's shape; the synthesized shape for the start cell.
	Tile pipe.Tile
	// Sides holds the tracked lateral side relative to the entering leg
	// and relative to the leaving leg. Both are equal on straight tiles.
	Sides [2]pipe.Direction
}

// Outgoing returns the direction of travel when leaving the cell.
// It fails with pipe.ErrInvalidEntry if Tile cannot be entered moving
// Incoming, which never happens for steps produced by Walk.
func (s Step) Outgoing() (pipe.Direction, error) {
	out, _, err := pipe.Transition(s.Tile, s.Incoming, s.Pos)
	if err != nil {
		return s.Incoming, fmt.Errorf("loop: step at %s: %w", s.Pos, err)
	}
	return out, nil
}

// Loop is the ordered cycle of loop cells. Steps starts at Entry.First and
// ends with the start cell.
type Loop struct {
	Entry Entry
	Start pipe.Pos
	Steps []Step
	cells mapset.Set[pipe.Pos]
}

// Len returns the number of cells on the loop.
func (l *Loop) Len() int {
	return len(l.Steps)
}

// Farthest returns the number of steps along the loop from the start to
// the cell farthest from it.
func (l *Loop) Farthest() int {
	return len(l.Steps) / 2
}

// Contains reports whether p is a loop cell.
func (l *Loop) Contains(p pipe.Pos) bool {
	return l.cells.Has(p)
}

// Cells returns the loop positions in walk order.
func (l *Loop) Cells() []pipe.Pos {
	out := make([]pipe.Pos, len(l.Steps))
	for i, s := range l.Steps {
		out[i] = s.Pos
	}
	return out
}

// TracksRight reports whether the tracked side is the right-hand side of
// the direction of travel.
func (l *Loop) TracksRight() bool {
	if len(l.Steps) == 0 {
		return false
	}
	first := l.Steps[0]
	return first.Sides[0] == first.Incoming.Right()
}
