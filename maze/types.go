package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipemaze/pipe"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNoStart indicates the grid has no start tile.
	ErrNoStart = errors.New("maze: no start tile")
	// ErrManyStarts indicates the grid has more than one start tile.
	ErrManyStarts = errors.New("maze: more than one start tile")
	// ErrLineTooLong indicates an input row longer than MaxLineBytes.
	ErrLineTooLong = errors.New("maze: input line too long")
)

// State is the classification of one cell.
type State uint8

const (
	Unknown State = iota // Unknown: not yet classified.
	Wall                 // Wall: the cell is part of the loop.
	Inside               // Inside: strictly enclosed by the loop.
	Outside              // Outside: not enclosed by the loop.
)

// Invert swaps Inside and Outside; Unknown and Wall are returned unchanged.
func (s State) Invert() State {
	switch s {
	case Inside:
		return Outside
	case Outside:
		return Inside
	}
	return s
}

// Labeled reports whether s is Inside or Outside.
func (s State) Labeled() bool {
	return s == Inside || s == Outside
}

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Wall:
		return "wall"
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Tally holds per-state cell counts.
type Tally struct {
	Unknown, Wall, Inside, Outside int
}

// Grid is a rectangular pipe maze. Rows and Cols define dimensions;
// tiles[r][c] is the input tile and state[r][c] its current classification.
type Grid struct {
	Rows, Cols int
	tiles      [][]pipe.Tile
	state      [][]State
	start      pipe.Pos
}
