package pipe

import (
	"errors"
	"fmt"
)

// Sentinel errors for tile operations.
var (
	// ErrInvalidEntry indicates a tile cannot be entered in the given direction.
	ErrInvalidEntry = errors.New("pipe: invalid entry direction")
	// ErrGround indicates an attempt to traverse empty ground.
	ErrGround = fmt.Errorf("%w: cannot traverse empty ground", ErrInvalidEntry)
	// ErrUnresolvedStart indicates Start was traversed before its shape was known.
	ErrUnresolvedStart = errors.New("pipe: start tile shape is unresolved")
	// ErrBadPair indicates no pipe shape connects the two directions.
	ErrBadPair = errors.New("pipe: no tile connects these directions")
	// ErrUnknownTile indicates an unrecognised tile character.
	ErrUnknownTile = errors.New("pipe: unknown tile character")
	// ErrNoSides indicates a tile without lateral sides.
	ErrNoSides = errors.New("pipe: tile has no lateral sides")
)

// Direction is a compass direction of travel on the grid.
// Declaration order is the order in which neighbors of a cell are scanned.
type Direction uint8

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists all directions in scan order.
var Directions = [4]Direction{North, South, West, East}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// Parallel reports whether d and o lie on the same axis.
func (d Direction) Parallel(o Direction) bool {
	return d.vertical() == o.vertical()
}

func (d Direction) vertical() bool {
	return d == North || d == South
}

// Right returns the direction on the right-hand side of a traveller
// heading in d, as seen on screen (rows grow downwards).
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Left returns the direction on the left-hand side of a traveller heading in d.
func (d Direction) Left() Direction {
	return d.Right().Inverse()
}

// Offset returns the (row, col) delta of one step in d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case West:
		return "W"
	case East:
		return "E"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Pos addresses a grid cell by row and column.
type Pos struct {
	Row, Col int
}

// Step returns the position one cell away in direction d.
// No bounds checking is performed.
func (p Pos) Step(d Direction) Pos {
	dr, dc := d.Offset()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Tile is one cell of the maze.
type Tile uint8

const (
	// Ground is an empty cell.
	Ground Tile = iota
	// Start marks the loop start; its shape is inferred from its neighbors.
	Start
	// Vertical connects North and South: '|'.
	Vertical
	// Horizontal connects West and East: '-'.
	Horizontal
	// NorthEast connects North and East: 'L'.
	NorthEast
	// NorthWest connects North and West: 'J'.
	NorthWest
	// SouthEast connects South and East: 'F'.
	SouthEast
	// SouthWest connects South and West: '7'.
	SouthWest
)

var tileRunes = [...]rune{
	Ground:     '.',
	Start:      'S',
	Vertical:   '|',
	Horizontal: '-',
	NorthEast:  'L',
	NorthWest:  'J',
	SouthEast:  'F',
	SouthWest:  '7',
}

// ParseTile maps a maze character to its Tile.
func ParseTile(r rune) (Tile, error) {
	for t, c := range tileRunes {
		if c == r {
			return Tile(t), nil
		}
	}
	return Ground, fmt.Errorf("%w: %q", ErrUnknownTile, r)
}

// Rune returns the maze character of t.
func (t Tile) Rune() rune {
	if int(t) < len(tileRunes) {
		return tileRunes[t]
	}
	return '?'
}

func (t Tile) String() string {
	return string(t.Rune())
}

// IsPipe reports whether t is one of the six pipe shapes.
func (t Tile) IsPipe() bool {
	return t >= Vertical && t <= SouthWest
}

// Connections returns the two directions joined by a pipe shape.
// ok is false for Ground and Start.
func (t Tile) Connections() (a, b Direction, ok bool) {
	switch t {
	case Vertical:
		return North, South, true
	case Horizontal:
		return West, East, true
	case NorthEast:
		return North, East, true
	case NorthWest:
		return North, West, true
	case SouthEast:
		return South, East, true
	case SouthWest:
		return South, West, true
	}
	return 0, 0, false
}

// Connects reports whether t has an opening towards d.
func (t Tile) Connects(d Direction) bool {
	a, b, ok := t.Connections()
	return ok && (a == d || b == d)
}

// FromDirections returns the pipe shape joining an unordered pair of
// directions. Equal directions have no shape and yield ErrBadPair.
func FromDirections(a, b Direction) (Tile, error) {
	for _, t := range []Tile{Vertical, Horizontal, NorthEast, NorthWest, SouthEast, SouthWest} {
		x, y, _ := t.Connections()
		if (x == a && y == b) || (x == b && y == a) {
			return t, nil
		}
	}
	return Ground, fmt.Errorf("%w: %s,%s", ErrBadPair, a, b)
}
