package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pipemaze/pipe"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of tiles
// holding exactly one Start. It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNoStart or ErrManyStarts.
// Complexity: O(R×C) time and memory.
func New(tiles [][]pipe.Tile) (*Grid, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(tiles), len(tiles[0])
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		tiles: make([][]pipe.Tile, rows),
		state: make([][]State, rows),
	}
	starts := 0
	for r, row := range tiles {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
		g.tiles[r] = make([]pipe.Tile, cols)
		copy(g.tiles[r], row)
		g.state[r] = make([]State, cols)
		for c, t := range row {
			if t == pipe.Start {
				g.start = pipe.Pos{Row: r, Col: c}
				starts++
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrManyStarts, starts)
	}

	return g, nil
}

// Parse builds a Grid from its text form.
func Parse(text string) (*Grid, error) {
	return Read(strings.NewReader(text))
}

// MaxLineBytes bounds the length of one input row accepted by Read.
const MaxLineBytes = 16 << 20

// Read builds a Grid from r, one row per line. Carriage returns and
// leading or trailing blank lines are ignored; a blank line between rows
// is reported as a row of the wrong length. Rows longer than MaxLineBytes
// fail with ErrLineTooLong.
func Read(r io.Reader) (*Grid, error) {
	var tiles [][]pipe.Tile
	blank := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blank++
			continue
		}
		for ; blank > 0 && len(tiles) > 0; blank-- {
			tiles = append(tiles, nil)
		}
		blank = 0
		row := make([]pipe.Tile, 0, len(text))
		for col, ch := range []rune(text) {
			t, err := pipe.ParseTile(ch)
			if err != nil {
				return nil, fmt.Errorf("maze: line %d, column %d: %w", line, col+1, err)
			}
			row = append(row, t)
		}
		tiles = append(tiles, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, line+1, MaxLineBytes)
		}
		return nil, fmt.Errorf("maze: read: %w", err)
	}

	return New(tiles)
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p pipe.Pos) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Tile returns the tile at p. p must be in bounds.
func (g *Grid) Tile(p pipe.Pos) pipe.Tile {
	return g.tiles[p.Row][p.Col]
}

// Start returns the position of the start tile.
func (g *Grid) Start() pipe.Pos {
	return g.start
}

// State returns the classification of p. p must be in bounds.
func (g *Grid) State(p pipe.Pos) State {
	return g.state[p.Row][p.Col]
}

// SetState sets the classification of p. p must be in bounds.
func (g *Grid) SetState(p pipe.Pos, s State) {
	g.state[p.Row][p.Col] = s
}

// Neighbors returns the in-bounds 4-neighbors of p in scan order
// (North, South, West, East).
func (g *Grid) Neighbors(p pipe.Pos) []pipe.Pos {
	out := make([]pipe.Pos, 0, len(pipe.Directions))
	for _, d := range pipe.Directions {
		if n := p.Step(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p pipe.Pos, s State)) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			fn(pipe.Pos{Row: r, Col: c}, g.state[r][c])
		}
	}
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, row := range g.state {
		for _, v := range row {
			if v == s {
				n++
			}
		}
	}
	return n
}

// Tally counts cells of every state in one pass.
func (g *Grid) Tally() Tally {
	var t Tally
	for _, row := range g.state {
		for _, v := range row {
			switch v {
			case Unknown:
				t.Unknown++
			case Wall:
				t.Wall++
			case Inside:
				t.Inside++
			case Outside:
				t.Outside++
			}
		}
	}
	return t
}

// Reset clears every cell back to Unknown.
func (g *Grid) Reset() {
	for _, row := range g.state {
		for c := range row {
			row[c] = Unknown
		}
	}
}

// mirrored maps each tile to its left-right reflection.
var mirrored = map[pipe.Tile]pipe.Tile{
	pipe.NorthEast: pipe.NorthWest,
	pipe.NorthWest: pipe.NorthEast,
	pipe.SouthEast: pipe.SouthWest,
	pipe.SouthWest: pipe.SouthEast,
}

// Mirror returns a new Grid reflected left to right, with elbows swapped
// so that the loop stays connected. The state layer is not copied.
func (g *Grid) Mirror() *Grid {
	m := &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		tiles: make([][]pipe.Tile, g.Rows),
		state: make([][]State, g.Rows),
		start: pipe.Pos{Row: g.start.Row, Col: g.Cols - 1 - g.start.Col},
	}
	for r := 0; r < g.Rows; r++ {
		m.tiles[r] = make([]pipe.Tile, g.Cols)
		m.state[r] = make([]State, g.Cols)
		for c := 0; c < g.Cols; c++ {
			t := g.tiles[r][g.Cols-1-c]
			if f, ok := mirrored[t]; ok {
				t = f
			}
			m.tiles[r][c] = t
		}
	}
	return m
}
