package loop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/pipe"
)

//----------------------------------------------------------------------------//
// Locate
//----------------------------------------------------------------------------//

func TestLocate_Square(t *testing.T) {
	e, err := loop.Locate(load(t, "square"))
	require.NoError(t, err)
	require.Equal(t, loop.Entry{
		Shape:     pipe.SouthEast,
		Departure: pipe.South,
		First:     pipe.Pos{Row: 2, Col: 1},
	}, e)
}

func TestLocate_ShapeAcrossFixtures(t *testing.T) {
	want := map[string]pipe.Tile{
		"complex": pipe.SouthEast,
		"junk":    pipe.SouthWest,
		"larger":  pipe.SouthEast,
		"reflex":  pipe.SouthWest,
	}
	for name, shape := range want {
		e, err := loop.Locate(load(t, name))
		require.NoError(t, err, name)
		require.Equal(t, shape, e.Shape, name)
	}
}

// TestLocate_Errors verifies that a start without exactly two loop-connected
// neighbors is rejected.
func TestLocate_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"Isolated", "...\n.S.\n..."},
		{"OneNeighbor", "S-7\n..|\n..."},
		{"ThreeNeighbors", ".|.\n-S-\n..."},
		{"FourNeighbors", ".|.\n-S-\n.|."},
		{"PointsAway", ".-.\n|S|\n.-."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.Parse(tc.input)
			require.NoError(t, err)
			_, err = loop.Locate(g)
			require.ErrorIs(t, err, loop.ErrStartNotLoop)
		})
	}
}

//----------------------------------------------------------------------------//
// Walk
//----------------------------------------------------------------------------//

func TestWalk_Square(t *testing.T) {
	g := load(t, "square")
	l, err := loop.Find(g)
	require.NoError(t, err)

	require.Equal(t, 8, l.Len())
	require.Equal(t, 4, l.Farthest())
	require.Equal(t, []pipe.Pos{
		{Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 1, Col: 2}, {Row: 1, Col: 1},
	}, l.Cells())

	first := l.Steps[0]
	require.Equal(t, pipe.South, first.Incoming)
	require.Equal(t, pipe.Vertical, first.Tile)
	require.Equal(t, [2]pipe.Direction{pipe.East, pipe.East}, first.Sides)

	last := l.Steps[l.Len()-1]
	require.Equal(t, g.Start(), last.Pos)
	require.Equal(t, pipe.SouthEast, last.Tile)
	require.Equal(t, [2]pipe.Direction{pipe.South, pipe.East}, last.Sides)

	require.True(t, l.Contains(pipe.Pos{Row: 3, Col: 3}))
	require.False(t, l.Contains(pipe.Pos{Row: 2, Col: 2}))
	require.False(t, l.Clockwise())
	require.False(t, l.TracksRight())
}

func TestWalk_Farthest(t *testing.T) {
	l, err := loop.Find(load(t, "complex"))
	require.NoError(t, err)
	require.Equal(t, 16, l.Len())
	require.Equal(t, 8, l.Farthest())
}

func TestWalk_Restartable(t *testing.T) {
	g := load(t, "larger")
	e, err := loop.Locate(g)
	require.NoError(t, err)
	a, err := loop.Walk(g, e)
	require.NoError(t, err)
	b, err := loop.Walk(g, e)
	require.NoError(t, err)
	require.Equal(t, a.Steps, b.Steps)
}

// TestWalk_Errors verifies that a loop which cannot return to the start is fatal.
func TestWalk_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"Ground", "S-7\n|.|\nL-."},
		{"LeavesGrid", "S-\nL-"},
		{"Blocked", "S-7\n|.|\nL||"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.Parse(tc.input)
			require.NoError(t, err)
			_, err = loop.Find(g)
			require.ErrorIs(t, err, loop.ErrLoopNotClosed)
		})
	}
}

func TestWalk_BadEntry(t *testing.T) {
	g := load(t, "square")
	_, err := loop.Walk(g, loop.Entry{Shape: pipe.SouthEast, Departure: pipe.North, First: pipe.Pos{Row: 0, Col: 1}})
	require.ErrorIs(t, err, loop.ErrLoopNotClosed)
	_, err = loop.Walk(g, loop.Entry{Shape: pipe.SouthEast, Departure: pipe.North, First: pipe.Pos{Row: -1, Col: 1}})
	require.ErrorIs(t, err, loop.ErrLoopNotClosed)
}

//----------------------------------------------------------------------------//
// Properties across fixtures
//----------------------------------------------------------------------------//

// TestWalk_CycleProperties checks, for every fixture, that consecutive steps
// are joined by a transition (so every loop cell reaches every other), that
// the loop has the expected length, and that Pick's theorem gives the known
// enclosed count.
func TestWalk_CycleProperties(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			l, err := loop.Find(load(t, fx.name))
			require.NoError(t, err)
			require.Equal(t, fx.length, l.Len())
			require.Equal(t, fx.enclosed, l.Enclosed())

			n := l.Len()
			for i, s := range l.Steps {
				_, next, err := pipe.Transition(s.Tile, s.Incoming, s.Pos)
				require.NoError(t, err)
				require.Equal(t, l.Steps[(i+1)%n].Pos, next, "step %d", i)
			}
		})
	}
}

// TestWalk_SideTracking checks that every step names the same side of the
// loop: Sides[0] is lateral to the entering leg, Sides[1] to the leaving
// leg, and both are on the right exactly when TracksRight says so.
func TestWalk_SideTracking(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			l, err := loop.Find(load(t, fx.name))
			require.NoError(t, err)
			right := l.TracksRight()
			for i, s := range l.Steps {
				in := s.Incoming
				out, err := s.Outgoing()
				require.NoError(t, err, "step %d", i)
				assert.False(t, s.Sides[0].Parallel(in), "step %d entering side", i)
				assert.False(t, s.Sides[1].Parallel(out), "step %d leaving side", i)
				assert.Equal(t, right, s.Sides[0] == in.Right(), "step %d entering side", i)
				assert.Equal(t, right, s.Sides[1] == out.Right(), "step %d leaving side", i)
			}
		})
	}
}

func TestStep_OutgoingRejectsBadEntry(t *testing.T) {
	s := loop.Step{Pos: pipe.Pos{Row: 2, Col: 2}, Incoming: pipe.East, Tile: pipe.Vertical}
	_, err := s.Outgoing()
	require.ErrorIs(t, err, pipe.ErrInvalidEntry)

	s.Incoming = pipe.South
	out, err := s.Outgoing()
	require.NoError(t, err)
	require.Equal(t, pipe.South, out)
}

func TestArea_MirrorKeepsSizeFlipsWinding(t *testing.T) {
	for _, fx := range fixtures {
		g := load(t, fx.name)
		a, err := loop.Find(g)
		require.NoError(t, err)
		b, err := loop.Find(g.Mirror())
		require.NoError(t, err)
		require.Equal(t, a.Area(), b.Area(), fx.name)
		require.Equal(t, a.Enclosed(), b.Enclosed(), fx.name)
		require.Equal(t, a.Len(), b.Len(), fx.name)
		require.NotEqual(t, a.Clockwise(), b.Clockwise(), fx.name)
	}
}
