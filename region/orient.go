package region

import (
	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/pipe"
)

// Correct inverts the provisional labels when the side tracked at the
// rightmost column points West, and reports whether it did.
//
// Nothing of the loop lies east of its rightmost column, so the cell east of
// a loop cell there is outside. A tracked side of East confirms the default
// labels; a tracked side of West means they were put on the interior.
func Correct(g *maze.Grid, m Marks) bool {
	if m.Rightmost.Sides[0] != pipe.West && m.Rightmost.Sides[1] != pipe.West {
		return false
	}
	Invert(g)
	return true
}

// Invert swaps Inside and Outside on every cell of g. Applying it twice
// restores the labels.
func Invert(g *maze.Grid) {
	g.Each(func(p pipe.Pos, s maze.State) {
		if s.Labeled() {
			g.SetState(p, s.Invert())
		}
	})
}
