package region

import "github.com/katalvlaran/pipemaze/maze"

// Count returns the number of cells enclosed by the loop after Mark,
// Correct and Flood have run on g. inverted is the result of Correct.
//
// When the tracked side was the interior, Correct turned its labels into
// Inside and the answer is the Inside count, which is zero if every seed
// fell on a wall. Otherwise the tracked side was the exterior, nothing is
// Inside, and the interior is exactly what Flood left Unknown.
func Count(g *maze.Grid, inverted bool) int {
	if n := g.Count(maze.Inside); n > 0 || inverted {
		return n
	}
	return g.Count(maze.Unknown)
}
