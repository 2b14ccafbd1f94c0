// Package solve runs the full pipe-maze pipeline on one grid:
//
//	Locate → Walk → Mark → Correct → Flood → Count
//
// Each stage receives the grid explicitly and the stages run strictly in
// order; the grid is owned by the pipeline until Solve returns. Any
// structural error (no valid start, an open loop) aborts the run and no
// partial Result is returned.
//
// Usage:
//
//	g, err := maze.Parse(text)
//	if err != nil {
//		// handle ErrEmptyGrid, ErrNonRectangular, ErrNoStart, ...
//	}
//	res, err := solve.Solve(ctx, g,
//		solve.WithLogger(logger),
//		solve.WithCrossCheck(),
//	)
//	fmt.Println(res.Farthest, res.Enclosed)
//
// WithCrossCheck recomputes the enclosed count from the loop polygon with
// Pick's theorem and fails with ErrCrossCheck if the two disagree.
package solve
