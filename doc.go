// Package pipemaze traces the closed pipe loop in a grid of pipe tiles and
// classifies every other tile as enclosed by the loop or outside it.
//
// A grid is text, one row per line, using the tiles
//
//	| - L J 7 F   pipes (L joins north and east, F joins south and east, ...)
//	.             ground
//	S             start, a pipe of unknown shape on the loop
//
// The work is split into small packages, leaves first:
//
//	pipe/    tile and direction model, transitions, lateral side tables
//	maze/    grid ingestion, per-cell state layer, rendering
//	loop/    start-shape inference, loop walk with side tracking, area
//	region/  boundary marking, orientation correction, flood fill, counting
//	solve/   the ordered pipeline with logging and a Pick's theorem check
//	config/  HCL batch files of puzzles with expected answers
//
// The pipemaze command (cmd/pipemaze) exposes solve, render and batch
// subcommands on top of these packages.
//
// Classification needs no winding test: the walker keeps one lateral side
// of the loop in view, the boundary marker labels that side Outside, and
// the rightmost loop tile decides whether the label must be flipped,
// because the exterior of a closed loop always lies east of its eastmost
// column.
package pipemaze
