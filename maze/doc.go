// Package maze holds a rectangular grid of pipe tiles together with a
// same-shaped grid of classification states.
//
// What:
//
//   - Grid wraps an immutable [][]pipe.Tile and a mutable [][]State.
//   - Parse / Read ingest the text form (one row per line, | - L J 7 F . S).
//   - Count tallies cells by State; Render prints the classified grid.
//   - Mirror returns the left-right reflection of a grid.
//
// The tile layer never changes after construction. The state layer is
// mutated in place by the loop classifier; a Grid is not safe for
// concurrent use.
//
// Complexity:
//
//   - New, Parse, Read, Mirror: O(R×C) time and memory.
//   - Count, Reset: O(R×C).
//   - InBounds, Tile, State, SetState: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart: no S tile.
//   - ErrManyStarts: more than one S tile.
//   - pipe.ErrUnknownTile: an unrecognised character (wrapped with line and column).
package maze
