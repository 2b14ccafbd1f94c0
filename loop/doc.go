// Package loop finds and walks the single closed pipe loop of a maze.
//
// Locate probes the four neighbors of the start cell (North, South, West,
// East) and keeps those whose own tile leads straight back into the start.
// Exactly two must do so; their directions give the start cell its shape.
//
// Walk then follows the loop with pipe.Transition from the first connected
// neighbor until it returns to the start, producing one Step per loop cell.
// Each Step carries a tracked lateral side: Sides[0] relative to the leg the
// walker entered on and Sides[1] relative to the leg it left on. The side is
// chosen at the first cell and carried across bends with
// pipe.Tile.NextPerpendicular, so every Step names the same side of the loop.
//
// The loop is never modelled as a general graph: the maze holds exactly one
// simple cycle, so following transitions until the start reappears is enough
// and no cycle detection is needed.
//
// Complexity:
//
//   - Locate: O(1).
//   - Walk:   O(L) time and memory, L = loop length.
//   - Area, Enclosed: O(L).
//
// Errors:
//
//   - ErrStartNotLoop: the start cell does not have exactly two connected neighbors.
//   - ErrLoopNotClosed: the walk hit ground, an invalid entry, the grid edge,
//     or revisited a loop cell before returning to the start.
package loop
