// Package pipe defines the closed tile model of a pipe maze and the
// transition function that moves a traveller through one tile.
//
// What:
//
//   - Direction: North, South, West, East with Inverse and Parallel relations.
//   - Tile: Ground, Start and the six pipe shapes (| - L J 7 F).
//   - Transition: given a tile, the travel direction on entry and the tile
//     position, returns the travel direction on exit and the next position.
//   - FromDirections: builds the pipe shape connecting an unordered pair.
//   - Perpendicular / NextPerpendicular: lateral side tables used to keep
//     track of one side of a loop while walking it.
//
// Transition is a total switch over the closed enumeration. Every entry a
// shape cannot accept is reported as ErrInvalidEntry, never silently mapped
// to a default direction.
//
// Complexity: every operation is O(1).
//
// Errors:
//
//   - ErrInvalidEntry: the tile cannot be entered travelling in that direction.
//   - ErrGround: the tile is ground (wraps ErrInvalidEntry).
//   - ErrUnresolvedStart: Start has no shape until the loop is located.
//   - ErrBadPair: no pipe shape joins the two given directions.
//   - ErrUnknownTile: a character is not one of | - L J 7 F . S.
//   - ErrNoSides: Ground and Start have no lateral sides.
package pipe
