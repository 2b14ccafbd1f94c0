// Package region classifies every cell of a maze as loop wall, inside or
// outside once the loop has been walked.
//
// What
//
//   - Mark: sets every loop cell to Wall and labels the cell one step away
//     on the tracked side of each loop Step as provisional Outside, never
//     overwriting a Wall. Records the Step seen at the rightmost column.
//   - Correct: at the rightmost column "truly outside" lies to the east; if
//     the tracked side recorded there points West, the provisional labels sit
//     on the interior and every label is inverted.
//   - Flood: multi-source breadth-first fill from every labeled cell into
//     4-adjacent Unknown cells. Each cell leaves Unknown at most once.
//   - Count: the enclosed cell count.
//
// Why only one side is seeded
//
//	The walk tracks a single side of the loop. Which physical side that is
//	depends on the winding of the walk, unknown until the rightmost column has
//	been seen, so the seeds are labeled Outside first and corrected afterwards.
//	The other side is never seeded and is still Unknown after Flood.
//
// Complexity (R×C grid, L loop length)
//
//   - Mark: O(L). Correct: O(R×C). Flood: O(R×C). Count: O(R×C).
//
// Errors
//
//   - ErrOptionViolation if an invalid Option is supplied to Flood.
//   - ErrCellLimit if WithMaxCells stops Flood before it is complete.
//   - Wrapped errors returned by a WithOnLabel hook, or the context error
//     when the WithContext context is cancelled.
package region
