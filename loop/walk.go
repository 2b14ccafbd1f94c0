package loop

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/pipe"
)

// Walk follows the loop described by e from e.First until it returns to
// the start cell, which is traversed with the synthesized e.Shape.
//
// At the first cell the tracked side is the perpendicular parallel to the
// direction of travel, falling back to the first listed one; from then on
// it is carried with NextPerpendicular. Calling Walk again with the same
// entry restarts from scratch and yields the same loop.
//
// Returns ErrLoopNotClosed (wrapping the cause) when the walk meets ground,
// a tile it cannot enter, the grid edge, or a loop cell already visited.
func Walk(g *maze.Grid, e Entry) (*Loop, error) {
	start := g.Start()
	shape := func(p pipe.Pos) pipe.Tile {
		if p == start {
			return e.Shape
		}
		return g.Tile(p)
	}
	l := &Loop{
		Entry: e,
		Start: start,
		cells: mapset.New[pipe.Pos](),
	}

	dir, pos := e.Departure, e.First
	if !g.InBounds(pos) || pos == start {
		return nil, fmt.Errorf("%w: bad first cell %s", ErrLoopNotClosed, pos)
	}
	tile := shape(pos)
	sides, err := tile.Perpendicular()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoopNotClosed, err)
	}
	side := sides[0]
	for _, s := range sides {
		if s.Parallel(dir) {
			side = s
		}
	}
	before, err := tile.NextPerpendicular(side)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoopNotClosed, err)
	}
	l.add(Step{Pos: pos, Incoming: dir, Tile: tile, Sides: [2]pipe.Direction{before, side}})

	for pos != start {
		out, next, err := pipe.Transition(tile, dir, pos)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoopNotClosed, err)
		}
		if !g.InBounds(next) {
			return nil, fmt.Errorf("%w: left the grid at %s", ErrLoopNotClosed, next)
		}
		if next != start && l.cells.Has(next) {
			return nil, fmt.Errorf("%w: revisited %s", ErrLoopNotClosed, next)
		}
		dir, pos, tile = out, next, shape(next)

		after, err := tile.NextPerpendicular(side)
		if err != nil {
			return nil, fmt.Errorf("%w: %v at %s", ErrLoopNotClosed, err, pos)
		}
		l.add(Step{Pos: pos, Incoming: dir, Tile: tile, Sides: [2]pipe.Direction{side, after}})
		side = after
	}
	if _, _, err := pipe.Transition(e.Shape, dir, start); err != nil {
		return nil, fmt.Errorf("%w: start entered %s: %v", ErrLoopNotClosed, dir, err)
	}

	return l, nil
}

func (l *Loop) add(s Step) {
	l.Steps = append(l.Steps, s)
	l.cells.Put(s.Pos)
}

// Find locates and walks the loop of g in one call.
func Find(g *maze.Grid) (*Loop, error) {
	e, err := Locate(g)
	if err != nil {
		return nil, err
	}
	return Walk(g, e)
}
