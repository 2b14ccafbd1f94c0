package loop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/pipe"
)

// Locate determines the shape of the start cell and where the loop leaves it.
//
// Each in-bounds neighbor, scanned North, South, West, East, is probed by
// trying every entry into its tile: the neighbor is loop-connected when one
// of them leads back onto the start. The reverse of that returning direction
// points from the start to the neighbor. Exactly two neighbors must connect;
// the pair of directions builds the start shape with pipe.FromDirections.
// Departure and First come from the first connected neighbor in scan order.
//
// Returns ErrStartNotLoop when fewer or more than two neighbors connect.
func Locate(g *maze.Grid) (Entry, error) {
	start := g.Start()
	var (
		entry Entry
		dirs  []pipe.Direction
	)
	for _, d := range pipe.Directions {
		nb := start.Step(d)
		if !g.InBounds(nb) {
			continue
		}
		back, ok := leadsTo(g.Tile(nb), nb, start)
		if !ok {
			continue
		}
		if len(dirs) == 0 {
			entry.Departure = back.Inverse()
			entry.First = nb
		}
		dirs = append(dirs, back.Inverse())
	}
	if len(dirs) != 2 {
		return Entry{}, fmt.Errorf("%w: %d connected neighbors at %s", ErrStartNotLoop, len(dirs), start)
	}
	shape, err := pipe.FromDirections(dirs[0], dirs[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrStartNotLoop, err)
	}
	entry.Shape = shape

	return entry, nil
}

// leadsTo probes tile t at pos with every entry direction and reports the
// direction of travel that lands on target, if any. Invalid entries are the
// expected outcome for most probes and are not errors here.
func leadsTo(t pipe.Tile, pos, target pipe.Pos) (pipe.Direction, bool) {
	for _, in := range pipe.Directions {
		out, next, err := pipe.Transition(t, in, pos)
		if err == nil && next == target {
			return out, true
		}
	}
	return 0, false
}
