package solve

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/region"
)

// Solve classifies every cell of g and counts the cells enclosed by its loop.
// g's state layer is reset first, so a grid may be solved more than once.
//
// The context is checked between stages. Errors from loop.Locate and
// loop.Walk are returned as is (loop.ErrStartNotLoop, loop.ErrLoopNotClosed);
// with WithCrossCheck a disagreement returns ErrCrossCheck.
func Solve(ctx context.Context, g *maze.Grid, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.With("rows", g.Rows, "cols", g.Cols)
	g.Reset()

	entry, err := loop.Locate(g)
	if err != nil {
		return nil, err
	}
	log.Debug("start located", "start", g.Start(), "shape", entry.Shape, "departure", entry.Departure)

	l, err := loop.Walk(g, entry)
	if err != nil {
		return nil, err
	}
	log.Debug("loop walked", "length", l.Len(), "tracks_right", l.TracksRight())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	marks := region.Mark(g, l)
	inverted := region.Correct(g, marks)
	log.Debug("sides marked", "seeds", marks.Seeds, "rightmost", marks.Rightmost.Pos, "inverted", inverted)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filled, err := region.Flood(g, append([]region.Option{region.WithContext(ctx)}, o.Flood...)...)
	if err != nil {
		return nil, err
	}
	enclosed := region.Count(g, inverted)
	log.Debug("flood filled", "labeled", filled, "enclosed", enclosed)

	if o.CrossCheck {
		if pick := l.Enclosed(); pick != enclosed {
			log.Warn("cross-check failed", "flood", enclosed, "pick", pick)
			return nil, fmt.Errorf("%w: flood fill %d, pick %d", ErrCrossCheck, enclosed, pick)
		}
	}

	return &Result{
		Start:      g.Start(),
		StartShape: entry.Shape,
		LoopLength: l.Len(),
		Farthest:   l.Farthest(),
		Enclosed:   enclosed,
		Inverted:   inverted,
		Tally:      g.Tally(),
		Grid:       g,
	}, nil
}

// Read parses a grid from r and solves it.
func Read(ctx context.Context, r io.Reader, opts ...Option) (*Result, error) {
	g, err := maze.Read(r)
	if err != nil {
		return nil, err
	}
	return Solve(ctx, g, opts...)
}
