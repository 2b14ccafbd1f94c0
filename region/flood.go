package region

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/pipe"
)

// filler encapsulates mutable flood-fill state.
type filler struct {
	grid    *maze.Grid
	opts    FloodOptions
	queue   []pipe.Pos
	labeled int
}

// Flood propagates every Inside or Outside label of g into adjacent Unknown
// cells until no Unknown cell touches a labeled one. Seeds are taken in
// row-major order; each dequeued cell hands its own label to its Unknown
// 4-neighbors. Wall cells are never entered or relabeled.
//
// Returns the number of cells labeled. A second call on the same grid
// labels nothing. Returns ErrOptionViolation for bad options, ErrCellLimit
// when the fill outgrows WithMaxCells, the context error on cancellation,
// or a wrapped OnLabel error.
func Flood(g *maze.Grid, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	f := &filler{
		grid:  g,
		opts:  o,
		queue: make([]pipe.Pos, 0, g.Rows*g.Cols),
	}
	g.Each(func(p pipe.Pos, s maze.State) {
		if s.Labeled() {
			f.queue = append(f.queue, p)
		}
	})

	err := f.loop()
	return f.labeled, err
}

// loop processes the queue until it drains or the fill fails.
func (f *filler) loop() error {
	for qi := 0; qi < len(f.queue); qi++ {
		select {
		case <-f.opts.Ctx.Done():
			return f.opts.Ctx.Err()
		default:
		}

		p := f.queue[qi]
		s := f.grid.State(p)
		for _, n := range f.grid.Neighbors(p) {
			if f.grid.State(n) != maze.Unknown {
				continue
			}
			if f.opts.MaxCells > 0 && f.labeled >= f.opts.MaxCells {
				return fmt.Errorf("%w: %d cells labeled, %s still unknown", ErrCellLimit, f.labeled, n)
			}
			f.grid.SetState(n, s)
			f.labeled++
			if err := f.opts.OnLabel(n, s); err != nil {
				return fmt.Errorf("region: OnLabel error at %s: %w", n, err)
			}
			f.queue = append(f.queue, n)
		}
	}
	return nil
}
