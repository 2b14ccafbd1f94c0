package region

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/pipe"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")
	// ErrCellLimit is returned when MaxCells stops Flood with Unknown cells
	// still reachable from a label. The grid is then only partly classified.
	ErrCellLimit = errors.New("region: flood stopped at cell limit")
)

// Option configures Flood via functional arguments.
type Option func(*FloodOptions)

// FloodOptions holds parameters and callbacks for Flood.
type FloodOptions struct {
	// Ctx allows cancellation; checked once per dequeued cell.
	Ctx context.Context

	// OnLabel is called for every cell Flood labels. Seeds are not reported.
	// Returning an error aborts the fill.
	OnLabel func(p pipe.Pos, s maze.State) error

	// MaxCells, if > 0, stops the fill with ErrCellLimit when one more
	// cell would have to be labeled.
	MaxCells int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns FloodOptions with a background context, a no-op
// OnLabel hook and no cell limit.
func DefaultOptions() FloodOptions {
	return FloodOptions{
		Ctx:     context.Background(),
		OnLabel: func(pipe.Pos, maze.State) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *FloodOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLabel registers a callback invoked for each newly labeled cell.
func WithOnLabel(fn func(p pipe.Pos, s maze.State) error) Option {
	return func(o *FloodOptions) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

// WithMaxCells caps the number of cells labeled by one Flood call.
//
//	n > 0: fail with ErrCellLimit if the fill needs more than n cells
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCells(n int) Option {
	return func(o *FloodOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCells cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

// Marks is what Mark learned about the loop while labeling it.
type Marks struct {
	// Rightmost is the last loop Step whose column was the largest seen so far.
	Rightmost loop.Step
	// Seeds is the number of provisional labels still present after marking.
	Seeds int
}
