package solve

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/pipe"
	"github.com/katalvlaran/pipemaze/region"
)

// ErrCrossCheck is returned when the flood-fill count and Pick's theorem disagree.
var ErrCrossCheck = errors.New("solve: enclosed count disagrees with loop area")

// Result is the outcome of one pipeline run.
type Result struct {
	// Start is the start cell and StartShape the pipe shape inferred for it.
	Start      pipe.Pos
	StartShape pipe.Tile
	// LoopLength is the number of loop cells; Farthest is LoopLength/2.
	LoopLength int
	Farthest   int
	// Enclosed is the number of cells strictly inside the loop.
	Enclosed int
	// Inverted reports whether the provisional side labels were flipped.
	Inverted bool
	// Tally is the final per-state cell count.
	Tally maze.Tally
	// Grid is the classified grid.
	Grid *maze.Grid
}

// Option configures Solve.
type Option func(*Options)

// Options holds Solve parameters.
type Options struct {
	// Logger receives stage progress at debug level.
	Logger *slog.Logger
	// CrossCheck verifies the count against Pick's theorem.
	CrossCheck bool
	// Flood is passed through to region.Flood.
	Flood []region.Option
}

// DefaultOptions returns Options with a discarding logger, no cross-check
// and default flood options.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for stage progress.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCrossCheck enables the Pick's theorem cross-check.
func WithCrossCheck() Option {
	return func(o *Options) {
		o.CrossCheck = true
	}
}

// WithFloodOptions forwards options to region.Flood.
func WithFloodOptions(opts ...region.Option) Option {
	return func(o *Options) {
		o.Flood = append(o.Flood, opts...)
	}
}
