package maze

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/pipemaze/pipe"
)

var boxRunes = map[pipe.Tile]rune{
	pipe.Vertical:   '│',
	pipe.Horizontal: '─',
	pipe.NorthEast:  '└',
	pipe.NorthWest:  '┘',
	pipe.SouthEast:  '┌',
	pipe.SouthWest:  '┐',
	pipe.Start:      'S',
}

// RenderOptions tunes Render output.
type RenderOptions struct {
	// Box draws loop cells with box-drawing characters instead of ASCII.
	Box bool
	// Unknown is printed for unclassified cells; zero means the input tile.
	Unknown rune
}

// Render writes the grid with its classification overlaid: loop cells keep
// their tile glyph, Inside cells print 'I' and Outside cells print 'O'.
func (g *Grid) Render(w io.Writer, opts RenderOptions) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			t := g.tiles[r][c]
			ch := t.Rune()
			switch g.state[r][c] {
			case Wall:
				if opts.Box {
					if b, ok := boxRunes[t]; ok {
						ch = b
					}
				}
			case Inside:
				ch = 'I'
			case Outside:
				ch = 'O'
			case Unknown:
				if opts.Unknown != 0 {
					ch = opts.Unknown
				}
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders the grid in ASCII.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Render(&sb, RenderOptions{})
	return sb.String()
}
