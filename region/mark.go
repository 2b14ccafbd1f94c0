package region

import (
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/pipe"
)

// Mark labels the loop and one side of it on g.
//
// For every Step, in walk order, the loop cell becomes Wall and the cell one
// step away in each tracked side direction becomes Outside, unless it is out
// of bounds or already Wall. A cell labeled Outside and later reached by the
// walk turns into Wall, so afterwards the Wall cells are exactly the loop.
func Mark(g *maze.Grid, l *loop.Loop) Marks {
	var m Marks
	maxCol := -1
	for _, s := range l.Steps {
		g.SetState(s.Pos, maze.Wall)
		for _, d := range s.Sides {
			side(g, s.Pos, d)
		}
		if s.Pos.Col >= maxCol {
			maxCol = s.Pos.Col
			m.Rightmost = s
		}
	}
	g.Each(func(_ pipe.Pos, st maze.State) {
		if st.Labeled() {
			m.Seeds++
		}
	})
	return m
}

func side(g *maze.Grid, wall pipe.Pos, d pipe.Direction) {
	p := wall.Step(d)
	if !g.InBounds(p) || g.State(p) == maze.Wall {
		return
	}
	g.SetState(p, maze.Outside)
}
