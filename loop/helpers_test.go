package loop_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/maze"
)

// fixtures lists the shared testdata grids with their loop length and
// enclosed cell count.
var fixtures = []struct {
	name     string
	length   int
	enclosed int
}{
	{"square", 8, 1},
	{"complex", 16, 1},
	{"gap", 46, 4},
	{"squeeze", 44, 4},
	{"larger", 140, 8},
	{"junk", 160, 10},
	{"tight", 4, 0},
	{"reflex", 8, 0},
}

func load(t testing.TB, name string) *maze.Grid {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "testdata", name+".txt"))
	require.NoError(t, err)
	g, err := maze.Parse(string(data))
	require.NoError(t, err)
	return g
}
