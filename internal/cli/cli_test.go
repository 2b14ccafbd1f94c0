package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/config"
	"github.com/katalvlaran/pipemaze/loop"
)

// execute runs the root command with args and returns what it printed on
// stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	solveFarthest, solveCheck, renderBox, batchCheck = false, false, false, false
	logLevel, logFormat = "warn", "text"

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func fixture(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

//------------------------------------------------------------------------------
// solve
//------------------------------------------------------------------------------

func TestSolveCommand(t *testing.T) {
	out, _, err := execute(t, "", "solve", fixture("gap.txt"))
	require.NoError(t, err)
	assert.Equal(t, "enclosed: 4\n", out)
}

func TestSolveCommand_FarthestAndCheck(t *testing.T) {
	out, _, err := execute(t, "", "solve", "--farthest", "--check", fixture("larger.txt"))
	require.NoError(t, err)
	assert.Equal(t, "farthest: 70\nenclosed: 8\n", out)
}

func TestSolveCommand_Stdin(t *testing.T) {
	out, _, err := execute(t, "S7.\nLJ.\n...\n", "solve", "-")
	require.NoError(t, err)
	assert.Equal(t, "enclosed: 0\n", out)
}

func TestSolveCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "", "solve", fixture("missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "...\n.S.\n...\n", "solve", "-")
	require.ErrorIs(t, err, loop.ErrStartNotLoop)

	_, _, err = execute(t, "", "solve")
	require.Error(t, err)
}

func TestSolveCommand_DebugLogs(t *testing.T) {
	_, logs, err := execute(t, "", "--log-level", "debug", "--log-format", "json", "solve", fixture("square.txt"))
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"loop walked"`)
	assert.Contains(t, logs, `"length":8`)
}

//------------------------------------------------------------------------------
// render
//------------------------------------------------------------------------------

func TestRenderCommand(t *testing.T) {
	out, _, err := execute(t, "", "render", fixture("square.txt"))
	require.NoError(t, err)
	want := "?????\n" +
		"?S-7?\n" +
		"?|I|?\n" +
		"?L-J?\n" +
		"?????\n"
	assert.Equal(t, want, out)
}

func TestRenderCommand_Box(t *testing.T) {
	out, _, err := execute(t, "", "render", "--box", fixture("gap.txt"))
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "?S───────┐?", lines[1])
	assert.Equal(t, "?│II│?│II│?", lines[6])
}

//------------------------------------------------------------------------------
// batch
//------------------------------------------------------------------------------

func TestBatchCommand(t *testing.T) {
	out, _, err := execute(t, "", "batch", "--check", fixture("puzzles.hcl"))
	require.NoError(t, err)
	assert.Contains(t, out, "ok   junk: enclosed 10, farthest 80")
	assert.True(t, strings.HasSuffix(out, "6/6 puzzles passed\n"))
}

func TestBatchCommand_Mismatch(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile(fixture("square.txt"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "square.txt"), src, 0o644))

	batch := `puzzle "right" {
  input    = "${dir}/square.txt"
  enclosed = 1
}

puzzle "wrong" {
  input    = "${dir}/square.txt"
  enclosed = 1
  farthest = 5
}

puzzle "missing" {
  input    = "${dir}/nope.txt"
  enclosed = 0
}
`
	path := filepath.Join(dir, "batch.hcl")
	require.NoError(t, os.WriteFile(path, []byte(batch), 0o644))

	out, _, err := execute(t, "", "batch", path)
	require.ErrorIs(t, err, ErrBatchFailed)
	assert.Contains(t, out, "ok   right")
	assert.Contains(t, out, "FAIL wrong: [farthest 4, want 5]")
	assert.Contains(t, out, "FAIL missing")
	assert.Contains(t, out, "1/3 puzzles passed")
}

func TestBatchCommand_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`puzzle "a" {`), 0o644))
	_, _, err := execute(t, "", "batch", path)
	require.ErrorIs(t, err, config.ErrDecode)
}

//------------------------------------------------------------------------------
// logging flags
//------------------------------------------------------------------------------

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		for _, format := range []string{"text", "json"} {
			l, err := newLogger(level, format, &bytes.Buffer{})
			require.NoError(t, err, level+"/"+format)
			require.NotNil(t, l)
		}
	}

	_, err := newLogger("loud", "text", &bytes.Buffer{})
	require.ErrorIs(t, err, ErrLogLevel)
	_, err = newLogger("info", "xml", &bytes.Buffer{})
	require.ErrorIs(t, err, ErrLogFormat)
}

func TestRootCommand_RejectsBadLogFlags(t *testing.T) {
	_, _, err := execute(t, "", "--log-format", "yaml", "solve", fixture("square.txt"))
	require.ErrorIs(t, err, ErrLogFormat)
}

func TestCommands_Registered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"solve", "render", "batch"} {
		assert.True(t, names[want], want)
	}
}
