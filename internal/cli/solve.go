package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipemaze/solve"
)

var (
	solveFarthest bool
	solveCheck    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "Count the tiles enclosed by the loop",
	Long: `Solve reads a grid from FILE ("-" for stdin) and prints the number of
tiles enclosed by its loop.

Example:
  pipemaze solve input.txt
  pipemaze solve --farthest --check input.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveFarthest, "farthest", false, "also print the step count to the farthest loop tile")
	solveCmd.Flags().BoolVar(&solveCheck, "check", false, "verify the count against the loop area (Pick's theorem)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	res, err := solveFile(cmd, args[0], solveCheck)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if solveFarthest {
		fmt.Fprintf(out, "farthest: %d\n", res.Farthest)
	}
	fmt.Fprintf(out, "enclosed: %d\n", res.Enclosed)
	return nil
}

// solveFile solves the grid stored at path, or read from stdin for "-".
func solveFile(cmd *cobra.Command, path string, check bool) (*solve.Result, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open grid: %w", err)
		}
		defer f.Close()
		r = f
	}

	opts := []solve.Option{solve.WithLogger(logger.With("input", path))}
	if check {
		opts = append(opts, solve.WithCrossCheck())
	}
	res, err := solve.Read(cmd.Context(), r, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
