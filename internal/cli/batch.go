package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipemaze/config"
)

// ErrBatchFailed is returned when at least one puzzle in a batch fails.
var ErrBatchFailed = errors.New("batch failed")

var batchCheck bool

var batchCmd = &cobra.Command{
	Use:   "batch CONFIG",
	Short: "Solve every puzzle listed in an HCL batch file",
	Long: `Batch loads an HCL file of puzzle blocks, solves each grid and compares
the result with the expected answers. It exits non-zero if any puzzle
fails to solve or disagrees.

Example batch file:
  puzzle "sample" {
    input    = "${dir}/sample.txt"
    enclosed = 4
    farthest = 23
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchCheck, "check", false, "verify every count against the loop area")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	file, err := config.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, p := range file.Puzzles {
		res, err := solveFile(cmd, p.Input, batchCheck)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", p.Name, err)
			continue
		}

		var mismatch []string
		if res.Enclosed != p.Enclosed {
			mismatch = append(mismatch, fmt.Sprintf("enclosed %d, want %d", res.Enclosed, p.Enclosed))
		}
		if p.Farthest != nil && res.Farthest != *p.Farthest {
			mismatch = append(mismatch, fmt.Sprintf("farthest %d, want %d", res.Farthest, *p.Farthest))
		}
		if len(mismatch) > 0 {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", p.Name, mismatch)
			continue
		}
		logger.Info("puzzle solved", "puzzle", p.Name, "enclosed", res.Enclosed, "farthest", res.Farthest)
		fmt.Fprintf(out, "ok   %s: enclosed %d, farthest %d\n", p.Name, res.Enclosed, res.Farthest)
	}

	fmt.Fprintf(out, "%d/%d puzzles passed\n", len(file.Puzzles)-failed, len(file.Puzzles))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d puzzles", ErrBatchFailed, failed, len(file.Puzzles))
	}
	return nil
}
