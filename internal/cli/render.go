package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipemaze/maze"
)

var renderBox bool

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Print the classified grid",
	Long: `Render solves the grid in FILE and prints it with every tile classified:
loop tiles keep their glyph, I marks enclosed tiles, O marks outside tiles
and ? marks tiles left unlabeled.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderBox, "box", false, "draw loop tiles with box-drawing characters")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	res, err := solveFile(cmd, args[0], false)
	if err != nil {
		return err
	}
	return res.Grid.Render(cmd.OutOrStdout(), maze.RenderOptions{Box: renderBox, Unknown: '?'})
}
