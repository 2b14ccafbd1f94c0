package solve_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/solve"
)

// ExampleSolve classifies the 5x5 ring around a single enclosed cell.
func ExampleSolve() {
	g, err := maze.Parse(`-L|F7
7S-7|
L|7||
-L-J|
L|-JF`)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := solve.Solve(context.Background(), g, solve.WithCrossCheck())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("farthest:", res.Farthest)
	fmt.Println("enclosed:", res.Enclosed)
	// Output:
	// farthest: 4
	// enclosed: 1
}
