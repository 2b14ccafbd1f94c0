package solve_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pipemaze/solve"
)

func BenchmarkSolve_Junk(b *testing.B) {
	g := load(b, "junk")
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Solve(ctx, g); err != nil {
			b.Fatal(err)
		}
	}
}
