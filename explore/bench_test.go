package explore_test

import (
	"math/rand"
	"testing"

	"github.com/Kolefn/swarm-explore/explore"
)

// BenchmarkRegisterPoint_RandomWalk measures registration cost along a random
// walk that keeps growing the grid.
func BenchmarkRegisterPoint_RandomWalk(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	moves := [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	g := explore.New(explore.WithMetrics(false))
	x, y := 0, 0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := moves[rng.Intn(len(moves))]
		if x+d[0] >= 0 {
			x += d[0]
		}
		if y+d[1] >= 0 {
			y += d[1]
		}
		_ = g.RegisterPoint(explore.C(x, y))
	}
}

// BenchmarkExploredRegions measures component analysis on a 500×500 grid
// with every other column explored.
func BenchmarkExploredRegions(b *testing.B) {
	const n = 500
	g := explore.New(explore.WithMetrics(false))
	for x := 0; x < n; x += 2 {
		for y := 0; y < n; y++ {
			_ = g.RegisterPoint(explore.C(x, y))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ExploredRegions()
	}
}
