// File: explore/example_test.go
package explore_test

import (
	"fmt"

	"github.com/Kolefn/swarm-explore/explore"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Grid
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid demonstrates how a grid grows as a rover reports positions.
// Scenario:
//
//   - The rover starts at (0,0), drives east to (2,0) and back to (1,0).
//   - It then reports (2,1) as a point on the right border.
//   - The known world is 3×2; four of six cells are explored.
func ExampleGrid() {
	g := explore.New(explore.WithID("rover"), explore.WithMetrics(false))
	for _, p := range []explore.Coord{explore.C(0, 0), explore.C(1, 0), explore.C(2, 0), explore.C(1, 0)} {
		_ = g.RegisterPoint(p)
	}
	_ = g.RegisterBorderPointX(explore.C(2, 1))

	fmt.Printf("size: %dx%d\n", g.Width(), g.Height())
	fmt.Printf("explored: %v\n", g.ExploredPoints())
	fmt.Printf("coverage: %.2f\n", g.PercentExplored())
	fmt.Printf("efficiency: %.2f\n", g.Efficiency())
	fmt.Println("x border:", g.XMaxed())
	fmt.Println("complete:", g.IsExplored())

	// Output:
	// size: 3x2
	// explored: [(0,0) (1,0) (2,0) (2,1)]
	// coverage: 0.67
	// efficiency: 0.80
	// x border: true
	// complete: false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Frontier
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Frontier lists the unexplored cells adjacent to explored ones.
//
//	# # .
//	. . .
//	. . #
func ExampleGrid_Frontier() {
	g := explore.New(explore.WithMetrics(false))
	for _, p := range []explore.Coord{explore.C(0, 0), explore.C(1, 0), explore.C(2, 2)} {
		_ = g.RegisterPoint(p)
	}
	fmt.Println("regions:", len(g.ExploredRegions()))
	fmt.Println("frontier:", g.Frontier())

	// Output:
	// regions: 2
	// frontier: [(2,0) (0,1) (1,1) (2,1) (1,2)]
}
