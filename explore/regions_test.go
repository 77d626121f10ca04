package explore_test

import (
	"testing"

	"github.com/Kolefn/swarm-explore/explore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAll(t *testing.T, g *explore.Grid, pts ...explore.Coord) {
	t.Helper()
	for _, p := range pts {
		require.NoError(t, g.RegisterPoint(p))
	}
}

// TestExploredRegions_Conn4 identifies three separate islands.
//
//	# # . #
//	. . . #
//	# . . .
func TestExploredRegions_Conn4(t *testing.T) {
	g := newTestGrid()
	registerAll(t, g,
		explore.C(0, 0), explore.C(1, 0), explore.C(3, 0), explore.C(3, 1), explore.C(0, 2),
	)

	want := [][]explore.Coord{
		{explore.C(0, 0), explore.C(1, 0)},
		{explore.C(3, 0), explore.C(3, 1)},
		{explore.C(0, 2)},
	}
	assert.Equal(t, want, g.ExploredRegions())
}

// TestExploredRegions_Diagonal compares Conn4 and Conn8 on a diagonal pair.
func TestExploredRegions_Diagonal(t *testing.T) {
	g4 := newTestGrid()
	registerAll(t, g4, explore.C(0, 0), explore.C(1, 1))
	assert.Len(t, g4.ExploredRegions(), 2)

	g8 := newTestGrid(explore.WithConnectivity(explore.Conn8))
	registerAll(t, g8, explore.C(0, 0), explore.C(1, 1))
	assert.Equal(t, [][]explore.Coord{{explore.C(0, 0), explore.C(1, 1)}}, g8.ExploredRegions())
}

// TestExploredRegions_Empty returns nothing for an empty grid.
func TestExploredRegions_Empty(t *testing.T) {
	assert.Empty(t, newTestGrid().ExploredRegions())
	assert.Empty(t, newTestGrid().Frontier())
}

// TestFrontier_Row checks only cells touching explored ones are reported.
//
//	# . . . #
func TestFrontier_Row(t *testing.T) {
	g := newTestGrid()
	registerAll(t, g, explore.C(0, 0), explore.C(4, 0))

	assert.Equal(t, []explore.Coord{explore.C(1, 0), explore.C(3, 0)}, g.Frontier())
}

// TestFrontier_Connectivity checks diagonal neighbors only count under Conn8.
//
//	# . .
//	. . .
//	. . .
func TestFrontier_Connectivity(t *testing.T) {
	pts := []explore.Coord{explore.C(0, 0), explore.C(2, 2)}

	g4 := newTestGrid()
	registerAll(t, g4, pts...)
	assert.Equal(t, []explore.Coord{
		explore.C(1, 0), explore.C(0, 1), explore.C(2, 1), explore.C(1, 2),
	}, g4.Frontier())

	g8 := newTestGrid(explore.WithConnectivity(explore.Conn8))
	registerAll(t, g8, pts...)
	assert.Equal(t, []explore.Coord{
		explore.C(1, 0), explore.C(0, 1), explore.C(1, 1), explore.C(2, 1), explore.C(1, 2),
	}, g8.Frontier())
}
