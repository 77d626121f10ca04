// Package explore_test verifies thread-safety of explore.Grid under concurrent operations.
package explore_test

import (
	"sync"
	"testing"

	"github.com/Kolefn/swarm-explore/explore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentRegister ensures concurrent registrations keep the counting
// invariants and every cell of a fully covered rectangle ends up explored.
func TestConcurrentRegister(t *testing.T) {
	g := newTestGrid()
	const side = 20
	const passes = 3
	var wg sync.WaitGroup
	wg.Add(passes * side)

	for p := 0; p < passes; p++ {
		for x := 0; x < side; x++ {
			go func(x int) {
				defer wg.Done()
				for y := 0; y < side; y++ {
					assert.NoError(t, g.RegisterPoint(explore.C(x, y)))
				}
			}(x)
		}
	}
	wg.Wait()

	require.Equal(t, side, g.Width())
	require.Equal(t, side, g.Height())
	require.Equal(t, side*side, g.ExploredCount())
	require.Equal(t, (passes-1)*side*side, g.RevisitCount())
	require.True(t, g.IsExplored())
}

// TestConcurrentReadersDuringGrowth validates that readers never observe a
// partially grown grid.
func TestConcurrentReadersDuringGrowth(t *testing.T) {
	g := newTestGrid()
	const steps = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < steps; i++ {
			_ = g.RegisterBorderPointX(explore.C(i, i/2))
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < steps; i++ {
			cells := g.Cells()
			if len(cells) == 0 {
				continue
			}
			h := len(cells[0])
			for _, col := range cells {
				assert.Len(t, col, h)
			}
			s := g.Stats()
			assert.LessOrEqual(t, s.Explored, s.Width*s.Height)
		}
	}()
	wg.Wait()
}
