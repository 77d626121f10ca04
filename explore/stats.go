package explore

// Compile-time capability checks.
var (
	_ StatSource           = (*Grid)(nil)
	_ ExploredPointsSource = (*Grid)(nil)
)

// ExploredCount returns the number of distinct coordinates visited so far.
func (g *Grid) ExploredCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.exploredCount
}

// RevisitCount returns the number of registrations that hit an explored cell.
func (g *Grid) RevisitCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revisitCount
}

// PercentExplored returns the explored fraction of the current known world,
// in [0,1]. The denominator is the current bounding rectangle, so the value
// drops when the grid grows into space that is not explored yet.
func (g *Grid) PercentExplored() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.percentExplored()
}

func (g *Grid) percentExplored() float64 {
	if g.exploredCount == 0 {
		return 0
	}
	return float64(g.exploredCount) / float64(g.width*g.height)
}

// Efficiency returns the fraction of registrations that discovered a new cell,
// in [0,1]. A grid with no registrations reports 0.
func (g *Grid) Efficiency() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.efficiency()
}

func (g *Grid) efficiency() float64 {
	total := g.exploredCount + g.revisitCount
	if total == 0 {
		return 0
	}
	return float64(g.exploredCount) / float64(total)
}

// IsExplored reports whether every cell of the current bounding rectangle has
// been visited. An empty grid (0×0) is trivially explored.
func (g *Grid) IsExplored() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.isComplete()
}

func (g *Grid) isComplete() bool {
	return g.exploredCount == g.width*g.height
}

// Stats returns a snapshot taken under a single lock.
func (g *Grid) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Stats{
		ID:              g.id,
		Width:           g.width,
		Height:          g.height,
		Explored:        g.exploredCount,
		Revisits:        g.revisitCount,
		PercentExplored: g.percentExplored(),
		Efficiency:      g.efficiency(),
		Complete:        g.isComplete(),
		XMaxed:          g.xMaxed,
		YMaxed:          g.yMaxed,
	}
}
