// Package explore defines core types, options, and sentinel errors
// for the explore package of github.com/Kolefn/swarm-explore.
package explore

import (
	"errors"
	"fmt"
)

// Sentinel errors for explore operations.
var (
	// ErrInvalidPoint indicates a nil point, a negative coordinate or a coordinate
	// equal to math.MaxInt was passed to a registering call.
	ErrInvalidPoint = errors.New("explore: point coordinates must be non-negative and below math.MaxInt")

	// ErrGridOverflow indicates growing to fit a point would exceed math.MaxInt cells.
	ErrGridOverflow = errors.New("explore: grid cell count would overflow")
)

// go-tooling error types attached to explore errors.
const (
	ErrTypeInvalidPoint        = "explore-invalid-point"
	ErrTypeGridOverflow        = "explore-grid-overflow"
	ErrTypeUnknownConnectivity = "explore-unknown-connectivity"
)

// Point is the coordinate capability consumed by a Grid.
// Both values are expected to be non-negative.
type Point interface {
	X() int
	Y() int
}

// Coord is an immutable integer coordinate. It is the value a Grid stores
// and returns, so callers never share memory with the grid.
type Coord struct {
	x, y int
}

// C returns the Coord (x,y).
func C(x, y int) Coord {
	return Coord{x: x, y: y}
}

// X returns the x-value.
func (c Coord) X() int { return c.x }

// Y returns the y-value.
func (c Coord) Y() int { return c.y }

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.x, c.y)
}

// PointState classifies a single grid cell.
type PointState uint8

const (
	// Estimated is the default state of a cell that has never been visited.
	Estimated PointState = iota
	// Explored marks a cell confirmed visited at least once.
	Explored
)

func (s PointState) String() string {
	switch s {
	case Estimated:
		return "estimated"
	case Explored:
		return "explored"
	default:
		return fmt.Sprintf("PointState(%d)", uint8(s))
	}
}

// Connectivity selects neighbor connectivity for region analysis:
// orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// StatSource is the statistics capability exposed to consumers.
type StatSource interface {
	PercentExplored() float64
	Efficiency() float64
}

// ExploredPointsSource exposes the ordered first-visit sequence.
type ExploredPointsSource interface {
	ExploredPoints() []Coord
}

// Option configures a Grid before creation.
type Option func(g *Grid)

// WithID sets the identifier used in logs and metric labels.
func WithID(id string) Option {
	return func(g *Grid) { g.id = id }
}

// WithConnectivity sets the neighbor connectivity used by ExploredRegions and Frontier.
func WithConnectivity(c Connectivity) Option {
	return func(g *Grid) { g.conn = c }
}

// WithMetrics toggles Prometheus instrumentation for the grid. Disabled by default.
// Series are labelled with the grid id; use WithID with a bounded set of ids and
// call Forget when a grid is discarded.
func WithMetrics(enabled bool) Option {
	return func(g *Grid) { g.instrumented = enabled }
}

// Stats is a consistent snapshot of a Grid's size, counters and derived statistics.
type Stats struct {
	ID              string  `json:"id"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	Explored        int     `json:"explored"`
	Revisits        int     `json:"revisits"`
	PercentExplored float64 `json:"percent_explored"`
	Efficiency      float64 `json:"efficiency"`
	Complete        bool    `json:"complete"`
	XMaxed          bool    `json:"x_maxed"`
	YMaxed          bool    `json:"y_maxed"`
}
