package explore

import (
	"math"
	"sync"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
)

// Grid is the growable exploration state of a single agent.
//
// cells is a slice of columns: cells[x][y] holds the state of (x,y).
// Every column always has exactly height entries.
// All methods are safe for concurrent use. Each call holds the lock for its
// whole duration.
type Grid struct {
	mu sync.RWMutex

	id           string
	conn         Connectivity
	instrumented bool

	width, height int
	cells         [][]PointState
	explored      []Coord
	exploredCount int
	revisitCount  int
	xMaxed        bool
	yMaxed        bool
}

// New returns an empty Grid with width and height 0.
// Without WithID the grid gets a random UUID.
func New(opts ...Option) *Grid {
	g := &Grid{
		conn: Conn4,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}
	return g
}

// ID returns the grid identifier.
func (g *Grid) ID() string {
	return g.id
}

// RegisterPoint marks p as visited, growing the grid first when p lies outside
// the current bounds. A first visit appends p to ExploredPoints; any later visit
// counts as a revisit.
//
// A nil point, a negative coordinate or a coordinate of math.MaxInt is rejected
// with an error of type ErrTypeInvalidPoint. A point whose bounding rectangle
// would have more than math.MaxInt cells is rejected with ErrTypeGridOverflow.
// Rejected calls leave the grid untouched.
func (g *Grid) RegisterPoint(p Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, err := g.register(p)
	return err
}

// RegisterBorderPointX registers p, then sets the x border signal to p.X() > 0.
// The signal is overwritten on every call rather than accumulated.
func (g *Grid) RegisterBorderPointX(p Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, err := g.register(p)
	if err != nil {
		return err
	}
	g.xMaxed = c.x > 0
	return nil
}

// RegisterBorderPointY registers p, then sets the y border signal to p.Y() > 0.
// The signal is overwritten on every call rather than accumulated.
func (g *Grid) RegisterBorderPointY(p Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, err := g.register(p)
	if err != nil {
		return err
	}
	g.yMaxed = c.y > 0
	return nil
}

// register performs the registration and returns the registered coordinate.
// Caller must hold the write lock.
func (g *Grid) register(p Point) (Coord, error) {
	c, ok := coordOf(p)
	if !ok {
		err := errors.New("nil point").
			WithType(ErrTypeInvalidPoint).
			WithTag("grid_id", g.id).
			Wrap(ErrInvalidPoint)
		logs.Warn(err)
		return Coord{}, err
	}
	x, y := c.x, c.y
	if x < 0 || y < 0 || x == math.MaxInt || y == math.MaxInt {
		err := errors.New("coordinate out of range").
			WithType(ErrTypeInvalidPoint).
			WithTag("grid_id", g.id).
			WithTag("x", x).
			WithTag("y", y).
			Wrap(ErrInvalidPoint)
		logs.Warn(err)
		return Coord{}, err
	}
	w, h := max(g.width, x+1), max(g.height, y+1)
	if w > math.MaxInt/h {
		err := errors.New("grid too large").
			WithType(ErrTypeGridOverflow).
			WithTag("grid_id", g.id).
			WithTag("x", x).
			WithTag("y", y).
			Wrap(ErrGridOverflow)
		logs.Warn(err)
		return Coord{}, err
	}

	// Growth must complete before the lookup: x first, then y across all columns.
	grown := false
	if x >= g.width {
		g.expandX(x + 1)
		grown = true
	}
	if y >= g.height {
		g.expandY(y + 1)
		grown = true
	}
	if grown {
		logs.WithTag("grid_id", g.id).
			WithTag("width", g.width).
			WithTag("height", g.height).
			Debug("exploration grid grown")
		if g.instrumented {
			instrumentSize(g.id, g.width, g.height)
		}
	}

	if g.cells[x][y] == Estimated {
		g.cells[x][y] = Explored
		g.explored = append(g.explored, C(x, y))
		g.exploredCount++
		if g.instrumented {
			instrumentFirstVisit(g.id)
		}
		return c, nil
	}
	g.revisitCount++
	if g.instrumented {
		instrumentRevisit(g.id)
	}
	return c, nil
}

// coordOf copies the coordinates of p. It reports false when p is nil or is a
// nil pointer whose methods cannot be called.
func coordOf(p Point) (c Coord, ok bool) {
	if p == nil {
		return Coord{}, false
	}
	defer func() {
		if recover() != nil {
			c, ok = Coord{}, false
		}
	}()
	return C(p.X(), p.Y()), true
}

// expandX appends Estimated columns of the current height until width == w.
func (g *Grid) expandX(w int) {
	for i := g.width; i < w; i++ {
		g.cells = append(g.cells, make([]PointState, g.height))
	}
	g.width = w
}

// expandY extends every column, including freshly added ones, to height h.
func (g *Grid) expandY(h int) {
	extra := h - g.height
	for x := range g.cells {
		g.cells[x] = append(g.cells[x], make([]PointState, extra)...)
	}
	g.height = h
}

// Width returns the current known width: the minimum width the world can have
// given the points registered so far.
func (g *Grid) Width() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.width
}

// Height returns the current known height.
func (g *Grid) Height() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.height
}

// InBounds reports whether (x,y) lies within the current bounds.
func (g *Grid) InBounds(x, y int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inBounds(x, y)
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cells returns a copy of the state array indexed as cells[x][y],
// with len == Width() and every column of length Height().
func (g *Grid) Cells() [][]PointState {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]PointState, g.width)
	for x, col := range g.cells {
		out[x] = make([]PointState, len(col))
		copy(out[x], col)
	}
	return out
}

// ExploredPoints returns every first-visited coordinate in discovery order.
func (g *Grid) ExploredPoints() []Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Coord, len(g.explored))
	copy(out, g.explored)
	return out
}

// State returns the state of p. Points outside the bounds, negative points and
// nil points (including nil pointers) are Estimated.
func (g *Grid) State(p Point) PointState {
	c, ok := coordOf(p)
	if !ok {
		return Estimated
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inBounds(c.x, c.y) {
		return Estimated
	}
	return g.cells[c.x][c.y]
}

// IsPointExplored reports whether p has been visited. It never panics:
// out-of-range or negative coordinates report false.
func (g *Grid) IsPointExplored(p Point) bool {
	return g.State(p) == Explored
}

// Forget deletes the grid's metric series. Call it once an instrumented grid
// is no longer needed; later registrations recreate the series.
func (g *Grid) Forget() {
	if g.instrumented {
		forgetGrid(g.id)
	}
}

// XMaxed reports the x border signal set by the latest RegisterBorderPointX.
func (g *Grid) XMaxed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.xMaxed
}

// YMaxed reports the y border signal set by the latest RegisterBorderPointY.
func (g *Grid) YMaxed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.yMaxed
}
