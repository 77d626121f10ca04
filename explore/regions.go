package explore

import "github.com/aukilabs/go-tooling/pkg/errors"

// ParseConnectivity maps "4"/"conn4" and "8"/"conn8" to a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4", "conn4":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	default:
		return Conn4, errors.New("unknown connectivity").
			WithType(ErrTypeUnknownConnectivity).
			WithTag("connectivity", s)
	}
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// neighborOffsets returns the offsets for the grid's connectivity.
func (g *Grid) neighborOffsets() [][2]int {
	if g.conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// index maps (x,y) to a row-major index: y*width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// coordinate converts a row-major index back to a Coord.
func (g *Grid) coordinate(idx int) Coord {
	return C(idx%g.width, idx/g.width)
}

// ExploredRegions finds all contiguous regions of explored cells according to
// the grid's connectivity. Regions are ordered by the row-major position of
// their first cell; cells within a region are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ExploredRegions() [][]Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make([]bool, g.width*g.height)
	offsets := g.neighborOffsets()
	var regions [][]Coord

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[x][y] != Explored {
				continue
			}
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var region []Coord

			for qi := 0; qi < len(queue); qi++ {
				u := g.coordinate(queue[qi])
				region = append(region, u)
				for _, d := range offsets {
					vx, vy := u.x+d[0], u.y+d[1]
					if !g.inBounds(vx, vy) || g.cells[vx][vy] != Explored {
						continue
					}
					vi := g.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// Frontier returns the Estimated cells inside the bounds that touch at least one
// explored cell, in row-major order. Cells beyond the bounds are never included.
//
// Time: O(W·H·d).
func (g *Grid) Frontier() []Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	offsets := g.neighborOffsets()
	var out []Coord
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[x][y] != Estimated {
				continue
			}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if g.inBounds(nx, ny) && g.cells[nx][ny] == Explored {
					out = append(out, C(x, y))
					break
				}
			}
		}
	}
	return out
}
