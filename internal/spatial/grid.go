// Package spatial provides the uniform-grid nearest-vertex index used to snap
// user input to parsed geometry.
package spatial

import (
	"math"

	"dxf-scene-importer/internal/mathutil"
)

// DefaultCellSize is the default bucket size in model-space units.
const DefaultCellSize = 5.0

// Grid buckets vertices by floor(x/cellSize), floor(y/cellSize). Build must
// not run concurrently with itself or with Nearest; concurrent Nearest calls
// are safe once no Build is in flight.
type Grid struct {
	cellSize float64
	cells    map[[2]int][]mathutil.Vec3
}

// NewGrid creates an empty index. A non-positive cell size falls back to
// DefaultCellSize.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[[2]int][]mathutil.Vec3),
	}
}

// Build clears all buckets and inserts every vertex. Call once per loaded
// drawing.
func (g *Grid) Build(verts []mathutil.Vec3) {
	g.cells = make(map[[2]int][]mathutil.Vec3)
	for _, v := range verts {
		key := g.cellOf(v[0], v[1])
		g.cells[key] = append(g.cells[key], v)
	}
}

// Nearest returns the vertex closest to (x, y) within radius, with its planar
// distance. The third return is false when no vertex lies within radius. Ties
// at identical distance keep the last candidate in scan order (cell-row-major,
// then insertion order within a cell), which is deterministic but carries no
// geometric meaning.
func (g *Grid) Nearest(x, y, radius float64) (mathutil.Vec3, float64, bool) {
	minCell := g.cellOf(x-radius, y-radius)
	maxCell := g.cellOf(x+radius, y+radius)

	var best mathutil.Vec3
	bestD2 := radius * radius
	found := false

	for cy := minCell[1]; cy <= maxCell[1]; cy++ {
		for cx := minCell[0]; cx <= maxCell[0]; cx++ {
			for _, v := range g.cells[[2]int{cx, cy}] {
				dx := v[0] - x
				dy := v[1] - y
				d2 := dx*dx + dy*dy
				if d2 <= bestD2 {
					best = v
					bestD2 = d2
					found = true
				}
			}
		}
	}

	if !found {
		return mathutil.Vec3{}, 0, false
	}
	return best, math.Sqrt(bestD2), true
}

func (g *Grid) cellOf(x, y float64) [2]int {
	return [2]int{
		int(math.Floor(x / g.cellSize)),
		int(math.Floor(y / g.cellSize)),
	}
}
