package bubble

import (
	"fmt"
	"math"
)

// Cell is a discrete grid address. Rows grow downward, columns rightward.
// Row parity determines the horizontal offset when converting to world
// space (odd rows are shifted right by one radius, emulating hex packing).
type Cell struct {
	Row int
	Col int
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Geometry holds the fixed grid measurements for a level and converts
// between cell addresses and world positions. All methods are pure.
type Geometry struct {
	Radius  float64 // Bubble radius in world units
	Margin  float64 // Horizontal margin on both sides of the grid
	GridTop float64 // World y of the grid's top boundary
	Cols    int     // Number of columns, fixed per level
}

// Diameter is the horizontal cell spacing. The packing only lines up when
// it is exactly twice the radius.
func (g Geometry) Diameter() float64 {
	return 2 * g.Radius
}

// RowHeight is the vertical cell spacing: round(radius * sqrt(3)),
// giving tightly-packed hex rows.
func (g Geometry) RowHeight() float64 {
	return math.Round(g.Radius * math.Sqrt(3))
}

// Width is the total world width of the play area.
func (g Geometry) Width() float64 {
	return 2*g.Margin + float64(g.Cols)*g.Diameter()
}

// CollisionRadius is the center distance below which a projectile is
// considered to have hit a placed bubble. Slightly less than a full
// diameter so grazing passes between bubbles stay possible.
func (g Geometry) CollisionRadius() float64 {
	return g.Diameter() - 2
}

// CellToWorld returns the world position of a cell's center.
func (g Geometry) CellToWorld(c Cell) (x, y float64) {
	x = g.Margin + float64(c.Row&1)*g.Radius + float64(c.Col)*g.Diameter() + g.Radius
	y = g.GridTop + float64(c.Row)*g.RowHeight() + g.Radius
	return x, y
}

// Neighbor offsets for the odd-row offset scheme, as (dRow, dCol) pairs.
// Which table applies depends on the parity of the cell's row.
var (
	evenRowNeighbors = [6][2]int{{0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {1, -1}, {1, 0}}
	oddRowNeighbors  = [6][2]int{{0, -1}, {0, 1}, {-1, 0}, {-1, 1}, {1, 0}, {1, 1}}
)

// NeighborCells returns the up-to-6 adjacent cells of c under the odd-row
// offset scheme. Cells with columns outside [0, cols) are excluded.
// Negative rows are NOT excluded here: BFS callers terminate on occupancy
// absence, which tolerates speculative coordinates above the top row.
func NeighborCells(c Cell, cols int) []Cell {
	offsets := evenRowNeighbors
	if c.Row&1 == 1 {
		offsets = oddRowNeighbors
	}

	neighbors := make([]Cell, 0, 6)
	for _, off := range offsets {
		n := Cell{Row: c.Row + off[0], Col: c.Col + off[1]}
		if n.Col < 0 || n.Col >= cols {
			continue
		}
		neighbors = append(neighbors, n)
	}
	return neighbors
}
