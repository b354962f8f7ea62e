package bubble

// Bubble is a placed bubble owning exactly one cell. Free-flying
// projectiles are a separate type; a Projectile becomes a Bubble exactly
// once, at its snap event, and placed bubbles never fly again.
type Bubble struct {
	Color BubbleColor
	Cell  Cell
}

// Board is the occupancy store: a sparse mapping from cell to placed
// bubble. A cell key appears at most once and the board owns the bubble
// while it is placed.
type Board struct {
	cols  int
	cells map[Cell]*Bubble
}

// NewBoard creates an empty board with the given column count.
func NewBoard(cols int) *Board {
	return &Board{
		cols:  cols,
		cells: make(map[Cell]*Bubble),
	}
}

// Cols returns the board's column count.
func (b *Board) Cols() int {
	return b.cols
}

// inRange reports whether the cell's column lies inside the play area.
// Speculative neighbor coordinates with out-of-range columns or negative
// rows simply read as absent.
func (b *Board) inRange(c Cell) bool {
	return c.Col >= 0 && c.Col < b.cols
}

// Place constructs a placed bubble at the cell, overwriting any prior
// occupant. Callers must guarantee the cell is empty; in normal play the
// nearest-empty-cell resolver does.
func (b *Board) Place(c Cell, color BubbleColor) *Bubble {
	bub := &Bubble{Color: color, Cell: c}
	b.cells[c] = bub
	return bub
}

// Remove deletes the occupant of the cell if present; no-op otherwise.
func (b *Board) Remove(c Cell) {
	delete(b.cells, c)
}

// Has reports whether the cell is occupied.
func (b *Board) Has(c Cell) bool {
	if !b.inRange(c) {
		return false
	}
	_, ok := b.cells[c]
	return ok
}

// Get returns the occupant of the cell, or nil if empty or out of range.
func (b *Board) Get(c Cell) *Bubble {
	if !b.inRange(c) {
		return nil
	}
	return b.cells[c]
}

// Size returns the number of placed bubbles.
func (b *Board) Size() int {
	return len(b.cells)
}

// Clear removes all occupants. Used at level transitions.
func (b *Board) Clear() {
	b.cells = make(map[Cell]*Bubble)
}

// ForEach calls fn for every placed bubble. Iteration order is not
// deterministic; callers that need determinism must sort.
func (b *Board) ForEach(fn func(*Bubble)) {
	for _, bub := range b.cells {
		fn(bub)
	}
}

// NearestEmptyCell finds the unoccupied cell whose world center is
// closest to (x, y), scanning rows [0, maxRows) and all columns.
// Ties break to the first cell in row-major scan order, which is stable
// and deterministic. Returns false only when every cell in the window is
// occupied (board completely full); callers must treat that as
// "cannot place".
//
// The scan is O(maxRows*cols) but runs once per projectile resolution,
// not per frame, so the bound needs no spatial index.
func (b *Board) NearestEmptyCell(geom Geometry, x, y float64, maxRows int) (Cell, bool) {
	var best Cell
	bestDist := -1.0

	for r := 0; r < maxRows; r++ {
		for c := 0; c < b.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if b.Has(cell) {
				continue
			}
			cx, cy := geom.CellToWorld(cell)
			dx, dy := cx-x, cy-y
			dist := dx*dx + dy*dy
			if bestDist < 0 || dist < bestDist {
				best = cell
				bestDist = dist
			}
		}
	}

	if bestDist < 0 {
		return Cell{}, false
	}
	return best, true
}

// MatchGroup returns the maximal connected set of same-colored bubbles
// reachable from start, including the start bubble itself. Breadth-first
// traversal; each cell is visited at most once. Returns nil if start is
// not occupied.
func (b *Board) MatchGroup(start Cell) []*Bubble {
	startBubble := b.Get(start)
	if startBubble == nil {
		return nil
	}
	target := startBubble.Color

	visited := map[Cell]bool{start: true}
	queue := []Cell{start}
	group := []*Bubble{startBubble}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range NeighborCells(cur, b.cols) {
			if visited[n] {
				continue
			}
			visited[n] = true

			bub := b.Get(n)
			if bub == nil || bub.Color != target {
				continue
			}
			group = append(group, bub)
			queue = append(queue, n)
		}
	}

	return group
}

// RemoveGroup deletes every bubble in the group from the board.
func (b *Board) RemoveGroup(group []*Bubble) {
	for _, bub := range group {
		b.Remove(bub.Cell)
	}
}
