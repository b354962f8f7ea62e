package bubble

import (
	"math"
	"testing"
)

func TestGeometrySpacing(t *testing.T) {
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}

	if g.Diameter() != 32 {
		t.Errorf("Diameter should be 32, got %v", g.Diameter())
	}

	// round(16 * sqrt(3)) = round(27.71) = 28
	if g.RowHeight() != 28 {
		t.Errorf("RowHeight should be 28, got %v", g.RowHeight())
	}

	if g.Width() != 320 {
		t.Errorf("Width should be 320, got %v", g.Width())
	}

	if g.CollisionRadius() != 30 {
		t.Errorf("CollisionRadius should be 30, got %v", g.CollisionRadius())
	}
}

func TestCellToWorld(t *testing.T) {
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}

	tests := []struct {
		cell Cell
		x, y float64
	}{
		{Cell{0, 0}, 16, 16},   // Top-left corner
		{Cell{0, 3}, 112, 16},  // Along the top row
		{Cell{1, 0}, 32, 44},   // Odd row shifted right by one radius
		{Cell{1, 3}, 128, 44},  //
		{Cell{2, 0}, 16, 72},   // Even row back to the left edge
		{Cell{4, 9}, 304, 128}, // Bottom-right of a 5-row field
	}

	for _, tt := range tests {
		x, y := g.CellToWorld(tt.cell)
		if x != tt.x || y != tt.y {
			t.Errorf("CellToWorld(%v) = (%v, %v), want (%v, %v)", tt.cell, x, y, tt.x, tt.y)
		}
	}
}

func TestCellToWorldMargin(t *testing.T) {
	g := Geometry{Radius: 16, Margin: 8, GridTop: 10, Cols: 10}

	x, y := g.CellToWorld(Cell{0, 0})
	if x != 24 || y != 26 {
		t.Errorf("CellToWorld with margin should offset, got (%v, %v), want (24, 26)", x, y)
	}
}

func TestNeighborCellsEvenRow(t *testing.T) {
	got := NeighborCells(Cell{2, 3}, 10)
	want := []Cell{{2, 2}, {2, 4}, {1, 2}, {1, 3}, {3, 2}, {3, 3}}

	if len(got) != len(want) {
		t.Fatalf("Even-row cell should have %d neighbors, got %d: %v", len(want), len(got), got)
	}
	for i, n := range want {
		if got[i] != n {
			t.Errorf("Neighbor %d should be %v, got %v", i, n, got[i])
		}
	}
}

func TestNeighborCellsOddRow(t *testing.T) {
	got := NeighborCells(Cell{1, 3}, 10)
	want := []Cell{{1, 2}, {1, 4}, {0, 3}, {0, 4}, {2, 3}, {2, 4}}

	if len(got) != len(want) {
		t.Fatalf("Odd-row cell should have %d neighbors, got %d: %v", len(want), len(got), got)
	}
	for i, n := range want {
		if got[i] != n {
			t.Errorf("Neighbor %d should be %v, got %v", i, n, got[i])
		}
	}
}

func TestNeighborCellsColumnBounds(t *testing.T) {
	// Left edge: offsets reaching column -1 are dropped
	got := NeighborCells(Cell{0, 0}, 10)
	for _, n := range got {
		if n.Col < 0 || n.Col >= 10 {
			t.Errorf("Neighbor %v has out-of-range column", n)
		}
	}
	if len(got) != 3 {
		t.Errorf("Corner cell should have 3 in-range neighbors, got %d: %v", len(got), got)
	}

	// Right edge of an odd row: {0,1} offsets reaching column 10 are dropped
	got = NeighborCells(Cell{1, 9}, 10)
	for _, n := range got {
		if n.Col < 0 || n.Col >= 10 {
			t.Errorf("Neighbor %v has out-of-range column", n)
		}
	}
	if len(got) != 3 {
		t.Errorf("Odd-row edge cell should have 3 in-range neighbors, got %d: %v", len(got), got)
	}
}

func TestNeighborCellsNegativeRows(t *testing.T) {
	// Rows above the grid are not filtered; occupancy lookups handle them
	got := NeighborCells(Cell{0, 3}, 10)
	hasNegative := false
	for _, n := range got {
		if n.Row < 0 {
			hasNegative = true
		}
	}
	if !hasNegative {
		t.Error("Top-row neighbors should include row -1 cells")
	}
}

func TestNeighborReciprocity(t *testing.T) {
	// If B neighbors A, then A neighbors B, wherever both are in range
	cols := 10
	for r := 0; r < 6; r++ {
		for c := 0; c < cols; c++ {
			a := Cell{r, c}
			for _, b := range NeighborCells(a, cols) {
				found := false
				for _, back := range NeighborCells(b, cols) {
					if back == a {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Cell %v neighbors %v but not vice versa", a, b)
				}
			}
		}
	}
}

func TestNeighborDistances(t *testing.T) {
	// Every neighbor center must sit within one diameter of the cell
	// center, for both parities. That is what makes the tables hex-like.
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 20}

	for _, c := range []Cell{{2, 10}, {3, 10}} {
		cx, cy := g.CellToWorld(c)
		for _, n := range NeighborCells(c, 20) {
			nx, ny := g.CellToWorld(n)
			dist := math.Hypot(nx-cx, ny-cy)
			if dist > g.Diameter()+1 {
				t.Errorf("Neighbor %v of %v is %.1f apart, more than one diameter", n, c, dist)
			}
		}
	}
}
