package bubble

import "testing"

func TestBoardPlaceRemove(t *testing.T) {
	b := NewBoard(10)

	if b.Size() != 0 {
		t.Errorf("New board should be empty, got %d", b.Size())
	}

	cell := Cell{2, 3}
	bub := b.Place(cell, ColorRed)
	if bub.Color != ColorRed || bub.Cell != cell {
		t.Errorf("Placed bubble should record color and cell, got %v at %v", bub.Color, bub.Cell)
	}
	if !b.Has(cell) {
		t.Error("Board should have the placed cell")
	}
	if b.Get(cell) != bub {
		t.Error("Get should return the placed bubble")
	}
	if b.Size() != 1 {
		t.Errorf("Board size should be 1, got %d", b.Size())
	}

	b.Remove(cell)
	if b.Has(cell) {
		t.Error("Board should not have a removed cell")
	}

	// Removing an empty cell is a no-op
	b.Remove(cell)
	if b.Size() != 0 {
		t.Errorf("Board should be empty after removal, got %d", b.Size())
	}
}

func TestBoardOutOfRange(t *testing.T) {
	b := NewBoard(10)
	b.Place(Cell{0, 0}, ColorBlue)

	if b.Has(Cell{0, -1}) {
		t.Error("Out-of-range column should read as absent")
	}
	if b.Get(Cell{0, 10}) != nil {
		t.Error("Out-of-range column should return nil")
	}
	if b.Has(Cell{-1, 0}) {
		t.Error("Row above the grid should read as absent")
	}
}

func TestBoardClear(t *testing.T) {
	b := NewBoard(10)
	b.Place(Cell{0, 0}, ColorRed)
	b.Place(Cell{1, 1}, ColorGreen)

	b.Clear()
	if b.Size() != 0 {
		t.Errorf("Clear should empty the board, got %d", b.Size())
	}
}

func TestNearestEmptyCellSnapsToCenter(t *testing.T) {
	b := NewBoard(10)
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}

	// A point at a cell's exact center snaps to that cell
	x, y := g.CellToWorld(Cell{2, 3})
	cell, ok := b.NearestEmptyCell(g, x, y, 8)
	if !ok {
		t.Fatal("Empty board should always have an empty cell")
	}
	if cell != (Cell{2, 3}) {
		t.Errorf("Point at center of (2,3) should snap there, got %v", cell)
	}
}

func TestNearestEmptyCellSkipsOccupied(t *testing.T) {
	b := NewBoard(10)
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}

	target := Cell{2, 3}
	b.Place(target, ColorRed)

	x, y := g.CellToWorld(target)
	cell, ok := b.NearestEmptyCell(g, x, y, 8)
	if !ok {
		t.Fatal("Board with empty cells should find one")
	}
	if cell == target {
		t.Error("Occupied cell should never be chosen")
	}
	if b.Has(cell) {
		t.Errorf("Chosen cell %v is occupied", cell)
	}
}

func TestNearestEmptyCellTieBreak(t *testing.T) {
	b := NewBoard(10)
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}

	// A point exactly between (0,0) at x=16 and (0,1) at x=48 is
	// equidistant; the scan-order winner is (0,0), every time.
	cell, ok := b.NearestEmptyCell(g, 32, 16, 4)
	if !ok {
		t.Fatal("Empty board should always have an empty cell")
	}
	if cell != (Cell{0, 0}) {
		t.Errorf("Tie should break to scan order, got %v, want (0,0)", cell)
	}
}

func TestNearestEmptyCellFullBoard(t *testing.T) {
	b := NewBoard(4)
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 4}

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			b.Place(Cell{r, c}, ColorRed)
		}
	}

	if _, ok := b.NearestEmptyCell(g, 30, 30, 3); ok {
		t.Error("Fully occupied window should report no empty cell")
	}

	// Expanding the window past the filled rows finds space again
	if _, ok := b.NearestEmptyCell(g, 30, 30, 4); !ok {
		t.Error("Window including an empty row should find a cell")
	}
}

func TestMatchGroupAcrossParity(t *testing.T) {
	b := NewBoard(10)

	// Vertical-ish chain crossing even and odd rows
	b.Place(Cell{0, 4}, ColorRed)
	b.Place(Cell{1, 4}, ColorRed)
	b.Place(Cell{2, 4}, ColorRed)
	// Same color but disconnected
	b.Place(Cell{5, 0}, ColorRed)
	// Adjacent but different color
	b.Place(Cell{0, 5}, ColorGreen)

	group := b.MatchGroup(Cell{0, 4})
	if len(group) != 3 {
		t.Fatalf("Connected same-color group should have 3 bubbles, got %d", len(group))
	}
	for _, bub := range group {
		if bub.Color != ColorRed {
			t.Errorf("Group should only contain red bubbles, got %v", bub.Color)
		}
		if bub.Cell == (Cell{5, 0}) {
			t.Error("Disconnected bubble should not be in the group")
		}
	}
}

func TestMatchGroupSingle(t *testing.T) {
	b := NewBoard(10)
	b.Place(Cell{0, 0}, ColorBlue)
	b.Place(Cell{0, 1}, ColorGreen)

	group := b.MatchGroup(Cell{0, 0})
	if len(group) != 1 {
		t.Errorf("Isolated bubble should form a group of 1, got %d", len(group))
	}
}

func TestMatchGroupEmptyStart(t *testing.T) {
	b := NewBoard(10)
	if group := b.MatchGroup(Cell{0, 0}); group != nil {
		t.Errorf("Empty start cell should return nil group, got %v", group)
	}
}

func TestRemoveGroup(t *testing.T) {
	b := NewBoard(10)
	b.Place(Cell{0, 4}, ColorRed)
	b.Place(Cell{0, 5}, ColorRed)
	b.Place(Cell{1, 4}, ColorRed)
	b.Place(Cell{3, 0}, ColorBlue)

	group := b.MatchGroup(Cell{0, 4})
	b.RemoveGroup(group)

	if b.Size() != 1 {
		t.Errorf("Only the unmatched bubble should remain, got %d", b.Size())
	}
	if !b.Has(Cell{3, 0}) {
		t.Error("Bubble outside the group should survive")
	}
}
