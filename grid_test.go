package stipple

import "testing"

func TestGridStartsTransparent(t *testing.T) {
	g := NewGrid(8, 8, 16)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.Get(x, y) != TransparentIndex {
				t.Fatalf("Get(%d, %d) = %d, want %d", x, y, g.Get(x, y), TransparentIndex)
			}
		}
	}
}

func TestGridGetOutOfBounds(t *testing.T) {
	g := NewGrid(8, 8, 16)
	g.Set(0, 0, 5)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 8, 0},
		{"y at height", 0, 8},
		{"far outside", 999, 999},
		{"both negative", -5, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Get(tt.x, tt.y); got != 0 {
				t.Errorf("Get(%d, %d) = %d, want 0", tt.x, tt.y, got)
			}
		})
	}
}

func TestGridSetOutOfBounds(t *testing.T) {
	g := NewGrid(8, 8, 16)
	before := g.Snapshot()

	g.Set(-1, 0, 5)
	g.Set(0, -1, 5)
	g.Set(8, 0, 5)
	g.Set(0, 8, 5)
	g.Set(100, 100, 5)

	after := g.Snapshot()
	for y := range before {
		for x := range before[y] {
			if before[y][x] != after[y][x] {
				t.Fatalf("out-of-bounds Set mutated (%d, %d)", x, y)
			}
		}
	}
}

func TestGridSetInvalidIndex(t *testing.T) {
	g := NewGrid(8, 8, 16)
	g.Set(3, 3, 7)

	g.Set(3, 3, -1)
	g.Set(3, 3, 16)
	g.Set(3, 3, 999)

	if got := g.Get(3, 3); got != 7 {
		t.Errorf("Get(3, 3) = %d after invalid writes, want 7", got)
	}
}

func TestGridSetAndGet(t *testing.T) {
	g := NewGrid(16, 16, 16)
	g.Set(5, 9, 12)
	if got := g.Get(5, 9); got != 12 {
		t.Errorf("Get(5, 9) = %d, want 12", got)
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(4, 4, 16)
	g.Set(1, 1, 3)
	g.Clear(9)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if g.Get(x, y) != 9 {
				t.Fatalf("Get(%d, %d) = %d after Clear(9)", x, y, g.Get(x, y))
			}
		}
	}
}

func TestGridClearInvalidIndex(t *testing.T) {
	g := NewGrid(4, 4, 16)
	g.Set(1, 1, 3)
	g.Clear(16)
	g.Clear(-1)
	if got := g.Get(1, 1); got != 3 {
		t.Errorf("Get(1, 1) = %d after invalid Clear, want 3", got)
	}
}

func TestGridSnapshotRestoreRoundtrip(t *testing.T) {
	g := NewGrid(8, 8, 16)
	g.Set(2, 3, 5)
	g.Set(7, 7, 15)

	snap := g.Snapshot()

	g2 := NewGrid(8, 8, 16)
	if err := g2.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if g2.Get(2, 3) != 5 || g2.Get(7, 7) != 15 {
		t.Error("restored grid does not match snapshot")
	}
}

func TestGridSnapshotIsIndependent(t *testing.T) {
	g := NewGrid(4, 4, 16)
	snap := g.Snapshot()
	snap[0][0] = 9
	if g.Get(0, 0) != 0 {
		t.Error("mutating a snapshot leaked into the grid")
	}
}

func TestGridRestoreRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"too few rows", make([][]int, 3)},
		{"short row", func() [][]int {
			rows := emptyRows(4, 4)
			rows[2] = rows[2][:3]
			return rows
		}()},
		{"long row", func() [][]int {
			rows := emptyRows(4, 4)
			rows[1] = append(rows[1], 0)
			return rows
		}()},
		{"index too large", func() [][]int {
			rows := emptyRows(4, 4)
			rows[3][3] = 16
			return rows
		}()},
		{"negative index", func() [][]int {
			rows := emptyRows(4, 4)
			rows[0][0] = -1
			return rows
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(4, 4, 16)
			g.Set(1, 2, 7)

			if err := g.Restore(tt.rows); err == nil {
				t.Fatal("Restore accepted a malformed snapshot")
			}
			// All-or-nothing: prior contents survive a failed restore.
			if g.Get(1, 2) != 7 {
				t.Error("failed Restore mutated the grid")
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					if x == 1 && y == 2 {
						continue
					}
					if g.Get(x, y) != 0 {
						t.Fatalf("failed Restore mutated (%d, %d)", x, y)
					}
				}
			}
		})
	}
}

func emptyRows(w, h int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
	}
	return rows
}

func TestGridVersionAdvancesOnMutation(t *testing.T) {
	g := NewGrid(4, 4, 16)
	v0 := g.Version()

	g.Set(0, 0, 1)
	if g.Version() == v0 {
		t.Error("Set did not advance version")
	}

	v1 := g.Version()
	g.Set(0, 0, 1) // same value: no mutation
	if g.Version() != v1 {
		t.Error("no-op Set advanced version")
	}

	g.Set(-1, 0, 1) // out of bounds: no mutation
	if g.Version() != v1 {
		t.Error("out-of-bounds Set advanced version")
	}
}
