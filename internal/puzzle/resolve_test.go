package puzzle

import "testing"

func TestResolveMapping(t *testing.T) {
	// Empty slot in the middle of a 3x3 grid: every direction is legal.
	tests := []struct {
		dir    Direction
		target Cell
	}{
		{DirUp, Cell{2, 1}},    // tile below slides up
		{DirDown, Cell{0, 1}},  // tile above slides down
		{DirLeft, Cell{1, 2}},  // tile to the right slides left
		{DirRight, Cell{1, 0}}, // tile to the left slides right
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			mv, ok := Resolve(tc.dir, 1, 1, 3, 3)
			if !ok {
				t.Fatal("Resolve() should be legal from the centre")
			}
			if mv.Target != tc.target {
				t.Errorf("Target = %+v, expected %+v", mv.Target, tc.target)
			}
			if mv.Source != (Cell{1, 1}) {
				t.Errorf("Source = %+v, expected the empty slot (1,1)", mv.Source)
			}
			if mv.Direction != tc.dir {
				t.Errorf("Direction = %v, expected %v", mv.Direction, tc.dir)
			}
		})
	}
}

func TestResolveExhaustive(t *testing.T) {
	deltas := map[Direction]Cell{
		DirUp:    {1, 0},
		DirDown:  {-1, 0},
		DirLeft:  {0, 1},
		DirRight: {0, -1},
	}

	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 4; cols++ {
			for er := 0; er < rows; er++ {
				for ec := 0; ec < cols; ec++ {
					for dir, d := range deltas {
						tr, tc := er+d.Row, ec+d.Col
						inside := tr >= 0 && tr < rows && tc >= 0 && tc < cols

						mv, ok := Resolve(dir, er, ec, rows, cols)
						if ok != inside {
							t.Fatalf("Resolve(%v, %d, %d, %d, %d) ok = %v, expected %v",
								dir, er, ec, rows, cols, ok, inside)
						}
						if ok && mv.Target != (Cell{tr, tc}) {
							t.Fatalf("Resolve(%v, %d, %d, %d, %d) target = %+v, expected (%d,%d)",
								dir, er, ec, rows, cols, mv.Target, tr, tc)
						}
					}
				}
			}
		}
	}
}

func TestResolveCornerOfSolvedGrid(t *testing.T) {
	// Solved 3x3: empty at (2,2).
	if _, ok := Resolve(DirUp, 2, 2, 3, 3); ok {
		t.Error("up from the last row should be a no-op")
	}
	if _, ok := Resolve(DirLeft, 2, 2, 3, 3); ok {
		t.Error("left from the last column should be a no-op")
	}
	if mv, ok := Resolve(DirRight, 2, 2, 3, 3); !ok || mv.Target != (Cell{2, 1}) {
		t.Errorf("right should move tile (2,1), got %+v ok=%v", mv.Target, ok)
	}
	if mv, ok := Resolve(DirDown, 2, 2, 3, 3); !ok || mv.Target != (Cell{1, 2}) {
		t.Errorf("down should move tile (1,2), got %+v ok=%v", mv.Target, ok)
	}
}

func TestResolveUnknownDirection(t *testing.T) {
	if _, ok := Resolve(DirNone, 1, 1, 3, 3); ok {
		t.Error("DirNone should never resolve")
	}
	if _, ok := Resolve(Direction(99), 1, 1, 3, 3); ok {
		t.Error("unknown direction should never resolve")
	}
}
