package puzzle

import (
	"testing"

	"github.com/vovakirdan/tui-slide/internal/config"
)

func TestLayoutDefaultProjection(t *testing.T) {
	cfg := config.DefaultPuzzleConfig()
	l := NewLayout(cfg, 4, 4, 80, 24)

	// 800px over 80 columns and 600px over 24 rows: a 100px tile is 10x4 cells.
	if l.TileW != 10 || l.TileH != 4 {
		t.Errorf("tile = %dx%d cells, expected 10x4", l.TileW, l.TileH)
	}
	if l.GapX != 1 || l.GapY != 0 {
		t.Errorf("gap = %d,%d, expected 1,0", l.GapX, l.GapY)
	}
	if l.Border != 1 {
		t.Errorf("Border = %d, expected 1", l.Border)
	}
	if l.Board.W != 47 || l.Board.H != 18 {
		t.Errorf("board = %dx%d, expected 47x18", l.Board.W, l.Board.H)
	}
	if !l.Fits() {
		t.Error("default 4x4 board should fit 80x24")
	}
	if !l.Bold {
		t.Error("font_size 48 should render bold labels")
	}
}

func TestLayoutVariantsFitNominalTerminal(t *testing.T) {
	cfg := config.DefaultPuzzleConfig()
	for _, v := range Variants {
		if l := NewLayout(cfg, v.Rows, v.Cols, 80, 24); !l.Fits() {
			w, h := l.MinSize()
			t.Errorf("variant %s needs %dx%d, should fit 80x24", v.ID, w, h)
		}
	}
}

func TestLayoutTooSmall(t *testing.T) {
	l := NewLayout(config.DefaultPuzzleConfig(), 4, 4, 40, 12)
	if l.Fits() {
		t.Error("4x4 board should not fit 40x12")
	}
}

func TestLayoutTilesDoNotOverlap(t *testing.T) {
	l := NewLayout(config.DefaultPuzzleConfig(), 3, 3, 80, 24)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a := l.TileRect(r, c)
			if a.X < l.Board.X || a.Y < l.Board.Y || a.Right() > l.Board.Right() || a.Bottom() > l.Board.Bottom() {
				t.Errorf("tile (%d,%d) = %+v outside board %+v", r, c, a, l.Board)
			}
			if c+1 < 3 {
				if b := l.TileRect(r, c+1); b.X < a.Right() {
					t.Errorf("tile (%d,%d) overlaps its right neighbour", r, c)
				}
			}
			if r+1 < 3 {
				if b := l.TileRect(r+1, c); b.Y < a.Bottom() {
					t.Errorf("tile (%d,%d) overlaps its lower neighbour", r, c)
				}
			}
		}
	}
}

func TestSlidingRectEndpoints(t *testing.T) {
	l := NewLayout(config.DefaultPuzzleConfig(), 3, 3, 80, 24)
	from, to := Cell{2, 1}, Cell{2, 2}

	if got := l.SlidingRect(from, to, 0); got != l.TileRect(2, 1) {
		t.Errorf("t=0 rect = %+v, expected origin tile", got)
	}
	if got := l.SlidingRect(from, to, 1); got != l.TileRect(2, 2) {
		t.Errorf("t=1 rect = %+v, expected destination tile", got)
	}

	mid := l.SlidingRect(from, to, 0.5)
	if mid.X <= l.TileRect(2, 1).X || mid.X >= l.TileRect(2, 2).X {
		t.Errorf("t=0.5 rect x = %d should lie between the two cells", mid.X)
	}
	if mid.Y != l.TileRect(2, 1).Y {
		t.Error("horizontal slide should not change y")
	}
}

func TestLayoutNoBorderWithoutThickness(t *testing.T) {
	cfg := config.DefaultPuzzleConfig()
	cfg.GridThickness = 0
	l := NewLayout(cfg, 3, 3, 80, 24)
	if l.Border != 0 {
		t.Errorf("Border = %d, expected 0", l.Border)
	}
	if got := l.TileRect(0, 0); got.X != l.Board.X+l.GapX {
		t.Errorf("first tile x = %d, expected %d", got.X, l.Board.X+l.GapX)
	}
}
