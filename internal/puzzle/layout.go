package puzzle

import (
	"math"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
)

// Nominal terminal the configured window is projected onto.
const (
	nominalCols = 80
	nominalRows = 24
)

// hudLines is the number of screen rows reserved above and below the board.
const hudLines = 1

// Layout places the board on the terminal.
// All values are in screen cells.
type Layout struct {
	TileW, TileH int // Tile face size
	GapX, GapY   int // Space between tiles (grid_margin)
	Border       int // Frame thickness, 0 or 1 (grid_thickness)
	Board        core.Rect
	Bold         bool // Tile labels in bold (large font_size)

	rows, cols int
	screenW    int
	screenH    int
}

// NewLayout projects the pixel geometry of cfg onto a screen of the given
// size and centres a rows×cols board on it.
func NewLayout(cfg config.PuzzleConfig, rows, cols, screenW, screenH int) Layout {
	pxPerCol := float64(cfg.WindowWidth) / nominalCols
	pxPerRow := float64(cfg.WindowHeight) / nominalRows

	l := Layout{
		TileW:   core.Max(3, pxToCells(cfg.TileSize, pxPerCol)),
		TileH:   core.Max(1, pxToCells(cfg.TileSize, pxPerRow)),
		GapX:    pxToCells(cfg.GridMargin, pxPerCol),
		GapY:    pxToCells(cfg.GridMargin, pxPerRow),
		Bold:    cfg.FontSize >= 40,
		rows:    rows,
		cols:    cols,
		screenW: screenW,
		screenH: screenH,
	}
	if cfg.GridThickness > 0 {
		l.Border = 1
	}

	w := cols*l.TileW + (cols+1)*l.GapX + 2*l.Border
	h := rows*l.TileH + (rows+1)*l.GapY + 2*l.Border
	l.Board = core.NewRect((screenW-w)/2, hudLines+(screenH-2*hudLines-h)/2, w, h)
	return l
}

// pxToCells converts a pixel length to whole cells, rounding to nearest.
func pxToCells(px int, pxPerCell float64) int {
	if pxPerCell <= 0 {
		return 0
	}
	return int(math.Round(float64(px) / pxPerCell))
}

// Fits reports whether the board and HUD fit on the screen.
func (l Layout) Fits() bool {
	return l.Board.W <= l.screenW && l.Board.H+2*hudLines <= l.screenH
}

// MinSize returns the smallest screen that fits the board and HUD.
func (l Layout) MinSize() (w, h int) {
	return l.Board.W, l.Board.H + 2*hudLines
}

// TileRect returns the screen rectangle of the tile face at (row, col).
func (l Layout) TileRect(row, col int) core.Rect {
	x := l.Board.X + l.Border + l.GapX + col*(l.TileW+l.GapX)
	y := l.Board.Y + l.Border + l.GapY + row*(l.TileH+l.GapY)
	return core.NewRect(x, y, l.TileW, l.TileH)
}

// SlidingRect returns the rectangle of a tile moving from one cell to
// another, t being the eased fraction of the way travelled.
func (l Layout) SlidingRect(from, to Cell, t float64) core.Rect {
	a := l.TileRect(from.Row, from.Col)
	b := l.TileRect(to.Row, to.Col)
	a.X += int(math.Round(float64(b.X-a.X) * t))
	a.Y += int(math.Round(float64(b.Y-a.Y) * t))
	return a
}
