package puzzle

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// Render draws the board and HUD into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := g.layout.MinSize()
		dst.DrawTextCenteredColored(dst.Height()/2-1, "Terminal too small", core.ColorAccent)
		dst.DrawTextCenteredColored(dst.Height()/2+1, fmt.Sprintf("need %dx%d", w, h), core.ColorDim)
		return
	}

	if g.layout.Border > 0 {
		dst.DrawBox(g.layout.Board, core.ColorGrid)
	}

	var sliding Cell
	animating := g.anim.InProgress()
	if animating {
		sliding = g.anim.Move().Target
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			id := g.grid.At(r, c)
			if id == g.grid.EmptyID() || (animating && sliding == (Cell{r, c})) {
				continue
			}
			g.drawTile(dst, g.layout.TileRect(r, c), id)
		}
	}

	if animating {
		mv := g.anim.Move()
		rect := g.layout.SlidingRect(mv.Target, mv.Source, easeOutQuad(g.anim.Fraction()))
		g.drawTile(dst, rect, g.grid.At(mv.Target.Row, mv.Target.Col))
	}

	g.renderHUD(dst)
}

// drawTile draws one tile face labelled with its 1-based number.
func (g *Game) drawTile(dst *core.Screen, rect core.Rect, id int) {
	dst.DrawRect(rect, ' ', core.ColorTile)
	if rect.H >= 3 {
		dst.DrawBox(rect, core.ColorTileText)
	}

	label := strconv.Itoa(id + 1)
	cx, cy := rect.Center()
	dst.DrawTextColored(cx-len(label)/2, cy, label, core.ColorTileText)
}

// renderHUD draws the status line above the board and the help line below.
func (g *Game) renderHUD(dst *core.Screen) {
	player := g.player
	if player == "" {
		player = "-"
	}
	status := fmt.Sprintf("%s  %dx%d   Player: %s   Moves: %d   Time: %s",
		g.variant.Title, g.rows, g.cols, player, g.moves, FormatDuration(g.elapsed()))
	dst.DrawTextCenteredColored(g.layout.Board.Y-1, status, core.ColorHUD)

	helpY := g.layout.Board.Bottom()
	switch {
	case g.won:
		msg := fmt.Sprintf("Solved in %d moves, %s!   R: new puzzle   B: menu   Q: quit",
			g.moves, FormatDuration(g.elapsed()))
		dst.DrawTextCenteredColored(helpY, msg, core.ColorAccent)
	case g.paused:
		dst.DrawTextCenteredColored(helpY, "PAUSED   P: resume   B: menu   Q: quit", core.ColorAccent)
	default:
		dst.DrawTextCenteredColored(helpY, "Arrows/WASD: slide   P: pause   R: new puzzle   Q: quit", core.ColorDim)
	}
}

// FormatDuration formats seconds as m:ss.t.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	tenths := int(seconds*10 + 0.5)
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
