package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
)

// boldLabelFontSize is the configured font size from which tile labels
// render bold.
const boldLabelFontSize = 40

// Palette maps core colour roles to lipgloss styles.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds the styles for the configured colours.
func NewPalette(cfg config.PuzzleConfig) Palette {
	bg := lipgloss.Color(cfg.BackgroundColor.Hex())
	tile := lipgloss.Color(cfg.TileColor.Hex())
	text := lipgloss.Color(cfg.TextColor.Hex())

	label := lipgloss.NewStyle().Foreground(text).Background(tile)
	if cfg.FontSize >= boldLabelFontSize {
		label = label.Bold(true)
	}

	return Palette{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault:  lipgloss.NewStyle().Background(bg),
		core.ColorTile:     lipgloss.NewStyle().Foreground(text).Background(tile),
		core.ColorTileText: label,
		core.ColorGrid:     lipgloss.NewStyle().Foreground(tile).Background(bg),
		core.ColorHUD:      lipgloss.NewStyle().Foreground(tile).Background(bg),
		core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(bg).Bold(true),
		core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(bg),
	}}
}

// Style returns the style for a colour role, falling back to the
// background style.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if style, ok := p.styles[c]; ok {
		return style
	}
	if style, ok := p.styles[core.ColorDefault]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
