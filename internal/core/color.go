package core

// Color is a semantic colour role for a screen cell.
// The platform layer maps each role to concrete terminal styles, so games
// never deal with RGB values or ANSI codes directly.
type Color uint8

// Colour roles used by the puzzle renderer.
const (
	ColorDefault  Color = iota // Background
	ColorTile                  // Tile face
	ColorTileText              // Tile label drawn on a tile face
	ColorGrid                  // Board frame
	ColorHUD                   // Status line text
	ColorAccent                // Highlights (win banner, menu cursor)
	ColorDim                   // Help text
)
