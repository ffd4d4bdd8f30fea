package config

import (
	_ "embed"
)

//go:embed defaults/puzzle.yaml
var defaultPuzzleYAML []byte

// DefaultPuzzleConfig returns the default puzzle configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		WindowWidth:     800,
		WindowHeight:    600,
		TileSize:        100,
		GridMargin:      5,
		GridThickness:   5,
		FontSize:        48,
		SlideSpeed:      20,
		BackgroundColor: RGB{0, 0, 0},
		TileColor:       RGB{255, 255, 255},
		TextColor:       RGB{0, 0, 0},
	}
}

// GetDefaultYAML returns the embedded default YAML document.
func GetDefaultYAML() []byte {
	return defaultPuzzleYAML
}
