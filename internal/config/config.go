// Package config provides YAML-based puzzle configuration loading for the
// sliding puzzle.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PuzzleConfig contains all configuration for the sliding puzzle.
// Geometry is expressed in pixels of a nominal window; the renderer projects
// it onto terminal cells.
type PuzzleConfig struct {
	WindowWidth   int `yaml:"window_width"`
	WindowHeight  int `yaml:"window_height"`
	Rows          int `yaml:"rows"` // 0 = variant default
	Cols          int `yaml:"cols"` // 0 = variant default
	TileSize      int `yaml:"tile_size"`
	GridMargin    int `yaml:"grid_margin"`
	GridThickness int `yaml:"grid_thickness"`
	FontSize      int `yaml:"font_size"`
	SlideSpeed    int `yaml:"slide_speed"` // Pixels per tick

	BackgroundColor RGB `yaml:"background_color"`
	TileColor       RGB `yaml:"tile_color"`
	TextColor       RGB `yaml:"text_color"`
}

// GridSize returns the configured grid dimensions, falling back to the
// given variant dimensions for unset values.
func (c PuzzleConfig) GridSize(variantRows, variantCols int) (rows, cols int) {
	rows, cols = c.Rows, c.Cols
	if rows <= 0 {
		rows = variantRows
	}
	if cols <= 0 {
		cols = variantCols
	}
	return rows, cols
}

// Validate reports the first field with an unusable value.
func (c PuzzleConfig) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	case c.Rows < 0 || c.Cols < 0:
		return fmt.Errorf("rows and cols must not be negative, got %dx%d", c.Rows, c.Cols)
	case c.Rows > 0 && c.Cols > 0 && c.Rows*c.Cols < 2:
		return fmt.Errorf("grid needs at least two cells, got %dx%d", c.Rows, c.Cols)
	case c.TileSize <= 0:
		return fmt.Errorf("tile_size must be positive, got %d", c.TileSize)
	case c.SlideSpeed <= 0:
		return fmt.Errorf("slide_speed must be positive, got %d", c.SlideSpeed)
	case c.GridMargin < 0 || c.GridThickness < 0:
		return errors.New("grid_margin and grid_thickness must not be negative")
	case c.FontSize <= 0:
		return fmt.Errorf("font_size must be positive, got %d", c.FontSize)
	}
	return nil
}

// RGB is a colour with 8-bit components.
// In YAML it is written either as "r,g,b" or as a [r, g, b] list.
type RGB [3]uint8

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var parts []string
	switch value.Kind {
	case yaml.ScalarNode:
		parts = strings.Split(value.Value, ",")
	case yaml.SequenceNode:
		for _, n := range value.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: colour components must be integers", n.Line)
			}
			parts = append(parts, n.Value)
		}
	default:
		return fmt.Errorf("line %d: colour must be \"r,g,b\" or [r, g, b]", value.Line)
	}

	if len(parts) != 3 {
		return fmt.Errorf("line %d: colour needs 3 components, got %d", value.Line, len(parts))
	}

	var rgb RGB
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("line %d: colour component %q: %w", value.Line, p, err)
		}
		if n < 0 || n > 255 {
			return fmt.Errorf("line %d: colour component %d out of range 0-255", value.Line, n)
		}
		rgb[i] = uint8(n)
	}
	*c = rgb
	return nil
}

// MarshalYAML implements yaml.Marshaler using the "r,g,b" form.
func (c RGB) MarshalYAML() (any, error) {
	return c.String(), nil
}

// String returns the "r,g,b" form.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c[0], c[1], c[2])
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
