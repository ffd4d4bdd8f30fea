package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultPuzzleConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultPuzzleConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "puzzle.yaml", `
rows: 3
cols: 5
tile_size: 80
background_color: "10,20,30"
tile_color: [200, 100, 50]
`)

	cfg, err := LoadFrom(path, nil)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.Rows != 3 || cfg.Cols != 5 {
		t.Errorf("grid = %dx%d, expected 3x5", cfg.Rows, cfg.Cols)
	}
	if cfg.TileSize != 80 {
		t.Errorf("TileSize = %d, expected 80", cfg.TileSize)
	}
	if cfg.BackgroundColor != (RGB{10, 20, 30}) {
		t.Errorf("BackgroundColor = %v, expected 10,20,30", cfg.BackgroundColor)
	}
	if cfg.TileColor != (RGB{200, 100, 50}) {
		t.Errorf("TileColor = %v, expected 200,100,50", cfg.TileColor)
	}

	// Missing fields fall back to defaults
	def := DefaultPuzzleConfig()
	if cfg.WindowWidth != def.WindowWidth || cfg.FontSize != def.FontSize {
		t.Errorf("missing fields should keep defaults, got window %d font %d", cfg.WindowWidth, cfg.FontSize)
	}
	if cfg.TextColor != def.TextColor {
		t.Errorf("TextColor = %v, expected default %v", cfg.TextColor, def.TextColor)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "rows: [1, 2\n", "failed to parse"},
		{"wrong type", "tile_size: big\n", "failed to parse"},
		{"colour out of range", "tile_color: \"256,0,0\"\n", "out of range"},
		{"colour too short", "text_color: \"1,2\"\n", "3 components"},
		{"colour not a number", "text_color: [a, b, c]\n", "failed to parse"},
		{"zero tile size", "tile_size: 0\n", "tile_size"},
		{"negative rows", "rows: -1\n", "must not be negative"},
		{"single cell grid", "rows: 1\ncols: 1\n", "at least two cells"},
		{"zero speed", "slide_speed: 0\n", "slide_speed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "bad.yaml", tc.content)
			_, err := LoadFrom(path, nil)
			if err == nil {
				t.Fatal("LoadFrom() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingCustomPathIsFatal(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err == nil {
		t.Fatal("missing custom config should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "absent.yaml")
	second := writeFile(t, dir, "second.yaml", "font_size: 30\n")
	third := writeFile(t, dir, "third.yaml", "font_size: 60\n")

	cfg, err := LoadFrom("", []string{first, second, third})
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.FontSize != 30 {
		t.Errorf("FontSize = %d, expected 30 from the first existing file", cfg.FontSize)
	}
}

func TestLoadSearchPathMalformedIsFatal(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "window_width: [\n")

	if _, err := LoadFrom("", []string{bad}); err == nil {
		t.Fatal("malformed file on the search path should be an error")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	cfg, err := LoadFrom("", []string{filepath.Join(t.TempDir(), "nope.yaml")})
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg != DefaultPuzzleConfig() {
		t.Errorf("fallback config = %+v, expected defaults", cfg)
	}
}

func TestGridSize(t *testing.T) {
	cfg := DefaultPuzzleConfig()

	rows, cols := cfg.GridSize(4, 4)
	if rows != 4 || cols != 4 {
		t.Errorf("GridSize() = %dx%d, expected variant 4x4", rows, cols)
	}

	cfg.Rows = 3
	rows, cols = cfg.GridSize(4, 4)
	if rows != 3 || cols != 4 {
		t.Errorf("GridSize() = %dx%d, expected 3x4", rows, cols)
	}
}

func TestRGBFormats(t *testing.T) {
	c := RGB{255, 128, 0}
	if c.Hex() != "#ff8000" {
		t.Errorf("Hex() = %q, expected #ff8000", c.Hex())
	}
	if c.String() != "255,128,0" {
		t.Errorf("String() = %q, expected 255,128,0", c.String())
	}
}
