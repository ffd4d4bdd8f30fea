package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the puzzle configuration.
// Search order: customPath -> ~/.slide/configs/puzzle.yaml -> ./configs/puzzle.yaml -> embedded default
//
// Fields missing from the chosen file keep their default values. A file that
// exists but cannot be read, parsed or validated is an error, as is a
// customPath that does not exist.
func Load(customPath string) (PuzzleConfig, error) {
	return LoadFrom(customPath, SearchPaths())
}

// LoadFrom is Load with an explicit list of search paths.
func LoadFrom(customPath string, searchPaths []string) (PuzzleConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PuzzleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	for _, path := range searchPaths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return PuzzleConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return Parse(data, path)
	}

	return Parse(defaultPuzzleYAML, "embedded default")
}

// Parse decodes a YAML document on top of DefaultPuzzleConfig and validates it.
// source names the document in error messages.
func Parse(data []byte, source string) (PuzzleConfig, error) {
	cfg := DefaultPuzzleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PuzzleConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return PuzzleConfig{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// SearchPaths returns the default config locations in priority order.
func SearchPaths() []string {
	var paths []string
	if p := userConfigPath("puzzle.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "puzzle.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide", "configs", filename)
}
