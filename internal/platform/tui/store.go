package tui

import (
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

// SettingsStore persists the sound setting.
type SettingsStore interface {
	MusicEnabled() (bool, error)
	ToggleMusic() (bool, error)
}

// StatsStore reads the statistics shown on the statistics screen.
type StatsStore interface {
	AllPlayerStats() ([]storage.PlayerStats, error)
	BestResults(variant string, limit int) ([]storage.ResultEntry, error)
}

// Store is everything the TUI needs from persistence.
// *storage.Store satisfies it; a nil Store disables persistence.
type Store interface {
	core.ResultReporter
	SettingsStore
	StatsStore
}

var _ Store = (*storage.Store)(nil)
