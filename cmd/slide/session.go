package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

// session holds what an interactive command needs: configuration,
// logger and (optionally) the results database.
type session struct {
	cfg     config.PuzzleConfig
	logger  *log.Logger
	logFile io.Closer
	store   *storage.Store // nil when the database could not be opened
}

// newSession loads the configuration and opens the logger and database.
// Configuration and logger errors are fatal; a database error only warns.
func newSession() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	logger, logFile, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger, logFile: logFile}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
	} else {
		s.store = store
		logger.Debug("results database opened", "path", store.Path())
	}

	logger.Debug("session started", "db", flagDBPath, "config", flagConfig)
	return s, nil
}

func (s *session) close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("could not close database", "error", err)
		}
	}
	//nolint:errcheck // Nothing left to report to
	s.logFile.Close()
}

// tuiStore returns the database as a tui.Store, or a nil interface when
// there is no database.
func (s *session) tuiStore() tui.Store {
	if s.store == nil {
		return nil
	}
	return s.store
}

func (s *session) reporter() core.ResultReporter {
	if s.store == nil {
		return nil
	}
	return s.store
}

func (s *session) settings() tui.SettingsStore {
	if s.store == nil {
		return nil
	}
	return s.store
}

// play runs one puzzle session.
// Returns true if the player asked to go back to the menu.
func (s *session) play(variant, player string, rc core.RuntimeConfig) (bool, error) {
	game, err := registry.Create(variant, registry.Options{
		Config:   s.cfg,
		Player:   player,
		Reporter: s.reporter(),
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("starting puzzle", "variant", variant, "player", player)
	return tui.Run(game, tui.RunOptions{
		Config:   rc,
		Palette:  tui.NewPalette(s.cfg),
		Settings: s.settings(),
		Logger:   s.logger,
	})
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// defaultPlayer names the player when none is given.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
