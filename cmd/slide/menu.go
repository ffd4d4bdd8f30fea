package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start the puzzle in interactive menu mode.

The menu lets you pick a variant, enter your name, toggle sound and
browse statistics. After a puzzle you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change variant
  Enter/Space     - Select
  Esc/B           - Back
  Q               - Quit

Examples:
  slide menu
  slide menu --fps 30
  slide menu --db ./slide.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	rc := runtimeConfig()
	variant := puzzle.DefaultVariant
	player := defaultPlayer()

	// Menu loop
	for {
		result, err := tui.RunMenu(tui.MenuOptions{
			Config:  rc,
			Store:   s.tuiStore(),
			Logger:  s.logger,
			Variant: variant,
			Player:  player,
		})
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		// Update config with any size changes
		rc = result.Config

		if result.Quit {
			return nil
		}

		variant, player = result.Variant, result.Player

		backToMenu, err := s.play(variant, player, rc)
		if err != nil {
			return fmt.Errorf("running puzzle: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
