package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a puzzle",
	Long: `Start playing the specified puzzle variant (default: classic).

Controls:
  Arrows/WASD/HJKL - Slide a tile into the empty cell
  P                - Pause
  R                - New puzzle
  B/Esc            - Leave
  Q/Ctrl+C         - Quit

The rows and cols settings of the configuration file override the
variant's grid size.

Examples:
  slide play
  slide play mini --player ann
  slide play large --seed 42
  slide play classic --config ./my-puzzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name (default: $USER)")
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := puzzle.DefaultVariant
	if len(args) == 1 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintln(os.Stderr, "Run 'slide list' to see available variants.")
		return fmt.Errorf("unknown variant %q", variant)
	}

	player := flagPlayer
	if player == "" {
		player = defaultPlayer()
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	if _, err := s.play(variant, player, runtimeConfig()); err != nil {
		return fmt.Errorf("running puzzle: %w", err)
	}
	return nil
}
