// slide is a sliding-tile puzzle for the terminal.
//
// Usage:
//
//	slide list              - List puzzle variants
//	slide play [variant]    - Play a puzzle
//	slide menu              - Start the main menu
//	slide stats [player]    - Show player statistics
//	slide config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for a reproducible shuffle
//	--db <path>          - Set database path (default: ~/.slide/slide.db)
//	--config <path>      - Load a custom puzzle configuration
//	--log-file <path>    - Write logs here (default: ~/.slide/slide.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import puzzle variants to register them
	_ "github.com/vovakirdan/tui-slide/internal/puzzle"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Sliding puzzle - slide the tiles back into order",
	Long: `Sliding puzzle is the classic 15-puzzle for your terminal.

Slide tiles into the empty cell until the numbers are back in order.
Results, per-player statistics and settings are stored in a local
SQLite database.

Available commands:
  list     - Show all puzzle variants
  play     - Play a puzzle directly
  menu     - Main menu with settings and statistics
  stats    - Print player statistics
  config   - Print the default configuration

Examples:
  slide menu
  slide play classic --player ann
  slide play mini --seed 42
  slide stats ann
  slide config > ~/.slide/configs/puzzle.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide/slide.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.slide/slide.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
