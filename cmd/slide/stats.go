package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	flagRecent int
	flagReset  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [player]",
	Short: "Show player statistics",
	Long: `Display statistics for all players, or for one player together with
their most recent solved puzzles.

Examples:
  slide stats
  slide stats ann
  slide stats ann --recent 20
  slide stats ann --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent results to show for a player")
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the player's statistics and results")
}

func runStats(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if flagReset && len(args) == 0 {
		return fmt.Errorf("--reset needs a player name")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		all, err := store.AllPlayerStats()
		if err != nil {
			return fmt.Errorf("retrieving statistics: %w", err)
		}
		printAllStats(w, all)
		return nil
	}

	player := args[0]
	if flagReset {
		if err := store.ResetPlayer(player); err != nil {
			return fmt.Errorf("resetting %s: %w", player, err)
		}
		fmt.Fprintf(w, "Statistics for %s were reset.\n", player)
		return nil
	}

	st, found, err := store.LookupPlayerStats(player)
	if err != nil {
		return fmt.Errorf("retrieving statistics: %w", err)
	}
	if !found {
		fmt.Fprintf(w, "No statistics for %s.\n", player)
		return nil
	}
	recent, err := store.RecentResults(player, flagRecent)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}
	printPlayerStats(w, st, recent)
	return nil
}

func printAllStats(w io.Writer, all []storage.PlayerStats) {
	fmt.Fprintln(w, "Player Statistics")
	fmt.Fprintln(w)

	if len(all) == 0 {
		fmt.Fprintln(w, "No puzzles solved yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'slide play' to set the first record!")
		return
	}

	maxName := len("Player")
	for _, p := range all {
		if len(p.Player) > maxName {
			maxName = len(p.Player)
		}
	}

	fmt.Fprintf(w, "  %-*s  %-6s  %-9s  %s\n", maxName, "Player", "Games", "Avg moves", "Best time")
	fmt.Fprintf(w, "  %-*s  %-6s  %-9s  %s\n", maxName, "------", "-----", "---------", "---------")
	for _, p := range all {
		fmt.Fprintf(w, "  %-*s  %-6d  %-9.1f  %s\n", maxName, p.Player, p.GamesPlayed, p.AverageMoves(), bestTime(p))
	}
}

func printPlayerStats(w io.Writer, st storage.PlayerStats, recent []storage.ResultEntry) {
	fmt.Fprintf(w, "Statistics - %s\n", st.Player)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Games played:  %d\n", st.GamesPlayed)
	fmt.Fprintf(w, "  Average moves: %.1f\n", st.AverageMoves())
	fmt.Fprintf(w, "  Best time:     %s\n", bestTime(st))

	if len(recent) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent results:")
	fmt.Fprintf(w, "  %-16s  %-5s  %-6s  %-8s  %s\n", "Date", "Size", "Moves", "Time", "Variant")
	fmt.Fprintf(w, "  %-16s  %-5s  %-6s  %-8s  %s\n", "----", "----", "-----", "----", "-------")
	for _, r := range recent {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		size := fmt.Sprintf("%dx%d", r.Rows, r.Cols)
		fmt.Fprintf(w, "  %-16s  %-5s  %-6d  %-8s  %s\n", date, size, r.Moves, puzzle.FormatDuration(r.ElapsedSeconds), r.Variant)
	}
}

func bestTime(p storage.PlayerStats) string {
	if p.BestTime == nil {
		return "-"
	}
	return puzzle.FormatDuration(*p.BestTime)
}
