package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/storage"
)

func TestPrintAllStats(t *testing.T) {
	best := 75.25
	var buf bytes.Buffer
	printAllStats(&buf, []storage.PlayerStats{
		{Player: "ann", GamesPlayed: 4, TotalMoves: 400, BestTime: &best},
		{Player: "bartholomew", GamesPlayed: 0},
	})

	out := buf.String()
	for _, want := range []string{"ann", "bartholomew", "100.0", "1:15.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
	// A player without a finished game has no best time.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "bartholomew") && !strings.HasSuffix(strings.TrimSpace(line), "-") {
			t.Errorf("expected '-' for missing best time, got %q", line)
		}
	}
}

func TestPrintAllStatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printAllStats(&buf, nil)
	if !strings.Contains(buf.String(), "No puzzles solved yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestPrintPlayerStats(t *testing.T) {
	best := 30.0
	var buf bytes.Buffer
	printPlayerStats(&buf,
		storage.PlayerStats{Player: "ann", GamesPlayed: 2, TotalMoves: 50, BestTime: &best},
		[]storage.ResultEntry{{
			Variant: "mini", Rows: 3, Cols: 3, Moves: 20, ElapsedSeconds: 30,
			CreatedAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		}},
	)

	out := buf.String()
	for _, want := range []string{"Statistics - ann", "Games played:  2", "25.0", "0:30.0", "3x3", "2026-03-01 12:30", "mini"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "slide.log")

	logger, closer, err := openLogger(path, "DEBUG")
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
	logger.Info("hello", "n", 1)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file does not contain the message: %q", data)
	}
}

func TestOpenLoggerErrors(t *testing.T) {
	if _, _, err := openLogger("", "loud"); err == nil {
		t.Error("an unknown level should be rejected")
	}
	if _, closer, err := openLogger("", "warn"); err != nil {
		t.Errorf("an empty path should disable logging, got %v", err)
	} else {
		closer.Close()
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.slide/slide.log")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".slide", "slide.log"); got != want {
		t.Errorf("expandHome() = %q, want %q", got, want)
	}

	if got, _ := expandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("absolute paths must be unchanged, got %q", got)
	}
}

func TestRunStatsUnknownPlayerLeavesNoRow(t *testing.T) {
	saved := flagDBPath
	flagDBPath = filepath.Join(t.TempDir(), "slide.db")
	t.Cleanup(func() { flagDBPath = saved })

	run := func(args ...string) string {
		t.Helper()
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)
		if err := runStats(cmd, args); err != nil {
			t.Fatalf("runStats(%v) failed: %v", args, err)
		}
		return buf.String()
	}

	if out := run("typo"); !strings.Contains(out, "No statistics for typo.") {
		t.Errorf("unexpected output for an unknown player:\n%s", out)
	}
	if out := run(); !strings.Contains(out, "No puzzles solved yet.") || strings.Contains(out, "typo") {
		t.Errorf("an unknown player must not appear in the listing:\n%s", out)
	}
}
