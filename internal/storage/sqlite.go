// Package storage provides SQLite-based persistence for puzzle results,
// per-player statistics and settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"cmp"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite" // Pure Go SQLite driver
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// SchemaVersion is the schema version written by this build.
const SchemaVersion = 1

const (
	settingMusic = "music_enabled"
	timeLayout   = "2006-01-02 15:04:05"
)

var errSchemaTooNew = errors.New("storage: database schema is newer than this build")

// Store manages the SQLite database connection.
type Store struct {
	db   *sql.DB
	path string
}

// PlayerStats aggregates the solved puzzles of one player.
// BestTime is nil until the player finishes a game.
type PlayerStats struct {
	Player      string
	GamesPlayed int
	TotalMoves  int
	BestTime    *float64
	UpdatedAt   time.Time
}

// AverageMoves returns the mean number of moves per solved puzzle.
func (p PlayerStats) AverageMoves() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.TotalMoves) / float64(p.GamesPlayed)
}

// ResultEntry is one solved puzzle from the history table.
type ResultEntry struct {
	ID             string
	Player         string
	Variant        string
	Rows           int
	Cols           int
	Moves          int
	ElapsedSeconds float64
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A file the driver reports as corrupt or not a database is moved aside
// under a timestamped ".corrupt-" name and a fresh database is created in
// its place. Every other error, including a lock held by another process,
// is returned and the file is left untouched.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	store, err := openAt(dbPath)
	if err == nil {
		return store, nil
	}
	if !isCorrupt(err) {
		return nil, err
	}

	aside := backupPath(dbPath, time.Now())
	if renameErr := os.Rename(dbPath, aside); renameErr != nil {
		return nil, fmt.Errorf("storage: cannot move damaged database aside: %w (open error: %v)", renameErr, err)
	}
	// Journal files belong to the damaged database.
	_ = os.Remove(dbPath + "-journal")
	_ = os.Remove(dbPath + "-wal")
	_ = os.Remove(dbPath + "-shm")

	store, retryErr := openAt(dbPath)
	if retryErr != nil {
		return nil, fmt.Errorf("storage: cannot recreate database: %w", retryErr)
	}
	return store, nil
}

// isCorrupt reports whether err means the file is damaged or is not a
// SQLite database at all.
func isCorrupt(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() & 0xff { // Strip extended result codes
	case sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB:
		return true
	}
	return false
}

// backupPath picks a name for a damaged database that does not
// overwrite an earlier backup.
func backupPath(dbPath string, now time.Time) string {
	base := dbPath + ".corrupt-" + now.Format("20060102-150405")
	aside := base
	for n := 1; ; n++ {
		if _, err := os.Lstat(aside); errors.Is(err, os.ErrNotExist) {
			return aside
		}
		aside = fmt.Sprintf("%s-%d", base, n)
	}
}

// busyTimeoutMS is how long a statement waits on a lock held by another
// connection before failing with SQLITE_BUSY.
var busyTimeoutMS = 5000

func openAt(dbPath string) (*Store, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", dbPath, busyTimeoutMS)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, path: dbPath}

	if err := store.migrate(); err != nil {
		db.Close()
		if errors.Is(err, errSchemaTooNew) {
			return nil, err
		}
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist and records
// the schema version.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return err
	}

	var version int
	err := s.db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		version = 0
	case err != nil:
		return err
	}
	if version > SchemaVersion {
		return fmt.Errorf("%w (found %d, want %d)", errSchemaTooNew, version, SchemaVersion)
	}
	if version == SchemaVersion {
		return nil
	}

	schema := `
		CREATE TABLE IF NOT EXISTS player_stats (
			player TEXT PRIMARY KEY,
			games_played INTEGER NOT NULL DEFAULT 0,
			total_moves INTEGER NOT NULL DEFAULT 0,
			best_time REAL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			variant TEXT NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			elapsed_secs REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_player ON results(player, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(variant, elapsed_secs ASC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(schema); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM schema_version`); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, SchemaVersion); err != nil {
		return err
	}
	return tx.Commit()
}

// Path returns the resolved database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ReportResult records a solved puzzle and folds it into the player's
// statistics. It satisfies core.ResultReporter.
func (s *Store) ReportResult(r core.Result) error {
	if r.Player == "" {
		return errors.New("storage: cannot report result without a player")
	}
	if r.Moves < 0 || r.ElapsedSeconds < 0 {
		return fmt.Errorf("storage: invalid result (moves=%d, elapsed=%.2f)", r.Moves, r.ElapsedSeconds)
	}

	// Repairs an absent or corrupt stats row before it is updated.
	if _, err := s.PlayerStats(r.Player); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO results (id, player, variant, grid_rows, grid_cols, moves, elapsed_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), r.Player, r.Variant, r.Rows, r.Cols, r.Moves, r.ElapsedSeconds,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save result: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO player_stats (player, games_played, total_moves, best_time, updated_at)
		 VALUES (?, 1, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
			games_played = games_played + 1,
			total_moves = total_moves + excluded.total_moves,
			best_time = CASE
				WHEN best_time IS NULL OR excluded.best_time < best_time THEN excluded.best_time
				ELSE best_time
			END,
			updated_at = CURRENT_TIMESTAMP`,
		r.Player, r.Moves, r.ElapsedSeconds,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update player stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit result: %w", err)
	}
	return nil
}

// PlayerStats returns the statistics of one player. An absent row is
// created with zero values; a row holding unparsable or negative values
// is rewritten with zero values.
func (s *Store) PlayerStats(player string) (PlayerStats, error) {
	var games, moves, best, updated any
	err := s.db.QueryRow(
		`SELECT games_played, total_moves, best_time, updated_at
		 FROM player_stats WHERE player = ?`,
		player,
	).Scan(&games, &moves, &best, &updated)

	if errors.Is(err, sql.ErrNoRows) {
		return s.resetStats(player)
	}
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot query player stats: %w", err)
	}

	stats, ok := decodeStats(player, games, moves, best, updated)
	if !ok {
		return s.resetStats(player)
	}
	return stats, nil
}

// LookupPlayerStats returns the statistics of one player without writing
// to the database. found is false when the player has no row. A corrupt
// row reads as zero values.
func (s *Store) LookupPlayerStats(player string) (stats PlayerStats, found bool, err error) {
	var games, moves, best, updated any
	err = s.db.QueryRow(
		`SELECT games_played, total_moves, best_time, updated_at
		 FROM player_stats WHERE player = ?`,
		player,
	).Scan(&games, &moves, &best, &updated)

	if errors.Is(err, sql.ErrNoRows) {
		return PlayerStats{Player: player}, false, nil
	}
	if err != nil {
		return PlayerStats{}, false, fmt.Errorf("storage: cannot query player stats: %w", err)
	}

	stats, ok := decodeStats(player, games, moves, best, updated)
	if !ok {
		return PlayerStats{Player: player}, true, nil
	}
	return stats, true, nil
}

// AllPlayerStats returns the statistics of every player who has solved a
// puzzle, best time first. Corrupt rows are repaired on the way.
func (s *Store) AllPlayerStats() ([]PlayerStats, error) {
	rows, err := s.db.Query(`SELECT player FROM player_stats ORDER BY player`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	out := make([]PlayerStats, 0, len(players))
	for _, p := range players {
		st, err := s.PlayerStats(p)
		if err != nil {
			return nil, err
		}
		if st.GamesPlayed == 0 {
			continue
		}
		out = append(out, st)
	}
	sortStats(out)
	return out, nil
}

// ResetPlayer removes a player's statistics and result history.
func (s *Store) ResetPlayer(player string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM results WHERE player = ?`, player); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM player_stats WHERE player = ?`, player); err != nil {
		return fmt.Errorf("storage: cannot clear player stats: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}

// RecentResults retrieves the latest N results of a player, newest first.
func (s *Store) RecentResults(player string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, player, variant, grid_rows, grid_cols, moves, elapsed_secs, created_at
		 FROM results
		 WHERE player = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		player, limit,
	)
}

// BestResults retrieves the fastest N results for a variant.
func (s *Store) BestResults(variant string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, player, variant, grid_rows, grid_cols, moves, elapsed_secs, created_at
		 FROM results
		 WHERE variant = ?
		 ORDER BY elapsed_secs ASC, moves ASC
		 LIMIT ?`,
		variant, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]ResultEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Variant, &e.Rows, &e.Cols,
			&e.Moves, &e.ElapsedSeconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt, _ = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// MusicEnabled reports whether audio cues are on. An absent or
// unparsable setting is rewritten as enabled.
func (s *Store) MusicEnabled() (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, settingMusic).Scan(&raw)
	if err == nil {
		if v, parseErr := strconv.ParseBool(raw); parseErr == nil {
			return v, nil
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("storage: cannot query settings: %w", err)
	}

	if err := s.SetMusicEnabled(true); err != nil {
		return false, err
	}
	return true, nil
}

// SetMusicEnabled persists the audio cue setting.
func (s *Store) SetMusicEnabled(enabled bool) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		settingMusic, strconv.FormatBool(enabled),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting: %w", err)
	}
	return nil
}

// ToggleMusic flips the audio cue setting and returns the new value.
func (s *Store) ToggleMusic() (bool, error) {
	cur, err := s.MusicEnabled()
	if err != nil {
		return false, err
	}
	if err := s.SetMusicEnabled(!cur); err != nil {
		return cur, err
	}
	return !cur, nil
}

func (s *Store) resetStats(player string) (PlayerStats, error) {
	_, err := s.db.Exec(
		`INSERT INTO player_stats (player, games_played, total_moves, best_time, updated_at)
		 VALUES (?, 0, 0, NULL, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
			games_played = 0, total_moves = 0, best_time = NULL,
			updated_at = CURRENT_TIMESTAMP`,
		player,
	)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot reset player stats: %w", err)
	}
	return PlayerStats{Player: player, UpdatedAt: time.Now().UTC()}, nil
}

func decodeStats(player string, games, moves, best, updated any) (PlayerStats, bool) {
	g, ok := toInt(games)
	if !ok || g < 0 {
		return PlayerStats{}, false
	}
	m, ok := toInt(moves)
	if !ok || m < 0 {
		return PlayerStats{}, false
	}
	st := PlayerStats{Player: player, GamesPlayed: int(g), TotalMoves: int(m)}
	if best != nil {
		b, ok := toFloat(best)
		if !ok || b < 0 {
			return PlayerStats{}, false
		}
		st.BestTime = &b
	}
	st.UpdatedAt, _ = parseTime(updated)
	return st, true
}

func toInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case float64:
		if x != float64(int64(x)) {
			return 0, false
		}
		return int64(x), true
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		return n, err == nil
	case []byte:
		n, err := strconv.ParseInt(string(x), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(string(x), 64)
		return f, err == nil
	}
	return 0, false
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		if parsed, err := time.Parse(timeLayout, x); err == nil {
			return parsed, true
		}
		if parsed, err := time.Parse(time.RFC3339, x); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// sortStats orders players by best time; players without a finished
// game sort last, ties broken by name.
func sortStats(stats []PlayerStats) {
	slices.SortStableFunc(stats, func(a, b PlayerStats) int {
		switch {
		case a.BestTime == nil && b.BestTime == nil:
			return cmp.Compare(a.Player, b.Player)
		case a.BestTime == nil:
			return 1
		case b.BestTime == nil:
			return -1
		}
		if c := cmp.Compare(*a.BestTime, *b.BestTime); c != 0 {
			return c
		}
		return cmp.Compare(a.Player, b.Player)
	})
}
