package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a puzzle session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves          int     // Committed moves
	ElapsedSeconds float64 // Simulated time since the puzzle started
	Won            bool    // Terminal: the puzzle is solved
	Paused         bool    // Whether the game is paused
	Animating      bool    // A tile is sliding
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// MoveStarted is set on the tick a legal move begins animating.
	// The platform uses it as the move sound cue.
	MoveStarted bool

	// Committed is set on the tick a slide commits into the grid.
	Committed bool

	// ReportErr holds the error returned by the result reporter, if any.
	ReportErr error
}

// Result is the finalized outcome of a solved puzzle.
type Result struct {
	Player         string
	Variant        string
	Rows           int
	Cols           int
	Moves          int
	ElapsedSeconds float64
}

// ResultReporter receives a Result once per solved puzzle.
type ResultReporter interface {
	ReportResult(r Result) error
}
