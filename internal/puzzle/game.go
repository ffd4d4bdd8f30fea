package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

// Variant is a named default grid size.
type Variant struct {
	ID    string
	Title string
	Rows  int
	Cols  int
}

// Game is one puzzle session: it owns the grid and the slide animation and
// mutates them only inside Step.
type Game struct {
	variant  Variant
	cfg      config.PuzzleConfig
	player   string
	reporter core.ResultReporter

	rng      *rand.Rand
	grid     *Grid
	anim     Animation
	layout   Layout
	rows     int
	cols     int
	tickRate int
	ticks    uint64 // Unpaused ticks since Reset

	moves    int
	won      bool
	reported bool
	paused   bool
	tooSmall bool
}

// Used when neither the configuration nor the variant names a usable size.
const (
	fallbackRows = 3
	fallbackCols = 3
)

// New creates a game for a variant. Call Reset before stepping.
// A configured size that cannot form a puzzle falls back to the variant
// size, and an unusable variant size to 3x3.
func New(v Variant, opts registry.Options) *Game {
	rows, cols := opts.Config.GridSize(v.Rows, v.Cols)
	if !validSize(rows, cols) {
		rows, cols = v.Rows, v.Cols
	}
	if !validSize(rows, cols) {
		rows, cols = fallbackRows, fallbackCols
	}
	return &Game{
		variant:  v,
		cfg:      opts.Config,
		player:   opts.Player,
		reporter: opts.Reporter,
		rows:     rows,
		cols:     cols,
		anim:     NewAnimation(float64(opts.Config.TileSize), float64(opts.Config.SlideSpeed)),
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset starts a new shuffled puzzle. A slide in flight is discarded.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.ticks = 0
	g.moves = 0
	g.won = false
	g.reported = false
	g.paused = false
	g.anim.Cancel()

	grid, err := NewGrid(g.rows, g.cols, g.rng)
	if err != nil {
		// New only keeps sizes NewGrid accepts.
		panic(fmt.Sprintf("puzzle: %v", err))
	}
	g.grid = grid

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for new screen dimensions.
func (g *Game) Resize(width, height int) {
	g.layout = NewLayout(g.cfg, g.rows, g.cols, width, height)
	g.tooSmall = !g.layout.Fits()
}

// Abandon drops the slide in flight. The grid keeps its last committed
// arrangement and the move is not counted.
func (g *Game) Abandon() {
	g.anim.Cancel()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	if g.tooSmall || g.won {
		res.State = g.State()
		return res
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		res.State = g.State()
		return res
	}

	g.ticks++

	if g.anim.InProgress() {
		// Moves are serialized: input is dropped until the slide commits.
		if g.anim.Advance() {
			res.ReportErr = g.commit()
			res.Committed = true
		}
		res.State = g.State()
		return res
	}

	if dir := directionFrom(in); dir != DirNone {
		empty := g.grid.Empty()
		if mv, ok := Resolve(dir, empty.Row, empty.Col, g.rows, g.cols); ok {
			g.anim.Start(mv)
			res.MoveStarted = true
		}
	}

	res.State = g.State()
	return res
}

// commit writes the finished slide into the grid and checks for a win.
func (g *Game) commit() error {
	g.grid.slide(g.anim.Move().Target)
	g.moves++

	if !g.grid.IsSolved() {
		return nil
	}
	g.won = true
	return g.report()
}

// report hands the result to the reporter, at most once per puzzle.
func (g *Game) report() error {
	if g.reported || g.reporter == nil {
		return nil
	}
	g.reported = true
	return g.reporter.ReportResult(core.Result{
		Player:         g.player,
		Variant:        g.variant.ID,
		Rows:           g.rows,
		Cols:           g.cols,
		Moves:          g.moves,
		ElapsedSeconds: g.elapsed(),
	})
}

// directionFrom picks one direction from the frame.
// When several arrived in the same tick the first in Up, Down, Left, Right
// order wins.
func directionFrom(in core.InputFrame) Direction {
	switch {
	case in.Has(core.ActionUp):
		return DirUp
	case in.Has(core.ActionDown):
		return DirDown
	case in.Has(core.ActionLeft):
		return DirLeft
	case in.Has(core.ActionRight):
		return DirRight
	}
	return DirNone
}

func (g *Game) elapsed() float64 {
	return float64(g.ticks) / float64(g.tickRate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:          g.moves,
		ElapsedSeconds: g.elapsed(),
		Won:            g.won,
		Paused:         g.paused || g.tooSmall,
		Animating:      g.anim.InProgress(),
	}
}

// Grid returns a copy of the current grid.
func (g *Game) Grid() *Grid {
	return g.grid.Clone()
}

// Player returns the name results are reported under.
func (g *Game) Player() string {
	return g.player
}
