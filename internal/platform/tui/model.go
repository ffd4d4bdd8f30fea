package tui

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

// bell is the terminal bell, used as the move cue.
const bell = "\a"

// RunOptions are the dependencies of a play session.
type RunOptions struct {
	Config   core.RuntimeConfig
	Palette  Palette
	Settings SettingsStore // May be nil
	Logger   *log.Logger   // May be nil
	Bell     io.Writer     // Defaults to stderr
}

// Model is the Bubble Tea model for running a puzzle.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    Palette
	logger     *log.Logger
	bell       io.Writer
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	sound      bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts RunOptions) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bellOut := opts.Bell
	if bellOut == nil {
		bellOut = os.Stderr
	}

	sound := true
	if opts.Settings != nil {
		enabled, err := opts.Settings.MusicEnabled()
		if err != nil {
			logger.Warn("could not read sound setting", "error", err)
		} else {
			sound = enabled
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    opts.Palette,
		logger:     logger,
		bell:       bellOut,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		sound:      sound,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("puzzle started", "variant", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.game.Abandon()
		m.gameState = m.game.State()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.game.Abandon()
		m.gameState = m.game.State()
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// restart deals a new puzzle, discarding any slide in flight.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.logger.Debug("puzzle restarted", "variant", m.game.ID(), "seed", m.config.Seed)
}

// handleResize processes window resize events.
// The puzzle keeps its state; only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.MoveStarted && m.sound {
		//nolint:errcheck // Best-effort cue, game continues regardless
		io.WriteString(m.bell, bell)
	}
	if result.ReportErr != nil {
		m.logger.Warn("could not save result", "variant", m.game.ID(), "error", result.ReportErr)
	}
	if result.Committed && result.State.Won {
		m.logger.Info("puzzle solved",
			"variant", m.game.ID(),
			"moves", result.State.Moves,
			"seconds", result.State.ElapsedSeconds,
		)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen, m.palette)
}

// BackToMenu reports whether the session ended with a request to return
// to the menu rather than quit.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one play session.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, opts RunOptions) (backToMenu bool, err error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
