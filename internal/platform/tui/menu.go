package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

// MenuScreen is one state of the menu.
type MenuScreen int

const (
	ScreenMain MenuScreen = iota
	ScreenNameEntry
	ScreenSettings
	ScreenStats
)

// String returns the screen name.
func (s MenuScreen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenNameEntry:
		return "name-entry"
	case ScreenSettings:
		return "settings"
	case ScreenStats:
		return "statistics"
	default:
		return "unknown"
	}
}

// Main menu entries.
const (
	mainPlay = iota
	mainVariant
	mainSettings
	mainStats
	mainQuit
	mainItemCount
)

// Settings entries.
const (
	settingsSound = iota
	settingsBack
	settingsItemCount
)

const maxNameLength = 20

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// MenuOptions configure the menu.
type MenuOptions struct {
	Config  core.RuntimeConfig
	Store   Store       // May be nil
	Logger  *log.Logger // May be nil
	Variant string      // Preselected variant ID
	Player  string      // Prefilled player name
}

// MenuModel is the Bubble Tea model for the main menu and its screens.
type MenuModel struct {
	screen    MenuScreen
	cursor    int
	variants  []registry.GameInfo
	variant   int
	nameInput textinput.Model
	nameErr   string
	stats     StatsModel
	store     Store
	logger    *log.Logger
	sound     bool
	saveErr   string
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(opts MenuOptions) MenuModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	variants := registry.List()
	variant := 0
	for i, v := range variants {
		if v.ID == opts.Variant {
			variant = i
		}
	}

	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength
	ti.SetValue(opts.Player)

	sound := true
	if opts.Store != nil {
		enabled, err := opts.Store.MusicEnabled()
		if err != nil {
			logger.Warn("could not read sound setting", "error", err)
		} else {
			sound = enabled
		}
	}

	return MenuModel{
		screen:    ScreenMain,
		variants:  variants,
		variant:   variant,
		nameInput: ti,
		store:     opts.Store,
		logger:    logger,
		sound:     sound,
		width:     opts.Config.ScreenW,
		height:    opts.Config.ScreenH,
		config:    opts.Config,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		if m.screen == ScreenStats {
			var cmd tea.Cmd
			m.stats, cmd = m.stats.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.screen {
	case ScreenNameEntry:
		return m.updateNameEntry(msg)
	case ScreenSettings:
		return m.updateSettings(msg)
	case ScreenStats:
		return m.updateStats(msg)
	default:
		return m.updateMain(msg)
	}
}

// enter switches to a screen, resetting its per-visit state.
func (m MenuModel) enter(screen MenuScreen) (MenuModel, tea.Cmd) {
	m.screen = screen
	m.cursor = 0
	m.saveErr = ""

	switch screen {
	case ScreenNameEntry:
		m.nameErr = ""
		m.nameInput.CursorEnd()
		return m, m.nameInput.Focus()
	case ScreenStats:
		var stats StatsStore
		if m.store != nil {
			stats = m.store
		}
		m.stats = NewStatsModel(stats, m.width, m.height)
	case ScreenMain:
		m.nameInput.Blur()
	}
	return m, nil
}

func (m MenuModel) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(keyMsg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < mainItemCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == mainVariant {
			m.cycleVariant(-1)
		}

	case MenuActionRight:
		if m.cursor == mainVariant {
			m.cycleVariant(1)
		}

	case MenuActionSelect:
		switch m.cursor {
		case mainPlay:
			if len(m.variants) == 0 {
				return m, nil
			}
			return m.enter(ScreenNameEntry)
		case mainVariant:
			m.cycleVariant(1)
		case mainSettings:
			return m.enter(ScreenSettings)
		case mainStats:
			return m.enter(ScreenStats)
		case mainQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *MenuModel) cycleVariant(delta int) {
	if len(m.variants) == 0 {
		return
	}
	m.variant = (m.variant + delta + len(m.variants)) % len(m.variants)
}

func (m MenuModel) updateNameEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			return m.enter(ScreenMain)
		case tea.KeyEnter:
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				m.nameErr = "Please enter a name."
				return m, nil
			}
			m.nameInput.SetValue(name)
			m.selected = true
			return m, tea.Quit
		}
		m.nameErr = ""
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m MenuModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(keyMsg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		return m.enter(ScreenMain)

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < settingsItemCount-1 {
			m.cursor++
		}

	case MenuActionLeft, MenuActionRight:
		if m.cursor == settingsSound {
			m.toggleSound()
		}

	case MenuActionSelect:
		switch m.cursor {
		case settingsSound:
			m.toggleSound()
		case settingsBack:
			return m.enter(ScreenMain)
		}
	}

	return m, nil
}

// toggleSound flips the sound setting and persists it immediately.
func (m *MenuModel) toggleSound() {
	m.saveErr = ""
	if m.store == nil {
		m.sound = !m.sound
		return
	}

	enabled, err := m.store.ToggleMusic()
	if err != nil {
		m.logger.Warn("could not save sound setting", "error", err)
		m.saveErr = "Setting could not be saved."
		m.sound = !m.sound
		return
	}
	m.sound = enabled
}

func (m MenuModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.stats, cmd = m.stats.Update(msg)

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.stats.IsGoingBack() {
		return m.enter(ScreenMain)
	}
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	switch m.screen {
	case ScreenNameEntry:
		return m.viewNameEntry()
	case ScreenSettings:
		return m.viewSettings()
	case ScreenStats:
		return m.stats.View()
	default:
		return m.viewMain()
	}
}

func (m MenuModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  S L I D I N G   P U Z Z L E  "), m.width))
	b.WriteString("\n\n")

	items := []string{
		"Play",
		fmt.Sprintf("Variant: < %s >", m.variantTitle()),
		"Settings",
		"Statistics",
		"Quit",
	}
	for i, item := range items {
		line := "  " + item
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Variant  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewNameEntry() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("Who is playing?"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.nameInput.View(), m.width))
	b.WriteString("\n\n")
	if m.nameErr != "" {
		b.WriteString(centerText(menuErrorStyle.Render(m.nameErr), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(menuDimStyle.Render("Enter: Start "+m.variantTitle()+"  |  Esc: Back"), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewSettings() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	sound := "Off"
	if m.sound {
		sound = "On"
	}
	items := []string{
		fmt.Sprintf("Sound: %s", sound),
		"Back",
	}
	for i, item := range items {
		line := "  " + item
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.saveErr != "" {
		b.WriteString(centerText(menuErrorStyle.Render(m.saveErr), m.width))
		b.WriteString("\n")
	} else if m.store == nil {
		b.WriteString(centerText(menuDimStyle.Render("Settings are not saved: no database."), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(menuDimStyle.Render("Enter: Toggle  |  Esc: Back"), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) variantTitle() string {
	if len(m.variants) == 0 {
		return "none"
	}
	return m.variants[m.variant].Title
}

// Screen returns the current menu screen.
func (m MenuModel) Screen() MenuScreen {
	return m.screen
}

// SoundEnabled returns the sound setting as shown on the settings screen.
func (m MenuModel) SoundEnabled() bool {
	return m.sound
}

// Selected returns the variant and player chosen to play, if any.
func (m MenuModel) Selected() (variant, player string, ok bool) {
	if !m.selected || len(m.variants) == 0 {
		return "", "", false
	}
	return m.variants[m.variant].ID, strings.TrimSpace(m.nameInput.Value()), true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Variant string
	Player  string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(opts MenuOptions) (MenuResult, error) {
	model := NewMenuModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: opts.Config}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: opts.Config, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	variant, player, selected := m.Selected()
	if m.IsQuitting() || !selected {
		result.Quit = true
		return result, nil
	}

	result.Variant = variant
	result.Player = player
	return result, nil
}
