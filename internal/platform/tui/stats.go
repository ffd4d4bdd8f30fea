package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

const maxBestResults = 20

// StatsKeyMap defines the key bindings for the statistics screen.
type StatsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/right", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/left", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// statsTab is one view of the statistics screen: the player summary or
// the fastest solves of one variant.
type statsTab struct {
	variant string // Empty for the player summary
	title   string
}

// StatsModel shows per-player statistics and the fastest solves per
// variant. It runs inside the menu.
type StatsModel struct {
	tabs      []statsTab
	tab       int
	store     StatsStore
	players   []storage.PlayerStats
	results   []storage.ResultEntry
	loadErr   error
	table     table.Model
	help      help.Model
	keys      StatsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewStatsModel creates a statistics view. A nil store shows an empty view.
func NewStatsModel(store StatsStore, width, height int) StatsModel {
	tabs := []statsTab{{title: "Players"}}
	for _, g := range registry.List() {
		tabs = append(tabs, statsTab{variant: g.ID, title: g.Title})
	}

	h := help.New()
	h.Width = width

	m := StatsModel{
		tabs:   tabs,
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload rebuilds the table for the current tab.
func (m *StatsModel) reload() {
	m.players, m.results, m.loadErr = nil, nil, nil
	cur := m.tabs[m.tab]

	if m.store != nil {
		if cur.variant == "" {
			m.players, m.loadErr = m.store.AllPlayerStats()
		} else {
			m.results, m.loadErr = m.store.BestResults(cur.variant, maxBestResults)
		}
	}

	m.table = m.createTable()
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

// createTable creates a new table with columns for the current tab.
func (m *StatsModel) createTable() table.Model {
	var columns []table.Column
	if m.tabs[m.tab].variant == "" {
		columns = []table.Column{
			{Title: "Player", Width: 16},
			{Title: "Games", Width: 6},
			{Title: "Avg moves", Width: 10},
			{Title: "Best time", Width: 10},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Player", Width: 16},
			{Title: "Time", Width: 9},
			{Title: "Moves", Width: 6},
			{Title: "Date", Width: 13},
		}
	}

	height := m.height - 9 // Title, tabs, borders and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m StatsModel) rows() []table.Row {
	if m.tabs[m.tab].variant == "" {
		rows := make([]table.Row, len(m.players))
		for i, p := range m.players {
			best := "-"
			if p.BestTime != nil {
				best = puzzle.FormatDuration(*p.BestTime)
			}
			rows[i] = table.Row{
				p.Player,
				fmt.Sprintf("%d", p.GamesPlayed),
				fmt.Sprintf("%.1f", p.AverageMoves()),
				best,
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			puzzle.FormatDuration(r.ElapsedSeconds),
			fmt.Sprintf("%d", r.Moves),
			date,
		}
	}
	return rows
}

// Update handles messages for the statistics screen.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab--
			if m.tab < 0 {
				m.tab = len(m.tabs) - 1
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("STATISTICS"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t.title)
		} else {
			tabs[i] = tabStyle.Render(" " + t.title + " ")
		}
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		// Just show the current view with arrows
		tabLine = fmt.Sprintf("< %s >", m.tabs[m.tab].title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.tableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tableContent renders the table or an empty message.
func (m StatsModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Statistics are unavailable:\nthe results database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load statistics.")
	case m.tabs[m.tab].variant == "" && len(m.players) == 0,
		m.tabs[m.tab].variant != "" && len(m.results) == 0:
		return emptyStyle.Render("No puzzles solved yet.\nPlay a game to set a record!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the main menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}
