package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/learning-adventure/internal/ledger"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/registry"
	"github.com/vovakirdan/learning-adventure/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the activity sidebar
	sidebarWidth       = 22 // Width of the activity sidebar
	maxSessions        = 100
)

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextActivity key.Binding
	PrevActivity key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextActivity, k.PrevActivity, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextActivity, k.PrevActivity},
		{k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextActivity: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/right", "next activity"),
		),
		PrevActivity: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/left", "prev activity"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistorySource is what the history view reads. Either field may be nil.
type HistorySource struct {
	Sessions *storage.Store
	Ledgers  *ledger.Store
}

// HistoryModel shows one player's ledger figures and recent sessions per
// activity.
type HistoryModel struct {
	player     player.ID
	activities []registry.Info
	cursor     int
	source     HistorySource

	stats    ledger.Stats
	streak   int
	games    *storage.ActivityStats
	sessions []storage.SessionEntry
	loadErr  error

	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a history view for p starting on activity
// (empty for the first registered one).
func NewHistoryModel(src HistorySource, p player.ID, activity string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		player:      p,
		activities:  registry.List(),
		source:      src,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, info := range m.activities {
		if info.ID == activity {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// HistoryColumns returns the session table columns.
func HistoryColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Played", Width: 18},
		{Title: "Length", Width: 8},
	}
}

// HistoryRows converts sessions to table rows, most recent first.
func HistoryRows(sessions []storage.SessionEntry) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.StartedAt.Local().Format("Jan 02 15:04"),
			s.EndedAt.Sub(s.StartedAt).Round(time.Second).String(),
		}
	}
	return rows
}

// NewHistoryTable builds a styled table of sessions with the given height.
func NewHistoryTable(sessions []storage.SessionEntry, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(HistoryColumns()),
		table.WithRows(HistoryRows(sessions)),
		table.WithFocused(focused),
		table.WithHeight(max(height, 1)),
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
	if !focused {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)
	return t
}

func (m *HistoryModel) createTable() table.Model {
	// Leave room for title, stats, help, and margins
	return NewHistoryTable(m.sessions, m.height-10, true)
}

func (m *HistoryModel) current() (registry.Info, bool) {
	if len(m.activities) == 0 {
		return registry.Info{}, false
	}
	return m.activities[m.cursor], true
}

// load reads the ledger and the recent sessions of the current activity.
func (m *HistoryModel) load() {
	m.stats, m.streak, m.games, m.sessions, m.loadErr = ledger.Stats{}, 0, nil, nil, nil

	info, ok := m.current()
	if !ok {
		m.table.SetRows(nil)
		return
	}
	if m.source.Ledgers != nil {
		l, err := m.source.Ledgers.Load(m.player, info.ID)
		m.stats = l.Stats()
		m.streak = l.Streak()
		m.loadErr = err
	}
	if m.source.Sessions != nil {
		sessions, err := m.source.Sessions.RecentSessions(m.player, info.ID, maxSessions)
		if err == nil {
			m.sessions = sessions
		} else if m.loadErr == nil {
			m.loadErr = err
		}
		stats, err := m.source.Sessions.PlayerStats(m.player)
		if err == nil {
			m.games = stats[info.ID]
		} else if m.loadErr == nil {
			m.loadErr = err
		}
	}
	m.table.SetRows(HistoryRows(m.sessions))
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextActivity):
			if len(m.activities) > 0 {
				m.cursor = (m.cursor + 1) % len(m.activities)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevActivity):
			if len(m.activities) > 0 {
				m.cursor = (m.cursor - 1 + len(m.activities)) % len(m.activities)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := fmt.Sprintf("%s's SCORES", strings.ToUpper(m.player.Name()))
	if info, ok := m.current(); ok {
		title = fmt.Sprintf("%s - %s", title, info.Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(StatsLine(m.stats, m.streak), m.width))
	b.WriteString("\n")
	if m.source.Sessions != nil {
		b.WriteString(centerText(GamesLine(m.games), m.width))
		b.WriteString("\n")
	}
	if m.loadErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
		b.WriteString(warnStyle.Render(centerText("Some scores could not be read.", m.width)))
	}
	b.WriteString("\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// StatsLine formats ledger figures on one line.
func StatsLine(st ledger.Stats, streak int) string {
	best := fmt.Sprintf("%d", st.BestDay)
	if st.BestDayDate != "" {
		best = fmt.Sprintf("%d on %s", st.BestDay, st.BestDayDate)
	}
	return fmt.Sprintf("Today: %d   Lifetime: %d   Best day: %s   Streak: %d days", st.Today, st.Lifetime, best, streak)
}

// GamesLine formats a player's session aggregates for one activity.
func GamesLine(a *storage.ActivityStats) string {
	if a == nil || a.Sessions == 0 {
		return "Games: 0"
	}
	return fmt.Sprintf("Games: %d   Best game: %d   Average: %.1f   Last played: %s",
		a.Sessions, a.BestSession, a.AvgScore, a.LastPlayedAt.Local().Format("2006-01-02"))
}

// renderWideLayout renders the table with a sidebar listing activities.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Activities\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, info := range m.activities {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color.Hex()))
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true)
		}
		sidebar.WriteString(style.Render(cursor + info.Label))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders activity tabs above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.activities))
	for i, info := range m.activities {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(info.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + info.Title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nPlay a game to fill this page!")
	}
	return m.table.View()
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunHistory runs the interactive history view.
func RunHistory(src HistorySource, p player.ID, activity string, width, height int) error {
	model := NewHistoryModel(src, p, activity, width, height)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := prog.Run()
	return err
}
