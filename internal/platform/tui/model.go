package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/navigator"
)

// helpHeight is the number of rows reserved below the surface.
const helpHeight = 1

// Model is the Bubble Tea model running the navigator.
//
// Key and mouse messages are queued as input events and handed to the
// navigator in arrival order on the next tick, followed by an update and
// a render into the surface. View only converts the last rendered surface.
type Model struct {
	nav      *navigator.Navigator
	surface  *core.Surface
	config   core.RuntimeConfig
	pending  []input.Event
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model for nav sized from cfg.
func NewModel(nav *navigator.Navigator, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	w, ht := cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)
	nav.Resize(w, ht)

	return Model{
		nav:     nav,
		surface: core.NewSurface(w, ht),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.pending = append(m.pending, TranslateKey(msg)...)
		return m, nil

	case tea.MouseMsg:
		if ev, ok := TranslateMouse(msg); ok {
			m.pending = append(m.pending, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := msg.Width, max(msg.Height-helpHeight, 1)
	m.config.ScreenW, m.config.ScreenH = w, h
	m.surface.Resize(w, h)
	m.nav.Resize(w, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one loop iteration.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	events := m.pending
	m.pending = nil

	if !m.nav.Tick(events) {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.nav.Skipped() {
		m.surface.Clear()
		m.nav.Render(m.surface)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the last frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	helpLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))
	return RenderSurface(m.surface) + "\n" + helpLine
}

// Run starts the Bubble Tea program and closes the navigator when it ends,
// flushing any session still running.
func Run(nav *navigator.Navigator, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(nav, cfg),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	_, runErr := p.Run()
	return errors.Join(runErr, nav.Close())
}
