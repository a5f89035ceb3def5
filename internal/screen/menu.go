package screen

import (
	"fmt"

	"github.com/vovakirdan/learning-adventure/internal/control"
	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/registry"
)

const (
	menuButtonWidth = 30
	menuTop         = 5
	menuSpacing     = 1
)

// menuEntry is one activity button and the score shown beside it.
type menuEntry struct {
	activity string
	button   *control.Button
	today    int
}

// Menu lists the registered activities for the chosen player.
type Menu struct {
	base
	player  player.ID
	entries []menuEntry
}

// NewMenu creates the activity menu for p. Today's score of each activity
// is read from its ledger once, here.
func NewMenu(deps Deps, p player.ID) (*Menu, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("screen: menu needs a player, got %q", p)
	}
	m := &Menu{base: newBase(deps, "Back"), player: p}

	for _, info := range registry.List() {
		m.entries = append(m.entries, menuEntry{
			activity: info.ID,
			button:   control.New(core.Rect{}, info.Label, info.Color),
			today:    m.todayScore(info.ID),
		})
	}
	m.layout()
	return m, nil
}

func (m *Menu) todayScore(activity string) int {
	if m.deps.Ledgers == nil {
		return 0
	}
	l, err := m.deps.Ledgers.Load(m.player, activity)
	if err != nil {
		m.deps.Logger.Warn("ledger load failed", "player", m.player, "activity", activity, "path", l.Path(), "error", err)
	}
	return l.TodayScore()
}

func (m *Menu) Kind() Kind { return KindMenu }

// Player returns the player the menu was built for.
func (m *Menu) Player() player.ID { return m.player }

func (m *Menu) layout() {
	y := menuTop
	for _, e := range m.entries {
		e.button.Bounds = m.centered(y, menuButtonWidth, buttonHeight)
		y += buttonHeight + menuSpacing
	}
}

func (m *Menu) Resize(width, height int) {
	m.resize(width, height)
	m.layout()
}

// HandleInput picks an activity with 1..n; Esc goes back.
func (m *Menu) HandleInput(ev input.Event) bool {
	if ev.IsKey(input.KeyEscape) {
		return m.OnBack()
	}
	if ev.Kind == input.KindRune {
		if i := int(ev.Rune - '1'); i >= 0 && i < len(m.entries) {
			m.choose(m.entries[i].activity)
		}
	}
	return true
}

func (m *Menu) Update(p input.Pointer) (bool, error) {
	if !m.pointer(p) {
		return true, nil
	}
	if m.back.Poll(p) {
		return m.OnBack(), nil
	}
	for _, e := range m.entries {
		if e.button.Poll(p) {
			m.choose(e.activity)
		}
	}
	return true, nil
}

func (m *Menu) choose(activity string) {
	m.deps.Navigate(Transition{
		Target: KindGame,
		Params: Params{Player: m.player, Activity: activity},
	})
}

func (m *Menu) Render(dst *core.Surface) error {
	m.drawFrame(dst, fmt.Sprintf("%s's Learning Adventure!", m.player.Name()))
	for _, e := range m.entries {
		e.button.Render(dst)
		b := e.button.Bounds
		dst.DrawText(b.Right()+2, b.Y+b.H/2, fmt.Sprintf("Today: %d", e.today), core.ColorBlack)
	}
	return nil
}

// OnBack returns to player selection.
func (m *Menu) OnBack() bool {
	m.deps.Navigate(Transition{Target: KindPlayerSelect})
	return true
}

func (m *Menu) Close() error { return nil }
