package screen

import (
	"github.com/vovakirdan/learning-adventure/internal/control"
	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/player"
)

const (
	playerButtonWidth = 24
	playerSpacing     = 2
)

// PlayerSelect is the root screen: one control per player. Going back from
// here exits the application.
type PlayerSelect struct {
	base
	buttons []*control.Button
	players []player.ID
}

// NewPlayerSelect creates the player selection screen.
func NewPlayerSelect(deps Deps) *PlayerSelect {
	s := &PlayerSelect{
		base:    newBase(deps, "Quit"),
		players: player.All,
	}
	for _, p := range s.players {
		s.buttons = append(s.buttons, control.New(core.Rect{}, p.Name(), p.Color()))
	}
	s.layout()
	return s
}

func (s *PlayerSelect) Kind() Kind { return KindPlayerSelect }

func (s *PlayerSelect) layout() {
	total := len(s.buttons)*buttonHeight + (len(s.buttons)-1)*playerSpacing
	y := (s.height - total) / 2
	for _, b := range s.buttons {
		b.Bounds = s.centered(y, playerButtonWidth, buttonHeight)
		y += buttonHeight + playerSpacing
	}
}

// Resize re-centers the player controls.
func (s *PlayerSelect) Resize(width, height int) {
	s.resize(width, height)
	s.layout()
}

// HandleInput selects a player with 1 or 2; Esc quits.
func (s *PlayerSelect) HandleInput(ev input.Event) bool {
	if ev.IsKey(input.KeyEscape) {
		return s.OnBack()
	}
	if ev.Kind == input.KindRune {
		if i := int(ev.Rune - '1'); i >= 0 && i < len(s.players) {
			s.choose(s.players[i])
		}
	}
	return true
}

func (s *PlayerSelect) Update(p input.Pointer) (bool, error) {
	if !s.pointer(p) {
		return true, nil
	}
	if s.back.Poll(p) {
		return s.OnBack(), nil
	}
	for i, b := range s.buttons {
		if b.Poll(p) {
			s.choose(s.players[i])
		}
	}
	return true, nil
}

func (s *PlayerSelect) choose(p player.ID) {
	s.deps.Navigate(Transition{Target: KindMenu, Params: Params{Player: p}})
}

func (s *PlayerSelect) Render(dst *core.Surface) error {
	s.drawFrame(dst, "Who's Playing Today?")
	for _, b := range s.buttons {
		b.Render(dst)
	}
	return nil
}

// OnBack signals application exit.
func (s *PlayerSelect) OnBack() bool {
	s.deps.Logger.Info("quit requested")
	return false
}

func (s *PlayerSelect) Close() error { return nil }
