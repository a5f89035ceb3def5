package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/learning-adventure/internal/input"
)

// KeyMap holds the bindings shown in the help line. Only Quit is handled
// by the platform; the rest are passed on to the screens as events.
type KeyMap struct {
	Choose key.Binding
	Submit key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Submit, k.Delete, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Choose, k.Submit, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9/click", "choose"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/answer"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// TranslateKey converts a key message into input events. Pasted text
// arrives as one message and yields one event per rune.
func TranslateKey(msg tea.KeyMsg) []input.Event {
	switch msg.Type {
	case tea.KeyEnter:
		return []input.Event{input.KeyEvent(input.KeyEnter)}
	case tea.KeyBackspace:
		return []input.Event{input.KeyEvent(input.KeyBackspace)}
	case tea.KeyEsc:
		return []input.Event{input.KeyEvent(input.KeyEscape)}
	case tea.KeyTab:
		return []input.Event{input.KeyEvent(input.KeyTab)}
	case tea.KeySpace:
		return []input.Event{input.RuneEvent(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		events := make([]input.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, input.RuneEvent(r))
		}
		return events
	}
	return nil
}

// TranslateMouse converts a mouse message into a pointer event. Only the
// left button presses; any release lets go.
func TranslateMouse(msg tea.MouseMsg) (input.Event, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return input.Event{}, false
		}
		return input.PointerEvent(input.KindPointerDown, msg.X, msg.Y), true
	case tea.MouseActionRelease:
		return input.PointerEvent(input.KindPointerUp, msg.X, msg.Y), true
	case tea.MouseActionMotion:
		return input.PointerEvent(input.KindPointerMove, msg.X, msg.Y), true
	}
	return input.Event{}, false
}
