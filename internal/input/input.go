// Package input defines the discrete input events the platform layer
// delivers to screens and the per-tick pointer state controls are polled with.
package input

import "github.com/vovakirdan/learning-adventure/internal/core"

// Kind identifies the type of an input event.
type Kind int

const (
	KindNone        Kind = iota
	KindKey              // A non-printable key (Enter, Backspace, Esc, ...)
	KindRune             // A printable character, including space
	KindPointerMove      // Pointer moved, button state unchanged
	KindPointerDown      // Primary button pressed
	KindPointerUp        // Primary button released
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindKey:
		return "Key"
	case KindRune:
		return "Rune"
	case KindPointerMove:
		return "PointerMove"
	case KindPointerDown:
		return "PointerDown"
	case KindPointerUp:
		return "PointerUp"
	default:
		return "Unknown"
	}
}

// Key is a non-printable key carried by a KindKey event.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyTab
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	default:
		return "Unknown"
	}
}

// Event is one discrete input event, delivered in arrival order.
type Event struct {
	Kind Kind
	Key  Key        // Set for KindKey
	Rune rune       // Set for KindRune
	Pos  core.Point // Set for pointer events
}

// KeyEvent builds a KindKey event.
func KeyEvent(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// RuneEvent builds a KindRune event.
func RuneEvent(r rune) Event {
	return Event{Kind: KindRune, Rune: r}
}

// PointerEvent builds a pointer event of the given kind at (x, y).
func PointerEvent(kind Kind, x, y int) Event {
	return Event{Kind: kind, Pos: core.Pt(x, y)}
}

// IsKey reports whether the event is the given non-printable key.
func (e Event) IsKey(k Key) bool {
	return e.Kind == KindKey && e.Key == k
}

// IsPointer reports whether the event carries a pointer position.
func (e Event) IsPointer() bool {
	return e.Kind == KindPointerMove || e.Kind == KindPointerDown || e.Kind == KindPointerUp
}
