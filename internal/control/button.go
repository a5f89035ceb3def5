// Package control implements clickable regions with hover and
// edge-triggered click detection.
package control

import (
	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
)

// State is the visual state of a control.
type State int

const (
	StateIdle State = iota
	StateHovered
	StatePressed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHovered:
		return "Hovered"
	case StatePressed:
		return "Pressed"
	default:
		return "Unknown"
	}
}

// Button is a labelled rectangle that reports a click once per press.
type Button struct {
	Bounds     core.Rect
	Label      string
	Color      core.Color // Background fill
	HoverColor core.Color // Outline drawn while hovered
	TextColor  core.Color
	Rounded    bool

	state      State
	wasPressed bool
}

// New creates a button with the default hover outline and label colors.
func New(bounds core.Rect, label string, color core.Color) *Button {
	return &Button{
		Bounds:     bounds,
		Label:      label,
		Color:      color,
		HoverColor: core.ColorWhite,
		TextColor:  core.ColorBlack,
		Rounded:    true,
	}
}

// Poll updates the hover state from the pointer and reports whether this
// tick is a click: the pointer is over the button and the button went from
// released to pressed. The press latch follows the pointer button alone, so
// releasing anywhere re-arms the button and holding never repeats a click.
func (b *Button) Poll(p input.Pointer) bool {
	hovered := b.Bounds.Contains(p.Pos)
	clicked := hovered && p.Pressed && !b.wasPressed
	b.wasPressed = p.Pressed

	switch {
	case hovered && p.Pressed:
		b.state = StatePressed
	case hovered:
		b.state = StateHovered
	default:
		b.state = StateIdle
	}
	return clicked
}

// State returns the visual state computed by the last Poll.
func (b *Button) State() State {
	return b.state
}

// Hovered reports whether the pointer was over the button at the last Poll.
func (b *Button) Hovered() bool {
	return b.state != StateIdle
}

// Render draws the fill, the hover outline when hovered, then the label.
func (b *Button) Render(dst *core.Surface) {
	dst.FillRect(b.Bounds, b.Color)
	if b.Hovered() {
		dst.DrawBorder(b.Bounds, b.HoverColor, b.Rounded)
	}
	dst.DrawTextIn(b.Bounds, b.Label, b.TextColor)
}
