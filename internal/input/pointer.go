package input

import "github.com/vovakirdan/learning-adventure/internal/core"

// Pointer is the pointer state a control is polled with for one tick.
type Pointer struct {
	Pos     core.Point
	Pressed bool
}

// Tracker folds pointer events into the Pointer value seen by a tick.
//
// Events are drained once per tick, so a press and its release can both
// arrive before the next update. The tracker latches a press that happened
// during the tick and reports it for that tick at the press position; the
// release becomes visible on the following tick.
type Tracker struct {
	pos       core.Point
	pressed   bool
	latched   bool
	latchedAt core.Point
}

// NewTracker returns a tracker with the pointer released at (-1, -1),
// which no control contains.
func NewTracker() *Tracker {
	return &Tracker{pos: core.Pt(-1, -1)}
}

// Apply folds one event into the tracker. Non-pointer events are ignored.
func (t *Tracker) Apply(ev Event) {
	if !ev.IsPointer() {
		return
	}
	t.pos = ev.Pos

	switch ev.Kind {
	case KindPointerDown:
		t.pressed = true
		if !t.latched {
			t.latched = true
			t.latchedAt = ev.Pos
		}
	case KindPointerUp:
		t.pressed = false
	}
}

// Frame returns the pointer state for the current tick.
func (t *Tracker) Frame() Pointer {
	if t.latched {
		return Pointer{Pos: t.latchedAt, Pressed: true}
	}
	return Pointer{Pos: t.pos, Pressed: t.pressed}
}

// EndTick clears the per-tick press latch.
func (t *Tracker) EndTick() {
	t.latched = false
}

// Current returns the raw pointer state, ignoring the latch.
func (t *Tracker) Current() Pointer {
	return Pointer{Pos: t.pos, Pressed: t.pressed}
}
