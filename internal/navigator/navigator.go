// Package navigator owns the current screen. It dispatches input and ticks
// to it, applies the transitions it requests and keeps a faulty screen from
// taking the whole loop down.
package navigator

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/registry"
	"github.com/vovakirdan/learning-adventure/internal/screen"
)

// DefaultFaultLimit is the number of consecutive faulty ticks after which
// the navigator falls back to a fresh player selection.
const DefaultFaultLimit = 3

var (
	// ErrUnknownTarget is returned for a transition to a screen kind that
	// does not exist.
	ErrUnknownTarget = errors.New("navigator: unknown target")
	// ErrMissingPlayer is returned when a transition needs a player and has none.
	ErrMissingPlayer = errors.New("navigator: missing player")
	// ErrUnknownActivity is returned for a game transition to an activity
	// that is not registered.
	ErrUnknownActivity = errors.New("navigator: unknown activity")
	// ErrPanic wraps a panic recovered from a screen.
	ErrPanic = errors.New("navigator: screen panicked")
)

// Navigator runs the screen state machine. It is not safe for concurrent
// use; the platform calls it from a single goroutine.
type Navigator struct {
	deps    screen.Deps
	logger  *log.Logger
	current screen.Screen
	pending *screen.Transition
	tracker *input.Tracker

	width, height int

	limit   int
	faults  int  // Consecutive faulty ticks
	faulted bool // Current tick has faulted
}

// New creates a navigator showing the player selection screen.
// deps.Navigate is replaced with the navigator's own request queue.
func New(deps screen.Deps) *Navigator {
	deps = deps.WithDefaults()
	n := &Navigator{
		logger:  deps.Logger,
		tracker: input.NewTracker(),
		width:   deps.Config.ScreenW,
		height:  deps.Config.ScreenH,
		limit:   deps.Config.FaultLimit,
	}
	if n.limit <= 0 {
		n.limit = DefaultFaultLimit
	}
	deps.Navigate = n.request
	n.deps = deps
	n.current = screen.NewPlayerSelect(n.deps)
	n.current.Resize(n.width, n.height)
	return n
}

// Current returns the screen being shown.
func (n *Navigator) Current() screen.Screen {
	return n.current
}

// request queues a transition. Only the first request of a dispatch is kept.
func (n *Navigator) request(t screen.Transition) {
	if n.pending != nil {
		n.logger.Warn("navigation ignored", "reason", "transition already pending",
			"to", t.Target, "player", t.Params.Player, "activity", t.Params.Activity)
		return
	}
	n.pending = &t
}

// Tick runs one loop iteration: every event in arrival order, then one
// update with the tick's pointer state. It returns false when the
// application should exit.
func (n *Navigator) Tick(events []input.Event) bool {
	if !n.faulted {
		n.faults = 0
	}
	n.faulted = false
	defer n.tracker.EndTick()

	for i, ev := range events {
		n.tracker.Apply(ev)
		if ev.Kind == input.KindPointerMove {
			continue
		}

		var keep bool
		err := n.guard(func() error {
			keep = n.current.HandleInput(ev)
			return nil
		})
		if err != nil {
			n.fault("input", err)
			// The rest of the tick is not dispatched, but the pointer
			// must still see its releases.
			for _, rest := range events[i+1:] {
				n.tracker.Apply(rest)
			}
			return true
		}
		if !keep {
			n.logger.Info("exit requested", "screen", n.current.Kind())
			return false
		}
		n.applyPending()
	}

	var keep bool
	err := n.guard(func() error {
		var err error
		keep, err = n.current.Update(n.tracker.Frame())
		return err
	})
	if err != nil {
		n.fault("update", err)
		return true
	}
	if !keep {
		n.logger.Info("exit requested", "screen", n.current.Kind())
		return false
	}
	n.applyPending()
	return true
}

// Skipped reports whether the last Tick faulted on a screen that is still
// current. The platform does not render a skipped tick.
func (n *Navigator) Skipped() bool {
	return n.faulted
}

// Render draws the current screen into dst. A fault counts against the
// current tick.
func (n *Navigator) Render(dst *core.Surface) {
	err := n.guard(func() error {
		return n.current.Render(dst)
	})
	if err != nil {
		n.fault("render", err)
	}
	if n.pending != nil {
		n.logger.Warn("navigation ignored", "reason", "requested during render", "to", n.pending.Target)
		n.pending = nil
	}
}

// Resize forwards a new surface size to the current screen.
func (n *Navigator) Resize(width, height int) {
	n.width, n.height = width, height
	n.current.Resize(width, height)
}

// Close releases the current screen, flushing any running session.
func (n *Navigator) Close() error {
	if n.current == nil {
		return nil
	}
	err := n.guard(n.current.Close)
	n.current = nil
	if err != nil {
		return fmt.Errorf("navigator: close: %w", err)
	}
	return nil
}

// guard runs fn and turns a panic into an error.
func (n *Navigator) guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn()
}

// fault records a faulty dispatch. A tick counts once however many of its
// dispatches fault; reaching the limit resets to player selection.
func (n *Navigator) fault(stage string, err error) {
	n.pending = nil
	if !n.faulted {
		n.faulted = true
		n.faults++
	}
	n.logger.Error("screen fault", "screen", n.current.Kind(), "stage", stage,
		"fault", err, "consecutive", n.faults)

	if n.faults >= n.limit {
		n.logger.Warn("fault limit reached, returning to player select",
			"screen", n.current.Kind(), "limit", n.limit)
		n.replace(screen.NewPlayerSelect(n.deps), screen.Transition{Target: screen.KindPlayerSelect})
	}
}

// applyPending performs the queued transition, if any. Invalid requests
// are logged and the current screen stays.
func (n *Navigator) applyPending() {
	if n.pending == nil {
		return
	}
	t := *n.pending
	n.pending = nil

	next, err := n.build(t)
	if err != nil {
		n.logger.Warn("navigation ignored", "from", n.current.Kind(), "to", t.Target,
			"player", t.Params.Player, "activity", t.Params.Activity, "error", err)
		return
	}
	n.replace(next, t)
}

func (n *Navigator) build(t screen.Transition) (screen.Screen, error) {
	switch t.Target {
	case screen.KindPlayerSelect:
		return screen.NewPlayerSelect(n.deps), nil
	case screen.KindMenu:
		if !t.Params.Player.Valid() {
			return nil, ErrMissingPlayer
		}
		return screen.NewMenu(n.deps, t.Params.Player)
	case screen.KindGame:
		if !t.Params.Player.Valid() {
			return nil, ErrMissingPlayer
		}
		if !registry.Exists(t.Params.Activity) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, t.Params.Activity)
		}
		return screen.NewGame(n.deps, t.Params.Player, t.Params.Activity)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownTarget, t.Target)
	}
}

// replace closes the outgoing screen and installs next.
func (n *Navigator) replace(next screen.Screen, t screen.Transition) {
	from := n.current.Kind()
	if err := n.guard(n.current.Close); err != nil {
		n.logger.Warn("screen close failed", "screen", from, "error", err)
	}
	n.current = next
	n.current.Resize(n.width, n.height)
	n.faults = 0
	n.faulted = false
	n.logger.Info("screen transition", "from", from, "to", t.Target,
		"player", t.Params.Player, "activity", t.Params.Activity)
}
