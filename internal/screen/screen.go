// Package screen defines the Screen capability and its three variants:
// PlayerSelect, Menu and Game. Screens never build or hold other screens;
// they ask for a change through Deps.Navigate and the navigator performs it.
package screen

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/ledger"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/session"
)

// Kind identifies a screen variant.
type Kind int

const (
	KindPlayerSelect Kind = iota
	KindMenu
	KindGame
)

func (k Kind) String() string {
	switch k {
	case KindPlayerSelect:
		return "player_select"
	case KindMenu:
		return "menu"
	case KindGame:
		return "game"
	default:
		return "unknown"
	}
}

// Params are the parameters of a transition.
type Params struct {
	Player   player.ID
	Activity string
}

// Transition is a request to replace the current screen.
type Transition struct {
	Target Kind
	Params Params
}

// Screen is the capability every screen variant implements.
type Screen interface {
	Kind() Kind

	// HandleInput consumes one discrete event. false asks the application
	// to exit.
	HandleInput(ev input.Event) bool

	// Update advances the screen by one tick with the tick's pointer state.
	// false asks the application to exit; a non-nil error is a fault and
	// the tick is skipped.
	Update(p input.Pointer) (bool, error)

	// Render draws the screen. It must not change state.
	Render(dst *core.Surface) error

	// OnBack runs the back action shared by the back control and Esc.
	OnBack() bool

	// Resize lays the screen's controls out for a new surface size.
	Resize(width, height int)

	// Close releases the screen when it is replaced or the application
	// stops. Game screens flush their session here.
	Close() error
}

// SessionRecorder stores finished sessions. Implemented by storage.Store.
type SessionRecorder interface {
	SaveSession(sum session.Summary) error
	BestSession(p player.ID, activity string) (int, error)
}

// Deps are the collaborators handed to every screen.
type Deps struct {
	Navigate func(Transition)
	Logger   *log.Logger
	Clock    core.Clock
	Ledgers  *ledger.Store
	History  SessionRecorder // nil disables session history
	Rand     *rand.Rand
	Config   core.RuntimeConfig
}

// WithDefaults fills unset dependencies so screens never check for nil.
func (d Deps) WithDefaults() Deps {
	if d.Navigate == nil {
		d.Navigate = func(Transition) {}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Clock == nil {
		d.Clock = core.SystemClock{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if d.Config.Feedback <= 0 {
		d.Config.Feedback = core.DefaultConfig().Feedback
	}
	return d
}
