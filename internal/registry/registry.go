// Package registry provides a global registry of activities.
// Activities register themselves in init() functions, allowing the menu and
// the navigator to discover and instantiate them without hardcoded imports.
package registry

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/player"
)

// Activity is the strategy a Game screen delegates to while a session is
// active. Activities hold pure game logic; the screen owns the session,
// the score flush and navigation.
type Activity interface {
	// ID returns the activity type, e.g. "spelling". Used in save file
	// names and transition parameters.
	ID() string

	// Setup resets the activity for a new session.
	Setup()

	// HandleInput consumes one discrete input event and returns the points
	// it earned. Unusable input is ignored.
	HandleInput(ev input.Event) int

	// Update advances timers. now comes from the screen's clock.
	Update(now time.Time)

	// Render draws the activity into area. It must not change state.
	Render(dst *core.Surface, area core.Rect, now time.Time)

	// Instructions returns the lines shown before the session starts.
	Instructions(p player.ID) []string

	// Done reports whether the activity reached its end condition.
	Done() bool
}

// Options carries what a factory needs to build an activity.
type Options struct {
	Player   player.ID
	Rand     *rand.Rand
	Clock    core.Clock
	Logger   *log.Logger
	Feedback time.Duration
}

// Factory creates a new instance of an activity.
type Factory func(opts Options) (Activity, error)

// Info describes a registered activity.
type Info struct {
	ID      string     // Activity type, e.g. "spelling"
	Title   string     // Display name, e.g. "Spelling"
	Label   string     // Menu button label, e.g. "Spelling Fun!"
	Color   core.Color // Menu button color
	Order   int        // Menu position, lowest first
	Factory Factory
}

var (
	activities = make(map[string]Info)
	mu         sync.RWMutex
)

// Register adds an activity to the registry.
// Typically called from an activity's init() function.
// Panics if an activity with the same ID is already registered.
func Register(info Info) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" || info.Factory == nil {
		panic("registry: activity needs an id and a factory")
	}
	if _, exists := activities[info.ID]; exists {
		panic(fmt.Sprintf("registry: activity %q already registered", info.ID))
	}

	activities[info.ID] = info
}

// List returns all registered activities in menu order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(activities))
	for _, info := range activities {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the registered info for id.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := activities[id]
	return info, ok
}

// Create instantiates a new activity by its ID.
// Returns an error if the activity is not registered or its factory fails.
func Create(id string, opts Options) (Activity, error) {
	info, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown activity %q", id)
	}

	a, err := info.Factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return a, nil
}

// Exists checks if an activity with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
