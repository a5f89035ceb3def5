// Package placeholder provides the Math and Science activities, which show
// fixed "coming soon" content and finish when the player presses Enter.
package placeholder

import (
	"fmt"
	"time"

	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/registry"
)

// Activity is a stub activity with static content.
type Activity struct {
	id    string
	title string
	lines []string
	done  bool
}

// New creates a placeholder activity.
func New(id, title string, lines []string) *Activity {
	return &Activity{id: id, title: title, lines: lines}
}

func (a *Activity) ID() string { return a.id }

// Setup re-arms the activity.
func (a *Activity) Setup() { a.done = false }

// HandleInput finishes on Enter. It never awards points.
func (a *Activity) HandleInput(ev input.Event) int {
	if ev.IsKey(input.KeyEnter) {
		a.done = true
	}
	return 0
}

func (a *Activity) Update(time.Time) {}

func (a *Activity) Done() bool { return a.done }

// Render draws the fixed lines centered in area.
func (a *Activity) Render(dst *core.Surface, area core.Rect, _ time.Time) {
	y := area.Y + (area.H-len(a.lines)-2)/2
	for i, line := range a.lines {
		dst.DrawTextIn(core.NewRect(area.X, y+i, area.W, 1), line, core.ColorBlack)
	}
	dst.DrawTextIn(core.NewRect(area.X, y+len(a.lines)+1, area.W, 1), "Press Enter to finish", core.ColorGray)
}

func (a *Activity) Instructions(p player.ID) []string {
	return []string{
		fmt.Sprintf("%s is still being built!", a.title),
		fmt.Sprintf("Check back soon, %s.", p.Name()),
	}
}

func init() {
	registry.Register(registry.Info{
		ID:    "math",
		Title: "Math",
		Label: "Math Magic!",
		Color: core.ColorMintGreen,
		Order: 2,
		Factory: func(registry.Options) (registry.Activity, error) {
			return New("math", "Math Magic", []string{
				"Math Magic is coming soon!",
				"Counting, adding and more puzzles are on the way.",
			}), nil
		},
	})
	registry.Register(registry.Info{
		ID:    "science",
		Title: "Science",
		Label: "Science Safari!",
		Color: core.ColorPurple,
		Order: 3,
		Factory: func(registry.Options) (registry.Activity, error) {
			return New("science", "Science Safari", []string{
				"Science Safari is coming soon!",
				"Animals, plants and experiments are on the way.",
			}), nil
		},
	})
}
