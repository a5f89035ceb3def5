package placeholder

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/registry"
)

func TestRegistered(t *testing.T) {
	tests := []struct {
		id    string
		label string
		color core.Color
	}{
		{"math", "Math Magic!", core.ColorMintGreen},
		{"science", "Science Safari!", core.ColorPurple},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			info, ok := registry.Lookup(tc.id)
			if !ok {
				t.Fatalf("%s not registered", tc.id)
			}
			if info.Label != tc.label || info.Color != tc.color {
				t.Fatalf("info = %+v", info)
			}
			a, err := registry.Create(tc.id, registry.Options{Player: player.Ellie})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if a.ID() != tc.id {
				t.Fatalf("ID = %q", a.ID())
			}
		})
	}
}

func TestFinishesOnEnter(t *testing.T) {
	a := New("math", "Math Magic", []string{"soon"})
	a.Setup()

	if pts := a.HandleInput(input.RuneEvent('x')); pts != 0 || a.Done() {
		t.Fatal("rune input must not finish or score")
	}
	if pts := a.HandleInput(input.KeyEvent(input.KeyEnter)); pts != 0 {
		t.Fatalf("points = %d", pts)
	}
	if !a.Done() {
		t.Fatal("expected Done after Enter")
	}

	a.Setup()
	if a.Done() {
		t.Fatal("Setup must re-arm")
	}
}

func TestRenderShowsLines(t *testing.T) {
	a := New("science", "Science Safari", []string{"Science Safari is coming soon!"})
	dst := core.NewSurface(50, 10)
	a.Render(dst, dst.Bounds(), time.Time{})
	if !strings.Contains(dst.String(), "coming soon") {
		t.Fatalf("render:\n%s", dst.String())
	}
}
