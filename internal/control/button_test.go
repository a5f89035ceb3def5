package control

import (
	"testing"

	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
)

var (
	inside  = core.Pt(12, 6)
	outside = core.Pt(0, 0)
)

func newTestButton() *Button {
	return New(core.NewRect(10, 5, 10, 3), "Ellie", core.ColorPink)
}

func ptr(p core.Point, pressed bool) input.Pointer {
	return input.Pointer{Pos: p, Pressed: pressed}
}

func TestButtonHoldFiresOnce(t *testing.T) {
	b := newTestButton()

	clicks := 0
	for i := 0; i < 30; i++ {
		if b.Poll(ptr(inside, true)) {
			clicks++
		}
	}
	if clicks != 1 {
		t.Errorf("holding for 30 ticks fired %d clicks, expected 1", clicks)
	}
}

func TestButtonSequences(t *testing.T) {
	tests := []struct {
		name   string
		frames []input.Pointer
		clicks []bool
	}{
		{
			name:   "press release press",
			frames: []input.Pointer{ptr(inside, true), ptr(inside, false), ptr(inside, true)},
			clicks: []bool{true, false, true},
		},
		{
			name:   "press outside never fires",
			frames: []input.Pointer{ptr(outside, true), ptr(outside, true), ptr(outside, false)},
			clicks: []bool{false, false, false},
		},
		{
			name:   "drag in while held does not fire",
			frames: []input.Pointer{ptr(outside, true), ptr(inside, true), ptr(inside, false)},
			clicks: []bool{false, false, false},
		},
		{
			name:   "release outside re-arms",
			frames: []input.Pointer{ptr(inside, true), ptr(outside, true), ptr(outside, false), ptr(inside, true)},
			clicks: []bool{true, false, false, true},
		},
		{
			name:   "hover only",
			frames: []input.Pointer{ptr(inside, false), ptr(inside, false)},
			clicks: []bool{false, false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestButton()
			for i, f := range tc.frames {
				if got := b.Poll(f); got != tc.clicks[i] {
					t.Errorf("frame %d: Poll(%+v) = %v, expected %v", i, f, got, tc.clicks[i])
				}
			}
		})
	}
}

func TestButtonClicksNeverExceedPressEdges(t *testing.T) {
	// Deterministic pseudo-random walk over press/hover combinations
	b := newTestButton()
	seed := uint32(7)
	prev := false
	edges, clicks := 0, 0

	for i := 0; i < 500; i++ {
		seed = seed*1664525 + 1013904223
		pressed := seed&1 == 1
		pos := outside
		if seed&2 == 2 {
			pos = inside
		}
		if pressed && !prev {
			edges++
		}
		prev = pressed
		if b.Poll(ptr(pos, pressed)) {
			clicks++
		}
	}

	if clicks > edges {
		t.Errorf("clicks (%d) exceeded press edges (%d)", clicks, edges)
	}
	if clicks == 0 {
		t.Error("expected at least one click in the walk")
	}
}

func TestButtonState(t *testing.T) {
	b := newTestButton()

	b.Poll(ptr(outside, false))
	if b.State() != StateIdle {
		t.Errorf("State() = %v, expected Idle", b.State())
	}
	b.Poll(ptr(inside, false))
	if b.State() != StateHovered {
		t.Errorf("State() = %v, expected Hovered", b.State())
	}
	b.Poll(ptr(inside, true))
	if b.State() != StatePressed {
		t.Errorf("State() = %v, expected Pressed", b.State())
	}
}

func TestButtonRender(t *testing.T) {
	b := newTestButton()
	s := core.NewSurface(30, 10)

	b.Render(s)
	if s.GetCell(10, 5).BG != core.ColorPink {
		t.Error("button fill missing")
	}
	if s.GetCell(10, 5).Rune == '╭' {
		t.Error("outline should only be drawn while hovered")
	}
	if got := s.Row(6)[12:17]; got != "Ellie" {
		t.Errorf("label row = %q, expected Ellie centered", s.Row(6))
	}

	b.Poll(ptr(inside, false))
	before := b.State()
	b.Render(s)
	if s.GetCell(10, 5).Rune != '╭' {
		t.Error("hover outline missing")
	}
	if b.State() != before {
		t.Error("Render must not change state")
	}
}
