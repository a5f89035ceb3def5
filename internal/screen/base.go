package screen

import (
	"github.com/vovakirdan/learning-adventure/internal/control"
	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
)

// Shared layout.
const (
	titleY       = 2
	buttonHeight = 3
	backWidth    = 10
)

// base holds what all screens share: dependencies, size and the back control.
type base struct {
	deps   Deps
	width  int
	height int
	back   *control.Button

	// settled turns true once the pointer has been seen released. Until
	// then a press still held from the previous screen is not polled, so
	// it cannot click a control that appeared under it.
	settled bool
}

func newBase(deps Deps, backLabel string) base {
	deps = deps.WithDefaults()
	b := base{
		deps:   deps,
		width:  deps.Config.ScreenW,
		height: deps.Config.ScreenH,
		back:   control.New(core.NewRect(1, 1, backWidth, buttonHeight), backLabel, core.ColorWhite),
	}
	b.back.HoverColor = core.ColorPurple
	return b
}

func (b *base) resize(width, height int) {
	b.width, b.height = width, height
}

// pointer reports whether controls may be polled this tick.
func (b *base) pointer(p input.Pointer) bool {
	if !b.settled {
		if p.Pressed {
			return false
		}
		b.settled = true
	}
	return true
}

// centered returns a rect of width w centered horizontally at row y.
func (b *base) centered(y, w, h int) core.Rect {
	return core.CenteredRect(b.width, y, w, h)
}

// drawFrame paints the background, back control and title.
func (b *base) drawFrame(dst *core.Surface, title string) {
	dst.Fill(core.ColorLightBlue)
	b.back.Render(dst)
	dst.DrawTextCentered(titleY, title, core.ColorPurple)
}

func (b *base) lines(dst *core.Surface, y int, lines []string, fg core.Color) {
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line, fg)
	}
}
