package spelling

import (
	"time"

	"github.com/vovakirdan/learning-adventure/internal/core"
)

const (
	inputBoxWidth  = 40
	inputBoxHeight = 3
)

// Render draws the sentence, the input box and any visible feedback,
// vertically centered in area.
func (s *Spelling) Render(dst *core.Surface, area core.Rect, now time.Time) {
	mid := area.Y + area.H/2

	line := func(y int, text string, fg core.Color) {
		dst.DrawTextIn(core.NewRect(area.X, y, area.W, 1), text, fg)
	}

	line(mid-3, s.current.Sentence, core.ColorBlack)

	w := core.Clamp(inputBoxWidth, 4, area.W-2)
	box := core.NewRect(area.X+(area.W-w)/2, mid-1, w, inputBoxHeight)
	dst.FillRect(box, core.ColorWhite)
	dst.DrawBorder(box, core.ColorPurple, true)
	dst.DrawTextIn(box, string(s.input)+"_", core.ColorBlack)

	if msg := s.Feedback(now); msg != "" {
		fg := core.ColorPink
		if s.correct {
			fg = core.ColorMintGreen
		}
		line(mid+3, msg, fg)
	}
}
