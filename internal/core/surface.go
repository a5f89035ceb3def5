package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one character position on the surface.
// A zero Rune marks the trailing half of a double-width character.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Surface is a 2D cell buffer the screens draw into. The platform layer
// turns it into terminal output once per tick.
type Surface struct {
	width  int
	height int
	cells  [][]Cell
}

// NewSurface creates a blank surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Surface) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the surface width in cells.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in cells.
func (s *Surface) Height() int {
	return s.height
}

// Bounds returns the rectangle covering the whole surface.
func (s *Surface) Bounds() Rect {
	return Rect{W: s.width, H: s.height}
}

// Resize changes the surface dimensions and clears it.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear resets every cell to a blank with default colors.
func (s *Surface) Clear() {
	s.Fill(ColorDefault)
}

// Fill blanks every cell and paints the background.
func (s *Surface) Fill(bg Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', BG: bg}
		}
	}
}

// SetCell places a cell at (x, y). Out-of-bounds coordinates are ignored.
func (s *Surface) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at (x, y), or a blank for out-of-bounds coordinates.
func (s *Surface) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// Set writes a rune with the given foreground, keeping the background.
func (s *Surface) Set(x, y int, r rune, fg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].FG = fg
}

// FillRect paints the background of every cell in r and blanks its runes.
func (s *Surface) FillRect(r Rect, bg Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: ' ', BG: bg})
		}
	}
}

var (
	squareBorder  = [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	roundedBorder = [6]rune{'╭', '╮', '╰', '╯', '─', '│'}
)

// DrawBorder outlines r with box-drawing characters in the given color.
func (s *Surface) DrawBorder(r Rect, fg Color, rounded bool) {
	if r.W < 2 || r.H < 2 {
		return
	}
	b := squareBorder
	if rounded {
		b = roundedBorder
	}

	s.Set(r.X, r.Y, b[0], fg)
	s.Set(r.Right()-1, r.Y, b[1], fg)
	s.Set(r.X, r.Bottom()-1, b[2], fg)
	s.Set(r.Right()-1, r.Bottom()-1, b[3], fg)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, b[4], fg)
		s.Set(x, r.Bottom()-1, b[4], fg)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, b[5], fg)
		s.Set(r.Right()-1, y, b[5], fg)
	}
}

// TextWidth returns the number of cells text occupies when drawn.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// DrawText writes text starting at (x, y), clipped to the surface.
// Double-width runes take two cells.
func (s *Surface) DrawText(x, y int, text string, fg Color) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.Set(x, y, r, fg)
		if w == 2 {
			s.Set(x+1, y, 0, fg)
		}
		x += w
	}
}

// DrawTextCentered draws text horizontally centered on the whole surface.
func (s *Surface) DrawTextCentered(y int, text string, fg Color) {
	s.DrawText((s.width-TextWidth(text))/2, y, text, fg)
}

// DrawTextIn draws text centered both ways inside r.
func (s *Surface) DrawTextIn(r Rect, text string, fg Color) {
	c := r.Center()
	s.DrawText(r.X+(r.W-TextWidth(text))/2, c.Y, text, fg)
}

// String returns the surface runes only, one line per row.
func (s *Surface) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the runes of row y as a string.
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
