package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is a clipped drawing surface over a tcell screen
type Canvas struct {
	screen tcell.Screen
	w, h   int
}

// NewCanvas wraps screen at its current size
func NewCanvas(screen tcell.Screen) *Canvas {
	w, h := screen.Size()
	return &Canvas{screen: screen, w: w, h: h}
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Put sets one cell; out-of-bounds writes are dropped
func (c *Canvas) Put(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// Text writes s from x and returns the column after the last rune
// Wide runes take two columns; text past the right edge is clipped
func (c *Canvas) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.w {
			break
		}
		c.Put(x, y, r, style)
		x += w
	}
	return x
}

// TextCenter centers s in the span [x, x+width)
func (c *Canvas) TextCenter(x, y, width int, s string, style tcell.Style) {
	s = Truncate(s, width)
	c.Text(x+(width-runewidth.StringWidth(s))/2, y, s, style)
}

// TextRight right-aligns s so it ends at column right
func (c *Canvas) TextRight(right, y int, s string, style tcell.Style) {
	c.Text(right-runewidth.StringWidth(s), y, s, style)
}

// Fill paints a rectangle with r
func (c *Canvas) Fill(rect Rect, r rune, style tcell.Style) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c.Put(x, y, r, style)
		}
	}
}

// HLine draws n copies of r from x
func (c *Canvas) HLine(x, y, n int, r rune, style tcell.Style) {
	for i := 0; i < n; i++ {
		c.Put(x+i, y, r, style)
	}
}

// Box draws a rounded border with an optional title on the top edge
func (c *Canvas) Box(rect Rect, title string, border, titleStyle tcell.Style) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	right, bottom := rect.Right()-1, rect.Bottom()-1
	c.HLine(rect.X+1, rect.Y, rect.W-2, '─', border)
	c.HLine(rect.X+1, bottom, rect.W-2, '─', border)
	for y := rect.Y + 1; y < bottom; y++ {
		c.Put(rect.X, y, '│', border)
		c.Put(right, y, '│', border)
	}
	c.Put(rect.X, rect.Y, '╭', border)
	c.Put(right, rect.Y, '╮', border)
	c.Put(rect.X, bottom, '╰', border)
	c.Put(right, bottom, '╯', border)

	if title != "" && rect.W > 6 {
		c.Text(rect.X+2, rect.Y, " "+Truncate(title, rect.W-6)+" ", titleStyle)
	}
}

// Truncate shortens s to width columns with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Wrap breaks s into lines of at most width columns on word boundaries
// Words wider than width are truncated
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineW := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = Truncate(word, width)
			ww = runewidth.StringWidth(word)
		}
		switch {
		case lineW == 0:
		case lineW+1+ww <= width:
			line.WriteByte(' ')
			lineW++
		default:
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
		line.WriteString(word)
		lineW += ww
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
