package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// CardVariant selects the border treatment of a Card
type CardVariant int

const (
	CardSubtle CardVariant = iota
	CardIntense
	CardAlert
	CardLearned
)

// Section is a titled paragraph inside a card
type Section struct {
	Heading string
	Body    string
	Color   scenario.RGB // heading color; zero uses the card accent
}

// Card is the single bordered panel used for every info box
type Card struct {
	Title    string
	Variant  CardVariant
	Accent   scenario.RGB // zero uses the variant default
	Sections []Section
	Footer   string
}

func (k Card) accent() scenario.RGB {
	if k.Accent != (scenario.RGB{}) {
		return k.Accent
	}
	switch k.Variant {
	case CardIntense:
		return scenario.ColorPrimary
	case CardAlert:
		return scenario.ColorCoralCTA
	case CardLearned:
		return RgbLearned
	}
	return RgbMuted
}

func (k Card) title() string {
	switch k.Variant {
	case CardAlert:
		return "⚠ " + k.Title
	case CardLearned:
		return "✓ " + k.Title
	}
	return k.Title
}

func (k Card) styles() (border, title tcell.Style) {
	accent := k.accent()
	switch k.Variant {
	case CardSubtle:
		return Fg(RgbBorder), Fg(RgbForeground)
	case CardAlert:
		return Fg(accent).Bold(true), Fg(accent).Bold(true)
	}
	return Fg(accent), Fg(accent).Bold(true)
}

// lines lays the card body out for an inner width
func (k Card) lines(inner int) []cardLine {
	var out []cardLine
	for i, s := range k.Sections {
		if i > 0 {
			out = append(out, cardLine{})
		}
		if s.Heading != "" {
			color := s.Color
			if color == (scenario.RGB{}) {
				color = k.accent()
			}
			out = append(out, cardLine{text: Truncate(s.Heading, inner), style: Fg(color).Bold(true)})
		}
		for _, l := range Wrap(s.Body, inner) {
			out = append(out, cardLine{text: l, style: Base()})
		}
	}
	if k.Footer != "" {
		out = append(out, cardLine{}, cardLine{text: Truncate(k.Footer, inner), style: Fg(RgbMuted).Italic(true)})
	}
	return out
}

type cardLine struct {
	text  string
	style tcell.Style
}

// Height is the rows the card needs at a given outer width
func (k Card) Height(width int) int {
	return len(k.lines(width-4)) + 2
}

// Draw renders the card into rect, clipping body lines that do not fit
func (k Card) Draw(c *Canvas, rect Rect) {
	border, title := k.styles()
	c.Fill(rect, ' ', Base())
	c.Box(rect, k.title(), border, title)

	inner := rect.W - 4
	maxLines := rect.H - 2
	for i, l := range k.lines(inner) {
		if i >= maxLines {
			break
		}
		if l.text != "" {
			c.Text(rect.X+2, rect.Y+1+i, l.text, l.style)
		}
	}
}

// Centered returns a rect of the card's natural height centered on the screen
func (k Card) Centered(screenW, screenH, width int) Rect {
	if width > screenW-2 {
		width = screenW - 2
	}
	h := k.Height(width)
	if h > screenH-2 {
		h = screenH - 2
	}
	return Rect{X: (screenW - width) / 2, Y: (screenH - h) / 2, W: width, H: h}
}
