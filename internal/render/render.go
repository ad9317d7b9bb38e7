package render

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/cardwar/internal/card"
)

// DefaultSuitColors maps each suit to its default hex color
var DefaultSuitColors = map[string]string{
	"spades":   "#5f87ff",
	"hearts":   "#ff5f5f",
	"diamonds": "#ffaf00",
	"clubs":    "#5fd75f",
}

// ParseSuitColors turns a suit name to hex map into colors. Suits missing
// from hex fall back to DefaultSuitColors.
func ParseSuitColors(hex map[string]string) (map[card.Suit]colorful.Color, error) {
	colors := make(map[card.Suit]colorful.Color, len(card.Suits))

	for name, value := range DefaultSuitColors {
		suit, _ := card.ParseSuit(name)
		c, _ := colorful.Hex(value)
		colors[suit] = c
	}

	for name, value := range hex {
		suit, err := card.ParseSuit(name)
		if err != nil {
			return nil, err
		}
		c, err := colorful.Hex(value)
		if err != nil {
			return nil, fmt.Errorf("invalid color for %s: %v", name, err)
		}
		colors[suit] = c
	}

	return colors, nil
}

// Printer writes game events as text lines. The first write error is kept
// and every later write is skipped.
type Printer struct {
	w          io.Writer
	color      bool
	suitColors map[card.Suit]colorful.Color
	name       *colorize.Color
	win        *colorize.Color
	err        error
}

// NewPrinter creates a plain text printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithColor enables ANSI colors using the given suit palette
func (p *Printer) WithColor(suitColors map[card.Suit]colorful.Color) *Printer {
	p.color = true
	p.suitColors = suitColors

	p.name = colorize.New(colorize.FgHiWhite, colorize.Bold)
	p.name.EnableColor()
	p.win = colorize.New(colorize.FgHiYellow)
	p.win.EnableColor()

	return p
}

// Err returns the first write error
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *Printer) playerName(name string) string {
	if !p.color {
		return name
	}
	return p.name.Sprint(name)
}

func (p *Printer) cardText(c card.Card) string {
	if !p.color {
		return c.String()
	}
	sc, ok := p.suitColors[c.Suit]
	if !ok {
		return c.String()
	}
	return TrueColor(sc, c.String())
}

func (p *Printer) announce(s string) string {
	if !p.color {
		return s
	}
	return p.win.Sprint(s)
}

// PlayedCard prints "<Name>: <Rank> of <Suit>"
func (p *Printer) PlayedCard(name string, c card.Card) {
	p.println(fmt.Sprintf("%s: %s", p.playerName(name), p.cardText(c)))
}

// RoundWinner prints "<Name> wins the round!"
func (p *Printer) RoundWinner(name string) {
	p.println(p.announce(name + " wins the round!"))
}

// Tie prints "It's a tie!"
func (p *Printer) Tie() {
	p.println(p.announce("It's a tie!"))
}

// Blank prints an empty line
func (p *Printer) Blank() {
	p.println("")
}

// Score prints "<Name>'s score: <N>"
func (p *Printer) Score(name string, score int) {
	p.println(fmt.Sprintf("%s's score: %d", p.playerName(name), score))
}

// GameWinner prints "<Name> wins the game!"
func (p *Printer) GameWinner(name string) {
	p.println(p.announce(name + " wins the game!"))
}

// TrueColor wraps text in a 24-bit foreground color escape
func TrueColor(c colorful.Color, text string) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	out := make([]rune, 0, len(s))
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			out = append(out, c)
		}
	}
	return string(out)
}
