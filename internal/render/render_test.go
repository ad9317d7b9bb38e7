package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arcanaland/cardwar/internal/card"
	"github.com/arcanaland/cardwar/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := render.NewPrinter(&buf)

	p.PlayedCard("Player 1", card.New(card.Hearts, card.Queen))
	p.PlayedCard("Player 2", card.New(card.Clubs, card.Ten))
	p.RoundWinner("Player 1")
	p.Blank()
	p.Tie()
	p.Score("Player 1", 3)
	p.GameWinner("Player 2")
	require.NoError(t, p.Err())

	want := strings.Join([]string{
		"Player 1: Queen of Hearts",
		"Player 2: 10 of Clubs",
		"Player 1 wins the round!",
		"",
		"It's a tie!",
		"Player 1's score: 3",
		"Player 2 wins the game!",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinterColor(t *testing.T) {
	colors, err := render.ParseSuitColors(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := render.NewPrinter(&buf).WithColor(colors)
	p.PlayedCard("Player 1", card.New(card.Hearts, card.Queen))
	p.Score("Player 1", 3)
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, "\x1b[38;2;255;95;95mQueen of Hearts\x1b[0m")
	assert.Equal(t, "Player 1: Queen of Hearts\nPlayer 1's score: 3\n", render.StripAnsi(out))
}

func TestParseSuitColors(t *testing.T) {
	colors, err := render.ParseSuitColors(map[string]string{"Spades": "#000000"})
	require.NoError(t, err)
	require.Len(t, colors, 4)

	r, g, b := colors[card.Spades].RGB255()
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})

	_, err = render.ParseSuitColors(map[string]string{"cups": "#000000"})
	assert.Error(t, err)

	_, err = render.ParseSuitColors(map[string]string{"hearts": "red"})
	assert.Error(t, err)
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("broken pipe")
}

func TestPrinterKeepsFirstError(t *testing.T) {
	w := &failingWriter{}
	p := render.NewPrinter(w)
	p.Tie()
	p.Tie()
	p.Blank()

	assert.EqualError(t, p.Err(), "broken pipe")
	assert.Equal(t, 1, w.writes)
}
