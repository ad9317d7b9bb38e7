package deck

import (
	"errors"
	"fmt"

	"github.com/arcanaland/cardwar/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrNotPermutation is returned by Arrange when the supplied order is not
// a permutation of the full deck.
var ErrNotPermutation = errors.New("not a permutation of the deck")

// Source supplies uniform random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Deck represents an ordered deck of playing cards
type Deck struct {
	Cards []card.Card
}

// New creates the 52 cards, suit-major and rank-minor in canonical order
func New() *Deck {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(suit, rank))
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle reorders the deck in place with Fisher-Yates
func (d *Deck) Shuffle(r Source) {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Arrange replaces the deck order with cards, which must contain every
// card of a full deck exactly once.
func (d *Deck) Arrange(cards []card.Card) error {
	if len(cards) != Size {
		return fmt.Errorf("%w: got %d cards, want %d", ErrNotPermutation, len(cards), Size)
	}

	seen := make(map[card.Card]bool, Size)
	for _, c := range cards {
		if c.Suit < card.Spades || c.Suit > card.Clubs || c.Rank < card.Ace || c.Rank > card.King {
			return fmt.Errorf("%w: invalid card %s", ErrNotPermutation, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s", ErrNotPermutation, c)
		}
		seen[c] = true
	}

	d.Cards = append(d.Cards[:0:0], cards...)
	return nil
}

// Split moves the first n cards and the remainder out of the deck. The deck
// is empty afterwards.
func (d *Deck) Split(n int) ([]card.Card, []card.Card) {
	if n > len(d.Cards) {
		n = len(d.Cards)
	}
	if n < 0 {
		n = 0
	}

	first := append([]card.Card(nil), d.Cards[:n]...)
	rest := append([]card.Card(nil), d.Cards[n:]...)
	d.Cards = nil

	return first, rest
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.Cards)
}

// GetCard gets a card by its canonical ID
func (d *Deck) GetCard(cardID string) (card.Card, error) {
	c, err := card.Parse(cardID)
	if err != nil {
		return card.Card{}, err
	}

	for _, dc := range d.Cards {
		if dc == c {
			return dc, nil
		}
	}

	return card.Card{}, fmt.Errorf("card not found: %s", cardID)
}
