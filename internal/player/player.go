package player

import (
	"errors"

	"github.com/arcanaland/cardwar/internal/card"
)

// ErrEmptyHand is returned when a player with no cards is asked to play
var ErrEmptyHand = errors.New("hand is empty")

// Player is a named participant holding a hand of cards
type Player struct {
	Name  string
	Hand  []card.Card
	Score int
}

// New creates a player with an empty hand and a zero score
func New(name string) *Player {
	return &Player{Name: name}
}

// PlayCard removes and returns the last card of the hand
func (p *Player) PlayCard() (card.Card, error) {
	if len(p.Hand) == 0 {
		return card.Card{}, ErrEmptyHand
	}

	top := p.Hand[len(p.Hand)-1]
	p.Hand = p.Hand[:len(p.Hand)-1]
	return top, nil
}

// TakeCards puts cards in front of the current hand, keeping their order
func (p *Player) TakeCards(cards []card.Card) {
	hand := make([]card.Card, 0, len(cards)+len(p.Hand))
	hand = append(hand, cards...)
	p.Hand = append(hand, p.Hand...)
}

// UpdateScore adds points to the running score. Negative amounts are ignored.
func (p *Player) UpdateScore(points int) {
	if points < 0 {
		return
	}
	p.Score += points
}

// HandSize returns the number of cards held
func (p *Player) HandSize() int {
	return len(p.Hand)
}
