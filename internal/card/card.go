package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four fixed suits
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Rank is one of the thirteen fixed ranks. Ranks are ordered by position:
// Ace is the lowest and King the highest.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Suits lists the suits in canonical order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Ranks lists the ranks in canonical order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var suitNames = []string{"Spades", "Hearts", "Diamonds", "Clubs"}

var rankNames = []string{"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King"}

func (s Suit) String() string {
	if s < Spades || s > Clubs {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

func (r Rank) String() string {
	if r < Ace || r > King {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Card is a single playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// New creates a card
func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String renders the card as "<Rank> of <Suit>"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// ID returns the canonical id of the card (e.g., hearts.queen, spades.10)
func (c Card) ID() string {
	return fmt.Sprintf("%s.%s", strings.ToLower(c.Suit.String()), strings.ToLower(c.Rank.String()))
}

// Compare orders two ranks by their position in Ranks. It returns -1 when
// a is lower than b, 0 when they are equal and 1 when a is higher.
func Compare(a, b Rank) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParseSuit resolves a suit name, ignoring case
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if strings.EqualFold(n, name) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit: %s", name)
}

// ParseRank resolves a rank name, ignoring case
func ParseRank(name string) (Rank, error) {
	for i, n := range rankNames {
		if strings.EqualFold(n, name) {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rank: %s", name)
}

// Parse resolves a canonical card id as produced by ID
func Parse(id string) (Card, error) {
	parts := strings.Split(id, ".")
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("invalid card ID format: %s", id)
	}

	suit, err := ParseSuit(parts[0])
	if err != nil {
		return Card{}, err
	}

	rank, err := ParseRank(parts[1])
	if err != nil {
		return Card{}, err
	}

	return New(suit, rank), nil
}
