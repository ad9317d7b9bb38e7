package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/arcanaland/cardwar/internal/card"
	"github.com/arcanaland/cardwar/internal/deck"
	"github.com/arcanaland/cardwar/internal/player"
	"github.com/arcanaland/cardwar/internal/render"
)

// HandSize is the number of cards dealt to each player
const HandSize = deck.Size / 2

// ErrInvalidState is returned when an operation is called out of order
var ErrInvalidState = errors.New("invalid game state")

// State is a stage of the game lifecycle
type State int

const (
	Created State = iota
	SetUp
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case SetUp:
		return "set up"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Round records the cards played in one round and who took it. Winner is
// 0 for a tie, otherwise 1 or 2.
type Round struct {
	Number int
	Card1  card.Card
	Card2  card.Card
	Winner int
}

// Result summarizes a finished game. Winner is 0 for a tie.
type Result struct {
	Score1 int
	Score2 int
	Ties   int
	Winner int
	Rounds []Round
}

// Game manages one deck and two players from setup to the final result
type Game struct {
	Deck    *deck.Deck
	Player1 *player.Player
	Player2 *player.Player

	state   State
	rand    deck.Source
	shuffle bool
	out     *render.Printer
	logger  *log.Logger
	rounds  []Round
}

// Option configures a Game
type Option func(*Game)

// WithRand sets the random source used by the shuffle
func WithRand(r deck.Source) Option {
	return func(g *Game) {
		g.rand = r
	}
}

// WithSeed seeds a new random source for the shuffle
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithDeck replaces the freshly built deck
func WithDeck(d *deck.Deck) Option {
	return func(g *Game) {
		g.Deck = d
	}
}

// WithoutShuffle deals the deck in its current order
func WithoutShuffle() Option {
	return func(g *Game) {
		g.shuffle = false
	}
}

// WithPlayerNames renames the two players
func WithPlayerNames(name1, name2 string) Option {
	return func(g *Game) {
		g.Player1 = player.New(name1)
		g.Player2 = player.New(name2)
	}
}

// WithPrinter sets where game events are written
func WithPrinter(p *render.Printer) Option {
	return func(g *Game) {
		g.out = p
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game writing plain text to w
func New(w io.Writer, opts ...Option) *Game {
	g := &Game{
		Deck:    deck.New(),
		Player1: player.New("Player 1"),
		Player2: player.New("Player 2"),
		state:   Created,
		shuffle: true,
		out:     render.NewPrinter(w),
		logger:  log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

// State returns the current lifecycle state
func (g *Game) State() State {
	return g.state
}

// Setup shuffles the deck and deals the first half to player 1 and the
// second half to player 2.
func (g *Game) Setup() error {
	if g.state != Created {
		return fmt.Errorf("%w: setup while %s", ErrInvalidState, g.state)
	}
	if g.Deck.Len() != deck.Size {
		return fmt.Errorf("deck has %d cards, want %d", g.Deck.Len(), deck.Size)
	}

	if g.shuffle {
		g.Deck.Shuffle(g.rand)
	}

	first, rest := g.Deck.Split(HandSize)
	g.Player1.TakeCards(first)
	g.Player2.TakeCards(rest)

	g.logger.Printf("dealt %d cards to %s and %d to %s",
		g.Player1.HandSize(), g.Player1.Name, g.Player2.HandSize(), g.Player2.Name)

	g.state = SetUp
	return nil
}

// Play sets the game up and plays rounds until player 1 runs out of cards,
// then prints the result.
func (g *Game) Play() error {
	if err := g.Setup(); err != nil {
		return err
	}
	g.state = Playing

	for g.Player1.HandSize() > 0 {
		if err := g.playRound(); err != nil {
			return err
		}
	}

	g.state = Finished
	g.DisplayResult()

	return g.out.Err()
}

func (g *Game) playRound() error {
	card1, err := g.Player1.PlayCard()
	if err != nil {
		return fmt.Errorf("%s: %w", g.Player1.Name, err)
	}
	card2, err := g.Player2.PlayCard()
	if err != nil {
		return fmt.Errorf("%s: %w", g.Player2.Name, err)
	}

	g.out.PlayedCard(g.Player1.Name, card1)
	g.out.PlayedCard(g.Player2.Name, card2)

	round := Round{Number: len(g.rounds) + 1, Card1: card1, Card2: card2}

	switch card.Compare(card1.Rank, card2.Rank) {
	case 0:
		g.out.Tie()
	case 1:
		round.Winner = 1
		g.out.RoundWinner(g.Player1.Name)
		g.Player1.UpdateScore(1)
	default:
		round.Winner = 2
		g.out.RoundWinner(g.Player2.Name)
		g.Player2.UpdateScore(1)
	}

	g.out.Blank()
	g.rounds = append(g.rounds, round)

	return g.out.Err()
}

// DisplayResult prints both scores and the overall winner
func (g *Game) DisplayResult() {
	g.out.Score(g.Player1.Name, g.Player1.Score)
	g.out.Score(g.Player2.Name, g.Player2.Score)

	switch {
	case g.Player1.Score > g.Player2.Score:
		g.out.GameWinner(g.Player1.Name)
	case g.Player1.Score < g.Player2.Score:
		g.out.GameWinner(g.Player2.Name)
	default:
		g.out.Tie()
	}
}

// Result returns the scores and round log so far
func (g *Game) Result() Result {
	res := Result{
		Score1: g.Player1.Score,
		Score2: g.Player2.Score,
		Rounds: append([]Round(nil), g.rounds...),
	}

	for _, r := range g.rounds {
		if r.Winner == 0 {
			res.Ties++
		}
	}

	switch {
	case res.Score1 > res.Score2:
		res.Winner = 1
	case res.Score2 > res.Score1:
		res.Winner = 2
	}

	return res
}
