package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardwar/internal/deck"
	"github.com/arcanaland/cardwar/internal/game"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the 52-card deck",
	Long:  `Commands for listing the deck in canonical order or after a seeded shuffle.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the deck in canonical order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printCards(cmd, deck.New())
	},
}

// deckShuffleCmd represents the deck shuffle command
var deckShuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print the deck after a shuffle and mark how it is dealt",
	Long: `Shuffle prints the deck in the order produced by the given seed. The
first 26 cards go to player 1 and the rest to player 2, so the same seed
passed to 'cardwar play' deals exactly these hands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}

		d := deck.New()
		d.Shuffle(rand.New(rand.NewSource(resolveSeed(seed))))
		printCards(cmd, d)
		return nil
	},
}

func printCards(cmd *cobra.Command, d *deck.Deck) {
	out := cmd.OutOrStdout()
	for i, c := range d.Cards {
		owner := "player 1"
		if i >= game.HandSize {
			owner = "player 2"
		}
		fmt.Fprintf(out, "%2d  %-16s %-18s %s\n", i+1, c.ID(), c, owner)
	}
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShuffleCmd)

	deckShuffleCmd.Flags().Int64P("seed", "s", 0, "Seed for the shuffle (0 picks a time-based seed)")
}
