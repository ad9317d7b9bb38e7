package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// logger carries diagnostics to stderr when --verbose is set
var logger = log.New(io.Discard, "cardwar: ", 0)

// RootCmd represents the base command. Without a subcommand it plays one game.
var RootCmd = &cobra.Command{
	Use:   "cardwar",
	Short: "Simulate a two-player card comparison game",
	Long: `Cardwar shuffles a standard 52-card deck, deals 26 cards to each of two
players and compares their top cards round by round. The higher rank takes
the round (Ace is low, King is high) and equal ranks tie. After 26 rounds
the scores are printed and the winner is declared.

Running cardwar without a subcommand plays one game.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetOutput(os.Stderr)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")
	addPlayFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
