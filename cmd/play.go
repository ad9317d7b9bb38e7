package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardwar/internal/config"
	"github.com/arcanaland/cardwar/internal/game"
	"github.com/arcanaland/cardwar/internal/render"
	"github.com/arcanaland/cardwar/internal/validator"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game and print every round",
	Long: `Play shuffles the deck, deals both hands and plays all 26 rounds.

Settings come from the config file, then CARDWAR_* environment variables,
then flags. A seed of 0 picks a time-based seed.

Examples:
  cardwar play
  cardwar play --seed 42 --color never
  cardwar play --player1 Ada --player2 Grace`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	RootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("seed", "s", 0, "Seed for the shuffle (0 picks a time-based seed)")
	cmd.Flags().String("color", "", "Color output: auto, always or never")
	cmd.Flags().String("player1", "", "Name of the first player")
	cmd.Flags().String("player2", "", "Name of the second player")
}

// loadSettings resolves the config file, environment and flags, in that order
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	path := config.GetConfigFilePath()
	logger.Printf("config file: %s", path)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Lookup("color") != nil && flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Lookup("player1") != nil && flags.Changed("player1") {
		cfg.Player1, _ = flags.GetString("player1")
	}
	if flags.Lookup("player2") != nil && flags.Changed("player2") {
		cfg.Player2, _ = flags.GetString("player2")
	}

	results := validator.NewValidator(path).ValidateConfig(cfg)
	for _, warn := range results.Warnings {
		logger.Printf("warning: %s", warn)
	}
	if !results.OK() {
		return nil, fmt.Errorf("invalid settings: %s", strings.Join(results.Errors, "; "))
	}

	return cfg, nil
}

// resolveSeed turns the configured seed into the one actually used
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("seed: %d", seed)
	return seed
}

// useColor decides whether ANSI colors are written to out
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return !colorize.NoColor && term.IsTerminal(int(f.Fd()))
}

func newPrinter(cfg *config.Config, out io.Writer) (*render.Printer, error) {
	printer := render.NewPrinter(out)
	if !useColor(cfg.Color, out) {
		return printer, nil
	}

	colors, err := render.ParseSuitColors(cfg.SuitColors)
	if err != nil {
		return nil, err
	}
	return printer.WithColor(colors), nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer, err := newPrinter(cfg, out)
	if err != nil {
		return err
	}

	g := game.New(out,
		game.WithSeed(resolveSeed(cfg.Seed)),
		game.WithPlayerNames(cfg.Player1, cfg.Player2),
		game.WithPrinter(printer),
		game.WithLogger(logger),
	)

	if err := g.Play(); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	res := g.Result()
	logger.Printf("finished: %d-%d with %d ties", res.Score1, res.Score2, res.Ties)

	return nil
}
