package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardwar/internal/art"
	"github.com/arcanaland/cardwar/internal/card"
	"github.com/arcanaland/cardwar/internal/deck"
	"github.com/arcanaland/cardwar/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card with ANSI art",
	Long: `Show draws a card face as ANSI terminal art next to its details.
Use canonical card IDs like 'hearts.queen' or 'spades.10'.

Examples:
  cardwar show spades.ace
  cardwar show --width 30 diamonds.7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		c, err := deck.New().GetCard(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		colors, err := render.ParseSuitColors(cfg.SuitColors)
		if err != nil {
			return err
		}

		width, _ := cmd.Flags().GetInt("width")
		height := max(width*7/10, 1)

		ansiArt, err := art.Render(c, colors[c.Suit], width, height)
		if err != nil {
			return fmt.Errorf("error rendering card: %v", err)
		}

		displayCard(cmd.OutOrStdout(), c, ansiArt)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().IntP("width", "w", 20, "Width of the art in terminal cells")
}

// displayCard prints the ANSI art on the left and the card details on the right
func displayCard(out io.Writer, c card.Card, ansiArt string) {
	ansiLines := strings.Split(strings.TrimSuffix(ansiArt, "\n"), "\n")
	maxAnsiWidth := 0
	for _, line := range ansiLines {
		if w := len([]rune(render.StripAnsi(line))); w > maxAnsiWidth {
			maxAnsiWidth = w
		}
	}

	width := terminalWidth(out)

	infoLines := []string{
		colorize.CyanString("Card: ") + colorize.HiWhiteString("%s", c.String()),
		colorize.CyanString("ID:   ") + colorize.HiWhiteString("%s", c.ID()),
		colorize.CyanString("Suit: ") + colorize.HiWhiteString("%s", c.Suit.String()),
		colorize.CyanString("Rank: ") + colorize.HiWhiteString("%s (%d of %d, Ace low)", c.Rank, int(c.Rank)+1, len(card.Ranks)),
	}

	spacing := 4
	infoStartCol := maxAnsiWidth + spacing
	// Drop the details below the art when the terminal is too narrow
	sideBySide := width-infoStartCol >= 30

	fmt.Fprintln(out)
	rows := len(ansiLines)
	if sideBySide {
		rows = max(len(ansiLines), len(infoLines))
	}
	for i := 0; i < rows; i++ {
		fmt.Fprint(out, "  ")
		if i < len(ansiLines) {
			fmt.Fprint(out, ansiLines[i])
		} else {
			fmt.Fprint(out, strings.Repeat(" ", maxAnsiWidth))
		}
		if sideBySide && i < len(infoLines) {
			fmt.Fprint(out, strings.Repeat(" ", spacing), infoLines[i])
		}
		fmt.Fprintln(out)
	}
	if !sideBySide {
		fmt.Fprintln(out)
		for _, info := range infoLines {
			fmt.Fprintln(out, "  "+info)
		}
	}
	fmt.Fprintln(out)
}

// terminalWidth returns the width of out when it is a terminal, else 80
func terminalWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
