package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardwar/internal/game"
)

// execute runs the root command with args and resets every flag afterwards
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CARDWAR_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs(args)

	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
		resetFlags(RootCmd)
	})

	err := RootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestPlayCommandMatchesGame(t *testing.T) {
	out, err := execute(t, "play", "--seed", "42", "--color", "never")
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, game.New(&want, game.WithSeed(42)).Play())
	assert.Equal(t, want.String(), out)
}

func TestRootCommandPlaysOneGame(t *testing.T) {
	out, err := execute(t, "--seed", "7", "--player1", "Ada", "--player2", "Bo")
	require.NoError(t, err)

	assert.Equal(t, 26, strings.Count(out, "Ada: "))
	assert.Equal(t, 26, strings.Count(out, "Bo: "))
	assert.Contains(t, out, "Ada's score: ")
	assert.Contains(t, out, "Bo's score: ")
}

func TestPlayRejectsInvalidSettings(t *testing.T) {
	t.Run("same_names", func(t *testing.T) {
		_, err := execute(t, "play", "--player1", "Ada", "--player2", "Ada")
		assert.ErrorContains(t, err, "player names must differ")
	})

	t.Run("bad_color", func(t *testing.T) {
		_, err := execute(t, "play", "--color", "rainbow")
		assert.ErrorContains(t, err, "unsupported color")
		assert.NotContains(t, err.Error(), "player names")
	})
}

func TestPlayUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("player1 = \"Ada\"\nseed = 42\n"), 0644))

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"play", "--color", "never"})
	t.Setenv("CARDWAR_CONFIG", path)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		resetFlags(RootCmd)
	})
	require.NoError(t, RootCmd.Execute())

	var want bytes.Buffer
	require.NoError(t, game.New(&want, game.WithSeed(42), game.WithPlayerNames("Ada", "Player 2")).Play())
	assert.Equal(t, want.String(), buf.String())
}

func TestDeckShuffleMatchesDeal(t *testing.T) {
	out, err := execute(t, "deck", "shuffle", "--seed", "42")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 52)

	g := game.New(nil, game.WithSeed(42))
	require.NoError(t, g.Setup())

	for i, c := range g.Player1.Hand {
		assert.Contains(t, lines[i], c.String())
		assert.True(t, strings.HasSuffix(lines[i], "player 1"))
	}
	for i, c := range g.Player2.Hand {
		assert.Contains(t, lines[26+i], c.String())
		assert.True(t, strings.HasSuffix(lines[26+i], "player 2"))
	}
}

func TestDeckList(t *testing.T) {
	out, err := execute(t, "deck", "ls")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 52)
	assert.Contains(t, lines[0], "spades.ace")
	assert.Contains(t, lines[51], "King of Clubs")
}

func TestShowCommand(t *testing.T) {
	t.Run("renders_art_and_details", func(t *testing.T) {
		out, err := execute(t, "show", "--width", "10", "hearts.queen")
		require.NoError(t, err)
		assert.Contains(t, out, "▀")
		assert.Contains(t, out, "Queen of Hearts")
	})

	t.Run("keeps_details_beside_short_art", func(t *testing.T) {
		out, err := execute(t, "show", "--width", "3", "hearts.queen")
		require.NoError(t, err)
		assert.Contains(t, out, "Card: ")
		assert.Contains(t, out, "ID:   ")
		assert.Contains(t, out, "Suit: ")
		assert.Contains(t, out, "Rank: ")
	})

	t.Run("renders_single_cell_width", func(t *testing.T) {
		out, err := execute(t, "show", "--width", "1", "spades.ace")
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, "▀"))
		assert.Contains(t, out, "Rank: ")
	})

	t.Run("rejects_unknown_card", func(t *testing.T) {
		_, err := execute(t, "show", "hearts.knight")
		assert.Error(t, err)
	})
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardwar.toml")

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	t.Setenv("CARDWAR_CONFIG", path)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		resetFlags(RootCmd)
	})

	RootCmd.SetArgs([]string{"config", "init"})
	require.NoError(t, RootCmd.Execute())
	assert.Contains(t, buf.String(), "Config file initialized at: "+path)

	buf.Reset()
	RootCmd.SetArgs([]string{"validate", path})
	require.NoError(t, RootCmd.Execute())
	assert.Contains(t, buf.String(), "is valid")

	require.NoError(t, os.WriteFile(path, []byte("color = \"loud\"\n"), 0644))
	buf.Reset()
	RootCmd.SetArgs([]string{"validate", path})
	assert.Error(t, RootCmd.Execute())
	assert.Contains(t, buf.String(), "unsupported color: loud")
}

func TestTerminalWidthIgnoresNonFileWriters(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 80, terminalWidth(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, 80, terminalWidth(f))
}

func TestConfigValidateReportsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("player1 = "), 0644))

	out, err := execute(t, "validate", path)
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, out, "has 1 validation errors")
	assert.Contains(t, out, "1. error parsing config")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor("always", &buf))
	assert.False(t, useColor("never", &buf))
	assert.False(t, useColor("auto", &buf))
}
