package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/theocoin/coinquest/internal/games/coinquest"
	"github.com/theocoin/coinquest/internal/platform/tui"
	"github.com/theocoin/coinquest/internal/registry"
	"github.com/theocoin/coinquest/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best finished runs: wins first, fastest first, then the
most coins collected.

An interactive table is shown on a terminal; use --plain (or pipe the
output) for plain text.

Examples:
  coinquest scores
  coinquest scores --limit 5 --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	game, err := registry.Create(coinquest.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, coinquest.GameID, title, flagScoresLimit, flagFPS, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(coinquest.GameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'coinquest play' and collect a coin to get on the board!")
		return
	}

	format := "  %-5s  %-12s  %-5s  %-7s  %-6s  %s\n"
	printRow(format, tui.RunColumns)
	dashes := make([]string, len(tui.RunColumns))
	for i, c := range tui.RunColumns {
		dashes[i] = strings.Repeat("-", len(c))
	}
	printRow(format, dashes)

	for i, r := range runs {
		printRow(format, tui.FormatRun(i+1, r, flagFPS))
	}
}

func printRow(format string, cells []string) {
	args := make([]any, len(cells))
	for i, c := range cells {
		args[i] = c
	}
	fmt.Printf(format, args...)
}
