package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/theocoin/coinquest/internal/config"
	"github.com/theocoin/coinquest/internal/core"
	"github.com/theocoin/coinquest/internal/games/coinquest"
	"github.com/theocoin/coinquest/internal/platform/tui"
	"github.com/theocoin/coinquest/internal/registry"
	"github.com/theocoin/coinquest/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Coin Quest in the terminal",
	Long: `Run, jump and collect all five coins.

Controls:
  Left/A, Right/D  - Move
  Up/W/Space       - Jump (only when standing on something)
  P/Esc            - Pause
  R                - Play again (after winning)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Higher jump, slower run
  normal  - Default physics
  hard    - Faster run, lower jump, bouncier landings

Examples:
  coinquest play
  coinquest play --difficulty hard
  coinquest play --config ./my-level.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load once up front so a broken level is reported before the screen switches.
	quest, err := config.LoadQuest(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	coinquest.SetConfigPath(flagConfig)
	coinquest.SetDifficultyPreset(preset)

	game, err := registry.Create(coinquest.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	if user := os.Getenv("USER"); user != "" {
		cfg.Player = user
	}

	logger := newLogger("play")

	// Run history is optional
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, runs will not be saved", "error", err)
	} else {
		defer store.Close()
	}

	opts := tui.Options{HoldTicks: quest.Input.HoldTicks, Logger: logger}
	if err := tui.Run(game, store, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
