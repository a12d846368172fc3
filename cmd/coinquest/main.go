// coinquest builds the Theo Coin Quest web app assets and plays the game in
// the terminal.
//
// Usage:
//
//	coinquest icons          - Write the PWA icons
//	coinquest manifest       - Write manifest.webmanifest for the icons
//	coinquest play           - Play Coin Quest in the terminal
//	coinquest scores         - Show the best finished runs
//	coinquest serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.coinquest/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/theocoin/coinquest/internal/games/coinquest"
	"github.com/theocoin/coinquest/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinquest",
	Short: "Theo Coin Quest - assets and terminal play",
	Long: `Theo Coin Quest is a small platformer: run, jump and collect every coin.

Available commands:
  icons     - Generate the procedural PWA icons
  manifest  - Write the web app manifest
  play      - Play in your terminal
  scores    - View the best runs
  serve     - Start SSH server for remote play

Examples:
  coinquest icons --out public
  BASE_PATH=/theo/ coinquest manifest
  coinquest play --difficulty easy
  coinquest serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.coinquest/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds a stderr logger at the --log-level, exiting on a bad level.
func newLogger(prefix string) *log.Logger {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logging.New(os.Stderr, prefix, level)
}
