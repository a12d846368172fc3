package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theocoin/coinquest/internal/config"
	"github.com/theocoin/coinquest/internal/manifest"
)

var (
	flagManifestOut    string
	flagManifestBase   string
	flagManifestConfig string
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Write the web app manifest",
	Long: `Write manifest.webmanifest describing the installable app and its icons.

The app is served under a base path taken from --base, then the BASE_PATH
environment variable, then "/". It becomes the manifest scope and start URL.

Examples:
  coinquest manifest
  coinquest manifest --out dist --base /theo-game/
  BASE_PATH=/theo-game/ coinquest manifest`,
	Run: runManifest,
}

func init() {
	manifestCmd.Flags().StringVar(&flagManifestOut, "out", "", "Output directory (default from app.yaml: public)")
	manifestCmd.Flags().StringVar(&flagManifestBase, "base", "", "Base path the app is served from (default $BASE_PATH or /)")
	manifestCmd.Flags().StringVar(&flagManifestConfig, "config", "", "Path to custom app config YAML")
}

func runManifest(_ *cobra.Command, _ []string) {
	logger := newLogger("manifest")

	app, err := config.LoadApp(flagManifestConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	base := flagManifestBase
	if base == "" {
		base = os.Getenv("BASE_PATH")
	}

	dir := app.Icons.OutputDir
	if flagManifestOut != "" {
		dir = flagManifestOut
	}
	path := filepath.Join(dir, manifest.FileName)

	m := manifest.Build(app, base)
	if err := manifest.Write(path, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("manifest written", "path", path, "scope", m.Scope, "icons", len(m.Icons))
}
