package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theocoin/coinquest/internal/config"
	"github.com/theocoin/coinquest/internal/icon"
)

var (
	flagIconsOut         string
	flagIconsConfig      string
	flagIconsCompression string
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Generate the procedural PWA icons",
	Long: `Write the PWA icons as PNG files. The icons are drawn analytically:
a yellow coin with a pale ring on a dark blue background. Output is
byte-for-byte reproducible.

The icon list comes from app.yaml (see --config); by default:
  pwa-192.png            192x192
  pwa-512.png            512x512
  pwa-512-maskable.png   512x512, badge shrunk into the maskable safe zone

Compression:
  best     - zlib at best compression (default)
  default  - zlib default level
  fast     - zlib best speed
  store    - uncompressed deflate blocks

Examples:
  coinquest icons
  coinquest icons --out dist/icons
  coinquest icons --compression store --log-level debug`,
	Run: runIcons,
}

func init() {
	iconsCmd.Flags().StringVar(&flagIconsOut, "out", "", "Output directory (default from app.yaml: public)")
	iconsCmd.Flags().StringVar(&flagIconsConfig, "config", "", "Path to custom app config YAML")
	iconsCmd.Flags().StringVar(&flagIconsCompression, "compression", "", "Compression: best, default, fast, store")
}

func runIcons(_ *cobra.Command, _ []string) {
	logger := newLogger("icons")

	app, err := config.LoadApp(flagIconsConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir := app.Icons.OutputDir
	if flagIconsOut != "" {
		dir = flagIconsOut
	}
	compression := app.Icons.Compression
	if flagIconsCompression != "" {
		compression = flagIconsCompression
	}

	c, err := icon.CompressorFor(compression)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	targets := make([]icon.Target, len(app.Icons.Targets))
	for i, t := range app.Icons.Targets {
		targets[i] = icon.Target{File: t.File, Size: t.Size, Maskable: t.Maskable}
	}

	results, err := icon.Generate(dir, targets, icon.WithCompressor(c), icon.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("icons written", "dir", dir, "count", len(results), "compression", compression)
	fmt.Println("Generated procedural PWA icons.")
}
