// Package manifest builds the web app manifest that points browsers at the
// generated icons.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theocoin/coinquest/internal/config"
)

// FileName is the manifest file written next to the icons.
const FileName = "manifest.webmanifest"

// Icon is one entry of the manifest icon list.
type Icon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// Manifest is the subset of the web app manifest the app uses.
type Manifest struct {
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	Description     string `json:"description"`
	ThemeColor      string `json:"theme_color"`
	BackgroundColor string `json:"background_color"`
	Display         string `json:"display"`
	Orientation     string `json:"orientation"`
	Scope           string `json:"scope"`
	StartURL        string `json:"start_url"`
	Icons           []Icon `json:"icons"`
}

// NormalizeBase turns a deploy path such as "game" into "/game/".
func NormalizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// Build creates the manifest for the app served under base.
func Build(app config.AppConfig, base string) Manifest {
	base = NormalizeBase(base)

	m := Manifest{
		Name:            app.Name,
		ShortName:       app.ShortName,
		Description:     app.Description,
		ThemeColor:      app.ThemeColor,
		BackgroundColor: app.BackgroundColor,
		Display:         app.Display,
		Orientation:     app.Orientation,
		Scope:           base,
		StartURL:        base,
		Icons:           make([]Icon, 0, len(app.Icons.Targets)),
	}

	for _, t := range app.Icons.Targets {
		icon := Icon{
			Src:   t.File,
			Sizes: fmt.Sprintf("%dx%d", t.Size, t.Size),
			Type:  "image/png",
		}
		if t.Maskable {
			icon.Purpose = "maskable"
		}
		m.Icons = append(m.Icons, icon)
	}

	return m
}

// Write stores m as indented JSON at path, creating parent directories.
func Write(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: cannot encode: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("manifest: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: cannot write %s: %w", path, err)
	}
	return nil
}
