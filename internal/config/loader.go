package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadApp loads the web app configuration.
// Search order: customPath -> ~/.coinquest/configs/app.yaml -> ./configs/app.yaml -> embedded default
func LoadApp(customPath string) (AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := load("app.yaml", customPath, defaultAppYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadQuest loads the Coin Quest level configuration.
// Search order: customPath -> ~/.coinquest/configs/quest.yaml -> ./configs/quest.yaml -> embedded default
func LoadQuest(customPath string) (QuestConfig, error) {
	cfg := DefaultQuestConfig()
	if err := load("quest.yaml", customPath, defaultQuestYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load decodes the first config found into out, which already holds the
// hardcoded defaults; keys missing from the YAML keep those values.
// Only an explicit customPath turns read or parse failures into errors.
func load(filename, customPath string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML; the hardcoded defaults already in out
	// cover a broken embed.
	//nolint:errcheck // Fallback is already in place
	yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coinquest", "configs", filename)
}
