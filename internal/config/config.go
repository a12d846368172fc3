// Package config provides YAML-based configuration for Coin Quest: the app
// and icon settings used at build time, and the level and physics settings
// used by the game.
package config

import (
	"errors"
	"fmt"
)

// AppConfig describes the installable web app and its icons.
type AppConfig struct {
	Name            string      `yaml:"name"`
	ShortName       string      `yaml:"short_name"`
	Description     string      `yaml:"description"`
	ThemeColor      string      `yaml:"theme_color"`
	BackgroundColor string      `yaml:"background_color"`
	Display         string      `yaml:"display"`
	Orientation     string      `yaml:"orientation"`
	Icons           IconsConfig `yaml:"icons"`
}

// IconsConfig controls the procedural icon emitter.
type IconsConfig struct {
	OutputDir   string       `yaml:"output_dir"`
	Compression string       `yaml:"compression"` // best, default, fast or store
	Targets     []IconTarget `yaml:"targets"`
}

// IconTarget is one icon file the manifest references.
type IconTarget struct {
	File     string `yaml:"file"`
	Size     int    `yaml:"size"`
	Maskable bool   `yaml:"maskable"`
}

// Validate checks that the icon list can be generated.
func (c AppConfig) Validate() error {
	if len(c.Icons.Targets) == 0 {
		return errors.New("config: no icon targets")
	}
	seen := make(map[string]bool, len(c.Icons.Targets))
	for i, t := range c.Icons.Targets {
		if t.File == "" {
			return fmt.Errorf("config: icon target %d has no file name", i)
		}
		if t.Size <= 0 {
			return fmt.Errorf("config: icon %s: size must be positive, got %d", t.File, t.Size)
		}
		if seen[t.File] {
			return fmt.Errorf("config: icon %s listed twice", t.File)
		}
		seen[t.File] = true
	}
	return nil
}

// QuestConfig contains all configuration for the Coin Quest level.
// Positions are in world units; sprites are placed by their centre.
type QuestConfig struct {
	World     QuestWorld    `yaml:"world"`
	Physics   QuestPhysics  `yaml:"physics"`
	Player    QuestSprite   `yaml:"player"`
	Platforms []QuestSprite `yaml:"platforms"`
	Coins     QuestCoins    `yaml:"coins"`
	Input     QuestInput    `yaml:"input"`
}

// QuestWorld is the size of the playfield.
type QuestWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// QuestPhysics defines the arcade physics, in units per second.
type QuestPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	Bounce       float64 `yaml:"bounce"`       // Fraction of speed kept after hitting a surface
	SettleSpeed  float64 `yaml:"settle_speed"` // Bounces slower than this come to rest
}

// QuestSprite is a rectangle placed by its centre.
type QuestSprite struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// QuestCoins defines the collectibles.
type QuestCoins struct {
	Size      float64      `yaml:"size"`
	Positions []QuestPoint `yaml:"positions"`
}

// QuestPoint is a position in world units.
type QuestPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// QuestInput tunes how key presses turn into held buttons.
type QuestInput struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks that the level is playable.
func (c QuestConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return errors.New("config: player size must be positive")
	case c.Physics.Gravity < 0:
		return errors.New("config: gravity must not be negative")
	case c.Physics.Bounce < 0 || c.Physics.Bounce >= 1:
		return fmt.Errorf("config: bounce must be in [0, 1), got %v", c.Physics.Bounce)
	case len(c.Coins.Positions) == 0:
		return errors.New("config: level has no coins")
	case c.Coins.Size <= 0:
		return errors.New("config: coin size must be positive")
	}
	for i, p := range c.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("config: platform %d has non-positive size", i)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value into a preset.
// An empty string means "use the config as is".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyQuestPreset scales movement for a difficulty preset.
// Normal leaves the config untouched; hard keeps every coin reachable.
func ApplyQuestPreset(cfg *QuestConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.JumpVelocity *= 1.1
		cfg.Physics.MoveSpeed *= 0.9
	case DifficultyHard:
		cfg.Physics.JumpVelocity *= 0.95
		cfg.Physics.MoveSpeed *= 1.2
		cfg.Physics.Bounce = 0.3
	}
}
