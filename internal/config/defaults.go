package config

import (
	_ "embed"
)

//go:embed defaults/app.yaml
var defaultAppYAML []byte

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// DefaultAppConfig returns the built-in web app configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Name:            "Theo Coin Quest",
		ShortName:       "TheoGame",
		Description:     "A kid-friendly platformer that works offline as a PWA.",
		ThemeColor:      "#1e3a8a",
		BackgroundColor: "#0f172a",
		Display:         "standalone",
		Orientation:     "portrait-primary",
		Icons: IconsConfig{
			OutputDir:   "public",
			Compression: "best",
			Targets: []IconTarget{
				{File: "pwa-192.png", Size: 192},
				{File: "pwa-512.png", Size: 512},
				{File: "pwa-512-maskable.png", Size: 512, Maskable: true},
			},
		},
	}
}

// DefaultQuestConfig returns the built-in Coin Quest level.
func DefaultQuestConfig() QuestConfig {
	coins := make([]QuestPoint, 0, 5)
	for i, x := range []float64{150, 300, 420, 610, 740} {
		coins = append(coins, QuestPoint{X: x, Y: 390 - float64(i)*55})
	}

	return QuestConfig{
		World: QuestWorld{Width: 800, Height: 600},
		Physics: QuestPhysics{
			Gravity:      950,
			MoveSpeed:    220,
			JumpVelocity: 620,
			Bounce:       0.1,
			SettleSpeed:  60,
		},
		Player: QuestSprite{X: 80, Y: 520, Width: 32, Height: 48},
		Platforms: []QuestSprite{
			{X: 400, Y: 585, Width: 1024, Height: 32}, // ground
			{X: 120, Y: 430, Width: 307.2, Height: 32},
			{X: 680, Y: 330, Width: 307.2, Height: 32},
		},
		Coins: QuestCoins{Size: 24, Positions: coins},
		Input: QuestInput{HoldTicks: 8},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "app":
		return defaultAppYAML
	case "quest":
		return defaultQuestYAML
	default:
		return nil
	}
}
