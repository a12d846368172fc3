package core

// Color is the foreground colour of a screen cell.
// The platform maps each value to an ANSI 256-colour code.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorSky           // Background sky
	ColorSun           // Sun in the sky
	ColorGrass         // Platforms
	ColorPlayer        // Orange player body
	ColorCoin          // Gold coin
	ColorText          // HUD text
	ColorWin           // "You Win!" banner
)
