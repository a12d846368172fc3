package coinquest

import (
	"fmt"
	"unicode/utf8"

	"github.com/theocoin/coinquest/internal/core"
)

// Visual characters for rendering
const (
	SunChar      = '●'
	PlatformChar = '▓'
	PlayerChar   = '█'
	EyeChar      = '•'
	CoinChar     = '$'
)

// sunBox is the sun from the sky backdrop, in world units.
var sunBox = core.BoxAt(125, 167, 120, 120)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := core.Viewport{
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		Cols:   dst.Width(),
		Rows:   dst.Height(),
	}

	dst.DrawRect(vp.ToCells(sunBox), SunChar, core.ColorSun)

	for _, p := range g.world.platforms {
		dst.DrawRect(vp.ToCells(p), PlatformChar, core.ColorGrass)
	}

	for _, c := range g.coins {
		if c.collected {
			continue
		}
		r := vp.ToCells(c.box)
		dst.SetCell(r.X+r.W/2, r.Y+r.H/2, CoinChar, core.ColorCoin)
	}

	g.drawPlayer(dst, vp)

	// HUD
	dst.DrawText(1, 0, fmt.Sprintf("Coins: %d/%d", g.score, len(g.coins)), core.ColorText)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.won {
		drawCenteredMessage(dst, "You Win!", "Press R to play again")
	}
}

// drawPlayer renders the player body with an eye facing the direction of travel.
func (g *Game) drawPlayer(dst *core.Screen, vp core.Viewport) {
	r := vp.ToCells(g.player.box)
	dst.DrawRect(r, PlayerChar, core.ColorPlayer)

	eyeX := r.X + r.W/2
	switch {
	case g.player.vx < 0:
		eyeX = r.X
	case g.player.vx > 0:
		eyeX = r.Right() - 1
	}
	dst.SetCell(eyeX, r.Y, EyeChar, core.ColorText)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	dst.DrawTextCentered(box.Y+1, title, core.ColorWin)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorText)
}
