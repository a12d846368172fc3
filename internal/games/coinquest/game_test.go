package coinquest

import (
	"math"
	"strings"
	"testing"

	"github.com/theocoin/coinquest/internal/config"
	"github.com/theocoin/coinquest/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Player: "test"}
}

func newTestGame(cfg config.QuestConfig) *Game {
	g := NewWithConfig(cfg)
	g.Reset(testRuntime())
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// settle runs idle ticks until the player rests on something.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 600; i++ {
		g.Step(input())
		if g.player.blockedDown && g.player.vy == 0 {
			return
		}
	}
	t.Fatal("player never came to rest")
}

func TestGameReset(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())

	for i := 0; i < 50; i++ {
		g.Step(input(core.ActionRight, core.ActionJump))
	}
	g.Reset(testRuntime())

	s := g.State()
	if s.Score != 0 || s.Ticks != 0 || s.Won || s.GameOver || s.Paused {
		t.Errorf("Reset should clear state, got %+v", s)
	}
	if s.Total != 5 {
		t.Errorf("expected 5 coins, got %d", s.Total)
	}
	if cx, cy := g.player.box.Center(); cx != 80 || cy != 520 {
		t.Errorf("player should start at (80, 520), got (%v, %v)", cx, cy)
	}
	if len(g.world.platforms) != 3 {
		t.Errorf("expected 3 platforms, got %d", len(g.world.platforms))
	}
}

func TestPlayerLandsOnGround(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	settle(t, g)

	// Ground is centred at y=585 with height 32.
	if got := g.player.box.Bottom(); math.Abs(got-569) > 1e-9 {
		t.Errorf("player bottom = %v, expected to rest on the ground at 569", got)
	}
}

func TestHorizontalMovement(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	settle(t, g)
	startX := g.player.box.X

	for i := 0; i < 30; i++ {
		g.Step(input(core.ActionRight))
	}
	// 220 units/s for half a second.
	if moved := g.player.box.X - startX; math.Abs(moved-110) > 1e-6 {
		t.Errorf("moved %v units right, expected 110", moved)
	}

	g.Step(input())
	if g.player.vx != 0 {
		t.Errorf("releasing the keys should stop the player, vx=%v", g.player.vx)
	}
}

func TestWorldBounds(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())

	for i := 0; i < 120; i++ {
		g.Step(input(core.ActionLeft))
	}
	if g.player.box.X != 0 {
		t.Errorf("player should stop at the left edge, x=%v", g.player.box.X)
	}

	for i := 0; i < 600; i++ {
		g.Step(input(core.ActionRight))
	}
	if got := g.player.box.Right(); got != 800 {
		t.Errorf("player should stop at the right edge, right=%v", got)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	cfg.Platforms = cfg.Platforms[:1] // ground only
	g := newTestGame(cfg)
	settle(t, g)

	g.Step(input(core.ActionJump))
	if g.player.vy >= 0 {
		t.Fatalf("jump should give upward velocity, vy=%v", g.player.vy)
	}

	vy := g.player.vy
	g.Step(input(core.ActionJump))
	if g.player.vy <= vy {
		t.Errorf("mid-air jump must be ignored: vy went from %v to %v", vy, g.player.vy)
	}
}

func TestJumpClearsLedges(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	cfg.Platforms = cfg.Platforms[:1] // ground only, nothing overhead
	g := newTestGame(cfg)
	settle(t, g)

	ground := g.player.box.Bottom()
	highest := ground
	g.Step(input(core.ActionJump))
	for i := 0; i < 120; i++ {
		g.Step(input())
		highest = math.Min(highest, g.player.box.Bottom())
	}

	// The lower ledge top sits 155 units above the ground and the upper
	// ledge 100 above the lower one.
	if rise := ground - highest; rise <= 155 {
		t.Errorf("jump rises %v units, not enough to reach the first ledge", rise)
	}
}

func TestHeadBumpsLedge(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	settle(t, g)

	// The start position is under the lower ledge (bottom at y=446).
	g.Step(input(core.ActionJump))
	for i := 0; i < 60; i++ {
		g.Step(input())
		if g.player.box.Y < 446-1e-9 {
			t.Fatalf("player passed through the ledge: top=%v", g.player.box.Y)
		}
	}
}

func TestCollectCoinsAndWin(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	// Two coins overlapping the start position, one out of reach.
	cfg.Coins.Positions = []config.QuestPoint{{X: 80, Y: 520}, {X: 90, Y: 530}, {X: 700, Y: 50}}
	g := newTestGame(cfg)

	res := g.Step(input())
	if res.State.Score != 2 {
		t.Fatalf("expected 2 coins collected, got %d", res.State.Score)
	}
	if res.State.Won {
		t.Fatal("game should not be won with a coin left")
	}

	// Collecting the same coins again must not count.
	res = g.Step(input())
	if res.State.Score != 2 {
		t.Errorf("score changed to %d without new coins", res.State.Score)
	}

	// Drop the last coin onto the player.
	g.coins[2].box = g.player.box
	res = g.Step(input(core.ActionRight))
	if !res.State.Won || !res.State.GameOver {
		t.Fatalf("collecting every coin should win, got %+v", res.State)
	}
	if g.player.vx != 0 {
		t.Errorf("player should stop on win, vx=%v", g.player.vx)
	}

	// A won game ignores further input.
	x, ticks := g.player.box.X, res.State.Ticks
	res = g.Step(input(core.ActionRight))
	if g.player.box.X != x || res.State.Ticks != ticks {
		t.Error("won game should not advance")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause should toggle on")
	}
	y, ticks := g.player.box.Y, g.tickCount
	g.Step(input(core.ActionRight))
	if g.player.box.Y != y || g.tickCount != ticks {
		t.Error("paused game should not advance")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("pause should toggle off")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		switch {
		case i%50 < 30:
			inputs[i] = input(core.ActionRight)
		case i%50 == 35:
			inputs[i] = input(core.ActionJump, core.ActionLeft)
		default:
			inputs[i] = input()
		}
	}

	run := func() (core.GameState, core.Box) {
		g := newTestGame(config.DefaultQuestConfig())
		var s core.GameState
		for _, in := range inputs {
			s = g.Step(in).State
		}
		return s, g.player.box
	}

	s1, b1 := run()
	s2, b2 := run()
	if s1 != s2 || b1 != b2 {
		t.Errorf("determinism failed: %+v %+v vs %+v %+v", s1, b1, s2, b2)
	}
}

func TestLowTickRateDoesNotTunnel(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	cfg.Player.Y = 40 // drop from near the top of the world
	cfg.Player.X = 400
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 5})

	for i := 0; i < 50; i++ {
		g.Step(input())
	}
	if got := g.player.box.Bottom(); math.Abs(got-569) > 1e-9 {
		t.Errorf("player should land on the ground, bottom=%v", got)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Coins: 0/5") {
		t.Error("HUD should show the coin counter")
	}
	if n := strings.Count(out, string(CoinChar)); n != 5 {
		t.Errorf("expected 5 coins on screen, got %d", n)
	}
	if !strings.ContainsRune(out, PlayerChar) || !strings.ContainsRune(out, PlatformChar) {
		t.Error("player and platforms should be drawn")
	}

	for i := range g.coins {
		g.coins[i].box = g.player.box
	}
	g.Step(input())
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "You Win!") {
		t.Error("win banner should be shown after collecting every coin")
	}
	if strings.ContainsRune(out, CoinChar) {
		t.Error("collected coins should not be drawn")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	g.Render(core.NewScreen(0, 0)) // must not panic
	g.Render(core.NewScreen(3, 2))
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != GameID || g.Title() != "Theo Coin Quest" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}
