// Package coinquest implements Theo Coin Quest: run and jump across three
// platforms and collect every coin to win.
package coinquest

import (
	"github.com/theocoin/coinquest/internal/config"
	"github.com/theocoin/coinquest/internal/core"
	"github.com/theocoin/coinquest/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "coinquest"

// coin is a collectible placed by its centre.
type coin struct {
	box       core.Box
	collected bool
}

// Game implements the Coin Quest logic.
type Game struct {
	cfg       config.QuestConfig
	hasConfig bool // cfg was injected and must not be reloaded
	runtime   core.RuntimeConfig
	world     world
	player    body
	coins     []coin
	score     int
	tickCount int
	won       bool
	paused    bool
}

// configPath and difficultyPreset are set from the CLI before the game starts.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a game that loads its level from the config search path.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always plays the given level.
func NewWithConfig(cfg config.QuestConfig) *Game {
	return &Game{cfg: cfg, hasConfig: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Theo Coin Quest"
}

// Reset loads the level and puts the player back at the start.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	if !g.hasConfig {
		cfg, err := config.LoadQuest(configPath)
		if err != nil {
			cfg = config.DefaultQuestConfig()
		}
		if difficultyPreset != "" {
			config.ApplyQuestPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.world = world{
		width:   g.cfg.World.Width,
		height:  g.cfg.World.Height,
		physics: g.cfg.Physics,
	}
	g.world.platforms = g.world.platforms[:0]
	for _, p := range g.cfg.Platforms {
		g.world.platforms = append(g.world.platforms, core.BoxAt(p.X, p.Y, p.Width, p.Height))
	}

	pl := g.cfg.Player
	g.player = body{box: core.BoxAt(pl.X, pl.Y, pl.Width, pl.Height)}

	g.coins = g.coins[:0]
	size := g.cfg.Coins.Size
	for _, pos := range g.cfg.Coins.Positions {
		g.coins = append(g.coins, coin{box: core.BoxAt(pos.X, pos.Y, size, size)})
	}

	g.score = 0
	g.tickCount = 0
	g.won = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.won {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	speed := g.cfg.Physics.MoveSpeed
	switch {
	case in.Has(core.ActionLeft):
		g.player.vx = -speed
	case in.Has(core.ActionRight):
		g.player.vx = speed
	default:
		g.player.vx = 0
	}

	if in.Has(core.ActionJump) && g.player.blockedDown {
		g.player.vy = -g.cfg.Physics.JumpVelocity
	}

	g.world.step(&g.player, 1/float64(g.runtime.TickRate))
	g.collectCoins()

	return core.StepResult{State: g.State()}
}

// collectCoins picks up every coin the player overlaps.
func (g *Game) collectCoins() {
	for i := range g.coins {
		c := &g.coins[i]
		if c.collected || !g.player.box.Intersects(c.box) {
			continue
		}
		c.collected = true
		g.score++

		if g.score >= len(g.coins) {
			g.won = true
			g.player.vx = 0
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Total:    len(g.coins),
		Ticks:    g.tickCount,
		Won:      g.won,
		GameOver: g.won,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
