package core

// RuntimeConfig is what the platform hands a game when it starts.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second
	Player   string // Who is playing (local user or SSH user)
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 fps.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Player:   "local",
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score    int  // Coins collected
	Total    int  // Coins in the level
	Ticks    int  // Simulation ticks since the run started (excluding pauses)
	Won      bool // All coins collected
	GameOver bool // Run has ended; only restart is accepted
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
