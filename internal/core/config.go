package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// RunResult summarises a finished run for the platform layer.
type RunResult struct {
	Score          int
	CleanCollected int
	BestStreak     int
	FactsSeen      int
	Character      string
	Difficulty     string
	Outcome        string
	Message        string
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the run has ended
	Paused   bool   // Whether the game is paused by the player
	Phase    string // Name of the session phase
	Progress int    // Water meter percentage, 0..100

	// Result is set only on the step where a run ended.
	Result *RunResult
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
