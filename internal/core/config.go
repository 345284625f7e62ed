package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of a game session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Category   string // Active word category
	Profile    string // Active difficulty profile
	Word       string // Current target word
	Filled     int    // Gaps filled in the current round
	Gaps       int    // Total gaps in the current round
	Won        bool   // Current round is complete, advance pending
	Paused     bool   // Whether the game is paused
	Unplayable bool   // No playable word is available
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Snapped counts gap commits made during this tick.
	Snapped int

	// RoundWon is true only on the tick that completed the round.
	RoundWon bool

	// Advanced is true when a new round started during this tick.
	Advanced bool
}
