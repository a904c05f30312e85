package core

import "time"

// RuntimeConfig describes one play session: the grid and the RNG seed.
type RuntimeConfig struct {
	ScreenW int   // Grid width in characters
	ScreenH int   // Grid height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Boosted  bool // Whether the one-way speed boost has kicked in
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Interval is how long the driver should wait before the next step.
	Interval time.Duration

	// Restarted is set when this step discarded a finished game.
	Restarted bool
}
