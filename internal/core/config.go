package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between two simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultTickInterval is the reference period between two snake moves.
const DefaultTickInterval = 250 * time.Millisecond

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Length   int  // Current snake length, head and tail included
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and what happened during the tick.
type StepResult struct {
	State GameState
	Ate   bool // Food was consumed this tick
	Died  bool // The tick ended the game
}
