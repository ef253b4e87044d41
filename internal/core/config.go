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

// TickMillis returns the duration of one simulation tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}

// Status is the lifecycle phase of a round.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusWon      Status = "won"
	StatusGameOver Status = "game_over"
)

// Over reports whether the round has ended (lost or won).
func (s Status) Over() bool {
	return s == StatusGameOver || s == StatusWon
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives, 0 for games without lives
	Status   Status // Lifecycle phase
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
}

// NewGameState builds a GameState with the derived flags filled in.
func NewGameState(score, lives int, status Status) GameState {
	return GameState{
		Score:    score,
		Lives:    lives,
		Status:   status,
		GameOver: status.Over(),
		Paused:   status == StatusPaused,
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}
