package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Field dimensions are world units (pixels); frontends project them onto
// their own surface.
type RuntimeConfig struct {
	FieldW   int   // Play field width
	FieldH   int   // Play field height
	TickRate int   // Frames per second requested from the scheduler (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   600,
		FieldH:   590,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the aggregate state snapshot handed to frontends after each tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the store
	Lives     int  // Remaining lives
	Level     int  // Current level
	Enraged   bool // Whether enraged mode is active
	GameOver  bool // Lives exhausted or the formation reached the cannon
	Victory   bool // Formation destroyed
}

// Terminal reports whether the game has ended (victory or defeat).
func (s GameState) Terminal() bool {
	return s.GameOver || s.Victory
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
