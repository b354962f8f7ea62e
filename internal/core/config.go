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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level number (1-indexed), 0 if not applicable
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies the type of a game event.
type EventKind int

const (
	// EventMatch fires when a same-colored group is cleared.
	// Value is the number of bubbles in the group.
	EventMatch EventKind = iota
	// EventLevelCleared fires exactly once when the board empties.
	// Value is the level number that was cleared.
	EventLevelCleared
	// EventShotsExhausted fires exactly once when shots run out with no
	// projectile in flight. Value is the level number that was lost.
	EventShotsExhausted
	// EventBoardOverflow fires exactly once when the field overflows:
	// a bubble settled on the loss line or no empty cell was left to
	// snap to. Carries no reward, like EventShotsExhausted.
	EventBoardOverflow
	// EventLevelStarted fires when a new level's layout is generated.
	// Value is the level number.
	EventLevelStarted
)

// Event is a discrete gameplay occurrence surfaced to the platform layer.
// The core reports what happened; reward and persistence policy live outside.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
