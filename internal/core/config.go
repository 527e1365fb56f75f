package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in cells
	ScreenH int   // Screen height in cells
	FPS     int   // Simulation steps per second (fixed timestep)
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     10,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse game state the platform needs to know about.
type Phase int

const (
	PhasePaused Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameState communicates the game status to the platform after each tick.
type GameState struct {
	Score int
	Phase Phase
}

// Event is a transient occurrence within a single tick, used by the platform
// to trigger fire-and-forget side effects such as sound cues.
type Event int

const (
	EventAteFood Event = iota
	EventGameOver
)

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
