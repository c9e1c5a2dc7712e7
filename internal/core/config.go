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

// FrameDT returns the duration of one tick in seconds.
func (c RuntimeConfig) FrameDT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the summary of the simulation the platform needs after a tick.
type GameState struct {
	Screen   string // Active screen name (menu, settings, playing, gameover)
	Score    int
	Wave     int
	Ammo     int
	GameOver bool
}

// EventKind classifies side effects reported by a simulation step.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventWaveSpawned
	EventShotFired
	EventEnemyKilled
	EventEnemyEscaped
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state_changed"
	case EventWaveSpawned:
		return "wave_spawned"
	case EventShotFired:
		return "shot_fired"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventEnemyEscaped:
		return "enemy_escaped"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a side-effect request emitted by a step. The platform decides
// what to do with it (log it, play a sound); the simulation does not care.
type Event struct {
	Kind   EventKind
	Detail string
	Value  int
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
