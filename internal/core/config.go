package core

// RuntimeConfig contains configuration passed to the frontend at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the scheduler (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 = time based
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

// GameState is the frontend's view of a run.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score this session
	Running  bool // Whether frames advance the simulation
	GameOver bool // Whether the last run ended
}
