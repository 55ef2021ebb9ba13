// Package config provides YAML-based game configuration loading and
// difficulty management for flappycat.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for the game.
// Positions and speeds are in playfield units: 0..1 on both axes, per second.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration
	FlapImpulse  float64 `yaml:"flap_impulse"`  // Added to vertical velocity on flap (negative = up)
	PipeVelocity float64 `yaml:"pipe_velocity"` // Horizontal pipe velocity (negative = left)
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	MinMargin  float64 `yaml:"min_margin"`  // Spawn margin at max difficulty
	MaxMargin  float64 `yaml:"max_margin"`  // Spawn margin at zero difficulty
	MinOpening float64 `yaml:"min_opening"` // Gap height at max difficulty
	MaxOpening float64 `yaml:"max_opening"` // Gap height at zero difficulty
}

// FlappyPlayer defines player parameters.
type FlappyPlayer struct {
	X float64 `yaml:"x"` // Fixed horizontal position
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases with score.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// AudioConfig defines the audio driver parameters.
type AudioConfig struct {
	Enabled           bool    `yaml:"enabled"`
	SampleRate        int     `yaml:"sample_rate"`
	Volume            float64 `yaml:"volume"`              // Master gain while running
	TopFrequency      float64 `yaml:"top_frequency"`       // Hz for y = 0
	BottomFrequency   float64 `yaml:"bottom_frequency"`    // Hz for y = 1
	MaxChirpFrequency float64 `yaml:"max_chirp_frequency"` // Chirp rate at zero distance
	MinChirpFrequency float64 `yaml:"min_chirp_frequency"` // Chirp rate at full distance
}

// Progression types for difficulty.progression.type.
const (
	ProgressionScore = "score" // Difficulty rises with the score up to max_at
	ProgressionNone  = "none"  // Difficulty stays at initial_level
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a flag value into a preset.
// An empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports the first value that would break the simulation.
func (c FlappyConfig) Validate() error {
	o := c.Obstacles
	switch {
	case c.Physics.PipeVelocity >= 0:
		return fmt.Errorf("%w: physics.pipe_velocity must be negative, got %v", ErrInvalidConfig, c.Physics.PipeVelocity)
	case c.Player.X <= 0 || c.Player.X >= 1:
		return fmt.Errorf("%w: player.x must be in (0, 1), got %v", ErrInvalidConfig, c.Player.X)
	case o.MinOpening <= 0 || o.MaxOpening >= 1:
		return fmt.Errorf("%w: obstacle openings must be in (0, 1), got %v..%v", ErrInvalidConfig, o.MinOpening, o.MaxOpening)
	case o.MinOpening > o.MaxOpening:
		return fmt.Errorf("%w: obstacles.min_opening %v exceeds max_opening %v", ErrInvalidConfig, o.MinOpening, o.MaxOpening)
	case o.MinMargin <= 0 || o.MinMargin > o.MaxMargin || o.MaxMargin >= 1:
		return fmt.Errorf("%w: obstacle margins must satisfy 0 < min <= max < 1, got %v..%v", ErrInvalidConfig, o.MinMargin, o.MaxMargin)
	case c.Difficulty.Progression.Type != ProgressionScore && c.Difficulty.Progression.Type != ProgressionNone:
		return fmt.Errorf("%w: difficulty.progression.type must be %q or %q, got %q", ErrInvalidConfig, ProgressionScore, ProgressionNone, c.Difficulty.Progression.Type)
	case c.Difficulty.Progression.MaxAt <= 0:
		return fmt.Errorf("%w: difficulty.progression.max_at must be positive, got %d", ErrInvalidConfig, c.Difficulty.Progression.MaxAt)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: difficulty.initial_level must be in [0, 1], got %v", ErrInvalidConfig, c.Difficulty.InitialLevel)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalidConfig, c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	return nil
}
