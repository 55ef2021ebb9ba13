package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      1.6,
			FlapImpulse:  -0.65,
			PipeVelocity: -0.12,
		},
		Obstacles: FlappyObstacles{
			MinMargin:  0.1,
			MaxMargin:  0.5,
			MinOpening: 0.3,
			MaxOpening: 0.8,
		},
		Player: FlappyPlayer{
			X: 0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 50,
			},
		},
		Audio: AudioConfig{
			Enabled:           true,
			SampleRate:        44100,
			Volume:            0.4,
			TopFrequency:      880,
			BottomFrequency:   440,
			MaxChirpFrequency: 40,
			MinChirpFrequency: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
