package config

import "math"

// DifficultyManager maps the current score to a difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the difficulty level (0.0 to 1.0) for a score.
// It depends on nothing but the score and the configuration, and reaches
// exactly 1.0 once the score hits progression.max_at.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != ProgressionScore {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	if score >= maxAt {
		return 1.0
	}
	if score <= 0 {
		return d.initialLevel
	}

	progress := float64(score) / float64(maxAt)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Lerp interpolates from easy (level 0) to hard (level 1) for a score.
func (d *DifficultyManager) Lerp(easy, hard float64, score int) float64 {
	level := d.Level(score)
	if level >= 1.0 {
		return hard
	}
	return easy + level*(hard-easy)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
