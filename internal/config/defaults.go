package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// Matches defaults/runner.yaml; used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:        60,
			Height:       15,
			GroundOffset: 3,
		},
		Player: PlayerConfig{
			X: 5,
		},
		Physics: PhysicsConfig{
			JumpVelocity: -1.6,
			Gravity:      0.4,
		},
		Obstacles: ObstacleConfig{
			MinGap: 25,
			MaxGap: 45,
		},
		Pace: PaceConfig{
			TickMs:         80,
			BoostedTickMs:  60,
			BoostScore:     500,
			GameOverTickMs: 50,
			InputPollMs:    10,
		},
		Glyphs: GlyphConfig{
			Running:  "R",
			Jumping:  "^",
			Crashed:  "X",
			Obstacle: "#",
			Ground:   "-",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
