// Package config provides YAML-based tuning configuration for the runner.
// Values describe physics, pacing and glyphs; they never change the rules.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Pace      PaceConfig     `yaml:"pace"`
	Glyphs    GlyphConfig    `yaml:"glyphs"`
}

// ScreenConfig defines the fixed character grid.
type ScreenConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"` // Ground row = Height - GroundOffset
}

// GroundRow returns the row the character runs on.
func (s ScreenConfig) GroundRow() int {
	return s.Height - s.GroundOffset
}

// PlayerConfig defines where the character stands.
type PlayerConfig struct {
	X int `yaml:"x"` // Fixed column; also the only collision column
}

// PhysicsConfig defines the jump arc.
type PhysicsConfig struct {
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = upward
	Gravity      float64 `yaml:"gravity"`       // Added to velocity every airborne tick
}

// ObstacleConfig defines the spawn gap range in ticks (inclusive).
type ObstacleConfig struct {
	MinGap int `yaml:"min_gap"`
	MaxGap int `yaml:"max_gap"`
}

// GlyphConfig defines the single-character visuals.
// Each value must be a string holding exactly one printable character.
type GlyphConfig struct {
	Running  string `yaml:"running"`
	Jumping  string `yaml:"jumping"`
	Crashed  string `yaml:"crashed"`
	Obstacle string `yaml:"obstacle"`
	Ground   string `yaml:"ground"`
}

// Glyph returns the first rune of s, or fallback when s is empty.
func Glyph(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// Validate reports the first setting that would make the game unplayable.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	// The ground line is drawn one row below the ground row.
	if g := c.Screen.GroundRow(); g < 1 || g+1 >= c.Screen.Height {
		errs = append(errs, fmt.Errorf("ground_offset %d puts the ground row outside the grid", c.Screen.GroundOffset))
	}
	if c.Player.X < 0 || c.Player.X >= c.Screen.Width {
		errs = append(errs, fmt.Errorf("player x %d outside grid width %d", c.Player.X, c.Screen.Width))
	}
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("jump_velocity must be negative, got %v", c.Physics.JumpVelocity))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Obstacles.MinGap < 0 || c.Obstacles.MaxGap < c.Obstacles.MinGap {
		errs = append(errs, fmt.Errorf("invalid spawn gap range [%d, %d]", c.Obstacles.MinGap, c.Obstacles.MaxGap))
	}
	if err := c.Pace.validate(); err != nil {
		errs = append(errs, err)
	}

	glyphs := map[string]string{
		"running":  c.Glyphs.Running,
		"jumping":  c.Glyphs.Jumping,
		"crashed":  c.Glyphs.Crashed,
		"obstacle": c.Glyphs.Obstacle,
		"ground":   c.Glyphs.Ground,
	}
	for _, name := range []string{"running", "jumping", "crashed", "obstacle", "ground"} {
		if n := len([]rune(glyphs[name])); n != 1 {
			errs = append(errs, fmt.Errorf("glyph %s must be one character, got %q", name, glyphs[name]))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
