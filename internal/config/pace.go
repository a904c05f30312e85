package config

import (
	"errors"
	"time"
)

// PaceConfig defines frame pacing and the one-way speed boost.
type PaceConfig struct {
	TickMs         int `yaml:"tick_ms"`           // Interval while running, before the boost
	BoostedTickMs  int `yaml:"boosted_tick_ms"`   // Interval once the boost is applied
	BoostScore     int `yaml:"boost_score"`       // Score at which the boost applies
	GameOverTickMs int `yaml:"game_over_tick_ms"` // Loop pacing while the end screen shows
	InputPollMs    int `yaml:"input_poll_ms"`     // Max wait for one input event per frame
}

// TickInterval returns the default running interval.
func (p PaceConfig) TickInterval() time.Duration {
	return time.Duration(p.TickMs) * time.Millisecond
}

// BoostedInterval returns the interval after the speed boost.
func (p PaceConfig) BoostedInterval() time.Duration {
	return time.Duration(p.BoostedTickMs) * time.Millisecond
}

// GameOverInterval returns the pacing used while game over.
func (p PaceConfig) GameOverInterval() time.Duration {
	return time.Duration(p.GameOverTickMs) * time.Millisecond
}

// PollTimeout returns the bounded input wait.
func (p PaceConfig) PollTimeout() time.Duration {
	return time.Duration(p.InputPollMs) * time.Millisecond
}

// ShouldBoost reports whether score has reached the boost threshold.
func (p PaceConfig) ShouldBoost(score int) bool {
	return score >= p.BoostScore
}

func (p PaceConfig) validate() error {
	if p.TickMs <= 0 || p.BoostedTickMs <= 0 || p.GameOverTickMs <= 0 {
		return errors.New("pace intervals must be positive")
	}
	if p.InputPollMs < 0 {
		return errors.New("input_poll_ms must not be negative")
	}
	if p.BoostScore < 0 {
		return errors.New("boost_score must not be negative")
	}
	return nil
}
