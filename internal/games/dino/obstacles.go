package dino

import (
	"github.com/vovakirdan/rex-runner/internal/config"
)

// Rand is the source of spawn gaps. *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform int in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// Obstacle is a single ground-level block the character must jump over.
type Obstacle struct {
	X int // Column
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order, oldest first.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       Rand
	spawnX    int // Column new obstacles appear at
	countdown int // Ticks until next spawn
	cfg       config.ObstacleConfig
}

// NewObstacleManager creates an empty manager and draws the first spawn gap.
func NewObstacleManager(rng Rand, screenW int, cfg config.ObstacleConfig) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		spawnX:    screenW - 1,
		cfg:       cfg,
	}
	om.countdown = om.nextGap()
	return om
}

// Advance moves every obstacle one column left and drops those past column 0.
func (om *ObstacleManager) Advance() {
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		o.X--
		if o.X >= 0 {
			kept = append(kept, o)
		}
	}
	om.obstacles = kept
}

// Spawn runs the countdown: at zero it adds an obstacle at the right edge
// and draws a new gap, otherwise it counts down by one.
// Returns true if an obstacle was added.
func (om *ObstacleManager) Spawn() bool {
	if om.countdown > 0 {
		om.countdown--
		return false
	}

	om.obstacles = append(om.obstacles, Obstacle{X: om.spawnX})
	om.countdown = om.nextGap()
	return true
}

// nextGap draws a uniform gap from [MinGap, MaxGap].
func (om *ObstacleManager) nextGap() int {
	span := om.cfg.MaxGap - om.cfg.MinGap
	if span <= 0 {
		return om.cfg.MinGap
	}
	return om.cfg.MinGap + om.rng.IntN(span+1)
}

// CollidesAt returns true if an obstacle occupies column x.
func (om *ObstacleManager) CollidesAt(x int) bool {
	for _, o := range om.obstacles {
		if o.X == x {
			return true
		}
	}
	return false
}

// Obstacles returns the current obstacles, oldest first.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Countdown returns the ticks left before the next spawn.
func (om *ObstacleManager) Countdown() int {
	return om.countdown
}
