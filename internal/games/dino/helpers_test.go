package dino

import (
	"github.com/vovakirdan/rex-runner/internal/config"
)

// constRand always returns v (clamped into range).
type constRand struct{ v int }

func (r constRand) IntN(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

// place inserts an obstacle directly to stage collisions.
func (om *ObstacleManager) place(x int) {
	om.obstacles = append(om.obstacles, Obstacle{X: x})
}

// quietConfig returns defaults with spawning pushed far out, so staged
// obstacles are the only ones on screen.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.MinGap = 10000
	cfg.Obstacles.MaxGap = 10000
	return cfg
}
