// Package platform holds the pieces shared by the terminal drivers.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rex-runner/internal/core"
)

// LogStep records state transitions between two consecutive steps.
func LogStep(logger *log.Logger, prev core.GameState, result core.StepResult) {
	if result.Restarted {
		logger.Info("restart", "previous_score", prev.Score)
		prev = core.GameState{}
	}
	if result.State.Boosted && !prev.Boosted {
		logger.Info("speed boost", "score", result.State.Score, "interval", result.Interval)
	}
	if result.State.GameOver && !prev.GameOver {
		logger.Info("game over", "score", result.State.Score)
	}
}
