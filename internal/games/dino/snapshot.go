package dino

import "time"

// Snapshot is a plain-data copy of the complete game state.
// Two games fed the same seed and inputs produce equal snapshots.
type Snapshot struct {
	DinoY     float64
	DinoVel   float64
	Airborne  bool
	Obstacles []int // Columns, oldest first
	Score     int
	GameOver  bool
	Boosted   bool
	Countdown int
	Interval  time.Duration
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	cols := make([]int, 0, len(g.obstacles.Obstacles()))
	for _, o := range g.obstacles.Obstacles() {
		cols = append(cols, o.X)
	}

	return Snapshot{
		DinoY:     g.dino.Y(),
		DinoVel:   g.dino.Velocity(),
		Airborne:  g.dino.Airborne(),
		Obstacles: cols,
		Score:     g.score,
		GameOver:  g.gameOver,
		Boosted:   g.boosted,
		Countdown: g.obstacles.Countdown(),
		Interval:  g.interval,
	}
}
