// Package dino implements a Chrome Dino-style endless runner.
// The character runs in place at a fixed column while obstacles scroll in
// from the right; the player must jump over them.
package dino

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/rex-runner/internal/config"
	"github.com/vovakirdan/rex-runner/internal/core"
)

// Game implements the runner game logic.
// It holds no terminal state; drivers feed it input frames and render it.
type Game struct {
	dino      Dino
	obstacles *ObstacleManager
	score     int           // Ticks survived
	gameOver  bool          // Terminal until Restart
	interval  time.Duration // Pacing while running
	boosted   bool          // One-way guard for the speed boost
	groundRow int
	cfg       config.RunnerConfig
	glyphs    glyphs
	rng       Rand
}

// NewRand returns a PCG-backed source for the given seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed) //nolint:gosec // sign does not matter for seeding
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// New creates a game in its initial state. cfg must be valid.
// The game keeps rng for every spawn gap, across restarts.
func New(cfg config.RunnerConfig, rng Rand) *Game {
	groundRow := cfg.Screen.GroundRow()
	return &Game{
		dino:      NewDino(groundRow, cfg.Physics),
		obstacles: NewObstacleManager(rng, cfg.Screen.Width, cfg.Obstacles),
		interval:  cfg.Pace.TickInterval(),
		groundRow: groundRow,
		cfg:       cfg,
		glyphs:    newGlyphs(cfg.Glyphs),
		rng:       rng,
	}
}

// Restart discards the whole state, entities included, and starts over.
func (g *Game) Restart() {
	*g = *New(g.cfg, g.rng)
}

// Step applies one frame of input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	restarted := false
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Restart()
		restarted = true
	}

	if !g.gameOver {
		if in.Has(core.ActionJump) {
			g.dino.Jump()
		}
		g.Tick()
	}

	return core.StepResult{
		State:     g.State(),
		Interval:  g.Interval(),
		Restarted: restarted,
	}
}

// Tick advances the simulation by one frame. No-op once the game is over.
func (g *Game) Tick() {
	if g.gameOver {
		return
	}

	g.dino.Advance()
	g.score++

	if !g.boosted && g.cfg.Pace.ShouldBoost(g.score) {
		g.interval = g.cfg.Pace.BoostedInterval()
		g.boosted = true
	}

	g.obstacles.Advance()
	g.obstacles.Spawn()

	// Only a character standing on the ground row can be hit.
	if g.dino.Row() == g.groundRow && g.obstacles.CollidesAt(g.cfg.Player.X) {
		g.gameOver = true
	}
}

// Jump starts a jump unless the game is over.
func (g *Game) Jump() {
	if g.gameOver {
		return
	}
	g.dino.Jump()
}

// Interval returns how long to wait before the next frame.
func (g *Game) Interval() time.Duration {
	if g.gameOver {
		return g.cfg.Pace.GameOverInterval()
	}
	return g.interval
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Boosted:  g.boosted,
	}
}

// Dino returns a copy of the character.
func (g *Game) Dino() Dino {
	return g.dino
}

// Obstacles returns the live obstacles, oldest first.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles.Obstacles()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}
