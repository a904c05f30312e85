package dino

import (
	"math"

	"github.com/vovakirdan/rex-runner/internal/config"
)

// Pose is the visual state of the character.
type Pose int

const (
	PoseRunning Pose = iota
	PoseJumping
	PoseCrashed
)

// String returns a human-readable name for the pose.
func (p Pose) String() string {
	switch p {
	case PoseRunning:
		return "running"
	case PoseJumping:
		return "jumping"
	case PoseCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Dino is the player character. Y grows downward; the ground row is the
// largest Y it can reach.
type Dino struct {
	y        float64 // Vertical position in rows
	velocity float64 // Rows per tick, negative = up
	airborne bool
	groundY  float64
	physics  config.PhysicsConfig
}

// NewDino creates a grounded character standing on groundRow.
func NewDino(groundRow int, physics config.PhysicsConfig) Dino {
	return Dino{
		y:       float64(groundRow),
		groundY: float64(groundRow),
		physics: physics,
	}
}

// Jump starts a jump. Ignored while airborne: no double jumps.
func (d *Dino) Jump() {
	if d.airborne {
		return
	}
	d.airborne = true
	d.velocity = d.physics.JumpVelocity
}

// Advance integrates one tick of the jump arc and lands on the ground.
func (d *Dino) Advance() {
	if !d.airborne {
		return
	}

	d.y += d.velocity
	d.velocity += d.physics.Gravity

	if d.y >= d.groundY {
		d.y = d.groundY
		d.velocity = 0
		d.airborne = false
	}
}

// Pose returns what the character looks like. Crashed wins over jumping.
func (d Dino) Pose(gameOver bool) Pose {
	switch {
	case gameOver:
		return PoseCrashed
	case d.airborne:
		return PoseJumping
	default:
		return PoseRunning
	}
}

// Row returns the screen row, rounded half away from zero.
func (d Dino) Row() int {
	return int(math.Round(d.y))
}

// Y returns the exact vertical position.
func (d Dino) Y() float64 {
	return d.y
}

// Velocity returns the current vertical velocity.
func (d Dino) Velocity() float64 {
	return d.velocity
}

// Airborne reports whether a jump is in progress.
func (d Dino) Airborne() bool {
	return d.airborne
}
