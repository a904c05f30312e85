package dino

import (
	"testing"

	"github.com/vovakirdan/rex-runner/internal/config"
)

func newTestDino() Dino {
	return NewDino(12, config.DefaultRunnerConfig().Physics)
}

func TestDinoGroundedStaysPut(t *testing.T) {
	d := newTestDino()

	for i := 0; i < 100; i++ {
		d.Advance()
		if d.Y() != 12 || d.Velocity() != 0 || d.Airborne() {
			t.Fatalf("tick %d: grounded dino moved: y=%v vel=%v airborne=%v", i, d.Y(), d.Velocity(), d.Airborne())
		}
	}
}

func TestDinoJumpSetsImpulse(t *testing.T) {
	d := newTestDino()
	d.Jump()

	if !d.Airborne() {
		t.Error("Jump should make the dino airborne")
	}
	if d.Velocity() != -1.6 {
		t.Errorf("Velocity() = %v, expected -1.6", d.Velocity())
	}
	if d.Y() != 12 {
		t.Errorf("Jump should not move the dino before Advance, y=%v", d.Y())
	}
}

func TestDinoJumpIgnoredWhileAirborne(t *testing.T) {
	d := newTestDino()
	d.Jump()
	d.Advance()
	d.Advance()

	vel := d.Velocity()
	y := d.Y()
	d.Jump()

	if d.Velocity() != vel {
		t.Errorf("second Jump changed velocity: %v -> %v", vel, d.Velocity())
	}
	if d.Y() != y {
		t.Errorf("second Jump changed position: %v -> %v", y, d.Y())
	}
}

func TestDinoJumpArc(t *testing.T) {
	d := newTestDino()
	d.Jump()

	// Rows after each airborne tick. The last one rounds to the ground row
	// while the dino is still technically in the air.
	expectedRows := []int{10, 9, 8, 8, 8, 8, 9, 10, 12}
	for i, want := range expectedRows {
		d.Advance()
		if !d.Airborne() {
			t.Fatalf("tick %d: landed early at y=%v", i+1, d.Y())
		}
		if d.Row() != want {
			t.Errorf("tick %d: Row() = %d, expected %d (y=%v)", i+1, d.Row(), want, d.Y())
		}
	}
}

func TestDinoLandsExactlyOnGround(t *testing.T) {
	d := newTestDino()
	d.Jump()

	ticks := 0
	for d.Airborne() {
		d.Advance()
		ticks++
		if ticks > 50 {
			t.Fatal("dino never landed")
		}
		if d.Y() > 12 {
			t.Fatalf("tick %d: y=%v below ground", ticks, d.Y())
		}
	}

	if ticks != 10 {
		t.Errorf("landed after %d ticks, expected 10", ticks)
	}
	if d.Y() != 12 {
		t.Errorf("Y() = %v, expected exactly 12", d.Y())
	}
	if d.Velocity() != 0 {
		t.Errorf("Velocity() = %v, expected 0", d.Velocity())
	}

	// Can jump again after landing
	d.Jump()
	if !d.Airborne() {
		t.Error("dino should be able to jump again after landing")
	}
}

func TestDinoPose(t *testing.T) {
	grounded := newTestDino()
	airborne := newTestDino()
	airborne.Jump()

	tests := []struct {
		name     string
		d        Dino
		gameOver bool
		expected Pose
	}{
		{"running", grounded, false, PoseRunning},
		{"jumping", airborne, false, PoseJumping},
		{"crashed grounded", grounded, true, PoseCrashed},
		{"crashed beats jumping", airborne, true, PoseCrashed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.Pose(tc.gameOver); got != tc.expected {
				t.Errorf("Pose(%v) = %v, expected %v", tc.gameOver, got, tc.expected)
			}
		})
	}
}
