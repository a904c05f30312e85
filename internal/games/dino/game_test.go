package dino

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/rex-runner/internal/config"
	"github.com/vovakirdan/rex-runner/internal/core"
)

func TestNewGameInitialState(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), constRand{0})

	snap := g.Snapshot()
	if snap.Score != 0 || snap.GameOver || snap.Boosted {
		t.Errorf("fresh game state = %+v", snap)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("fresh game should have no obstacles, got %v", snap.Obstacles)
	}
	if snap.DinoY != 12 || snap.Airborne {
		t.Errorf("dino should start grounded on row 12, got y=%v airborne=%v", snap.DinoY, snap.Airborne)
	}
	if snap.Countdown != 25 {
		t.Errorf("Countdown = %d, expected 25", snap.Countdown)
	}
	if g.Interval() != 80*time.Millisecond {
		t.Errorf("Interval() = %v, expected 80ms", g.Interval())
	}
}

func TestCollisionWhenGrounded(t *testing.T) {
	g := New(quietConfig(), constRand{0})

	// Obstacles move before the collision check, so one column to the
	// right of the dino reaches it this tick.
	g.obstacles.place(g.cfg.Player.X + 1)
	g.Tick()

	if !g.State().GameOver {
		t.Fatal("grounded dino meeting an obstacle should end the game")
	}
	if g.Dino().Pose(true) != PoseCrashed {
		t.Error("crashed dino should use the crashed pose")
	}
}

func TestNoCollisionAwayFromDinoColumn(t *testing.T) {
	g := New(quietConfig(), constRand{0})
	g.obstacles.place(g.cfg.Player.X + 2)
	g.Tick()

	if g.State().GameOver {
		t.Fatal("obstacle one column away should not collide")
	}

	g.Tick()
	if !g.State().GameOver {
		t.Fatal("obstacle should collide once it reaches the dino column")
	}
}

func TestAirborneDinoClearsObstacle(t *testing.T) {
	// Ticks 1..8 of the arc are above the ground row. On tick 9 the dino is
	// still falling but rounds onto the ground row, so it can be hit.
	tests := []struct {
		name      string
		meetsAt   int
		expectHit bool
	}{
		{"tick 1", 1, false},
		{"tick 4 (apex)", 4, false},
		{"tick 8", 8, false},
		{"tick 9 rounds to ground", 9, true},
		{"after landing", 11, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(quietConfig(), constRand{0})
			g.obstacles.place(g.cfg.Player.X + tc.meetsAt)
			g.Jump()

			for i := 0; i < 15 && !g.State().GameOver; i++ {
				g.Tick()
			}

			if g.State().GameOver != tc.expectHit {
				t.Errorf("GameOver = %v, expected %v", g.State().GameOver, tc.expectHit)
			}
		})
	}
}

func TestScoreIncrementsAndFreezes(t *testing.T) {
	g := New(quietConfig(), constRand{0})

	for i := 1; i <= 5; i++ {
		g.Tick()
		if g.State().Score != i {
			t.Fatalf("Score = %d after %d ticks", g.State().Score, i)
		}
	}

	g.obstacles.place(g.cfg.Player.X + 1)
	g.Tick()
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}
	final := g.State().Score

	for i := 0; i < 10; i++ {
		g.Tick()
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != final {
		t.Errorf("Score changed after game over: %d -> %d", final, g.State().Score)
	}
}

func TestSpeedBoostAppliesOnce(t *testing.T) {
	g := New(quietConfig(), constRand{0})

	for i := 1; i <= 1000; i++ {
		g.Tick()

		want := 80 * time.Millisecond
		if i >= 500 {
			want = 60 * time.Millisecond
		}
		if g.Interval() != want {
			t.Fatalf("score %d: Interval() = %v, expected %v", g.State().Score, g.Interval(), want)
		}
		if g.State().Boosted != (i >= 500) {
			t.Fatalf("score %d: Boosted = %v", g.State().Score, g.State().Boosted)
		}
	}
}

func TestIntervalWhileGameOver(t *testing.T) {
	g := New(quietConfig(), constRand{0})
	g.obstacles.place(g.cfg.Player.X + 1)
	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Fatal("expected game over")
	}
	if result.Interval != 50*time.Millisecond {
		t.Errorf("Interval = %v, expected 50ms while game over", result.Interval)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	cfg := quietConfig()
	cfg.Pace.BoostScore = 3
	g := New(cfg, constRand{0})

	for i := 0; i < 5; i++ {
		g.Tick()
	}
	g.obstacles.place(40)
	g.obstacles.place(cfg.Player.X + 1)
	g.Tick()
	if !g.State().GameOver || !g.State().Boosted {
		t.Fatalf("setup failed: %+v", g.State())
	}

	g.Restart()
	snap := g.Snapshot()

	if snap.Score != 0 {
		t.Errorf("Restart should clear score, got %d", snap.Score)
	}
	if snap.GameOver {
		t.Error("Restart should clear game over")
	}
	if snap.Boosted {
		t.Error("Restart should clear the boost guard")
	}
	if snap.Interval != 80*time.Millisecond {
		t.Errorf("Restart should restore the default interval, got %v", snap.Interval)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("Restart should drop all obstacles, got %v", snap.Obstacles)
	}
	if snap.DinoY != 12 || snap.DinoVel != 0 || snap.Airborne {
		t.Errorf("Restart should ground the dino, got %+v", snap)
	}
}

func TestStepRestartOnlyWhenGameOver(t *testing.T) {
	g := New(quietConfig(), constRand{0})

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)

	g.Step(core.NewInputFrame())
	result := g.Step(restart)
	if result.Restarted || result.State.Score != 2 {
		t.Fatalf("restart while running should be ignored, got %+v", result)
	}

	g.obstacles.place(g.cfg.Player.X + 1)
	g.Step(core.NewInputFrame())

	result = g.Step(restart)
	if !result.Restarted {
		t.Fatal("restart after game over should report Restarted")
	}
	// The fresh game runs its first tick in the same step.
	if result.State.GameOver || result.State.Score != 1 {
		t.Errorf("state after restart = %+v, expected running with score 1", result.State)
	}
}

func TestStepJumpIgnoredWhenGameOver(t *testing.T) {
	g := New(quietConfig(), constRand{0})
	g.obstacles.place(g.cfg.Player.X + 1)
	g.Step(core.NewInputFrame())

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	if g.Dino().Airborne() {
		t.Error("jump after game over should be ignored")
	}
}

func TestStepJump(t *testing.T) {
	g := New(quietConfig(), constRand{0})

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	if !g.Dino().Airborne() || g.Dino().Row() != 10 {
		t.Errorf("jump step should lift the dino to row 10, got row %d airborne=%v", g.Dino().Row(), g.Dino().Airborne())
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	run := func() []Snapshot {
		g := New(cfg, NewRand(12345))
		var snaps []Snapshot
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			if i%15 == 0 {
				in.Set(core.ActionJump)
			}
			if g.State().GameOver {
				in.Set(core.ActionRestart)
			}
			g.Step(in)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs should produce identical snapshots")
	}
}

func TestObstacleMovementInvariants(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), NewRand(99))
	width := g.cfg.Screen.Width

	prev := g.Snapshot()
	for i := 0; i < 3000; i++ {
		if g.State().GameOver {
			g.Restart()
			prev = g.Snapshot()
			continue
		}
		if i%20 == 0 {
			g.Jump()
		}
		g.Tick()
		cur := g.Snapshot()

		for j, x := range cur.Obstacles {
			if x < 0 || x >= width {
				t.Fatalf("tick %d: obstacle at column %d outside the grid", i, x)
			}
			if j > 0 && cur.Obstacles[j-1] >= x {
				t.Fatalf("tick %d: obstacles out of spawn order: %v", i, cur.Obstacles)
			}
		}

		// Every survivor moved exactly one column; at most one new obstacle
		// appeared at the right edge.
		var moved []int
		for _, x := range prev.Obstacles {
			if x-1 >= 0 {
				moved = append(moved, x-1)
			}
		}
		got := cur.Obstacles
		if len(got) == len(moved)+1 {
			if got[len(got)-1] != width-1 {
				t.Fatalf("tick %d: new obstacle at %d, expected %d", i, got[len(got)-1], width-1)
			}
			got = got[:len(got)-1]
		}
		if len(got) != len(moved) {
			t.Fatalf("tick %d: obstacles %v, expected %v", i, got, moved)
		}
		for j := range got {
			if got[j] != moved[j] {
				t.Fatalf("tick %d: obstacles %v, expected %v", i, got, moved)
			}
		}
		prev = cur
	}
}
