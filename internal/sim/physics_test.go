package sim

import (
	"testing"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/core"
)

func TestStepEntities(t *testing.T) {
	falling := &Entity{Box: core.NewBox(10, 0, 10, 10), Speed: 150}
	hit := &Entity{Box: core.NewBox(10, 0, 10, 10), Speed: 150, Consumed: true}
	gone := &Entity{Box: core.NewBox(10, 700, 10, 10), Speed: 150, Exited: true}
	placed := &Entity{Box: core.NewBox(10, 50, 10, 10)}

	StepEntities([]*Entity{falling, hit, gone, placed}, 0.5)

	if falling.Box.Y != 75 {
		t.Errorf("falling y = %v, expected 75", falling.Box.Y)
	}
	if hit.Box.Y != 75 {
		t.Errorf("consumed y = %v, hit entities keep falling", hit.Box.Y)
	}
	if gone.Box.Y != 700 {
		t.Error("exited entities should not move")
	}
	if placed.Box.Y != 50 {
		t.Error("zero-speed entities should not move")
	}
}

func TestStepActorClampsHorizontally(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	a := &Actor{Box: core.NewBox(5, 100, 22, 34)}

	StepActor(a, Controls{Left: true}, cfg.Actor, cfg.World, 1)
	if a.Box.X != 0 {
		t.Errorf("x = %v, expected clamp at 0", a.Box.X)
	}

	a.Box.X = cfg.World.Width - 30
	StepActor(a, Controls{Right: true}, cfg.Actor, cfg.World, 1)
	if a.Box.X != cfg.World.Width-a.Box.W {
		t.Errorf("x = %v, expected clamp at %v", a.Box.X, cfg.World.Width-a.Box.W)
	}

	StepActor(a, Controls{Left: true, Right: true}, cfg.Actor, cfg.World, 0.1)
	if a.VX != 0 {
		t.Error("opposite keys should cancel out")
	}
}

func TestStepActorGravityAndJump(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	const dt = 1.0 / 60

	a := &Actor{Box: core.NewBox(100, 100, 22, 34)}
	StepActor(a, Controls{Jump: true}, cfg.Actor, cfg.World, dt)
	if a.VY <= 0 {
		t.Errorf("airborne actor cannot jump, vy = %v", a.VY)
	}
	if a.PrevY != 100 {
		t.Errorf("PrevY = %v, expected 100", a.PrevY)
	}

	a = &Actor{Box: core.NewBox(100, 100, 22, 34), Grounded: true}
	StepActor(a, Controls{Jump: true}, cfg.Actor, cfg.World, dt)
	want := -cfg.Actor.JumpPower + cfg.Actor.Gravity*dt
	if a.VY != want {
		t.Errorf("vy after jump = %v, expected %v", a.VY, want)
	}
	if a.Grounded {
		t.Error("jumping should leave the ground")
	}

	a = &Actor{Box: core.NewBox(100, 100, 22, 34), VY: cfg.Actor.MaxFallSpeed}
	StepActor(a, Controls{}, cfg.Actor, cfg.World, dt)
	if a.VY != cfg.Actor.MaxFallSpeed {
		t.Errorf("vy = %v, expected terminal %v", a.VY, cfg.Actor.MaxFallSpeed)
	}
}

func TestStepActorFallsOut(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	a := &Actor{Box: core.NewBox(100, cfg.World.Height-1, 22, 34), VY: 600}

	if !StepActor(a, Controls{}, cfg.Actor, cfg.World, 0.1) {
		t.Error("actor below the world should be reported")
	}
}

func TestStepActorCatcherHasNoGravity(t *testing.T) {
	cfg := config.DefaultDropsConfig()
	a := &Actor{Box: core.NewBox(cfg.Actor.StartX, cfg.Actor.StartY, cfg.Actor.Width, cfg.Actor.Height)}

	for i := 0; i < 120; i++ {
		if StepActor(a, Controls{Right: true}, cfg.Actor, cfg.World, 1.0/60) {
			t.Fatal("catcher must never fall out")
		}
	}
	if a.Box.Y != cfg.Actor.StartY {
		t.Errorf("catcher y = %v, expected fixed row %v", a.Box.Y, cfg.Actor.StartY)
	}
	if a.Box.X != cfg.World.Width-cfg.Actor.Width {
		t.Errorf("catcher x = %v, expected right wall", a.Box.X)
	}
}
