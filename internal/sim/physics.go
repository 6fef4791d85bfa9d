package sim

import (
	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/core"
)

// Controls is the held-key state sampled once per tick.
type Controls struct {
	Left, Right, Jump bool
}

// StepEntities moves every falling entity down by its own speed. Consumed
// entities keep falling until they leave the world.
func StepEntities(entities []*Entity, dt float64) {
	for _, e := range entities {
		if e.Exited || e.Speed == 0 {
			continue
		}
		e.Box.Y += e.Speed * dt
	}
}

// StepActor integrates the actor for one tick and reports whether it fell
// below the world. Gravity only applies when p.Gravity > 0; the drops
// catcher has none and slides along a fixed row.
func StepActor(a *Actor, c Controls, p config.ActorConfig, world config.WorldConfig, dt float64) bool {
	switch {
	case c.Left && !c.Right:
		a.VX = -p.Speed
	case c.Right && !c.Left:
		a.VX = p.Speed
	default:
		a.VX = 0
	}

	if p.Gravity > 0 {
		if c.Jump && a.Grounded && p.JumpPower > 0 {
			a.VY = -p.JumpPower
			a.Grounded = false
		}
		a.VY += p.Gravity * dt
		if p.MaxFallSpeed > 0 && a.VY > p.MaxFallSpeed {
			a.VY = p.MaxFallSpeed
		}
	}

	a.PrevY = a.Box.Y
	a.Box.X = core.ClampF(a.Box.X+a.VX*dt, 0, world.Width-a.Box.W)
	a.Box.Y += a.VY * dt

	return a.Box.Y > world.Height
}
