package bot

import (
	"math"

	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/sim"
)

// Chaser plays drops mode: it slides the catcher under the lowest clean
// drop, dodges pollutants about to land on it and clicks clean drops the
// catcher cannot reach in time.
type Chaser struct {
	keys keys
	tick int

	// Deadzone is how close (world units) the catcher centre must be to
	// the target before it stops moving.
	Deadzone float64
	// DangerZone is how far above the catcher a pollutant starts to matter.
	DangerZone float64
	// ClickEvery is the tick period of pointer clicks; 0 disables clicking.
	ClickEvery int
}

// NewChaser creates a chaser with default tuning.
func NewChaser() *Chaser {
	return &Chaser{
		keys:       newKeys(),
		Deadzone:   12,
		DangerZone: 90,
		ClickEvery: 20,
	}
}

// Act implements Player.
func (c *Chaser) Act(snap *sim.Snapshot) []core.Action {
	if out, done := c.keys.menu(snap); done {
		return out
	}
	c.tick++

	catcher := snap.Actor.Box
	var out []core.Action

	if threat, ok := c.threat(snap, catcher); ok {
		dir := 1
		if threat.CenterX() > catcher.CenterX() {
			dir = -1
		}
		if (dir < 0 && catcher.X <= 0) || (dir > 0 && catcher.Right() >= snap.World.Width) {
			dir = -dir
		}
		out = c.keys.steer(out, dir)
	} else if target, ok := lowestClean(snap); ok {
		diff := target.Box.CenterX() - catcher.CenterX()
		switch {
		case diff > c.Deadzone:
			out = c.keys.steer(out, 1)
		case diff < -c.Deadzone:
			out = c.keys.steer(out, -1)
		default:
			out = c.keys.steer(out, 0)
		}
	} else {
		out = c.keys.steer(out, 0)
	}

	if c.ClickEvery > 0 && c.tick%c.ClickEvery == 0 {
		if e, ok := farthestClean(snap, catcher); ok {
			out = append(out, core.PointerDown(e.Box.CenterX(), e.Box.CenterY()))
		}
	}
	return out
}

// threat returns a pollutant about to land on the catcher.
func (c *Chaser) threat(snap *sim.Snapshot, catcher core.Box) (core.Box, bool) {
	for _, e := range snap.Entities {
		if e.Kind != sim.KindPollutant || !e.Live() {
			continue
		}
		if !catcher.OverlapsX(e.Box) {
			continue
		}
		gap := catcher.Y - e.Box.Bottom()
		if gap >= 0 && gap <= c.DangerZone {
			return e.Box, true
		}
	}
	return core.Box{}, false
}

// lowestClean returns the live clean drop closest to the catcher row.
func lowestClean(snap *sim.Snapshot) (sim.Entity, bool) {
	best, found := sim.Entity{}, false
	for _, e := range snap.Entities {
		if e.Kind != sim.KindClean || !e.Live() || e.Box.Y > snap.Actor.Box.Bottom() {
			continue
		}
		if !found || e.Box.Y > best.Box.Y {
			best, found = e, true
		}
	}
	return best, found
}

// farthestClean returns the visible clean drop farthest from the catcher.
func farthestClean(snap *sim.Snapshot, catcher core.Box) (sim.Entity, bool) {
	best, found := sim.Entity{}, false
	bestDist := -1.0
	for _, e := range snap.Entities {
		if e.Kind != sim.KindClean || !e.Live() || e.Box.CenterY() < 0 {
			continue
		}
		d := math.Abs(e.Box.CenterX() - catcher.CenterX())
		if d > bestDist {
			best, found, bestDist = e, true, d
		}
	}
	return best, found
}
