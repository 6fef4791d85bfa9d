package bot

import (
	"math"

	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/sim"
)

// Runner plays quest mode: it walks toward the nearest droplet, jumps over
// gaps and enemies and hops up when the droplet sits above it.
type Runner struct {
	keys keys

	// Lookahead is how far past its leading edge the runner checks for
	// ground and enemies.
	Lookahead float64
	// Reach is the height difference that makes the runner jump for a droplet.
	Reach float64
}

// NewRunner creates a runner with default tuning.
func NewRunner() *Runner {
	return &Runner{keys: newKeys(), Lookahead: 30, Reach: 40}
}

// Act implements Player.
func (r *Runner) Act(snap *sim.Snapshot) []core.Action {
	if out, done := r.keys.menu(snap); done {
		return out
	}

	a := snap.Actor
	dir := 1
	target, hasTarget := nearestDroplet(snap)
	if hasTarget {
		diff := target.Box.CenterX() - a.Box.CenterX()
		switch {
		case math.Abs(diff) < 4:
			dir = 0
		case diff < 0:
			dir = -1
		}
	}

	jump := false
	if a.Grounded {
		switch {
		case dir != 0 && !r.groundAhead(snap, dir):
			jump = true
		case dir != 0 && r.enemyAhead(snap, dir):
			jump = true
		case hasTarget && a.Box.Y-target.Box.Y > r.Reach && math.Abs(target.Box.CenterX()-a.Box.CenterX()) < 60:
			jump = true
		}
	}

	out := r.keys.steer(nil, dir)
	return r.keys.set(out, core.KeyJump, jump)
}

// groundAhead reports whether a platform supports the point just past the
// runner's leading edge.
func (r *Runner) groundAhead(snap *sim.Snapshot, dir int) bool {
	a := snap.Actor.Box
	x := a.Right() + r.Lookahead
	if dir < 0 {
		x = a.X - r.Lookahead
	}
	if x < 0 || x > snap.World.Width {
		return true
	}
	foot := a.Bottom()
	for _, st := range snap.Statics {
		if st.Kind != sim.StaticPlatform {
			continue
		}
		if x >= st.Box.X && x <= st.Box.Right() && st.Box.Y >= foot-4 && st.Box.Y <= foot+r.Reach {
			return true
		}
	}
	return false
}

func (r *Runner) enemyAhead(snap *sim.Snapshot, dir int) bool {
	a := snap.Actor.Box
	for _, e := range snap.Entities {
		if e.Kind != sim.KindEnemy || !e.Live() {
			continue
		}
		if e.Box.Bottom() < a.Y || e.Box.Y > a.Bottom() {
			continue
		}
		var gap float64
		if dir > 0 {
			gap = e.Box.X - a.Right()
		} else {
			gap = a.X - e.Box.Right()
		}
		if gap >= 0 && gap <= r.Lookahead*2 {
			return true
		}
	}
	return false
}

// nearestDroplet returns the closest live collectible by horizontal distance.
func nearestDroplet(snap *sim.Snapshot) (sim.Entity, bool) {
	best, found := sim.Entity{}, false
	bestDist := math.Inf(1)
	cx := snap.Actor.Box.CenterX()
	for _, e := range snap.Entities {
		if e.Kind != sim.KindCollectible || !e.Live() {
			continue
		}
		if d := math.Abs(e.Box.CenterX() - cx); d < bestDist {
			best, found, bestDist = e, true, d
		}
	}
	return best, found
}
