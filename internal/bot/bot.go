// Package bot provides scripted players that drive a session without a
// terminal. They read a snapshot and answer with the actions a human would
// send, so every decision goes through the normal input queue.
package bot

import (
	"time"

	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/sim"
)

// Player decides the input for the next tick.
type Player interface {
	Act(snap *sim.Snapshot) []core.Action
}

// For returns the default player for a game mode.
func For(mode sim.Mode) Player {
	if mode == sim.ModeQuest {
		return NewRunner()
	}
	return NewChaser()
}

// keys tracks which keys the bot is holding and emits only the changes.
type keys struct {
	held map[core.Key]bool
}

func newKeys() keys {
	return keys{held: make(map[core.Key]bool)}
}

func (k *keys) set(out []core.Action, key core.Key, down bool) []core.Action {
	if k.held[key] == down {
		return out
	}
	if down {
		k.held[key] = true
		return append(out, core.KeyDown(key))
	}
	delete(k.held, key)
	return append(out, core.KeyUp(key))
}

// steer holds at most one of left/right.
func (k *keys) steer(out []core.Action, dir int) []core.Action {
	out = k.set(out, core.KeyLeft, dir < 0)
	return k.set(out, core.KeyRight, dir > 0)
}

func (k *keys) releaseAll(out []core.Action) []core.Action {
	for _, key := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyJump} {
		out = k.set(out, key, false)
	}
	return out
}

// menu answers the non-playing phases the same way for every bot.
// It returns false while the run is in progress.
func (k *keys) menu(snap *sim.Snapshot) ([]core.Action, bool) {
	switch snap.Phase {
	case sim.PhaseTitle:
		if snap.AllZonesComplete {
			return k.releaseAll(nil), true
		}
		return append(k.releaseAll(nil), core.Simple(core.ActionStart)), true
	case sim.PhaseFactPaused:
		return []core.Action{core.Simple(core.ActionDismiss)}, true
	case sim.PhaseZoneComplete:
		return append(k.releaseAll(nil), core.Simple(core.ActionConfirm)), true
	case sim.PhaseGameOver:
		return k.releaseAll(nil), true
	}
	return nil, false
}

// Run drives s with p until the run ends or maxTicks pass. Every
// notification is handed to onNote when it is not nil. It returns the
// final snapshot.
func Run(s *sim.Session, p Player, dt time.Duration, maxTicks int, onNote func(sim.Notification)) sim.Snapshot {
	snap := s.Snapshot()
	for i := 0; i < maxTicks; i++ {
		for _, a := range p.Act(&snap) {
			s.Enqueue(a)
		}
		for _, n := range s.Tick(dt) {
			if onNote != nil {
				onNote(n)
			}
		}
		snap = s.Snapshot()
		if Finished(&snap) {
			break
		}
	}
	return snap
}

// Finished reports whether a snapshot shows a completed run.
func Finished(snap *sim.Snapshot) bool {
	return snap.Phase == sim.PhaseGameOver || (snap.Phase == sim.PhaseTitle && snap.AllZonesComplete)
}
