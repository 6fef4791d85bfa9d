package tui

import (
	"time"

	"github.com/vovakirdan/tui-drops/internal/core"
)

// Terminals report key presses and auto-repeat but never releases. A key
// counts as held until no press arrives for a while. The first gap is
// longer to cover the terminal's delay before auto-repeat starts.
const (
	holdInitial = 550 * time.Millisecond
	holdRepeat  = 150 * time.Millisecond
)

type holdState struct {
	last    time.Time
	repeats int
}

// holdTracker turns a stream of key presses into KeyDown/KeyUp pairs.
type holdTracker struct {
	held map[core.Key]*holdState
}

func newHoldTracker() *holdTracker {
	return &holdTracker{held: make(map[core.Key]*holdState)}
}

// press records a press of k at now. It returns the actions to forward:
// KeyDown on the first press and KeyUp for an opposite direction.
func (h *holdTracker) press(k core.Key, now time.Time) []core.Action {
	var out []core.Action
	if opp := opposite(k); opp != core.KeyNone {
		if _, ok := h.held[opp]; ok {
			delete(h.held, opp)
			out = append(out, core.KeyUp(opp))
		}
	}
	if st, ok := h.held[k]; ok {
		st.last = now
		st.repeats++
		return out
	}
	h.held[k] = &holdState{last: now}
	return append(out, core.KeyDown(k))
}

// expire releases every key whose presses stopped before now.
func (h *holdTracker) expire(now time.Time) []core.Action {
	var out []core.Action
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyJump} {
		st, ok := h.held[k]
		if !ok {
			continue
		}
		timeout := holdInitial
		if st.repeats > 0 {
			timeout = holdRepeat
		}
		if now.Sub(st.last) > timeout {
			delete(h.held, k)
			out = append(out, core.KeyUp(k))
		}
	}
	return out
}

// releaseAll forgets every held key and returns the matching KeyUps.
func (h *holdTracker) releaseAll() []core.Action {
	var out []core.Action
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyJump} {
		if _, ok := h.held[k]; ok {
			out = append(out, core.KeyUp(k))
		}
	}
	clear(h.held)
	return out
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	}
	return core.KeyNone
}
