package water

import (
	"fmt"

	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/sim"
)

// How long a feedback line stays on the status row, in ticks.
const (
	feedbackTicks    = 60
	celebrationTicks = 150
)

// feedback is the short-lived message shown under the playfield.
type feedback struct {
	text  string
	color core.Color
	ttl   int
}

// show replaces the current message with one describing n.
// Notifications without a message leave it untouched.
func (f *feedback) show(n sim.Notification) {
	ttl := feedbackTicks
	switch n.Kind {
	case sim.NoteCollect:
		f.text, f.color = fmt.Sprintf("+%d clean water", n.Amount), core.ColorWater
	case sim.NoteStreakBonus:
		f.text, f.color = fmt.Sprintf("Streak bonus! +%d", n.Amount), core.ColorBrightYellow
	case sim.NotePollutantHit:
		f.text, f.color = fmt.Sprintf("Polluted! %d", n.Amount), core.ColorBrown
	case sim.NoteEnemyHit:
		f.text, f.color = fmt.Sprintf("Pollution hit! %d", n.Amount), core.ColorRed
	case sim.NoteMissed:
		f.text, f.color = "A clean drop got away", core.ColorGray
		if n.Amount < 0 {
			f.text = fmt.Sprintf("%s %d", f.text, n.Amount)
		}
	case sim.NoteCelebrate:
		f.text, f.color = "100% FULL!", core.ColorBrightCyan
		ttl = celebrationTicks
	case sim.NoteLifeLost:
		f.text, f.color = fmt.Sprintf("Ouch! Lives left: %d", n.Amount), core.ColorBrightRed
	case sim.NoteTimeExpired:
		f.text, f.color = "Time's up!", core.ColorBrightRed
	default:
		return
	}
	f.ttl = ttl
}

// tick ages the message by one tick.
func (f *feedback) tick() {
	if f.ttl > 0 {
		f.ttl--
	}
}

func (f *feedback) active() bool {
	return f.ttl > 0 && f.text != ""
}
