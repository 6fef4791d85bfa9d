package sim

import (
	"math"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/facts"
)

// NoteKind classifies a side effect the platform may want to show.
type NoteKind int

const (
	NoteCollect NoteKind = iota
	NoteStreakBonus
	NotePollutantHit
	NoteEnemyHit
	NoteMissed
	NoteShowFact
	NoteCelebrate
	NoteLifeLost
	NoteLivesExhausted
	NoteZoneComplete
	NoteTimeExpired
	NoteGameOver
	NotePhase
)

// String returns the note name.
func (k NoteKind) String() string {
	switch k {
	case NoteCollect:
		return "Collect"
	case NoteStreakBonus:
		return "StreakBonus"
	case NotePollutantHit:
		return "PollutantHit"
	case NoteEnemyHit:
		return "EnemyHit"
	case NoteMissed:
		return "Missed"
	case NoteShowFact:
		return "ShowFact"
	case NoteCelebrate:
		return "Celebrate"
	case NoteLifeLost:
		return "LifeLost"
	case NoteLivesExhausted:
		return "LivesExhausted"
	case NoteZoneComplete:
		return "ZoneComplete"
	case NoteTimeExpired:
		return "TimeExpired"
	case NoteGameOver:
		return "GameOver"
	case NotePhase:
		return "Phase"
	default:
		return "Unknown"
	}
}

// Notification is an outbound side effect of a tick.
// Amount is the configured signed score delta, or remaining lives for
// NoteLifeLost.
type Notification struct {
	Kind   NoteKind
	Amount int
	Fact   facts.Fact
	Phase  Phase
}

// Counters are the score and progress numbers of a run.
type Counters struct {
	Score          int
	Streak         int
	BestStreak     int
	CleanCollected int // in the current zone
	TotalClean     int // across the run
	PollutedHits   int
	EnemyHits      int
	Missed         int
	Progress       int // 0..100
}

// Tracker turns collision events into score changes and notifications.
type Tracker struct {
	cfg        config.ScoringConfig
	picker     *facts.Picker
	zoneGoal   bool // whether reaching the target completes a zone
	target     int
	celebrated bool
	zoneDone   bool
}

// NewTracker creates a tracker. When zoneGoal is set, meeting the target
// emits NoteZoneComplete.
func NewTracker(cfg config.ScoringConfig, picker *facts.Picker, zoneGoal bool) *Tracker {
	return &Tracker{
		cfg:      cfg,
		picker:   picker,
		zoneGoal: zoneGoal,
		target:   cfg.TargetCleanCount,
	}
}

// ResetRun clears per-run one-shot state.
func (t *Tracker) ResetRun() {
	t.celebrated = false
	t.zoneDone = false
}

// ResetZone sets the target of a freshly loaded zone.
func (t *Tracker) ResetZone(target int) {
	if target <= 0 {
		target = t.cfg.TargetCleanCount
	}
	t.target = target
	t.zoneDone = false
}

// Target returns the clean count that fills the meter.
func (t *Tracker) Target() int {
	return t.target
}

// Celebrated reports whether the 100% celebration already fired this run.
func (t *Tracker) Celebrated() bool {
	return t.celebrated
}

// Apply folds one event into the counters.
func (t *Tracker) Apply(c *Counters, a *Actor, ev Event, statics []Static) []Notification {
	var notes []Notification

	switch ev.Kind {
	case EventCollected:
		c.Streak++
		c.BestStreak = max(c.BestStreak, c.Streak)
		c.CleanCollected++
		c.TotalClean++

		gain := t.cfg.CleanPoints
		if t.cfg.StreakBonusThreshold > 0 && c.Streak%t.cfg.StreakBonusThreshold == 0 {
			gain += t.cfg.StreakBonusAmount
			notes = append(notes, Notification{Kind: NoteStreakBonus, Amount: gain})
		} else {
			notes = append(notes, Notification{Kind: NoteCollect, Amount: gain})
		}
		c.Score += gain
		notes = append(notes, t.updateProgress(c)...)

	case EventPollutantHit:
		t.penalize(c, t.cfg.PollutedPenalty)
		notes = append(notes, Notification{Kind: NotePollutantHit, Amount: -t.cfg.PollutedPenalty})
		c.Streak = 0
		c.PollutedHits++

	case EventEnemyHit:
		t.penalize(c, t.cfg.EnemyPenalty)
		notes = append(notes, Notification{Kind: NoteEnemyHit, Amount: -t.cfg.EnemyPenalty})
		c.Streak = 0
		c.EnemyHits++

	case EventMissed:
		if !ev.EntityKind.Rewarding() {
			return nil
		}
		c.Missed++
		t.penalize(c, t.cfg.MissedPenalty)
		notes = append(notes, Notification{Kind: NoteMissed, Amount: -t.cfg.MissedPenalty})
		notes = append(notes, t.updateProgress(c)...)

	case EventCheckpointReached:
		if f, ok := t.picker.Next(); ok {
			if ev.Static >= 0 && ev.Static < len(statics) {
				statics[ev.Static].FactID = f.ID
			}
			notes = append(notes, Notification{Kind: NoteShowFact, Fact: f})
		}

	case EventFellOut:
		if a == nil {
			return nil
		}
		a.Lives = max(a.Lives-1, 0)
		notes = append(notes, Notification{Kind: NoteLifeLost, Amount: a.Lives})
		if a.Lives == 0 {
			notes = append(notes, Notification{Kind: NoteLivesExhausted})
		}
	}

	if t.zoneGoal && !t.zoneDone && c.CleanCollected >= t.target &&
		(ev.Kind == EventCollected || ev.Kind == EventCheckpointReached) {
		t.zoneDone = true
		notes = append(notes, Notification{Kind: NoteZoneComplete})
	}
	return notes
}

// penalize subtracts amount from the score, flooring at zero.
func (t *Tracker) penalize(c *Counters, amount int) {
	c.Score = max(0, c.Score-amount)
}

func (t *Tracker) updateProgress(c *Counters) []Notification {
	c.Progress = Progress(c.CleanCollected, t.target)
	if c.Progress >= 100 && !t.celebrated {
		t.celebrated = true
		return []Notification{{Kind: NoteCelebrate}}
	}
	return nil
}

// Progress returns min(100, round(clean/target*100)).
func Progress(clean, target int) int {
	if target <= 0 {
		return 0
	}
	p := int(math.Round(float64(clean) / float64(target) * 100))
	return min(max(p, 0), 100)
}
