package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/facts"
)

// Snapshot is a read-only copy of the session for renderers and tests.
// Mutating it never affects the session.
type Snapshot struct {
	Tick  uint64
	Mode  Mode
	Phase Phase
	World config.WorldConfig

	Counters
	Target        int
	TimeRemaining int
	LowTime       bool
	Stage         int

	ZoneIndex int
	ZoneCount int
	ZoneName  string
	ZoneHint  string

	Character  string
	Difficulty string

	Actor    Actor
	Entities []Entity
	Statics  []Static

	Fact          facts.Fact
	HasFact       bool
	FactRemaining time.Duration
	FactsSeen     int

	Summary          *Summary
	AllZonesComplete bool
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	entities := make([]Entity, len(s.store.Entities()))
	for i, e := range s.store.Entities() {
		entities[i] = *e
	}
	statics := make([]Static, len(s.store.Statics()))
	copy(statics, s.store.Statics())

	stage, _ := s.diff.Stage(s.counters.Score, s.elapsed)
	snap := Snapshot{
		Tick:          s.ticks,
		Mode:          s.mode,
		Phase:         s.phase,
		World:         s.cfg.World,
		Counters:      s.counters,
		Target:        s.tracker.Target(),
		TimeRemaining: s.timeRemaining,
		LowTime:       s.countdown.Active() && s.timeRemaining <= s.cfg.Session.LowTimeSeconds,
		Stage:         stage,
		ZoneIndex:     s.zoneIndex,
		ZoneCount:     len(s.zones),
		Character:     s.character,
		Difficulty:    s.difficulty,
		Actor:         s.actor,
		Entities:      entities,
		Statics:       statics,
		Fact:          s.fact,
		HasFact:       s.hasFact,
		FactRemaining: s.factTimer.Remaining(),
		FactsSeen:     s.picker.Seen(),

		AllZonesComplete: s.allDone,
	}
	if s.mode == ModeQuest && s.zoneIndex < len(s.zones) {
		snap.ZoneName = s.zones[s.zoneIndex].Name
		snap.ZoneHint = s.zones[s.zoneIndex].Hint
	}
	if s.summary != nil {
		sum := *s.summary
		snap.Summary = &sum
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(int64(i))) } //#nosec G115 -- hash computation

	mixI(int(snap.Phase))
	mixI(snap.Score)
	mixI(snap.Streak)
	mixI(snap.BestStreak)
	mixI(snap.TotalClean)
	mixI(snap.Missed)
	mixI(snap.TimeRemaining)
	mixI(snap.ZoneIndex)
	mixI(snap.Actor.Lives)
	mixF(snap.Actor.Box.X)
	mixF(snap.Actor.Box.Y)
	mixF(snap.Actor.VY)

	for _, e := range snap.Entities {
		mix(e.ID)
		mixI(int(e.Kind))
		mixF(e.Box.X)
		mixF(e.Box.Y)
		mixF(e.Speed)
	}
	for _, st := range snap.Statics {
		if st.Triggered {
			mix(1)
		} else {
			mix(0)
		}
	}
	return h
}
