package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/facts"
)

func newTestTracker(zoneGoal bool) *Tracker {
	cfg := config.DefaultDropsConfig().Scoring
	return NewTracker(cfg, facts.NewPicker(facts.Default(), rand.New(rand.NewSource(1))), zoneGoal)
}

func noteKinds(notes []Notification) []NoteKind {
	kinds := make([]NoteKind, len(notes))
	for i, n := range notes {
		kinds[i] = n.Kind
	}
	return kinds
}

func hasNote(notes []Notification, kind NoteKind) bool {
	for _, n := range notes {
		if n.Kind == kind {
			return true
		}
	}
	return false
}

func TestTrackerStreakBonus(t *testing.T) {
	tr := newTestTracker(false)
	var c Counters

	var last []Notification
	for i := 0; i < 5; i++ {
		last = tr.Apply(&c, nil, Event{Kind: EventCollected, EntityKind: KindClean}, nil)
	}

	if c.Score != 70 {
		t.Errorf("score = %d, expected 5*10 + 20", c.Score)
	}
	if c.Streak != 5 || c.BestStreak != 5 {
		t.Errorf("streak = %d best = %d", c.Streak, c.BestStreak)
	}
	if len(last) == 0 || last[0].Kind != NoteStreakBonus || last[0].Amount != 30 {
		t.Errorf("fifth collect notes = %+v", last)
	}

	tr.Apply(&c, nil, Event{Kind: EventPollutantHit, EntityKind: KindPollutant}, nil)
	if c.Score != 55 || c.Streak != 0 || c.BestStreak != 5 {
		t.Errorf("after pollutant: score = %d streak = %d best = %d, expected 55/0/5", c.Score, c.Streak, c.BestStreak)
	}
}

func TestTrackerPenaltiesFloorAtZero(t *testing.T) {
	tr := newTestTracker(false)
	c := Counters{Score: 10, Streak: 3, BestStreak: 3}

	notes := tr.Apply(&c, nil, Event{Kind: EventPollutantHit, EntityKind: KindPollutant}, nil)
	if c.Score != 0 {
		t.Errorf("score = %d, expected floor at 0", c.Score)
	}
	if c.Streak != 0 || c.BestStreak != 3 {
		t.Errorf("streak = %d best = %d", c.Streak, c.BestStreak)
	}
	if len(notes) != 1 || notes[0].Amount != -15 {
		t.Errorf("notes = %+v", notes)
	}

	tr.Apply(&c, nil, Event{Kind: EventEnemyHit, EntityKind: KindEnemy}, nil)
	if c.Score != 0 || c.EnemyHits != 1 {
		t.Errorf("after enemy: %+v", c)
	}
}

func TestTrackerMissedKeepsStreak(t *testing.T) {
	tr := newTestTracker(false)
	c := Counters{Score: 20, Streak: 2}

	tr.Apply(&c, nil, Event{Kind: EventMissed, EntityKind: KindClean}, nil)
	if c.Missed != 1 || c.Streak != 2 || c.Score != 20 {
		t.Errorf("counters = %+v", c)
	}

	if notes := tr.Apply(&c, nil, Event{Kind: EventMissed, EntityKind: KindPollutant}, nil); notes != nil || c.Missed != 1 {
		t.Error("a pollutant leaving the world is not a miss")
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		clean, target, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{9, 3, 100},
		{5, 0, 0},
		{25, 50, 50},
	}
	for _, tt := range tests {
		if got := Progress(tt.clean, tt.target); got != tt.want {
			t.Errorf("Progress(%d, %d) = %d, expected %d", tt.clean, tt.target, got, tt.want)
		}
	}
}

func TestTrackerCelebratesOnce(t *testing.T) {
	tr := newTestTracker(false)
	tr.ResetZone(2)
	var c Counters

	celebrations := 0
	for i := 0; i < 6; i++ {
		notes := tr.Apply(&c, nil, Event{Kind: EventCollected, EntityKind: KindClean}, nil)
		if hasNote(notes, NoteCelebrate) {
			celebrations++
			if i != 1 {
				t.Errorf("celebration on collect %d", i+1)
			}
		}
	}
	if celebrations != 1 || !tr.Celebrated() {
		t.Errorf("celebrations = %d", celebrations)
	}
	if c.Progress != 100 {
		t.Errorf("progress = %d", c.Progress)
	}
}

func TestTrackerZoneComplete(t *testing.T) {
	tr := newTestTracker(true)
	tr.ResetZone(2)
	var c Counters

	first := tr.Apply(&c, nil, Event{Kind: EventCollected, EntityKind: KindCollectible}, nil)
	if hasNote(first, NoteZoneComplete) {
		t.Fatal("zone completed early")
	}
	second := tr.Apply(&c, nil, Event{Kind: EventCollected, EntityKind: KindCollectible}, nil)
	if !hasNote(second, NoteZoneComplete) {
		t.Fatalf("notes = %v", noteKinds(second))
	}
	third := tr.Apply(&c, nil, Event{Kind: EventCollected, EntityKind: KindCollectible}, nil)
	if hasNote(third, NoteZoneComplete) {
		t.Error("zone completion must fire once per zone")
	}

	tr.ResetZone(0)
	if tr.Target() != config.DefaultDropsConfig().Scoring.TargetCleanCount {
		t.Errorf("zero target should fall back to the config, got %d", tr.Target())
	}
}

func TestTrackerCheckpointShowsFacts(t *testing.T) {
	tr := newTestTracker(true)
	statics := []Static{{Kind: StaticCheckpoint}, {Kind: StaticCheckpoint}}
	var c Counters

	var shown []facts.Fact
	for i := range 5 {
		notes := tr.Apply(&c, nil, Event{Kind: EventCheckpointReached, Static: i % 2}, statics)
		if len(notes) == 0 || notes[0].Kind != NoteShowFact {
			t.Fatalf("checkpoint %d notes = %v", i, noteKinds(notes))
		}
		shown = append(shown, notes[0].Fact)
	}

	for i, f := range shown[:4] {
		if f.Category != facts.CategoryFact {
			t.Errorf("fact %d category = %v, informational facts come first", i, f.Category)
		}
	}
	if shown[4].Category != facts.CategoryMotivation {
		t.Errorf("fifth card = %v, expected the motivational entry", shown[4].Category)
	}
	if statics[0].FactID != shown[4].ID {
		t.Errorf("checkpoint should remember its last fact, got %q", statics[0].FactID)
	}
}

func TestTrackerFellOut(t *testing.T) {
	tr := newTestTracker(true)
	a := &Actor{Lives: 2}
	var c Counters

	notes := tr.Apply(&c, a, Event{Kind: EventFellOut}, nil)
	if a.Lives != 1 || len(notes) != 1 || notes[0].Amount != 1 {
		t.Fatalf("lives = %d notes = %+v", a.Lives, notes)
	}
	notes = tr.Apply(&c, a, Event{Kind: EventFellOut}, nil)
	if a.Lives != 0 || !hasNote(notes, NoteLivesExhausted) {
		t.Errorf("lives = %d notes = %v", a.Lives, noteKinds(notes))
	}
}
