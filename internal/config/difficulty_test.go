package config

import (
	"testing"
	"time"
)

func TestDifficultyStageByScore(t *testing.T) {
	dm := NewDifficultyManager(DefaultDropsConfig().Difficulty)

	tests := []struct {
		score    int
		wantIdx  int
		wantMult float64
	}{
		{0, -1, 1},
		{149, -1, 1},
		{150, 0, 1.2},
		{299, 0, 1.2},
		{300, 1, 1.4},
		{10_000, 1, 1.4},
	}
	for _, tc := range tests {
		idx, st := dm.Stage(tc.score, 0)
		if idx != tc.wantIdx || st.SpeedMultiplier != tc.wantMult {
			t.Errorf("Stage(%d) = %d/%v, expected %d/%v", tc.score, idx, st.SpeedMultiplier, tc.wantIdx, tc.wantMult)
		}
	}
}

func TestDifficultyStageByTime(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Progression: ProgressionTime,
		Stages:      []Stage{{At: 20, SpeedMultiplier: 1.5, IntervalMultiplier: 0.5}},
	})

	if idx, _ := dm.Stage(1000, 19*time.Second); idx != -1 {
		t.Errorf("time progression must ignore score, got stage %d", idx)
	}
	if got := dm.Interval(800*time.Millisecond, 0, 20*time.Second); got != 400*time.Millisecond {
		t.Errorf("Interval = %v, expected 400ms", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DefaultQuestConfig().Difficulty)
	if dm.IsEnabled() {
		t.Fatal("quest difficulty should be disabled")
	}
	if dm.Speed(999, time.Hour) != 1 {
		t.Error("disabled manager should not scale speed")
	}
	if got := dm.Interval(time.Second, 999, time.Hour); got != time.Second {
		t.Errorf("Interval = %v, expected unchanged", got)
	}
}
