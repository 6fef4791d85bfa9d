package config

import "time"

// baseStage is used when no configured stage has been reached yet.
var baseStage = Stage{SpeedMultiplier: 1, IntervalMultiplier: 1}

// DifficultyManager picks the active difficulty stage from score or time.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Progression != ProgressionNone && d.cfg.Progression != "" && len(d.cfg.Stages) > 0
}

// Stage returns the index and parameters of the active stage.
// Index -1 means the base stage (no scaling).
func (d *DifficultyManager) Stage(score int, elapsed time.Duration) (int, Stage) {
	if !d.IsEnabled() {
		return -1, baseStage
	}

	var value int
	switch d.cfg.Progression {
	case ProgressionScore:
		value = score
	case ProgressionTime:
		value = int(elapsed / time.Second)
	}

	idx, active := -1, baseStage
	for i, st := range d.cfg.Stages {
		if value < st.At {
			break
		}
		idx, active = i, st
	}
	return idx, active
}

// Interval scales a base spawn interval by the active stage.
func (d *DifficultyManager) Interval(base time.Duration, score int, elapsed time.Duration) time.Duration {
	_, st := d.Stage(score, elapsed)
	iv := time.Duration(float64(base) * st.IntervalMultiplier)
	if iv < time.Millisecond {
		iv = time.Millisecond
	}
	return iv
}

// Speed returns the fall-speed multiplier of the active stage.
func (d *DifficultyManager) Speed(score int, elapsed time.Duration) float64 {
	_, st := d.Stage(score, elapsed)
	return st.SpeedMultiplier
}
