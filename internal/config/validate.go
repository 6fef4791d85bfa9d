package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func fmtInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks the configuration for values the simulation cannot run
// with. All problems are reported together.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmtInvalid(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0,
		"world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.Padding >= 0 && c.World.Padding*2 <= c.World.Width,
		"world padding %v does not fit width %v", c.World.Padding, c.World.Width)

	check(c.Scoring.TargetCleanCount > 0,
		"target_clean_count must be > 0, got %d", c.Scoring.TargetCleanCount)
	check(c.Scoring.CleanPoints >= 0, "clean_points must not be negative")
	check(c.Scoring.PollutedPenalty >= 0, "polluted_penalty must not be negative")
	check(c.Scoring.MissedPenalty >= 0, "missed_penalty must not be negative")
	check(c.Scoring.EnemyPenalty >= 0, "enemy_penalty must not be negative")
	check(c.Scoring.StreakBonusThreshold >= 0, "streak_bonus_threshold must not be negative")

	check(c.Spawn.PollutedChance >= 0 && c.Spawn.PollutedChance <= 1,
		"polluted_chance must be within [0, 1], got %v", c.Spawn.PollutedChance)
	check(c.Spawn.IntervalMs > 0, "spawn interval_ms must be > 0, got %d", c.Spawn.IntervalMs)
	check(c.Spawn.FirstSpawnMs >= 0, "first_spawn_ms must not be negative")
	check(c.Spawn.BaseSpeed > 0, "spawn base_speed must be > 0")
	check(c.Spawn.SpeedJitter >= 0 && c.Spawn.SpeedJitter < c.Spawn.BaseSpeed,
		"speed_jitter must be within [0, base_speed)")
	check(c.Spawn.DropSize > 0, "drop_size must be > 0")

	check(c.Actor.Width > 0 && c.Actor.Height > 0, "actor size must be positive")
	check(c.Actor.Width <= c.World.Width, "actor is wider than the world")
	check(c.Actor.Speed >= 0, "actor speed must not be negative")
	check(c.Actor.Gravity >= 0, "actor gravity must not be negative")
	check(c.Actor.Lives > 0, "actor lives must be > 0")

	check(c.Session.GameDurationSeconds >= 0, "game_duration_seconds must not be negative")
	check(c.Session.CountdownMs > 0, "countdown_ms must be > 0")
	check(c.Session.FactDisplayMs > 0, "fact_display_ms must be > 0")

	switch c.Difficulty.Progression {
	case ProgressionNone, ProgressionScore, ProgressionTime:
	default:
		errs = append(errs, fmtInvalid("unknown difficulty progression %q", c.Difficulty.Progression))
	}
	for i, st := range c.Difficulty.Stages {
		check(st.SpeedMultiplier > 0 && st.IntervalMultiplier > 0,
			"stage %d multipliers must be positive", i)
		if i > 0 {
			check(st.At > c.Difficulty.Stages[i-1].At, "stages must be sorted by ascending 'at'")
		}
	}

	for id, p := range c.Presets {
		check(p.PollutedChance >= 0 && p.PollutedChance <= 1,
			"preset %q polluted_chance must be within [0, 1]", id)
		check(p.SpawnIntervalMs >= 0 && p.GameDurationSeconds >= 0 && p.Lives >= 0 && p.SpeedMultiplier >= 0,
			"preset %q has negative values", id)
	}

	check(len(c.Characters) > 0, "at least one character is required")
	seen := make(map[string]bool, len(c.Characters))
	for _, ch := range c.Characters {
		check(ch.ID != "", "character id must not be empty")
		check(!seen[ch.ID], "duplicate character id %q", ch.ID)
		seen[ch.ID] = true
	}

	check(len(c.Tiers) > 0, "at least one score tier is required")
	check(sort.SliceIsSorted(c.Tiers, func(i, j int) bool { return c.Tiers[i].MinScore > c.Tiers[j].MinScore }),
		"tiers must be sorted by descending min_score")

	return errors.Join(errs...)
}
