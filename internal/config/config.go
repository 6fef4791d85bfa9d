// Package config provides YAML/TOML game configuration loading, validation
// and difficulty management for the water games.
package config

import "time"

// GameConfig contains all tunable parameters of one game mode.
type GameConfig struct {
	World      WorldConfig       `yaml:"world" toml:"world"`
	Scoring    ScoringConfig     `yaml:"scoring" toml:"scoring"`
	Spawn      SpawnConfig       `yaml:"spawn" toml:"spawn"`
	Actor      ActorConfig       `yaml:"actor" toml:"actor"`
	Session    SessionConfig     `yaml:"session" toml:"session"`
	Difficulty DifficultyConfig  `yaml:"difficulty" toml:"difficulty"`
	Presets    map[string]Preset `yaml:"presets" toml:"presets"`
	Characters []Character       `yaml:"characters" toml:"characters"`
	Tiers      []Tier            `yaml:"tiers" toml:"tiers"`
}

// WorldConfig defines the logical play area in world units.
type WorldConfig struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Padding float64 `yaml:"padding" toml:"padding"` // spawn margin from the side walls
}

// ScoringConfig defines points, penalties and the progress target.
type ScoringConfig struct {
	CleanPoints          int `yaml:"clean_points" toml:"clean_points"`
	PollutedPenalty      int `yaml:"polluted_penalty" toml:"polluted_penalty"`
	MissedPenalty        int `yaml:"missed_penalty" toml:"missed_penalty"`
	EnemyPenalty         int `yaml:"enemy_penalty" toml:"enemy_penalty"`
	StreakBonusThreshold int `yaml:"streak_bonus_threshold" toml:"streak_bonus_threshold"`
	StreakBonusAmount    int `yaml:"streak_bonus_amount" toml:"streak_bonus_amount"`
	TargetCleanCount     int `yaml:"target_clean_count" toml:"target_clean_count"`
}

// SpawnConfig defines how falling entities are introduced.
type SpawnConfig struct {
	Enabled        bool    `yaml:"enabled" toml:"enabled"`
	IntervalMs     int     `yaml:"interval_ms" toml:"interval_ms"`
	FirstSpawnMs   int     `yaml:"first_spawn_ms" toml:"first_spawn_ms"`
	PollutedChance float64 `yaml:"polluted_chance" toml:"polluted_chance"`
	BaseSpeed      float64 `yaml:"base_speed" toml:"base_speed"`     // world units per second
	SpeedJitter    float64 `yaml:"speed_jitter" toml:"speed_jitter"` // +/- random speed spread
	DropSize       float64 `yaml:"drop_size" toml:"drop_size"`
}

// Interval returns the spawn interval as a duration.
func (s SpawnConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

// FirstSpawn returns the delay before the first spawn of a run.
func (s SpawnConfig) FirstSpawn() time.Duration {
	return time.Duration(s.FirstSpawnMs) * time.Millisecond
}

// ActorConfig defines the player-controlled body.
// In drops mode it is the catcher at the bottom and Gravity is zero.
type ActorConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	JumpPower     float64 `yaml:"jump_power" toml:"jump_power"`
	Gravity       float64 `yaml:"gravity" toml:"gravity"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	Lives         int     `yaml:"lives" toml:"lives"`
	CollectBounce float64 `yaml:"collect_bounce" toml:"collect_bounce"`
	KnockbackX    float64 `yaml:"knockback_x" toml:"knockback_x"`
	KnockbackY    float64 `yaml:"knockback_y" toml:"knockback_y"`
	StartX        float64 `yaml:"start_x" toml:"start_x"`
	StartY        float64 `yaml:"start_y" toml:"start_y"`
}

// SessionConfig defines run-level timing.
type SessionConfig struct {
	GameDurationSeconds int `yaml:"game_duration_seconds" toml:"game_duration_seconds"` // 0 disables the countdown
	FactDisplayMs       int `yaml:"fact_display_ms" toml:"fact_display_ms"`
	CountdownMs         int `yaml:"countdown_ms" toml:"countdown_ms"`
	LowTimeSeconds      int `yaml:"low_time_seconds" toml:"low_time_seconds"`
}

// FactDisplay returns how long a fact card stays up before auto-dismissing.
func (s SessionConfig) FactDisplay() time.Duration {
	return time.Duration(s.FactDisplayMs) * time.Millisecond
}

// Countdown returns the period of one countdown step.
func (s SessionConfig) Countdown() time.Duration {
	return time.Duration(s.CountdownMs) * time.Millisecond
}

// Progression types for difficulty staging.
const (
	ProgressionNone  = "none"
	ProgressionScore = "score"
	ProgressionTime  = "time"
)

// DifficultyConfig defines stepwise difficulty scaling during a run.
type DifficultyConfig struct {
	Progression string  `yaml:"progression" toml:"progression"`
	Stages      []Stage `yaml:"stages" toml:"stages"`
}

// Stage becomes active once score (or elapsed seconds) reaches At.
type Stage struct {
	At                 int     `yaml:"at" toml:"at"`
	SpeedMultiplier    float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`
	IntervalMultiplier float64 `yaml:"interval_multiplier" toml:"interval_multiplier"`
}

// Preset overrides selected fields when a difficulty is chosen.
// Zero values leave the base configuration untouched.
type Preset struct {
	SpawnIntervalMs     int     `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
	PollutedChance      float64 `yaml:"polluted_chance" toml:"polluted_chance"`
	SpeedMultiplier     float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`
	GameDurationSeconds int     `yaml:"game_duration_seconds" toml:"game_duration_seconds"`
	Lives               int     `yaml:"lives" toml:"lives"`
}

// Character is a selectable player avatar.
type Character struct {
	ID    string `yaml:"id" toml:"id"`
	Name  string `yaml:"name" toml:"name"`
	Color string `yaml:"color" toml:"color"`
}

// Tier maps a minimum score to a game-over message.
type Tier struct {
	MinScore int    `yaml:"min_score" toml:"min_score"`
	Message  string `yaml:"message" toml:"message"`
}

// Difficulty preset names shipped with the defaults.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// HasCharacter reports whether id names a configured character.
func (c GameConfig) HasCharacter(id string) bool {
	for _, ch := range c.Characters {
		if ch.ID == id {
			return true
		}
	}
	return false
}

// TierMessage returns the message of the highest tier reached by score.
// Tiers are sorted by descending MinScore after validation.
func (c GameConfig) TierMessage(score int) string {
	for _, t := range c.Tiers {
		if score >= t.MinScore {
			return t.Message
		}
	}
	return ""
}

// ApplyPreset returns a copy of cfg with the named preset applied.
func ApplyPreset(cfg GameConfig, id string) (GameConfig, error) {
	p, ok := cfg.Presets[id]
	if !ok {
		return cfg, fmtInvalid("unknown difficulty preset %q", id)
	}

	if p.SpawnIntervalMs > 0 {
		cfg.Spawn.IntervalMs = p.SpawnIntervalMs
	}
	if p.PollutedChance > 0 {
		cfg.Spawn.PollutedChance = p.PollutedChance
	}
	if p.SpeedMultiplier > 0 {
		cfg.Spawn.BaseSpeed *= p.SpeedMultiplier
		cfg.Spawn.SpeedJitter *= p.SpeedMultiplier
	}
	if p.GameDurationSeconds > 0 {
		cfg.Session.GameDurationSeconds = p.GameDurationSeconds
	}
	if p.Lives > 0 {
		cfg.Actor.Lives = p.Lives
	}
	return cfg, nil
}
