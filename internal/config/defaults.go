package config

import (
	_ "embed"
)

//go:embed defaults/drops.yaml
var defaultDropsYAML []byte

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// Game identifiers that have a default configuration.
const (
	GameDrops = "drops"
	GameQuest = "quest"
)

func defaultTiers() []Tier {
	return []Tier{
		{MinScore: 400, Message: "Outstanding! You're a water conservation champion!"},
		{MinScore: 300, Message: "Excellent! You understand the value of clean water!"},
		{MinScore: 200, Message: "Great job! Keep fighting for clean water access!"},
		{MinScore: 100, Message: "Good effort! Every drop makes a difference!"},
		{MinScore: 0, Message: "Keep trying! Together we can bring clean water to all!"},
	}
}

func defaultCharacters() []Character {
	return []Character{
		{ID: "boy", Name: "Boy", Color: "cyan"},
		{ID: "girl", Name: "Girl", Color: "magenta"},
	}
}

// DefaultDropsConfig returns the default falling-drop configuration.
func DefaultDropsConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{Width: 800, Height: 600, Padding: 30},
		Scoring: ScoringConfig{
			CleanPoints:          10,
			PollutedPenalty:      15,
			MissedPenalty:        0,
			EnemyPenalty:         20,
			StreakBonusThreshold: 5,
			StreakBonusAmount:    20,
			TargetCleanCount:     50,
		},
		Spawn: SpawnConfig{
			Enabled:        true,
			IntervalMs:     800,
			FirstSpawnMs:   0,
			PollutedChance: 0.30,
			BaseSpeed:      150,
			SpeedJitter:    30,
			DropSize:       40,
		},
		Actor: ActorConfig{
			Width:  90,
			Height: 20,
			Speed:  420,
			Lives:  1,
			StartX: 355,
			StartY: 570,
		},
		Session: SessionConfig{
			GameDurationSeconds: 60,
			FactDisplayMs:       40000,
			CountdownMs:         1000,
			LowTimeSeconds:      10,
		},
		Difficulty: DifficultyConfig{
			Progression: ProgressionScore,
			Stages: []Stage{
				{At: 150, SpeedMultiplier: 1.2, IntervalMultiplier: 0.85},
				{At: 300, SpeedMultiplier: 1.4, IntervalMultiplier: 0.7},
			},
		},
		Presets: map[string]Preset{
			DifficultyEasy:   {SpawnIntervalMs: 1000, PollutedChance: 0.18, SpeedMultiplier: 0.85, GameDurationSeconds: 75},
			DifficultyNormal: {},
			DifficultyHard:   {SpawnIntervalMs: 650, PollutedChance: 0.40, SpeedMultiplier: 1.25, GameDurationSeconds: 45},
		},
		Characters: defaultCharacters(),
		Tiers:      defaultTiers(),
	}
}

// DefaultQuestConfig returns the default platformer configuration.
func DefaultQuestConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{Width: 920, Height: 480, Padding: 20},
		Scoring: ScoringConfig{
			CleanPoints:          10,
			PollutedPenalty:      15,
			MissedPenalty:        0,
			EnemyPenalty:         20,
			StreakBonusThreshold: 5,
			StreakBonusAmount:    20,
			TargetCleanCount:     8,
		},
		Spawn: SpawnConfig{
			Enabled:        false,
			IntervalMs:     1600,
			FirstSpawnMs:   1600,
			PollutedChance: 0.25,
			BaseSpeed:      120,
			SpeedJitter:    20,
			DropSize:       14,
		},
		Actor: ActorConfig{
			Width:         22,
			Height:        34,
			Speed:         144,
			JumpPower:     840,
			Gravity:       3240,
			MaxFallSpeed:  900,
			Lives:         3,
			CollectBounce: 360,
			KnockbackX:    28,
			KnockbackY:    480,
			StartX:        40,
			StartY:        360,
		},
		Session: SessionConfig{
			GameDurationSeconds: 0,
			FactDisplayMs:       40000,
			CountdownMs:         1000,
			LowTimeSeconds:      10,
		},
		Difficulty: DifficultyConfig{Progression: ProgressionNone},
		Presets: map[string]Preset{
			DifficultyEasy:   {Lives: 5},
			DifficultyNormal: {},
			DifficultyHard:   {Lives: 2, SpeedMultiplier: 1.3},
		},
		Characters: defaultCharacters(),
		Tiers:      defaultTiers(),
	}
}

// Default returns the hardcoded configuration for a game ID.
func Default(game string) (GameConfig, bool) {
	switch game {
	case GameDrops:
		return DefaultDropsConfig(), true
	case GameQuest:
		return DefaultQuestConfig(), true
	default:
		return GameConfig{}, false
	}
}

func embeddedYAML(game string) []byte {
	switch game {
	case GameDrops:
		return defaultDropsYAML
	case GameQuest:
		return defaultQuestYAML
	default:
		return nil
	}
}
