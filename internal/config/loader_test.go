package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		game string
		want GameConfig
	}{
		{GameDrops, DefaultDropsConfig()},
		{GameQuest, DefaultQuestConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.game, func(t *testing.T) {
			var got GameConfig
			if err := yaml.Unmarshal(embeddedYAML(tc.game), &got); err != nil {
				t.Fatalf("embedded yaml does not parse: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("embedded yaml and Default%sConfig differ:\n got  %+v\n want %+v", tc.game, got, tc.want)
			}
			if err := tc.want.Validate(); err != nil {
				t.Errorf("default config is invalid: %v", err)
			}
		})
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadDrops("")
	if err != nil {
		t.Fatalf("LoadDrops: %v", err)
	}
	if cfg.Spawn.IntervalMs != 800 || cfg.Session.GameDurationSeconds != 60 {
		t.Errorf("unexpected defaults: spawn=%d duration=%d", cfg.Spawn.IntervalMs, cfg.Session.GameDurationSeconds)
	}
}

func TestLoadUserConfigOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".drops", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "scoring:\n  target_clean_count: 6\n"
	if err := os.WriteFile(filepath.Join(dir, "quest.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadQuest("")
	if err != nil {
		t.Fatalf("LoadQuest: %v", err)
	}
	if cfg.Scoring.TargetCleanCount != 6 {
		t.Errorf("target = %d, expected 6 from user file", cfg.Scoring.TargetCleanCount)
	}
	if cfg.Actor.Lives != 3 {
		t.Errorf("keys absent from the file should keep defaults, lives = %d", cfg.Actor.Lives)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drops.toml")
	body := `
[spawn]
interval_ms = 500
polluted_chance = 0.2

[session]
game_duration_seconds = 30
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrops(path)
	if err != nil {
		t.Fatalf("LoadDrops(toml): %v", err)
	}
	if cfg.Spawn.IntervalMs != 500 || cfg.Spawn.PollutedChance != 0.2 {
		t.Errorf("spawn = %+v", cfg.Spawn)
	}
	if cfg.Session.GameDurationSeconds != 30 {
		t.Errorf("duration = %d, expected 30", cfg.Session.GameDurationSeconds)
	}
	if cfg.Spawn.DropSize != 40 {
		t.Errorf("untouched keys should keep defaults, drop size = %v", cfg.Spawn.DropSize)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"polluted chance above one", "spawn:\n  polluted_chance: 1.5\n"},
		{"negative polluted chance", "spawn:\n  polluted_chance: -0.1\n"},
		{"zero target", "scoring:\n  target_clean_count: 0\n"},
		{"zero interval", "spawn:\n  interval_ms: 0\n"},
		{"unknown progression", "difficulty:\n  progression: exponential\n"},
		{"unsorted tiers", "tiers:\n  - min_score: 0\n    message: a\n  - min_score: 100\n    message: b\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadDrops(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	_, err := LoadDrops(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected a read error, got %v", err)
	}
}

func TestLoadUnknownGame(t *testing.T) {
	if _, err := Load("snake", ""); err == nil {
		t.Error("expected error for a game without configuration")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultDropsConfig()

	easy, err := ApplyPreset(base, DifficultyEasy)
	if err != nil {
		t.Fatal(err)
	}
	if easy.Spawn.IntervalMs != 1000 || easy.Spawn.PollutedChance != 0.18 {
		t.Errorf("easy spawn = %+v", easy.Spawn)
	}
	if easy.Spawn.BaseSpeed != 150*0.85 {
		t.Errorf("easy speed = %v", easy.Spawn.BaseSpeed)
	}

	normal, _ := ApplyPreset(base, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change anything")
	}

	if _, err := ApplyPreset(base, "nightmare"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown preset error = %v", err)
	}

	hard, _ := ApplyPreset(DefaultQuestConfig(), DifficultyHard)
	if hard.Actor.Lives != 2 {
		t.Errorf("hard quest lives = %d, expected 2", hard.Actor.Lives)
	}
}

func TestTierMessage(t *testing.T) {
	cfg := DefaultDropsConfig()

	tests := []struct {
		score int
		want  string
	}{
		{450, "Outstanding! You're a water conservation champion!"},
		{400, "Outstanding! You're a water conservation champion!"},
		{399, "Excellent! You understand the value of clean water!"},
		{100, "Good effort! Every drop makes a difference!"},
		{0, "Keep trying! Together we can bring clean water to all!"},
	}
	for _, tc := range tests {
		if got := cfg.TierMessage(tc.score); got != tc.want {
			t.Errorf("TierMessage(%d) = %q, expected %q", tc.score, got, tc.want)
		}
	}
}

func TestHasCharacter(t *testing.T) {
	cfg := DefaultQuestConfig()
	if !cfg.HasCharacter("girl") || cfg.HasCharacter("robot") {
		t.Error("HasCharacter mismatch")
	}
}
