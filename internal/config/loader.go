package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadDrops loads the falling-drop configuration.
// Search order: customPath -> ~/.drops/configs/drops.yaml -> ./configs/drops.yaml -> embedded default
func LoadDrops(customPath string) (GameConfig, error) {
	return Load(GameDrops, customPath)
}

// LoadQuest loads the platformer configuration.
// Search order: customPath -> ~/.drops/configs/quest.yaml -> ./configs/quest.yaml -> embedded default
func LoadQuest(customPath string) (GameConfig, error) {
	return Load(GameQuest, customPath)
}

// Load resolves, decodes and validates the configuration of a game.
// Files only need to contain the keys they override.
func Load(game, customPath string) (GameConfig, error) {
	base, ok := Default(game)
	if !ok {
		return GameConfig{}, fmt.Errorf("no configuration for game %q", game)
	}

	cfg, err := resolve(game, customPath, base)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config for %s: %w", game, err)
	}
	return cfg, nil
}

func resolve(game, customPath string, base GameConfig) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := base
		if err := decode(customPath, data, &cfg); err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := game + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg := base
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := base
	if err := yaml.Unmarshal(embeddedYAML(game), &cfg); err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format from the file extension.
func decode(path string, data []byte, cfg *GameConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Marshal renders a configuration as YAML, the format of the defaults.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".drops", "configs", filename)
}
