package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drops/internal/games/water"
	"github.com/vovakirdan/tui-drops/internal/platform/tui"
	"github.com/vovakirdan/tui-drops/internal/registry"
	"github.com/vovakirdan/tui-drops/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, D to change difficulty and Enter to
play. Tab opens the scoreboard of this session. After a game you return
to the menu.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	applyGameFlags(logger)

	store, err := storage.OpenMemory(context.Background())
	if err != nil {
		logger.Warn("scoreboard unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		result, err := tui.RunMenu(store, cfg, difficulty, logger)
		if err != nil {
			return err
		}
		cfg = result.Config
		difficulty = result.Difficulty

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}
		if result.Quit || result.GameID == "" {
			return nil
		}

		water.SetDifficultyPreset(difficulty)
		if err := water.CheckConfig(result.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
