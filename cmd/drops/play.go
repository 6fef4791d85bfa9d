package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drops/internal/games/water"
	"github.com/vovakirdan/tui-drops/internal/platform/tui"
	"github.com/vovakirdan/tui-drops/internal/registry"
	"github.com/vovakirdan/tui-drops/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  ←/→, h/l     - Move
  Space/↑      - Jump (quest)
  Mouse click  - Collect a drop (drops)
  Enter        - Start, close a fact, next zone, play again
  X            - Close a fact
  C / D        - Change character / difficulty on the title screen
  P            - Pause
  R            - Restart after a run
  Esc          - Back
  Q/Ctrl+C     - Quit

Scores are kept in memory and shown until the program exits.

Examples:
  drops play drops
  drops play quest --difficulty easy
  drops play drops --config ./my-drops.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'drops list' to see available games", gameID)
	}

	logger, closeLog, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	applyGameFlags(logger)

	if err := water.CheckConfig(gameID); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.OpenMemory(context.Background())
	if err != nil {
		logger.Warn("scoreboard unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
