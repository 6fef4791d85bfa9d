package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/games/water"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print or check the effective configuration",
	Long: `Print the configuration a game would use, after the search order
(--config, ~/.drops/configs, ./configs, built-in defaults) and the
difficulty preset are applied. With --check, also load facts and zones
and report the first problem.

Examples:
  drops config drops
  drops config quest --difficulty hard
  drops config drops --config ./my-drops.toml --check`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Only validate, print nothing on success")
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := args[0]
	logger, err := newLogger(os.Stderr, "drops")
	if err != nil {
		return err
	}
	applyGameFlags(logger)

	if flagCheck {
		if err := water.CheckConfig(gameID); err != nil {
			return err
		}
		fmt.Printf("%s: configuration ok\n", gameID)
		return nil
	}

	opts, err := water.Load(gameID)
	if err != nil {
		return err
	}
	cfg := opts.Config
	if flagDifficulty != "" {
		if cfg, err = config.ApplyPreset(cfg, flagDifficulty); err != nil {
			return err
		}
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
