// drops is a pair of water charity mini-games for the terminal.
//
// Usage:
//
//	drops list               - List available games
//	drops play <game>        - Play a game
//	drops menu               - Pick games from a menu
//	drops serve              - Serve the games over SSH
//	drops simulate <game>    - Let a bot play and print the results
//	drops config <game>      - Print or check the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible runs
//	--config <path>       - Custom game config (YAML or TOML)
//	--facts <path>        - Custom fact list
//	--zones <path>        - Custom quest zones
//	--difficulty <preset> - easy, normal or hard
//	--character <id>      - boy or girl
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/games/water"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagFacts      string
	flagZones      string
	flagDifficulty string
	flagCharacter  string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drops",
	Short: "Water Drops - catch clean water in your terminal",
	Long: `Water Drops is a pair of small terminal games about clean water.

  drops     - clean drops fall from the sky; catch or click them
  quest     - run across the campus, collect droplets and read water facts

Examples:
  drops list
  drops play drops
  drops play quest --character girl --difficulty easy
  drops menu
  drops serve --ssh :2222
  drops simulate drops --runs 10`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to a custom game config (.yaml or .toml)")
	pf.StringVar(&flagFacts, "facts", "", "Path to a custom fact list")
	pf.StringVar(&flagZones, "zones", "", "Path to custom quest zones")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagCharacter, "character", "", "Character: boy, girl")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at --log-level writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// interactiveLogger logs to --log-file, or nowhere, since the terminal
// belongs to the game. The returned function closes the file.
func interactiveLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "drops")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// applyGameFlags hands the global flags to the game package.
func applyGameFlags(logger *log.Logger) {
	water.SetConfigPath(flagConfig)
	water.SetFactsPath(flagFacts)
	water.SetZonesPath(flagZones)
	water.SetDifficultyPreset(flagDifficulty)
	water.SetCharacter(flagCharacter)
	water.SetLogger(logger)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
