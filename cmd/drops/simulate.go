package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-drops/internal/bot"
	"github.com/vovakirdan/tui-drops/internal/games/water"
	"github.com/vovakirdan/tui-drops/internal/sim"
	"github.com/vovakirdan/tui-drops/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Let a bot play and print the results",
	Long: `Run the game without a terminal, driven by a scripted player.

Runs use seeds --seed, --seed+1, ... so results are reproducible. Notes
from the simulation are logged to stderr at debug level.

Examples:
  drops simulate drops --runs 20 --seed 42
  drops simulate quest --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 60*60*10, "Give up on a run after this many ticks")
}

type simResult struct {
	seed  int64
	snap  sim.Snapshot
	ticks uint64
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	logger, err := newLogger(os.Stderr, "drops-sim")
	if err != nil {
		return err
	}
	applyGameFlags(logger)

	opts, err := water.Load(gameID)
	if err != nil {
		return err
	}
	if flagRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive")
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	dt := time.Second / time.Duration(flagFPS)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]simResult, flagRuns)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range flagRuns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runOpts := opts
			runOpts.Seed = seed + int64(i)
			s, err := sim.New(runOpts)
			if err != nil {
				return err
			}
			runLog := logger.With("run", i, "seed", runOpts.Seed)
			snap := bot.Run(s, bot.For(s.Mode()), dt, flagMaxTicks, func(n sim.Notification) {
				runLog.Debug("note", "kind", n.Kind, "amount", n.Amount, "phase", n.Phase)
			})
			runLog.Info("run finished", "phase", snap.Phase, "score", snap.Score)
			results[i] = simResult{seed: runOpts.Seed, snap: snap, ticks: snap.Tick}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	store, err := storage.OpenMemory(context.Background())
	if err != nil {
		return err
	}
	defer store.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSEED\tTICKS\tSCORE\tCLEAN\tSTREAK\tFACTS\tOUTCOME")
	for i, r := range results {
		run := toRun(gameID, &r.snap)
		if _, err := store.SaveRun(context.Background(), run); err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			i+1, r.seed, r.ticks, run.Score, run.CleanCollected, run.BestStreak, run.FactsSeen, run.Outcome)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stats, err := store.Stats(context.Background(), gameID)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d runs: best %d, average %.1f, %d clean drops, best streak %d\n",
		stats.Runs, stats.HighScore, stats.AvgScore, stats.TotalClean, stats.BestStreak)
	return nil
}

// toRun turns the final snapshot of a simulated run into a scoreboard row.
func toRun(gameID string, snap *sim.Snapshot) storage.Run {
	run := storage.Run{
		GameID:         gameID,
		Score:          snap.Score,
		CleanCollected: snap.TotalClean,
		BestStreak:     snap.BestStreak,
		FactsSeen:      snap.FactsSeen,
		Character:      snap.Character,
		Difficulty:     snap.Difficulty,
		Outcome:        "unfinished",
	}
	switch {
	case snap.Summary != nil && snap.Summary.Final:
		run.Score = snap.Summary.Score
		run.BestStreak = snap.Summary.BestStreak
		run.FactsSeen = snap.Summary.FactsSeen
		run.Outcome = string(snap.Summary.Outcome)
	case snap.AllZonesComplete:
		run.Outcome = string(sim.OutcomeZonesComplete)
	}
	return run
}
