// Package water adapts the drop-collecting simulation to the arcade
// platform. It registers two games: "drops", where clean water falls from
// the sky and the player catches or clicks it, and "quest", a campus
// platformer with checkpoints that reveal water facts.
package water

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/facts"
	"github.com/vovakirdan/tui-drops/internal/registry"
	"github.com/vovakirdan/tui-drops/internal/sim"
	"github.com/vovakirdan/tui-drops/internal/zones"
)

// Game IDs.
const (
	IDDrops = config.GameDrops
	IDQuest = config.GameQuest
)

// Minimum terminal size the playfield can be drawn in.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Options set from the command line before a game is created.
var (
	configPath       string
	factsPath        string
	zonesPath        string
	difficultyPreset string
	characterID      string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file for both games.
func SetConfigPath(path string) {
	configPath = path
}

// SetFactsPath sets a custom fact file.
func SetFactsPath(path string) {
	factsPath = path
}

// SetZonesPath sets a custom zone file for quest mode.
func SetZonesPath(path string) {
	zonesPath = path
}

// SetDifficultyPreset sets the preset applied at the start of a session.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// GetDifficultyPreset returns the currently selected preset.
func GetDifficultyPreset() string {
	return difficultyPreset
}

// SetCharacter sets the initially selected character.
func SetCharacter(id string) {
	characterID = id
}

// SetLogger replaces the package logger. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game wraps one simulation session.
type Game struct {
	mode    sim.Mode
	runtime core.RuntimeConfig
	session *sim.Session
	cfg     config.GameConfig
	log     *log.Logger

	snap     sim.Snapshot
	paused   bool
	tooSmall bool
	field    core.Rect
	feedback feedback
	result   *core.RunResult
}

// New creates the falling-drops game.
func New() *Game {
	return &Game{mode: sim.ModeDrops}
}

// NewQuest creates the campus platformer.
func NewQuest() *Game {
	return &Game{mode: sim.ModeQuest}
}

func init() {
	registry.Register(IDDrops, func() registry.Game {
		return New()
	})
	registry.Register(IDQuest, func() registry.Game {
		return NewQuest()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == sim.ModeQuest {
		return IDQuest
	}
	return IDDrops
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == sim.ModeQuest {
		return "Campus Water Quest"
	}
	return "Water Drop"
}

// Load reads the configuration, facts and zones for a game.
// Missing custom paths fall back to the embedded defaults.
func Load(id string) (sim.Options, error) {
	var opts sim.Options
	switch id {
	case IDDrops:
		opts.Mode = sim.ModeDrops
	case IDQuest:
		opts.Mode = sim.ModeQuest
	default:
		return opts, fmt.Errorf("water: unknown game %q", id)
	}

	cfg, err := config.Load(id, configPath)
	if err != nil {
		return opts, err
	}
	opts.Config = cfg

	opts.Facts = facts.Default()
	if factsPath != "" {
		if opts.Facts, err = facts.Load(factsPath); err != nil {
			return opts, err
		}
	}

	if opts.Mode == sim.ModeQuest {
		opts.Zones = zones.Default()
		if zonesPath != "" {
			if opts.Zones, err = zones.Load(zonesPath); err != nil {
				return opts, err
			}
		}
	}

	opts.Difficulty = difficultyPreset
	opts.Character = characterID
	return opts, nil
}

// CheckConfig loads everything a game needs and builds a throwaway
// session, returning the first problem found.
func CheckConfig(id string) error {
	opts, err := Load(id)
	if err != nil {
		return err
	}
	_, err = sim.New(opts)
	return err
}

// Reset builds a fresh session. Invalid custom files are logged and the
// embedded defaults are used instead.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.log = logger.With("game", g.ID())
	g.paused = false
	g.result = nil
	g.feedback = feedback{}

	opts, err := Load(g.ID())
	if err == nil {
		opts.Seed = runtime.Seed
		g.session, err = sim.New(opts)
	}
	if err != nil {
		g.log.Warn("falling back to default configuration", "err", err)
		g.session = g.defaultSession(runtime.Seed)
	}
	g.cfg = g.session.Config()

	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.layout()
	g.snap = g.session.Snapshot()
	g.log.Debug("session ready", "seed", runtime.Seed, "difficulty", g.snap.Difficulty, "character", g.snap.Character)
}

func (g *Game) defaultSession(seed int64) *sim.Session {
	cfg, _ := config.Default(g.ID())
	opts := sim.Options{Mode: g.mode, Config: cfg, Facts: facts.Default(), Seed: seed}
	if g.mode == sim.ModeQuest {
		opts.Zones = zones.Default()
	}
	s, err := sim.New(opts)
	if err != nil {
		panic(fmt.Sprintf("water: embedded defaults are invalid: %v", err))
	}
	return s
}

// Resize adapts the playfield to a new terminal size without touching
// the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.tooSmall = w < MinScreenW || h < MinScreenH
	g.layout()
}

// layout places the playfield below the two HUD rows and above the
// status line, keeping one cell for the border on every side.
func (g *Game) layout() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	g.field = core.NewRect(1, 3, core.Max(w-2, 1), core.Max(h-5, 1))
}

// Step forwards the frame's input to the session and advances it by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.result = nil
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && (g.snap.Phase == sim.PhasePlaying || g.paused) {
		g.paused = !g.paused
		g.log.Debug("pause toggled", "paused", g.paused)
	}

	for _, a := range in.Actions() {
		if g.paused && a.Kind != core.ActionKeyUp {
			continue
		}
		if a, ok := g.translate(a); ok {
			g.session.Enqueue(a)
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	prev := g.snap.Phase
	notes := g.session.Tick(time.Second / time.Duration(g.runtime.TickRate))
	g.snap = g.session.Snapshot()
	g.cfg = g.session.Config()
	g.feedback.tick()
	for _, n := range notes {
		g.handle(n, prev)
	}
	return core.StepResult{State: g.State()}
}

// translate converts a platform action into session input.
func (g *Game) translate(a core.Action) (core.Action, bool) {
	switch a.Kind {
	case core.ActionPause, core.ActionQuit, core.ActionBack, core.ActionNone:
		return a, false
	case core.ActionPointerDown:
		x, y, ok := g.cellToWorld(int(a.X), int(a.Y))
		if !ok {
			return a, false
		}
		return core.PointerDown(x, y), true
	case core.ActionSelectCharacter:
		if a.ID == "" {
			a.ID = g.nextCharacter()
		}
	case core.ActionSelectDifficulty:
		if a.ID == "" {
			a.ID = g.nextDifficulty()
		}
	}
	return a, true
}

func (g *Game) nextCharacter() string {
	chars := g.cfg.Characters
	for i, ch := range chars {
		if ch.ID == g.snap.Character {
			return chars[(i+1)%len(chars)].ID
		}
	}
	return chars[0].ID
}

// nextDifficulty cycles easy, normal, hard, then any custom presets.
func (g *Game) nextDifficulty() string {
	ids := make([]string, 0, len(g.cfg.Presets))
	for id := range g.cfg.Presets {
		ids = append(ids, id)
	}
	rank := map[string]int{config.DifficultyEasy: 0, config.DifficultyNormal: 1, config.DifficultyHard: 2}
	sort.Slice(ids, func(i, j int) bool {
		ri, okI := rank[ids[i]]
		rj, okJ := rank[ids[j]]
		switch {
		case okI && okJ:
			return ri < rj
		case okI != okJ:
			return okI
		default:
			return ids[i] < ids[j]
		}
	})
	if len(ids) == 0 {
		return ""
	}
	i := slices.Index(ids, g.snap.Difficulty)
	return ids[(i+1)%len(ids)]
}

// handle reacts to one session notification. prev is the phase the tick
// started in.
func (g *Game) handle(n sim.Notification, prev sim.Phase) {
	switch n.Kind {
	case sim.NotePhase:
		g.log.Debug("phase", "from", prev, "to", n.Phase, "score", g.snap.Score)
		if n.Phase == sim.PhasePlaying && (prev == sim.PhaseTitle || prev == sim.PhaseGameOver) {
			g.log.Info("run started", "difficulty", g.snap.Difficulty, "character", g.snap.Character)
		}
		if n.Phase == sim.PhaseZoneComplete && g.snap.Summary != nil && g.snap.Summary.Final {
			g.finish()
		}
	case sim.NoteGameOver:
		g.finish()
	default:
		g.feedback.show(n)
	}
}

// finish records the result of a run that just ended.
func (g *Game) finish() {
	sum := g.snap.Summary
	if sum == nil {
		return
	}
	g.result = &core.RunResult{
		Score:          sum.Score,
		CleanCollected: sum.CleanCollected,
		BestStreak:     sum.BestStreak,
		FactsSeen:      sum.FactsSeen,
		Character:      sum.Character,
		Difficulty:     sum.Difficulty,
		Outcome:        string(sum.Outcome),
		Message:        sum.Message,
	}
	g.log.Info("run finished", "score", sum.Score, "outcome", sum.Outcome, "clean", sum.CleanCollected, "facts", sum.FactsSeen)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		GameOver: g.snap.Phase == sim.PhaseGameOver,
		Paused:   g.paused,
		Phase:    g.snap.Phase.String(),
		Progress: g.snap.Progress,
		Result:   g.result,
	}
}

// Config returns the effective configuration of the session.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Snapshot exposes the last session snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// cellToWorld maps a screen cell to the world point at its centre.
func (g *Game) cellToWorld(cx, cy int) (float64, float64, bool) {
	f := g.field
	if !f.Contains(cx, cy) {
		return 0, 0, false
	}
	x := (float64(cx-f.X) + 0.5) * g.cfg.World.Width / float64(f.W)
	y := (float64(cy-f.Y) + 0.5) * g.cfg.World.Height / float64(f.H)
	return x, y, true
}

// worldToCell maps a world point to the screen cell containing it.
func (g *Game) worldToCell(x, y float64) (int, int) {
	f := g.field
	cx := f.X + int(math.Floor(x*float64(f.W)/g.cfg.World.Width))
	cy := f.Y + int(math.Floor(y*float64(f.H)/g.cfg.World.Height))
	return cx, cy
}

// boxToCells maps a world box to the cell rectangle it covers, at least
// one cell in each direction.
func (g *Game) boxToCells(b core.Box) core.Rect {
	x0, y0 := g.worldToCell(b.X, b.Y)
	x1, y1 := g.worldToCell(b.Right(), b.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}
