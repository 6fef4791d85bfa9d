package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/facts"
	"github.com/vovakirdan/tui-drops/internal/zones"
)

// Mode selects the game variant.
type Mode int

const (
	ModeDrops Mode = iota // falling drops, countdown, click or catch
	ModeQuest             // platformer zones with checkpoints and lives
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeQuest {
		return "quest"
	}
	return "drops"
}

// Phase is the session state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseFactPaused
	PhaseGameOver
	PhaseZoneComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseFactPaused:
		return "fact"
	case PhaseGameOver:
		return "gameover"
	case PhaseZoneComplete:
		return "zonecomplete"
	default:
		return "unknown"
	}
}

// Outcome tells how a run or zone ended.
type Outcome string

const (
	OutcomeNone           Outcome = ""
	OutcomeTimeExpired    Outcome = "time_expired"
	OutcomeLivesExhausted Outcome = "lives_exhausted"
	OutcomeZoneComplete   Outcome = "zone_complete"
	OutcomeZonesComplete  Outcome = "zones_complete"
)

// Summary is shown on the game-over and zone-complete screens.
type Summary struct {
	Outcome        Outcome
	Score          int
	CleanCollected int
	BestStreak     int
	FactsSeen      int
	Message        string
	ZoneName       string
	ZoneProgress   int
	Final          bool // the run is over
	Character      string
	Difficulty     string
}

// ErrNoZones is returned when quest mode has nothing to play.
var ErrNoZones = errors.New("quest mode needs at least one zone")

// Options configure a new session.
type Options struct {
	Mode       Mode
	Config     config.GameConfig
	Facts      []facts.Fact
	Zones      []zones.Zone
	Seed       int64
	Difficulty string // preset ID; empty picks "normal" when defined
	Character  string // empty picks the first configured character
}

// Session owns one player's run: configuration, entities, clocks and
// counters. All mutation happens inside Tick; input is queued with Enqueue
// and consumed at the start of the next tick.
type Session struct {
	mode  Mode
	base  config.GameConfig
	cfg   config.GameConfig
	zones []zones.Zone

	difficulty string
	character  string

	rng       *rand.Rand
	store     *Store
	actor     Actor
	spawner   *Spawner
	countdown Periodic
	factTimer OneShot
	picker    *facts.Picker
	tracker   *Tracker
	diff      *config.DifficultyManager

	queue []core.Action
	held  map[core.Key]bool

	phase         Phase
	counters      Counters
	timeRemaining int
	zoneIndex     int
	elapsed       time.Duration
	ticks         uint64
	fact          facts.Fact
	hasFact       bool
	summary       *Summary
	allDone       bool
	zonePending   bool // zone completes when the open fact card closes
}

// New validates the options and returns a session on the title screen.
func New(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	switch opts.Mode {
	case ModeDrops:
		if opts.Config.Session.GameDurationSeconds <= 0 {
			return nil, fmt.Errorf("%w: drops mode needs game_duration_seconds > 0", config.ErrInvalidConfig)
		}
	case ModeQuest:
		if len(opts.Zones) == 0 {
			return nil, ErrNoZones
		}
		if err := zones.ValidateAll(opts.Zones, opts.Config.World.Width, opts.Config.World.Height); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown mode %d", opts.Mode)
	}

	difficulty := opts.Difficulty
	if difficulty == "" {
		if _, ok := opts.Config.Presets[config.DifficultyNormal]; ok {
			difficulty = config.DifficultyNormal
		}
	}
	cfg := opts.Config
	if difficulty != "" {
		var err error
		if cfg, err = config.ApplyPreset(opts.Config, difficulty); err != nil {
			return nil, err
		}
	}

	character := opts.Character
	if character == "" || !opts.Config.HasCharacter(character) {
		character = opts.Config.Characters[0].ID
	}

	rng := rand.New(rand.NewSource(opts.Seed)) //#nosec G404 -- gameplay randomness, determinism required
	picker := facts.NewPicker(opts.Facts, rng)

	s := &Session{
		mode:       opts.Mode,
		base:       opts.Config,
		zones:      opts.Zones,
		difficulty: difficulty,
		character:  character,
		rng:        rng,
		store:      NewStore(),
		picker:     picker,
		held:       make(map[core.Key]bool),
		phase:      PhaseTitle,
	}
	s.configure(cfg)
	return s, nil
}

// configure installs an effective configuration.
func (s *Session) configure(cfg config.GameConfig) {
	s.cfg = cfg
	s.spawner = NewSpawner(cfg.Spawn, cfg.World, s.rng)
	s.tracker = NewTracker(cfg.Scoring, s.picker, s.mode == ModeQuest)
	s.diff = config.NewDifficultyManager(cfg.Difficulty)
	s.actor.Lives = cfg.Actor.Lives
}

// Enqueue queues an input action for the next tick.
func (s *Session) Enqueue(a core.Action) {
	s.queue = append(s.queue, a)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Mode returns the game variant.
func (s *Session) Mode() Mode {
	return s.mode
}

// Config returns the effective configuration (difficulty applied).
func (s *Session) Config() config.GameConfig {
	return s.cfg
}

// Tick drains the input queue and advances the simulation by dt.
func (s *Session) Tick(dt time.Duration) []Notification {
	s.ticks++

	var notes []Notification
	var pointers []Point
	for _, a := range s.queue {
		notes = append(notes, s.apply(a, &pointers)...)
	}
	s.queue = s.queue[:0]

	switch s.phase {
	case PhasePlaying:
		notes = append(notes, s.step(dt, pointers)...)
	case PhaseFactPaused:
		if s.factTimer.Advance(dt) {
			notes = append(notes, s.resume()...)
		}
	}
	return notes
}

// apply handles one queued action. Gameplay input outside Playing is dropped.
func (s *Session) apply(a core.Action, pointers *[]Point) []Notification {
	switch a.Kind {
	case core.ActionKeyDown:
		s.held[a.Key] = true
	case core.ActionKeyUp:
		delete(s.held, a.Key)
	case core.ActionPointerDown:
		if s.phase == PhasePlaying && s.mode == ModeDrops {
			*pointers = append(*pointers, Point{X: a.X, Y: a.Y})
		}
	case core.ActionStart:
		if s.phase == PhaseTitle {
			return s.start()
		}
	case core.ActionConfirm:
		switch s.phase {
		case PhaseTitle, PhaseGameOver:
			return s.start()
		case PhaseFactPaused:
			return s.resume()
		case PhaseZoneComplete:
			return s.advance()
		}
	case core.ActionDismiss:
		if s.phase == PhaseFactPaused {
			return s.resume()
		}
	case core.ActionRestart:
		if s.phase == PhaseGameOver || s.phase == PhaseZoneComplete {
			return s.start()
		}
	case core.ActionSelectCharacter:
		if s.canSelect() && s.base.HasCharacter(a.ID) {
			s.character = a.ID
			s.actor.Character = a.ID
		}
	case core.ActionSelectDifficulty:
		if !s.canSelect() {
			return nil
		}
		if cfg, err := config.ApplyPreset(s.base, a.ID); err == nil {
			s.difficulty = a.ID
			s.configure(cfg)
		}
	}
	return nil
}

func (s *Session) canSelect() bool {
	return s.phase == PhaseTitle || s.phase == PhaseGameOver
}

// start begins a fresh run from the first zone.
func (s *Session) start() []Notification {
	s.counters = Counters{}
	s.picker.Reset()
	s.tracker.ResetRun()
	s.summary = nil
	s.allDone = false
	s.elapsed = 0
	s.hasFact = false
	s.zonePending = false
	s.actor = Actor{Lives: s.cfg.Actor.Lives, Character: s.character}
	s.zoneIndex = 0
	return s.beginZone()
}

// beginZone loads the current zone and starts its clocks.
func (s *Session) beginZone() []Notification {
	s.stopClocks()
	s.store.Clear()

	s.counters.CleanCollected = 0
	s.counters.Progress = 0

	a := &s.actor
	a.VX, a.VY = 0, 0
	a.Grounded = false
	a.Box.W, a.Box.H = s.cfg.Actor.Width, s.cfg.Actor.Height

	target := s.cfg.Scoring.TargetCleanCount
	spawn := s.cfg.Spawn.Enabled
	s.timeRemaining = s.cfg.Session.GameDurationSeconds

	if s.mode == ModeQuest {
		z := s.zones[s.zoneIndex]
		if z.Target > 0 {
			target = z.Target
		}
		spawn = spawn || z.Rain
		s.timeRemaining = z.TimeLimitSeconds
		s.loadZone(z)
		a.Box.X, a.Box.Y = z.Spawn.X, z.Spawn.Y
	} else {
		a.Box.X, a.Box.Y = s.cfg.Actor.StartX, s.cfg.Actor.StartY
	}
	a.PrevY = a.Box.Y

	s.tracker.ResetZone(target)
	if spawn {
		s.spawner.Start()
	}
	if s.timeRemaining > 0 {
		s.countdown.Start(s.cfg.Session.Countdown())
	}
	return s.setPhase(PhasePlaying)
}

// loadZone replaces statics and places the zone's droplets and enemies.
func (s *Session) loadZone(z zones.Zone) {
	statics := make([]Static, 0, len(z.Platforms)+len(z.Checkpoints))
	for _, p := range z.Platforms {
		statics = append(statics, Static{Kind: StaticPlatform, Box: p})
	}
	for _, c := range z.Checkpoints {
		statics = append(statics, Static{Kind: StaticCheckpoint, Box: c})
	}
	s.store.LoadStatics(statics)

	for _, d := range z.Droplets {
		s.store.Spawn(KindCollectible, zones.DropletBox(d), 0, 0)
	}
	for _, e := range z.Enemies {
		s.store.Spawn(KindEnemy, e.Box, 0, VariantIndex(e.Type))
	}
}

// stopClocks cancels the spawner, countdown and fact timer.
func (s *Session) stopClocks() {
	s.spawner.Stop()
	s.countdown.Stop()
	s.factTimer.Cancel()
}

// step is one atomic simulation pass: spawn, move, resolve, score,
// countdown, transition.
func (s *Session) step(dt time.Duration, pointers []Point) []Notification {
	s.elapsed += dt
	sec := dt.Seconds()

	if s.spawner.Active() {
		interval := s.diff.Interval(s.cfg.Spawn.Interval(), s.counters.Score, s.elapsed)
		if sp, ok := s.spawner.Tick(dt, interval, s.diff.Speed(s.counters.Score, s.elapsed)); ok {
			s.spawnFalling(sp)
		}
	}

	StepEntities(s.store.Entities(), sec)

	var events []Event
	if StepActor(&s.actor, s.controls(), s.cfg.Actor, s.cfg.World, sec) {
		events = append(events, Event{Kind: EventFellOut, Source: SourceWorld, Static: -1})
		s.respawn()
	}
	events = append(events, Resolve(ResolveInput{
		Actor:    &s.actor,
		Entities: s.store.Entities(),
		Statics:  s.store.Statics(),
		Pointers: pointers,
		Params:   s.cfg.Actor,
		World:    s.cfg.World,
	})...)

	var notes []Notification
	for _, ev := range events {
		notes = append(notes, s.tracker.Apply(&s.counters, &s.actor, ev, s.store.Statics())...)
	}
	s.store.Sweep()

	if s.countdown.Active() && s.countdown.Advance(dt) {
		s.timeRemaining = max(s.timeRemaining-1, 0)
		if s.timeRemaining == 0 {
			notes = append(notes, Notification{Kind: NoteTimeExpired})
		}
	}

	return append(notes, s.transition(notes)...)
}

// spawnFalling turns a spawner draw into an entity above the top edge.
func (s *Session) spawnFalling(sp Spawn) {
	kind := KindClean
	if sp.Polluted {
		kind = KindPollutant
	}
	if s.mode == ModeQuest {
		kind = KindCollectible
		if sp.Polluted {
			kind = KindEnemy
		}
	}
	size := s.cfg.Spawn.DropSize
	box := core.NewBox(sp.CenterX-size/2, -size, size, size)
	s.store.Spawn(kind, box, sp.Speed, sp.Variant)
}

// respawn puts the actor back at the zone start after a fall.
func (s *Session) respawn() {
	a := &s.actor
	if s.mode == ModeQuest {
		z := s.zones[s.zoneIndex]
		a.Box.X, a.Box.Y = z.Spawn.X, z.Spawn.Y
	} else {
		a.Box.X, a.Box.Y = s.cfg.Actor.StartX, s.cfg.Actor.StartY
	}
	a.PrevY = a.Box.Y
	a.VX, a.VY = 0, 0
	a.Grounded = false
}

func (s *Session) controls() Controls {
	return Controls{
		Left:  s.held[core.KeyLeft],
		Right: s.held[core.KeyRight],
		Jump:  s.held[core.KeyJump],
	}
}

// transition applies at most one phase change requested by this tick's
// notes. Game over wins over everything else. A fact card raised together
// with zone completion is shown first; the zone completes when it closes.
func (s *Session) transition(notes []Notification) []Notification {
	var fact *facts.Fact
	zoneDone := false
	outcome := OutcomeNone

	for i := range notes {
		switch notes[i].Kind {
		case NoteTimeExpired:
			outcome = OutcomeTimeExpired
		case NoteLivesExhausted:
			outcome = OutcomeLivesExhausted
		case NoteZoneComplete:
			zoneDone = true
		case NoteShowFact:
			fact = &notes[i].Fact
		}
	}

	switch {
	case outcome != OutcomeNone:
		return s.finish(outcome)
	case zoneDone && fact == nil:
		return s.completeZone()
	case fact != nil:
		s.zonePending = zoneDone
		s.fact = *fact
		s.hasFact = true
		s.factTimer.Schedule(s.cfg.Session.FactDisplay())
		return s.setPhase(PhaseFactPaused)
	}
	return nil
}

// finish ends the run. Clocks stop before entities are cleared.
func (s *Session) finish(outcome Outcome) []Notification {
	s.stopClocks()
	s.store.Clear()
	s.hasFact = false
	s.zonePending = false
	s.summary = s.buildSummary(outcome, true)
	notes := []Notification{{Kind: NoteGameOver, Amount: s.counters.Score}}
	return append(notes, s.setPhase(PhaseGameOver)...)
}

func (s *Session) completeZone() []Notification {
	s.stopClocks()
	final := s.zoneIndex == len(s.zones)-1
	outcome := OutcomeZoneComplete
	if final {
		outcome = OutcomeZonesComplete
	}
	s.summary = s.buildSummary(outcome, final)
	return s.setPhase(PhaseZoneComplete)
}

// advance moves past a completed zone, back to the title after the last one.
func (s *Session) advance() []Notification {
	s.zoneIndex++
	if s.zoneIndex >= len(s.zones) {
		s.zoneIndex = 0
		s.allDone = true
		s.store.Clear()
		return s.setPhase(PhaseTitle)
	}
	s.summary = nil
	return s.beginZone()
}

// resume closes the fact card and continues from the frozen state.
func (s *Session) resume() []Notification {
	s.factTimer.Cancel()
	s.hasFact = false
	if s.zonePending {
		s.zonePending = false
		return s.completeZone()
	}
	return s.setPhase(PhasePlaying)
}

func (s *Session) setPhase(p Phase) []Notification {
	if s.phase == p {
		return nil
	}
	s.phase = p
	return []Notification{{Kind: NotePhase, Phase: p}}
}

func (s *Session) buildSummary(outcome Outcome, final bool) *Summary {
	sum := &Summary{
		Outcome:        outcome,
		Score:          s.counters.Score,
		CleanCollected: s.counters.TotalClean,
		BestStreak:     s.counters.BestStreak,
		FactsSeen:      s.picker.Seen(),
		ZoneProgress:   s.counters.Progress,
		Final:          final,
		Character:      s.character,
		Difficulty:     s.difficulty,
	}
	if s.mode == ModeQuest {
		sum.ZoneName = s.zones[s.zoneIndex].Name
	}
	if final {
		sum.Message = s.cfg.TierMessage(s.counters.Score)
	}
	return sum
}
