package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-drops/internal/config"
)

// Spawn describes an entity the spawner wants created.
type Spawn struct {
	CenterX  float64
	Polluted bool
	Speed    float64
	Variant  int
}

// Spawner introduces falling entities at a fixed cadence.
type Spawner struct {
	clock Periodic
	rng   *rand.Rand
	cfg   config.SpawnConfig
	world config.WorldConfig
}

// NewSpawner creates a stopped spawner drawing from rng.
func NewSpawner(cfg config.SpawnConfig, world config.WorldConfig, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, world: world, rng: rng}
}

// Start arms the spawner. The first spawn happens after FirstSpawnMs.
func (sp *Spawner) Start() {
	sp.clock.StartAfter(sp.cfg.Interval(), sp.cfg.FirstSpawn())
}

// Stop cancels the spawner. It is safe to call repeatedly.
func (sp *Spawner) Stop() {
	sp.clock.Stop()
}

// Active reports whether the spawner is running.
func (sp *Spawner) Active() bool {
	return sp.clock.Active()
}

// Tick advances the spawner by elapsed time using the current interval and
// fall-speed multiplier. At most one spawn is produced per call.
func (sp *Spawner) Tick(elapsed, interval time.Duration, speedMul float64) (Spawn, bool) {
	sp.clock.SetInterval(interval)
	if !sp.clock.Advance(elapsed) {
		return Spawn{}, false
	}
	return sp.draw(speedMul), true
}

// draw consumes random numbers in a fixed order: position, pollution,
// speed, variant.
func (sp *Spawner) draw(speedMul float64) Spawn {
	pad := sp.world.Padding
	x := pad + sp.rng.Float64()*(sp.world.Width-2*pad)
	polluted := sp.rng.Float64() < sp.cfg.PollutedChance
	jitter := (sp.rng.Float64()*2 - 1) * sp.cfg.SpeedJitter
	variant := sp.rng.Intn(len(fallingVariantNames))

	if speedMul <= 0 {
		speedMul = 1
	}
	return Spawn{
		CenterX:  x,
		Polluted: polluted,
		Speed:    (sp.cfg.BaseSpeed + jitter) * speedMul,
		Variant:  variant,
	}
}
