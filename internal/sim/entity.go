// Package sim is the host-independent simulation core shared by both water
// games: entity store, spawner, motion, collision resolution, scoring and
// the session state machine. It has no rendering or terminal dependencies.
package sim

import (
	"slices"

	"github.com/vovakirdan/tui-drops/internal/core"
)

// Kind tags a dynamic entity.
type Kind int

const (
	KindClean       Kind = iota // falling clean drop
	KindPollutant               // falling pollutant
	KindCollectible             // quest droplet
	KindEnemy                   // quest pollution hazard
	KindCheckpoint              // flag (static only)
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindClean:
		return "clean"
	case KindPollutant:
		return "pollutant"
	case KindCollectible:
		return "collectible"
	case KindEnemy:
		return "enemy"
	case KindCheckpoint:
		return "checkpoint"
	default:
		return "unknown"
	}
}

// Rewarding reports whether collecting this kind counts toward progress.
func (k Kind) Rewarding() bool {
	return k == KindClean || k == KindCollectible
}

// Pollutant variants. They only change how an entity is drawn. The spawner
// draws from the falling ones; placed enemies may use any name.
var (
	fallingVariantNames = []string{"trash", "oil", "plastic", "chemical"}
	variantNames        = append(slices.Clip(fallingVariantNames), "paper")
)

// VariantName returns the cosmetic name of a pollutant variant.
func VariantName(v int) string {
	if v < 0 || v >= len(variantNames) {
		return variantNames[0]
	}
	return variantNames[v]
}

// VariantIndex maps a pollutant name to its variant index, 0 if unknown.
func VariantIndex(name string) int {
	for i, n := range variantNames {
		if n == name {
			return i
		}
	}
	return 0
}

// Entity is a falling drop or a placed collectible/enemy.
type Entity struct {
	ID       uint64
	Kind     Kind
	Box      core.Box
	Speed    float64 // downward, world units per second
	Variant  int
	Consumed bool // hit or collected
	Exited   bool // left the world through the bottom edge
}

// Consume marks the entity hit. It returns false if it already was.
func (e *Entity) Consume() bool {
	if e.Consumed {
		return false
	}
	e.Consumed = true
	return true
}

// Live reports whether the entity can still interact.
func (e *Entity) Live() bool {
	return !e.Consumed && !e.Exited
}

// StaticKind tags a static entity.
type StaticKind int

const (
	StaticPlatform StaticKind = iota
	StaticCheckpoint
)

// Static is a platform or checkpoint. Statics live for one zone load.
type Static struct {
	Kind      StaticKind
	Box       core.Box
	Triggered bool
	FactID    string // fact shown when the checkpoint fired
}

// Trigger fires a checkpoint. It returns false if it already fired.
func (s *Static) Trigger() bool {
	if s.Triggered {
		return false
	}
	s.Triggered = true
	return true
}

// Actor is the player body: the runner in quest mode, the catcher in drops mode.
type Actor struct {
	Box       core.Box
	VX, VY    float64
	PrevY     float64
	Grounded  bool
	Lives     int
	Character string
}
