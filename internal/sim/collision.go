package sim

import (
	"math"

	"github.com/vovakirdan/tui-drops/internal/config"
)

// EventKind classifies a collision outcome.
type EventKind int

const (
	EventCollected EventKind = iota
	EventPollutantHit
	EventEnemyHit
	EventCheckpointReached
	EventMissed
	EventLanded
	EventFellOut
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "Collected"
	case EventPollutantHit:
		return "PollutantHit"
	case EventEnemyHit:
		return "EnemyHit"
	case EventCheckpointReached:
		return "CheckpointReached"
	case EventMissed:
		return "Missed"
	case EventLanded:
		return "Landed"
	case EventFellOut:
		return "FellOut"
	default:
		return "Unknown"
	}
}

// Source tells what produced an event.
type Source int

const (
	SourceActor Source = iota
	SourcePointer
	SourceWorld
)

// Event is one resolved interaction.
type Event struct {
	Kind       EventKind
	Source     Source
	EntityID   uint64
	EntityKind Kind
	Static     int // index into the statics slice, -1 if none
}

// Point is a pointer position in world units.
type Point struct {
	X, Y float64
}

// ResolveInput carries everything one collision pass looks at.
// Actor may be nil when only pointer input drives the game.
type ResolveInput struct {
	Actor    *Actor
	Entities []*Entity
	Statics  []Static
	Pointers []Point
	Params   config.ActorConfig
	World    config.WorldConfig
}

// Resolve runs one collision pass and returns events in a fixed order:
// landing, actor hits, checkpoints, pointer hits, world exits.
// Every entity produces at most one hit event over its lifetime.
func Resolve(in ResolveInput) []Event {
	var events []Event

	if in.Actor != nil {
		events = append(events, resolveLanding(in.Actor, in.Statics)...)
		events = append(events, resolveActorHits(in.Actor, in.Entities, in.Params)...)
		events = append(events, resolveCheckpoints(in.Actor, in.Statics)...)
	}
	events = append(events, resolvePointers(in.Pointers, in.Entities, in.World)...)
	events = append(events, resolveExits(in.Entities, in.World)...)
	return events
}

// resolveLanding snaps the actor onto a platform it dropped onto from above.
// Walking into a platform from the side or jumping up through it never lands.
func resolveLanding(a *Actor, statics []Static) []Event {
	wasGrounded := a.Grounded
	a.Grounded = false
	if a.VY < 0 {
		return nil
	}

	prevFoot := a.PrevY + a.Box.H
	foot := a.Box.Bottom()
	best := math.Inf(1)
	for i := range statics {
		p := &statics[i]
		if p.Kind != StaticPlatform || !a.Box.OverlapsX(p.Box) {
			continue
		}
		if prevFoot <= p.Box.Y && foot >= p.Box.Y && p.Box.Y < best {
			best = p.Box.Y
		}
	}
	if math.IsInf(best, 1) {
		return nil
	}

	a.Box.Y = best - a.Box.H
	a.VY = 0
	a.Grounded = true
	if wasGrounded {
		return nil
	}
	return []Event{{Kind: EventLanded, Source: SourceActor, Static: -1}}
}

// resolveActorHits checks the actor against entities, newest first.
func resolveActorHits(a *Actor, entities []*Entity, p config.ActorConfig) []Event {
	var events []Event
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		if !e.Live() || !a.Box.Intersects(e.Box) {
			continue
		}
		kind, ok := hitEvent(e.Kind)
		if !ok || !e.Consume() {
			continue
		}
		events = append(events, Event{Kind: kind, Source: SourceActor, EntityID: e.ID, EntityKind: e.Kind, Static: -1})

		switch kind {
		case EventCollected:
			if p.CollectBounce > 0 {
				a.VY = -p.CollectBounce
				a.Grounded = false
			}
		case EventEnemyHit:
			if p.KnockbackY > 0 {
				a.VY = -p.KnockbackY
				a.Grounded = false
			}
			a.Box.X = math.Max(0, a.Box.X-p.KnockbackX)
		}
	}
	return events
}

// resolveCheckpoints fires every checkpoint the actor touches for the first time.
func resolveCheckpoints(a *Actor, statics []Static) []Event {
	var events []Event
	for i := range statics {
		s := &statics[i]
		if s.Kind != StaticCheckpoint || !a.Box.Intersects(s.Box) {
			continue
		}
		if s.Trigger() {
			events = append(events, Event{Kind: EventCheckpointReached, Source: SourceActor, EntityKind: KindCheckpoint, Static: i})
		}
	}
	return events
}

// resolvePointers gives each pointer at most one hit: the most recently
// spawned live entity under it. Pointers outside the world are ignored.
func resolvePointers(points []Point, entities []*Entity, world config.WorldConfig) []Event {
	var events []Event
	for _, pt := range points {
		if pt.X < 0 || pt.X >= world.Width || pt.Y < 0 || pt.Y >= world.Height {
			continue
		}
		for i := len(entities) - 1; i >= 0; i-- {
			e := entities[i]
			if !e.Live() || !e.Box.Contains(pt.X, pt.Y) {
				continue
			}
			kind, ok := hitEvent(e.Kind)
			if !ok {
				continue
			}
			e.Consume()
			events = append(events, Event{Kind: kind, Source: SourcePointer, EntityID: e.ID, EntityKind: e.Kind, Static: -1})
			break
		}
	}
	return events
}

// resolveExits marks entities that fell past the bottom edge.
// Only rewarding entities that were never collected count as missed.
func resolveExits(entities []*Entity, world config.WorldConfig) []Event {
	var events []Event
	for _, e := range entities {
		if e.Exited || e.Box.Y <= world.Height {
			continue
		}
		e.Exited = true
		if e.Kind.Rewarding() && !e.Consumed {
			events = append(events, Event{Kind: EventMissed, Source: SourceWorld, EntityID: e.ID, EntityKind: e.Kind, Static: -1})
		}
	}
	return events
}

func hitEvent(k Kind) (EventKind, bool) {
	switch k {
	case KindClean, KindCollectible:
		return EventCollected, true
	case KindPollutant:
		return EventPollutantHit, true
	case KindEnemy:
		return EventEnemyHit, true
	default:
		return 0, false
	}
}
