package sim

import (
	"testing"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/core"
)

func questParams() (config.ActorConfig, config.WorldConfig) {
	cfg := config.DefaultQuestConfig()
	return cfg.Actor, cfg.World
}

func platform(x, y, w, h float64) Static {
	return Static{Kind: StaticPlatform, Box: core.NewBox(x, y, w, h)}
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestLanding(t *testing.T) {
	params, world := questParams()
	ground := []Static{platform(0, 420, 300, 20)}

	tests := []struct {
		name     string
		actor    Actor
		wantLand bool
		wantY    float64
	}{
		{
			name:     "drops onto platform from above",
			actor:    Actor{Box: core.NewBox(50, 390, 22, 34), PrevY: 380, VY: 100},
			wantLand: true,
			wantY:    386,
		},
		{
			name:  "walks into platform side",
			actor: Actor{Box: core.NewBox(50, 400, 22, 34), PrevY: 399, VY: 50},
			wantY: 400,
		},
		{
			name:  "jumps up through platform",
			actor: Actor{Box: core.NewBox(50, 390, 22, 34), PrevY: 400, VY: -300},
			wantY: 390,
		},
		{
			name:  "beside platform",
			actor: Actor{Box: core.NewBox(320, 390, 22, 34), PrevY: 380, VY: 100},
			wantY: 390,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.actor
			events := Resolve(ResolveInput{Actor: &a, Statics: ground, Params: params, World: world})

			if a.Grounded != tt.wantLand {
				t.Errorf("Grounded = %v, expected %v", a.Grounded, tt.wantLand)
			}
			if a.Box.Y != tt.wantY {
				t.Errorf("y = %v, expected %v", a.Box.Y, tt.wantY)
			}
			landed := len(events) == 1 && events[0].Kind == EventLanded
			if landed != tt.wantLand {
				t.Errorf("events = %v", eventKinds(events))
			}
		})
	}
}

func TestLandingPicksHighestPlatformAndEmitsOnce(t *testing.T) {
	params, world := questParams()
	statics := []Static{platform(0, 430, 300, 20), platform(0, 420, 300, 5)}
	a := Actor{Box: core.NewBox(50, 400, 22, 34), PrevY: 380, VY: 600}

	events := Resolve(ResolveInput{Actor: &a, Statics: statics, Params: params, World: world})
	if a.Box.Y != 386 || len(events) != 1 {
		t.Fatalf("y = %v, events = %v", a.Box.Y, eventKinds(events))
	}

	// Standing still on the platform keeps the actor grounded silently.
	a.PrevY = a.Box.Y
	events = Resolve(ResolveInput{Actor: &a, Statics: statics, Params: params, World: world})
	if !a.Grounded || len(events) != 0 {
		t.Errorf("grounded = %v, events = %v", a.Grounded, eventKinds(events))
	}
}

func TestActorHits(t *testing.T) {
	params, world := questParams()
	store := NewStore()
	drop := store.Spawn(KindCollectible, core.NewBox(35, 395, 30, 14), 0, 0)
	enemy := store.Spawn(KindEnemy, core.NewBox(60, 400, 20, 20), 0, 0)

	a := Actor{Box: core.NewBox(50, 386, 22, 34)}
	events := Resolve(ResolveInput{Actor: &a, Entities: store.Entities(), Params: params, World: world})

	if len(events) != 2 {
		t.Fatalf("events = %v", eventKinds(events))
	}
	if events[0].Kind != EventEnemyHit || events[0].EntityID != enemy.ID {
		t.Errorf("newest entity should resolve first, got %+v", events[0])
	}
	if events[1].Kind != EventCollected || events[1].EntityID != drop.ID {
		t.Errorf("second event = %+v", events[1])
	}
	if a.VY != -params.CollectBounce {
		t.Errorf("vy = %v, expected collect bounce", a.VY)
	}
	if a.Box.X != 50-params.KnockbackX {
		t.Errorf("x = %v, expected knockback", a.Box.X)
	}

	again := Resolve(ResolveInput{Actor: &a, Entities: store.Entities(), Params: params, World: world})
	if len(again) != 0 {
		t.Errorf("consumed entities fired again: %v", eventKinds(again))
	}
}

func TestCheckpointFiresOnce(t *testing.T) {
	params, world := questParams()
	statics := []Static{{Kind: StaticCheckpoint, Box: core.NewBox(40, 360, 28, 60)}}
	a := Actor{Box: core.NewBox(50, 386, 22, 34)}

	events := Resolve(ResolveInput{Actor: &a, Statics: statics, Params: params, World: world})
	if len(events) != 1 || events[0].Kind != EventCheckpointReached || events[0].Static != 0 {
		t.Fatalf("events = %+v", events)
	}
	if events := Resolve(ResolveInput{Actor: &a, Statics: statics, Params: params, World: world}); len(events) != 0 {
		t.Errorf("checkpoint fired twice: %v", eventKinds(events))
	}
}

func TestPointerHitsNewestOnly(t *testing.T) {
	world := config.DefaultDropsConfig().World
	store := NewStore()
	older := store.Spawn(KindClean, core.NewBox(100, 100, 40, 40), 150, 0)
	newer := store.Spawn(KindPollutant, core.NewBox(110, 110, 40, 40), 150, 0)

	events := Resolve(ResolveInput{
		Entities: store.Entities(),
		Pointers: []Point{{X: 120, Y: 120}},
		World:    world,
	})
	if len(events) != 1 || events[0].EntityID != newer.ID || events[0].Kind != EventPollutantHit {
		t.Fatalf("events = %+v", events)
	}
	if older.Consumed {
		t.Error("one pointer must hit at most one entity")
	}

	events = Resolve(ResolveInput{
		Entities: store.Entities(),
		Pointers: []Point{{X: 120, Y: 120}, {X: 120, Y: 120}},
		World:    world,
	})
	if len(events) != 1 || events[0].EntityID != older.ID || events[0].Source != SourcePointer {
		t.Errorf("events = %+v", events)
	}
}

func TestPointerOutsideWorldIgnored(t *testing.T) {
	world := config.DefaultDropsConfig().World
	store := NewStore()
	e := store.Spawn(KindClean, core.NewBox(-50, -50, 40, 40), 150, 0)

	events := Resolve(ResolveInput{
		Entities: store.Entities(),
		Pointers: []Point{{X: -30, Y: -30}},
		World:    world,
	})
	if len(events) != 0 || e.Consumed {
		t.Errorf("pointer outside the world hit %+v", events)
	}
}

func TestExitsOnlyMissRewardingDrops(t *testing.T) {
	world := config.DefaultDropsConfig().World
	store := NewStore()
	clean := store.Spawn(KindClean, core.NewBox(100, 601, 40, 40), 150, 0)
	store.Spawn(KindPollutant, core.NewBox(200, 601, 40, 40), 150, 0)
	caught := store.Spawn(KindClean, core.NewBox(300, 601, 40, 40), 150, 0)
	store.Spawn(KindClean, core.NewBox(400, 600, 40, 40), 150, 0)
	caught.Consume()

	events := Resolve(ResolveInput{Entities: store.Entities(), World: world})
	if len(events) != 1 || events[0].Kind != EventMissed || events[0].EntityID != clean.ID {
		t.Fatalf("events = %+v", events)
	}
	if n := len(Resolve(ResolveInput{Entities: store.Entities(), World: world})); n != 0 {
		t.Errorf("exit reported twice (%d events)", n)
	}
	if removed := store.Sweep(); removed != 3 {
		t.Errorf("swept %d, expected 3", removed)
	}
}
