package sim

import "github.com/vovakirdan/tui-drops/internal/core"

// Store owns every dynamic and static entity of a session.
// Entities are kept in spawn order; IDs never repeat within a store.
type Store struct {
	nextID   uint64
	entities []*Entity
	statics  []Static
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Spawn creates and stores a new entity.
func (s *Store) Spawn(kind Kind, box core.Box, speed float64, variant int) *Entity {
	s.nextID++
	e := &Entity{
		ID:      s.nextID,
		Kind:    kind,
		Box:     box,
		Speed:   speed,
		Variant: variant,
	}
	s.entities = append(s.entities, e)
	return e
}

// Entities returns the live slice in spawn order. Callers may mutate
// entity flags but must not reorder the slice.
func (s *Store) Entities() []*Entity {
	return s.entities
}

// Statics returns the static slice of the current zone.
func (s *Store) Statics() []Static {
	return s.statics
}

// LoadStatics replaces every static entity wholesale.
func (s *Store) LoadStatics(statics []Static) {
	s.statics = append(s.statics[:0], statics...)
}

// Len returns the number of stored dynamic entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// Sweep removes entities that can no longer be seen: everything that left
// the world and consumed entities other than enemies. A hit enemy stays drawn
// as hit until it falls out; placed enemies stay for the rest of the zone.
// It returns the number of removed entities.
func (s *Store) Sweep() int {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Exited || (e.Consumed && e.Kind != KindEnemy) {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(s.entities) - len(kept)
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = kept
	return removed
}

// Clear removes all dynamic and static entities.
func (s *Store) Clear() {
	for i := range s.entities {
		s.entities[i] = nil
	}
	s.entities = s.entities[:0]
	s.statics = s.statics[:0]
}
