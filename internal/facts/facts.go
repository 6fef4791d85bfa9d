// Package facts holds the educational content shown at checkpoints and the
// policy that decides which fact to show next.
package facts

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed facts.yaml
var defaultFactsYAML []byte

// Category classifies a fact card.
type Category string

const (
	CategoryFact       Category = "fact"
	CategoryMotivation Category = "motivation"
)

// ErrNoFacts is returned when a fact file contains no usable entries.
var ErrNoFacts = errors.New("no facts defined")

// Fact is a single piece of content.
type Fact struct {
	ID       string   `yaml:"id"`
	Text     string   `yaml:"text"`
	Category Category `yaml:"category"`
}

type factFile struct {
	Facts []Fact `yaml:"facts"`
}

// Default returns the built-in fact list.
func Default() []Fact {
	list, err := Parse(defaultFactsYAML)
	if err != nil {
		panic(fmt.Sprintf("facts: embedded list is invalid: %v", err))
	}
	return list
}

// Load reads a fact list from a YAML file.
func Load(path string) ([]Fact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading facts %s: %w", path, err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing facts %s: %w", path, err)
	}
	return list, nil
}

// Parse decodes and validates a fact list.
// Missing IDs are derived from the position; missing categories default to fact.
func Parse(data []byte) ([]Fact, error) {
	var ff factFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(ff.Facts) == 0 {
		return nil, ErrNoFacts
	}

	seen := make(map[string]bool, len(ff.Facts))
	for i := range ff.Facts {
		f := &ff.Facts[i]
		f.Text = strings.TrimSpace(f.Text)
		if f.Text == "" {
			return nil, fmt.Errorf("fact %d has no text", i+1)
		}
		if f.ID == "" {
			f.ID = fmt.Sprintf("fact-%d", i+1)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("duplicate fact id %q", f.ID)
		}
		seen[f.ID] = true

		switch f.Category {
		case "":
			f.Category = CategoryFact
		case CategoryFact, CategoryMotivation:
		default:
			return nil, fmt.Errorf("fact %q: unknown category %q", f.ID, f.Category)
		}
	}
	return ff.Facts, nil
}

// Picker chooses facts for a run. It prefers unseen informational facts,
// then any unseen entry, and once everything has been shown it picks
// uniformly at random. The seen set only grows until Reset.
type Picker struct {
	facts []Fact
	rng   *rand.Rand
	seen  map[string]bool
	order []string
}

// NewPicker creates a picker over the given facts using rng for the
// random fallback.
func NewPicker(list []Fact, rng *rand.Rand) *Picker {
	return &Picker{
		facts: list,
		rng:   rng,
		seen:  make(map[string]bool),
	}
}

// Next selects a fact and marks it seen.
// Returns false only when the picker has no facts at all.
func (p *Picker) Next() (Fact, bool) {
	if len(p.facts) == 0 {
		return Fact{}, false
	}

	chosen := -1
	for i, f := range p.facts {
		if !p.seen[f.ID] && f.Category == CategoryFact {
			chosen = i
			break
		}
	}
	if chosen < 0 {
		for i, f := range p.facts {
			if !p.seen[f.ID] {
				chosen = i
				break
			}
		}
	}
	if chosen < 0 {
		chosen = p.rng.Intn(len(p.facts))
	}

	f := p.facts[chosen]
	if !p.seen[f.ID] {
		p.seen[f.ID] = true
		p.order = append(p.order, f.ID)
	}
	return f, true
}

// Seen returns how many distinct facts have been shown.
func (p *Picker) Seen() int {
	return len(p.order)
}

// SeenIDs returns the IDs of shown facts in the order they were first shown.
func (p *Picker) SeenIDs() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns the number of available facts.
func (p *Picker) Len() int {
	return len(p.facts)
}

// Reset forgets every seen fact.
func (p *Picker) Reset() {
	p.seen = make(map[string]bool)
	p.order = p.order[:0]
}
