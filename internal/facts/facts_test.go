package facts

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFacts(t *testing.T) {
	list := Default()
	if len(list) != 5 {
		t.Fatalf("len = %d, expected 5", len(list))
	}

	motivation := 0
	for _, f := range list {
		if f.Category == CategoryMotivation {
			motivation++
		}
	}
	if motivation != 1 {
		t.Errorf("expected one motivational entry, got %d", motivation)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", "facts:\n  - text: a\n  - text: b\n    category: motivation\n", false},
		{"empty list", "facts: []\n", true},
		{"blank text", "facts:\n  - text: '  '\n", true},
		{"bad category", "facts:\n  - text: a\n    category: trivia\n", true},
		{"duplicate id", "facts:\n  - id: x\n    text: a\n  - id: x\n    text: b\n", true},
		{"not yaml", "facts: [", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body))
			if (err != nil) != tc.wantErr {
				t.Errorf("Parse error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}

	list, _ := Parse([]byte("facts:\n  - text: a\n"))
	if list[0].ID != "fact-1" || list[0].Category != CategoryFact {
		t.Errorf("defaults not applied: %+v", list[0])
	}

	if _, err := Parse([]byte("facts: []\n")); !errors.Is(err, ErrNoFacts) {
		t.Errorf("expected ErrNoFacts, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.yaml")
	if err := os.WriteFile(path, []byte("facts:\n  - id: one\n    text: Water is life.\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 1 || list[0].ID != "one" {
		t.Errorf("Load = %+v", list)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPickerPrefersUnseenFacts(t *testing.T) {
	list := []Fact{
		{ID: "m1", Text: "go", Category: CategoryMotivation},
		{ID: "f1", Text: "one", Category: CategoryFact},
		{ID: "f2", Text: "two", Category: CategoryFact},
	}
	p := NewPicker(list, rand.New(rand.NewSource(1)))

	want := []string{"f1", "f2", "m1"}
	for i, id := range want {
		f, ok := p.Next()
		if !ok || f.ID != id {
			t.Fatalf("pick %d = %q, expected %q", i, f.ID, id)
		}
	}
	if p.Seen() != 3 {
		t.Errorf("Seen = %d, expected 3", p.Seen())
	}

	// Everything seen: random picks keep the seen count stable.
	for i := 0; i < 10; i++ {
		if _, ok := p.Next(); !ok {
			t.Fatal("Next should keep returning facts")
		}
	}
	if p.Seen() != 3 {
		t.Errorf("Seen grew past the number of facts: %d", p.Seen())
	}
	if ids := p.SeenIDs(); ids[0] != "f1" || ids[2] != "m1" {
		t.Errorf("SeenIDs = %v", ids)
	}

	p.Reset()
	if p.Seen() != 0 {
		t.Error("Reset should clear the seen set")
	}
}

func TestPickerDeterministicFallback(t *testing.T) {
	list := Default()
	run := func() []string {
		p := NewPicker(list, rand.New(rand.NewSource(42)))
		var ids []string
		for i := 0; i < 12; i++ {
			f, _ := p.Next()
			ids = append(ids, f.ID)
		}
		return ids
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pick %d differs between runs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestPickerEmpty(t *testing.T) {
	p := NewPicker(nil, rand.New(rand.NewSource(1)))
	if _, ok := p.Next(); ok {
		t.Error("empty picker should report no fact")
	}
}
