package zones

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-drops/internal/core"
)

func TestDefaultCampaign(t *testing.T) {
	list := Default()
	if len(list) != 2 {
		t.Fatalf("len = %d, expected 2", len(list))
	}
	if list[0].ID != "zone-quad" || list[1].ID != "zone-library" {
		t.Errorf("zone order = %s, %s", list[0].ID, list[1].ID)
	}
	if err := ValidateAll(list, 920, 480); err != nil {
		t.Errorf("default campaign invalid: %v", err)
	}

	quad := list[0]
	if len(quad.Droplets) != 8 || quad.Target != 8 {
		t.Errorf("quad droplets/target = %d/%d", len(quad.Droplets), quad.Target)
	}
	if quad.Enemies[0].Type != "plastic" || quad.Enemies[0].Box != core.NewBox(460, 388, 28, 28) {
		t.Errorf("quad enemy = %+v", quad.Enemies[0])
	}
	if quad.Platforms[0] != core.NewBox(0, 420, 920, 60) {
		t.Errorf("ground = %+v", quad.Platforms[0])
	}
}

func TestDropletBox(t *testing.T) {
	got := DropletBox(Point{X: 180, Y: 300})
	if got != core.NewBox(174, 290, 12, 14) {
		t.Errorf("DropletBox = %+v", got)
	}
}

func TestValidate(t *testing.T) {
	ground := []core.Box{core.NewBox(0, 420, 920, 60)}

	tests := []struct {
		name string
		zone Zone
	}{
		{"missing id", Zone{Platforms: ground}},
		{"no platforms", Zone{ID: "z"}},
		{"spawn outside", Zone{ID: "z", Platforms: ground, Spawn: Point{X: -5, Y: 10}}},
		{"unreachable target", Zone{ID: "z", Platforms: ground, Target: 3, Droplets: []Point{{X: 1, Y: 1}}}},
		{"degenerate checkpoint", Zone{ID: "z", Platforms: ground, Checkpoints: []core.Box{core.NewBox(1, 1, 0, 10)}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.zone.Validate(920, 480); !errors.Is(err, ErrInvalidZone) {
				t.Errorf("expected ErrInvalidZone, got %v", err)
			}
		})
	}

	rainy := Zone{ID: "z", Platforms: ground, Target: 10, Rain: true}
	if err := rainy.Validate(920, 480); err != nil {
		t.Errorf("rain zones may target more than their placed droplets: %v", err)
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	body := "zones:\n  - id: a\n  - id: a\n"
	if _, err := Parse([]byte(body)); !errors.Is(err, ErrInvalidZone) {
		t.Errorf("expected ErrInvalidZone, got %v", err)
	}
	if _, err := Parse([]byte("zones: []\n")); !errors.Is(err, ErrInvalidZone) {
		t.Errorf("empty campaign error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	body := `
zones:
  - id: rooftop
    name: Rooftop
    spawn: {x: 10, y: 10}
    rain: true
    target: 4
    time_limit_seconds: 90
    platforms:
      - {x: 0, y: 400, w: 920, h: 80}
`
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	z := list[0]
	if !z.Rain || z.TimeLimitSeconds != 90 || z.Target != 4 {
		t.Errorf("zone = %+v", z)
	}
	if err := ValidateAll(list, 920, 480); err != nil {
		t.Errorf("ValidateAll: %v", err)
	}
}
