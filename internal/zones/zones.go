// Package zones loads the campus layouts played in quest mode.
package zones

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/tui-drops/internal/core"
	"gopkg.in/yaml.v3"
)

//go:embed campus.yaml
var defaultCampusYAML []byte

// Droplet hitbox relative to its anchor point.
const (
	DropletW       = 12
	DropletH       = 14
	dropletOffsetX = -6
	dropletOffsetY = -10
)

// ErrInvalidZone is wrapped by every zone validation failure.
var ErrInvalidZone = errors.New("invalid zone")

// Point is a position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Enemy is a stationary pollution hazard.
type Enemy struct {
	Box  core.Box
	Type string
}

// Zone is one playable campus layout.
type Zone struct {
	ID               string
	Name             string
	Hint             string
	Spawn            Point
	Target           int // clean droplets needed; 0 uses the game config
	TimeLimitSeconds int // 0 means untimed
	Rain             bool
	Platforms        []core.Box
	Droplets         []Point
	Enemies          []Enemy
	Checkpoints      []core.Box
}

// DropletBox returns the hitbox of a droplet anchored at p.
func DropletBox(p Point) core.Box {
	return core.NewBox(p.X+dropletOffsetX, p.Y+dropletOffsetY, DropletW, DropletH)
}

// yamlBox mirrors core.Box with short keys.
type yamlBox struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (b yamlBox) box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

type yamlEnemy struct {
	yamlBox `yaml:",inline"`
	Type    string `yaml:"type"`
}

type yamlZone struct {
	ID               string      `yaml:"id"`
	Name             string      `yaml:"name"`
	Hint             string      `yaml:"hint"`
	Spawn            Point       `yaml:"spawn"`
	Target           int         `yaml:"target"`
	TimeLimitSeconds int         `yaml:"time_limit_seconds"`
	Rain             bool        `yaml:"rain"`
	Platforms        []yamlBox   `yaml:"platforms"`
	Droplets         []Point     `yaml:"droplets"`
	Enemies          []yamlEnemy `yaml:"enemies"`
	Checkpoints      []yamlBox   `yaml:"checkpoints"`
}

type yamlCampaign struct {
	Zones []yamlZone `yaml:"zones"`
}

// Default returns the built-in campaign.
func Default() []Zone {
	list, err := Parse(defaultCampusYAML)
	if err != nil {
		panic(fmt.Sprintf("zones: embedded campaign is invalid: %v", err))
	}
	return list
}

// Load reads a campaign file.
func Load(path string) ([]Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading zones %s: %w", path, err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing zones %s: %w", path, err)
	}
	return list, nil
}

// Parse decodes a campaign in play order.
func Parse(data []byte) ([]Zone, error) {
	var yc yamlCampaign
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yc.Zones) == 0 {
		return nil, fmt.Errorf("%w: campaign has no zones", ErrInvalidZone)
	}

	out := make([]Zone, 0, len(yc.Zones))
	ids := make(map[string]bool, len(yc.Zones))
	for _, yz := range yc.Zones {
		if ids[yz.ID] {
			return nil, fmt.Errorf("%w: duplicate zone id %q", ErrInvalidZone, yz.ID)
		}
		ids[yz.ID] = true

		z := Zone{
			ID:               yz.ID,
			Name:             yz.Name,
			Hint:             yz.Hint,
			Spawn:            yz.Spawn,
			Target:           yz.Target,
			TimeLimitSeconds: yz.TimeLimitSeconds,
			Rain:             yz.Rain,
			Droplets:         yz.Droplets,
		}
		for _, p := range yz.Platforms {
			z.Platforms = append(z.Platforms, p.box())
		}
		for _, e := range yz.Enemies {
			z.Enemies = append(z.Enemies, Enemy{Box: e.box(), Type: e.Type})
		}
		for _, c := range yz.Checkpoints {
			z.Checkpoints = append(z.Checkpoints, c.box())
		}
		out = append(out, z)
	}
	return out, nil
}

// Validate checks a zone against the world it will be played in.
func (z Zone) Validate(worldW, worldH float64) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: zone %q: %s", ErrInvalidZone, z.ID, fmt.Sprintf(format, args...))
	}

	if z.ID == "" {
		return fail("missing id")
	}
	if len(z.Platforms) == 0 {
		return fail("at least one platform is required")
	}
	if z.Target < 0 {
		return fail("negative target %d", z.Target)
	}
	if z.TimeLimitSeconds < 0 {
		return fail("negative time limit %d", z.TimeLimitSeconds)
	}
	if z.Spawn.X < 0 || z.Spawn.X > worldW || z.Spawn.Y < 0 || z.Spawn.Y > worldH {
		return fail("spawn point (%v, %v) is outside the world", z.Spawn.X, z.Spawn.Y)
	}
	if !z.Rain && z.Target > len(z.Droplets) {
		return fail("target %d exceeds the %d placed droplets", z.Target, len(z.Droplets))
	}

	boxes := append([]core.Box{}, z.Platforms...)
	boxes = append(boxes, z.Checkpoints...)
	for _, e := range z.Enemies {
		boxes = append(boxes, e.Box)
	}
	for _, b := range boxes {
		if b.W <= 0 || b.H <= 0 {
			return fail("box %+v has non-positive size", b)
		}
	}
	return nil
}

// ValidateAll validates every zone of a campaign.
func ValidateAll(list []Zone, worldW, worldH float64) error {
	if len(list) == 0 {
		return fmt.Errorf("%w: campaign has no zones", ErrInvalidZone)
	}
	for _, z := range list {
		if err := z.Validate(worldW, worldH); err != nil {
			return err
		}
	}
	return nil
}
