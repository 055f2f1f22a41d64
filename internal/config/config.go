// Package config holds the tunable parameters of the application: window
// geometry, network shape, signal pacing and the view toggles. Values come
// from built-in presets or a TOML file, with flags layered on top by the
// CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/whispem/Neural-Network-View/internal/sim"
)

// Config is the full application configuration.
type Config struct {
	Window  Window  `toml:"window"`
	Network Network `toml:"network"`
	View    View    `toml:"view"`
	Audio   Audio   `toml:"audio"`
}

// Window is the initial window geometry.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Network shapes the simulated network and its signal pacing.
type Network struct {
	// Layers holds per-layer node counts, input to output.
	Layers []int `toml:"layers"`

	// SignalSpeed is progress per tick; at 60 TPS, 0.008 crosses the
	// network in roughly two seconds.
	SignalSpeed float64 `toml:"signal_speed"`

	// SpawnEvery is the tick interval between signal spawns.
	SpawnEvery int `toml:"spawn_every"`

	// MaxSignals caps concurrently travelling signals.
	MaxSignals int `toml:"max_signals"`

	// Seed fixes the run; zero means a fresh seed per launch.
	Seed int64 `toml:"seed"`
}

// View holds presentation toggles.
type View struct {
	// ShowMetrics sets the initial dashboard visibility.
	ShowMetrics bool `toml:"show_metrics"`

	// DustDensity is the number of background dust particles.
	DustDensity int `toml:"dust_density"`

	// Palette selects the accent color set, one of PaletteNames.
	Palette string `toml:"palette"`
}

// Audio holds the sonification toggle.
type Audio struct {
	Enabled bool `toml:"enabled"`
}

// PaletteNames lists the accent palettes the view knows how to render.
var PaletteNames = []string{"neon", "ember", "mono"}

// Default returns the classic configuration: the six-layer network on a
// tall canvas.
func Default() Config {
	return Config{
		Window: Window{
			Width:  400,
			Height: 800,
			Title:  "Neural Network View",
		},
		Network: Network{
			Layers:      []int{6, 10, 8, 10, 6, 4},
			SignalSpeed: 0.008,
			SpawnEvery:  12,
			MaxSignals:  18,
		},
		View: View{
			ShowMetrics: true,
			DustDensity: 70,
			Palette:     "neon",
		},
	}
}

// Preset returns a built-in configuration by name. The boolean reports
// whether the name is known.
func Preset(name string) (Config, bool) {
	switch name {
	case "classic":
		return Default(), true
	case "dense":
		c := Default()
		c.Network.Layers = []int{8, 14, 12, 14, 12, 8}
		c.Network.SignalSpeed = 0.01
		c.Network.SpawnEvery = 8
		c.Network.MaxSignals = 24
		c.View.DustDensity = 110
		return c, true
	case "minimal":
		c := Default()
		c.Network.Layers = []int{4, 6, 4}
		c.Network.SpawnEvery = 20
		c.Network.MaxSignals = 8
		c.View.DustDensity = 30
		c.View.ShowMetrics = false
		c.View.Palette = "mono"
		return c, true
	}
	return Config{}, false
}

// PresetNames lists the built-in presets in display order.
func PresetNames() []string {
	return []string{"classic", "dense", "minimal"}
}

// Load reads a TOML file over the defaults, so the file only needs the keys
// it wants to change. The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the simulation or view
// cannot work with.
func (c Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d: both dimensions must be positive", c.Window.Width, c.Window.Height)
	}
	if len(c.Network.Layers) == 0 {
		return fmt.Errorf("network layers: at least one layer required")
	}
	for i, count := range c.Network.Layers {
		if count < 1 {
			return fmt.Errorf("network layer %d has %d nodes: every layer needs at least one", i, count)
		}
	}
	if c.Network.SignalSpeed <= 0 {
		return fmt.Errorf("signal speed %g: must be positive", c.Network.SignalSpeed)
	}
	if c.Network.SpawnEvery < 0 {
		return fmt.Errorf("spawn interval %d: must be zero or positive", c.Network.SpawnEvery)
	}
	if c.Network.MaxSignals < 1 {
		return fmt.Errorf("max signals %d: must be at least one", c.Network.MaxSignals)
	}
	if c.View.DustDensity < 0 {
		return fmt.Errorf("dust density %d: must be zero or positive", c.View.DustDensity)
	}
	if !validPalette(c.View.Palette) {
		return fmt.Errorf("palette %q: known palettes are %s", c.View.Palette, strings.Join(PaletteNames, ", "))
	}
	return nil
}

func validPalette(name string) bool {
	for _, p := range PaletteNames {
		if p == name {
			return true
		}
	}
	return false
}

// SimParams maps the network section onto simulation parameters. The
// logical canvas matches the window size.
func (c Config) SimParams() sim.Params {
	layers := make([]int, len(c.Network.Layers))
	copy(layers, c.Network.Layers)
	return sim.Params{
		Width:       float64(c.Window.Width),
		Height:      float64(c.Window.Height),
		Layers:      layers,
		SignalSpeed: c.Network.SignalSpeed,
		SpawnEvery:  c.Network.SpawnEvery,
		MaxSignals:  c.Network.MaxSignals,
		Seed:        c.Network.Seed,
	}
}

// ParseLayers parses a comma-separated node count list such as
// "6,10,8,10,6,4".
func ParseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	layers := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("layers %q: empty entry", s)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("layers %q: %q is not a number", s, part)
		}
		if n < 1 {
			return nil, fmt.Errorf("layers %q: counts must be at least one, got %d", s, n)
		}
		layers = append(layers, n)
	}
	return layers, nil
}
