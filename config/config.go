// Package config loads gradient presets from YAML.
//
// The presets compiled into the binary come from defaults.yaml. A user file
// is laid over them: presets it names are patched field by field and unknown
// names are added.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"flowgradient/driver"
	"flowgradient/field"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// MaxOctaves bounds the fBm loop; the shader unrolls it at compile time.
const MaxOctaves = 10

type Config struct {
	// Default is the preset shown at startup.
	Default string                  `yaml:"default"`
	Presets map[string]PresetConfig `yaml:"presets"`
}

type PresetConfig struct {
	Recipe  string        `yaml:"recipe"`
	Octaves int           `yaml:"octaves"`
	Noise   NoiseConfig   `yaml:"noise"`
	Palette PaletteConfig `yaml:"palette"`
	Driver  DriverConfig  `yaml:"driver"`
}

// NoiseConfig picks the CPU noise backend. The shader always runs simplex.
type NoiseConfig struct {
	Backend string `yaml:"backend"`
	Seed    int64  `yaml:"seed"`
}

// PaletteConfig holds CSS colors: hex, rgb(), hsl() or names.
type PaletteConfig struct {
	Background string   `yaml:"background"`
	Colors     []string `yaml:"colors"`
}

type DriverConfig struct {
	DriftSpeed float64       `yaml:"drift_speed"`
	Smoothing  float64       `yaml:"smoothing"`
	SeedRange  float64       `yaml:"seed_range"`
	X          AxisConfig    `yaml:"x"`
	Y          AxisConfig    `yaml:"y"`
	Orbits     []OrbitConfig `yaml:"orbits"`
}

type AxisConfig struct {
	Margin float64 `yaml:"margin"`
	Pinned bool    `yaml:"pinned,omitempty"`
	Anchor float64 `yaml:"anchor,omitempty"`
}

type OrbitConfig struct {
	AmpX   float64 `yaml:"amp_x,omitempty"`
	AmpY   float64 `yaml:"amp_y,omitempty"`
	FreqX  float64 `yaml:"freq_x,omitempty"`
	FreqY  float64 `yaml:"freq_y,omitempty"`
	PhaseX float64 `yaml:"phase_x,omitempty"`
	PhaseY float64 `yaml:"phase_y,omitempty"`
}

// Preset is a resolved preset, ready to hand to the field model and driver.
type Preset struct {
	Field  field.Preset
	Driver driver.Config
	Noise  field.Noise2
	// NoiseName is the backend Noise was built from.
	NoiseName string
}

// Defaults returns the embedded presets.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads the embedded defaults and lays the file at path over them.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// Merge lays a YAML document over c.
func (c *Config) Merge(data []byte) error {
	// presets are decoded one at a time so a partial preset patches the
	// existing one instead of replacing it
	var overlay struct {
		Default string               `yaml:"default"`
		Presets map[string]yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return err
	}

	if overlay.Default != "" {
		c.Default = overlay.Default
	}

	if c.Presets == nil {
		c.Presets = make(map[string]PresetConfig)
	}

	for name, node := range overlay.Presets {
		p := c.Presets[name]
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		c.Presets[name] = p
	}

	return nil
}

// Names returns the preset names, sorted.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset resolves the named preset. An empty name means c.Default.
func (c *Config) Preset(name string) (Preset, error) {
	if name == "" {
		name = c.Default
	}

	pc, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}

	p, err := pc.resolve(name)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return p, nil
}

func (pc PresetConfig) resolve(name string) (Preset, error) {
	recipe, err := field.ParseRecipe(pc.Recipe)
	if err != nil {
		return Preset{}, err
	}

	octaves := pc.Octaves
	if octaves == 0 {
		octaves = field.DefaultOctaves
	}
	if octaves < 1 || octaves > MaxOctaves {
		return Preset{}, fmt.Errorf("octaves must be in [1, %d], got %d", MaxOctaves, pc.Octaves)
	}

	palette, err := field.ParsePalette(pc.Palette.Background, pc.Palette.Colors)
	if err != nil {
		return Preset{}, fmt.Errorf("palette: %w", err)
	}

	drv, err := pc.Driver.resolve()
	if err != nil {
		return Preset{}, fmt.Errorf("driver: %w", err)
	}

	noise, ok := field.NoiseByName(pc.Noise.Backend, pc.Noise.Seed)
	if !ok {
		return Preset{}, fmt.Errorf("unknown noise backend %q", pc.Noise.Backend)
	}

	return Preset{
		Field: field.Preset{
			Name:    name,
			Recipe:  recipe,
			Palette: palette,
			Octaves: octaves,
		},
		Driver:    drv,
		Noise:     noise,
		NoiseName: pc.Noise.Backend,
	}, nil
}

func (dc DriverConfig) resolve() (driver.Config, error) {
	if !(dc.Smoothing > 0 && dc.Smoothing <= 1) {
		return driver.Config{}, fmt.Errorf("smoothing must be in (0, 1], got %v", dc.Smoothing)
	}
	if dc.SeedRange < 0 {
		return driver.Config{}, fmt.Errorf("seed_range must not be negative, got %v", dc.SeedRange)
	}

	x, err := dc.X.resolve()
	if err != nil {
		return driver.Config{}, fmt.Errorf("x: %w", err)
	}
	y, err := dc.Y.resolve()
	if err != nil {
		return driver.Config{}, fmt.Errorf("y: %w", err)
	}

	orbits := make([]driver.Orbit, 0, len(dc.Orbits))
	for _, o := range dc.Orbits {
		orbits = append(orbits, driver.Orbit{
			AmpX: o.AmpX, AmpY: o.AmpY,
			FreqX: o.FreqX, FreqY: o.FreqY,
			PhaseX: o.PhaseX, PhaseY: o.PhaseY,
		})
	}

	return driver.Config{
		DriftSpeed: dc.DriftSpeed,
		Smoothing:  dc.Smoothing,
		SeedRange:  dc.SeedRange,
		X:          x,
		Y:          y,
		Orbits:     orbits,
	}, nil
}

func (ac AxisConfig) resolve() (driver.AxisConfig, error) {
	if !ac.Pinned && !(ac.Margin >= 0 && ac.Margin < 0.5) {
		return driver.AxisConfig{}, fmt.Errorf("margin must be in [0, 0.5), got %v", ac.Margin)
	}
	return driver.AxisConfig{
		Margin: ac.Margin,
		Pinned: ac.Pinned,
		Anchor: ac.Anchor,
	}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
