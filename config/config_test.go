package config

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"flowgradient/driver"
	"flowgradient/field"
)

// colors in defaults.yaml are hex, so they only match to within one step
const colorTolerance = 1.0 / 255

func colorsClose(a, b field.Color) bool {
	return math.Abs(a.R-b.R) <= colorTolerance &&
		math.Abs(a.G-b.G) <= colorTolerance &&
		math.Abs(a.B-b.B) <= colorTolerance
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Default != "aurora" {
		t.Errorf("default = %q, want aurora", cfg.Default)
	}
	if names := cfg.Names(); !slices.Equal(names, []string{"aurora", "ribbon"}) {
		t.Errorf("names = %v", names)
	}

	tests := []struct {
		name   string
		field  field.Preset
		driver driver.Config
	}{
		{"aurora", field.AuroraPreset(), driver.AuroraConfig()},
		{"ribbon", field.RibbonPreset(), driver.RibbonConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := cfg.Preset(tt.name)
			if err != nil {
				t.Fatal(err)
			}

			if p.Field.Name != tt.field.Name || p.Field.Recipe != tt.field.Recipe || p.Field.Octaves != tt.field.Octaves {
				t.Errorf("preset = %+v, want %+v", p.Field, tt.field)
			}

			if !colorsClose(p.Field.Palette.Background, tt.field.Palette.Background) {
				t.Errorf("background = %v, want %v", p.Field.Palette.Background, tt.field.Palette.Background)
			}
			for i := range field.PaletteSize {
				got, want := p.Field.Palette.At(i), tt.field.Palette.At(i)
				if !colorsClose(got, want) {
					t.Errorf("color %d = %v, want %v", i, got, want)
				}
			}

			got, want := p.Driver, tt.driver
			if got.DriftSpeed != want.DriftSpeed || got.Smoothing != want.Smoothing ||
				got.SeedRange != want.SeedRange || got.X != want.X || got.Y != want.Y {
				t.Errorf("driver = %+v, want %+v", got, want)
			}
			if !slices.Equal(got.Orbits, want.Orbits) {
				t.Errorf("orbits = %+v, want %+v", got.Orbits, want.Orbits)
			}

			if _, ok := p.Noise.(field.Simplex); !ok {
				t.Errorf("noise = %T, want field.Simplex", p.Noise)
			}
		})
	}
}

func TestEmptyNameIsDefault(t *testing.T) {
	cfg, err := Defaults()
	if err != nil {
		t.Fatal(err)
	}
	p, err := cfg.Preset("")
	if err != nil {
		t.Fatal(err)
	}
	if p.Field.Name != "aurora" {
		t.Errorf("got %q, want aurora", p.Field.Name)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOverride(t *testing.T) {
	path := writeFile(t, `
default: night
presets:
  aurora:
    octaves: 3
    driver:
      smoothing: 0.5
  night:
    recipe: aurora
    noise:
      backend: opensimplex
      seed: 42
    palette:
      background: black
      colors: [navy, "rgb(0, 0, 0)"]
    driver:
      smoothing: 0.1
      seed_range: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if names := cfg.Names(); !slices.Equal(names, []string{"aurora", "night", "ribbon"}) {
		t.Errorf("names = %v", names)
	}

	aurora, err := cfg.Preset("aurora")
	if err != nil {
		t.Fatal(err)
	}
	if aurora.Field.Octaves != 3 {
		t.Errorf("octaves = %d, want 3", aurora.Field.Octaves)
	}
	if aurora.Driver.Smoothing != 0.5 {
		t.Errorf("smoothing = %v, want 0.5", aurora.Driver.Smoothing)
	}
	// untouched fields keep the defaults
	if aurora.Driver.DriftSpeed != 0.15 || len(aurora.Driver.Orbits) != 2 {
		t.Errorf("patched preset lost its defaults: %+v", aurora.Driver)
	}

	night, err := cfg.Preset("")
	if err != nil {
		t.Fatal(err)
	}
	if night.Field.Name != "night" || night.Field.Octaves != field.DefaultOctaves {
		t.Errorf("night = %+v", night.Field)
	}
	if night.NoiseName != "opensimplex" {
		t.Errorf("noise = %q, want opensimplex", night.NoiseName)
	}
	if c := night.Field.Palette.At(field.PaletteColor5); !c.Eq(field.RGB(0, 0, 0)) {
		t.Errorf("short palette should repeat the last color, got %v", c)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		preset  string
		wantErr string
	}{
		{"unknown preset", ``, "nope", "unknown preset"},
		{"bad color", "presets: {aurora: {palette: {colors: [notacolor]}}}", "aurora", "palette"},
		{"bad recipe", "presets: {aurora: {recipe: plasma}}", "aurora", "unknown recipe"},
		{"bad backend", "presets: {aurora: {noise: {backend: perlin}}}", "aurora", "noise backend"},
		{"too many octaves", "presets: {aurora: {octaves: 40}}", "aurora", "octaves"},
		{"zero smoothing", "presets: {ribbon: {driver: {smoothing: 0}}}", "ribbon", "smoothing"},
		{"wide margin", "presets: {aurora: {driver: {x: {margin: 0.6}}}}", "aurora", "margin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.yaml))
			if err != nil {
				t.Fatal(err)
			}
			_, err = cfg.Preset(tt.preset)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q doesn't mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := Load(writeFile(t, "presets: [1, 2")); err == nil {
		t.Error("malformed yaml should fail")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Defaults()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range cfg.Names() {
		a, err := cfg.Preset(name)
		if err != nil {
			t.Fatal(err)
		}
		b, err := loaded.Preset(name)
		if err != nil {
			t.Fatal(err)
		}
		if a.Field != b.Field || !slices.Equal(a.Driver.Orbits, b.Driver.Orbits) {
			t.Errorf("%s changed after a round trip", name)
		}
	}
}
