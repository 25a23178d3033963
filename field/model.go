package field

// MaxZones is the number of zone weights a Sample carries.
const MaxZones = 5

// Sample is one evaluated pixel together with the terms it was composed from.
//
// Zones holds smoothstep weights in the order the recipe blends them, so every
// entry is in [0, 1]. Glow is the origin glow for aurora and the line
// intensity for ribbon.
type Sample struct {
	Pos   Vec2
	Dist  float64
	Angle float64

	Radial  float64
	Angular float64

	Zones    [MaxZones]float64
	Glow     float64
	Vignette float64

	Color Color
}

// Model evaluates a preset at a pixel. It holds no per frame state so a
// single Model can be shared by any number of goroutines.
type Model struct {
	Preset Preset

	noise Noise2
	fbm   FBM
}

// NewModel builds a model for preset. A nil noise means Simplex.
func NewModel(preset Preset, noise Noise2) *Model {
	if noise == nil {
		noise = Simplex{}
	}
	fbm := NewFBM(noise, preset.Octaves)
	preset.Octaves = fbm.Octaves

	return &Model{
		Preset: preset,
		noise:  noise,
		fbm:    fbm,
	}
}

func (m *Model) snoise(p Vec2) float64 {
	return m.noise.Eval2(p.X, p.Y)
}

// Eval returns the color of the pixel centered at pixel.
func (m *Model) Eval(pixel Vec2, u Uniforms) Color {
	return m.Sample(pixel, u).Color
}

func (m *Model) Sample(pixel Vec2, u Uniforms) Sample {
	var s Sample
	switch m.Preset.Recipe {
	case RecipeRibbon:
		s = m.ribbon(pixel, u)
	default:
		s = m.aurora(pixel, u)
	}
	s.Color = s.Color.Clamp()
	return s
}
