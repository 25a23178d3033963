package field

const DefaultOctaves = 5

// FBM sums Octaves layers of Noise, each at Lacunarity times the frequency
// and Gain times the amplitude of the previous one. The first layer has
// amplitude 0.5.
type FBM struct {
	Noise      Noise2
	Octaves    int
	Lacunarity float64
	Gain       float64
}

func NewFBM(noise Noise2, octaves int) FBM {
	if noise == nil {
		noise = Simplex{}
	}
	if octaves <= 0 {
		octaves = DefaultOctaves
	}
	return FBM{
		Noise:      noise,
		Octaves:    octaves,
		Lacunarity: 2,
		Gain:       0.5,
	}
}

func (f FBM) Eval(p Vec2) float64 {
	value := 0.0
	amplitude := 0.5

	for range f.Octaves {
		value += amplitude * f.Noise.Eval2(p.X, p.Y)
		p = p.Scale(f.Lacunarity)
		amplitude *= f.Gain
	}

	return value
}

// Bound is the largest magnitude Eval can reach given a noise bounded by
// noiseMax.
func (f FBM) Bound(noiseMax float64) float64 {
	total := 0.0
	amplitude := 0.5
	for range f.Octaves {
		total += amplitude
		amplitude *= f.Gain
	}
	return total * noiseMax
}
