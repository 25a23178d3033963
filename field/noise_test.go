package field

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func sampleNoise(n Noise2, count int, spread float64) []float64 {
	rng := rand.New(rand.NewPCG(7, 11))
	values := make([]float64, count)
	for i := range values {
		x := (rng.Float64()*2 - 1) * spread
		y := (rng.Float64()*2 - 1) * spread
		values[i] = n.Eval2(x, y)
	}
	return values
}

func TestNoiseStatistics(t *testing.T) {
	tests := []struct {
		name  string
		noise Noise2
	}{
		{"simplex", Simplex{}},
		{"opensimplex", NewOpenSimplex(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := sampleNoise(tt.noise, 20000, 500)

			for _, v := range values {
				if math.IsNaN(v) || math.Abs(v) > 1.1 {
					t.Fatalf("noise value %v out of range", v)
				}
			}

			mean := stat.Mean(values, nil)
			if math.Abs(mean) > 0.03 {
				t.Errorf("mean = %v, want ~0", mean)
			}

			// a degenerate noise (all zeros) would also be zero mean
			if sd := stat.StdDev(values, nil); sd < 0.1 {
				t.Errorf("stddev = %v, noise looks flat", sd)
			}
		})
	}
}

func TestSimplexDeterministic(t *testing.T) {
	var n Simplex
	for _, p := range []Vec2{{0, 0}, {0.3, -12.7}, {123.456, 789.01}, {-5000.5, 4000.25}} {
		a := n.Eval2(p.X, p.Y)
		b := n.Eval2(p.X, p.Y)
		if a != b {
			t.Errorf("Eval2(%v) not reproducible: %v vs %v", p, a, b)
		}
	}
}

func TestSimplexContinuity(t *testing.T) {
	var n Simplex
	const eps = 1e-4

	rng := rand.New(rand.NewPCG(3, 5))
	for range 5000 {
		x := (rng.Float64()*2 - 1) * 300
		y := (rng.Float64()*2 - 1) * 300

		d := math.Abs(n.Eval2(x+eps, y) - n.Eval2(x, y))
		d = max(d, math.Abs(n.Eval2(x, y+eps)-n.Eval2(x, y)))

		// gradient magnitude of this noise stays well below 10
		if d > 10*eps {
			t.Fatalf("jump of %v at (%v, %v)", d, x, y)
		}
	}
}

func TestSimplexIsZeroOnLattice(t *testing.T) {
	var n Simplex
	// every corner contribution is the dot product with the offset, which is zero at a corner
	// and all other corners are at least the falloff radius away
	for _, p := range []Vec2{{0, 0}, {1, 0}, {0, 1}, {5, 7}} {
		s := (p.X + p.Y) * skewC0
		x, y := p.X-s, p.Y-s
		if v := n.Eval2(x, y); math.Abs(v) > 1e-9 {
			t.Errorf("Eval2 at lattice point %v = %v, want 0", p, v)
		}
	}
}

func TestNoiseByName(t *testing.T) {
	if n, ok := NoiseByName("", 0); !ok || n != (Simplex{}) {
		t.Errorf("empty name should map to Simplex")
	}
	if _, ok := NoiseByName("opensimplex", 1); !ok {
		t.Errorf("opensimplex should be known")
	}
	if _, ok := NoiseByName("perlin", 1); ok {
		t.Errorf("perlin should not be known")
	}
}
