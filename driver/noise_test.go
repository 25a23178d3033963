package driver

import (
	"math"
	"testing"
)

func TestSmoothNoiseRange(t *testing.T) {
	for i := range 100000 {
		x := float64(i)*0.0137 - 300
		v := SmoothNoise(x)
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("SmoothNoise(%v) = %v, want [0, 1]", x, v)
		}
	}
}

func TestSmoothNoiseHitsLattice(t *testing.T) {
	for _, n := range []int{0, 1, 17, 255} {
		if got, want := SmoothNoise(float64(n)), latticeHash(n); got != want {
			t.Errorf("SmoothNoise(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestSmoothNoiseContinuous(t *testing.T) {
	const eps = 1e-6

	// integers are where neighbouring cells meet; 256 is the wrap
	for _, x := range []float64{1, 2, 100, 255, 256, 257, 512, 1000} {
		below := SmoothNoise(x - eps)
		above := SmoothNoise(x + eps)
		if math.Abs(above-below) > 1e-4 {
			t.Errorf("jump at %v: %v -> %v", x, below, above)
		}
	}
}

func TestSmoothNoisePeriodic(t *testing.T) {
	for _, x := range []float64{0.25, 3.5, 128.75, 255.9} {
		if a, b := SmoothNoise(x), SmoothNoise(x+256); math.Abs(a-b) > 1e-9 {
			t.Errorf("SmoothNoise(%v) = %v but SmoothNoise(%v) = %v", x, a, x+256, b)
		}
	}
}
