package driver

import (
	"math"
)

// SmoothNoise is a cheap 1D value noise in [0, 1]: a sine hash on a 256 cell
// lattice, interpolated with smoothstep. The lattice wraps, so the value is
// continuous everywhere including the 255 -> 0 seam.
func SmoothNoise(x float64) float64 {
	fl := math.Floor(x)
	cell := int(fl) & 255
	f := x - fl
	u := f * f * (3 - 2*f)

	a := latticeHash(cell)
	b := latticeHash((cell + 1) & 255)

	return a*(1-u) + b*u
}

func latticeHash(n int) float64 {
	v := math.Sin(float64(n)*12.9898+78.233) * 43758.5453
	return v - math.Floor(v)
}
