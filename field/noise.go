package field

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Noise2 is a smooth 2D gradient noise with output in about [-1, 1].
type Noise2 interface {
	Eval2(x, y float64) float64
}

// Simplex is 2D simplex noise with the permutation polynomial
// (34x² + x) mod 289 in place of a lookup table. The Kage prelude in
// assets/noise.kage is the same construction.
type Simplex struct{}

const (
	skewC0 = 0.211324865405187  // (3 - sqrt(3)) / 6
	skewC1 = 0.366025403784439  // (sqrt(3) - 1) / 2
	skewC2 = -0.577350269189626 // -1 + 2 * skewC0
	gradC3 = 0.024390243902439  // 1 / 41

	simplexScale = 130.0
)

func mod289(x float64) float64 {
	return x - math.Floor(x*(1.0/289.0))*289.0
}

func permute(x float64) float64 {
	return mod289((x*34.0 + 1.0) * x)
}

func (Simplex) Eval2(x, y float64) float64 {
	// first corner
	s := (x + y) * skewC1
	ix := math.Floor(x + s)
	iy := math.Floor(y + s)

	t := (ix + iy) * skewC0
	x0 := x - ix + t
	y0 := y - iy + t

	// other corners
	var i1x, i1y float64
	if x0 > y0 {
		i1x = 1
	} else {
		i1y = 1
	}

	x1 := x0 + skewC0 - i1x
	y1 := y0 + skewC0 - i1y
	x2 := x0 + skewC2
	y2 := y0 + skewC2

	ix = mod289(ix)
	iy = mod289(iy)

	p0 := permute(permute(iy) + ix)
	p1 := permute(permute(iy+i1y) + ix + i1x)
	p2 := permute(permute(iy+1) + ix + 1)

	return simplexScale * (corner(p0, x0, y0) + corner(p1, x1, y1) + corner(p2, x2, y2))
}

// corner is the contribution of one simplex corner with hash p at offset (dx, dy).
func corner(p, dx, dy float64) float64 {
	m := max(0.5-dx*dx-dy*dy, 0)
	m = m * m
	m = m * m

	// gradients are 41 points on a cross polytope mapped onto a diamond
	gx := 2*Fract(p*gradC3) - 1
	h := math.Abs(gx) - 0.5
	a0 := gx - math.Floor(gx+0.5)

	m *= 1.79284291400159 - 0.85373472095314*(a0*a0+h*h)

	return m * (a0*dx + h*dy)
}

// NewOpenSimplex returns a seeded OpenSimplex noise. It only exists on the
// host side; shaders always use Simplex.
func NewOpenSimplex(seed int64) Noise2 {
	return opensimplex.New(seed)
}

// NoiseByName maps a preset noise name to a backend. An empty name is Simplex.
func NoiseByName(name string, seed int64) (Noise2, bool) {
	switch name {
	case "", "simplex":
		return Simplex{}, true
	case "opensimplex":
		return NewOpenSimplex(seed), true
	}
	return nil, false
}
