package field

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// Smoothstep is the glsl smoothstep. edge0 may be greater than edge1,
// in which case the ramp is inverted. The result is always in [0, 1].
func Smoothstep[F constraints.Float](edge0, edge1, x F) F {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func Fract(x float64) float64 {
	return x - math.Floor(x)
}
