package driver

// Orbit is a looping offset added on top of the drift:
// (cos(t*FreqX + PhaseX) * AmpX, sin(t*FreqY + PhaseY) * AmpY), in device pixels.
type Orbit struct {
	AmpX, AmpY     float64
	FreqX, FreqY   float64
	PhaseX, PhaseY float64
}

// AxisConfig controls one axis of the origin.
//
// A drifting axis follows the smoothing noise inside [Margin*size, (1-Margin)*size].
// A pinned axis sits at Anchor*size, which may be off screen.
type AxisConfig struct {
	Margin float64
	Pinned bool
	Anchor float64
}

type Config struct {
	// DriftSpeed is how fast the smoothing noise is walked, in noise units per second.
	DriftSpeed float64
	// Smoothing is the fraction of the remaining distance to the target
	// covered each frame. Must be in (0, 1].
	Smoothing float64
	// SeedRange bounds the random noise offsets picked at Start.
	SeedRange float64

	X, Y AxisConfig

	Orbits []Orbit
}

// AuroraConfig wanders over the whole screen with two looping orbits on top.
func AuroraConfig() Config {
	return Config{
		DriftSpeed: 0.15,
		Smoothing:  0.015,
		SeedRange:  1000,
		X:          AxisConfig{Margin: 0.15},
		Y:          AxisConfig{Margin: 0.15},
		Orbits: []Orbit{
			{AmpX: 120, AmpY: 80, FreqX: 0.4, FreqY: 0.4},
			{AmpX: 60, AmpY: 90, FreqX: 0.25, FreqY: 0.35, PhaseX: 1.5, PhaseY: 1.5},
		},
	}
}

// RibbonConfig keeps the origin off screen to the left and lets it bob
// slowly up and down.
func RibbonConfig() Config {
	return Config{
		DriftSpeed: 0.02,
		Smoothing:  0.003,
		SeedRange:  1000,
		X:          AxisConfig{Pinned: true, Anchor: -0.3},
		Y:          AxisConfig{Margin: 0.2},
		Orbits: []Orbit{
			{AmpY: 100, FreqY: 0.08},
			{AmpY: 70, FreqY: 0.05, PhaseY: 3.14},
		},
	}
}

// OrbitReach is the largest offset the orbits can add on each axis.
func (c Config) OrbitReach() (x, y float64) {
	for _, o := range c.Orbits {
		x += abs(o.AmpX)
		y += abs(o.AmpY)
	}
	return x, y
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
