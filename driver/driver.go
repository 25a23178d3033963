// Package driver animates the origin point the gradient flows around.
//
// A Driver walks a smoothing noise per axis, low pass filters the live origin
// toward that walk and adds looping orbits on top. It never reads the wall
// clock; the caller passes the current time to Start and Step.
package driver

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"flowgradient/field"
)

type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Driver struct {
	Config Config

	state State

	seedX, seedY float64

	// origin is the smoothed origin, before orbits are added
	origin field.Vec2

	start   time.Duration
	elapsed float64

	last field.Uniforms
}

func New(cfg Config) *Driver {
	return &Driver{Config: cfg}
}

func (d *Driver) State() State {
	return d.state
}

// Seeds returns the two noise offsets picked at Start.
func (d *Driver) Seeds() (x, y float64) {
	return d.seedX, d.seedY
}

// Origin returns the smoothed origin without orbit offsets.
func (d *Driver) Origin() field.Vec2 {
	return d.origin
}

// Last returns the most recent hand-off.
func (d *Driver) Last() field.Uniforms {
	return d.last
}

// Start picks the noise offsets from rng, centers the origin on res and takes
// now as time zero. Starting an already running driver restarts it.
func (d *Driver) Start(rng *rand.Rand, now time.Duration, res field.Vec2) {
	d.seedX = rng.Float64() * d.Config.SeedRange
	d.seedY = rng.Float64() * d.Config.SeedRange

	d.origin = res.Scale(0.5)
	d.start = now
	d.elapsed = 0

	d.last = field.Uniforms{
		Resolution: res,
		Time:       0,
		Origin:     d.origin,
	}

	d.state = StateRunning
}

// Stop ends the animation. It is safe to call more than once.
func (d *Driver) Stop() {
	if d.state == StateRunning {
		d.state = StateStopped
	}
}

// Target is where the smoothed origin is heading at the current elapsed time.
func (d *Driver) Target(res field.Vec2) field.Vec2 {
	t := d.elapsed * d.Config.DriftSpeed
	return field.V2(
		d.Config.X.target(d.seedX+t, res.X),
		d.Config.Y.target(d.seedY+t, res.Y),
	)
}

func (a AxisConfig) target(noiseAt, size float64) float64 {
	if a.Pinned {
		return a.Anchor * size
	}
	margin := size * a.Margin
	return margin + SmoothNoise(noiseAt)*(size-2*margin)
}

// Step advances the animation to now and returns what this frame should be
// drawn with. Outside of StateRunning it returns the last hand-off unchanged.
func (d *Driver) Step(now time.Duration, res field.Vec2) field.Uniforms {
	if d.state != StateRunning {
		return d.last
	}

	// clocks can go backwards, elapsed time can't
	d.elapsed = max(d.elapsed, (now - d.start).Seconds())

	target := d.Target(res)

	d.origin.X = d.Config.X.smooth(d.origin.X, target.X, d.Config.Smoothing)
	d.origin.Y = d.Config.Y.smooth(d.origin.Y, target.Y, d.Config.Smoothing)

	final := d.origin.Add(d.orbit(d.elapsed))

	d.last = field.Uniforms{
		Resolution: res,
		Time:       d.elapsed,
		Origin:     final,
	}

	return d.last
}

func (a AxisConfig) smooth(current, target, factor float64) float64 {
	if a.Pinned {
		return target
	}
	return current + (target-current)*factor
}

func (d *Driver) orbit(t float64) field.Vec2 {
	var offset field.Vec2
	for _, o := range d.Config.Orbits {
		offset.X += math.Cos(t*o.FreqX+o.PhaseX) * o.AmpX
		offset.Y += math.Sin(t*o.FreqY+o.PhaseY) * o.AmpY
	}
	return offset
}
