package field

import (
	"math"
)

// =================================
// Vec2
// =================================

type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (p Vec2) Add(q Vec2) Vec2 {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p Vec2) Sub(q Vec2) Vec2 {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p Vec2) Scale(s float64) Vec2 {
	p.X *= s
	p.Y *= s
	return p
}

// AddScalar adds s to both components.
func (p Vec2) AddScalar(s float64) Vec2 {
	p.X += s
	p.Y += s
	return p
}

func (p Vec2) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Vec2) Eq(q Vec2) bool {
	return p.X == q.X && p.Y == q.Y
}

// =================================
// Color
// =================================

// Color is a linear rgb triple. Channels are only guaranteed to be in [0, 1]
// after Clamp.
type Color struct {
	R, G, B float64
}

func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func (c Color) Add(d Color) Color {
	c.R += d.R
	c.G += d.G
	c.B += d.B
	return c
}

func (c Color) Scale(s float64) Color {
	c.R *= s
	c.G *= s
	c.B *= s
	return c
}

// Mix is the glsl mix: c*(1-t) + d*t.
func (c Color) Mix(d Color, t float64) Color {
	return Color{
		R: Lerp(c.R, d.R, t),
		G: Lerp(c.G, d.G, t),
		B: Lerp(c.B, d.B, t),
	}
}

func (c Color) Pow(e float64) Color {
	return Color{
		R: math.Pow(max(c.R, 0), e),
		G: math.Pow(max(c.G, 0), e),
		B: math.Pow(max(c.B, 0), e),
	}
}

// Smoothstep applies smoothstep(0, 1, x) to every channel.
func (c Color) Smoothstep() Color {
	return Color{
		R: Smoothstep(0, 1, c.R),
		G: Smoothstep(0, 1, c.G),
		B: Smoothstep(0, 1, c.B),
	}
}

// Clamp clamps every channel to [0, 1]. NaN becomes 0.
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

func (c Color) Eq(d Color) bool {
	return c.R == d.R && c.G == d.G && c.B == d.B
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}
