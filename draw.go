package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"

	"flowgradient/driver"
	"flowgradient/field"
)

func f32(v float64) float32 {
	return float32(v)
}

func StrokeRect(
	dst *eb.Image,
	x, y, w, h float64,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeRect(
		dst,
		f32(x), f32(y), f32(w), f32(h),
		f32(strokeWidth),
		clr,
		antialias,
	)
}

func StrokeCircle(
	dst *eb.Image,
	x, y, r float64,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeCircle(
		dst, f32(x), f32(y), f32(r), f32(strokeWidth), clr, antialias)
}

func DrawFilledCircle(
	dst *eb.Image,
	x, y, r float64,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledCircle(
		dst, f32(x), f32(y), f32(r), clr, antialias)
}

var (
	originColor = color.NRGBA{255, 255, 255, 220}
	targetColor = color.NRGBA{255, 80, 80, 220}
	marginColor = color.NRGBA{255, 255, 255, 90}
)

// DrawOriginMarker shows where the driver is: the box the smoothed origin
// is kept in, the noise target, the smoothed origin and the final origin
// with orbits added.
func DrawOriginMarker(dst *eb.Image, d *driver.Driver, u field.Uniforms) {
	res := u.Resolution
	cfg := d.Config

	// a pinned axis has no box, draw a line at the anchor
	x0, x1 := res.X*cfg.X.Margin, res.X*(1-cfg.X.Margin)
	if cfg.X.Pinned {
		x0, x1 = cfg.X.Anchor*res.X, cfg.X.Anchor*res.X
	}
	y0, y1 := res.Y*cfg.Y.Margin, res.Y*(1-cfg.Y.Margin)
	if cfg.Y.Pinned {
		y0, y1 = cfg.Y.Anchor*res.Y, cfg.Y.Anchor*res.Y
	}
	StrokeRect(dst, x0, y0, x1-x0, y1-y0, 1, marginColor, false)

	target := d.Target(res)
	StrokeCircle(dst, target.X, target.Y, 6, 2, targetColor, true)

	smooth := d.Origin()
	StrokeCircle(dst, smooth.X, smooth.Y, 10, 1, originColor, true)

	DrawFilledCircle(dst, u.Origin.X, u.Origin.Y, 4, originColor, true)
}
