// Package surface tracks the size of the drawing surface in device pixels.
package surface

import (
	"image"
	"math"

	"flowgradient/field"
)

// MaxDeviceScale caps the device pixel ratio so high density displays don't
// pay for pixels nobody can see.
const MaxDeviceScale = 2

type Surface struct {
	LogicalWidth  float64
	LogicalHeight float64

	Scale float64

	// backing store size, in device pixels
	Width  int
	Height int

	Viewport image.Rectangle
}

// EffectiveScale clamps a reported device pixel ratio into (0, MaxDeviceScale].
// Non-positive or NaN ratios count as 1.
func EffectiveScale(deviceScale float64) float64 {
	if !(deviceScale > 0) {
		return 1
	}
	return min(deviceScale, MaxDeviceScale)
}

// BackingSize is the number of device pixels a logical size maps to.
func BackingSize(logicalW, logicalH, deviceScale float64) (w, h int) {
	scale := EffectiveScale(deviceScale)
	w = int(math.Floor(max(logicalW, 0) * scale))
	h = int(math.Floor(max(logicalH, 0) * scale))
	return w, h
}

// Resize updates the surface for a new logical size and device pixel ratio.
// It reports whether the backing size changed; calling it again with the same
// arguments is a no-op.
func (s *Surface) Resize(logicalW, logicalH, deviceScale float64) bool {
	w, h := BackingSize(logicalW, logicalH, deviceScale)

	s.LogicalWidth = logicalW
	s.LogicalHeight = logicalH
	s.Scale = EffectiveScale(deviceScale)

	if w == s.Width && h == s.Height {
		return false
	}

	s.Width = w
	s.Height = h
	s.Viewport = image.Rect(0, 0, w, h)

	return true
}

// Empty reports whether there is nothing to draw into.
func (s *Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Resolution is the backing size as the shader sees it.
func (s *Surface) Resolution() field.Vec2 {
	return field.V2(float64(s.Width), float64(s.Height))
}
