// Package term previews the gradient in a terminal.
//
// Every cell is split into two square halves with an upper half block: the
// foreground paints the top half and the background the bottom. Each half
// stands in for an 8x8 block of virtual pixels, so the field is sampled at
// the same density it would be on a small window.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"flowgradient/field"
	"flowgradient/surface"
)

const (
	// CellPixels is the side of the square block of virtual pixels one half
	// cell covers.
	CellPixels = 8

	halfBlock = '▀'
)

// Open initialises a terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", surface.ErrSurfaceUnavailable, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", surface.ErrSurfaceUnavailable, err)
	}
	return screen, nil
}

// VirtualSize is the resolution a cols x rows terminal stands in for.
func VirtualSize(cols, rows int) field.Vec2 {
	return field.V2(float64(cols*CellPixels), float64(rows*2*CellPixels))
}

// HalfCenters returns the virtual pixel the top and bottom half of cell
// (col, row) are sampled at.
func HalfCenters(col, row int) (top, bottom field.Vec2) {
	x := (float64(col) + 0.5) * CellPixels
	top = field.V2(x, (float64(row*2)+0.5)*CellPixels)
	bottom = field.V2(x, (float64(row*2)+1.5)*CellPixels)
	return top, bottom
}

func tcellColor(c field.Color) tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// Draw paints one frame of model into every cell of screen. It doesn't call
// Show.
func Draw(screen tcell.Screen, model *field.Model, u field.Uniforms) {
	cols, rows := screen.Size()

	for row := range rows {
		for col := range cols {
			top, bottom := HalfCenters(col, row)

			style := tcell.StyleDefault.
				Foreground(tcellColor(model.Eval(top, u))).
				Background(tcellColor(model.Eval(bottom, u)))

			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}
