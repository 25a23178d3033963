package field

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	css "github.com/mazznoer/csscolorparser"
)

type PaletteIndex int

const (
	PaletteColor1 PaletteIndex = iota
	PaletteColor2
	PaletteColor3
	PaletteColor4
	PaletteColor5

	PaletteSize
)

// Palette is the fixed set of colors a recipe blends between.
// Background is only used by recipes that fade into a backdrop.
type Palette struct {
	Background Color
	Colors     [PaletteSize]Color
}

func (p Palette) At(i PaletteIndex) Color {
	return p.Colors[i]
}

// Uniforms returns the palette in the layout the shaders expect:
// Background as one vec4 and Colors as [PaletteSize]vec4.
func (p Palette) Uniforms() (background []float32, colors []float32) {
	background = []float32{
		float32(p.Background.R), float32(p.Background.G), float32(p.Background.B), 1,
	}
	colors = make([]float32, 0, PaletteSize*4)
	for _, c := range p.Colors {
		colors = append(colors, float32(c.R), float32(c.G), float32(c.B), 1)
	}
	return background, colors
}

func ParseColor(str string) (Color, error) {
	c, err := css.Parse(str)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

func ParsePalette(background string, colors []string) (Palette, error) {
	var p Palette

	if len(colors) == 0 || len(colors) > int(PaletteSize) {
		return p, fmt.Errorf("palette needs 1 to %d colors, got %d", PaletteSize, len(colors))
	}

	var err error
	if p.Background, err = ParseColor(background); err != nil {
		return p, fmt.Errorf("background %q: %w", background, err)
	}

	for i, str := range colors {
		if p.Colors[i], err = ParseColor(str); err != nil {
			return p, fmt.Errorf("color %d %q: %w", i+1, str, err)
		}
	}

	// recipes may index past a short palette, repeat the last color
	for i := len(colors); i < int(PaletteSize); i++ {
		p.Colors[i] = p.Colors[len(colors)-1]
	}

	return p, nil
}

// NRGBA quantizes c to 8 bits per channel, rounding to nearest.
func (c Color) NRGBA() color.NRGBA {
	c = c.Clamp()
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}
