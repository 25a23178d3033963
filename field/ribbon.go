package field

import (
	"math"
)

// ribbon is a pastel wash over a light background, parted by a vertical seam
// that meanders with the flow. The origin does not take part in it.
func (m *Model) ribbon(pixel Vec2, u Uniforms) Sample {
	var s Sample

	pal := &m.Preset.Palette
	bg := pal.Background

	pos := u.Normalize(pixel)
	flowPos := pos.Add(V2(u.Time*0.05, 0))

	q := V2(
		m.fbm.Eval(flowPos.Scale(1.5).Add(V2(u.Time*0.02, 0))),
		m.fbm.Eval(flowPos.Scale(1.5).Add(V2(5.2, 1.3))),
	)

	r := V2(
		m.fbm.Eval(flowPos.Scale(1.2).Add(q.Scale(0.5)).Add(V2(u.Time*0.015, 0))),
		m.fbm.Eval(flowPos.Scale(1.2).Add(q.Scale(0.5)).Add(V2(8.3, 2.8))),
	)

	f := m.fbm.Eval(flowPos.Add(r.Scale(0.4)))

	linePos := pos.X + math.Sin(pos.Y*3+u.Time*0.1)*0.15
	linePos += q.X*0.2 + r.X*0.15
	lineDist := math.Abs(linePos)

	blob := math.Sin(pos.Y*4-u.Time*0.15+f*3)*0.5 + 0.5
	blob = blob * blob

	lineWidth := 0.15 + blob*0.1
	mask := 1 - Smoothstep(lineWidth, lineWidth*0.3, lineDist)

	variation := m.fbm.Eval(V2(pos.Y*2+u.Time*0.02, 0))
	line := mask * (0.7 + variation*0.3)

	zone1 := Smoothstep(-0.5, 0.5, math.Sin(pos.Y*2+u.Time*0.1))
	zone2 := Smoothstep(-0.5, 0.5, q.X+blob)
	zone3 := Smoothstep(-0.5, 0.5, r.X)

	c := pal.At(PaletteColor1).Mix(pal.At(PaletteColor2), zone1)
	c = c.Mix(pal.At(PaletteColor3), zone2)
	c = c.Mix(pal.At(PaletteColor4), zone3)

	intensity := line * (0.6 + blob*0.4)
	edge := Smoothstep(0.0, 0.3, intensity)

	final := bg.Mix(c, intensity*0.5)
	final = bg.Mix(final, edge)

	s.Pos = pos
	s.Zones = [MaxZones]float64{zone1, zone2, zone3, mask, edge}
	s.Glow = intensity
	s.Vignette = 1
	s.Color = final

	return s
}
