package field

import (
	"math"
)

// aurora is a dark field of flowing color with waves rippling out of the
// origin and a warm glow around it.
func (m *Model) aurora(pixel Vec2, u Uniforms) Sample {
	var s Sample

	pal := &m.Preset.Palette

	pos := u.Normalize(pixel)
	toOrigin := pos.Sub(u.Normalize(u.Origin))

	dist := toOrigin.Length()
	angle := math.Atan2(toOrigin.Y, toOrigin.X)

	slowTime := u.Time * 0.15
	medTime := u.Time * 0.25
	fastTime := u.Time * 0.4

	// large scale flow
	flow1 := V2(
		m.fbm.Eval(pos.Scale(1.5).Add(V2(slowTime, -slowTime*0.7))),
		m.fbm.Eval(pos.Scale(1.5).Add(V2(-slowTime*0.8, slowTime))),
	)

	// medium turbulence warped by the large flow
	warped := pos.Scale(3).Add(flow1.Scale(0.5))
	flow2 := V2(
		m.snoise(warped.AddScalar(medTime)),
		m.snoise(warped.AddScalar(-medTime*0.6)),
	)

	detail := m.snoise(pos.Scale(8).Add(flow2.Scale(0.3)).AddScalar(fastTime))

	radial := math.Sin(dist*8-u.Time*1.5+flow1.X*2)*0.5 + 0.5
	radial *= math.Exp(-dist * 0.8)

	angular := math.Sin(angle*4+u.Time*0.8+flow2.Y*3)*0.5 + 0.5
	angular *= math.Exp(-dist * 1.2)

	combined := flow1.X*0.4 + flow2.Y*0.3 + detail*0.3
	field := combined + radial*0.6 + angular*0.4

	zone1 := Smoothstep(-0.8, 0.2, field)
	zone2 := Smoothstep(-0.3, 0.6, field+dist*0.5)
	zone3 := Smoothstep(0.0, 1.0, field-dist*0.3)
	zone4 := Smoothstep(0.3, 1.2, radial+angular)

	c := pal.At(PaletteColor1).Mix(pal.At(PaletteColor2), zone1)
	c = c.Mix(pal.At(PaletteColor3), zone2*0.7)
	c = c.Mix(pal.At(PaletteColor4), zone3*zone4*0.6)

	glow := math.Exp(-dist*1.5) * (0.5 + radial*0.5)
	c = c.Mix(pal.At(PaletteColor5), glow*0.4)

	highlight := Smoothstep(0.7, 1.0, radial) * math.Exp(-dist*2)
	c = c.Add(pal.At(PaletteColor3).Scale(highlight * 0.5))

	vignette := 1 - Smoothstep(0.5, 1.5, pos.Length())
	c = c.Scale(0.7 + vignette*0.3)

	c = c.Pow(0.9).Smoothstep()

	s.Pos = pos
	s.Dist = dist
	s.Angle = angle
	s.Radial = radial
	s.Angular = angular
	s.Zones = [MaxZones]float64{zone1, zone2, zone3, zone4, highlight}
	s.Glow = glow
	s.Vignette = vignette
	s.Color = c

	return s
}
