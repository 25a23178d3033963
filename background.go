package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"

	"flowgradient/field"
	"flowgradient/surface"
)

// Background is the compiled gradient shader for one preset.
type Background struct {
	Preset field.Preset

	Shader *eb.Shader
	// Source is the generated Kage program, kept for the debug console.
	Source []byte

	background []float32
	colors     []float32
}

// NewBackground generates and compiles the shader for preset. Errors are
// *surface.CompileError.
func NewBackground(preset field.Preset) (*Background, error) {
	timer := NewProfTimer("compiling " + preset.Name)
	defer timer.Report()

	src, err := ShaderSource(preset)
	if err != nil {
		return nil, err
	}

	shader, err := eb.NewShader(src)
	if err != nil {
		return nil, &surface.CompileError{Stage: "compile", Recipe: preset.Recipe.String(), Err: err}
	}

	bg, colors := preset.Palette.Uniforms()

	return &Background{
		Preset:     preset,
		Shader:     shader,
		Source:     src,
		background: bg,
		colors:     colors,
	}, nil
}

func vec2Uniform(v field.Vec2) []float32 {
	return []float32{float32(v.X), float32(v.Y)}
}

// Draw fills dst with one frame.
func (b *Background) Draw(dst *eb.Image, u field.Uniforms) {
	if b.Shader == nil {
		return
	}

	bounds := dst.Bounds()

	op := &eb.DrawRectShaderOptions{}
	op.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))

	op.Uniforms = make(map[string]any)
	op.Uniforms["Resolution"] = vec2Uniform(u.Resolution)
	op.Uniforms["Time"] = float32(u.Time)
	op.Uniforms["Origin"] = vec2Uniform(u.Origin)
	op.Uniforms["Background"] = b.background
	op.Uniforms["Colors"] = b.colors

	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), b.Shader, op)
}

// Dispose releases the shader. Calling it again does nothing.
func (b *Background) Dispose() {
	if b.Shader != nil {
		b.Shader.Deallocate()
		b.Shader = nil
	}
}
