package main

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"flowgradient/field"
	"flowgradient/surface"
)

//go:embed assets/*.kage
var embeddedShaders embed.FS

const (
	shaderDir       = "assets"
	noiseShaderFile = "noise.kage"
)

var TheShaderSources struct {
	// file name -> source
	Files map[string][]byte
	// where Files came from, "embedded" or a directory
	From string
}

// LoadShaderSources reads the Kage templates. With -hot they are read from
// the assets directory on disk so they can be edited while running.
func LoadShaderSources() error {
	ss := &TheShaderSources

	files := make(map[string][]byte)

	if FlagHotReload {
		entries, err := filepath.Glob(filepath.Join(shaderDir, "*.kage"))
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no shaders found in %s", shaderDir)
		}
		for _, path := range entries {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading shader: %w", err)
			}
			files[filepath.Base(path)] = src
		}
		ss.From = shaderDir
	} else {
		entries, err := embeddedShaders.ReadDir(shaderDir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			src, err := embeddedShaders.ReadFile(shaderDir + "/" + entry.Name())
			if err != nil {
				return err
			}
			files[entry.Name()] = src
		}
		ss.From = "embedded"
	}

	ss.Files = files

	InfoLogger.Printf("loaded %d shader sources from %s", len(files), ss.From)

	return nil
}

type shaderParams struct {
	Octaves     int
	PaletteSize int
}

// ShaderSource generates the Kage program for preset.
func ShaderSource(preset field.Preset) ([]byte, error) {
	ss := &TheShaderSources

	genErr := func(err error) error {
		return &surface.CompileError{Stage: "generate", Recipe: preset.Recipe.String(), Err: err}
	}

	if ss.Files == nil {
		if err := LoadShaderSources(); err != nil {
			return nil, genErr(err)
		}
	}

	recipeFile := preset.Recipe.String() + ".kage"

	recipeSrc, ok := ss.Files[recipeFile]
	if !ok {
		return nil, genErr(fmt.Errorf("missing %s", recipeFile))
	}
	noiseSrc, ok := ss.Files[noiseShaderFile]
	if !ok {
		return nil, genErr(fmt.Errorf("missing %s", noiseShaderFile))
	}

	tmpl, err := template.New(recipeFile).Option("missingkey=error").Parse(string(recipeSrc))
	if err != nil {
		return nil, genErr(err)
	}
	if _, err = tmpl.Parse(string(noiseSrc)); err != nil {
		return nil, genErr(err)
	}

	octaves := preset.Octaves
	if octaves <= 0 {
		octaves = field.DefaultOctaves
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, shaderParams{
		Octaves:     octaves,
		PaletteSize: int(field.PaletteSize),
	}); err != nil {
		return nil, genErr(err)
	}

	return buf.Bytes(), nil
}
