package field

// AuroraPreset is deep purple shading into blue and pink with a golden glow
// around the origin.
func AuroraPreset() Preset {
	return Preset{
		Name:   "aurora",
		Recipe: RecipeAurora,
		Palette: Palette{
			Background: RGB(0, 0, 0),
			Colors: [PaletteSize]Color{
				RGB(0.05, 0.02, 0.15), // deep purple-black
				RGB(0.35, 0.15, 0.65), // rich purple
				RGB(0.15, 0.45, 0.85), // bright blue
				RGB(0.85, 0.25, 0.55), // hot pink
				RGB(0.95, 0.75, 0.35), // golden yellow
			},
		},
		Octaves: DefaultOctaves,
	}
}

// RibbonPreset is a pastel ribbon on white.
func RibbonPreset() Preset {
	return Preset{
		Name:   "ribbon",
		Recipe: RecipeRibbon,
		Palette: Palette{
			Background: RGB(1, 1, 1),
			Colors: [PaletteSize]Color{
				RGB(0.4, 0.7, 1.0), // light blue
				RGB(0.6, 0.4, 1.0), // purple
				RGB(1.0, 0.5, 0.7), // pink
				RGB(0.5, 0.9, 0.8), // cyan
				RGB(0.5, 0.9, 0.8),
			},
		},
		Octaves: DefaultOctaves,
	}
}
