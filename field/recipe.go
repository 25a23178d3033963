package field

import "fmt"

// Recipe selects how the noise layers are combined into zones and which
// zone blends over which.
type Recipe int

const (
	RecipeAurora Recipe = iota
	RecipeRibbon

	RecipeCount
)

var recipeNames = [RecipeCount]string{
	RecipeAurora: "aurora",
	RecipeRibbon: "ribbon",
}

func (r Recipe) String() string {
	if r < 0 || r >= RecipeCount {
		return fmt.Sprintf("Recipe(%d)", int(r))
	}
	return recipeNames[r]
}

func ParseRecipe(name string) (Recipe, error) {
	for i, n := range recipeNames {
		if n == name {
			return Recipe(i), nil
		}
	}
	return 0, fmt.Errorf("unknown recipe %q", name)
}

// Preset is everything the compositor needs besides the per frame uniforms.
type Preset struct {
	Name    string
	Recipe  Recipe
	Palette Palette
	Octaves int
}

// Uniforms are the per frame inputs handed from the driver to the per pixel
// evaluator. Resolution and Origin are in device pixels.
type Uniforms struct {
	Resolution Vec2
	Time       float64
	Origin     Vec2
}

// Normalize maps a device pixel position into the aspect corrected space
// where the screen center is 0 and the shorter screen side spans 1.
func (u Uniforms) Normalize(p Vec2) Vec2 {
	half := u.Resolution.Scale(0.5)
	return p.Sub(half).Scale(1 / min(u.Resolution.X, u.Resolution.Y))
}
