package field

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Render evaluates model at every pixel of img. Pixel (x, y) is sampled at
// its center (x+0.5, y+0.5) relative to img.Bounds().Min. Rows are rendered
// in parallel; since every pixel is independent the result is the same as a
// sequential render.
func Render(ctx context.Context, img *image.NRGBA, model *Model, u Uniforms) error {
	bounds := img.Bounds()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			py := float64(y-bounds.Min.Y) + 0.5
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				px := float64(x-bounds.Min.X) + 0.5
				img.SetNRGBA(x, y, model.Eval(V2(px, py), u).NRGBA())
			}

			return nil
		})
	}

	return g.Wait()
}

// RenderImage allocates a width x height image and renders into it.
func RenderImage(ctx context.Context, width, height int, model *Model, u Uniforms) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if err := Render(ctx, img, model, u); err != nil {
		return nil, err
	}
	return img, nil
}
