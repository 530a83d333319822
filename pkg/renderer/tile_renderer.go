package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// TileRenderer renders blocks of pixels by tracing primary rays through the camera
type TileRenderer struct {
	camera     *Camera
	integrator integrator.Integrator
	antialias  bool
}

// NewTileRenderer creates a tile renderer. With antialias set each pixel
// averages four rays instead of one.
func NewTileRenderer(camera *Camera, integratorInst integrator.Integrator, antialias bool) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		antialias:  antialias,
	}
}

// PixelColor returns the color of image pixel (x, y)
func (tr *TileRenderer) PixelColor(x, y int) core.Vec3 {
	i, j := tr.camera.PixelCell(x, y)
	eye := tr.camera.Eye

	if !tr.antialias {
		return tr.integrator.TraceColor(eye, tr.camera.Direction(i, j))
	}

	var sum core.Vec3
	for _, dir := range tr.camera.AntialiasDirections(i, j) {
		sum = sum.Add(tr.integrator.TraceColor(eye, dir))
	}
	return sum.Multiply(0.25)
}

// RenderTileBounds renders the pixels within bounds into img. Tiles with
// disjoint bounds may be rendered into the same image concurrently.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *image.RGBA) TileStats {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, toRGBA(tr.PixelColor(x, y)))
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	samples := pixels
	if tr.antialias {
		samples *= 4
	}
	return TileStats{Pixels: pixels, Samples: samples}
}

// toRGBA converts a color in [0,1] to 8-bit RGBA
func toRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(255*c.X + 0.5),
		G: uint8(255*c.Y + 0.5),
		B: uint8(255*c.Z + 0.5),
		A: 255,
	}
}
