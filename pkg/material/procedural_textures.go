package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a checkerboard image texture. It stands in for
// the sphere texture when no image is available.
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			var color core.Vec3
			if (checkX+checkY)%2 == 0 {
				color = color1
			} else {
				color = color2
			}

			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// WorldCheckerboard is a world-space checkerboard on the XZ plane.
//
// Cells are bucketed by truncating x/CellSize and z/CellSize toward zero, and
// the x parity is flipped for negative x so the two cells straddling x=0 still
// alternate instead of merging into one double-width stripe.
type WorldCheckerboard struct {
	CellSize float64
	Even     core.Vec3 // Cells whose x and z parities match
	Odd      core.Vec3
}

// NewWorldCheckerboard creates a checkerboard pattern
func NewWorldCheckerboard(cellSize float64, even, odd core.Vec3) *WorldCheckerboard {
	return &WorldCheckerboard{CellSize: cellSize, Even: even, Odd: odd}
}

// Evaluate returns the cell color for the point
func (c *WorldCheckerboard) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	ix := int(point.X / c.CellSize)
	iz := int(point.Z / c.CellSize)

	oddX := ix%2 != 0
	if point.X < 0 {
		oddX = !oddX
	}
	oddZ := iz%2 != 0

	if oddX == oddZ {
		return c.Even
	}
	return c.Odd
}

// Noise2D samples coherent noise in [-1,1]
type Noise2D interface {
	Eval2(x, y float64) float64
}

// NoiseHue maps a 2D noise field sampled on the XY plane through a full hue
// rotation and scales the result.
type NoiseHue struct {
	Noise     Noise2D
	Frequency float64 // Multiplier applied to x and y before sampling
	Intensity float64
}

// NewNoiseHue creates a noise hue pattern
func NewNoiseHue(noise Noise2D, frequency, intensity float64) *NoiseHue {
	return &NoiseHue{Noise: noise, Frequency: frequency, Intensity: intensity}
}

// Evaluate returns the hue-ramped noise color for the point
func (n *NoiseHue) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	value := n.Noise.Eval2(point.X*n.Frequency, point.Y*n.Frequency)
	return HueRamp((1.0 - value) * 6.0).Multiply(n.Intensity)
}

// HueRamp converts h to a fully saturated RGB color through six linear
// segments, one per unit of h starting at zero. Values of 5 and above all fall
// in the last (magenta to red) segment.
func HueRamp(h float64) core.Vec3 {
	x := 1.0 - math.Abs(math.Mod(h, 2.0)-1.0)

	switch {
	case h >= 0 && h < 1:
		return core.NewVec3(1, x, 0)
	case h >= 1 && h < 2:
		return core.NewVec3(x, 1, 0)
	case h >= 2 && h < 3:
		return core.NewVec3(0, 1, x)
	case h >= 3 && h < 4:
		return core.NewVec3(0, x, 1)
	case h >= 4 && h < 5:
		return core.NewVec3(x, 0, 1)
	default:
		return core.NewVec3(1, 0, x)
	}
}

// SphericalUV maps a unit normal to longitude/latitude texture coordinates.
// ok is false when either coordinate falls outside [0,1].
func SphericalUV(normal core.Vec3) (uv core.Vec2, ok bool) {
	u := math.Atan2(normal.X, normal.Z)/(2*math.Pi) + 0.5
	v := normal.Y*0.5 + 0.5
	ok = u >= 0 && u <= 1 && v >= 0 && v <= 1
	return core.NewVec2(u, v), ok
}
