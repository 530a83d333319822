package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Image plane defaults: the eye sits at the origin looking down -z at a
// square window EyeDistance away
const (
	EyeDistance      = 40.0
	PlaneMin         = -10.0
	PlaneMax         = 10.0
	DefaultDivisions = 500
)

// Camera is a pinhole camera whose image plane is divided into a grid of
// cells, one per pixel. Cell (0,0) is at the bottom left of the plane.
type Camera struct {
	Eye        core.Vec3
	Distance   float64 // Distance from the eye to the image plane along -z
	XMin, XMax float64
	YMin, YMax float64
	Divisions  int // Cells per axis
}

// NewCamera creates the default camera with the given number of cells per axis
func NewCamera(divisions int) *Camera {
	return &Camera{
		Distance:  EyeDistance,
		XMin:      PlaneMin,
		XMax:      PlaneMax,
		YMin:      PlaneMin,
		YMax:      PlaneMax,
		Divisions: divisions,
	}
}

// CellSize returns the width and height of one cell on the image plane
func (c *Camera) CellSize() (float64, float64) {
	n := float64(c.Divisions)
	return (c.XMax - c.XMin) / n, (c.YMax - c.YMin) / n
}

// cellPoint returns the direction from the eye to the point at fractional
// offset (fx, fy) inside cell (i, j)
func (c *Camera) cellPoint(i, j int, fx, fy float64) core.Vec3 {
	cellX, cellY := c.CellSize()
	xp := c.XMin + float64(i)*cellX
	yp := c.YMin + float64(j)*cellY
	return core.NewVec3(xp+fx*cellX, yp+fy*cellY, -c.Distance)
}

// Direction returns the primary ray direction through the center of cell (i, j)
func (c *Camera) Direction(i, j int) core.Vec3 {
	return c.cellPoint(i, j, 0.5, 0.5)
}

// AntialiasDirections returns the four primary ray directions through the
// quarter points of cell (i, j)
func (c *Camera) AntialiasDirections(i, j int) [4]core.Vec3 {
	return [4]core.Vec3{
		c.cellPoint(i, j, 0.25, 0.25),
		c.cellPoint(i, j, 0.75, 0.25),
		c.cellPoint(i, j, 0.75, 0.75),
		c.cellPoint(i, j, 0.25, 0.75),
	}
}

// PixelCell maps image pixel (x, y), with y growing downward, to the
// image plane cell it covers
func (c *Camera) PixelCell(x, y int) (int, int) {
	return x, c.Divisions - 1 - y
}
