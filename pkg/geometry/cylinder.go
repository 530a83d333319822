package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cylinder represents an upright open cylinder standing on Center
type Cylinder struct {
	Center core.Vec3
	Radius float64
	Height float64
	mat    *material.Material
}

// NewCylinder creates a new cylinder
func NewCylinder(center core.Vec3, radius, height float64, mat *material.Material) (*Cylinder, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("cylinder radius must be positive, got %f", radius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("cylinder height must be positive, got %f", height)
	}
	return &Cylinder{
		Center: center,
		Radius: radius,
		Height: height,
		mat:    mat,
	}, nil
}

// Intersect returns the distance to the nearest forward hit on the side wall
// between Center.Y and Center.Y+Height
func (c *Cylinder) Intersect(origin, dir core.Vec3) float64 {
	ox := origin.X - c.Center.X
	oz := origin.Z - c.Center.Z

	// Quadratic in the XZ plane; a == 0 means the ray runs along the axis
	a := dir.X*dir.X + dir.Z*dir.Z
	if a < 1e-8 {
		return NoHit
	}
	b := 2 * (dir.X*ox + dir.Z*oz)
	cc := ox*ox + oz*oz - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < coneDiscriminantEpsilon {
		return NoHit
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	if t1 > selfHitEpsilon && c.withinHeight(origin.Y+dir.Y*t1) {
		return t1
	}
	if t2 > selfHitEpsilon && c.withinHeight(origin.Y+dir.Y*t2) {
		return t2
	}
	return NoHit
}

func (c *Cylinder) withinHeight(y float64) bool {
	return y >= c.Center.Y && y <= c.Center.Y+c.Height
}

// Normal returns the radial normal at p
func (c *Cylinder) Normal(p core.Vec3) core.Vec3 {
	return core.NewVec3((p.X-c.Center.X)/c.Radius, 0, (p.Z-c.Center.Z)/c.Radius)
}

// Material returns the cylinder's material
func (c *Cylinder) Material() *material.Material {
	return c.mat
}
