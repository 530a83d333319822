package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// coneDiscriminantEpsilon rejects near-tangent hits whose roots are noise
const coneDiscriminantEpsilon = 0.001

// Cone is an upright cone of the given Radius at Center with its apex at
// Center + (0, Height, 0). Only the apex side is bounded; the lateral surface
// keeps widening below Center.
type Cone struct {
	Center core.Vec3
	Radius float64
	Height float64
	mat    *material.Material

	// Cached derived values
	theta float64 // Half angle atan(Radius/Height)
	k     float64 // (Radius/Height)²
}

// NewCone creates a new cone
func NewCone(center core.Vec3, radius, height float64, mat *material.Material) (*Cone, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("cone radius must be positive, got %f", radius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("cone height must be positive, got %f", height)
	}

	ratio := radius / height
	return &Cone{
		Center: center,
		Radius: radius,
		Height: height,
		mat:    mat,
		theta:  math.Atan(ratio),
		k:      ratio * ratio,
	}, nil
}

// Intersect solves x² + z² = (r/h)²·(h - y)² relative to Center. The nearer
// root wins unless it is behind the ray or above the apex, in which case the
// farther root is used if it is in front of the ray and below the apex.
func (c *Cone) Intersect(origin, dir core.Vec3) float64 {
	ox := origin.X - c.Center.X
	oz := origin.Z - c.Center.Z
	// Distance below the apex along -Y
	oh := c.Height - origin.Y + c.Center.Y

	a := dir.X*dir.X + dir.Z*dir.Z - c.k*dir.Y*dir.Y
	b := 2 * (dir.X*ox + dir.Z*oz + c.k*dir.Y*oh)
	cc := ox*ox + oz*oz - c.k*oh*oh

	if a == 0 {
		return NoHit
	}

	discriminant := b*b - 4*a*cc
	if discriminant < coneDiscriminantEpsilon {
		return NoHit
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// A near-zero root is the surface the ray starts on
	if math.Abs(t1) < selfHitEpsilon {
		t1 = NoHit
	}
	if math.Abs(t2) < selfHitEpsilon {
		t2 = NoHit
	}

	maxY := c.Center.Y + c.Height
	t1y := origin.Y + dir.Y*t1
	t2y := origin.Y + dir.Y*t2

	if t1 < 0 || t1y > maxY {
		if t2 > 0 && t2y < maxY {
			return t2
		}
		return NoHit
	}
	return t1
}

// Normal returns the lateral surface normal at p. It is undefined on the apex.
func (c *Cone) Normal(p core.Vec3) core.Vec3 {
	az := math.Atan2(p.X-c.Center.X, p.Z-c.Center.Z)
	cosTheta := math.Cos(c.theta)
	return core.NewVec3(
		math.Sin(az)*cosTheta,
		math.Sin(c.theta),
		math.Cos(az)*cosTheta,
	)
}

// Material returns the cone's material
func (c *Cone) Material() *material.Material {
	return c.mat
}
