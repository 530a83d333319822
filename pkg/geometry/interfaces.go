package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NoHit is the distance returned by Intersect when the ray misses
const NoHit = -1.0

// Surface is a primitive that can be intersected by rays and shaded
type Surface interface {
	// Intersect returns the smallest positive parametric distance t at which
	// origin + t*dir meets the surface, or NoHit
	Intersect(origin, dir core.Vec3) float64

	// Normal returns the unit surface normal at p, which must lie on the surface
	Normal(p core.Vec3) core.Vec3

	// Material returns the shading attributes of the surface
	Material() *material.Material
}
