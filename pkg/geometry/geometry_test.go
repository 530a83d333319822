package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// fixedSurface reports a constant distance, for exercising ClosestPt
type fixedSurface struct {
	dist float64
}

func (f fixedSurface) Intersect(origin, dir core.Vec3) float64 { return f.dist }
func (f fixedSurface) Normal(p core.Vec3) core.Vec3             { return core.NewVec3(0, 0, 1) }
func (f fixedSurface) Material() *material.Material             { return nil }

func grey() *material.Material {
	return material.New(core.NewVec3(0.5, 0.5, 0.5))
}
