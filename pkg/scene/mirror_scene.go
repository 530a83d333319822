package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorScene creates two full-reflectance mirrors facing each other across
// a red sphere on a checkerboard floor. Every ray that reaches a mirror
// bounces until the step limit.
func NewMirrorScene(opts Options) *Scene {
	s := New("mirrors")
	logger := opts.logger()

	s.Add(mustPlane(
		core.NewVec3(-30, -30, 0), core.NewVec3(30, -30, 0),
		core.NewVec3(30, -30, -200), core.NewVec3(-30, -30, -200),
		material.New(core.NewVec3(0.8, 0.75, 0.7)).WithSpecular(false)))
	s.SetPattern(FloorIndex, NewFloorPattern())

	s.Add(mustSphere(core.NewVec3(0, -20, -100), 6,
		material.New(core.NewVec3(0.8, 0.1, 0.1))))

	mirror := func() *material.Material {
		return material.New(core.NewVec3(0, 0, 0)).
			WithSpecular(false).
			WithReflectivity(true, 1)
	}
	// Facing the camera
	s.Add(mustPlane(
		core.NewVec3(-30, -30, -190), core.NewVec3(30, -30, -190),
		core.NewVec3(30, 30, -190), core.NewVec3(-30, 30, -190),
		mirror()))
	// Behind the camera, facing away from it
	s.Add(mustPlane(
		core.NewVec3(30, -30, 5), core.NewVec3(-30, -30, 5),
		core.NewVec3(-30, 30, 5), core.NewVec3(30, 30, 5),
		mirror()))

	s.Texture = FallbackTexture()
	logger.Infof("Built scene %s with %d surfaces", s.Name, len(s.Surfaces))
	return s
}
