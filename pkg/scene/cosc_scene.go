package scene

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Surface indices with pattern overrides in the built-in scenes
const (
	FloorIndex = 0
	WallIndex  = 1
)

// Floor checkerboard and back wall noise parameters
var (
	FloorEven = core.NewVec3(0.6, 0.2, 0.05)
	FloorOdd  = core.NewVec3(0.65, 0.3, 0.1)
)

const (
	FloorCellSize     = 5.0
	WallNoiseFreq     = 0.1 // Noise cycles span tens of scene units across the wall
	WallNoiseStrength = 0.6
)

// NewFloorPattern returns the checkerboard used on the floor
func NewFloorPattern() *material.WorldCheckerboard {
	return material.NewWorldCheckerboard(FloorCellSize, FloorEven, FloorOdd)
}

// NewWallPattern returns the hue-ramped noise used on the back wall
func NewWallPattern(seed int64) *material.NoiseHue {
	return material.NewNoiseHue(opensimplex.New(seed), WallNoiseFreq, WallNoiseStrength)
}

// NewCOSCScene creates the box room: a checkerboard floor, a noise-patterned
// back wall, three cones, a transparent, a refractive and a textured sphere,
// and two framed mirrors facing each other along the z axis.
func NewCOSCScene(opts Options) *Scene {
	s := New("cosc")
	logger := opts.logger()

	addBox(s)
	s.SetPattern(FloorIndex, NewFloorPattern())
	s.SetPattern(WallIndex, NewWallPattern(opts.NoiseSeed))

	// Cones
	for i := -1; i < 2; i++ {
		s.Add(mustCone(core.NewVec3(float64(i)*20, -15, -145), 0.5, 1,
			material.New(core.NewVec3(0.2, 0.1, 0.4)).WithShininess(5)))
	}

	// Spheres
	s.Add(mustSphere(core.NewVec3(0, -22, -145), 5,
		material.New(core.NewVec3(0, 0, 0.5)).
			WithReflectivity(true, 0.1).
			WithTransparency(true, 0.8)))
	s.Add(mustSphere(core.NewVec3(20, -22, -145), 5,
		material.New(core.NewVec3(0.2, 0, 0)).
			WithSpecular(false).
			WithRefractivity(true, 0.9, 1.02).
			WithReflectivity(true, 0.1)))
	s.Add(mustSphere(core.NewVec3(-20, -22, -145), 5,
		material.New(core.NewVec3(1, 1, 1)).
			WithSpecular(false).
			WithSphereTexture(true)))

	addMirrors(s)

	s.Texture = loadTexture(opts.TexturePath, logger)
	logger.Infof("Built scene %s with %d surfaces", s.Name, len(s.Surfaces))
	return s
}

// addBox adds the floor, back wall (in that order, so they take the pattern
// indices), side walls, roof, front wall and the lamp panel under the roof
func addBox(s *Scene) {
	matte := func(c core.Vec3) *material.Material {
		return material.New(c).WithSpecular(false)
	}

	// Floor
	s.Add(mustPlane(
		core.NewVec3(-30, -30, 0), core.NewVec3(30, -30, 0),
		core.NewVec3(30, -30, -200), core.NewVec3(-30, -30, -200),
		matte(core.NewVec3(0.8, 0.75, 0.7))))
	// Back
	s.Add(mustPlane(
		core.NewVec3(-30, -30, -200), core.NewVec3(30, -30, -200),
		core.NewVec3(30, 30, -200), core.NewVec3(-30, 30, -200),
		matte(core.NewVec3(0.7, 0.5, 0.4))))
	// Left
	s.Add(mustPlane(
		core.NewVec3(-30, -30, 0), core.NewVec3(-30, -30, -200),
		core.NewVec3(-30, 30, -200), core.NewVec3(-30, 30, 0),
		matte(core.NewVec3(0, 0.5, 0.5))))
	// Right
	s.Add(mustPlane(
		core.NewVec3(30, -30, -200), core.NewVec3(30, -30, 0),
		core.NewVec3(30, 30, 0), core.NewVec3(30, 30, -200),
		material.New(core.NewVec3(0.5, 0, 0.5))))
	// Roof
	s.Add(mustPlane(
		core.NewVec3(-30, 30, -200), core.NewVec3(30, 30, -200),
		core.NewVec3(30, 30, 0), core.NewVec3(-30, 30, 0),
		matte(core.NewVec3(0.8, 0.75, 0.7))))
	// Front, behind the camera
	s.Add(mustPlane(
		core.NewVec3(30, -30, 0), core.NewVec3(-30, -30, 0),
		core.NewVec3(-30, 30, 0), core.NewVec3(30, 30, 0),
		matte(core.NewVec3(0.2, 0.27, 0.16))))
	// Lamp
	s.Add(mustPlane(
		core.NewVec3(-5, 29.9, -140), core.NewVec3(5, 29.9, -140),
		core.NewVec3(5, 29.9, -130), core.NewVec3(-5, 29.9, -130),
		matte(core.NewVec3(1, 1, 1))))
}

// addMirrors adds a mirror on the back wall and one near the camera, each set
// slightly in front of a gold frame
func addMirrors(s *Scene) {
	gold := func() *material.Material {
		return material.New(core.NewVec3(0.83, 0.69, 0.22)).WithShininess(7)
	}
	mirror := func() *material.Material {
		return material.New(core.NewVec3(0, 0, 0)).
			WithSpecular(false).
			WithReflectivity(true, 1)
	}

	s.Add(mustPlane(
		core.NewVec3(-30, -26, -190.1), core.NewVec3(30, -26, -190.1),
		core.NewVec3(30, -9, -190.1), core.NewVec3(-30, -9, -190.1),
		gold()))
	s.Add(mustPlane(
		core.NewVec3(-29, -25, -190), core.NewVec3(29, -25, -190),
		core.NewVec3(29, -10, -190), core.NewVec3(-29, -10, -190),
		mirror()))
	s.Add(mustPlane(
		core.NewVec3(30, -26, -9.9), core.NewVec3(-30, -26, -9.9),
		core.NewVec3(-30, -9, -9.9), core.NewVec3(30, -9, -9.9),
		gold()))
	s.Add(mustPlane(
		core.NewVec3(29, -25, -10), core.NewVec3(-29, -25, -10),
		core.NewVec3(-29, -10, -10), core.NewVec3(29, -10, -10),
		mirror()))
}

// The built-in scenes use constant geometry, so construction errors are bugs.

func mustPlane(a, b, c, d core.Vec3, mat *material.Material) *geometry.Plane {
	p, err := geometry.NewPlane(a, b, c, d, mat)
	if err != nil {
		panic(err)
	}
	return p
}

func mustSphere(center core.Vec3, radius float64, mat *material.Material) *geometry.Sphere {
	sp, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		panic(err)
	}
	return sp
}

func mustCone(center core.Vec3, radius, height float64, mat *material.Material) *geometry.Cone {
	c, err := geometry.NewCone(center, radius, height, mat)
	if err != nil {
		panic(err)
	}
	return c
}
