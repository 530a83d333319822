package scene

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LoadYAMLScene reads a YAML scene file and builds it
func LoadYAMLScene(path string, opts Options) (*Scene, error) {
	desc, err := loaders.LoadScene(path)
	if err != nil {
		return nil, err
	}
	return FromDescription(desc, opts)
}

// FromDescription builds a scene from a parsed description. A texture named
// in the description takes precedence over opts.TexturePath.
func FromDescription(desc *loaders.SceneDescription, opts Options) (*Scene, error) {
	s := New(desc.Name)
	logger := opts.logger()

	if desc.Light != nil {
		s.Light = desc.Light.Vec3()
	}
	s.Background = desc.Background.Vec3()
	if desc.MaxSteps > 0 {
		s.Config.MaxSteps = desc.MaxSteps
	}

	if f := desc.Fog; f != nil {
		s.Config.Fog.Enabled = f.Enabled
		if f.Near != 0 {
			s.Config.Fog.Near = f.Near
		}
		if f.Far != 0 {
			s.Config.Fog.Far = f.Far
		}
		if f.Color != nil {
			s.Config.Fog.Color = f.Color.Vec3()
		}
		if s.Config.Fog.Near == s.Config.Fog.Far {
			return nil, fmt.Errorf("fog near and far must differ, both are %g", s.Config.Fog.Near)
		}
	}

	for i, sd := range desc.Surfaces {
		surface, err := buildSurface(sd)
		if err != nil {
			return nil, fmt.Errorf("surface %d (%s): %w", i, sd.Type, err)
		}
		index := s.Add(surface)
		if sd.Pattern != nil {
			s.SetPattern(index, buildPattern(*sd.Pattern, opts.NoiseSeed))
		}
	}

	texturePath := opts.TexturePath
	if desc.Texture != "" {
		texturePath = desc.Texture
	}
	s.Texture = loadTexture(texturePath, logger)

	logger.Infof("Built scene %s with %d surfaces", s.Name, len(s.Surfaces))
	return s, nil
}

func buildSurface(sd loaders.SurfaceDescription) (geometry.Surface, error) {
	mat := buildMaterial(sd.Material)
	center := sd.Center.Vec3()

	switch sd.Type {
	case loaders.SurfaceSphere:
		return geometry.NewSphere(center, sd.Radius, mat)
	case loaders.SurfacePlane:
		if len(sd.Corners) != 4 {
			return nil, fmt.Errorf("plane needs 4 corners, got %d", len(sd.Corners))
		}
		return geometry.NewPlane(sd.Corners[0].Vec3(), sd.Corners[1].Vec3(),
			sd.Corners[2].Vec3(), sd.Corners[3].Vec3(), mat)
	case loaders.SurfaceCone:
		return geometry.NewCone(center, sd.Radius, sd.Height, mat)
	case loaders.SurfaceCylinder:
		return geometry.NewCylinder(center, sd.Radius, sd.Height, mat)
	default:
		return nil, fmt.Errorf("%w: %q", loaders.ErrUnknownSurfaceType, sd.Type)
	}
}

func buildMaterial(md loaders.MaterialDescription) *material.Material {
	mat := material.New(md.Color.Vec3())
	if md.Specular != nil {
		mat.WithSpecular(*md.Specular)
	}
	if md.Shininess > 0 {
		mat.WithShininess(md.Shininess)
	}
	if md.Reflectivity > 0 {
		mat.WithReflectivity(true, md.Reflectivity)
	}
	if r := md.Refraction; r != nil {
		index := r.Index
		if index == 0 {
			index = 1
		}
		mat.WithRefractivity(true, r.Coeff, index)
	}
	if md.Transparency > 0 {
		mat.WithTransparency(true, md.Transparency)
	}
	return mat.WithSphereTexture(md.SphereTexture)
}

func buildPattern(pd loaders.PatternDescription, defaultSeed int64) material.ColorSource {
	switch pd.Type {
	case loaders.PatternNoise:
		freq := pd.Frequency
		if freq == 0 {
			freq = WallNoiseFreq
		}
		intensity := pd.Intensity
		if intensity == 0 {
			intensity = WallNoiseStrength
		}
		seed := pd.Seed
		if seed == 0 {
			seed = defaultSeed
		}
		return material.NewNoiseHue(opensimplex.New(seed), freq, intensity)
	default:
		cell := pd.CellSize
		if cell <= 0 {
			cell = FloorCellSize
		}
		even, odd := FloorEven, FloorOdd
		if len(pd.Colors) == 2 {
			even, odd = pd.Colors[0].Vec3(), pd.Colors[1].Vec3()
		}
		return material.NewWorldCheckerboard(cell, even, odd)
	}
}
