package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Shadow attenuation factors
const (
	TranslucentShadow = 0.5 // Occluder is transparent or refractive
	OpaqueShadow      = 0.1
)

var white = core.NewVec3(1, 1, 1)

// Shader computes local illumination from a single point light
type Shader struct {
	Light      core.Vec3
	Ambient    float64
	ShadowBias float64
}

// NewShader creates a shader for the scene's light and tracing parameters
func NewShader(s *scene.Scene) *Shader {
	return &Shader{
		Light:      s.Light,
		Ambient:    s.Config.Ambient,
		ShadowBias: s.Config.ShadowBias,
	}
}

// Lighting returns ambient + Lambert diffuse + optional Phong specular for a
// point on the surface seen from the view direction (pointing at the viewer).
// The specular highlight is white regardless of base color.
func (sh *Shader) Lighting(surface geometry.Surface, base, hit, view core.Vec3) core.Vec3 {
	mat := surface.Material()
	color := base.Multiply(sh.Ambient)

	lightVec := sh.Light.Subtract(hit)
	if lightVec.IsZero() {
		return color
	}
	l := lightVec.Normalize()
	n := surface.Normal(hit)

	if lDotn := l.Dot(n); lDotn > 0 {
		color = color.Add(base.Multiply(lDotn))
	}

	if mat.Specular {
		r := core.Reflect(l.Negate(), n)
		if rDotv := r.Dot(view.Normalize()); rDotv > 0 {
			color = color.Add(white.Multiply(math.Pow(rDotv, mat.Shininess)))
		}
	}

	return color
}

// ShadowFactor casts a shadow ray from hit toward the light and returns the
// attenuation for the surface at index: 1 when the light is visible, otherwise
// TranslucentShadow or OpaqueShadow depending on the occluder. A surface never
// shadows itself.
func (sh *Shader) ShadowFactor(surfaces []geometry.Surface, index int, hit core.Vec3) float64 {
	lightVec := sh.Light.Subtract(hit)
	lightDist := lightVec.Length()
	if lightDist == 0 {
		return 1
	}

	dir := lightVec.Multiply(1 / lightDist)
	shadowRay := geometry.NewRay(hit.Add(dir.Multiply(sh.ShadowBias)), dir)
	shadowRay.ClosestPt(surfaces)

	if !shadowRay.HasHit() || shadowRay.Index == index || shadowRay.Dist >= lightDist {
		return 1
	}
	if surfaces[shadowRay.Index].Material().Translucent() {
		return TranslucentShadow
	}
	return OpaqueShadow
}

// SurfaceColor returns the base color used to shade the hit: the scene's
// pattern for the surface index if any, then the spherical texture when the
// material asks for it and the mapping is in range, otherwise the material color
func (sh *Shader) SurfaceColor(s *scene.Scene, index int, hit core.Vec3) core.Vec3 {
	surface := s.Surfaces[index]
	mat := surface.Material()
	color := mat.Color

	if pattern, ok := s.Pattern(index); ok {
		color = pattern.Evaluate(core.Vec2{}, hit)
	}

	if mat.SphereTexture && s.Texture != nil {
		if uv, ok := material.SphericalUV(surface.Normal(hit)); ok {
			color = s.Texture.Evaluate(uv, hit)
		}
	}

	return color
}
