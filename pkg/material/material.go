package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultShininess is the Phong exponent used when none is set
const DefaultShininess = 50.0

// Material holds the shading attributes of a surface. The reflective,
// refractive and transparent flags are independent; any subset may be set.
type Material struct {
	Color     core.Vec3 // Base RGB color in [0,1]
	Specular  bool      // Phong highlight enabled
	Shininess float64   // Phong exponent

	Reflective      bool
	ReflectionCoeff float64

	Refractive      bool
	RefractionCoeff float64
	RefractiveIndex float64 // eta passed to refraction at entry; 1/eta at exit

	Transparent       bool
	TransparencyCoeff float64

	SphereTexture bool // Color comes from the scene texture via spherical mapping
}

// New creates a specular material with the given color
func New(color core.Vec3) *Material {
	return &Material{
		Color:           color,
		Specular:        true,
		Shininess:       DefaultShininess,
		RefractiveIndex: 1,
	}
}

// WithSpecular enables or disables the specular highlight
func (m *Material) WithSpecular(enabled bool) *Material {
	m.Specular = enabled
	return m
}

// WithShininess sets the Phong exponent
func (m *Material) WithShininess(shininess float64) *Material {
	m.Shininess = shininess
	return m
}

// WithReflectivity sets the mirror reflection flag and coefficient
func (m *Material) WithReflectivity(enabled bool, coeff float64) *Material {
	m.Reflective = enabled
	m.ReflectionCoeff = coeff
	return m
}

// WithRefractivity sets the refraction flag, coefficient and index of refraction
func (m *Material) WithRefractivity(enabled bool, coeff, index float64) *Material {
	m.Refractive = enabled
	m.RefractionCoeff = coeff
	m.RefractiveIndex = index
	return m
}

// WithTransparency sets the pass-through flag and coefficient
func (m *Material) WithTransparency(enabled bool, coeff float64) *Material {
	m.Transparent = enabled
	m.TransparencyCoeff = coeff
	return m
}

// WithSphereTexture enables spherical texture mapping
func (m *Material) WithSphereTexture(enabled bool) *Material {
	m.SphereTexture = enabled
	return m
}

// Flat reports whether the material spawns no secondary rays
func (m *Material) Flat() bool {
	return !m.Reflective && !m.Refractive && !m.Transparent
}

// Translucent reports whether the material lets light through, which softens
// the shadows it casts
func (m *Material) Translucent() bool {
	return m.Transparent || m.Refractive
}
