package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// selfHitEpsilon is the distance below which a root is treated as the ray
// leaving the surface it starts on
const selfHitEpsilon = 0.001

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	mat    *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %f", radius)
	}
	return &Sphere{
		Center: center,
		Radius: radius,
		mat:    mat,
	}, nil
}

// Intersect returns the distance to the nearest forward intersection
func (s *Sphere) Intersect(origin, dir core.Vec3) float64 {
	// Vector from sphere center to ray origin
	oc := origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := dir.Dot(dir)
	if a == 0 {
		return NoHit
	}
	halfB := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return NoHit
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-halfB - sqrtD) / a
	t2 := (-halfB + sqrtD) / a

	// A near-zero root is the surface the ray starts on
	if math.Abs(t1) < selfHitEpsilon {
		t1 = NoHit
	}
	if math.Abs(t2) < selfHitEpsilon {
		t2 = NoHit
	}

	if t1 > 0 {
		return t1
	}
	if t2 > 0 {
		return t2
	}
	return NoHit
}

// Normal returns the outward normal from the center to p
func (s *Sphere) Normal(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Multiply(1.0 / s.Radius)
}

// Material returns the sphere's material
func (s *Sphere) Material() *material.Material {
	return s.mat
}
