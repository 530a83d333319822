package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents a bounded planar quadrilateral given by four ordered,
// coplanar corners. The normal is (B-A)×(D-A); corner order therefore decides
// which side faces the scene.
type Plane struct {
	A, B, C, D core.Vec3
	normal     core.Vec3
	mat        *material.Material
}

// NewPlane creates a quad from four corners in winding order
func NewPlane(a, b, c, d core.Vec3, mat *material.Material) (*Plane, error) {
	normal := b.Subtract(a).Cross(d.Subtract(a)).Normalize()
	if normal.IsZero() {
		return nil, errors.New("plane corners are degenerate: edges AB and AD are parallel")
	}
	return &Plane{
		A:      a,
		B:      b,
		C:      c,
		D:      d,
		normal: normal,
		mat:    mat,
	}, nil
}

// Intersect returns the distance to the quad or NoHit if the ray is parallel,
// the plane is behind the ray, or the hit lies outside the corners
func (p *Plane) Intersect(origin, dir core.Vec3) float64 {
	// Calculate denominator: dot product of ray direction and plane normal
	denominator := dir.Dot(p.normal)

	// If denominator is close to zero, ray is parallel to plane (no intersection)
	if math.Abs(denominator) < 1e-8 {
		return NoHit
	}

	t := p.A.Subtract(origin).Dot(p.normal) / denominator
	if math.Abs(t) < 1e-4 || t < 0 {
		return NoHit
	}

	if !p.isInside(origin.Add(dir.Multiply(t))) {
		return NoHit
	}
	return t
}

// isInside reports whether a point on the plane lies within the quad: the
// point must be on the same side of all four edges
func (p *Plane) isInside(pt core.Vec3) bool {
	ka := p.B.Subtract(p.A).Cross(pt.Subtract(p.A)).Dot(p.normal)
	kb := p.C.Subtract(p.B).Cross(pt.Subtract(p.B)).Dot(p.normal)
	kc := p.D.Subtract(p.C).Cross(pt.Subtract(p.C)).Dot(p.normal)
	kd := p.A.Subtract(p.D).Cross(pt.Subtract(p.D)).Dot(p.normal)

	if ka > 0 && kb > 0 && kc > 0 && kd > 0 {
		return true
	}
	return ka < 0 && kb < 0 && kc < 0 && kd < 0
}

// Normal returns the constant plane normal
func (p *Plane) Normal(pt core.Vec3) core.Vec3 {
	return p.normal
}

// Material returns the plane's material
func (p *Plane) Material() *material.Material {
	return p.mat
}
