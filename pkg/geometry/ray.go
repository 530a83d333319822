package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Ray is a traced ray together with the result of its closest-hit query
type Ray struct {
	core.Ray

	Index int       // Index of the closest surface hit, -1 if none
	Hit   core.Vec3 // Closest hit point
	Dist  float64   // Parametric distance to Hit
}

// NewRay creates a ray with no recorded hit. The direction is normalized so
// that Dist is a Euclidean distance.
func NewRay(origin, direction core.Vec3) *Ray {
	return &Ray{
		Ray:   core.NewRay(origin, direction.Normalize()),
		Index: -1,
	}
}

// ClosestPt finds the nearest surface the ray intersects at a positive
// distance and records its index, hit point and distance. Index is -1 when
// no surface is hit.
func (r *Ray) ClosestPt(surfaces []Surface) {
	r.Index = -1
	minDist := 0.0

	for i, surface := range surfaces {
		t := surface.Intersect(r.Origin, r.Direction)
		if t <= 0 {
			continue
		}
		if r.Index == -1 || t < minDist {
			minDist = t
			r.Index = i
		}
	}

	if r.Index != -1 {
		r.Dist = minDist
		r.Hit = r.At(minDist)
	}
}

// HasHit reports whether the last ClosestPt query found a surface
func (r *Ray) HasHit() bool {
	return r.Index != -1
}
