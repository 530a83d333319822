package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Integrator computes the color seen along a primary ray
type Integrator interface {
	// TraceColor returns the color for a ray from origin along dir, clamped to [0,1]
	TraceColor(origin, dir core.Vec3) core.Vec3
}

// TraceStats counts the rays cast by a tracer
type TraceStats struct {
	PrimaryRays   int64
	SecondaryRays int64 // Reflected, refracted and transparent rays
	ShadowRays    int64
	MaxStep       int // Deepest recursion step that found a surface
}

// TotalRays returns the number of rays of all kinds
func (s TraceStats) TotalRays() int64 {
	return s.PrimaryRays + s.SecondaryRays + s.ShadowRays
}
