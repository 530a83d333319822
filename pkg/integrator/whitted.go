package integrator

import (
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Tracer is a recursive Whitted-style ray tracer. Each hit is shaded locally
// and, while the step budget lasts, adds weighted refracted, reflected and
// transparent contributions. It only reads the scene and is safe for
// concurrent use.
type Tracer struct {
	scene  *scene.Scene
	shader *Shader

	MaxSteps   int
	Background core.Vec3
	Fog        scene.FogConfig

	primaryRays   atomic.Int64
	secondaryRays atomic.Int64
	shadowRays    atomic.Int64
	maxStep       atomic.Int64
}

// NewTracer creates a tracer using the scene's light, background and tracing parameters
func NewTracer(s *scene.Scene) *Tracer {
	maxSteps := s.Config.MaxSteps
	if maxSteps <= 0 {
		maxSteps = scene.DefaultMaxSteps
	}
	return &Tracer{
		scene:      s,
		shader:     NewShader(s),
		MaxSteps:   maxSteps,
		Background: s.Background,
		Fog:        s.Config.Fog,
	}
}

// TraceColor traces a primary ray and clamps the result to [0,1]
func (t *Tracer) TraceColor(origin, dir core.Vec3) core.Vec3 {
	t.primaryRays.Add(1)
	return t.Trace(geometry.NewRay(origin, dir), 1).Clamp(0, 1)
}

// Trace returns the unclamped color along ray. step is 1 for primary rays;
// secondary rays are only spawned while step < MaxSteps.
func (t *Tracer) Trace(ray *geometry.Ray, step int) core.Vec3 {
	surfaces := t.scene.Surfaces
	ray.ClosestPt(surfaces)
	if !ray.HasHit() {
		return t.Background
	}
	t.recordStep(step)

	surface := surfaces[ray.Index]
	mat := surface.Material()

	base := t.shader.SurfaceColor(t.scene, ray.Index, ray.Hit)
	color := t.shader.Lighting(surface, base, ray.Hit, ray.Direction.Negate())

	t.shadowRays.Add(1)
	color = color.Multiply(t.shader.ShadowFactor(surfaces, ray.Index, ray.Hit))

	if step < t.MaxSteps {
		if mat.Refractive {
			color = color.Add(t.refract(ray, surface, step).Multiply(mat.RefractionCoeff))
		}

		if mat.Reflective {
			t.secondaryRays.Add(1)
			dir := core.Reflect(ray.Direction, surface.Normal(ray.Hit))
			reflected := t.Trace(geometry.NewRay(ray.Hit, dir), step+1)
			color = color.Add(reflected.Multiply(mat.ReflectionCoeff))
		}

		if mat.Transparent {
			t.secondaryRays.Add(1)
			passed := t.Trace(geometry.NewRay(ray.Hit, ray.Direction), step+1)
			color = color.Add(passed.Multiply(mat.TransparencyCoeff))
		}
	}

	if t.Fog.Enabled {
		color = t.applyFog(color, ray.Hit)
	}

	return color
}

// refract bends the ray into the surface, finds where it leaves, bends it
// back out and traces the exit ray. Total internal reflection at either
// interface, or an inner ray that hits nothing, contributes black.
func (t *Tracer) refract(ray *geometry.Ray, surface geometry.Surface, step int) core.Vec3 {
	eta := surface.Material().RefractiveIndex

	inDir := core.Refract(ray.Direction, surface.Normal(ray.Hit), eta)
	if inDir.IsZero() {
		return core.Vec3{}
	}

	t.secondaryRays.Add(1)
	inner := geometry.NewRay(ray.Hit, inDir)
	inner.ClosestPt(t.scene.Surfaces)
	if !inner.HasHit() {
		return core.Vec3{}
	}

	exitNormal := surface.Normal(inner.Hit)
	outDir := core.Refract(inner.Direction, exitNormal.Negate(), 1/eta)
	if outDir.IsZero() {
		return core.Vec3{}
	}

	t.secondaryRays.Add(1)
	return t.Trace(geometry.NewRay(inner.Hit, outDir), step+1)
}

// applyFog blends color toward the fog color by the hit's depth between the
// near and far planes
func (t *Tracer) applyFog(color, hit core.Vec3) core.Vec3 {
	lambda := (hit.Z - t.Fog.Near) / (t.Fog.Far - t.Fog.Near)
	if lambda < 0 {
		lambda = 0
	} else if lambda > 1 {
		lambda = 1
	}
	return color.Lerp(t.Fog.Color, lambda)
}

func (t *Tracer) recordStep(step int) {
	for {
		cur := t.maxStep.Load()
		if int64(step) <= cur || t.maxStep.CompareAndSwap(cur, int64(step)) {
			return
		}
	}
}

// Stats returns a snapshot of the ray counters
func (t *Tracer) Stats() TraceStats {
	return TraceStats{
		PrimaryRays:   t.primaryRays.Load(),
		SecondaryRays: t.secondaryRays.Load(),
		ShadowRays:    t.shadowRays.Load(),
		MaxStep:       int(t.maxStep.Load()),
	}
}

// ResetStats zeroes the ray counters
func (t *Tracer) ResetStats() {
	t.primaryRays.Store(0)
	t.secondaryRays.Store(0)
	t.shadowRays.Store(0)
	t.maxStep.Store(0)
}
