package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is read-only once
// built and may be shared by concurrent tracers.
type Scene struct {
	Name       string
	Surfaces   []geometry.Surface // Order matters: patterns are keyed by index
	Light      core.Vec3          // Single point light
	Background core.Vec3          // Color of rays that hit nothing

	// Patterns override the base color of the surface at the given index
	Patterns map[int]material.ColorSource
	// Texture is sampled with spherical coordinates by materials that ask for it
	Texture material.ColorSource

	Config TraceConfig
}

// TraceConfig contains the tracing parameters carried by a scene
type TraceConfig struct {
	MaxSteps   int     // Recursion bound; primary rays are step 1
	Ambient    float64 // Ambient fraction of the base color
	ShadowBias float64 // Shadow ray origin offset along the light direction
	Fog        FogConfig
}

// FogConfig describes linear depth fog between two z values
type FogConfig struct {
	Enabled bool
	Near    float64 // z at which fog starts
	Far     float64 // z at which fog is total
	Color   core.Vec3
}

// Tracing defaults
const (
	DefaultMaxSteps   = 5
	DefaultAmbient    = 0.2
	DefaultShadowBias = 1e-3
	DefaultFogNear    = -50.0
	DefaultFogFar     = -220.0
)

// DefaultLight is the light position of the built-in scenes
var DefaultLight = core.NewVec3(0, 25, -135)

// DefaultTraceConfig returns the tracing parameters used by the built-in scenes
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxSteps:   DefaultMaxSteps,
		Ambient:    DefaultAmbient,
		ShadowBias: DefaultShadowBias,
		Fog: FogConfig{
			Near:  DefaultFogNear,
			Far:   DefaultFogFar,
			Color: core.NewVec3(0.7, 0.7, 0.7),
		},
	}
}

// Options controls how scenes are built
type Options struct {
	TexturePath string      // Image for sphere-textured materials; empty uses a procedural fallback
	NoiseSeed   int64       // Seed for noise patterns
	ScenesDir   string      // Directory searched for YAML scenes
	Logger      core.Logger // Defaults to the "scene" logger
}

func (o Options) logger() core.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New("scene")
}

// New creates an empty scene with default light and tracing parameters
func New(name string) *Scene {
	return &Scene{
		Name:     name,
		Light:    DefaultLight,
		Patterns: make(map[int]material.ColorSource),
		Config:   DefaultTraceConfig(),
	}
}

// Add appends a surface and returns its index
func (s *Scene) Add(surface geometry.Surface) int {
	s.Surfaces = append(s.Surfaces, surface)
	return len(s.Surfaces) - 1
}

// SetPattern attaches a color pattern to the surface at index
func (s *Scene) SetPattern(index int, pattern material.ColorSource) {
	if s.Patterns == nil {
		s.Patterns = make(map[int]material.ColorSource)
	}
	s.Patterns[index] = pattern
}

// Pattern returns the color pattern for the surface at index, if any
func (s *Scene) Pattern(index int) (material.ColorSource, bool) {
	p, ok := s.Patterns[index]
	return p, ok
}

// GetPrimitiveCount returns the number of surfaces in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Surfaces)
}
