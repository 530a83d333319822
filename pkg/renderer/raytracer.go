package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Options contains rendering configuration
type Options struct {
	Size       int  // Image width and height in pixels, one image plane cell each
	Antialias  bool // Average four rays per pixel
	Fog        bool // Force depth fog on
	MaxSteps   int  // Override the scene's recursion bound (0 keeps it)
	TileSize   int  // Size of each tile
	NumWorkers int  // Number of parallel workers (0 = use CPU count)
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Size:       DefaultDivisions,
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer renders a scene through the image plane camera
type Raytracer struct {
	scene  *scene.Scene
	tracer *integrator.Tracer
	camera *Camera
	opts   Options
	logger core.Logger
}

// NewRaytracer creates a raytracer for the scene
func NewRaytracer(s *scene.Scene, opts Options, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, ErrNoScene
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidResolution, opts.Size)
	}
	if opts.TileSize <= 0 {
		opts.TileSize = DefaultOptions().TileSize
	}

	tracer := integrator.NewTracer(s)
	if opts.MaxSteps > 0 {
		tracer.MaxSteps = opts.MaxSteps
	}
	if opts.Fog {
		tracer.Fog.Enabled = true
	}

	return &Raytracer{
		scene:  s,
		tracer: tracer,
		camera: NewCamera(opts.Size),
		opts:   opts,
		logger: logger,
	}, nil
}

// Tracer returns the integrator used for primary rays
func (rt *Raytracer) Tracer() *integrator.Tracer {
	return rt.tracer
}

// Render traces every pixel on a pool of workers, one tile per task. It
// returns early with the context's error if ctx is cancelled.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	size := rt.opts.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	tiles := NewTileGrid(size, size, rt.opts.TileSize)

	tileRenderer := NewTileRenderer(rt.camera, rt.tracer, rt.opts.Antialias)
	pool := NewWorkerPool(tileRenderer, len(tiles), rt.opts.NumWorkers)
	rt.tracer.ResetStats()

	rt.logger.Infof("Rendering %s at %dx%d: %d tiles on %d workers (antialias=%t, max steps=%d, fog=%t)",
		rt.scene.Name, size, size, len(tiles), pool.GetNumWorkers(),
		rt.opts.Antialias, rt.tracer.MaxSteps, rt.tracer.Fog.Enabled)

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Ctx: ctx, Tile: tile, TaskID: i, Image: img})
	}

	stats := RenderStats{
		Scene:     rt.scene.Name,
		Width:     size,
		Height:    size,
		Antialias: rt.opts.Antialias,
		Workers:   pool.GetNumWorkers(),
		Tiles:     len(tiles),
		MaxSteps:  rt.tracer.MaxSteps,
	}

	var renderErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.TotalPixels += result.Stats.Pixels
		stats.TotalSamples += result.Stats.Samples
	}
	pool.Stop()

	if renderErr != nil {
		return nil, stats, fmt.Errorf("render of %s aborted: %w", rt.scene.Name, renderErr)
	}

	traced := rt.tracer.Stats()
	stats.PrimaryRays = traced.PrimaryRays
	stats.SecondaryRays = traced.SecondaryRays
	stats.ShadowRays = traced.ShadowRays
	stats.MaxStep = traced.MaxStep
	stats.AvgLuminance = CalculateAverageLuminance(img)
	stats.Duration = time.Since(start)

	rt.logger.Infof("Rendered %d pixels in %v", stats.TotalPixels, stats.Duration.Round(time.Millisecond))
	return img, stats, nil
}
