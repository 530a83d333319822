package cmd

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// RenderFrame renders a single frame of a scene to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Load(ctx.String("scene"), sceneOptions(ctx))
	if err != nil {
		return err
	}
	if log.Enabled(log.Debug) {
		logSceneSurfaces(sc)
	}

	opts := renderer.DefaultOptions()
	opts.Size = ctx.Int("size")
	opts.Antialias = ctx.Bool("aa")
	opts.Fog = ctx.Bool("fog")
	opts.MaxSteps = ctx.Int("max-steps")
	opts.NumWorkers = ctx.Int("workers")
	if tileSize := ctx.Int("tile-size"); tileSize > 0 {
		opts.TileSize = tileSize
	}

	rt, err := renderer.NewRaytracer(sc, opts, logger)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := savePNG(out, img); err != nil {
		return err
	}

	logger.Noticef("frame statistics\n%s", stats.Table())
	logger.Noticef("wrote %s", out)
	return nil
}

// logSceneSurfaces dumps one line per surface with its shading flags
func logSceneSurfaces(sc *scene.Scene) {
	logger.Debugf("scene %s: light %v, %d surfaces", sc.Name, sc.Light, len(sc.Surfaces))
	for i, surface := range sc.Surfaces {
		mat := surface.Material()
		_, patterned := sc.Pattern(i)
		logger.Debugf("  [%d] %T color=%v specular=%t reflective=%t refractive=%t transparent=%t pattern=%t",
			i, surface, mat.Color, mat.Specular, mat.Reflective, mat.Refractive, mat.Transparent, patterned)
	}
}

func sceneOptions(ctx *cli.Context) scene.Options {
	return scene.Options{
		TexturePath: ctx.String("texture"),
		NoiseSeed:   ctx.Int64("seed"),
		ScenesDir:   ctx.String("scenes-dir"),
		Logger:      logger,
	}
}

func savePNG(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return f.Close()
}
