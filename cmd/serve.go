package cmd

import (
	"github.com/df07/go-whitted-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve starts the preview web server.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.NewServer(server.Config{
		Port:        ctx.Int("port"),
		ScenesDir:   ctx.String("scenes-dir"),
		TexturePath: ctx.String("texture"),
		NoiseSeed:   ctx.Int64("seed"),
	})
	return srv.Start()
}
