package main

import (
	"fmt"
	"os"

	"github.com/df07/go-whitted-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes using recursive Whitted ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}

	sceneFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "scenes-dir",
			Value: "scenes",
			Usage: "directory searched for YAML scene files",
		},
		cli.StringFlag{
			Name:  "texture",
			Usage: "image (BMP, PNG or JPEG) used by sphere-textured materials",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the noise wall pattern",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Trace one primary ray per pixel (four with --aa) through a square image plane
and write the result as a PNG. Scenes are either built-in ("cosc", "mirrors"),
"yaml:<name>" for a file in the scenes directory, or a path to a YAML file.`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cosc",
					Usage: "scene to render",
				},
				cli.IntFlag{
					Name:  "size",
					Value: 500,
					Usage: "image width and height in pixels",
				},
				cli.BoolFlag{
					Name:  "aa",
					Usage: "enable 4x antialiasing",
				},
				cli.BoolFlag{
					Name:  "fog",
					Usage: "enable depth fog",
				},
				cli.IntFlag{
					Name:  "max-steps",
					Usage: "override the scene's recursion limit",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 uses all CPUs)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "tile edge in pixels",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			}, sceneFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Flags:  sceneFlags[:1],
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "start the preview web server",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to serve on",
				},
			}, sceneFlags...),
			Action: cmd.Serve,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
