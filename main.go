package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/rfoley/glimmer/cmd"
	"github.com/rfoley/glimmer/pkg/log"
)

func main() {
	app := cli.NewApp()
	app.Name = "glimmer"
	app.Usage = "render scenes with a recursive Monte Carlo ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render one of the built-in scenes. Scenes are defined programmatically;
output is a plain-text PPM (P3) raster or a PNG. Settings come from the
defaults, an optional YAML config file and command-line flags, in that
order of precedence.`,
			Action: cmd.RenderScene,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "weekend",
					Usage: "scene to render (see 'glimmer scenes')",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "image width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 225,
					Usage: "image height in pixels",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "maximum ray bounce depth (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "parallel render workers (0 = one per CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for reproducible renders",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image file for texture-mapped scenes",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.ppm",
					Usage: "output filename",
				},
				cli.StringFlag{
					Name:  "format",
					Value: "ppm",
					Usage: "output format: ppm or png",
				},
				cli.StringFlag{
					Name:  "config, c",
					Usage: "YAML config file with render settings",
				},
			},
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("glimmer").Error(err)
		os.Exit(1)
	}
}
