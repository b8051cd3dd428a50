package cmd

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/rfoley/glimmer/pkg/config"
	"github.com/rfoley/glimmer/pkg/renderer"
	"github.com/rfoley/glimmer/pkg/scene"
)

// RenderScene renders a named scene to a PPM or PNG file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	info, err := scene.Get(cfg.Render.Scene)
	if err != nil {
		return err
	}

	sc, err := info.Build(scene.Options{
		AspectRatio: float64(cfg.Render.Width) / float64(cfg.Render.Height),
		Seed:        cfg.Render.Seed,
		TexturePath: ctx.String("texture"),
	})
	if err != nil {
		return err
	}

	if err := sc.Preprocess(); err != nil {
		return fmt.Errorf("scene preprocessing failed: %w", err)
	}

	// Explicit settings win over the scene's recommendations
	sampling := sc.SamplingConfig
	if cfg.Render.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = cfg.Render.SamplesPerPixel
	}
	if cfg.Render.MaxDepth > 0 {
		sampling.MaxDepth = cfg.Render.MaxDepth
	}
	sampling.Workers = cfg.Render.Workers
	sampling.Seed = cfg.Render.Seed

	// Interrupt aborts between scanlines
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt := renderer.NewRaytracer(sc, cfg.Render.Width, cfg.Render.Height, sampling)
	fb, stats, err := rt.Render(renderCtx)
	if err != nil {
		return fmt.Errorf("render aborted: %w", err)
	}

	if err := writeOutput(fb, cfg.Output); err != nil {
		return err
	}

	logger.Infof("wrote %s (%d pixels, %.1f samples/pixel, %v)",
		cfg.Output.Path, stats.TotalPixels, stats.AverageSamples, stats.Elapsed)

	return nil
}

// loadConfig resolves the effective configuration: defaults, then the
// optional config file, then command-line flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	if path := ctx.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if ctx.IsSet("scene") {
		cfg.Render.Scene = ctx.String("scene")
	}
	if ctx.IsSet("width") {
		cfg.Render.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Render.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		cfg.Render.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("max-depth") {
		cfg.Render.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("workers") {
		cfg.Render.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		cfg.Render.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("out") {
		cfg.Output.Path = ctx.String("out")
	}
	if ctx.IsSet("format") {
		cfg.Output.Format = ctx.String("format")
	}

	return cfg, cfg.Validate()
}

// writeOutput encodes the framebuffer in the configured format
func writeOutput(fb *renderer.Framebuffer, out config.OutputConfig) error {
	file, err := os.Create(out.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch out.Format {
	case "png":
		return png.Encode(file, fb.RGBA())
	default:
		return fb.WritePPM(file)
	}
}
