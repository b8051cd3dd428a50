package renderer

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/log"
)

var logger = log.New("renderer")

// tMinHit offsets hit tests away from the ray origin to avoid
// self-intersection acne from floating-point rounding at scatter points
const tMinHit = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Workers         int   // Parallel render workers; <= 0 means one per CPU
	Seed            int64 // Base seed for per-row RNGs
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         0,
		Seed:            42,
	}
}

// Scene is what the raytracer needs from a scene: a camera, a background
// gradient pair (equal colors make a constant background) and the root of
// the hittable graph, typically a BVH.
type Scene interface {
	GetCamera() *Camera
	GetBackground() (top, bottom core.Vec3)
	GetWorld() core.Hittable
}

// Raytracer renders a scene with recursive Monte Carlo path tracing
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int, config SamplingConfig) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
	}
}

// backgroundGradient returns the scene background for a ray that hit nothing
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackground()

	unitDirection := r.Direction.Normalize()

	// Map direction y from [-1,1] to [0,1] and lerp bottom to top
	t := 0.5 * (unitDirection.Y + 1.0)
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// RayColor is the recursive light-transport estimator: emitted light plus
// attenuated recursion along the scattered ray, one path sample per call
// chain. Depth exhaustion returns black, bounding worst-case recursion.
func (rt *Raytracer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.GetWorld().Hit(r, tMinHit, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	emitted := core.Vec3{}
	if emitter, ok := hit.Material.(core.Emitter); ok {
		emitted = emitter.Emit(hit.U, hit.V, hit.Point)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		// Absorption terminates the path; only the emitted term remains
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(
		rt.RayColor(scatter.Scattered, depth-1, random)))
}

// renderRow renders one scanline into the framebuffer. Row y counts from the
// top of the image; the camera's t coordinate runs bottom-up.
func (rt *Raytracer) renderRow(y int, fb *Framebuffer) RowResult {
	random := rand.New(rand.NewSource(rt.config.Seed + int64(y)))
	camera := rt.scene.GetCamera()
	j := rt.height - 1 - y

	samples := 0
	for i := 0; i < rt.width; i++ {
		accum := core.Vec3{}

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			s := (float64(i) + random.Float64()) / float64(rt.width)
			t := (float64(j) + random.Float64()) / float64(rt.height)

			ray := camera.GetRay(s, t, random)
			accum = accum.Add(rt.RayColor(ray, rt.config.MaxDepth, random))
			samples++
		}

		fb.SetPixel(i, y, accum.Multiply(1.0/float64(rt.config.SamplesPerPixel)))
	}

	return RowResult{Row: y, Samples: samples}
}

// Render renders the full image, parallelized across scanlines. The context
// is checked between rows; cancellation aborts the render and returns the
// context error.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	fb := NewFramebuffer(rt.width, rt.height)

	pool := NewWorkerPool(rt.config.Workers, rt.height)
	pool.Start(func(row int) RowResult {
		if err := ctx.Err(); err != nil {
			return RowResult{Row: row, Err: err}
		}
		return rt.renderRow(row, fb)
	})

	logger.Infof("rendering %dx%d, %d samples/pixel, depth %d, %d workers",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.NumWorkers())

	go func() {
		for y := 0; y < rt.height; y++ {
			pool.Submit(y)
		}
		pool.Close()
	}()

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		Workers:     pool.NumWorkers(),
	}

	remaining := rt.height
	var renderErr error
	for result := range pool.Results() {
		if result.Err != nil && renderErr == nil {
			renderErr = result.Err
		}
		stats.TotalSamples += result.Samples
		remaining--
		logger.Debugf("scanlines remaining: %d", remaining)
	}

	if renderErr != nil {
		return nil, stats, renderErr
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.Elapsed = time.Since(start)
	logger.Infof("render completed in %v", stats.Elapsed)

	return fb, stats, nil
}
