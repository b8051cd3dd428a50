package renderer

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/geometry"
	"github.com/rfoley/glimmer/pkg/material"
)

// testScene is a minimal renderer.Scene for integration tests
type testScene struct {
	camera *Camera
	top    core.Vec3
	bottom core.Vec3
	world  core.Hittable
}

func (s *testScene) GetCamera() *Camera                     { return s.camera }
func (s *testScene) GetBackground() (top, bottom core.Vec3) { return s.top, s.bottom }
func (s *testScene) GetWorld() core.Hittable                { return s.world }

func newTestScene(world core.Hittable, top, bottom core.Vec3) *testScene {
	return &testScene{
		camera: NewCamera(basicCameraConfig()),
		top:    top,
		bottom: bottom,
		world:  world,
	}
}

func TestRayColor_DepthExhaustedIsBlack(t *testing.T) {
	scene := newTestScene(geometry.NewHittableList(), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1))
	rt := NewRaytracer(scene, 4, 4, DefaultSamplingConfig())
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := rt.RayColor(ray, 0, random); got != (core.Vec3{}) {
		t.Errorf("depth 0 should return black, got %v", got)
	}
}

func TestRayColor_MissReturnsBackgroundGradient(t *testing.T) {
	top := core.NewVec3(0.5, 0.7, 1)
	bottom := core.NewVec3(1, 1, 1)
	scene := newTestScene(geometry.NewHittableList(), top, bottom)
	rt := NewRaytracer(scene, 4, 4, DefaultSamplingConfig())
	random := rand.New(rand.NewSource(42))

	// Straight up: blend factor 1, pure top color
	up := rt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), 10, random)
	if up.Subtract(top).Length() > tolerance {
		t.Errorf("upward miss = %v, want %v", up, top)
	}

	// Straight down: pure bottom color
	down := rt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), 10, random)
	if down.Subtract(bottom).Length() > tolerance {
		t.Errorf("downward miss = %v, want %v", down, bottom)
	}

	// Horizontal: even blend
	mid := rt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), 10, random)
	expected := top.Add(bottom).Multiply(0.5)
	if mid.Subtract(expected).Length() > tolerance {
		t.Errorf("horizontal miss = %v, want %v", mid, expected)
	}

	// The blend uses the normalized direction, not its raw length
	longMid := rt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(100, 0, 0)), 10, random)
	if longMid.Subtract(expected).Length() > tolerance {
		t.Errorf("direction length should not affect background, got %v", longMid)
	}
}

func TestRayColor_EmitterTerminatesPath(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewDiffuseLight(emission)),
	)
	scene := newTestScene(world, core.Vec3{}, core.Vec3{})
	rt := NewRaytracer(scene, 4, 4, DefaultSamplingConfig())
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := rt.RayColor(ray, 10, random); got != emission {
		t.Errorf("hit on emitter = %v, want %v", got, emission)
	}
}

func TestRayColor_AbsorbingSceneIsBlack(t *testing.T) {
	// Diffuse geometry under a black sky gathers no light at all
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))),
	)
	scene := newTestScene(world, core.Vec3{}, core.Vec3{})
	rt := NewRaytracer(scene, 4, 4, DefaultSamplingConfig())
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := rt.RayColor(ray, 20, random)
	if got.Length() > tolerance {
		t.Errorf("black background with no emitters must render black, got %v", got)
	}
}

func TestRender_ConstantBackground(t *testing.T) {
	background := core.NewVec3(0.5, 0.25, 1)
	scene := newTestScene(geometry.NewHittableList(), background, background)
	rt := NewRaytracer(scene, 4, 4, SamplingConfig{
		SamplesPerPixel: 8,
		MaxDepth:        5,
		Workers:         2,
		Seed:            42,
	})

	fb, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := fb.PixelAt(x, y)
			if got.Subtract(background).Length() > 1e-12 {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, background)
			}
		}
	}

	if stats.TotalPixels != 16 {
		t.Errorf("TotalPixels = %d, want 16", stats.TotalPixels)
	}
	if stats.TotalSamples != 16*8 {
		t.Errorf("TotalSamples = %d, want %d", stats.TotalSamples, 16*8)
	}
	if math.Abs(stats.AverageSamples-8) > tolerance {
		t.Errorf("AverageSamples = %v, want 8", stats.AverageSamples)
	}
	if stats.Workers != 2 {
		t.Errorf("Workers = %d, want 2", stats.Workers)
	}
}

func TestRender_EmissiveSphereFillsCenterPixel(t *testing.T) {
	// A radius-1 emitter two units ahead subtends well past the center
	// pixel's cone at vfov 90, so every center-pixel sample hits it
	emission := core.NewVec3(0.7, 0.1, 0.1)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewDiffuseLight(emission)),
	)
	scene := newTestScene(world, core.Vec3{}, core.Vec3{})
	rt := NewRaytracer(scene, 3, 3, SamplingConfig{
		SamplesPerPixel: 16,
		MaxDepth:        5,
		Workers:         1,
		Seed:            42,
	})

	fb, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	center := fb.PixelAt(1, 1)
	if center.Subtract(emission).Length() > 1e-12 {
		t.Errorf("center pixel = %v, want %v", center, emission)
	}

	// A corner pixel sees mostly black sky around the sphere
	corner := fb.PixelAt(0, 0)
	if corner.Luminance() >= center.Luminance() {
		t.Errorf("corner %v should be darker than center %v", corner, center)
	}
}

func TestRayColor_EnergyBoundedByDepth(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	scene := newTestScene(world, core.Vec3{}, core.Vec3{})
	rt := NewRaytracer(scene, 4, 4, DefaultSamplingConfig())
	random := rand.New(rand.NewSource(42))

	// No emitters and a black sky: every depth gathers exactly nothing
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for depth := 0; depth <= 8; depth++ {
		c := rt.RayColor(ray, depth, random)
		if c.X < 0 || c.Y < 0 || c.Z < 0 {
			t.Fatalf("depth %d produced negative energy %v", depth, c)
		}
		if c.Length() > tolerance {
			t.Fatalf("depth %d should be black, got %v", depth, c)
		}
	}
}

func TestRender_RedSphereAgainstGradient(t *testing.T) {
	// Depth 1 makes every hit black (the recursion returns black before any
	// bounce gathers light), so each pixel is either black or exactly the
	// background gradient. Replaying the per-row RNG predicts which.
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.NewVec3(0.9, 0.1, 0.1)))
	top := core.NewVec3(0.5, 0.7, 1)
	bottom := core.NewVec3(1, 1, 1)
	scene := newTestScene(geometry.NewHittableList(sphere), top, bottom)

	const size = 3
	rt := NewRaytracer(scene, size, size, SamplingConfig{
		SamplesPerPixel: 1,
		MaxDepth:        1,
		Workers:         1,
		Seed:            42,
	})

	fb, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	camera := scene.GetCamera()
	for y := 0; y < size; y++ {
		random := rand.New(rand.NewSource(42 + int64(y)))
		j := size - 1 - y

		for x := 0; x < size; x++ {
			s := (float64(x) + random.Float64()) / size
			tc := (float64(j) + random.Float64()) / size
			ray := camera.GetRay(s, tc, random)

			var expected core.Vec3
			if _, isHit := sphere.Hit(ray, 0.001, math.Inf(1)); isHit {
				// Mirror the lambertian scatter's two RNG draws
				random.Float64()
				random.Float64()
			} else {
				unit := ray.Direction.Normalize()
				blend := 0.5 * (unit.Y + 1)
				expected = bottom.Multiply(1 - blend).Add(top.Multiply(blend))
			}

			got := fb.PixelAt(x, y)
			if got.Subtract(expected).Length() > 1e-12 {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, expected)
			}
		}
	}

	// The center pixel's ray cannot miss a sphere this large
	if center := fb.PixelAt(1, 1); center != (core.Vec3{}) {
		t.Errorf("center pixel = %v, want black at depth 1", center)
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	build := func(workers int) *Framebuffer {
		world := geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
			geometry.NewSphere(core.NewVec3(0, -100.5, -2), 100, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.2)),
		)
		scene := newTestScene(world, core.NewVec3(0.5, 0.7, 1), core.NewVec3(1, 1, 1))
		rt := NewRaytracer(scene, 8, 6, SamplingConfig{
			SamplesPerPixel: 4,
			MaxDepth:        8,
			Workers:         workers,
			Seed:            7,
		})
		fb, _, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		return fb
	}

	serial := build(1)
	parallel := build(4)

	for i := range serial.Pixels {
		if serial.Pixels[i] != parallel.Pixels[i] {
			t.Fatalf("pixel %d differs across worker counts: %v vs %v",
				i, serial.Pixels[i], parallel.Pixels[i])
		}
	}
}

func TestRender_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scene := newTestScene(geometry.NewHittableList(), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1))
	rt := NewRaytracer(scene, 16, 16, SamplingConfig{
		SamplesPerPixel: 4,
		MaxDepth:        5,
		Workers:         2,
		Seed:            42,
	})

	if _, _, err := rt.Render(ctx); err == nil {
		t.Error("render under a canceled context should fail")
	}
}
