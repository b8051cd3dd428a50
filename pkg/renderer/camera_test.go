package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rfoley/glimmer/pkg/core"
)

const tolerance = 1e-9

func basicCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1,
		Time0:       0,
		Time1:       1,
	}
}

func TestCamera_Forward(t *testing.T) {
	camera := NewCamera(basicCameraConfig())

	forward := camera.GetCameraForward()
	if forward.Subtract(core.NewVec3(0, 0, -1)).Length() > tolerance {
		t.Errorf("forward = %v, want (0,0,-1)", forward)
	}
}

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(basicCameraConfig())
	random := rand.New(rand.NewSource(42))

	ray := camera.GetRay(0.5, 0.5, random)

	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("pinhole camera origin = %v, want look-from", ray.Origin)
	}

	direction := ray.Direction.Normalize()
	if direction.Subtract(core.NewVec3(0, 0, -1)).Length() > tolerance {
		t.Errorf("center ray direction = %v, want (0,0,-1)", direction)
	}
}

func TestCamera_CornerRays(t *testing.T) {
	camera := NewCamera(basicCameraConfig())
	random := rand.New(rand.NewSource(42))

	// vfov 90 at aspect 1: the viewport edges sit at 45 degrees
	top := camera.GetRay(0.5, 1, random).Direction.Normalize()
	if math.Abs(top.Y-1/math.Sqrt(2)) > tolerance {
		t.Errorf("top edge ray y = %v, want sin(45deg)", top.Y)
	}

	bottom := camera.GetRay(0.5, 0, random).Direction.Normalize()
	if math.Abs(bottom.Y+1/math.Sqrt(2)) > tolerance {
		t.Errorf("bottom edge ray y = %v, want -sin(45deg)", bottom.Y)
	}
}

func TestCamera_RayTimeWithinShutter(t *testing.T) {
	config := basicCameraConfig()
	config.Time0 = 0.25
	config.Time1 = 0.75
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		if ray.Time < 0.25 || ray.Time >= 0.75 {
			t.Fatalf("ray time %v outside shutter [0.25, 0.75)", ray.Time)
		}
	}
}

func TestCamera_InstantShutter(t *testing.T) {
	config := basicCameraConfig()
	config.Time0 = 0.5
	config.Time1 = 0.5
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		if ray := camera.GetRay(0.3, 0.7, random); ray.Time != 0.5 {
			t.Fatalf("zero-width shutter should stamp time 0.5, got %v", ray.Time)
		}
	}
}

func TestCamera_ApertureJittersOrigin(t *testing.T) {
	config := basicCameraConfig()
	config.LookFrom = core.NewVec3(0, 0, 5)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.Aperture = 2
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	jittered := false
	for i := 0; i < 50; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() > 1+tolerance {
			t.Fatalf("lens offset %v exceeds lens radius", offset.Length())
		}
		if offset.Length() > tolerance {
			jittered = true
		}
		if math.Abs(offset.Z) > tolerance {
			t.Fatalf("lens offset must stay in the camera plane, got z=%v", offset.Z)
		}
	}
	if !jittered {
		t.Error("aperture > 0 should jitter ray origins")
	}
}

func TestCamera_FocusDistanceAuto(t *testing.T) {
	explicit := basicCameraConfig()
	explicit.LookFrom = core.NewVec3(0, 0, 7)
	explicit.LookAt = core.NewVec3(0, 0, 0)
	explicit.FocusDistance = 7

	auto := explicit
	auto.FocusDistance = 0

	rayA := NewCamera(explicit).GetRay(0.3, 0.8, rand.New(rand.NewSource(1)))
	rayB := NewCamera(auto).GetRay(0.3, 0.8, rand.New(rand.NewSource(1)))

	if rayA.Direction.Subtract(rayB.Direction).Length() > tolerance {
		t.Errorf("auto focus distance should match the look-at distance: %v vs %v",
			rayA.Direction, rayB.Direction)
	}
}

func TestCamera_RaysConvergeAtFocusPlane(t *testing.T) {
	config := basicCameraConfig()
	config.LookFrom = core.NewVec3(0, 0, 5)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.Aperture = 1
	config.FocusDistance = 5
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	// Every lens sample aimed at the viewport center passes through the
	// same point on the focus plane
	target := core.NewVec3(0, 0, 0)
	for i := 0; i < 50; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		tPlane := (config.LookFrom.Z - config.FocusDistance - ray.Origin.Z) / ray.Direction.Z
		at := ray.At(tPlane)
		if at.Subtract(target).Length() > 1e-6 {
			t.Fatalf("ray misses focus point: %v", at)
		}
	}
}
