package scene

import (
	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/geometry"
	"github.com/rfoley/glimmer/pkg/log"
	"github.com/rfoley/glimmer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering. Built
// programmatically by the builders in this package; immutable once
// Preprocess has run.
type Scene struct {
	Camera           *renderer.Camera
	CameraConfig     renderer.CameraConfig
	Objects          *geometry.HittableList
	BackgroundTop    core.Vec3
	BackgroundBottom core.Vec3
	SamplingConfig   renderer.SamplingConfig

	bvh *geometry.BVHNode
}

// NewScene creates an empty scene with the given camera and background pair.
// Equal background colors give a constant background.
func NewScene(cameraConfig renderer.CameraConfig, top, bottom core.Vec3) *Scene {
	return &Scene{
		Camera:           renderer.NewCamera(cameraConfig),
		CameraConfig:     cameraConfig,
		Objects:          geometry.NewHittableList(),
		BackgroundTop:    top,
		BackgroundBottom: bottom,
		SamplingConfig:   renderer.DefaultSamplingConfig(),
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...core.Hittable) {
	s.Objects.Add(objects...)
}

// Preprocess builds the BVH over the scene's objects for the camera's
// shutter interval. Must be called before rendering.
func (s *Scene) Preprocess() error {
	bvh, err := geometry.NewBVH(s.Objects.Objects, s.CameraConfig.Time0, s.CameraConfig.Time1)
	if err != nil {
		return err
	}
	s.bvh = bvh

	stats := bvh.CollectStats()
	logger.Debugf("BVH built: %d nodes, %d leaves, max depth %d",
		stats.Nodes, stats.Leaves, stats.MaxDepth)

	return nil
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() (top, bottom core.Vec3) {
	return s.BackgroundTop, s.BackgroundBottom
}

// GetWorld implements renderer.Scene. Falls back to the linear list when
// Preprocess hasn't run, which the equivalence tests rely on.
func (s *Scene) GetWorld() core.Hittable {
	if s.bvh != nil {
		return s.bvh
	}
	return s.Objects
}
