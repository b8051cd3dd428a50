package scene

import (
	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/geometry"
	"github.com/rfoley/glimmer/pkg/material"
	"github.com/rfoley/glimmer/pkg/renderer"
)

// NewCornellScene builds the classic Cornell box: five diffuse walls and a
// bright ceiling light, black background. Best rendered square.
func NewCornellScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: opts.AspectRatio,
	}

	s := NewScene(cameraConfig, core.Vec3{}, core.Vec3{})
	s.SamplingConfig.SamplesPerPixel = 200

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	s.Add(
		geometry.NewYZRect(0, 555, 0, 555, 555, green), // left wall
		geometry.NewYZRect(0, 555, 0, 555, 0, red),     // right wall
		geometry.NewXZRect(213, 343, 227, 332, 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),   // floor
		geometry.NewXZRect(0, 555, 0, 555, 555, white), // ceiling
		geometry.NewXYRect(0, 555, 0, 555, 555, white), // back wall
	)

	return s, nil
}
