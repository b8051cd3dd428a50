package scene

import (
	"math/rand"

	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/geometry"
	"github.com/rfoley/glimmer/pkg/material"
	"github.com/rfoley/glimmer/pkg/noise"
	"github.com/rfoley/glimmer/pkg/renderer"
	"github.com/rfoley/glimmer/pkg/texture"
)

// NewSimpleLightScene builds the first emissive scene of the journal: the
// marble spheres lit only by a rectangle light and a small sphere light
// against a black background. Emission values above 1 let the lights carry
// enough energy to illuminate the rest of the scene.
func NewSimpleLightScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: opts.AspectRatio,
	}

	// Black background: all light comes from the emissive surfaces
	s := NewScene(cameraConfig, core.Vec3{}, core.Vec3{})
	s.SamplingConfig.SamplesPerPixel = 400

	random := rand.New(rand.NewSource(opts.Seed))
	marble := material.NewTexturedLambertian(
		texture.NewMarble(noise.NewPerlin(random), 4.0))

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	return s, nil
}
