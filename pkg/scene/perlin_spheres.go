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

// NewPerlinSpheresScene builds the marble test scene: a ground sphere and a
// hero sphere sharing one turbulence-noise material.
func NewPerlinSpheresScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: opts.AspectRatio,
	}

	s := NewScene(cameraConfig,
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(1.0, 1.0, 1.0),
	)

	random := rand.New(rand.NewSource(opts.Seed))
	marble := material.NewTexturedLambertian(
		texture.NewMarble(noise.NewPerlin(random), 4.0))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return s, nil
}
