package scene

import (
	"fmt"

	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/geometry"
	"github.com/rfoley/glimmer/pkg/loaders"
	"github.com/rfoley/glimmer/pkg/material"
	"github.com/rfoley/glimmer/pkg/renderer"
)

// NewEarthScene builds a single image-textured globe. A missing or corrupt
// texture file fails here, at construction, never mid-render.
func NewEarthScene(opts Options) (*Scene, error) {
	if opts.TexturePath == "" {
		return nil, fmt.Errorf("earth scene requires a texture image (--texture)")
	}

	earthTexture, err := loaders.LoadImageTexture(opts.TexturePath)
	if err != nil {
		return nil, fmt.Errorf("earth scene: %w", err)
	}

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

	globe := material.NewTexturedLambertian(earthTexture)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, globe))

	return s, nil
}
