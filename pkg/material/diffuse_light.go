package material

import (
	"math/rand"

	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/texture"
)

// DiffuseLight is a light-emitting material. It never scatters; rays that
// reach it terminate with the emission value.
type DiffuseLight struct {
	Emission core.Texture
}

// NewDiffuseLight creates an emissive material with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emissive material with a textured emission
func NewTexturedDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface; emissive materials absorb all
// incoming rays
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit implements the Emitter interface
func (d *DiffuseLight) Emit(u, v float64, point core.Vec3) core.Vec3 {
	return d.Emission.Value(u, v, point)
}
