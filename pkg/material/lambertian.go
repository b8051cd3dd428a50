package material

import (
	"math/rand"

	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/texture"
)

// Lambertian represents a diffuse material
type Lambertian struct {
	Albedo core.Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a lambertian material with a texture
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering.
// The scatter direction is the surface normal plus a random unit vector,
// which approximates a cosine-weighted distribution.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	scattered := core.Ray{
		Origin:    hit.Point,
		Direction: scatterDirection,
		Time:      rayIn.Time,
	}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
