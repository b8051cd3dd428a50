package core

import "math/rand"

// Hittable is the surface abstraction: anything a ray can intersect.
// BoundingBox reports false when the object cannot be bounded over the given
// shutter interval (empty aggregates).
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Material decides whether and how an incoming ray scatters off a surface
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light. Materials that do not
// implement it emit black.
type Emitter interface {
	Emit(u, v float64, point Vec3) Vec3
}

// Texture maps surface coordinates and a 3D point to a color
type Texture interface {
	Value(u, v float64, point Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, always opposing the ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface texture coordinates
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
