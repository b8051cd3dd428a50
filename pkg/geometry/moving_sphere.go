package geometry

import (
	"github.com/rfoley/glimmer/pkg/core"
)

// MovingSphere is a sphere whose center translates linearly between two
// positions over a shutter interval. Each ray intersects the sphere where it
// sits at the ray's own time, which is what produces motion blur.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere moving from center0 at time0 to center1 at time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the interpolated center position at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests if a ray intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return hitSphere(ray, s.CenterAt(ray.Time), s.Radius, s.Material, tMin, tMax)
}

// BoundingBox returns a box enclosing the sphere at both ends of the shutter
// interval, which covers every intermediate position as well
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(
		s.CenterAt(time0).Subtract(radius),
		s.CenterAt(time0).Add(radius),
	)
	box1 := core.NewAABB(
		s.CenterAt(time1).Subtract(radius),
		s.CenterAt(time1).Add(radius),
	)
	return box0.Union(box1), true
}
