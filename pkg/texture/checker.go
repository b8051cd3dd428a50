package texture

import (
	"math"

	"github.com/rfoley/glimmer/pkg/core"
)

// Checker alternates between two sub-textures on a 3D checkerboard. The
// pattern lives in world space, not UV space, so it stays continuous across
// seams between primitives.
type Checker struct {
	Odd  core.Texture
	Even core.Texture
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(odd, even core.Texture) *Checker {
	return &Checker{Odd: odd, Even: even}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(odd, even core.Vec3) *Checker {
	return &Checker{Odd: NewSolidColor(odd), Even: NewSolidColor(even)}
}

// Value selects a sub-texture by the sign of sin(10x)*sin(10y)*sin(10z)
func (c *Checker) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}
