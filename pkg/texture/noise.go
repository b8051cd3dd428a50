package texture

import (
	"math"

	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/noise"
)

// turbulenceDepth is the number of octaves summed for turbulence
const turbulenceDepth = 7

// NoiseStyle selects how raw Perlin noise is mapped to a color
type NoiseStyle int

const (
	// StylePlain remaps noise from [-1,1] to a [0,1] gray value
	StylePlain NoiseStyle = iota
	// StyleMarble modulates a sine along z with turbulence for a marble vein look
	StyleMarble
)

// Noise is a procedural texture driven by a Perlin generator
type Noise struct {
	Perlin *noise.Perlin
	Scale  float64
	Style  NoiseStyle
}

// NewNoise creates a plain noise texture with the given frequency scale
func NewNoise(perlin *noise.Perlin, scale float64) *Noise {
	return &Noise{Perlin: perlin, Scale: scale, Style: StylePlain}
}

// NewMarble creates a marble-style turbulence texture
func NewMarble(perlin *noise.Perlin, scale float64) *Noise {
	return &Noise{Perlin: perlin, Scale: scale, Style: StyleMarble}
}

// Value evaluates the noise field at a point
func (n *Noise) Value(u, v float64, point core.Vec3) core.Vec3 {
	white := core.NewVec3(1, 1, 1)

	switch n.Style {
	case StyleMarble:
		turb := n.Perlin.Turbulence(point, turbulenceDepth)
		return white.Multiply(0.5 * (1 + math.Sin(n.Scale*point.Z+10*turb)))
	default:
		return white.Multiply(0.5 * (1 + n.Perlin.Noise(point.Multiply(n.Scale))))
	}
}
