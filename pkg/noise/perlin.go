package noise

import (
	"math"
	"math/rand"

	"github.com/rfoley/glimmer/pkg/core"
)

const pointCount = 256

// Perlin is a gradient-noise generator: a fixed table of random unit vectors
// hashed through three independent axis permutations. Immutable once
// constructed, so a single instance can be shared across render workers.
type Perlin struct {
	randVec [pointCount]core.Vec3
	permX   [pointCount]int
	permY   [pointCount]int
	permZ   [pointCount]int
}

// NewPerlin creates a generator from the given random source. The same seed
// reproduces the same tables, and therefore the same noise field.
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := 0; i < pointCount; i++ {
		p.randVec[i] = core.RandomVec3InRange(-1, 1, random).Normalize()
	}
	generatePerm(&p.permX, random)
	generatePerm(&p.permY, random)
	generatePerm(&p.permZ, random)
	return p
}

// generatePerm fills perm with a Fisher-Yates shuffled identity permutation
func generatePerm(perm *[pointCount]int, random *rand.Rand) {
	for i := 0; i < pointCount; i++ {
		perm[i] = i
	}
	for i := pointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns gradient noise for a point, approximately in [-1, 1].
// Pure function: repeated calls with the same point return the same value.
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	// Gather the gradient vectors at the 8 corners of the lattice cell
	var corners [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				hash := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				corners[di][dj][dk] = p.randVec[hash]
			}
		}
	}

	return perlinInterp(corners, u, v, w)
}

// Turbulence returns a fractal sum of noise octaves at doubling frequencies
// and halving amplitudes
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	temp := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

// perlinInterp performs Hermite-smoothed trilinear interpolation of the
// corner gradients dotted with the offset from each corner to the sample
func perlinInterp(corners [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					corners[i][j][k].Dot(weight)
			}
		}
	}

	return accum
}
