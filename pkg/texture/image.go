package texture

import (
	"github.com/rfoley/glimmer/pkg/core"
)

// Image samples a decoded raster image with nearest-neighbor filtering
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImage creates an image texture from decoded pixel data
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the image at given UV coordinates. U and V are clamped to
// [0,1] and V is flipped to match image row ordering (row 0 is the top).
func (t *Image) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		// No data: solid cyan marks the missing texture
		return core.NewVec3(0, 1, 1)
	}

	u = max(0.0, min(1.0, u))
	v = 1.0 - max(0.0, min(1.0, v))

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
