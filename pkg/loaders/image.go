package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/rfoley/glimmer/pkg/core"
	"github.com/rfoley/glimmer/pkg/texture"
)

// LoadImageTexture decodes a raster image file into an image texture.
// Format is auto-detected from the file header (PNG, JPEG, BMP, TIFF).
// Errors surface here, at scene construction time, never mid-render.
func LoadImageTexture(filename string) (*texture.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", filename, err)
	}

	return textureFromImage(img), nil
}

// textureFromImage converts a decoded image into linear Vec3 pixel data
func textureFromImage(img image.Image) *texture.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return texture.NewImage(width, height, pixels)
}
