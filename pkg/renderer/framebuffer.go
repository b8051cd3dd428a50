package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/rfoley/glimmer/pkg/core"
)

// Framebuffer accumulates averaged linear pixel colors, row 0 at the top.
// Gamma correction and quantization happen on output, not during rendering.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// SetPixel stores the averaged linear color for a pixel
func (fb *Framebuffer) SetPixel(x, y int, color core.Vec3) {
	fb.Pixels[y*fb.Width+x] = color
}

// PixelAt returns the stored linear color for a pixel
func (fb *Framebuffer) PixelAt(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// WritePPM writes the image as a plain-text P3 PPM: header lines "P3",
// "<width> <height>" and "255", then one "r g b" line per pixel, rows
// top to bottom. Channels are gamma-2 corrected, clamped to [0, 0.999] and
// truncated after scaling by 256.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := quantize(fb.PixelAt(x, y))
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// RGBA converts the framebuffer into an image for PNG encoding
func (fb *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := quantize(fb.PixelAt(x, y))
			img.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}

// quantize applies gamma-2 correction, clamps each channel to [0, 0.999] and
// truncates after scaling to [0, 256)
func quantize(c core.Vec3) (r, g, b int) {
	corrected := core.NewVec3(
		math.Sqrt(c.X),
		math.Sqrt(c.Y),
		math.Sqrt(c.Z),
	).Clamp(0.0, 0.999)

	return int(256 * corrected.X), int(256 * corrected.Y), int(256 * corrected.Z)
}
