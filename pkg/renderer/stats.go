package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of primary samples taken
	AverageSamples float64       // Average samples per pixel
	Workers        int           // Number of workers used
	Elapsed        time.Duration // Wall-clock render time
}
