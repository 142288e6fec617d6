package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int               // Pixels received by the coordinator so far
	TotalSamples    int               // Camera rays traced for those pixels
	SamplesPerPixel int               // Samples requested per pixel
	Workers         int               // Worker limit of the pool
	Bands           int               // Row bands the image was split into
	Elapsed         time.Duration     // Wall time from start to finish (or to now while rendering)
	BVH             geometry.BVHStats // Shape of the acceleration structure
}

// SamplesPerSecond returns the sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
