package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int                 // Total number of pixels rendered
	Bands            int                 // Number of row bands the image was split into
	Workers          int                 // Number of parallel workers used
	Rays             integrator.RayStats // Merged counters from every band
	AverageLuminance float64             // Mean luminance of the finished image
	Duration         time.Duration       // Wall-clock render time
}

// RaysPerSecond returns the traced ray throughput
func (rs RenderStats) RaysPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.Rays.TotalRays()) / rs.Duration.Seconds()
}
