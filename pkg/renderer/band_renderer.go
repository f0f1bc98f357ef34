package renderer

import (
	"context"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RowBand is a half-open range of image rows [MinY, MaxY)
type RowBand struct {
	MinY int
	MaxY int
}

// NewRowBands splits height rows into at most numBands contiguous bands
// whose sizes differ by at most one row
func NewRowBands(height, numBands int) []RowBand {
	if height <= 0 {
		return nil
	}
	numBands = max(1, min(numBands, height))

	bands := make([]RowBand, 0, numBands)
	base, extra := height/numBands, height%numBands
	y := 0
	for i := 0; i < numBands; i++ {
		size := base
		if i < extra {
			size++
		}
		bands = append(bands, RowBand{MinY: y, MaxY: y + size})
		y += size
	}
	return bands
}

// BandRenderer shades the pixels of one row band with an integrator
type BandRenderer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
}

// NewBandRenderer creates a band renderer for the given scene and integrator
func NewBandRenderer(s *scene.Scene, integratorInst integrator.Integrator) *BandRenderer {
	return &BandRenderer{
		scene:      s,
		camera:     s.NewCamera(),
		integrator: integratorInst,
	}
}

// RenderBand writes every pixel in band to buffer. Bands never overlap, so
// concurrent calls on distinct bands need no locking. Cancellation is
// checked between rows.
func (br *BandRenderer) RenderBand(ctx context.Context, band RowBand, buffer *PixelBuffer) (integrator.RayStats, error) {
	var stats integrator.RayStats
	for y := band.MinY; y < band.MaxY; y++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		row := buffer.Row(y)
		for x := range row {
			ray := br.camera.GetRay(x, y)
			row[x] = br.integrator.RayColor(ray, br.scene, &stats)
		}
	}
	return stats, nil
}
