package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderConfig contains the execution parameters of a render
type RenderConfig struct {
	NumWorkers     int // Number of parallel workers (0 = use CPU count)
	BandsPerWorker int // Row bands queued per worker, for load balancing
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers:     0, // Auto-detect CPU count
		BandsPerWorker: 4,
	}
}

// Raytracer renders a scene into a PixelBuffer
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the Whitted integrator. A nil
// logger discards output.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      s,
		integrator: integrator.NewWhittedIntegrator(),
		config:     config,
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Render validates the scene and shades every pixel exactly once. Rows are
// split into bands that the worker pool renders in parallel; each band owns
// its rows of the buffer.
func (rt *Raytracer) Render(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	if err := rt.scene.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid scene: %w", err)
	}

	start := time.Now()
	opts := rt.scene.Options
	buffer := NewPixelBuffer(opts.Width, opts.Height)

	pool := NewWorkerPool(ctx, rt.config.NumWorkers)
	bands := NewRowBands(opts.Height, pool.GetNumWorkers()*max(1, rt.config.BandsPerWorker))
	bandRenderer := NewBandRenderer(rt.scene, rt.integrator)

	rt.logger.Printf("Rendering %dx%d (max depth %d) with %d workers over %d bands...\n",
		opts.Width, opts.Height, opts.MaxDepth, pool.GetNumWorkers(), len(bands))

	bandStats := make([]integrator.RayStats, len(bands))
	for i, band := range bands {
		pool.Submit(func(ctx context.Context) error {
			stats, err := bandRenderer.RenderBand(ctx, band, buffer)
			bandStats[i] = stats
			return err
		})
	}
	if err := pool.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	stats := RenderStats{
		TotalPixels:      opts.Width * opts.Height,
		Bands:            len(bands),
		Workers:          pool.GetNumWorkers(),
		AverageLuminance: buffer.AverageLuminance(),
		Duration:         time.Since(start),
	}
	for _, bs := range bandStats {
		stats.Rays.Merge(bs)
	}

	rt.logger.Printf("Render completed in %v: %d rays (%d shadow, %d reflection), %.0f rays/s\n",
		stats.Duration, stats.Rays.TotalRays(), stats.Rays.ShadowRays, stats.Rays.ReflectionRays, stats.RaysPerSecond())

	return buffer, stats, nil
}

// Render renders s with the default configuration and logger
func Render(ctx context.Context, s *scene.Scene) (*PixelBuffer, RenderStats, error) {
	return NewRaytracer(s, DefaultRenderConfig(), NewDefaultLogger()).Render(ctx)
}
