package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds the command line options. Zero numeric values keep the
// scene's own settings.
type Config struct {
	SceneType  string
	Width      int
	Height     int
	FOVDegrees float64
	MaxDepth   int
	NumWorkers int
	Format     string
	Gamma      float64
	OutputPath string
}

func main() {
	var config Config
	flag.StringVar(&config.SceneType, "scene", "default", "Scene to render (see -list)")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.Float64Var(&config.FOVDegrees, "fov", 0, "Vertical field of view in degrees (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "max-depth", -1, "Maximum reflection depth (-1 = scene default)")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Format, "format", "png", "Output format: 'png' or 'ppm'")
	flag.Float64Var(&config.Gamma, "gamma", 2.0, "Gamma applied when writing 8-bit output (1 = linear)")
	flag.StringVar(&config.OutputPath, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()
	defer glog.Flush()

	if *help {
		showHelp()
		return
	}
	if *list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-12s %s\n", info.ID, info.Description)
		}
		return
	}

	glog.CopyStandardLogTo("INFO")

	path, err := run(context.Background(), config, time.Now())
	if err != nil {
		glog.Errorf("Render failed: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Infof("Render saved as %s", path)
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-12s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format> unless -output is set")
}

// run renders the configured scene and writes the image, returning its path
func run(ctx context.Context, config Config, now time.Time) (string, error) {
	format, err := normalizeFormat(config.Format)
	if err != nil {
		return "", err
	}

	s, err := createScene(config)
	if err != nil {
		return "", err
	}

	raytracer := renderer.NewRaytracer(s, renderer.RenderConfig{
		NumWorkers:     config.NumWorkers,
		BandsPerWorker: renderer.DefaultRenderConfig().BandsPerWorker,
	}, renderer.NewDefaultLogger())

	buffer, stats, err := raytracer.Render(ctx)
	if err != nil {
		return "", err
	}
	glog.Infof("%d pixels, %d castRay calls, average luminance %.3f",
		stats.TotalPixels, stats.Rays.CastRayCalls, stats.AverageLuminance)

	path := config.OutputPath
	if path == "" {
		path = defaultOutputPath(strings.ToLower(strings.TrimSpace(config.SceneType)), format, now)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := writeImage(path, format, buffer.ToRGBA(config.Gamma)); err != nil {
		return "", err
	}
	return path, nil
}

// createScene builds the named scene and applies the command line overrides
func createScene(config Config) (*scene.Scene, error) {
	s, err := scene.Create(config.SceneType)
	if err != nil {
		return nil, err
	}

	if config.Width > 0 {
		s.Options.Width = config.Width
	}
	if config.Height > 0 {
		s.Options.Height = config.Height
	}
	if config.FOVDegrees > 0 {
		s.Options.FieldOfView = core.DegreesToRadians(config.FOVDegrees)
	}
	if config.MaxDepth >= 0 {
		s.Options.MaxDepth = config.MaxDepth
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options for scene %q: %w", config.SceneType, err)
	}
	return s, nil
}

func normalizeFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "png", "ppm":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use png or ppm)", format)
	}
}

func defaultOutputPath(sceneType, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s.%s", timestamp, format))
}

func writeImage(path, format string, img image.Image) error {
	if format == "ppm" {
		return loaders.SavePPM(path, img)
	}
	return loaders.SavePNG(path, img)
}
