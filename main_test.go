package main

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"cornell scene", "cornell-box", false},
		{"sphere grid scene", "sphere-grid", false},
		{"mirrors scene", "mirrors", false},
		{"plane scene", "plane", false},
		{"mixed case", "Default", false},

		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(Config{SceneType: tt.sceneType, MaxDepth: -1})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.Options.Width <= 0 || scene.Options.Height <= 0 {
				t.Errorf("Scene dimensions should be positive, got %dx%d", scene.Options.Width, scene.Options.Height)
			}
		})
	}
}

func TestCreateScene_Overrides(t *testing.T) {
	s, err := createScene(Config{SceneType: "default", Width: 32, Height: 16, FOVDegrees: 60, MaxDepth: 0})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Options.Width != 32 || s.Options.Height != 16 {
		t.Errorf("Expected 32x16, got %dx%d", s.Options.Width, s.Options.Height)
	}
	if math.Abs(s.Options.FieldOfView-math.Pi/3) > 1e-12 {
		t.Errorf("Expected fov pi/3, got %f", s.Options.FieldOfView)
	}
	if s.Options.MaxDepth != 0 {
		t.Errorf("Expected max depth 0, got %d", s.Options.MaxDepth)
	}

	if _, err := createScene(Config{SceneType: "default", FOVDegrees: 180, MaxDepth: -1}); err == nil {
		t.Error("Expected error for a 180 degree field of view")
	}
}

func TestNormalizeFormat(t *testing.T) {
	for _, tc := range []struct{ in, want string }{{"png", "png"}, {" PPM ", "ppm"}} {
		got, err := normalizeFormat(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("normalizeFormat(%q) = %q, %v", tc.in, got, err)
		}
	}
	if _, err := normalizeFormat("jpeg"); err == nil {
		t.Error("Expected error for jpeg")
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	want := filepath.Join("output", "mirrors", "render_20240309_140507.ppm")
	if got := defaultOutputPath("mirrors", "ppm", now); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestRun(t *testing.T) {
	for _, format := range []string{"png", "ppm"} {
		t.Run(format, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "nested", "render."+format)
			config := Config{
				SceneType:  "plane",
				Width:      4,
				Height:     3,
				MaxDepth:   -1,
				NumWorkers: 2,
				Format:     format,
				Gamma:      1,
				OutputPath: output,
			}

			path, err := run(context.Background(), config, time.Now())
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if path != output {
				t.Errorf("Expected output %s, got %s", output, path)
			}

			img, err := loaders.LoadImage(path)
			if err != nil {
				t.Fatalf("Failed to read render back: %v", err)
			}
			if img.Width != 4 || img.Height != 3 {
				t.Errorf("Expected 4x3 image, got %dx%d", img.Width, img.Height)
			}
			for i, p := range img.Pixels {
				if p.X <= 0 {
					t.Errorf("Pixel %d should be lit, got %v", i, p)
				}
			}
		})
	}
}

func TestRun_BadFormat(t *testing.T) {
	if _, err := run(context.Background(), Config{SceneType: "plane", Format: "gif", MaxDepth: -1}, time.Now()); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
