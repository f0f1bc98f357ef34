package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, NewServer(0), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["status"] != "ok" {
		t.Errorf("Unexpected body %v (%v)", body, err)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, NewServer(0), "/api/scenes")

	var response ScenesResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	ids := map[string]bool{}
	for _, info := range response.Scenes {
		ids[info.ID] = true
	}
	for _, want := range []string{"default", "cornell-box", "mirrors", "plane", "sphere-grid"} {
		if !ids[want] {
			t.Errorf("Expected scene %q in %v", want, response.Scenes)
		}
	}
}

func TestHandleSceneConfig(t *testing.T) {
	s := NewServer(0)

	rec := get(t, s, "/api/scene-config?scene=cornell-box")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var response struct {
		Defaults struct {
			Width    int     `json:"width"`
			FOV      float64 `json:"fov"`
			MaxDepth int     `json:"maxDepth"`
		} `json:"defaults"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Defaults.Width != 400 || response.Defaults.MaxDepth != 8 {
		t.Errorf("Unexpected defaults %+v", response.Defaults)
	}
	if response.Defaults.FOV < 39.999 || response.Defaults.FOV > 40.001 {
		t.Errorf("Expected fov 40 degrees, got %f", response.Defaults.FOV)
	}

	if rec := get(t, s, "/api/scene-config?scene=nope"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown scene, got %d", rec.Code)
	}
}

func TestHandleRender_PNG(t *testing.T) {
	s := NewServer(0)
	rec := get(t, s, "/api/render?scene=plane&width=4&height=2&maxDepth=2")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
	if rec.Header().Get("X-Ray-Count") == "" || rec.Header().Get("X-Render-Id") == "" {
		t.Errorf("Missing render headers: %v", rec.Header())
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("Expected 4x2 image, got %v", b)
	}

	if len(s.console.Messages()) == 0 {
		t.Error("Expected the render to log to the console")
	}
}

func TestHandleRender_PPM(t *testing.T) {
	rec := get(t, NewServer(0), "/api/render?scene=mirrors&width=3&height=3&format=ppm")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	img, err := loaders.ReadPPM(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a PPM: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Errorf("Expected 3x3 image, got %v", b)
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown scene", "scene=nonexistent"},
		{"width too large", "width=5000"},
		{"bad height", "height=abc"},
		{"negative depth", "maxDepth=-3"},
		{"fov too wide", "fov=180"},
		{"bad format", "format=gif"},
	}

	s := NewServer(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, "/api/render?"+tt.query)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
				t.Errorf("Expected JSON error body")
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	rec := get(t, NewServer(0), "/api/inspect?scene=plane&width=2&height=2&x=1&y=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Hit || response.GeometryType != "plane" || response.MaterialType != "diffuse" {
		t.Errorf("Expected a diffuse plane hit, got %+v", response)
	}
	if response.Normal != [3]float64{0, 1, 0} {
		t.Errorf("Expected up normal, got %v", response.Normal)
	}
	if response.Color[0] <= 0 {
		t.Errorf("Expected a lit pixel, got %v", response.Color)
	}

	if rec := get(t, NewServer(0), "/api/inspect?scene=plane&width=2&height=2&x=2"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for x outside the image, got %d", rec.Code)
	}
}

func TestParseRenderRequest_Defaults(t *testing.T) {
	req, err := parseRenderRequest(url.Values{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Scene != "default" || req.Width != 0 || req.MaxDepth != -1 || req.Format != "png" || req.Gamma != 2.0 {
		t.Errorf("Unexpected defaults %+v", req)
	}
}

func TestParseFloatParam_RejectsNaN(t *testing.T) {
	if _, err := parseFloatParam(url.Values{"fov": {"NaN"}}, "fov", 0, 1, 179); err == nil {
		t.Error("Expected NaN to be rejected")
	}
}
