package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client. Zero sizes, a
// zero fov and a negative depth keep the scene's defaults.
type RenderRequest struct {
	Scene    string  // Scene id (e.g., "cornell-box")
	Width    int     // Image width
	Height   int     // Image height
	MaxDepth int     // Maximum reflection depth
	FOV      float64 // Vertical field of view in degrees
	Gamma    float64 // Output gamma
	Format   string  // "png" or "ppm"
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	sceneObj, err := createScene(req.Scene, req.Width, req.Height, req.MaxDepth, req.FOV)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renderSeq.Add(1))
	logger := NewWebLogger(renderID, s.console)
	logger.Printf("Rendering scene %q at %dx%d\n", req.Scene, sceneObj.Options.Width, sceneObj.Options.Height)

	// Use request context to stop rendering when the client disconnects
	raytracer := renderer.NewRaytracer(sceneObj, renderer.DefaultRenderConfig(), logger)
	buffer, stats, err := raytracer.Render(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Printf("Render cancelled by client\n")
			return
		}
		glog.Errorf("Render %s failed: %v", renderID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Render error: %v", err)})
		return
	}

	var body bytes.Buffer
	contentType := "image/png"
	img := buffer.ToRGBA(req.Gamma)
	if req.Format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = loaders.WritePPM(&body, img)
	} else {
		err = loaders.WritePNG(&body, img)
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Failed to encode image: %v", err)})
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Ray-Count", strconv.FormatInt(stats.Rays.TotalRays(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body.Bytes()); err != nil {
		glog.Errorf("Error while writing render %s: %v", renderID, err)
	}
}

// parseRenderRequest parses and validates request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", -1, 0, maxMaxDepth); err != nil {
		return nil, err
	}
	if req.FOV, err = parseFloatParam(values, "fov", 0, minFOV, maxFOV); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(values, "gamma", 2.0, 1.0, 4.0); err != nil {
		return nil, err
	}

	req.Format = strings.ToLower(values.Get("format"))
	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "ppm":
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}

	return req, nil
}

// createScene builds a registered scene and applies the request overrides
func createScene(name string, width, height, maxDepth int, fovDegrees float64) (*scene.Scene, error) {
	sceneObj, err := scene.Create(name)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		sceneObj.Options.Width = width
	}
	if height > 0 {
		sceneObj.Options.Height = height
	}
	if maxDepth >= 0 {
		sceneObj.Options.MaxDepth = maxDepth
	}
	if fovDegrees > 0 {
		sceneObj.Options.FieldOfView = core.DegreesToRadians(fovDegrees)
	}
	return sceneObj, nil
}
