package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ShapeIndex   int                    `json:"shapeIndex"`
	GeometryType string                 `json:"geometryType"`
	MaterialType string                 `json:"materialType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	UV           [2]float64             `json:"uv"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"`
	Rays         integrator.RayStats    `json:"rays"`
	Properties   map[string]interface{} `json:"properties"`
}

// extractShapeInfo describes the geometry of a shape
func extractShapeInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch sh := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(sh.Center)
		properties["radius"] = sh.Radius
		return "sphere", properties
	case *geometry.Plane:
		properties["point"] = vecArray(sh.Point)
		properties["normal"] = vecArray(sh.Normal)
		return "plane", properties
	case *geometry.Disc:
		properties["center"] = vecArray(sh.Center)
		properties["normal"] = vecArray(sh.Normal)
		properties["radius"] = sh.Radius
		return "disc", properties
	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray through pixel (x, y) and reports the
// nearest shape and the shaded color
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	ray := sceneObj.NewCamera().GetRay(pixelX, pixelY)

	var stats integrator.RayStats
	color := integrator.NewWhittedIntegrator().RayColor(ray, sceneObj, &stats)

	response := InspectResponse{
		ShapeIndex: -1,
		Color:      vecArray(color),
		Rays:       stats,
		Properties: map[string]interface{}{},
	}

	hit, isHit := sceneObj.Trace(ray)
	if !isHit {
		return response
	}

	point := ray.At(hit.T)
	normal, uv := hit.Shape.SurfaceData(point)
	mat := hit.Shape.GetMaterial()

	response.Hit = true
	response.ShapeIndex = hit.Index
	response.GeometryType, response.Properties = extractShapeInfo(hit.Shape)
	response.MaterialType = mat.Kind.String()
	response.Point = vecArray(point)
	response.Normal = vecArray(normal)
	response.UV = [2]float64{uv.X, uv.Y}
	response.Distance = hit.T
	response.Properties["albedo"] = vecArray(mat.Albedo)
	response.Properties["color"] = fmt.Sprintf("#%02x%02x%02x",
		int(mat.Albedo.X*255), int(mat.Albedo.Y*255), int(mat.Albedo.Z*255))
	return response
}

// handleInspect reports what the camera sees through a single pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	sceneName := values.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	width, err := parseIntParam(values, "width", 0, minImageSize, maxImageSize)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	height, err := parseIntParam(values, "height", 0, minImageSize, maxImageSize)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, err := createScene(sceneName, width, height, -1, 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	x, err := parseIntParam(values, "x", 0, 0, sceneObj.Options.Width-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parseIntParam(values, "y", 0, 0, sceneObj.Options.Height-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, x, y))
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
