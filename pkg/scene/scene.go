package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. Shapes and lights
// are owned by the scene and referred to by index.
type Scene struct {
	Shapes  []geometry.Shape      // Objects in the scene
	Lights  []lights.Light        // Lights in the scene
	Camera  geometry.CameraConfig // Camera placement
	Options Options               // Image and shading parameters
}

// Options contains the render parameters that do not depend on the scene content
type Options struct {
	Width           int       // Image width in pixels
	Height          int       // Image height in pixels
	FieldOfView     float64   // Vertical field of view in radians
	MaxDepth        int       // Maximum reflection recursion depth
	BackgroundColor core.Vec3 // Color returned for rays that escape the scene
}

// DefaultOptions returns a 640x480 image with a 90 degree field of view
func DefaultOptions() Options {
	return Options{
		Width:           640,
		Height:          480,
		FieldOfView:     math.Pi / 2,
		MaxDepth:        5,
		BackgroundColor: core.NewVec3(0.235294, 0.67451, 0.843137),
	}
}

// Validate reports every malformed option at once
func (o Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("image dimensions must be positive, got %dx%d", o.Width, o.Height))
	}
	if !(o.FieldOfView > 0 && o.FieldOfView < math.Pi) {
		errs = append(errs, fmt.Errorf("field of view must be in (0, pi) radians, got %g", o.FieldOfView))
	}
	if o.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max depth must not be negative, got %d", o.MaxDepth))
	}
	return errors.Join(errs...)
}

// Hit identifies the nearest shape along a ray
type Hit struct {
	Index int            // Position of the shape in Scene.Shapes
	Shape geometry.Shape // The shape itself
	T     float64        // Ray parameter of the hit point
}

// Trace returns the nearest shape hit by ray with t below ray.TMax.
// On ties the shape listed first wins.
func (s *Scene) Trace(ray core.Ray) (Hit, bool) {
	best := Hit{Index: -1, T: ray.TMax}
	for i, shape := range s.Shapes {
		t, ok := shape.Intersect(ray)
		if ok && t < best.T {
			best = Hit{Index: i, Shape: shape, T: t}
		}
	}
	return best, best.Index >= 0
}

// NewCamera creates the camera described by the scene's placement and options
func (s *Scene) NewCamera() *geometry.Camera {
	return geometry.NewCamera(s.Camera, s.Options.Width, s.Options.Height, s.Options.FieldOfView)
}

// Validate checks the options, the camera and every shape and light
func (s *Scene) Validate() error {
	var errs []error
	if err := s.Options.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("options: %w", err))
	}
	if err := s.Camera.Validate(); err != nil {
		errs = append(errs, err)
	}
	for i, shape := range s.Shapes {
		if shape == nil {
			errs = append(errs, fmt.Errorf("shape %d is nil", i))
			continue
		}
		if err := shape.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("shape %d: %w", i, err))
		}
	}
	for i, light := range s.Lights {
		if light == nil {
			errs = append(errs, fmt.Errorf("light %d is nil", i))
			continue
		}
		if err := light.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("light %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// AddShapes appends shapes to the scene
func (s *Scene) AddShapes(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLights appends lights to the scene
func (s *Scene) AddLights(ls ...lights.Light) {
	s.Lights = append(s.Lights, ls...)
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
