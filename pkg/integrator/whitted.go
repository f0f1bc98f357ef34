package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	// shadowBias offsets secondary ray origins along the normal so they do not
	// re-hit the surface they leave
	shadowBias = 1e-5

	// reflectivity scales the color returned along a mirror bounce
	reflectivity = 0.6
)

// WhittedIntegrator implements classic recursive ray tracing: direct
// lighting with hard shadows on diffuse surfaces and perfect mirror
// reflection on reflective ones
type WhittedIntegrator struct{}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{}
}

// RayColor computes the color for a primary ray
func (wi *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, stats *RayStats) core.Vec3 {
	return wi.castRay(ray, s, 0, stats)
}

// castRay shades a ray at the given recursion depth. Rays past the depth
// limit or leaving the scene get the background color. A mirror at the last
// allowed depth uses the background directly instead of recursing, so a path
// never makes more than MaxDepth+1 calls.
func (wi *WhittedIntegrator) castRay(ray core.Ray, s *scene.Scene, depth int, stats *RayStats) core.Vec3 {
	stats.countCast(ray.Kind)

	opts := s.Options
	if depth > opts.MaxDepth {
		stats.countDepthLimit()
		return opts.BackgroundColor
	}

	hit, isHit := s.Trace(ray)
	if !isHit {
		return opts.BackgroundColor
	}

	hitPoint := ray.At(hit.T)
	normal, _ := hit.Shape.SurfaceData(hitPoint)
	mat := hit.Shape.GetMaterial()

	var color core.Vec3
	switch mat.Kind {
	case geometry.Diffuse:
		color = wi.directLighting(s, hitPoint, normal, mat.Albedo, stats)
	case geometry.Reflective:
		origin := hitPoint.Add(normal.Multiply(shadowBias))
		reflected := core.NewBoundedRay(origin, reflect(ray.Direction, normal), math.Inf(1), core.RayReflection)

		incoming := opts.BackgroundColor
		if depth+1 <= opts.MaxDepth {
			incoming = wi.castRay(reflected, s, depth+1, stats)
		} else {
			stats.countDepthLimit()
		}
		color = incoming.Multiply(reflectivity)
	}

	return color.Clamp(0, 1)
}

// directLighting sums the Lambertian contribution of every light that is
// not blocked from point
func (wi *WhittedIntegrator) directLighting(s *scene.Scene, point, normal, albedo core.Vec3, stats *RayStats) core.Vec3 {
	origin := point.Add(normal.Multiply(shadowBias))

	var color core.Vec3
	for _, light := range s.Lights {
		info := light.ShadingInfo(point)
		toLight := info.Direction.Negate()

		shadowRay := core.NewBoundedRay(origin, toLight, info.Distance, core.RayShadow)
		_, occluded := s.Trace(shadowRay)
		stats.countShadow(occluded)
		if occluded {
			continue
		}

		cosine := math.Max(0, normal.Dot(toLight))
		color = color.Add(albedo.MultiplyVec(info.Intensity).Multiply(cosine))
	}
	return color
}

// reflect mirrors incident direction i about normal n
func reflect(i, n core.Vec3) core.Vec3 {
	return i.Subtract(n.Multiply(2 * n.Dot(i)))
}
