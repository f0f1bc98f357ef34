package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a primary ray. Counters are
	// accumulated into stats, which may be nil.
	RayColor(ray core.Ray, scene *scene.Scene, stats *RayStats) core.Vec3
}
