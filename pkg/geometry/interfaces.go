package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Shape is implemented by the analytic primitives a scene is built from.
// The set is closed: only Sphere, Plane and Disc satisfy it.
type Shape interface {
	// Intersect returns the nearest ray parameter t >= 0 at which the ray
	// meets the shape. The ray's TMax is not consulted here; range
	// filtering belongs to the scene tracer.
	Intersect(ray core.Ray) (float64, bool)

	// SurfaceData returns the unit surface normal and the (u, v) texture
	// coordinate at a point already known to lie on the shape.
	SurfaceData(hit core.Vec3) (core.Vec3, core.Vec2)

	// GetMaterial returns the shading parameters of the shape
	GetMaterial() Material

	// Validate reports malformed geometric parameters
	Validate() error

	isShape()
}
