package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// SurfaceKind selects how the integrator shades a hit
type SurfaceKind int

const (
	Diffuse SurfaceKind = iota
	Reflective
)

// String returns a lower-case name for the surface kind
func (k SurfaceKind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Reflective:
		return "reflective"
	default:
		return "unknown"
	}
}

// Material holds the shading parameters shared by every shape
type Material struct {
	Albedo core.Vec3   // Reflectance, components in [0,1] by convention
	Kind   SurfaceKind // Diffuse or Reflective
}

// NewDiffuse creates a diffuse material with the given albedo
func NewDiffuse(albedo core.Vec3) Material {
	return Material{Albedo: albedo, Kind: Diffuse}
}

// NewReflective creates a mirror material. Mirrors reflect untinted at a
// fixed reflectivity; the albedo is only reported by inspection tools.
func NewReflective(albedo core.Vec3) Material {
	return Material{Albedo: albedo, Kind: Reflective}
}

// planeEpsilon is the near-parallel guard for ray/plane tests
const planeEpsilon = 1e-6

// intersectPlane solves the ray/plane equation for a plane through center
// with normal n, which need not be unit length. Rays closer to parallel
// than planeEpsilon miss.
func intersectPlane(ray core.Ray, center, n core.Vec3) (float64, bool) {
	n = n.Normalize()
	denom := ray.Direction.Dot(n)
	if denom <= planeEpsilon && denom >= -planeEpsilon {
		return 0, false
	}

	t := center.Subtract(ray.Origin).Dot(n) / denom
	return t, t >= 0
}
