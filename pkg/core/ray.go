package core

import "math"

// RayKind tags what spawned a ray. It is bookkeeping only; the integrator
// does not branch on it.
type RayKind int

const (
	RayPrimary RayKind = iota
	RayShadow
	RayReflection
)

// String returns a lower-case name for the ray kind
func (k RayKind) String() string {
	switch k {
	case RayPrimary:
		return "primary"
	case RayShadow:
		return "shadow"
	case RayReflection:
		return "reflection"
	default:
		return "unknown"
	}
}

// Ray represents a ray with an origin, a unit direction and an upper bound
// on the valid hit parameter
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMax      float64 // Hits at t >= TMax are ignored
	Kind      RayKind
}

// NewRay creates an unbounded primary ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMax: math.Inf(1), Kind: RayPrimary}
}

// NewBoundedRay creates a ray of the given kind whose hits must lie before tMax
func NewBoundedRay(origin, direction Vec3, tMax float64, kind RayKind) Ray {
	return Ray{Origin: origin, Direction: direction, TMax: tMax, Kind: kind}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
