package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect finds the nearest non-negative hit using the geometric method:
// project the center onto the ray, reject by perpendicular distance, and
// only then take the square root for the half chord.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)
	if tca < 0 {
		return 0, false
	}

	radius2 := s.Radius * s.Radius
	d2 := l.LengthSquared() - tca*tca
	if d2 > radius2 {
		return 0, false
	}

	thc := math.Sqrt(radius2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			return 0, false
		}
	}

	return t0, true
}

// SurfaceData returns the outward normal and spherical (u, v) coordinates.
// v is derived from the absolute height of the hit point, not from the
// normal, so it is only meaningful for spheres centered on y = 0.
func (s *Sphere) SurfaceData(hit core.Vec3) (core.Vec3, core.Vec2) {
	n := hit.Subtract(s.Center).Normalize()

	u := 0.5 * (1 + math.Atan2(n.Z, n.X)/math.Pi)
	v := math.Acos(hit.Y/s.Radius) / math.Pi

	return n, core.NewVec2(u, v)
}

// GetMaterial returns the sphere's shading parameters
func (s *Sphere) GetMaterial() Material {
	return s.Material
}

// Validate rejects spheres without a positive finite radius
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("sphere at %v: radius must be positive and finite, got %g", s.Center, s.Radius)
	}
	return nil
}

func (s *Sphere) isShape() {}
