package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Disc represents a circular disc in 3D space: a plane intersection bounded
// by a radius around the center
type Disc struct {
	Center   core.Vec3 // Center of the disc
	Normal   core.Vec3 // Surface normal, normalized on use
	Radius   float64   // Radius of the disc
	Material Material
}

// NewDisc creates a new disc. The normal need not be unit length.
func NewDisc(center, normal core.Vec3, radius float64, material Material) *Disc {
	return &Disc{
		Center:   center,
		Normal:   normal.Normalize(),
		Radius:   radius,
		Material: material,
	}
}

// Intersect tests the disc's supporting plane, then rejects hits whose
// squared distance from the center exceeds radius².
func (d *Disc) Intersect(ray core.Ray) (float64, bool) {
	t, ok := intersectPlane(ray, d.Center, d.Normal)
	if !ok {
		return 0, false
	}

	if ray.At(t).Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return 0, false
	}

	return t, true
}

// SurfaceData returns the unit disc normal; discs carry no texture coordinates
func (d *Disc) SurfaceData(hit core.Vec3) (core.Vec3, core.Vec2) {
	return d.Normal.Normalize(), core.Vec2{}
}

// GetMaterial returns the disc's shading parameters
func (d *Disc) GetMaterial() Material {
	return d.Material
}

// Validate rejects discs without a usable normal or a positive radius
func (d *Disc) Validate() error {
	if d.Normal.IsZero() {
		return fmt.Errorf("disc at %v: normal must be non-zero", d.Center)
	}
	if !(d.Radius > 0) || math.IsInf(d.Radius, 0) {
		return fmt.Errorf("disc at %v: radius must be positive and finite, got %g", d.Center, d.Radius)
	}
	return nil
}

func (d *Disc) isShape() {}
