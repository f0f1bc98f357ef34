package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// planeTilePeriod is the world-space period of the plane's repeating (u, v)
const planeTilePeriod = 1000.0

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Surface normal, normalized on use
	Material Material
}

// NewPlane creates a new plane. The normal need not be unit length.
func NewPlane(point, normal core.Vec3, material Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Intersect solves the ray/plane equation, rejecting near-parallel rays and
// hits behind the origin
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	return intersectPlane(ray, p.Point, p.Normal)
}

// SurfaceData returns the plane normal and a tiling (u, v) taken from the
// hit point's x/y offset from Point, wrapped every planeTilePeriod units
func (p *Plane) SurfaceData(hit core.Vec3) (core.Vec3, core.Vec2) {
	offset := hit.Subtract(p.Point)
	uv := core.NewVec2(
		math.Mod(offset.X, planeTilePeriod)/planeTilePeriod,
		math.Mod(offset.Y, planeTilePeriod)/planeTilePeriod,
	)
	return p.Normal.Normalize(), uv
}

// GetMaterial returns the plane's shading parameters
func (p *Plane) GetMaterial() Material {
	return p.Material
}

// Validate rejects planes without a usable normal
func (p *Plane) Validate() error {
	if p.Normal.IsZero() {
		return fmt.Errorf("plane at %v: normal must be non-zero", p.Point)
	}
	return nil
}

func (p *Plane) isShape() {}
