package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight emits uniformly from a single position with inverse-square falloff
type PointLight struct {
	LightToWorld core.Matrix44
	Color        core.Vec3
	Intensity    float64
	position     core.Vec3 // World-space position, derived once
}

// NewPointLight creates a point light at the transform's local origin
func NewPointLight(lightToWorld core.Matrix44, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{
		LightToWorld: lightToWorld,
		Color:        color,
		Intensity:    intensity,
		position:     lightToWorld.TransformPoint(core.Vec3{}),
	}
}

// NewPointLightAt creates a point light at a world-space position
func NewPointLightAt(position core.Vec3, color core.Vec3, intensity float64) *PointLight {
	return NewPointLight(core.Translate(position), color, intensity)
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Position returns the world-space position of the light
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// ShadingInfo returns the direction from the light to point, the distance
// between them and the intensity attenuated by 1/(4π r²).
//
// A point coinciding with the light yields an infinite intensity.
func (pl *PointLight) ShadingInfo(point core.Vec3) ShadingInfo {
	delta := point.Subtract(pl.position)
	r2 := delta.LengthSquared()
	distance := math.Sqrt(r2)

	return ShadingInfo{
		Direction: delta.Multiply(1 / distance),
		Intensity: pl.Color.Multiply(pl.Intensity / (4 * math.Pi * r2)),
		Distance:  distance,
	}
}

// Validate rejects lights with an unusable intensity
func (pl *PointLight) Validate() error {
	return validateIntensity("point light", pl.Intensity)
}

func (pl *PointLight) isLight() {}
