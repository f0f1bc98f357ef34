package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DistantLight is a sun-like light: a fixed direction, no falloff, and
// infinitely far away so any occluder blocks it
type DistantLight struct {
	LightToWorld core.Matrix44
	Color        core.Vec3
	Intensity    float64
	direction    core.Vec3 // World-space travel direction, derived once
}

// NewDistantLight creates a distant light shining along the transform's
// local -z axis
func NewDistantLight(lightToWorld core.Matrix44, color core.Vec3, intensity float64) *DistantLight {
	return &DistantLight{
		LightToWorld: lightToWorld,
		Color:        color,
		Intensity:    intensity,
		direction:    lightToWorld.TransformDirection(core.NewVec3(0, 0, -1)).Normalize(),
	}
}

// NewDistantLightFromDirection creates a distant light travelling along dir
func NewDistantLightFromDirection(dir core.Vec3, color core.Vec3, intensity float64) *DistantLight {
	return NewDistantLight(directionToWorld(dir), color, intensity)
}

func (dl *DistantLight) Type() LightType {
	return LightTypeDistant
}

// Direction returns the world-space direction the light travels
func (dl *DistantLight) Direction() core.Vec3 {
	return dl.direction
}

// ShadingInfo returns the constant direction and the unattenuated intensity
func (dl *DistantLight) ShadingInfo(point core.Vec3) ShadingInfo {
	return ShadingInfo{
		Direction: dl.direction,
		Intensity: dl.Color.Multiply(dl.Intensity / math.Pi),
		Distance:  math.Inf(1),
	}
}

// Validate rejects lights without a direction or with an unusable intensity
func (dl *DistantLight) Validate() error {
	if dl.direction.IsZero() {
		return fmt.Errorf("distant light: transform maps -z to the zero vector")
	}
	return validateIntensity("distant light", dl.Intensity)
}

func (dl *DistantLight) isLight() {}

// directionToWorld builds a light-to-world transform whose local -z axis
// points along dir
func directionToWorld(dir core.Vec3) core.Matrix44 {
	forward := dir.Normalize().Negate()

	var helper core.Vec3
	if math.Abs(forward.X) > 0.1 {
		helper = core.NewVec3(0, 1, 0)
	} else {
		helper = core.NewVec3(1, 0, 0)
	}

	right := helper.Cross(forward).Normalize()
	up := forward.Cross(right)

	return core.Matrix44{
		{right.X, right.Y, right.Z, 0},
		{up.X, up.Y, up.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{0, 0, 0, 1},
	}
}

func validateIntensity(name string, intensity float64) error {
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) || intensity < 0 {
		return fmt.Errorf("%s: intensity must be finite and non-negative, got %g", name, intensity)
	}
	return nil
}
