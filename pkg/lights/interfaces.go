package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeDistant LightType = "distant"
	LightTypePoint   LightType = "point"
)

// Light is implemented by the light sources a scene can hold. The set is
// closed: only DistantLight and PointLight satisfy it.
type Light interface {
	Type() LightType

	// ShadingInfo returns how the light reaches a shading point
	ShadingInfo(point core.Vec3) ShadingInfo

	// Validate reports malformed light parameters
	Validate() error

	isLight()
}

// ShadingInfo describes a light's contribution at a single point
type ShadingInfo struct {
	Direction core.Vec3 // Unit direction the light travels, FROM the light TO the point
	Intensity core.Vec3 // Incident radiance-like term, color × intensity with falloff
	Distance  float64   // Distance to the light; +Inf for distant lights
}
