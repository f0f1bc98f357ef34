package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewMirrorsScene creates two facing mirror walls with a sphere between
// them. Every camera ray that reaches a wall bounces until MaxDepth runs out,
// so the number of visible reflections follows the depth setting.
func NewMirrorsScene() *Scene {
	s := &Scene{
		Camera: geometry.CameraConfig{
			From: core.NewVec3(0.5, 0.5, 2),
			To:   core.NewVec3(0, 0, -5),
		},
		Options: DefaultOptions(),
	}
	s.Options.MaxDepth = 10
	s.Options.BackgroundColor = core.NewVec3(0.05, 0.05, 0.1)

	mirror := geometry.NewReflective(core.NewVec3(1, 1, 1))

	s.AddShapes(
		geometry.NewPlane(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0), mirror),
		geometry.NewPlane(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0), mirror),
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), geometry.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))),
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, geometry.NewDiffuse(core.NewVec3(0.2, 0.4, 0.9))),
		geometry.NewDisc(core.NewVec3(1.5, -0.99, -3), core.NewVec3(0, 1, 0), 0.6, geometry.NewDiffuse(core.NewVec3(0.9, 0.3, 0.1))),
	)

	s.AddLights(lights.NewPointLightAt(core.NewVec3(0, 4, -3), core.NewVec3(1, 1, 1), 400))

	return s
}
