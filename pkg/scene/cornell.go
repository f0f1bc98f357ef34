package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewCornellScene creates a Cornell box built from planes, lit by a point
// light under a ceiling lamp disc, holding one mirror and one diffuse sphere
func NewCornellScene() *Scene {
	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	s := &Scene{
		Camera: geometry.CameraConfig{
			From: core.NewVec3(278, 278, -800), // Outside the open front of the box
			To:   core.NewVec3(278, 278, 0),
		},
		Options: Options{
			Width:           400,
			Height:          400,
			FieldOfView:     core.DegreesToRadians(40),
			MaxDepth:        8,
			BackgroundColor: core.Vec3{},
		},
	}

	white := geometry.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := geometry.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := geometry.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))
	mirror := geometry.NewReflective(core.NewVec3(1, 1, 1))

	s.AddShapes(
		// Floor, ceiling and back wall
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white),
		geometry.NewPlane(core.NewVec3(0, boxSize, 0), core.NewVec3(0, -1, 0), white),
		geometry.NewPlane(core.NewVec3(0, 0, boxSize), core.NewVec3(0, 0, -1), white),

		// Camera right is world -x, so x=boxSize is the left wall in the image
		geometry.NewPlane(core.NewVec3(boxSize, 0, 0), core.NewVec3(-1, 0, 0), red),
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), green),

		// Ceiling lamp
		geometry.NewDisc(core.NewVec3(278, boxSize-1, 278), core.NewVec3(0, -1, 0), 65, white),

		geometry.NewSphere(core.NewVec3(370, 100, 350), 100, mirror),
		geometry.NewSphere(core.NewVec3(180, 90, 200), 90, white),
	)

	// Just below the lamp so the disc does not shadow it
	s.AddLights(lights.NewPointLightAt(core.NewVec3(278, boxSize-20, 278), core.NewVec3(1, 0.9, 0.75), 2.5e6))

	return s
}
