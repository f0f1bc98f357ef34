package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewDefaultScene creates a scene with diffuse and mirror spheres, a disc,
// a ground plane, a sun and a point light
func NewDefaultScene() *Scene {
	s := &Scene{
		Shapes: make([]geometry.Shape, 0),
		Lights: make([]lights.Light, 0),
		Camera: geometry.CameraConfig{
			From: core.NewVec3(0, 1, 3),  // Slightly above the ground
			To:   core.NewVec3(0, 0, -4), // Middle of the sphere group
		},
		Options: DefaultOptions(),
	}

	// Create materials
	ground := geometry.NewDiffuse(core.NewVec3(0.6, 0.6, 0.55))
	red := geometry.NewDiffuse(core.NewVec3(0.8, 0.25, 0.2))
	green := geometry.NewDiffuse(core.NewVec3(0.2, 0.7, 0.3))
	gold := geometry.NewDiffuse(core.NewVec3(0.9, 0.7, 0.2))
	mirror := geometry.NewReflective(core.NewVec3(0.9, 0.9, 0.9))

	s.AddShapes(
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(core.NewVec3(-1.6, 0, -5), 1.0, red),
		geometry.NewSphere(core.NewVec3(1.2, 0, -4), 1.0, mirror),
		geometry.NewSphere(core.NewVec3(-0.2, -0.6, -2.8), 0.4, green),
		// Upright disc behind the group, tilted toward the camera
		geometry.NewDisc(core.NewVec3(3, 0.5, -8), core.NewVec3(-0.5, 0, 1), 1.5, gold),
	)

	s.AddLights(
		lights.NewDistantLightFromDirection(core.NewVec3(-1, -1.5, -1), core.NewVec3(1, 0.97, 0.9), 2.5),
		lights.NewPointLightAt(core.NewVec3(0, 3, -2), core.NewVec3(1, 1, 1), 120),
	)

	return s
}

// NewPlaneScene creates a single diffuse ground plane under a sun, seen from
// straight above. It is small enough to render at a few pixels.
func NewPlaneScene() *Scene {
	// Rotate the camera's -z onto world -y, then lift it above the plane
	down := core.RotateX(-core.DegreesToRadians(90)).Multiply(core.Translate(core.NewVec3(0, 5, 0)))

	s := &Scene{
		Camera:  geometry.CameraConfig{Transform: &down},
		Options: DefaultOptions(),
	}
	s.Options.BackgroundColor = core.Vec3{}

	s.AddShapes(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), geometry.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))))
	s.AddLights(lights.NewDistantLightFromDirection(core.NewVec3(0.1, -1, 0.2), core.NewVec3(1, 1, 1), 1))

	return s
}
