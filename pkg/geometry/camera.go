package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// worldUp is the fixed up reference used by LookAt
var worldUp = core.NewVec3(0, 1, 0)

// CameraConfig places a pinhole camera in the world
type CameraConfig struct {
	From core.Vec3 // Eye position
	To   core.Vec3 // Point the camera looks at

	// Transform, when set, is used as the camera-to-world matrix instead of
	// LookAt(From, To). It allows views along world up.
	Transform *core.Matrix44
}

// CameraToWorld returns the camera-to-world transform for this placement
func (c CameraConfig) CameraToWorld() core.Matrix44 {
	if c.Transform != nil {
		return *c.Transform
	}
	return LookAt(c.From, c.To)
}

// Validate rejects placements for which LookAt is undefined and explicit
// transforms that cannot be inverted
func (c CameraConfig) Validate() error {
	if c.Transform != nil {
		if _, ok := c.Transform.TryInverse(); !ok {
			return fmt.Errorf("camera: transform is singular")
		}
		return nil
	}

	forward, ok := c.From.Subtract(c.To).TryNormalize()
	if !ok {
		return fmt.Errorf("camera: from and to are the same point %v", c.From)
	}
	if worldUp.Cross(forward).LengthSquared() < 1e-12 {
		return fmt.Errorf("camera: view direction %v is parallel to world up", forward.Negate())
	}
	return nil
}

// LookAt builds a camera-to-world transform for an eye at from looking at
// to, with (0,1,0) as world up. The rows are right, up, forward and the
// translation from; the camera looks down its local -z axis.
//
// The result is undefined when to-from is parallel to world up.
func LookAt(from, to core.Vec3) core.Matrix44 {
	forward := from.Subtract(to).Normalize()
	right := worldUp.Cross(forward).Normalize()
	up := forward.Cross(right)

	return core.Matrix44{
		{right.X, right.Y, right.Z, 0},
		{up.X, up.Y, up.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{from.X, from.Y, from.Z, 1},
	}
}

// ComputeRay maps pixel (x, y) of a width×height image to a world-space
// primary ray through the pixel center. fov is the vertical field of view in
// radians; the horizontal extent is scaled by the aspect ratio.
func ComputeRay(x, y, width, height int, fov float64, cameraToWorld core.Matrix44) core.Ray {
	scale := math.Tan(fov / 2)
	aspect := float64(width) / float64(height)

	px := (2*((float64(x)+0.5)/float64(width)) - 1) * scale * aspect
	py := (1 - 2*((float64(y)+0.5)/float64(height))) * scale

	origin := cameraToWorld.TransformPoint(core.Vec3{})
	target := cameraToWorld.TransformPoint(core.NewVec3(px, py, -1))

	return core.NewRay(origin, target.Subtract(origin).Normalize())
}

// Camera generates primary rays for a fixed image size
type Camera struct {
	CameraToWorld core.Matrix44
	Width, Height int
	FieldOfView   float64 // Radians
}

// NewCamera creates a camera from a placement and the image options
func NewCamera(config CameraConfig, width, height int, fov float64) *Camera {
	return &Camera{
		CameraToWorld: config.CameraToWorld(),
		Width:         width,
		Height:        height,
		FieldOfView:   fov,
	}
}

// GetRay returns the primary ray for pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	return ComputeRay(x, y, c.Width, c.Height, c.FieldOfView, c.CameraToWorld)
}

// Origin returns the camera's world-space eye position
func (c *Camera) Origin() core.Vec3 {
	return c.CameraToWorld.TransformPoint(core.Vec3{})
}
