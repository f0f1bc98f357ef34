package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var grey = geometry.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))

func newScene(shapes []geometry.Shape, ls []lights.Light, maxDepth int, background core.Vec3) *scene.Scene {
	opts := scene.DefaultOptions()
	opts.MaxDepth = maxDepth
	opts.BackgroundColor = background
	return &scene.Scene{
		Shapes:  shapes,
		Lights:  ls,
		Camera:  geometry.CameraConfig{From: core.NewVec3(0, 0, 5), To: core.Vec3{}},
		Options: opts,
	}
}

// createShadowScene places a ground plane under a point light, optionally
// with a sphere hanging between them
func createShadowScene(withOccluder bool) *scene.Scene {
	shapes := []geometry.Shape{geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), grey)}
	if withOccluder {
		shapes = append(shapes, geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5, grey))
	}
	// 64π makes I/(4π r²) exactly 1 at the origin, four units below
	light := lights.NewPointLightAt(core.NewVec3(0, 4, 0), core.NewVec3(1, 1, 1), 64*math.Pi)
	return newScene(shapes, []lights.Light{light}, 3, core.Vec3{})
}

func TestWhitted_ShadowOcclusion(t *testing.T) {
	wi := NewWhittedIntegrator()

	// Reaches the origin from the side, well clear of the occluder
	ray := core.NewRay(core.NewVec3(3, 1, 0), core.NewVec3(-3, -1, 0).Normalize())

	t.Run("unoccluded", func(t *testing.T) {
		stats := &RayStats{}
		color := wi.RayColor(ray, createShadowScene(false), stats)

		// albedo 0.5 × intensity 1 × cos 1
		want := core.NewVec3(0.5, 0.5, 0.5)
		if diff := cmp.Diff(want, color, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Errorf("Color mismatch (-want +got):\n%s", diff)
		}
		if stats.ShadowRays != 1 || stats.OccludedShadow != 0 {
			t.Errorf("Expected one unoccluded shadow ray, got %+v", stats)
		}
	})

	t.Run("occluded", func(t *testing.T) {
		stats := &RayStats{}
		color := wi.RayColor(ray, createShadowScene(true), stats)

		if color != (core.Vec3{}) {
			t.Errorf("Expected black for a fully shadowed point, got %v", color)
		}
		if stats.OccludedShadow != 1 {
			t.Errorf("Expected one occluded shadow ray, got %+v", stats)
		}
	})
}

func TestWhitted_DirectLightingPerLight(t *testing.T) {
	wi := NewWhittedIntegrator()
	point := core.Vec3{}
	normal := core.NewVec3(0, 1, 0)
	albedo := core.NewVec3(0.5, 0.5, 0.5)

	unoccluded := wi.directLighting(createShadowScene(false), point, normal, albedo, nil)
	occluded := wi.directLighting(createShadowScene(true), point, normal, albedo, nil)

	if unoccluded.X <= 0 || unoccluded.Y <= 0 || unoccluded.Z <= 0 {
		t.Errorf("Expected a strictly positive Lambertian term, got %v", unoccluded)
	}
	if occluded != (core.Vec3{}) {
		t.Errorf("Expected the occluder to remove the light entirely, got %v", occluded)
	}
}

func TestWhitted_ShadowRayStopsAtLight(t *testing.T) {
	// A sphere beyond the light must not cast a shadow
	shapes := []geometry.Shape{
		geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), grey),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 1, grey),
	}
	light := lights.NewPointLightAt(core.NewVec3(0, 4, 0), core.NewVec3(1, 1, 1), 64*math.Pi)
	s := newScene(shapes, []lights.Light{light}, 3, core.Vec3{})

	color := NewWhittedIntegrator().directLighting(s, core.Vec3{}, core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1), nil)
	if math.Abs(color.X-1) > 1e-6 {
		t.Errorf("Expected full contribution, got %v", color)
	}
}

func TestWhitted_DistantLightOccludedByAnything(t *testing.T) {
	shapes := []geometry.Shape{
		geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), grey),
		geometry.NewSphere(core.NewVec3(0, 500, 0), 1, grey),
	}
	light := lights.NewDistantLightFromDirection(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), math.Pi)
	s := newScene(shapes, []lights.Light{light}, 3, core.Vec3{})

	color := NewWhittedIntegrator().directLighting(s, core.Vec3{}, core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1), nil)
	if color != (core.Vec3{}) {
		t.Errorf("Expected a far occluder to block a distant light, got %v", color)
	}
}

func TestWhitted_LightBehindSurface(t *testing.T) {
	shapes := []geometry.Shape{geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), grey)}
	light := lights.NewPointLightAt(core.NewVec3(0, -4, 0), core.NewVec3(1, 1, 1), 1000)
	s := newScene(shapes, []lights.Light{light}, 3, core.Vec3{})

	ray := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	color := NewWhittedIntegrator().RayColor(ray, s, nil)
	if color.X < 0 || color.Y < 0 || color.Z < 0 {
		t.Errorf("Lambertian term must not go negative, got %v", color)
	}
	if color != (core.Vec3{}) {
		t.Errorf("Expected no light from below the plane, got %v", color)
	}
}

func TestWhitted_NonUnitNormalShadesLikeUnit(t *testing.T) {
	sun := lights.NewDistantLightFromDirection(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), 1)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// albedo 0.5 × I/π × cos 1
	c := 0.5 / math.Pi
	want := core.NewVec3(c, c, c)

	tests := []struct {
		name  string
		shape geometry.Shape
	}{
		{"plane literal", &geometry.Plane{Normal: core.NewVec3(0, 3, 0), Material: grey}},
		{"disc literal", &geometry.Disc{Normal: core.NewVec3(0, 0.25, 0), Radius: 2, Material: grey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScene([]geometry.Shape{tt.shape}, []lights.Light{sun}, 3, core.Vec3{})
			if err := s.Validate(); err != nil {
				t.Fatalf("Unexpected validation error: %v", err)
			}
			color := NewWhittedIntegrator().RayColor(ray, s, nil)
			if diff := cmp.Diff(want, color, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Color mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWhitted_MirrorAlbedoDoesNotTint(t *testing.T) {
	background := core.NewVec3(0.2, 0.4, 0.8)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	want := background.Multiply(reflectivity)

	for _, albedo := range []core.Vec3{core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0), {}} {
		mirror := geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), geometry.NewReflective(albedo))
		s := newScene([]geometry.Shape{mirror}, nil, 3, background)

		color := NewWhittedIntegrator().RayColor(ray, s, nil)
		if diff := cmp.Diff(want, color, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("Albedo %v tinted the reflection (-want +got):\n%s", albedo, diff)
		}
	}
}

func TestWhitted_ClampsToUnitRange(t *testing.T) {
	light := lights.NewPointLightAt(core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1), 1e6)
	s := newScene([]geometry.Shape{geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), grey)}, []lights.Light{light}, 3, core.Vec3{})

	color := NewWhittedIntegrator().RayColor(core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0)), s, nil)
	if diff := cmp.Diff(core.NewVec3(1, 1, 1), color); diff != "" {
		t.Errorf("Expected saturated color (-want +got):\n%s", diff)
	}
}

func TestWhitted_MissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.1, 0.2, 0.3)
	s := newScene(nil, nil, 3, background)

	stats := &RayStats{}
	color := NewWhittedIntegrator().RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), s, stats)
	if color != background {
		t.Errorf("Expected background %v, got %v", background, color)
	}
	if stats.CastRayCalls != 1 || stats.PrimaryRays != 1 {
		t.Errorf("Expected one primary cast, got %+v", stats)
	}
}

// createMirrorBox encloses the origin in six inward-facing mirrors so that
// every ray keeps bouncing
func createMirrorBox(maxDepth int, background core.Vec3) *scene.Scene {
	mirror := geometry.NewReflective(core.NewVec3(1, 1, 1))
	var shapes []geometry.Shape
	for _, n := range []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	} {
		shapes = append(shapes, geometry.NewPlane(n.Negate().Multiply(2), n, mirror))
	}
	return newScene(shapes, nil, maxDepth, background)
}

func TestWhitted_RecursionTerminates(t *testing.T) {
	wi := NewWhittedIntegrator()
	background := core.NewVec3(0.2, 0.4, 0.6)
	random := rand.New(rand.NewSource(42))

	for maxDepth := 0; maxDepth <= 6; maxDepth++ {
		s := createMirrorBox(maxDepth, background)

		// Each level scales by the reflectivity
		want := background
		for i := 0; i <= maxDepth; i++ {
			want = want.Multiply(reflectivity)
		}

		for i := 0; i < 20; i++ {
			dir := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
			if dir.LengthSquared() < 1e-6 {
				continue
			}
			ray := core.NewRay(core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5), dir.Normalize())

			stats := &RayStats{}
			color := wi.RayColor(ray, s, stats)

			if stats.CastRayCalls > int64(maxDepth+1) {
				t.Fatalf("maxDepth=%d: %d castRay calls, want at most %d", maxDepth, stats.CastRayCalls, maxDepth+1)
			}
			if diff := cmp.Diff(want, color, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Fatalf("maxDepth=%d: color mismatch (-want +got):\n%s", maxDepth, diff)
			}
		}
	}
}

func TestWhitted_PastDepthLimitReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.3, 0.6, 0.9)
	s := createMirrorBox(2, background)

	stats := &RayStats{}
	color := NewWhittedIntegrator().castRay(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), s, 3, stats)
	if color != background {
		t.Errorf("Expected exactly the background %v, got %v", background, color)
	}
	if stats.CastRayCalls != 1 || stats.DepthLimitHits != 1 {
		t.Errorf("Expected a single terminal call, got %+v", stats)
	}
}

func TestReflect(t *testing.T) {
	got := reflect(core.NewVec3(1, -1, 0).Normalize(), core.NewVec3(0, 1, 0))
	want := core.NewVec3(1, 1, 0).Normalize()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Reflection mismatch (-want +got):\n%s", diff)
	}
}
