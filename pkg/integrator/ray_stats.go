package integrator

import "github.com/df07/go-whitted-raytracer/pkg/core"

// RayStats counts the work done while shading. A nil *RayStats is valid and
// counts nothing. A RayStats is not safe for concurrent use; give each worker
// its own and Merge them afterwards.
type RayStats struct {
	CastRayCalls   int64 // Invocations of the recursive shader
	PrimaryRays    int64
	ReflectionRays int64
	ShadowRays     int64
	OccludedShadow int64 // Shadow rays that found an occluder
	DepthLimitHits int64 // Shader calls that stopped on the depth limit
}

func (s *RayStats) countCast(kind core.RayKind) {
	if s == nil {
		return
	}
	s.CastRayCalls++
	switch kind {
	case core.RayPrimary:
		s.PrimaryRays++
	case core.RayReflection:
		s.ReflectionRays++
	}
}

func (s *RayStats) countShadow(occluded bool) {
	if s == nil {
		return
	}
	s.ShadowRays++
	if occluded {
		s.OccludedShadow++
	}
}

func (s *RayStats) countDepthLimit() {
	if s == nil {
		return
	}
	s.DepthLimitHits++
}

// Merge adds other's counters into s
func (s *RayStats) Merge(other RayStats) {
	if s == nil {
		return
	}
	s.CastRayCalls += other.CastRayCalls
	s.PrimaryRays += other.PrimaryRays
	s.ReflectionRays += other.ReflectionRays
	s.ShadowRays += other.ShadowRays
	s.OccludedShadow += other.OccludedShadow
	s.DepthLimitHits += other.DepthLimitHits
}

// TotalRays returns the number of rays traced against the scene
func (s RayStats) TotalRays() int64 {
	return s.PrimaryRays + s.ReflectionRays + s.ShadowRays
}
