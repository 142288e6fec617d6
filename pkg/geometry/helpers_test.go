package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// testMaterial absorbs everything. id tells instances apart in hit records.
type testMaterial struct {
	id int
}

func (testMaterial) Scatter(rayIn core.Ray, hit *material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func (testMaterial) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// unboundedHittable never hits and reports no bounding box
type unboundedHittable struct{}

func (unboundedHittable) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return nil, false
}

func (unboundedHittable) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
