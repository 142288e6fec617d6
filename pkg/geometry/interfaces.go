package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]. The sampler is
	// only consumed by participating media.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval,
	// or false if the object is unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
