package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectPadding gives axis-aligned rectangles a non-zero thickness in their bounding box
const rectPadding = 0.0001

// axisRect is a rectangle perpendicular to axis k, spanning [a0,a1] on axis a
// and [b0,b1] on axis b, at offset K along axis k
type axisRect struct {
	a, b, k        int
	A0, A1, B0, B1 float64
	K              float64
	Material       material.Material
}

func (r *axisRect) hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t := (r.K - ray.Origin.Get(r.k)) / ray.Direction.Get(r.k)
	// Rejects NaN. A parallel ray may still yield ±Inf here; the extent check
	// below rejects it.
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	pa := ray.Origin.Get(r.a) + t*ray.Direction.Get(r.a)
	pb := ray.Origin.Get(r.b) + t*ray.Direction.Get(r.b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        rectCoordinate(pa, r.A0, r.A1),
		V:        rectCoordinate(pb, r.B0, r.B1),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, axisVector(r.k, 1))
	return hit, true
}

// rectCoordinate maps p in [lo, hi] to [0, 1]. A zero-width extent maps to 0.
func rectCoordinate(p, lo, hi float64) float64 {
	if hi-lo == 0 {
		return 0
	}
	return (p - lo) / (hi - lo)
}

func (r *axisRect) boundingBox() core.AABB {
	var lo, hi [3]float64
	lo[r.a], hi[r.a] = r.A0, r.A1
	lo[r.b], hi[r.b] = r.B0, r.B1
	lo[r.k], hi[r.k] = r.K-rectPadding, r.K+rectPadding
	return core.NewAABB(core.NewVec3(lo[0], lo[1], lo[2]), core.NewVec3(hi[0], hi[1], hi[2]))
}

func axisVector(axis int, value float64) core.Vec3 {
	var c [3]float64
	c[axis] = value
	return core.NewVec3(c[0], c[1], c[2])
}

// XYRect is a rectangle in the plane z = K
type XYRect struct {
	rect axisRect
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *XYRect {
	return &XYRect{rect: axisRect{a: 0, b: 1, k: 2, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}}
}

func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return r.rect.hit(ray, tMin, tMax)
}

func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.rect.boundingBox(), true
}

// XZRect is a rectangle in the plane y = K
type XZRect struct {
	rect axisRect
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *XZRect {
	return &XZRect{rect: axisRect{a: 0, b: 2, k: 1, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}}
}

func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return r.rect.hit(ray, tMin, tMax)
}

func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.rect.boundingBox(), true
}

// YZRect is a rectangle in the plane x = K
type YZRect struct {
	rect axisRect
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *YZRect {
	return &YZRect{rect: axisRect{a: 1, b: 2, k: 0, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}}
}

func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return r.rect.hit(ray, tMin, tMax)
}

func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.rect.boundingBox(), true
}
