package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box built from six rectangles
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box between two opposite corners
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	sides := NewHittableList()
	sides.Add(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat),
	)
	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit returns the closest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box's own corners
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
