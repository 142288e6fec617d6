package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is a flat collection of objects searched linearly
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	list.Add(objects...)
	return list
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...Hittable) {
	l.objects = append(l.objects, objects...)
}

// Clear removes every object
func (l *HittableList) Clear() {
	l.objects = nil
}

// Objects returns the list contents. The slice must not be modified.
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, sampler); ok {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox is the union of all children's boxes. An empty list, or one with
// an unbounded child, has no box.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.objects) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, object := range l.objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = result.Union(box)
		}
	}
	return result, true
}
