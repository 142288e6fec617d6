package geometry

import (
	"slices"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node of a bounding volume hierarchy. Leaves hold the same object
// in both children when a single object remains.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// NewBVHNode builds a hierarchy over objects. The split axis of each node is
// drawn from sampler. The input slice is not modified. An empty list yields a
// hittable that never hits.
func NewBVHNode(objects []Hittable, time0, time1 float64, sampler core.Sampler) Hittable {
	if len(objects) == 0 {
		return emptyNode{}
	}
	// Work on a copy so callers can share the scene list across renders
	return buildBVH(slices.Clone(objects), time0, time1, sampler)
}

func buildBVH(objects []Hittable, time0, time1 float64, sampler core.Sampler) *BVHNode {
	axis := sampler.Intn(3)
	less := func(a, b Hittable) int {
		boxA := boxOrEmpty(a, time0, time1)
		boxB := boxOrEmpty(b, time0, time1)
		av, bv := boxA.Min.Get(axis), boxB.Min.Get(axis)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
	case 2:
		if less(objects[0], objects[1]) <= 0 {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		slices.SortStableFunc(objects, less)
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], time0, time1, sampler)
		node.Right = buildBVH(objects[mid:], time0, time1, sampler)
	}

	node.Box = boxOrEmpty(node.Left, time0, time1).Union(boxOrEmpty(node.Right, time0, time1))
	return node
}

// boxOrEmpty substitutes a degenerate box for unbounded objects so construction
// can proceed
func boxOrEmpty(object Hittable, time0, time1 float64) core.AABB {
	box, ok := object.BoundingBox(time0, time1)
	if !ok {
		core.Logger().Warn("no bounding box in BVH construction", "object", object)
		return core.EmptyAABB()
	}
	return box
}

// Hit tests the node's box, then both children, the right one only up to the
// left child's hit distance. The left child wins a tie.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler)
	if hitRight && (!hitLeft || rightHit.T < leftHit.T) {
		return rightHit, true
	}
	return leftHit, hitLeft
}

func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// emptyNode stands in for a hierarchy over no objects
type emptyNode struct{}

func (emptyNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return nil, false
}

func (emptyNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes    int // Interior nodes
	Leaves   int // Distinct primitive children
	MaxDepth int
}

// Stats walks the hierarchy rooted at root. Anything that is not a *BVHNode
// counts as a leaf.
func Stats(root Hittable) BVHStats {
	var stats BVHStats
	if _, ok := root.(emptyNode); ok {
		return stats
	}
	collectStats(root, 0, &stats)
	return stats
}

func collectStats(h Hittable, depth int, stats *BVHStats) {
	stats.MaxDepth = max(stats.MaxDepth, depth)

	node, ok := h.(*BVHNode)
	if !ok {
		stats.Leaves++
		return
	}

	stats.Nodes++
	collectStats(node.Left, depth+1, stats)
	// A single-object node repeats its child
	if node.Right != node.Left {
		collectStats(node.Right, depth+1, stats)
	}
}
