package geometry

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestBVH_LeftChildWinsTie(t *testing.T) {
	left := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial{id: 1})
	right := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial{id: 2})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for seed := int64(0); seed < 3; seed++ {
		root := NewBVHNode([]Hittable{left, right}, 0, 1, core.NewSeededSampler(seed))
		node, ok := root.(*BVHNode)
		if !ok {
			t.Fatalf("Expected *BVHNode, got %T", root)
		}
		// Identical boxes keep input order
		if node.Left != Hittable(left) || node.Right != Hittable(right) {
			t.Fatalf("seed %d: unexpected child order", seed)
		}

		hit, ok := root.Hit(ray, 0.001, math.Inf(1), core.NewSeededSampler(1))
		if !ok {
			t.Fatalf("seed %d: expected hit", seed)
		}
		if hit.Material != (testMaterial{id: 1}) {
			t.Errorf("seed %d: expected left child's material on a tie, got %v", seed, hit.Material)
		}
	}
}

func randomSpheres(sampler core.Sampler, n int) []Hittable {
	objects := make([]Hittable, 0, n)
	for i := 0; i < n; i++ {
		center := core.RandomVec3(sampler, -20, 20)
		objects = append(objects, NewSphere(center, core.RandomRange(sampler, 0.2, 2), testMaterial{id: i + 1}))
	}
	return objects
}

func TestBVH_MatchesLinearSearch(t *testing.T) {
	sampler := core.NewSeededSampler(3)

	for _, count := range []int{1, 2, 3, 7, 64} {
		objects := randomSpheres(sampler, count)
		objects = append(objects, NewXZRect(-30, 30, -30, 30, -25, testMaterial{id: -1}))

		list := NewHittableList(objects...)
		bvh := NewBVHNode(objects, 0, 1, core.NewSeededSampler(int64(count)))

		for i := 0; i < 500; i++ {
			ray := core.NewRay(core.RandomVec3(sampler, -40, 40), core.RandomUnitVector(sampler))

			listHit, listOk := list.Hit(ray, 0.001, math.Inf(1), sampler)
			bvhHit, bvhOk := bvh.Hit(ray, 0.001, math.Inf(1), sampler)

			if listOk != bvhOk {
				t.Fatalf("count %d ray %d: list hit=%t, bvh hit=%t", count, i, listOk, bvhOk)
			}
			if !listOk {
				continue
			}
			if listHit.T != bvhHit.T || listHit.Point != bvhHit.Point || listHit.Normal != bvhHit.Normal {
				t.Fatalf("count %d ray %d: list %+v, bvh %+v", count, i, listHit, bvhHit)
			}
			if listHit.Material != bvhHit.Material {
				t.Fatalf("count %d ray %d: list struck %v, bvh struck %v", count, i, listHit.Material, bvhHit.Material)
			}
		}
	}
}

func TestBVH_DoesNotModifyInput(t *testing.T) {
	objects := randomSpheres(core.NewSeededSampler(5), 20)
	original := append([]Hittable(nil), objects...)

	NewBVHNode(objects, 0, 1, core.NewSeededSampler(1))

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatalf("input slice reordered at %d", i)
		}
	}
}

func TestBVH_BoundingBoxContainsChildren(t *testing.T) {
	objects := randomSpheres(core.NewSeededSampler(8), 30)
	root := NewBVHNode(objects, 0, 1, core.NewSeededSampler(2))

	rootBox, ok := root.BoundingBox(0, 1)
	if !ok {
		t.Fatal("BVH over bounded objects should have a box")
	}
	for _, object := range objects {
		box, _ := object.BoundingBox(0, 1)
		if !rootBox.Contains(box) {
			t.Errorf("root box %v does not contain %v", rootBox, box)
		}
	}
}

func TestBVH_SingleObject(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial{})
	root := NewBVHNode([]Hittable{sphere}, 0, 1, core.NewSeededSampler(1))

	node, ok := root.(*BVHNode)
	if !ok {
		t.Fatalf("Expected *BVHNode, got %T", root)
	}
	if node.Left != sphere || node.Right != sphere {
		t.Error("Single-object node should reference the object from both children")
	}

	hit, ok := root.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
	if !ok || math.Abs(hit.T-0.5) > 1e-12 {
		t.Errorf("Expected hit at t=0.5, got %v (ok=%t)", hit, ok)
	}

	stats := Stats(root)
	if stats.Nodes != 1 || stats.Leaves != 1 || stats.MaxDepth != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestBVH_Empty(t *testing.T) {
	root := NewBVHNode(nil, 0, 1, core.NewSeededSampler(1))

	if _, ok := root.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil); ok {
		t.Error("Empty BVH should never hit")
	}
	if _, ok := root.BoundingBox(0, 1); ok {
		t.Error("Empty BVH should have no bounding box")
	}
	if stats := Stats(root); stats != (BVHStats{}) {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
}

func TestBVH_Stats(t *testing.T) {
	objects := randomSpheres(core.NewSeededSampler(4), 16)
	stats := Stats(NewBVHNode(objects, 0, 1, core.NewSeededSampler(4)))

	if stats.Leaves != 16 {
		t.Errorf("Expected 16 leaves, got %d", stats.Leaves)
	}
	// A binary tree over n leaves with no single-object nodes has n-1 interior nodes
	if stats.Nodes != 15 {
		t.Errorf("Expected 15 interior nodes, got %d", stats.Nodes)
	}
	if stats.MaxDepth != 4 {
		t.Errorf("Expected depth 4 for a balanced split of 16, got %d", stats.MaxDepth)
	}
}

func TestBVH_Deterministic(t *testing.T) {
	objects := randomSpheres(core.NewSeededSampler(6), 40)
	a := NewBVHNode(objects, 0, 1, core.NewSeededSampler(9))
	b := NewBVHNode(objects, 0, 1, core.NewSeededSampler(9))

	var walk func(x, y Hittable) bool
	walk = func(x, y Hittable) bool {
		nx, okx := x.(*BVHNode)
		ny, oky := y.(*BVHNode)
		if okx != oky {
			return false
		}
		if !okx {
			return x == y
		}
		return nx.Box == ny.Box && walk(nx.Left, ny.Left) && walk(nx.Right, ny.Right)
	}
	if !walk(a, b) {
		t.Error("Same seed should build identical hierarchies")
	}
}

func TestBVH_UnboundedChildLogsWarning(t *testing.T) {
	orig := core.Logger()
	t.Cleanup(func() { core.SetLogger(orig) })

	var buf bytes.Buffer
	core.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial{})
	root := NewBVHNode([]Hittable{sphere, unboundedHittable{}}, 0, 1, core.NewSeededSampler(1))

	if !strings.Contains(buf.String(), "no bounding box") {
		t.Errorf("Expected a warning about the missing box, got %q", buf.String())
	}

	// The hierarchy must still be usable for bounded objects near the origin
	if _, ok := root.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil); !ok {
		t.Error("Expected the sphere to remain hittable")
	}
}
