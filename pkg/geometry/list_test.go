package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestHittableList_ClosestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial{})

	// Order must not matter
	for _, list := range []*HittableList{NewHittableList(near, far), NewHittableList(far, near)} {
		hit, ok := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
		if !ok {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.T-1.5) > 1e-12 {
			t.Errorf("Expected closest hit at t=1.5, got %f", hit.T)
		}
	}
}

func TestHittableList_AddClear(t *testing.T) {
	list := NewHittableList()
	if list.Len() != 0 {
		t.Fatalf("Expected empty list, got %d", list.Len())
	}
	if _, ok := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil); ok {
		t.Error("Empty list should never hit")
	}

	list.Add(NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial{}), NewXYRect(0, 1, 0, 1, 0, testMaterial{}))
	if list.Len() != 2 || len(list.Objects()) != 2 {
		t.Errorf("Expected 2 objects, got %d", list.Len())
	}

	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d", list.Len())
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	a := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	b := NewSphere(core.NewVec3(5, 5, 5), 1, testMaterial{})

	tests := []struct {
		name    string
		list    *HittableList
		wantOk  bool
		wantBox core.AABB
	}{
		{"empty", NewHittableList(), false, core.AABB{}},
		{"single", NewHittableList(a), true, core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))},
		{"union", NewHittableList(a, b), true, core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(6, 6, 6))},
		{"unbounded child", NewHittableList(a, unboundedHittable{}), false, core.AABB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := tt.list.BoundingBox(0, 1)
			if ok != tt.wantOk {
				t.Fatalf("Expected ok=%t, got %t", tt.wantOk, ok)
			}
			if ok && box != tt.wantBox {
				t.Errorf("Expected %v, got %v", tt.wantBox, box)
			}
		})
	}
}
