package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// testScene is a minimal Scene backed by plain fields
type testScene struct {
	width, height int
	objects       []geometry.Hittable
	camera        *Camera
	background    Background
	samples       int
	depth         int
}

func newTestScene(width, height int, objects ...geometry.Hittable) *testScene {
	config := DefaultCameraConfig()
	config.AspectRatio = float64(width) / float64(max(height, 1))
	return &testScene{
		width:      width,
		height:     height,
		objects:    objects,
		camera:     NewCamera(config),
		background: NewSkyBackground(),
		samples:    4,
		depth:      10,
	}
}

func (s *testScene) ImageSize() (int, int) { return s.width, s.height }
func (s *testScene) GetObjects() []geometry.Hittable { return s.objects }
func (s *testScene) GetCamera() *Camera { return s.camera }
func (s *testScene) GetBackground() Background { return s.background }
func (s *testScene) SamplesPerPixel() int { return s.samples }
func (s *testScene) MaxDepth() int { return s.depth }
func (s *testScene) ShutterInterval() (float64, float64) { return 0, 0 }

// gatedHittable blocks every intersection until gate is closed
type gatedHittable struct {
	gate chan struct{}
}

func (g *gatedHittable) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	<-g.gate
	return nil, false
}

func (g *gatedHittable) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(core.NewVec3(-1e6, -1e6, -1e6), core.NewVec3(1e6, 1e6, 1e6)), true
}

func diffuseSpheres() []geometry.Hittable {
	return []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0))),
	}
}
