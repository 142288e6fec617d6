package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene is everything the renderer needs to produce an image
type Scene interface {
	ImageSize() (width, height int)
	GetObjects() []geometry.Hittable
	GetCamera() *Camera
	GetBackground() Background
	SamplesPerPixel() int
	MaxDepth() int
	ShutterInterval() (time0, time1 float64)
}

// Raytracer turns pixel coordinates into final 8-bit colors
type Raytracer struct {
	camera          *Camera
	world           geometry.Hittable
	background      Background
	width, height   int
	samplesPerPixel int
	maxDepth        int
}

// NewRaytracer creates a raytracer for scene that intersects rays against world,
// usually a BVH built over the scene's objects
func NewRaytracer(scene Scene, world geometry.Hittable) *Raytracer {
	width, height := scene.ImageSize()
	return &Raytracer{
		camera:          scene.GetCamera(),
		world:           world,
		background:      scene.GetBackground(),
		width:           width,
		height:          height,
		samplesPerPixel: scene.SamplesPerPixel(),
		maxDepth:        scene.MaxDepth(),
	}
}

// RenderPixel takes jittered samples for the pixel at column x and image row y
// (row 0 at the top) and returns the gamma-corrected color
func (rt *Raytracer) RenderPixel(x, y int, sampler core.Sampler) [3]byte {
	// Camera t runs bottom to top
	j := rt.height - 1 - y
	du := float64(max(rt.width-1, 1))
	dv := float64(max(rt.height-1, 1))

	var sum core.Vec3
	for s := 0; s < rt.samplesPerPixel; s++ {
		u := (float64(x) + sampler.Float64()) / du
		v := (float64(j) + sampler.Float64()) / dv
		ray := rt.camera.GetRay(u, v, sampler)
		sum = sum.Add(RayColor(ray, rt.background, rt.world, rt.maxDepth, sampler))
	}

	return vec3ToColor(sum, rt.samplesPerPixel)
}

// vec3ToColor averages a summed color, applies gamma 2 and quantizes to bytes
func vec3ToColor(sum core.Vec3, samples int) [3]byte {
	c := sum.Divide(float64(max(samples, 1))).Sqrt()
	return [3]byte{toByte(c.X), toByte(c.Y), toByte(c.Z)}
}

func toByte(c float64) byte {
	if math.IsNaN(c) {
		return 0
	}
	return byte(256 * max(0, min(0.999, c)))
}
