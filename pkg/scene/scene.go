package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	World        *geometry.HittableList // Objects in the scene
	Background   renderer.Background    // Color for rays that escape
	Sampling     SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	ImageWidth      int     // Image width in pixels
	AspectRatio     float64 // Width / height
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the settings presets start from
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// New creates an empty scene with a default camera, a black background and
// default sampling
func New() *Scene {
	s := &Scene{
		World:      geometry.NewHittableList(),
		Background: renderer.SolidBackground{Color: core.NewVec3(0, 0, 0)},
		Sampling:   DefaultSamplingConfig(),
	}
	s.SetCamera(renderer.DefaultCameraConfig())
	return s
}

// Add appends objects to the world
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.World.Add(objects...)
}

// SetCamera replaces the camera with one built from config
func (s *Scene) SetCamera(config renderer.CameraConfig) {
	s.CameraConfig = config
	s.Camera = renderer.NewCamera(config)
}

func (s *Scene) SetBackground(background renderer.Background) {
	s.Background = background
}

func (s *Scene) SetSampling(config SamplingConfig) {
	s.Sampling = config
}

// ImageSize returns the output dimensions. Height is the width divided by the
// aspect ratio, truncated.
func (s *Scene) ImageSize() (width, height int) {
	width = s.Sampling.ImageWidth
	if s.Sampling.AspectRatio <= 0 {
		return width, 0
	}
	return width, int(float64(width) / s.Sampling.AspectRatio)
}

func (s *Scene) GetObjects() []geometry.Hittable { return s.World.Objects() }
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }
func (s *Scene) GetBackground() renderer.Background { return s.Background }
func (s *Scene) SamplesPerPixel() int { return s.Sampling.SamplesPerPixel }
func (s *Scene) MaxDepth() int { return s.Sampling.MaxDepth }
func (s *Scene) ShutterInterval() (time0, time1 float64) { return s.Camera.ShutterInterval() }

var _ renderer.Scene = (*Scene)(nil)
