package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Seeds for presets that place objects at random
const (
	RandomSceneSeed = 2
	FinalSceneSeed  = 3
)

// DefaultTexturePath is where the earth presets look for their texture
const DefaultTexturePath = "earthmap.jpg"

var (
	black    = core.NewVec3(0, 0, 0)
	skyColor = core.NewVec3(0.7, 0.8, 1.0)
)

// presetCamera is the shared starting point for preset cameras: a pinhole
// looking at the origin from (13, 2, 3) with the shutter open over [0, 1]
func presetCamera(aspectRatio float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	}
}

// cornellCamera looks into the 555-unit Cornell box from the open side
func cornellCamera() renderer.CameraConfig {
	config := presetCamera(1.0)
	config.LookFrom = core.NewVec3(278, 278, -800)
	config.LookAt = core.NewVec3(278, 278, 0)
	config.VFov = 40
	return config
}

func cornellSampling(samples int) SamplingConfig {
	sampling := DefaultSamplingConfig()
	sampling.ImageWidth = 600
	sampling.AspectRatio = 1.0
	sampling.SamplesPerPixel = samples
	return sampling
}

func texturePath(opts Options) string {
	if opts.TexturePath == "" {
		return DefaultTexturePath
	}
	return opts.TexturePath
}

// NewRandomScene creates the cover scene: a checkered ground covered in a grid
// of small random spheres, with three large feature spheres
func NewRandomScene(opts Options) *Scene {
	s := New()
	sampling := DefaultSamplingConfig()
	s.SetSampling(sampling)

	camera := presetCamera(sampling.AspectRatio)
	camera.Aperture = 0.1
	s.SetCamera(camera)
	s.SetBackground(renderer.NewSkyBackground())

	sampler := core.NewSeededSampler(RandomSceneSeed)

	checker := material.NewCheckerTextureFromColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Float64()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Float64(),
				0.2,
				float64(b)+0.9*sampler.Float64(),
			)
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	// Small spheres in front of the camera, including a hollow glass bubble
	glass := material.NewDielectric(1.5)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0)),
	)

	return s
}

// NewTwoSpheresScene stacks two large checkered spheres
func NewTwoSpheresScene(opts Options) *Scene {
	s := New()
	s.SetCamera(presetCamera(s.Sampling.AspectRatio))
	s.SetBackground(renderer.SolidBackground{Color: skyColor})

	checker := material.NewTexturedLambertian(
		material.NewCheckerTextureFromColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	return s
}

// NewTwoPerlinSpheresScene places a marble sphere on a marble ground
func NewTwoPerlinSpheresScene(opts Options) *Scene {
	s := New()
	s.SetCamera(presetCamera(s.Sampling.AspectRatio))
	s.SetBackground(renderer.SolidBackground{Color: skyColor})
	s.Add(perlinSpheres()...)
	return s
}

func perlinSpheres() []geometry.Hittable {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, core.NewSeededSampler(RandomSceneSeed)))
	return []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

// NewEarthScene renders a single globe textured from an image file. A missing
// texture file renders the globe in the placeholder color.
func NewEarthScene(opts Options) *Scene {
	s := New()
	s.SetCamera(presetCamera(s.Sampling.AspectRatio))
	s.SetBackground(renderer.SolidBackground{Color: skyColor})

	earth := material.NewTexturedLambertian(material.NewImageTextureFromFile(texturePath(opts)))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, earth))
	return s
}

// NewSimpleLightScene lights the marble spheres with a rectangle and a sphere
// against a black sky
func NewSimpleLightScene(opts Options) *Scene {
	s := New()
	sampling := DefaultSamplingConfig()
	sampling.SamplesPerPixel = 400
	s.SetSampling(sampling)

	camera := presetCamera(sampling.AspectRatio)
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	s.SetCamera(camera)
	s.SetBackground(renderer.SolidBackground{Color: black})

	s.Add(perlinSpheres()...)
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	s.Add(
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 2, light),
	)
	return s
}

// cornellWalls returns the five walls of the box and its ceiling light
func cornellWalls(light material.Material, lightRect [4]float64) []geometry.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Hittable{
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewXZRect(lightRect[0], lightRect[1], lightRect[2], lightRect[3], 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	}
}

// cornellBlocks returns the tall and short boxes, rotated and placed
func cornellBlocks(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295))
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(168, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellBoxScene creates the classic Cornell box with two white blocks
func NewCornellBoxScene(opts Options) *Scene {
	s := New()
	s.SetSampling(cornellSampling(200))
	s.SetCamera(cornellCamera())
	s.SetBackground(renderer.SolidBackground{Color: black})

	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	s.Add(cornellWalls(light, [4]float64{213, 343, 227, 332})...)

	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	s.Add(tall, short)
	return s
}

// NewCornellSmokeScene replaces the Cornell blocks with black and white smoke
// under a larger, dimmer light
func NewCornellSmokeScene(opts Options) *Scene {
	s := New()
	s.SetSampling(cornellSampling(200))
	s.SetCamera(cornellCamera())
	s.SetBackground(renderer.SolidBackground{Color: black})

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(cornellWalls(light, [4]float64{113, 443, 127, 432})...)

	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)
	return s
}

// NewFinalScene combines every feature: instanced boxes, motion blur, glass,
// subsurface-like volumes, fog, image and noise textures
func NewFinalScene(opts Options) *Scene {
	s := New()
	sampling := DefaultSamplingConfig()
	sampling.ImageWidth = 800
	sampling.AspectRatio = 1.0
	sampling.SamplesPerPixel = 10000
	s.SetSampling(sampling)

	camera := presetCamera(sampling.AspectRatio)
	camera.LookFrom = core.NewVec3(478, 278, -600)
	camera.LookAt = core.NewVec3(278, 278, 0)
	camera.VFov = 40
	s.SetCamera(camera)
	s.SetBackground(renderer.SolidBackground{Color: black})

	sampler := core.NewSeededSampler(FinalSceneSeed)

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	var boxes []geometry.Hittable
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	s.Add(geometry.NewBVHNode(boxes, 0, 1, sampler))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	center0 := core.NewVec3(400, 400, 400)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	s.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass shell filled with blue smoke
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth := material.NewTexturedLambertian(material.NewImageTextureFromFile(texturePath(opts)))
	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, earth))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(0.1, sampler))
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Hittable, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	s.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVHNode(cluster, 0, 1, sampler), 15),
		core.NewVec3(-100, 270, 395)))

	return s
}
