package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting the surface they left
const shadowAcneEpsilon = 0.001

// RayColor estimates the radiance arriving along ray by recursive path tracing.
// Paths are cut off after depth bounces.
func RayColor(ray core.Ray, background Background, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(ray, shadowAcneEpsilon, math.Inf(1), sampler)
	if !ok {
		return background.ColorAt(ray.Direction)
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)
	scatter, ok := hit.Material.Scatter(ray, hit, sampler)
	if !ok {
		return emitted
	}

	incoming := RayColor(scatter.Scattered, background, world, depth-1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
