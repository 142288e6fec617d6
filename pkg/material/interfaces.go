package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for surfaces and volumes that interact with rays
type Material interface {
	// Scatter returns the attenuation and the outgoing ray, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the given surface coordinates
	Emitted(u, v float64, point core.Vec3) core.Vec3
}

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at UV coordinates (image textures) and 3D point (procedural textures)
	Value(u, v float64, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation core.Vec3 // Color attenuation
	Scattered   core.Ray  // The scattered ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	Material  Material  // Material of the hit object
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface texture coordinates
	FrontFace bool      // Whether the ray hit the outward-facing side
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// noEmission gives non-emitting materials a black Emitted
type noEmission struct{}

func (noEmission) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
