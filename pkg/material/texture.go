package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures in a 3D checker pattern
type CheckerTexture struct {
	Even Texture
	Odd  Texture
}

// NewCheckerTexture creates a checker pattern from two textures
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerTextureFromColors creates a checker pattern from two solid colors
func NewCheckerTextureFromColors(even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the even or odd texture from the sign of sin(10x)·sin(10y)·sin(10z)
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

// NoiseTexture is a marble-like pattern driven by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64 // Frequency of the stripes
}

// NewNoiseTexture creates a noise texture whose gradient tables are drawn from sampler
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(sampler), Scale: scale}
}

// Value returns a grey level in [0, 1]
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.Noise.Turbulence(point, DefaultTurbulenceDepth)
	return core.NewVec3(1, 1, 1).Multiply(0.5 * (1 + math.Sin(phase)))
}
