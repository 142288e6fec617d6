package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background supplies the radiance of rays that escape the scene
type Background interface {
	ColorAt(direction core.Vec3) core.Vec3
}

// SolidBackground is the same color in every direction
type SolidBackground struct {
	Color core.Vec3
}

func (b SolidBackground) ColorAt(direction core.Vec3) core.Vec3 {
	return b.Color
}

// GradientBackground blends vertically from Horizon (straight down) to Zenith
// (straight up)
type GradientBackground struct {
	Horizon core.Vec3
	Zenith  core.Vec3
}

// NewSkyBackground returns the white-to-blue daylight gradient
func NewSkyBackground() GradientBackground {
	return GradientBackground{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

func (b GradientBackground) ColorAt(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return b.Horizon.Lerp(b.Zenith, t)
}
