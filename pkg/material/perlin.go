package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// DefaultTurbulenceDepth is the number of noise octaves summed by Turbulence
const DefaultTurbulenceDepth = 7

// Perlin generates smoothed gradient noise
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds the gradient and permutation tables from the sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.RandomVec3(sampler, -1, 1).Normalize()
	}
	p.permX = generatePermutation(sampler)
	p.permY = generatePermutation(sampler)
	p.permZ = generatePermutation(sampler)
	return p
}

// Noise returns gradient noise in roughly [-1, 1] at the given point
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterpolate(&c, u, v, w)
}

// Turbulence sums depth octaves of noise at doubling frequency and halving weight
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

func perlinInterpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	// Hermite smoothing removes grid artifacts
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		fi := float64(i)
		for j := 0; j < 2; j++ {
			fj := float64(j)
			for k := 0; k < 2; k++ {
				fk := float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// generatePermutation returns a Fisher-Yates shuffle of 0..255
func generatePermutation(sampler core.Sampler) [perlinPointCount]int {
	var p [perlinPointCount]int
	for i := range p {
		p[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := sampler.Intn(i + 1)
		p[i], p[target] = p[target], p[i]
	}
	return p
}
