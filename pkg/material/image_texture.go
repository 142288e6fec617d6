package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// MissingTextureColor is returned by image textures without backing data
var MissingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a decoded RGB image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []byte // Packed RGB, row-major: Pixels[3*(y*Width + x)]
}

// NewImageTexture creates a new image texture from packed RGB bytes
func NewImageTexture(width, height int, pixels []byte) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromFile loads an image file. A failed load is logged and the
// returned texture renders as MissingTextureColor so the render can still complete.
func NewImageTextureFromFile(filename string) *ImageTexture {
	img, err := loaders.LoadImage(filename)
	if err != nil {
		core.Logger().Warn("could not load image texture", "file", filename, "error", err)
		return &ImageTexture{}
	}
	return NewImageTexture(img.Width, img.Height, img.Pixels)
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < 3*t.Width*t.Height {
		return MissingTextureColor
	}

	// NaN coordinates from degenerate surfaces sample the first texel
	if math.IsNaN(u) {
		u = 0
	}
	if math.IsNaN(v) {
		v = 0
	}

	// Clamp UV to [0, 1] and flip V to image coordinates (origin at top-left)
	u = max(0, min(1, u))
	v = 1.0 - max(0, min(1, v))

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	offset := 3 * (y*t.Width + x)
	return core.NewVec3(
		float64(t.Pixels[offset])/255,
		float64(t.Pixels[offset+1])/255,
		float64(t.Pixels[offset+2])/255,
	)
}
