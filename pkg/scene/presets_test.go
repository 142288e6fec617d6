package scene

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// missingTexture points the earth presets at a file that does not exist
func missingTexture(t *testing.T) Options {
	return Options{TexturePath: filepath.Join(t.TempDir(), "missing.jpg")}
}

func TestPresets_Build(t *testing.T) {
	tests := []struct {
		name           string
		expectedWidth  int
		expectedHeight int
		expectedSPP    int
	}{
		{"random", 400, 225, 100},
		{"two-spheres", 400, 225, 100},
		{"two-perlin-spheres", 400, 225, 100},
		{"earth", 400, 225, 100},
		{"simple-light", 400, 225, 400},
		{"cornell-box", 600, 600, 200},
		{"cornell-smoke", 600, 600, 200},
		{"final", 800, 800, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ByName(tt.name, missingTexture(t))
			if err != nil {
				t.Fatalf("ByName(%q) failed: %v", tt.name, err)
			}

			w, h := s.ImageSize()
			if w != tt.expectedWidth || h != tt.expectedHeight {
				t.Errorf("ImageSize() = (%d, %d), want (%d, %d)", w, h, tt.expectedWidth, tt.expectedHeight)
			}
			if s.SamplesPerPixel() != tt.expectedSPP {
				t.Errorf("SamplesPerPixel() = %d, want %d", s.SamplesPerPixel(), tt.expectedSPP)
			}
			if s.MaxDepth() != 50 {
				t.Errorf("MaxDepth() = %d, want 50", s.MaxDepth())
			}
			if s.CameraConfig.AspectRatio != s.Sampling.AspectRatio {
				t.Errorf("Camera aspect %v does not match image aspect %v",
					s.CameraConfig.AspectRatio, s.Sampling.AspectRatio)
			}
			if t0, t1 := s.ShutterInterval(); t0 != 0 || t1 != 1 {
				t.Errorf("ShutterInterval() = (%v, %v), want (0, 1)", t0, t1)
			}

			objects := s.GetObjects()
			if len(objects) == 0 {
				t.Fatal("Preset has no objects")
			}
			for i, object := range objects {
				if _, ok := object.BoundingBox(0, 1); !ok {
					t.Errorf("Object %d (%T) has no bounding box", i, object)
				}
			}
		})
	}
}

func TestRandomScene_Deterministic(t *testing.T) {
	a := NewRandomScene(Options{}).GetObjects()
	b := NewRandomScene(Options{}).GetObjects()

	if len(a) != len(b) {
		t.Fatalf("Object counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		boxA, _ := a[i].BoundingBox(0, 1)
		boxB, _ := b[i].BoundingBox(0, 1)
		if boxA != boxB {
			t.Fatalf("Object %d differs between builds: %v vs %v", i, boxA, boxB)
		}
	}
}

func TestRandomScene_Layout(t *testing.T) {
	objects := NewRandomScene(Options{}).GetObjects()

	// ground + grid + 3 feature spheres + 4 foreground spheres
	const fixed = 1 + 3 + 4
	small := len(objects) - fixed
	if small <= 0 || small > 22*22 {
		t.Fatalf("Unexpected number of grid spheres: %d", small)
	}

	clearing := core.NewVec3(4, 0.2, 0)
	for _, object := range objects[1 : 1+small] {
		var center core.Vec3
		switch s := object.(type) {
		case *geometry.Sphere:
			center = s.Center
		case *geometry.MovingSphere:
			center = s.Center0
			if s.Center1.Y < s.Center0.Y || s.Center1.Y >= s.Center0.Y+0.5 {
				t.Errorf("Moving sphere rises outside [0, 0.5): %v -> %v", s.Center0, s.Center1)
			}
		default:
			t.Fatalf("Unexpected grid object %T", object)
		}
		if center.Subtract(clearing).Length() <= 0.9 {
			t.Errorf("Grid sphere at %v intrudes on the clearing", center)
		}
	}
}

func TestEarthScene_MissingTextureUsesPlaceholder(t *testing.T) {
	s := NewEarthScene(missingTexture(t))
	globe, ok := s.GetObjects()[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected a sphere, got %T", s.GetObjects()[0])
	}
	lambertian, ok := globe.Material.(*material.Lambertian)
	if !ok {
		t.Fatalf("Expected lambertian globe, got %T", globe.Material)
	}
	if c := lambertian.Albedo.Value(0.5, 0.5, core.Vec3{}); c != material.MissingTextureColor {
		t.Errorf("Expected placeholder color, got %v", c)
	}
}

func TestPreset_RendersDeterministically(t *testing.T) {
	render := func() []byte {
		s := NewCornellBoxScene(Options{})
		s.SetSampling(SamplingConfig{ImageWidth: 8, AspectRatio: 1, SamplesPerPixel: 2, MaxDepth: 4})

		img, stats, err := renderer.Render(context.Background(), s, renderer.WithWorkers(2), renderer.WithSeed(42))
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if stats.TotalPixels != 64 {
			t.Errorf("Expected 64 pixels, got %d", stats.TotalPixels)
		}
		if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
			t.Fatalf("Unexpected image bounds %v", b)
		}
		return img.Pix
	}

	first := render()
	second := render()
	if !bytes.Equal(first, second) {
		t.Error("Renders with the same seed should be identical")
	}
}
