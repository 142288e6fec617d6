package renderer

import (
	"errors"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

func TestBandWorker_SendsRowsInOrder(t *testing.T) {
	scene := newTestScene(3, 5)
	pixels := make(chan Pixel, 15)
	worker := &bandWorker{
		raytracer: NewRaytracer(scene, geometry.NewHittableList()),
		width:     3,
		pixels:    pixels,
		done:      make(chan struct{}),
	}

	if err := worker.run(BandTask{Band: RowBand{Start: 1, End: 3}, Seed: 1}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	close(pixels)

	var got [][2]int
	for p := range pixels {
		got = append(got, [2]int{p.X, p.Y})
	}
	expected := [][2]int{{0, 1}, {1, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d pixels, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("pixel %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestBandWorker_StopsWhenCoordinatorGone(t *testing.T) {
	done := make(chan struct{})
	close(done)
	worker := &bandWorker{
		raytracer: NewRaytracer(newTestScene(2, 2), geometry.NewHittableList()),
		width:     2,
		pixels:    make(chan Pixel, 4),
		done:      done,
	}

	if err := worker.run(BandTask{Band: RowBand{Start: 0, End: 2}}); !errors.Is(err, ErrCoordinatorGone) {
		t.Errorf("Expected ErrCoordinatorGone, got %v", err)
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	tests := []struct {
		stats    RenderStats
		expected float64
	}{
		{RenderStats{TotalSamples: 1000, Elapsed: 2 * time.Second}, 500},
		{RenderStats{TotalSamples: 1000}, 0},
	}
	for _, tt := range tests {
		if got := tt.stats.SamplesPerSecond(); got != tt.expected {
			t.Errorf("Expected %f, got %f", tt.expected, got)
		}
	}
}
