package renderer

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrCoordinatorGone is returned by a worker that tries to deliver a pixel after
// the session stopped listening
var ErrCoordinatorGone = errors.New("render coordinator is gone")

// Pixel is one finished pixel on its way to the coordinator
type Pixel struct {
	X, Y int
	RGB  [3]byte
}

// BandTask is the unit of work handed to the pool: every pixel of a row band
type BandTask struct {
	Band   RowBand
	TaskID int   // Band index, reported in logs
	Seed   int64 // Seed for this band's sampler
}

// bandWorker renders one band and streams its pixels to the coordinator
type bandWorker struct {
	raytracer *Raytracer
	width     int
	pixels    chan<- Pixel
	done      <-chan struct{}
}

// run renders the task's rows top to bottom, left to right
func (w *bandWorker) run(task BandTask) error {
	sampler := core.NewSeededSampler(task.Seed)

	for y := task.Band.Start; y < task.Band.End; y++ {
		for x := 0; x < w.width; x++ {
			// Stop early once nobody is listening
			select {
			case <-w.done:
				return ErrCoordinatorGone
			default:
			}

			pixel := Pixel{X: x, Y: y, RGB: w.raytracer.RenderPixel(x, y, sampler)}

			select {
			case <-w.done:
				return ErrCoordinatorGone
			default:
			}
			// The channel holds the whole image, so this never blocks
			w.pixels <- pixel
		}
	}
	return nil
}
