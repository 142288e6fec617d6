package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

var (
	// ErrRenderInProgress is returned when starting a render while another is running
	ErrRenderInProgress = errors.New("render already in progress")
	// ErrInvalidScene is returned for scenes that cannot be rendered
	ErrInvalidScene = errors.New("invalid scene")
)

// State is the lifecycle stage of a RenderSession
type State int

const (
	Idle State = iota
	Rendering
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a RenderSession
type Option func(*RenderSession)

// WithWorkers limits the number of bands rendered concurrently. Values are
// clamped to [1, runtime.NumCPU()].
func WithWorkers(n int) Option {
	return func(s *RenderSession) {
		s.workers = max(1, min(n, runtime.NumCPU()))
	}
}

// WithSeed makes renders reproducible: band i samples with seed+i and the BVH
// is built from seed. Zero picks a time-based seed per render.
func WithSeed(seed int64) Option {
	return func(s *RenderSession) {
		s.seed = seed
	}
}

// WithLogger sets the logger for progress and worker failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *RenderSession) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// renderJob holds the channels of a single render so a stale worker can never
// touch a later render's state
type renderJob struct {
	width, height   int
	samplesPerPixel int
	bands           int
	pixels          chan Pixel
	done            chan struct{} // closed by Discard
	finished        chan struct{} // closed once every worker has returned
	err             error         // worker group result, valid after finished
}

// RenderSession renders one scene at a time on a bounded pool of band workers.
// The owner drives it with CheckProgress or Wait; pixels land in an RGBA buffer.
type RenderSession struct {
	mu sync.Mutex

	workers int
	seed    int64
	logger  *slog.Logger

	state    State
	job      *renderJob
	buffer   []byte
	received int
	err      error
	started  time.Time
	elapsed  time.Duration
	bvhStats geometry.BVHStats
}

// NewRenderSession creates an idle session
func NewRenderSession(opts ...Option) *RenderSession {
	s := &RenderSession{
		workers: runtime.NumCPU(),
		logger:  core.Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validateScene(scene Scene) error {
	if scene == nil {
		return fmt.Errorf("%w: nil scene", ErrInvalidScene)
	}
	width, height := scene.ImageSize()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidScene, width, height)
	}
	if scene.SamplesPerPixel() <= 0 {
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidScene, scene.SamplesPerPixel())
	}
	if scene.GetCamera() == nil {
		return fmt.Errorf("%w: no camera", ErrInvalidScene)
	}
	if scene.GetBackground() == nil {
		return fmt.Errorf("%w: no background", ErrInvalidScene)
	}
	return nil
}

// StartRender begins rendering scene in the background and returns immediately
func (s *RenderSession) StartRender(scene Scene) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Rendering {
		return ErrRenderInProgress
	}
	if err := validateScene(scene); err != nil {
		return err
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := scene.ImageSize()
	time0, time1 := scene.ShutterInterval()
	world := geometry.NewBVHNode(scene.GetObjects(), time0, time1, core.NewSeededSampler(seed))
	bands := DivideRows(height, s.workers)

	job := &renderJob{
		width:           width,
		height:          height,
		samplesPerPixel: scene.SamplesPerPixel(),
		bands:           len(bands),
		pixels:          make(chan Pixel, width*height),
		done:            make(chan struct{}),
		finished:        make(chan struct{}),
	}

	s.job = job
	s.buffer = make([]byte, width*height*4)
	s.received = 0
	s.err = nil
	s.bvhStats = geometry.Stats(world)
	s.started = time.Now()
	s.elapsed = 0
	s.state = Rendering

	s.logger.Info("render started",
		"width", width, "height", height,
		"samples", job.samplesPerPixel, "workers", s.workers, "bands", len(bands))

	worker := &bandWorker{
		raytracer: NewRaytracer(scene, world),
		width:     width,
		pixels:    job.pixels,
		done:      job.done,
	}
	go s.runPool(job, worker, bands, seed)

	return nil
}

// runPool submits one task per band and reaps the group
func (s *RenderSession) runPool(job *renderJob, worker *bandWorker, bands []RowBand, seed int64) {
	var g errgroup.Group
	g.SetLimit(s.workers)

	for i, band := range bands {
		task := BandTask{Band: band, TaskID: i, Seed: seed + int64(i)}
		g.Go(func() error {
			if err := worker.run(task); err != nil {
				return err
			}
			s.logger.Debug("band finished", "band", task.TaskID, "rows", task.Band.Len())
			return nil
		})
	}

	job.err = g.Wait()
	if job.err != nil {
		s.logger.Error("render worker failed", "error", job.err)
	}
	close(job.finished)
}

// store writes a received pixel into the buffer. Caller holds mu.
func (s *RenderSession) store(p Pixel) {
	offset := 4 * (p.Y*s.job.width + p.X)
	s.buffer[offset] = p.RGB[0]
	s.buffer[offset+1] = p.RGB[1]
	s.buffer[offset+2] = p.RGB[2]
	s.buffer[offset+3] = 255
	s.received++
}

// drain stores every pixel already queued. Caller holds mu.
func (s *RenderSession) drain() bool {
	got := false
	for {
		select {
		case p := <-s.job.pixels:
			s.store(p)
			got = true
		default:
			return got
		}
	}
}

// complete finishes the render after the pool has been reaped. Caller holds mu.
func (s *RenderSession) complete() {
	s.drain()
	s.elapsed = time.Since(s.started)

	if s.job.err != nil {
		s.err = s.job.err
		s.state = Idle
		return
	}
	s.state = Finished
	s.logger.Info("render finished", "pixels", s.received, "elapsed", s.elapsed)
}

// CheckProgress stores every pixel that has arrived without blocking and
// reports whether there were any
func (s *RenderSession) CheckProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Rendering {
		return false
	}

	got := s.drain()
	if s.received == s.job.width*s.job.height {
		// All pixels are in, the workers are only returning
		<-s.job.finished
		s.complete()
		return got
	}

	select {
	case <-s.job.finished:
		s.complete()
	default:
	}
	return got
}

// Wait blocks until the current render finishes, fails, or ctx is done
func (s *RenderSession) Wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		if s.state != Rendering {
			err := s.err
			s.mu.Unlock()
			return err
		}
		job := s.job
		s.mu.Unlock()

		select {
		case p := <-job.pixels:
			s.mu.Lock()
			if s.job == job && s.state == Rendering {
				s.store(p)
			}
			s.mu.Unlock()
			s.CheckProgress()
		case <-job.finished:
			s.CheckProgress()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Discard abandons the current render. Workers still running observe it on
// their next pixel and fail with ErrCoordinatorGone.
func (s *RenderSession) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Rendering {
		return
	}
	close(s.job.done)
	s.err = ErrCoordinatorGone
	s.elapsed = time.Since(s.started)
	s.state = Idle
	s.logger.Info("render discarded", "pixels", s.received)
}

// State returns the lifecycle stage
func (s *RenderSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsRenderInProgress reports whether a render is running
func (s *RenderSession) IsRenderInProgress() bool {
	return s.State() == Rendering
}

// IsRenderFinished reports whether the last render delivered every pixel
func (s *RenderSession) IsRenderFinished() bool {
	return s.State() == Finished
}

// Err returns why the last render stopped early, if it did
func (s *RenderSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ImageSize returns the dimensions of the current or last render
func (s *RenderSession) ImageSize() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return 0, 0
	}
	return s.job.width, s.job.height
}

// Progress returns how many pixels have been received out of the total
func (s *RenderSession) Progress() (done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return 0, 0
	}
	return s.received, s.job.width * s.job.height
}

// Pixels returns a copy of the RGBA buffer. Pixels not yet received are zero.
func (s *RenderSession) Pixels() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.buffer...)
}

// Image returns a copy of the buffer as an image
func (s *RenderSession) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	return &image.RGBA{
		Pix:    append([]byte(nil), s.buffer...),
		Stride: 4 * s.job.width,
		Rect:   image.Rect(0, 0, s.job.width, s.job.height),
	}
}

// Stats returns statistics for the current or last render
func (s *RenderSession) Stats() RenderStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := RenderStats{
		Workers: s.workers,
		BVH:     s.bvhStats,
	}
	if s.job == nil {
		return stats
	}

	stats.TotalPixels = s.received
	stats.SamplesPerPixel = s.job.samplesPerPixel
	stats.TotalSamples = s.received * s.job.samplesPerPixel
	stats.Bands = s.job.bands
	stats.Elapsed = s.elapsed
	if s.state == Rendering {
		stats.Elapsed = time.Since(s.started)
	}
	return stats
}
