package renderer

import (
	"context"
	"image"
	"time"
)

// progressInterval is how often Render reports remaining scanlines
const progressInterval = 250 * time.Millisecond

// Render renders scene to completion, logging progress, and returns the image.
// Cancelling ctx discards the render.
func Render(ctx context.Context, scene Scene, opts ...Option) (*image.RGBA, RenderStats, error) {
	session := NewRenderSession(opts...)
	if err := session.StartRender(scene); err != nil {
		return nil, RenderStats{}, err
	}

	stop := make(chan struct{})
	go session.reportProgress(stop)

	err := session.Wait(ctx)
	close(stop)
	if err != nil {
		session.Discard()
		return nil, session.Stats(), err
	}
	return session.Image(), session.Stats(), nil
}

// reportProgress logs the scanlines still outstanding until stop is closed
func (s *RenderSession) reportProgress(stop <-chan struct{}) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			width, _ := s.ImageSize()
			done, total := s.Progress()
			s.logger.Info("rendering", "scanlines_remaining", (total-done+width-1)/max(width, 1))
		}
	}
}
