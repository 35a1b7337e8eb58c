// Package animation provides the ticker-driven Animator used outside tests.
package animation

import (
	"sync"
	"time"

	"nearby/config"
	"nearby/internal/domain/service"
)

const defaultFrameInterval = 16 * time.Millisecond

type tickerAnimator struct {
	frameInterval time.Duration
}

// NewTickerAnimator creates an Animator that emits frames on a fixed
// interval from a background goroutine.
func NewTickerAnimator(cfg *config.Config) service.Animator {
	interval := defaultFrameInterval
	if cfg.Selection != nil && cfg.Selection.FrameInterval > 0 {
		interval = cfg.Selection.FrameInterval
	}

	return &tickerAnimator{frameInterval: interval}
}

// Animate runs the frame loop until duration elapses or cancel is called.
// The mutex keeps frame and done delivery serial, so a cancel racing the
// final tick still resolves to exactly one done invocation.
func (a *tickerAnimator) Animate(duration time.Duration, frame func(progress float64), done func(completed bool)) (cancel func()) {
	var (
		mu       sync.Mutex
		stopped  bool
		stopOnce sync.Once
	)
	stopCh := make(chan struct{})

	go func() {
		ticker := time.NewTicker(a.frameInterval)
		defer ticker.Stop()

		start := time.Now()
		for {
			select {
			case <-stopCh:
				return
			case now := <-ticker.C:
				progress := float64(now.Sub(start)) / float64(duration)
				if progress >= 1 {
					progress = 1
				}

				mu.Lock()
				if stopped {
					mu.Unlock()

					return
				}
				frame(progress)
				if progress >= 1 {
					stopped = true
					done(true)
					mu.Unlock()

					return
				}
				mu.Unlock()
			}
		}
	}()

	return func() {
		stopOnce.Do(func() {
			close(stopCh)

			mu.Lock()
			if !stopped {
				stopped = true
				done(false)
			}
			mu.Unlock()
		})
	}
}
