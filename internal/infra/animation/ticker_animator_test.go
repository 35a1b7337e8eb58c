package animation

import (
	"sync"
	"testing"
	"time"

	"nearby/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnimator() *tickerAnimator {
	cfg := &config.Config{
		Selection: &config.SelectionConfig{FrameInterval: 2 * time.Millisecond},
	}

	return NewTickerAnimator(cfg).(*tickerAnimator)
}

func TestTickerAnimator_RunsToCompletion(t *testing.T) {
	animator := testAnimator()

	var (
		mu        sync.Mutex
		progress  []float64
		completed = make(chan bool, 1)
	)

	animator.Animate(30*time.Millisecond,
		func(p float64) {
			mu.Lock()
			progress = append(progress, p)
			mu.Unlock()
		},
		func(ok bool) {
			completed <- ok
		},
	)

	select {
	case ok := <-completed:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("animation never completed")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, progress)
	assert.Equal(t, 1.0, progress[len(progress)-1])
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], progress[i-1])
	}
}

func TestTickerAnimator_CancelStopsFrames(t *testing.T) {
	animator := testAnimator()

	completed := make(chan bool, 1)
	cancel := animator.Animate(10*time.Second,
		func(float64) {},
		func(ok bool) {
			completed <- ok
		},
	)

	cancel()

	select {
	case ok := <-completed:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("cancel never resolved the animation")
	}

	// A second cancel must not deliver another done.
	cancel()
	select {
	case <-completed:
		t.Fatal("done delivered twice")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestTickerAnimator_DefaultFrameInterval(t *testing.T) {
	animator := NewTickerAnimator(&config.Config{}).(*tickerAnimator)

	assert.Equal(t, defaultFrameInterval, animator.frameInterval)
}
