package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// tap wraps a beep.Streamer and keeps the most recent frames in a ring buffer,
// so the volume can be read from the render loop while the speaker goroutine
// streams.
type tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func newTap(src beep.Streamer, ringSize int) *tap {
	return &tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled = min(len(t.buffer), t.filled+n)
		t.mu.Unlock()
	}
	return n, ok
}

func (t *tap) Err() error { return t.Source.Err() }

// reset forgets everything recorded so far.
func (t *tap) reset() {
	t.mu.Lock()
	clear(t.buffer)
	t.nextIndex = 0
	t.filled = 0
	t.mu.Unlock()
}

// rms returns the root mean square of the mono mix of the last n frames, or 0
// when nothing has been recorded.
func (t *tap) rms(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	if n <= 0 {
		return 0
	}
	var sumSquares float64
	idx := t.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
		idx--
	}
	return math.Sqrt(sumSquares / float64(n))
}
