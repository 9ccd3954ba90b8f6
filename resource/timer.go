package resource

import (
	"sync"
	"time"
)

// DefaultInterval is the tick interval used when none is given.
const DefaultInterval = time.Second

// Callback runs on every timer tick. Returning false stops the timer.
type Callback func() bool

// Timer invokes a callback at a fixed interval on a background goroutine.
// It can be stopped and restarted; Stop waits for the goroutine to exit.
type Timer struct {
	callback Callback
	interval time.Duration

	mu      sync.Mutex
	stopCh  chan struct{}
	running bool
	wg      sync.WaitGroup
}

// NewTimer creates a stopped timer. A non-positive interval falls back to
// DefaultInterval.
func NewTimer(callback Callback, interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timer{
		callback: callback,
		interval: interval,
	}
}

// Start launches the tick loop. Starting a running timer is a no-op.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	t.stopCh = make(chan struct{})
	t.running = true

	t.wg.Add(1)
	go t.loop(t.stopCh)
}

// Stop halts the tick loop and waits for it to exit. Stopping a stopped
// timer is a no-op.
func (t *Timer) Stop() {
	t.mu.Lock()
	if t.running {
		close(t.stopCh)
		t.running = false
	}
	t.mu.Unlock()

	t.wg.Wait()
}

func (t *Timer) loop(stop chan struct{}) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !t.callback() {
				t.mu.Lock()
				t.running = false
				t.mu.Unlock()
				return
			}
		}
	}
}
