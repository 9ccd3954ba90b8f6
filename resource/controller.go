package resource

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/semaphore"
)

// Trimmer is implemented by components that can release retained memory.
// Trim gives back slack (growth headroom, caches); ForceTrim releases
// everything the component can rebuild or live without.
type Trimmer interface {
	Trim()
	ForceTrim()
}

// Config holds controller limits.
type Config struct {
	// MaxConcurrentTrims bounds how many trimmers run at once during a
	// sweep. If 0, defaults to 1.
	MaxConcurrentTrims int64

	// Interval is the periodic sweep interval used by Start.
	// If 0, defaults to DefaultInterval.
	Interval time.Duration

	// Logger receives sweep logs. If nil, logging is off.
	Logger *slog.Logger
}

// Controller keeps a registry of trimmers and sweeps them, either on demand
// or periodically after Start.
type Controller struct {
	trimmers *xsync.MapOf[string, Trimmer]
	sem      *semaphore.Weighted
	maxTrims int64
	logger   *slog.Logger
	timer    *Timer

	mu      sync.Mutex
	state   TrimState
	started bool
}

// NewController creates a controller with the given limits.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentTrims <= 0 {
		cfg.MaxConcurrentTrims = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	c := &Controller{
		trimmers: xsync.NewMapOf[string, Trimmer](),
		sem:      semaphore.NewWeighted(cfg.MaxConcurrentTrims),
		maxTrims: cfg.MaxConcurrentTrims,
		logger:   cfg.Logger,
		state:    TrimStateNone,
	}
	c.timer = NewTimer(func() bool {
		// Periodic sweeps keep going even when one pass fails; the next
		// tick retries with whatever is registered then.
		if err := c.TrimAll(context.Background()); err != nil {
			c.logger.Warn("periodic trim failed", slog.Any("error", err))
		}
		return true
	}, cfg.Interval)

	return c
}

// Register adds a trimmer under a unique name, replacing any previous
// trimmer registered under the same name.
func (c *Controller) Register(name string, t Trimmer) {
	c.trimmers.Store(name, t)
}

// Deregister removes the named trimmer.
func (c *Controller) Deregister(name string) {
	c.trimmers.Delete(name)
}

// State returns the controller's lifecycle state.
func (c *Controller) State() TrimState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start launches the periodic sweep. Starting a controller that is already
// running is a lifecycle error; a stopped controller may be started again.
// The guard is the run flag, not TrimState, because sweeps advance TrimState
// while the controller keeps running.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return &TrimStateError{State: c.state, Op: "start"}
	}
	c.timer.Start()
	c.started = true
	c.state = TrimStateInitialized
	return nil
}

// Stop halts the periodic sweep and waits for an in-flight tick to finish.
func (c *Controller) Stop() {
	// The timer stops outside the lock: an in-flight tick may be sweeping,
	// and sweeps take the lock to record their state.
	c.timer.Stop()

	c.mu.Lock()
	c.started = false
	c.mu.Unlock()
}

// TrimAll sweeps every registered trimmer with Trim, running at most
// MaxConcurrentTrims at a time.
func (c *Controller) TrimAll(ctx context.Context) error {
	return c.sweep(ctx, TrimStateTrimmed, Trimmer.Trim)
}

// ForceTrimAll sweeps every registered trimmer with ForceTrim.
func (c *Controller) ForceTrimAll(ctx context.Context) error {
	return c.sweep(ctx, TrimStateForceTrimmed, Trimmer.ForceTrim)
}

func (c *Controller) sweep(ctx context.Context, next TrimState, trim func(Trimmer)) error {
	start := time.Now()
	count := 0

	var failed error
	c.trimmers.Range(func(name string, t Trimmer) bool {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			failed = err
			return false
		}
		count++
		go func() {
			defer c.sem.Release(1)
			trim(t)
		}()
		return true
	})

	// Wait for in-flight trims by draining the semaphore.
	if err := c.sem.Acquire(ctx, c.maxTrims); err != nil {
		if failed == nil {
			failed = err
		}
	} else {
		c.sem.Release(c.maxTrims)
	}
	if failed != nil {
		return failed
	}

	c.mu.Lock()
	c.state = next
	c.mu.Unlock()

	c.logger.Debug("trim sweep complete",
		slog.Int("trimmers", count),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}
