package flogger

import (
	"sync"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// Pool executes fire-and-forget flush work and drives periodic window
// checks. One Pool is shared by every aggregation engine of a Service;
// engines reference it but must not close it.
type Pool struct {
	tasks chan func()
	group *errgroup.Group

	mu       sync.RWMutex
	stops    []func()
	closed   atomic.Bool
	rejected atomic.Uint64
}

// NewPool starts workers goroutines draining a queue of queueSize pending
// tasks. Non-positive values fall back to package defaults.
func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = defaultPoolWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultPoolQueue
	}

	p := &Pool{
		tasks: make(chan func(), queueSize),
		group: &errgroup.Group{},
	}
	for i := 0; i < workers; i++ {
		p.group.Go(func() error {
			for task := range p.tasks {
				task()
			}
			return nil
		})
	}
	return p
}

// Submit enqueues task without blocking. It returns false when the queue is
// full or the pool is closed; rejected submissions are counted and the task
// is discarded.
func (p *Pool) Submit(task func()) bool {
	if task == nil {
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		p.rejected.Inc()
		return false
	}
	select {
	case p.tasks <- task:
		return true
	default:
		p.rejected.Inc()
		return false
	}
}

// Periodic registers cb to run every interval until the returned stop
// function is called or the pool is closed. Each registration runs its
// callback on a dedicated goroutine, so ticks of one registration never
// overlap. Registering on a closed pool is a no-op.
func (p *Pool) Periodic(interval time.Duration, cb func()) (stop func()) {
	noop := func() {}
	if cb == nil || interval <= 0 {
		return noop
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return noop
	}

	done := make(chan struct{})
	p.group.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				cb()
			}
		}
	})

	var once sync.Once
	stop = func() { once.Do(func() { close(done) }) }
	p.stops = append(p.stops, stop)
	return stop
}

// Rejected returns the number of submissions refused so far.
func (p *Pool) Rejected() uint64 { return p.rejected.Load() }

// Close stops periodic registrations, lets queued tasks drain, and waits for
// the workers to exit. It is safe to call more than once.
func (p *Pool) Close() error {
	p.mu.Lock()
	if !p.closed.CompareAndSwap(false, true) {
		p.mu.Unlock()
		return nil
	}
	stops := p.stops
	p.stops = nil
	close(p.tasks)
	p.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
	return p.group.Wait()
}
