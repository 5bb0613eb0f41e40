package animation

import (
	"sync"
	"time"
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the owning [Scheduler] via [Scheduler.Step].
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// Scheduler owns a set of tickers and the clock they read. Each presenter
// (or test harness) owns its own Scheduler, so animations of independent
// components never share frame state.
//
// Step must be called from the control-flow queue that mutates view
// geometry; the mutex only guards the registry against HasActiveTickers
// probes from a frame-loop goroutine.
type Scheduler struct {
	clock Clock

	mu     sync.Mutex
	active []*Ticker
}

// NewScheduler returns a scheduler reading time from clock. A nil clock
// means system time.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time { return s.clock.Now() }

// CreateTicker returns an inactive ticker bound to this scheduler.
func (s *Scheduler) CreateTicker(callback func(time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.active = append(s.active, t)
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, other := range s.active {
		if other == t {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

// Step advances all active tickers in the order they were started.
// This should be called once per frame.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without holding the lock.
	tickers := make([]*Ticker, len(s.active))
	copy(tickers, s.active)
	s.mu.Unlock()

	now := s.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}
