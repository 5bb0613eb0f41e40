package platform

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/modal/pkg/animation"
)

// DefaultFrameInterval is roughly 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// Loop couples a Queue with an animation Scheduler: while any ticker is
// active it steps the scheduler on the queue once per frame interval.
type Loop struct {
	queue     *Queue
	scheduler *animation.Scheduler
	interval  time.Duration

	framePending atomic.Bool
}

// NewLoop returns a loop stepping scheduler every interval.
// A non-positive interval means DefaultFrameInterval.
func NewLoop(scheduler *animation.Scheduler, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Loop{
		queue:     NewQueue(),
		scheduler: scheduler,
		interval:  interval,
	}
}

// Scheduler returns the scheduler stepped by the loop.
func (l *Loop) Scheduler() *animation.Scheduler { return l.scheduler }

// Dispatch schedules callback on the loop's queue.
func (l *Loop) Dispatch(callback func()) bool { return l.queue.Dispatch(callback) }

// Close stops the loop once queued callbacks have run.
func (l *Loop) Close() { l.queue.Close() }

// Run executes the queue and the frame pump until ctx is done or Close is
// called.
func (l *Loop) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)

	g.Go(func() error {
		defer cancel()
		return l.queue.Run(ctx)
	})
	g.Go(func() error {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				l.requestFrame()
			}
		}
	})

	err := g.Wait()
	if err == context.Canceled {
		return nil
	}
	return err
}

// requestFrame enqueues one scheduler step unless one is already queued.
func (l *Loop) requestFrame() {
	if !l.scheduler.HasActiveTickers() {
		return
	}
	if !l.framePending.CompareAndSwap(false, true) {
		return
	}
	ok := l.queue.Dispatch(func() {
		l.framePending.Store(false)
		l.scheduler.Step()
	})
	if !ok {
		l.framePending.Store(false)
	}
}
