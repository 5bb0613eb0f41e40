package testing

import (
	"fmt"
	"time"

	"github.com/go-drift/modal/pkg/animation"
	"github.com/go-drift/modal/pkg/platform"
)

// DefaultFrameInterval is the simulated frame length used by Pump.
const DefaultFrameInterval = 16 * time.Millisecond

// Harness simulates the UI control-flow queue: callbacks dispatched to it
// run only when the test drains it, and animation frames advance only when
// the test pumps time.
type Harness struct {
	// FrameInterval is the clock step per simulated frame.
	FrameInterval time.Duration

	clock     *FakeClock
	queue     *platform.Queue
	scheduler *animation.Scheduler
}

// NewHarness returns a harness with an empty queue and a fresh fake clock.
func NewHarness() *Harness {
	clock := NewFakeClock()
	return &Harness{
		FrameInterval: DefaultFrameInterval,
		clock:         clock,
		queue:         platform.NewQueue(),
		scheduler:     animation.NewScheduler(clock),
	}
}

// Clock returns the harness clock.
func (h *Harness) Clock() *FakeClock { return h.clock }

// Dispatcher returns the harness queue as a platform.Dispatcher.
func (h *Harness) Dispatcher() platform.Dispatcher { return h.queue }

// Queue returns the harness queue.
func (h *Harness) Queue() *platform.Queue { return h.queue }

// Scheduler returns the scheduler stepped by Pump and Frame.
func (h *Harness) Scheduler() *animation.Scheduler { return h.scheduler }

// Drain runs every queued callback, including ones queued while draining.
// It returns the number of callbacks run.
func (h *Harness) Drain() int { return h.queue.RunPending() }

// Frame drains the queue, advances the clock by one frame interval, steps
// the scheduler and drains again.
func (h *Harness) Frame() {
	h.Drain()
	h.clock.Advance(h.FrameInterval)
	h.scheduler.Step()
	h.Drain()
}

// Pump simulates d worth of frames. The last frame is shortened so the
// clock advances by exactly d.
func (h *Harness) Pump(d time.Duration) {
	h.Drain()
	for d > 0 {
		step := h.FrameInterval
		if step > d {
			step = d
		}
		h.clock.Advance(step)
		h.scheduler.Step()
		h.Drain()
		d -= step
	}
}

// Settle pumps frames until no animation is running and the queue is
// empty. It fails if that takes longer than timeout of simulated time.
func (h *Harness) Settle(timeout time.Duration) error {
	var elapsed time.Duration
	h.Drain()
	for h.scheduler.HasActiveTickers() || h.queue.Len() > 0 {
		if elapsed >= timeout {
			return fmt.Errorf("still animating after %v", timeout)
		}
		h.Frame()
		elapsed += h.FrameInterval
	}
	return nil
}
