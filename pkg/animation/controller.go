package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is where an [AnimationController] is in its single run.
type AnimationStatus int

const (
	// AnimationDismissed means the controller has not been started.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means a run is in progress, including its delay.
	AnimationForward
	// AnimationCompleted means the value reached 1 and the ticker was released.
	AnimationCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController moves Value from wherever it is to 1 over Duration,
// after holding still for Delay. Curve shapes the progress; curves that
// overshoot (springs) still finish exactly on 1.
//
// Frames come from the [TickerProvider] passed to NewAnimationController,
// so the host decides when time advances. Map Value onto geometry with a
// [Tween]. Call Dispose once the controller is no longer needed.
type AnimationController struct {
	Value    float64
	Duration time.Duration
	Delay    time.Duration
	Curve    func(float64) float64

	provider        TickerProvider
	ticker          *Ticker
	status          AnimationStatus
	from            float64
	listeners       []func()
	statusListeners []func(AnimationStatus)
}

// NewAnimationController returns a dismissed controller at 0.
func NewAnimationController(duration time.Duration, provider TickerProvider) *AnimationController {
	return &AnimationController{
		Duration: duration,
		Curve:    LinearCurve,
		provider: provider,
	}
}

// Forward starts a run toward 1 from the current value, restarting any run
// already in progress.
func (c *AnimationController) Forward() {
	c.Stop()
	c.from = c.Value
	c.setStatus(AnimationForward)
	c.ticker = c.provider.CreateTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	elapsed -= c.Delay
	if elapsed < 0 {
		return
	}
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}

	if progress >= 1 {
		c.Value = 1
	} else {
		eased := progress
		if c.Curve != nil {
			eased = c.Curve(progress)
		}
		c.Value = c.from + (1-c.from)*eased
	}
	c.notifyListeners()

	if progress >= 1 {
		c.Stop()
		c.setStatus(AnimationCompleted)
	}
}

// Stop freezes Value where it is. The status is left unchanged.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current status.
func (c *AnimationController) Status() AnimationStatus { return c.status }

// IsAnimating reports whether a run holds a ticker.
func (c *AnimationController) IsAnimating() bool { return c.ticker != nil }

// IsCompleted reports whether the last run reached 1.
func (c *AnimationController) IsCompleted() bool { return c.status == AnimationCompleted }

// AddListener registers fn to run after every value change.
func (c *AnimationController) AddListener(fn func()) {
	c.listeners = append(c.listeners, fn)
}

// AddStatusListener registers fn to run on every status change.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) {
	c.statusListeners = append(c.statusListeners, fn)
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, fn := range c.statusListeners {
		fn(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, fn := range c.listeners {
		fn()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
