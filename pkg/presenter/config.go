package presenter

import (
	"fmt"
	"time"

	"github.com/go-drift/modal/pkg/animation"
)

// Spring shapes the enter and exit animations as a damped spring.
type Spring struct {
	// Damping is the damping ratio; 1 is critically damped.
	Damping float64
	// Velocity is the initial velocity in total distances per duration.
	Velocity float64
}

// DefaultSpring is the spring used when a configuration asks for one
// without giving its parameters.
var DefaultSpring = Spring{Damping: 0.95, Velocity: 0.25}

// Config holds the per-presenter settings. Values are read when an
// animation starts and never changed by the presenter.
type Config struct {
	// AnimationDuration is the length of enter, exit and snap-back animations.
	AnimationDuration time.Duration
	// AnimationDelay is waited before motion starts.
	AnimationDelay time.Duration
	// Curve eases the animations. Nil means animation.EaseInOut.
	Curve func(float64) float64
	// Spring, when set, replaces Curve with animation.SpringCurve.
	Spring *Spring
	// TransitionWithOpacity fades the content in on present and out on dismiss.
	TransitionWithOpacity bool
	// GestureDismissable attaches a drag-to-dismiss recognizer to the content.
	GestureDismissable bool
	// OppositeDragFraction bounds how far the content may be dragged away
	// from its exit edge, as a fraction of the host extent on the drag axis.
	OppositeDragFraction float64
	// DismissFraction is the drag distance that commits a dismissal, as a
	// fraction of the content extent on the drag axis.
	DismissFraction float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		AnimationDuration:    550 * time.Millisecond,
		AnimationDelay:       0,
		Curve:                animation.EaseInOut,
		OppositeDragFraction: 0.05,
		DismissFraction:      0.33,
	}
}

// Validate reports the first invalid value in c.
func (c Config) Validate() error {
	if c.AnimationDuration < 0 {
		return fmt.Errorf("animation duration %v is negative", c.AnimationDuration)
	}
	if c.AnimationDelay < 0 {
		return fmt.Errorf("animation delay %v is negative", c.AnimationDelay)
	}
	if c.Spring != nil && c.Spring.Damping <= 0 {
		return fmt.Errorf("spring damping %v must be positive", c.Spring.Damping)
	}
	if c.OppositeDragFraction < 0 || c.OppositeDragFraction > 1 {
		return fmt.Errorf("opposite drag fraction %v outside [0, 1]", c.OppositeDragFraction)
	}
	if c.DismissFraction < 0 || c.DismissFraction > 1 {
		return fmt.Errorf("dismiss fraction %v outside [0, 1]", c.DismissFraction)
	}
	return nil
}

func (c Config) curve() func(float64) float64 {
	if c.Spring != nil {
		return animation.SpringCurve(c.Spring.Damping, c.Spring.Velocity)
	}
	if c.Curve != nil {
		return c.Curve
	}
	return animation.EaseInOut
}
