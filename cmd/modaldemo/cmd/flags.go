package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/go-drift/modal/pkg/animation"
	"github.com/go-drift/modal/pkg/presenter"
)

// edgeValue adapts presenter.Edge to pflag.Value.
type edgeValue presenter.Edge

func (e *edgeValue) String() string { return presenter.Edge(*e).String() }

func (e *edgeValue) Set(s string) error {
	edge, err := presenter.ParseEdge(s)
	if err != nil {
		return err
	}
	*e = edgeValue(edge)
	return nil
}

func (e *edgeValue) Type() string { return "edge" }

// addPresenterFlags registers the flags that override presenter settings.
func addPresenterFlags(fs *pflag.FlagSet) {
	defaults := presenter.DefaultConfig()
	fs.Duration("duration", defaults.AnimationDuration, "enter and exit animation length")
	fs.Duration("delay", defaults.AnimationDelay, "wait before each animation starts")
	fs.String("curve", "ease-in-out", "easing curve (linear, ease, ease-in, ease-out, ease-in-out, ios-navigation)")
	fs.Float64("spring", 0, "use a spring with this damping ratio instead of the curve")
	fs.Bool("opacity", defaults.TransitionWithOpacity, "fade the panel in and out")
	fs.Bool("gesture", defaults.GestureDismissable, "allow dragging the panel away")
}

// applyPresenterFlags copies every explicitly set flag in fs onto cfg.
// Unset flags leave the file configuration alone.
func applyPresenterFlags(fs *pflag.FlagSet, cfg *presenter.Config) error {
	var err error
	if fs.Changed("duration") {
		if cfg.AnimationDuration, err = fs.GetDuration("duration"); err != nil {
			return err
		}
	}
	if fs.Changed("delay") {
		if cfg.AnimationDelay, err = fs.GetDuration("delay"); err != nil {
			return err
		}
	}
	if fs.Changed("curve") {
		name, _ := fs.GetString("curve")
		curve, ok := animation.CurveByName(name)
		if !ok {
			return fmt.Errorf("unknown curve %q", name)
		}
		cfg.Curve = curve
		cfg.Spring = nil
	}
	if fs.Changed("spring") {
		damping, _ := fs.GetFloat64("spring")
		spring := presenter.DefaultSpring
		spring.Damping = damping
		cfg.Spring = &spring
	}
	if fs.Changed("opacity") {
		cfg.TransitionWithOpacity, _ = fs.GetBool("opacity")
	}
	if fs.Changed("gesture") {
		cfg.GestureDismissable, _ = fs.GetBool("gesture")
	}
	return nil
}
