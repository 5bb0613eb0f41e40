package presenter

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/modal/pkg/animation"
	"github.com/go-drift/modal/pkg/errors"
)

// fileConfig is the YAML form of Config. Pointer fields distinguish
// "absent" from the zero value so absent keys keep their defaults.
type fileConfig struct {
	Animation struct {
		Duration string      `yaml:"duration,omitempty"`
		Delay    string      `yaml:"delay,omitempty"`
		Curve    string      `yaml:"curve,omitempty"`
		Spring   *fileSpring `yaml:"spring,omitempty"`
	} `yaml:"animation"`
	TransitionWithOpacity *bool `yaml:"transition_with_opacity,omitempty"`
	GestureDismissable    *bool `yaml:"gesture_dismissable,omitempty"`
	Drag                  struct {
		OppositeFraction *float64 `yaml:"opposite_fraction,omitempty"`
		DismissFraction  *float64 `yaml:"dismiss_fraction,omitempty"`
	} `yaml:"drag"`
}

type fileSpring struct {
	Damping  *float64 `yaml:"damping,omitempty"`
	Velocity *float64 `yaml:"velocity,omitempty"`
}

// LoadConfig reads a YAML presenter configuration from path and overlays
// it on DefaultConfig. A missing file yields the defaults.
//
// Example file:
//
//	animation:
//	  duration: 550ms
//	  curve: ease-in-out
//	  spring:
//	    damping: 0.95
//	    velocity: 0.25
//	transition_with_opacity: true
//	gesture_dismissable: true
//	drag:
//	  dismiss_fraction: 0.33
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.New("presenter.LoadConfig", errors.KindConfig, fmt.Errorf("read %s: %w", path, err))
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration data over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, errors.New("presenter.ParseConfig", errors.KindConfig, fmt.Errorf("parse config: %w", err))
	}
	if err := fc.apply(&cfg); err != nil {
		return cfg, errors.New("presenter.ParseConfig", errors.KindConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.New("presenter.ParseConfig", errors.KindConfig, err)
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.Animation.Duration != "" {
		d, err := time.ParseDuration(fc.Animation.Duration)
		if err != nil {
			return fmt.Errorf("animation.duration: %w", err)
		}
		cfg.AnimationDuration = d
	}
	if fc.Animation.Delay != "" {
		d, err := time.ParseDuration(fc.Animation.Delay)
		if err != nil {
			return fmt.Errorf("animation.delay: %w", err)
		}
		cfg.AnimationDelay = d
	}
	if fc.Animation.Curve != "" {
		curve, ok := animation.CurveByName(fc.Animation.Curve)
		if !ok {
			return fmt.Errorf("animation.curve: unknown curve %q", fc.Animation.Curve)
		}
		cfg.Curve = curve
	}
	if s := fc.Animation.Spring; s != nil {
		spring := DefaultSpring
		if s.Damping != nil {
			spring.Damping = *s.Damping
		}
		if s.Velocity != nil {
			spring.Velocity = *s.Velocity
		}
		cfg.Spring = &spring
	}
	if fc.TransitionWithOpacity != nil {
		cfg.TransitionWithOpacity = *fc.TransitionWithOpacity
	}
	if fc.GestureDismissable != nil {
		cfg.GestureDismissable = *fc.GestureDismissable
	}
	if fc.Drag.OppositeFraction != nil {
		cfg.OppositeDragFraction = *fc.Drag.OppositeFraction
	}
	if fc.Drag.DismissFraction != nil {
		cfg.DismissFraction = *fc.Drag.DismissFraction
	}
	return nil
}
