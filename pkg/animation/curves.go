package animation

import (
	"math"
	"strings"
	"unicode"
)

// Easing curves transform linear animation progress into natural-feeling motion.
//
// Each curve is a function that takes a value t in [0, 1] and returns a
// transformed value. Set an [AnimationController]'s Curve field to apply easing.
//
// Standard curves: [LinearCurve], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// Use [CubicBezier] to create custom curves matching CSS cubic-bezier().
//
// See ExampleCubicBezier for custom curve usage.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// IOSNavigationCurve approximates iOS navigation transition easing.
var IOSNavigationCurve = CubicBezier(0.22, 1.0, 0.36, 1.0)

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Use for elements exiting the screen.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Use for elements entering the screen.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Use for elements that stay on screen but change state.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for i := 0; i < 8; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// springSettleLog is ln(1000): the spring envelope decays to 0.1% of the
// initial displacement by the end of the animation.
const springSettleLog = 6.907755278982137

// SpringCurve returns a curve that follows a damped spring released from 0
// toward 1. damping is the damping ratio (1 is critically damped, lower
// values overshoot) and velocity is the initial velocity expressed in total
// distances per animation duration. The natural frequency is chosen so the
// spring has settled by t = 1, and the curve returns exactly 1 there.
func SpringCurve(damping, velocity float64) func(float64) float64 {
	if damping <= 0 {
		damping = 1e-3
	}
	omega := springSettleLog / damping
	if damping > 1 {
		// The slow overdamped root governs settling time.
		omega = springSettleLog / (damping - math.Sqrt(damping*damping-1))
	}

	var displacement func(t float64) float64
	switch {
	case damping < 1:
		wd := omega * math.Sqrt(1-damping*damping)
		c1 := -1.0
		c2 := (velocity - damping*omega) / wd
		displacement = func(t float64) float64 {
			return math.Exp(-damping*omega*t) * (c1*math.Cos(wd*t) + c2*math.Sin(wd*t))
		}
	case damping == 1:
		c1 := -1.0
		c2 := velocity - omega
		displacement = func(t float64) float64 {
			return (c1 + c2*t) * math.Exp(-omega*t)
		}
	default:
		root := math.Sqrt(damping*damping - 1)
		r1 := -omega * (damping - root)
		r2 := -omega * (damping + root)
		c1 := (velocity + r2) / (r1 - r2)
		c2 := -1 - c1
		displacement = func(t float64) float64 {
			return c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
		}
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return 1 + displacement(t)
	}
}

// CurveByName resolves a curve from its configuration name. Matching is
// case-insensitive and ignores '-', '_' and spaces, so "ease-in-out",
// "easeInOut" and "EASE_IN_OUT" are the same curve.
func CurveByName(name string) (func(float64) float64, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return unicode.ToLower(r)
	}, name)
	switch key {
	case "linear":
		return LinearCurve, true
	case "ease":
		return Ease, true
	case "easein":
		return EaseIn, true
	case "easeout":
		return EaseOut, true
	case "", "easeinout":
		return EaseInOut, true
	case "iosnavigation":
		return IOSNavigationCurve, true
	}
	return nil, false
}
