// Package animation provides the timing primitives the modal presenter uses
// to move and fade its content.
//
// # Core Components
//
//   - [Scheduler]: owns a clock and the set of active [Ticker]s. The host
//     calls [Scheduler.Step] once per frame on its control-flow queue.
//
//   - [AnimationController]: drives a value from 0.0 to 1.0 over a Duration
//     (after an optional Delay), shaped by a Curve.
//
//   - [Tween]: maps the controller's 0-1 value onto offsets or scalars.
//
//   - Curves: [LinearCurve], [EaseIn], [EaseOut], [EaseInOut],
//     [CubicBezier] and the damped [SpringCurve].
//
// # Basic Usage
//
//	sched := animation.NewScheduler(nil)
//	c := animation.NewAnimationController(300*time.Millisecond, sched)
//	c.Curve = animation.EaseInOut
//	move := animation.TweenOffset(from, to)
//	c.AddListener(func() {
//	    view.SetCenter(move.Transform(c))
//	})
//	c.Forward()
//
//	// every frame, on the UI queue
//	sched.Step()
package animation
