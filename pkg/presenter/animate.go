package presenter

import (
	"github.com/go-drift/modal/pkg/animation"
	"github.com/go-drift/modal/pkg/graphics"
)

// run is one in-flight animation of a content view.
type run struct {
	controller *animation.AnimationController
	done       func(finished bool)
}

// animate moves view to center and opacity using the configured duration,
// delay and curve, then calls done exactly once. done receives false when
// the animation was interrupted by another animation of the same view or by
// Close; callers force their end state either way.
func (p *Presenter) animate(view ContentView, center graphics.Offset, opacity float64, done func(finished bool)) {
	p.interrupt(view)

	c := animation.NewAnimationController(p.cfg.AnimationDuration, p.scheduler)
	c.Delay = p.cfg.AnimationDelay
	c.Curve = p.cfg.curve()

	move := animation.TweenOffset(view.Center(), center)
	fade := animation.TweenFloat64(view.Opacity(), opacity)
	r := &run{controller: c, done: done}

	c.AddListener(func() {
		view.SetCenter(move.Transform(c))
		view.SetOpacity(fade.Transform(c))
	})
	c.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			p.finish(view, r, true)
		}
	})

	p.runs[view] = r
	c.Forward()
}

// interrupt stops the animation running on view, if any.
func (p *Presenter) interrupt(view ContentView) {
	if r, ok := p.runs[view]; ok {
		p.finish(view, r, false)
	}
}

func (p *Presenter) finish(view ContentView, r *run, finished bool) {
	if p.runs[view] != r {
		return
	}
	delete(p.runs, view)
	r.controller.Dispose()
	r.done(finished)
}
