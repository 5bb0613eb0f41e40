// Package presenter slides a content view on screen from one edge of a host
// view, holds it there, and slides it back off on dismissal, optionally
// fading it and letting the user drag it away.
//
// All work happens on the control-flow queue given to New: Present and
// Dismiss only enqueue, drag callbacks arrive on the queue from the host's
// pointer routing, and animation frames are stepped there by the host. The
// presenter therefore needs no locks around view geometry or session state.
//
// At most one modal is presented at a time. Presenting while a modal is up
// dismisses it first; requests that arrive during an enter or exit
// animation wait for it to settle. No request is ever dropped and every
// completion runs exactly once, on the queue.
package presenter

import (
	"log/slog"
	"sync/atomic"

	"github.com/go-drift/modal/pkg/animation"
	"github.com/go-drift/modal/pkg/errors"
	"github.com/go-drift/modal/pkg/gestures"
	"github.com/go-drift/modal/pkg/platform"
)

// Presenter runs the present/dismiss state machine for one modal at a time.
type Presenter struct {
	cfg        Config
	dispatcher platform.Dispatcher
	scheduler  *animation.Scheduler
	errs       errors.Handler
	logger     *slog.Logger

	// Fields below are only touched on the dispatcher's queue.
	state      State
	busy       bool
	waiting    []deferredOp
	runs       map[ContentView]*run
	tracker    *dragTracker
	recognizer *gestures.PanRecognizer

	presented atomic.Bool
	released  atomic.Bool
}

// deferredOp is a request parked while an enter or exit animation runs.
type deferredOp struct {
	op         string
	onComplete func()
	run        func()
}

// Option customizes a Presenter.
type Option func(*Presenter)

// WithErrorHandler routes reported errors to h instead of a LogHandler.
func WithErrorHandler(h errors.Handler) Option {
	return func(p *Presenter) { p.errs = h }
}

// WithLogger sets the logger for debug output and the default error handler.
func WithLogger(l *slog.Logger) Option {
	return func(p *Presenter) { p.logger = l }
}

// New returns an idle presenter that runs on dispatcher and animates with
// tickers from scheduler. The host must step scheduler on the same queue
// dispatcher feeds.
func New(cfg Config, dispatcher platform.Dispatcher, scheduler *animation.Scheduler, opts ...Option) *Presenter {
	p := &Presenter{
		cfg:        cfg,
		dispatcher: dispatcher,
		scheduler:  scheduler,
		state:      Idle{},
		runs:       make(map[ContentView]*run),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.errs == nil {
		p.errs = &errors.LogHandler{Logger: p.logger}
	}
	p.tracker = &dragTracker{p: p}
	p.recognizer = gestures.NewPanRecognizer(p.tracker)
	return p
}

// NewWithLoop returns a presenter running on loop and its scheduler.
func NewWithLoop(cfg Config, loop *platform.Loop, opts ...Option) *Presenter {
	return New(cfg, loop, loop.Scheduler(), opts...)
}

// Config returns the presenter's configuration.
func (p *Presenter) Config() Config { return p.cfg }

// IsPresented reports whether a modal is settled on screen. It is safe to
// call from any goroutine.
func (p *Presenter) IsPresented() bool { return p.presented.Load() }

// State returns the current state. It must be called on the queue.
func (p *Presenter) State() State { return p.state }

// Present shows content over host, entering from edge, and calls onComplete
// once the content has settled (or the request was abandoned). If a modal
// is already presented it is dismissed first.
func (p *Presenter) Present(content ContentView, host HostView, edge Edge, onComplete func()) {
	p.logger.Debug("presenting modal", "edge", edge)
	p.post("presenter.Present", onComplete, func() {
		p.present(content, host, edge, onComplete)
	})
}

// Dismiss slides the presented content off screen, detaches it, and calls
// onComplete. With nothing presented it only calls onComplete.
func (p *Presenter) Dismiss(onComplete func()) {
	p.post("presenter.Dismiss", onComplete, func() {
		p.dismiss(onComplete)
	})
}

// Close releases the presenter. Animations in flight are interrupted and
// every pending or later request reports errors.ErrReleased and completes
// without touching any view.
func (p *Presenter) Close() {
	if !p.released.CompareAndSwap(false, true) {
		return
	}
	p.dispatcher.Dispatch(func() {
		for view, r := range p.runs {
			p.finish(view, r, false)
		}
		waiting := p.waiting
		p.waiting = nil
		for _, d := range waiting {
			p.abandon(d.op, d.onComplete)
		}
	})
}

func (p *Presenter) post(op string, onComplete func(), fn func()) {
	if !p.dispatcher.Dispatch(fn) {
		// The queue is gone; nothing can run on it any more.
		p.abandon(op, onComplete)
	}
}

// abandon reports a request that arrived after release and completes it.
func (p *Presenter) abandon(op string, onComplete func()) {
	errors.Report(p.errs, errors.New(op, errors.KindReleased, errors.ErrReleased))
	p.complete(op, onComplete)
}

func (p *Presenter) complete(op string, onComplete func()) {
	if onComplete == nil {
		return
	}
	defer errors.Recover(p.errs, op)
	onComplete()
}

// deferIfBusy parks an operation until the running transition settles. It
// reports whether the operation was parked.
func (p *Presenter) deferIfBusy(op string, onComplete func(), run func()) bool {
	if !p.busy {
		return false
	}
	p.waiting = append(p.waiting, deferredOp{op: op, onComplete: onComplete, run: run})
	return true
}

// deferFirst parks an operation ahead of every other parked one. It reports
// whether the operation was parked.
func (p *Presenter) deferFirst(op string, onComplete func(), run func()) bool {
	if !p.busy {
		return false
	}
	p.waiting = append([]deferredOp{{op: op, onComplete: onComplete, run: run}}, p.waiting...)
	return true
}

// settle ends a transition and replays parked operations in arrival order
// until one of them starts a new transition.
func (p *Presenter) settle() {
	p.busy = false
	for !p.busy && len(p.waiting) > 0 {
		next := p.waiting[0]
		p.waiting = p.waiting[1:]
		next.run()
	}
}

// session returns the presented session, if any.
func (p *Presenter) session() (Session, bool) {
	presented, ok := p.state.(Presented)
	if !ok {
		return Session{}, false
	}
	return presented.Session, true
}

func (p *Presenter) present(content ContentView, host HostView, edge Edge, onComplete func()) {
	const op = "presenter.Present"
	if p.released.Load() {
		p.abandon(op, onComplete)
		return
	}
	if p.deferIfBusy(op, onComplete, func() { p.present(content, host, edge, onComplete) }) {
		return
	}
	if _, ok := p.session(); ok {
		p.logger.Debug("dismissing current modal before presenting", "edge", edge)
		p.dismiss(nil)
		// The present goes ahead of anything parked during the dismissal.
		if !p.deferFirst(op, onComplete, func() { p.present(content, host, edge, onComplete) }) {
			p.present(content, host, edge, onComplete)
		}
		return
	}
	if isNil(content) || isNil(host) {
		errors.Report(p.errs, errors.New(op, errors.KindGeometry, errors.ErrMissingGeometry))
		p.complete(op, onComplete)
		return
	}

	s := Session{
		Content:        content,
		Host:           host,
		Edge:           edge,
		OriginalCenter: content.Center(),
	}
	anchor := OffscreenAnchor(edge, content.Frame(), s.OriginalCenter, host.Bounds().Size())

	content.SetCenter(anchor)
	if p.cfg.TransitionWithOpacity {
		content.SetOpacity(0)
	} else {
		content.SetOpacity(1)
	}
	host.AddChild(content)
	if p.cfg.GestureDismissable {
		p.recognizer.Reset()
		content.SetPointerHandler(p.recognizer)
	}

	p.busy = true
	p.animate(content, s.OriginalCenter, 1, func(finished bool) {
		if p.released.Load() {
			p.abandon(op, onComplete)
			return
		}
		content.SetCenter(s.OriginalCenter)
		content.SetOpacity(1)
		if !finished {
			p.logger.Debug("present animation interrupted", "edge", edge)
		}

		p.state = Presented{Session: s}
		p.presented.Store(true)
		p.complete(op, onComplete)
		p.settle()
	})
}

func (p *Presenter) dismiss(onComplete func()) {
	const op = "presenter.Dismiss"
	if p.released.Load() {
		p.abandon(op, onComplete)
		return
	}
	if p.deferIfBusy(op, onComplete, func() { p.dismiss(onComplete) }) {
		return
	}
	s, ok := p.session()
	if !ok {
		p.logger.Debug("modal already dismissed")
		p.complete(op, onComplete)
		return
	}
	if isNil(s.Content) || isNil(s.Host) {
		errors.Report(p.errs, errors.New(op, errors.KindGeometry, errors.ErrMissingGeometry))
		p.complete(op, onComplete)
		return
	}
	p.logger.Debug("dismissing modal", "edge", s.Edge)

	content := s.Content
	anchor := OffscreenAnchor(s.Edge, content.Frame(), content.Center(), s.Host.Bounds().Size())
	opacity := 1.0
	if p.cfg.TransitionWithOpacity {
		opacity = 0
	}

	if p.cfg.GestureDismissable {
		content.SetPointerHandler(nil)
		p.recognizer.Reset()
	}
	p.tracker.reset()

	p.busy = true
	p.animate(content, anchor, opacity, func(finished bool) {
		if p.released.Load() {
			p.abandon(op, onComplete)
			return
		}
		content.SetCenter(anchor)
		content.SetOpacity(opacity)
		if !finished {
			p.logger.Debug("dismiss animation interrupted", "edge", s.Edge)
		}

		// Leave the detached view where the host originally put it.
		content.SetCenter(s.OriginalCenter)
		content.RemoveFromParent()

		p.state = Idle{}
		p.presented.Store(false)
		p.complete(op, onComplete)
		p.settle()
	})
}
