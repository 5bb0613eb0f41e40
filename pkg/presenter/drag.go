package presenter

import (
	"math"

	"github.com/go-drift/modal/pkg/graphics"
)

// dragTracker implements gestures.DragHandler for the presented content.
// It moves the content along the exit axis while the pointer is down and,
// on release, either commits the dismissal or snaps the content back.
//
// Callbacks are no-ops unless a session is presented and the presenter is
// alive, which also covers a drag that outlives a concurrent dismissal.
type dragTracker struct {
	p      *Presenter
	origin graphics.Offset
	active bool
}

// OnDragBegin captures the content center and applies the first move.
func (t *dragTracker) OnDragBegin(translation graphics.Offset) {
	s, ok := t.session()
	if !ok {
		return
	}
	// A snap-back still running is settled before the drag takes over.
	t.p.interrupt(s.Content)
	t.origin = s.Content.Center()
	t.active = true
	t.move(s, translation)
}

// OnDragChange moves the content within the allowed range.
func (t *dragTracker) OnDragChange(translation graphics.Offset) {
	s, ok := t.session()
	if !ok || !t.active {
		return
	}
	t.move(s, translation)
}

// OnDragEnd commits or cancels the dismissal.
func (t *dragTracker) OnDragEnd(translation graphics.Offset) {
	s, ok := t.session()
	if !ok || !t.active {
		return
	}
	t.active = false

	if t.shouldDismiss(s, translation) {
		t.p.logger.Debug("drag committed dismissal", "edge", s.Edge, "translation", translation)
		t.p.dismiss(nil)
		return
	}
	t.p.logger.Debug("drag snapped back", "edge", s.Edge, "translation", translation)
	t.snapBack(s)
}

// OnDragCancel snaps the content back to where the drag started.
func (t *dragTracker) OnDragCancel() {
	s, ok := t.session()
	if !ok || !t.active {
		return
	}
	t.active = false
	t.snapBack(s)
}

func (t *dragTracker) reset() {
	t.active = false
}

func (t *dragTracker) session() (Session, bool) {
	if t.p.released.Load() {
		return Session{}, false
	}
	s, ok := t.p.session()
	if !ok || s.Content == nil || s.Host == nil {
		return Session{}, false
	}
	return s, true
}

// maxOppositeDrag is how far the content may travel away from its exit
// edge, measured on the drag axis of the host.
func (t *dragTracker) maxOppositeDrag(s Session) float64 {
	bounds := s.Host.Bounds()
	if s.Edge.horizontal() {
		return bounds.Width() * t.p.cfg.OppositeDragFraction
	}
	return bounds.Height() * t.p.cfg.OppositeDragFraction
}

// minTranslationToDismiss is the drag length that commits a dismissal,
// measured on the drag axis of the content.
func (t *dragTracker) minTranslationToDismiss(s Session) float64 {
	frame := s.Content.Frame()
	if s.Edge.horizontal() {
		return frame.Width() * t.p.cfg.DismissFraction
	}
	return frame.Height() * t.p.cfg.DismissFraction
}

// move places the content at origin + translation on the exit axis. Motion
// toward the exit edge is free; motion the other way stops at
// maxOppositeDrag past the origin.
func (t *dragTracker) move(s Session, translation graphics.Offset) {
	slack := t.maxOppositeDrag(s)
	center := s.Content.Center()
	switch s.Edge {
	case Leading:
		center.X = math.Min(t.origin.X+translation.X, t.origin.X+slack)
	case Trailing:
		center.X = math.Max(t.origin.X+translation.X, t.origin.X-slack)
	case Top:
		center.Y = math.Min(t.origin.Y+translation.Y, t.origin.Y+slack)
	default:
		center.Y = math.Max(t.origin.Y+translation.Y, t.origin.Y-slack)
	}
	s.Content.SetCenter(center)
}

func (t *dragTracker) shouldDismiss(s Session, translation graphics.Offset) bool {
	threshold := t.minTranslationToDismiss(s)
	switch s.Edge {
	case Leading:
		return translation.X <= -threshold
	case Trailing:
		return translation.X >= threshold
	case Top:
		return translation.Y <= -threshold
	default:
		return translation.Y >= threshold
	}
}

func (t *dragTracker) snapBack(s Session) {
	origin := t.origin
	content := s.Content
	t.p.animate(content, origin, content.Opacity(), func(bool) {
		content.SetCenter(origin)
	})
}
