package testing

import (
	"sync/atomic"

	"github.com/go-drift/modal/pkg/gestures"
	"github.com/go-drift/modal/pkg/graphics"
	"github.com/go-drift/modal/pkg/presenter"
)

// nextPointerID is incremented for each simulated pointer to avoid collisions.
var nextPointerID atomic.Int64

// Sample is one geometry mutation recorded by a FakeView.
type Sample struct {
	Center  graphics.Offset
	Opacity float64
}

// FakeView is an in-memory view usable as presenter.ContentView and
// presenter.HostView. It records every center and opacity write.
type FakeView struct {
	Name string

	size     graphics.Size
	center   graphics.Offset
	opacity  float64
	parent   *FakeView
	children []*FakeView
	handler  gestures.PointerHandler
	samples  []Sample

	// Attached counts AddChild calls that targeted this view as the child.
	Attached int
	// Detached counts RemoveFromParent calls.
	Detached int
}

// NewFakeView returns an unattached, fully opaque view occupying frame.
func NewFakeView(name string, frame graphics.Rect) *FakeView {
	return &FakeView{
		Name:    name,
		size:    frame.Size(),
		center:  frame.Center(),
		opacity: 1,
	}
}

// NewHostView returns a view of the given size anchored at the origin.
func NewHostView(size graphics.Size) *FakeView {
	return NewFakeView("host", graphics.RectFromLTWH(0, 0, size.Width, size.Height))
}

// Frame returns the view's rectangle in its parent's coordinates.
func (v *FakeView) Frame() graphics.Rect {
	return graphics.RectFromCenter(v.center, v.size)
}

// Bounds returns the view's rectangle in its own coordinates.
func (v *FakeView) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, v.size.Width, v.size.Height)
}

// SetSize resizes the view around its current center.
func (v *FakeView) SetSize(size graphics.Size) { v.size = size }

// Center returns the view's center.
func (v *FakeView) Center() graphics.Offset { return v.center }

// SetCenter moves the view.
func (v *FakeView) SetCenter(center graphics.Offset) {
	v.center = center
	v.samples = append(v.samples, Sample{Center: center, Opacity: v.opacity})
}

// Opacity returns the view's opacity.
func (v *FakeView) Opacity() float64 { return v.opacity }

// SetOpacity changes the view's opacity.
func (v *FakeView) SetOpacity(opacity float64) {
	v.opacity = opacity
	v.samples = append(v.samples, Sample{Center: v.center, Opacity: opacity})
}

// Samples returns every recorded geometry write, oldest first.
func (v *FakeView) Samples() []Sample { return v.samples }

// ClearSamples forgets the recorded writes.
func (v *FakeView) ClearSamples() { v.samples = nil }

// SetPointerHandler routes pointer events sent to the view.
func (v *FakeView) SetPointerHandler(h gestures.PointerHandler) { v.handler = h }

// PointerHandler returns the attached handler, if any.
func (v *FakeView) PointerHandler() gestures.PointerHandler { return v.handler }

// AddChild attaches child. Children that are not FakeViews are ignored.
func (v *FakeView) AddChild(child presenter.ContentView) {
	c, ok := child.(*FakeView)
	if !ok {
		return
	}
	if c.parent != nil {
		c.RemoveFromParent()
	}
	c.parent = v
	c.Attached++
	v.children = append(v.children, c)
}

// RemoveFromParent detaches the view from its parent.
func (v *FakeView) RemoveFromParent() {
	v.Detached++
	if v.parent == nil {
		return
	}
	siblings := v.parent.children
	for i, c := range siblings {
		if c == v {
			v.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	v.parent = nil
}

// Parent returns the view's parent, or nil.
func (v *FakeView) Parent() *FakeView { return v.parent }

// Children returns the attached children.
func (v *FakeView) Children() []*FakeView { return v.children }

// SendPointer delivers event to the attached handler. It reports whether a
// handler received it.
func (v *FakeView) SendPointer(event gestures.PointerEvent) bool {
	if v.handler == nil {
		return false
	}
	v.handler.HandlePointer(event)
	return true
}

// Drag simulates one pointer pressing on the view's center, moving through
// each translation in turn and lifting at the last one.
func (v *FakeView) Drag(translations ...graphics.Offset) {
	id := nextPointerID.Add(1)
	start := v.center
	v.SendPointer(gestures.PointerEvent{PointerID: id, Position: start, Phase: gestures.PointerPhaseDown})
	last := start
	for _, t := range translations {
		last = start.Add(t)
		v.SendPointer(gestures.PointerEvent{PointerID: id, Position: last, Phase: gestures.PointerPhaseMove})
	}
	v.SendPointer(gestures.PointerEvent{PointerID: id, Position: last, Phase: gestures.PointerPhaseUp})
}

// DragWithoutRelease is Drag without the final pointer-up. It returns the
// pointer ID so the test can finish or cancel the drag.
func (v *FakeView) DragWithoutRelease(translations ...graphics.Offset) int64 {
	id := nextPointerID.Add(1)
	start := v.center
	v.SendPointer(gestures.PointerEvent{PointerID: id, Position: start, Phase: gestures.PointerPhaseDown})
	for _, t := range translations {
		v.SendPointer(gestures.PointerEvent{PointerID: id, Position: start.Add(t), Phase: gestures.PointerPhaseMove})
	}
	return id
}
