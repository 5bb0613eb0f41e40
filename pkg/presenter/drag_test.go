package presenter_test

import (
	"testing"
	"time"

	"github.com/go-drift/modal/pkg/gestures"
	"github.com/go-drift/modal/pkg/graphics"
	"github.com/go-drift/modal/pkg/presenter"
)

func TestDragClampsOppositeDirection(t *testing.T) {
	f := newFixture(t, gestureConfig())
	f.present(t, presenter.Leading)

	// Leading exits left; the host is 400 wide so the content may drift at
	// most 20 to the right of its rest position.
	id := f.panel.DragWithoutRelease(graphics.Offset{X: 100})
	if got := f.panel.Center(); got != (graphics.Offset{X: 220, Y: 200}) {
		t.Errorf("clamped center = %+v, want (220, 200)", got)
	}

	f.panel.SendPointer(gestures.PointerEvent{
		PointerID: id,
		Position:  restCenter.Add(graphics.Offset{X: -50}),
		Phase:     gestures.PointerPhaseMove,
	})
	if got := f.panel.Center(); got != (graphics.Offset{X: 150, Y: 200}) {
		t.Errorf("free center = %+v, want (150, 200)", got)
	}

	f.panel.SendPointer(gestures.PointerEvent{
		PointerID: id,
		Position:  restCenter.Add(graphics.Offset{X: -50}),
		Phase:     gestures.PointerPhaseUp,
	})
	f.settle(t)
	if f.panel.Center() != restCenter {
		t.Errorf("center after snap back = %+v, want %+v", f.panel.Center(), restCenter)
	}
	if !f.p.IsPresented() {
		t.Error("a short drag must not dismiss")
	}
}

func TestDragMovesOnlyAlongExitAxis(t *testing.T) {
	f := newFixture(t, gestureConfig())
	f.present(t, presenter.Bottom)

	f.panel.DragWithoutRelease(graphics.Offset{X: 80, Y: 30})
	if got := f.panel.Center(); got != (graphics.Offset{X: 200, Y: 230}) {
		t.Errorf("center = %+v, want (200, 230)", got)
	}
}

func TestDragThreshold(t *testing.T) {
	tests := []struct {
		name        string
		edge        presenter.Edge
		translation graphics.Offset
		dismiss     bool
	}{
		// Thresholds are 0.33 of the 300x200 panel: 99 across, 66 down.
		{"leading commit", presenter.Leading, graphics.Offset{X: -120}, true},
		{"leading short", presenter.Leading, graphics.Offset{X: -50}, false},
		{"leading wrong way", presenter.Leading, graphics.Offset{X: 120}, false},
		{"trailing commit", presenter.Trailing, graphics.Offset{X: 100}, true},
		{"top commit", presenter.Top, graphics.Offset{Y: -70}, true},
		{"top short", presenter.Top, graphics.Offset{Y: -60}, false},
		{"bottom commit", presenter.Bottom, graphics.Offset{Y: 70}, true},
		{"bottom short", presenter.Bottom, graphics.Offset{Y: 50}, false},
		{"bottom wrong way", presenter.Bottom, graphics.Offset{Y: -100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, gestureConfig())
			f.present(t, tt.edge)

			f.panel.Drag(tt.translation)
			f.settle(t)

			if got := !f.p.IsPresented(); got != tt.dismiss {
				t.Errorf("dismissed = %v, want %v", got, tt.dismiss)
			}
			if f.panel.Center() != restCenter {
				t.Errorf("center = %+v, want %+v", f.panel.Center(), restCenter)
			}
			if tt.dismiss && f.panel.Parent() != nil {
				t.Error("expected panel detached")
			}
			if !tt.dismiss && f.panel.Parent() != f.host {
				t.Error("expected panel still attached")
			}
		})
	}
}

func TestDragInterruptsSnapBack(t *testing.T) {
	f := newFixture(t, gestureConfig())
	f.present(t, presenter.Bottom)

	f.panel.Drag(graphics.Offset{Y: 50})
	f.h.Pump(100 * time.Millisecond)
	mid := f.panel.Center()
	if mid.Y <= restCenter.Y || mid.Y >= restCenter.Y+50 {
		t.Fatalf("snap back not in flight: center %+v", mid)
	}

	// The new drag settles the snap back at its target first, so the drag
	// is measured from the rest position.
	id := f.panel.DragWithoutRelease(graphics.Offset{Y: 10})
	if got := f.panel.Center(); got != (graphics.Offset{X: 200, Y: 210}) {
		t.Errorf("center = %+v, want (200, 210)", got)
	}

	f.panel.SendPointer(gestures.PointerEvent{
		PointerID: id,
		Position:  mid.Add(graphics.Offset{Y: 10}),
		Phase:     gestures.PointerPhaseUp,
	})
	f.settle(t)
	if f.panel.Center() != restCenter || !f.p.IsPresented() {
		t.Errorf("center = %+v presented = %v, want rest and presented", f.panel.Center(), f.p.IsPresented())
	}
}

func TestDragCancelSnapsBack(t *testing.T) {
	f := newFixture(t, gestureConfig())
	f.present(t, presenter.Top)

	id := f.panel.DragWithoutRelease(graphics.Offset{Y: -150})
	f.panel.SendPointer(gestures.PointerEvent{PointerID: id, Phase: gestures.PointerPhaseCancel})
	f.settle(t)

	if !f.p.IsPresented() || f.panel.Center() != restCenter {
		t.Errorf("cancel must snap back: presented=%v center=%+v", f.p.IsPresented(), f.panel.Center())
	}
}

func TestDragIgnoredDuringEnterAnimation(t *testing.T) {
	f := newFixture(t, gestureConfig())
	f.p.Present(f.panel, f.host, presenter.Bottom, nil)
	f.h.Drain()
	f.h.Pump(100 * time.Millisecond)

	f.panel.Drag(graphics.Offset{Y: 150})
	f.settle(t)

	if !f.p.IsPresented() || f.panel.Center() != restCenter {
		t.Errorf("presented=%v center=%+v, want settled at rest", f.p.IsPresented(), f.panel.Center())
	}
}

func TestDragAfterDismissIsNoOp(t *testing.T) {
	f := newFixture(t, gestureConfig())
	f.present(t, presenter.Bottom)
	handler := f.panel.PointerHandler()
	if handler == nil {
		t.Fatal("expected a pointer handler on gesture-dismissable content")
	}

	f.p.Dismiss(nil)
	f.settle(t)
	if f.panel.PointerHandler() != nil {
		t.Error("expected pointer handler detached on dismiss")
	}

	f.panel.ClearSamples()
	handler.HandlePointer(gestures.PointerEvent{PointerID: 99, Position: restCenter, Phase: gestures.PointerPhaseDown})
	handler.HandlePointer(gestures.PointerEvent{PointerID: 99, Position: restCenter.Add(graphics.Offset{Y: 100}), Phase: gestures.PointerPhaseMove})
	handler.HandlePointer(gestures.PointerEvent{PointerID: 99, Position: restCenter.Add(graphics.Offset{Y: 100}), Phase: gestures.PointerPhaseUp})
	f.settle(t)

	if len(f.panel.Samples()) != 0 {
		t.Errorf("stale drag moved the view: %v", f.panel.Samples())
	}
	if len(f.errs.errors) != 0 {
		t.Errorf("unexpected errors: %v", f.errs.errors)
	}
}

func TestGestureDisabledAttachesNoHandler(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	f.present(t, presenter.Bottom)
	if f.panel.PointerHandler() != nil {
		t.Error("expected no pointer handler when gestures are disabled")
	}
	if f.panel.SendPointer(gestures.PointerEvent{Phase: gestures.PointerPhaseDown}) {
		t.Error("pointer events must not be delivered")
	}
}
