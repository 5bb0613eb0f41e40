// Package testing provides a deterministic host for exercising the modal
// presenter in tests.
//
// # Quick Start
//
// A [Harness] stands in for the UI thread: it owns a manual FIFO
// dispatcher and an animation scheduler driven by a [FakeClock]. A
// [FakeView] plays both the content panel and the host view.
//
//	func TestPresent(t *testing.T) {
//	    h := modaltest.NewHarness()
//	    p := presenter.New(presenter.DefaultConfig(), h.Dispatcher(), h.Scheduler())
//
//	    host := modaltest.NewHostView(graphics.Size{Width: 400, Height: 800})
//	    panel := modaltest.NewFakeView("panel", graphics.RectFromLTWH(50, 100, 300, 200))
//
//	    p.Present(panel, host, presenter.Bottom, nil)
//	    if err := h.Settle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !p.IsPresented() {
//	        t.Error("expected modal to be presented")
//	    }
//	}
//
// # Animation Testing
//
// Control time to observe animations mid-flight:
//
//	h.Pump(100 * time.Millisecond)
//
// # Gestures
//
// Drive the drag-to-dismiss recognizer through the content view:
//
//	panel.Drag(graphics.Offset{Y: 40}, graphics.Offset{Y: 90})
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import modaltest "github.com/go-drift/modal/pkg/testing"
package testing
