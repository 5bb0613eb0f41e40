package presenter_test

import (
	stderrors "errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-drift/modal/pkg/errors"
	"github.com/go-drift/modal/pkg/graphics"
	"github.com/go-drift/modal/pkg/presenter"
	modaltest "github.com/go-drift/modal/pkg/testing"
)

var (
	hostSize   = graphics.Size{Width: 400, Height: 800}
	panelFrame = graphics.RectFromLTWH(50, 100, 300, 200)
	restCenter = graphics.Offset{X: 200, Y: 200}
)

type recordingHandler struct {
	errors []*errors.Error
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.Error)      { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

type fixture struct {
	h     *modaltest.Harness
	p     *presenter.Presenter
	host  *modaltest.FakeView
	panel *modaltest.FakeView
	errs  *recordingHandler
}

func newFixture(t *testing.T, cfg presenter.Config) *fixture {
	t.Helper()
	h := modaltest.NewHarness()
	errs := &recordingHandler{}
	p := presenter.New(cfg, h.Dispatcher(), h.Scheduler(),
		presenter.WithErrorHandler(errs),
		presenter.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return &fixture{
		h:     h,
		p:     p,
		host:  modaltest.NewHostView(hostSize),
		panel: modaltest.NewFakeView("panel", panelFrame),
		errs:  errs,
	}
}

func (f *fixture) settle(t *testing.T) {
	t.Helper()
	if err := f.h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) present(t *testing.T, edge presenter.Edge) {
	t.Helper()
	f.p.Present(f.panel, f.host, edge, nil)
	f.settle(t)
	if !f.p.IsPresented() {
		t.Fatal("expected modal to be presented")
	}
}

func gestureConfig() presenter.Config {
	cfg := presenter.DefaultConfig()
	cfg.GestureDismissable = true
	return cfg
}

var allEdges = []presenter.Edge{presenter.Leading, presenter.Trailing, presenter.Top, presenter.Bottom}

func TestOffscreenAnchor(t *testing.T) {
	tests := []struct {
		edge presenter.Edge
		want graphics.Offset
	}{
		// center.x -= maxX + 5
		{presenter.Leading, graphics.Offset{X: 200 - (350 + 5), Y: 200}},
		// center.x += host.width - minX + 5
		{presenter.Trailing, graphics.Offset{X: 200 + (400 - 50 + 5), Y: 200}},
		// center.y -= maxY + 5
		{presenter.Top, graphics.Offset{X: 200, Y: 200 - (300 + 5)}},
		// center.y += host.height - minY + 5
		{presenter.Bottom, graphics.Offset{X: 200, Y: 200 + (800 - 100 + 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			got := presenter.OffscreenAnchor(tt.edge, panelFrame, restCenter, hostSize)
			if got != tt.want {
				t.Errorf("OffscreenAnchor(%v) = %+v, want %+v", tt.edge, got, tt.want)
			}
			frame := panelFrame.WithCenter(got)
			host := graphics.RectFromLTWH(0, 0, hostSize.Width, hostSize.Height)
			if !frame.Intersect(host).IsEmpty() {
				t.Errorf("anchored frame %+v still overlaps host", frame)
			}
		})
	}
}

func TestDismissWhenIdleIsNoOp(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	calls := 0
	f.p.Dismiss(func() { calls++ })
	if calls != 0 {
		t.Fatal("Dismiss must not complete synchronously")
	}
	f.settle(t)

	if calls != 1 {
		t.Errorf("completion called %d times, want 1", calls)
	}
	if _, ok := f.p.State().(presenter.Idle); !ok {
		t.Errorf("State = %T, want Idle", f.p.State())
	}
	if len(f.panel.Samples()) != 0 || f.panel.Detached != 0 {
		t.Error("idle Dismiss must not touch any view")
	}
	if len(f.errs.errors) != 0 {
		t.Errorf("unexpected errors: %v", f.errs.errors)
	}
}

func TestPresentIsAsynchronous(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	f.p.Present(f.panel, f.host, presenter.Bottom, nil)
	if len(f.panel.Samples()) != 0 || f.panel.Parent() != nil {
		t.Fatal("Present must not mutate views before the queue runs")
	}
	f.h.Drain()
	if f.panel.Parent() != f.host {
		t.Error("expected panel attached once the queue ran")
	}
	if f.p.IsPresented() {
		t.Error("IsPresented must stay false until the enter animation settles")
	}
}

func TestPresentDismissRoundTrip(t *testing.T) {
	for _, edge := range allEdges {
		t.Run(edge.String(), func(t *testing.T) {
			f := newFixture(t, presenter.DefaultConfig())

			presented := 0
			f.p.Present(f.panel, f.host, edge, func() { presented++ })
			f.h.Drain()
			anchor := presenter.OffscreenAnchor(edge, panelFrame, restCenter, hostSize)
			if f.panel.Center() != anchor {
				t.Errorf("start center = %+v, want anchor %+v", f.panel.Center(), anchor)
			}
			f.settle(t)

			if presented != 1 {
				t.Errorf("present completion called %d times, want 1", presented)
			}
			st, ok := f.p.State().(presenter.Presented)
			if !ok {
				t.Fatalf("State = %T, want Presented", f.p.State())
			}
			if st.Session.Edge != edge || st.Session.OriginalCenter != restCenter {
				t.Errorf("session = %+v", st.Session)
			}
			if f.panel.Center() != restCenter {
				t.Errorf("rest center = %+v, want %+v", f.panel.Center(), restCenter)
			}

			dismissed := 0
			f.p.Dismiss(func() { dismissed++ })
			f.settle(t)

			if dismissed != 1 {
				t.Errorf("dismiss completion called %d times, want 1", dismissed)
			}
			if f.panel.Center() != restCenter {
				t.Errorf("center after dismiss = %+v, want %+v", f.panel.Center(), restCenter)
			}
			if f.panel.Parent() != nil || len(f.host.Children()) != 0 {
				t.Error("expected panel detached after dismiss")
			}
			if f.p.IsPresented() {
				t.Error("expected IsPresented false after dismiss")
			}
			if _, ok := f.p.State().(presenter.Idle); !ok {
				t.Errorf("State = %T, want Idle", f.p.State())
			}
		})
	}
}

func TestOpacityTransition(t *testing.T) {
	cfg := presenter.DefaultConfig()
	cfg.TransitionWithOpacity = true
	f := newFixture(t, cfg)
	anchor := presenter.OffscreenAnchor(presenter.Top, panelFrame, restCenter, hostSize)

	f.p.Present(f.panel, f.host, presenter.Top, nil)
	f.h.Drain()
	if f.panel.Center() != anchor || f.panel.Opacity() != 0 {
		t.Errorf("at anchor: center=%+v opacity=%v, want %+v and 0", f.panel.Center(), f.panel.Opacity(), anchor)
	}
	f.h.Pump(200 * time.Millisecond)
	if op := f.panel.Opacity(); op <= 0 || op >= 1 {
		t.Errorf("mid-present opacity = %v, want between 0 and 1", op)
	}
	f.settle(t)
	if f.panel.Opacity() != 1 {
		t.Errorf("opacity at rest = %v, want 1", f.panel.Opacity())
	}

	f.panel.ClearSamples()
	f.p.Dismiss(nil)
	f.settle(t)

	samples := f.panel.Samples()
	if len(samples) < 2 {
		t.Fatalf("too few samples: %d", len(samples))
	}
	atAnchor := samples[len(samples)-2]
	if atAnchor.Center != anchor || atAnchor.Opacity != 0 {
		t.Errorf("end of dismiss = %+v, want anchor %+v with opacity 0", atAnchor, anchor)
	}
}

func TestOpacityStaysOpaqueWithoutTransition(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	f.present(t, presenter.Leading)
	f.p.Dismiss(nil)
	f.settle(t)

	for i, s := range f.panel.Samples() {
		if s.Opacity != 1 {
			t.Fatalf("sample %d opacity = %v, want 1", i, s.Opacity)
		}
	}
}

func TestDismissRecomputesAnchorFromCurrentHost(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	f.present(t, presenter.Trailing)

	f.host.SetSize(graphics.Size{Width: 600, Height: 800})
	f.panel.ClearSamples()
	f.p.Dismiss(nil)
	f.settle(t)

	maxX := 0.0
	for _, s := range f.panel.Samples() {
		if s.Center.X > maxX {
			maxX = s.Center.X
		}
	}
	if want := 200.0 + 600 - 50 + 5; maxX != want {
		t.Errorf("exit anchor x = %v, want %v", maxX, want)
	}
}

func TestPresentWhilePresentedDismissesFirst(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	f.present(t, presenter.Leading)

	second := modaltest.NewFakeView("second", graphics.RectFromLTWH(100, 400, 200, 100))
	presented := 0
	f.p.Present(second, f.host, presenter.Top, func() { presented++ })
	f.h.Drain()
	if second.Attached != 0 {
		t.Fatal("second modal attached before the first was dismissed")
	}

	for i := 0; second.Attached == 0; i++ {
		if i > 200 {
			t.Fatal("second modal never attached")
		}
		f.h.Frame()
	}
	if f.panel.Parent() != nil || f.panel.Detached != 1 {
		t.Error("first modal must be detached before the second is attached")
	}
	if f.panel.Center() != restCenter {
		t.Errorf("first modal center = %+v, want %+v", f.panel.Center(), restCenter)
	}

	f.settle(t)
	if presented != 1 {
		t.Errorf("present completion called %d times, want 1", presented)
	}
	st, ok := f.p.State().(presenter.Presented)
	if !ok {
		t.Fatalf("State = %T, want Presented", f.p.State())
	}
	if st.Session.Content != second || st.Session.Edge != presenter.Top {
		t.Errorf("session = %+v, want second modal from top", st.Session)
	}
}

func TestRequestsDuringTransitionWaitInOrder(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	var order []string

	f.p.Present(f.panel, f.host, presenter.Bottom, func() { order = append(order, "present") })
	f.h.Drain()
	f.h.Pump(100 * time.Millisecond)
	f.p.Dismiss(func() { order = append(order, "dismiss") })
	f.p.Dismiss(func() { order = append(order, "dismiss-again") })
	f.settle(t)

	want := []string{"present", "dismiss", "dismiss-again"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
	if f.p.IsPresented() || f.panel.Parent() != nil {
		t.Error("expected modal dismissed")
	}
}

func TestPresentDuringEnterAnimationQueues(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	second := modaltest.NewFakeView("second", graphics.RectFromLTWH(0, 0, 100, 100))

	f.p.Present(f.panel, f.host, presenter.Bottom, nil)
	f.h.Drain()
	f.p.Present(second, f.host, presenter.Leading, nil)
	f.settle(t)

	st, ok := f.p.State().(presenter.Presented)
	if !ok || st.Session.Content != second {
		t.Fatalf("State = %+v, want second modal presented", f.p.State())
	}
	if f.panel.Parent() != nil || f.panel.Center() != restCenter {
		t.Error("first modal must be dismissed and restored")
	}
}

func TestReplacingPresentRunsBeforeLaterRequests(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	f.present(t, presenter.Bottom)

	second := modaltest.NewFakeView("second", graphics.RectFromLTWH(100, 400, 200, 100))
	var order []string
	f.p.Present(second, f.host, presenter.Top, func() { order = append(order, "present-second") })
	f.p.Dismiss(func() { order = append(order, "dismiss") })
	f.settle(t)

	want := []string{"present-second", "dismiss"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
	if second.Parent() != nil || f.p.IsPresented() {
		t.Error("the later dismiss must remove the second modal")
	}
	if _, ok := f.p.State().(presenter.Idle); !ok {
		t.Errorf("State = %T, want Idle", f.p.State())
	}
}

func TestConsecutiveReplacingPresentsEndWithLast(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	f.present(t, presenter.Bottom)

	second := modaltest.NewFakeView("second", graphics.RectFromLTWH(100, 400, 200, 100))
	third := modaltest.NewFakeView("third", graphics.RectFromLTWH(0, 0, 100, 100))
	var order []string
	f.p.Present(second, f.host, presenter.Top, func() { order = append(order, "second") })
	f.p.Present(third, f.host, presenter.Leading, func() { order = append(order, "third") })
	f.settle(t)

	if len(order) != 2 || order[0] != "second" || order[1] != "third" {
		t.Fatalf("order = %v, want [second third]", order)
	}
	st, ok := f.p.State().(presenter.Presented)
	if !ok || st.Session.Content != third {
		t.Fatalf("State = %+v, want third modal presented", f.p.State())
	}
	if second.Parent() != nil || second.Detached != 1 {
		t.Error("second modal must be presented then dismissed")
	}
	if f.panel.Parent() != nil {
		t.Error("first modal must be detached")
	}
}

func TestPresentMissingContent(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	calls := 0
	f.p.Present(nil, f.host, presenter.Bottom, func() { calls++ })
	f.settle(t)

	if calls != 1 {
		t.Errorf("completion called %d times, want 1", calls)
	}
	if len(f.host.Children()) != 0 || f.p.IsPresented() {
		t.Error("missing content must not present anything")
	}
	if len(f.errs.errors) != 1 || f.errs.errors[0].Kind != errors.KindGeometry {
		t.Fatalf("errors = %v, want one geometry error", f.errs.errors)
	}
	if !stderrors.Is(f.errs.errors[0], errors.ErrMissingGeometry) {
		t.Error("expected ErrMissingGeometry cause")
	}
}

func TestPresentNilPointerViews(t *testing.T) {
	tests := []struct {
		name    string
		content presenter.ContentView
		host    presenter.HostView
	}{
		{"content", (*modaltest.FakeView)(nil), modaltest.NewHostView(hostSize)},
		{"host", modaltest.NewFakeView("panel", panelFrame), (*modaltest.FakeView)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, presenter.DefaultConfig())
			calls := 0
			f.p.Present(tt.content, tt.host, presenter.Bottom, func() { calls++ })
			f.settle(t)

			if calls != 1 {
				t.Errorf("completion called %d times, want 1", calls)
			}
			if f.p.IsPresented() {
				t.Error("nil views must not present anything")
			}
			if len(f.errs.errors) != 1 || !stderrors.Is(f.errs.errors[0], errors.ErrMissingGeometry) {
				t.Errorf("errors = %v, want one missing geometry error", f.errs.errors)
			}
		})
	}
}

func TestCloseDuringPresent(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	calls := 0
	f.p.Present(f.panel, f.host, presenter.Bottom, func() { calls++ })
	f.h.Drain()
	f.h.Pump(100 * time.Millisecond)

	f.p.Close()
	f.settle(t)

	if calls != 1 {
		t.Errorf("completion called %d times, want 1", calls)
	}
	if f.p.IsPresented() {
		t.Error("released presenter must not report presented")
	}
	if len(f.errs.errors) != 1 || f.errs.errors[0].Kind != errors.KindReleased {
		t.Fatalf("errors = %v, want one released error", f.errs.errors)
	}

	dismissed := 0
	f.p.Dismiss(func() { dismissed++ })
	f.settle(t)
	if dismissed != 1 {
		t.Errorf("dismiss after Close completed %d times, want 1", dismissed)
	}
	if !stderrors.Is(f.errs.errors[len(f.errs.errors)-1], errors.ErrReleased) {
		t.Error("expected ErrReleased for request after Close")
	}
}

func TestClosedQueueCompletesInCaller(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	f.h.Queue().Close()

	calls := 0
	f.p.Dismiss(func() { calls++ })
	if calls != 1 {
		t.Errorf("completion called %d times, want 1", calls)
	}
	if len(f.errs.errors) != 1 || f.errs.errors[0].Kind != errors.KindReleased {
		t.Errorf("errors = %v, want one released error", f.errs.errors)
	}
}

func TestCompletionPanicIsRecovered(t *testing.T) {
	f := newFixture(t, presenter.DefaultConfig())
	f.p.Dismiss(func() { panic("boom") })
	f.settle(t)

	if len(f.errs.panics) != 1 || f.errs.panics[0].Op != "presenter.Dismiss" {
		t.Fatalf("panics = %v, want one from presenter.Dismiss", f.errs.panics)
	}
	f.present(t, presenter.Bottom)
}

func TestSpringCurveSettlesExactly(t *testing.T) {
	cfg := presenter.DefaultConfig()
	cfg.Spring = &presenter.Spring{Damping: 0.4, Velocity: 0}
	f := newFixture(t, cfg)

	f.p.Present(f.panel, f.host, presenter.Bottom, nil)
	overshot := false
	for i := 0; i < 200 && !f.p.IsPresented(); i++ {
		f.h.Frame()
		if f.panel.Center().Y < restCenter.Y {
			overshot = true
		}
	}
	if !overshot {
		t.Error("expected an underdamped spring to overshoot the rest center")
	}
	if f.panel.Center() != restCenter {
		t.Errorf("center = %+v, want %+v", f.panel.Center(), restCenter)
	}
}

func TestAnimationDelay(t *testing.T) {
	cfg := presenter.DefaultConfig()
	cfg.AnimationDelay = 100 * time.Millisecond
	f := newFixture(t, cfg)
	anchor := presenter.OffscreenAnchor(presenter.Bottom, panelFrame, restCenter, hostSize)

	f.p.Present(f.panel, f.host, presenter.Bottom, nil)
	f.h.Drain()
	f.h.Pump(50 * time.Millisecond)
	if f.panel.Center() != anchor {
		t.Errorf("center during delay = %+v, want anchor %+v", f.panel.Center(), anchor)
	}
	f.settle(t)
	if f.panel.Center() != restCenter {
		t.Errorf("center = %+v, want %+v", f.panel.Center(), restCenter)
	}
}

func TestZeroDurationStillSettles(t *testing.T) {
	cfg := presenter.DefaultConfig()
	cfg.AnimationDuration = 0
	f := newFixture(t, cfg)
	f.present(t, presenter.Top)
	if f.panel.Center() != restCenter {
		t.Errorf("center = %+v, want %+v", f.panel.Center(), restCenter)
	}
}
