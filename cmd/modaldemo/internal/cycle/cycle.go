// Package cycle presents and dismisses a panel from each requested edge in
// real time, on a platform.Loop instead of a terminal program.
package cycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/modal/cmd/modaldemo/internal/tui"
	"github.com/go-drift/modal/pkg/animation"
	"github.com/go-drift/modal/pkg/graphics"
	"github.com/go-drift/modal/pkg/platform"
	"github.com/go-drift/modal/pkg/presenter"
)

// Step is the panel state observed when one request completed.
type Step struct {
	Edge      presenter.Edge
	Op        string
	Center    graphics.Offset
	Opacity   float64
	Attached  bool
	Presented bool
	Elapsed   time.Duration
}

// Options describes the scene and the edges to cycle through.
type Options struct {
	Config presenter.Config
	Edges  []presenter.Edge
	Host   graphics.Size
	Panel  graphics.Size
	// FrameInterval is passed to platform.NewLoop.
	FrameInterval time.Duration
	Logger        *slog.Logger
}

// Run presents and dismisses the panel once per edge and returns one Step
// per completed request. It stops early when ctx is done.
func Run(ctx context.Context, opts Options) ([]Step, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loop := platform.NewLoop(animation.NewScheduler(nil), opts.FrameInterval)
	p := presenter.NewWithLoop(opts.Config, loop, presenter.WithLogger(logger))

	host := tui.NewHost(opts.Host)
	panel := tui.NewPanel("modal", opts.Panel)
	panel.SetCenter(graphics.Offset{X: opts.Host.Width / 2, Y: opts.Host.Height / 2})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(ctx) })

	var steps []Step
	g.Go(func() error {
		defer loop.Close()
		defer p.Close()

		// wait starts a request and blocks until its completion has run on
		// the loop. The step is captured there, while nothing else moves.
		wait := func(edge presenter.Edge, op string, start func(done func())) error {
			began := time.Now()
			done := make(chan Step, 1)
			start(func() {
				done <- Step{
					Edge:      edge,
					Op:        op,
					Center:    panel.Center(),
					Opacity:   panel.Opacity(),
					Attached:  panel.Attached(),
					Presented: p.IsPresented(),
					Elapsed:   time.Since(began),
				}
			})
			select {
			case s := <-done:
				logger.Debug("request completed", "op", op, "edge", edge, "elapsed", s.Elapsed)
				steps = append(steps, s)
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		for _, edge := range opts.Edges {
			err := wait(edge, "present", func(done func()) { p.Present(panel, host, edge, done) })
			if err != nil {
				return err
			}
			if err := wait(edge, "dismiss", p.Dismiss); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return steps, fmt.Errorf("cycle: %w", err)
	}
	return steps, nil
}
