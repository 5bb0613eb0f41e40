// Package filmstrip records a present and dismiss cycle on a simulated
// clock and draws the frames as a PNG contact sheet.
package filmstrip

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"

	"golang.org/x/image/draw"

	"github.com/go-drift/modal/pkg/graphics"
	"github.com/go-drift/modal/pkg/presenter"
	modaltest "github.com/go-drift/modal/pkg/testing"
)

// maxFrames bounds each phase so a misconfigured animation cannot hang.
const maxFrames = 2000

// Frame is the panel state after one animation frame.
type Frame struct {
	// Visible is false once the panel has been detached from the host.
	Visible bool
	Panel   graphics.Rect
	Opacity float64
}

// Options describes the recorded scene.
type Options struct {
	Config presenter.Config
	Edge   presenter.Edge
	Host   graphics.Size
	Panel  graphics.Rect
	Logger *slog.Logger
}

// Record presents the panel, waits for it to settle, dismisses it and
// returns the panel state at every frame of both transitions.
func Record(opts Options) ([]Frame, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := modaltest.NewHarness()
	p := presenter.New(opts.Config, h.Dispatcher(), h.Scheduler(), presenter.WithLogger(logger))
	defer func() {
		p.Close()
		h.Drain()
	}()

	host := modaltest.NewHostView(opts.Host)
	panel := modaltest.NewFakeView("panel", opts.Panel)

	var frames []Frame
	capture := func() {
		frames = append(frames, Frame{
			Visible: panel.Parent() != nil,
			Panel:   panel.Frame(),
			Opacity: panel.Opacity(),
		})
	}

	phases := []struct {
		name  string
		start func()
	}{
		{"present", func() { p.Present(panel, host, opts.Edge, nil) }},
		{"dismiss", func() { p.Dismiss(nil) }},
	}
	for _, phase := range phases {
		phase.start()
		h.Drain()
		capture()
		for i := 0; h.Scheduler().HasActiveTickers() || h.Queue().Len() > 0; i++ {
			if i >= maxFrames {
				return frames, fmt.Errorf("%s did not settle within %d frames", phase.name, maxFrames)
			}
			h.Frame()
			capture()
		}
		logger.Debug("filmstrip phase recorded", "phase", phase.name, "frames", len(frames))
	}
	return frames, nil
}

// Sample picks n frames spread evenly over frames, always keeping the
// first and last.
func Sample(frames []Frame, n int) []Frame {
	if n <= 0 || len(frames) <= n {
		return frames
	}
	if n == 1 {
		return frames[:1]
	}
	out := make([]Frame, n)
	for i := range out {
		idx := int(math.Round(float64(i) * float64(len(frames)-1) / float64(n-1)))
		out[i] = frames[idx]
	}
	return out
}

// SheetOptions controls the contact sheet layout.
type SheetOptions struct {
	Columns int
	// Scale is the thumbnail size relative to the host.
	Scale float64
	// Gap is the gutter between thumbnails in pixels.
	Gap int
}

var (
	gutterColor   = graphics.RGB(0x11, 0x11, 0x1b)
	backdropColor = graphics.RGB(0x1e, 0x1e, 0x2e)
	panelColor    = graphics.RGB(0xd0, 0x30, 0x30)
)

// Render draws each frame at host size and scales it into a grid cell.
func Render(frames []Frame, host graphics.Size, opts SheetOptions) *image.RGBA {
	cols := max(opts.Columns, 1)
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cellW := max(int(math.Ceil(host.Width*scale)), 1)
	cellH := max(int(math.Ceil(host.Height*scale)), 1)
	rows := max((len(frames)+cols-1)/cols, 1)
	gap := max(opts.Gap, 0)

	sheet := image.NewRGBA(image.Rect(0, 0, cols*(cellW+gap)+gap, rows*(cellH+gap)+gap))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(gutterColor), image.Point{}, draw.Src)

	full := image.NewRGBA(image.Rect(0, 0, max(int(host.Width), 1), max(int(host.Height), 1)))
	for i, f := range frames {
		drawFrame(full, f)
		x := gap + (i%cols)*(cellW+gap)
		y := gap + (i/cols)*(cellH+gap)
		draw.CatmullRom.Scale(sheet, image.Rect(x, y, x+cellW, y+cellH), full, full.Bounds(), draw.Src, nil)
	}
	return sheet
}

// drawFrame paints the host backdrop and the panel blended by its opacity.
func drawFrame(dst *image.RGBA, f Frame) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(backdropColor), image.Point{}, draw.Src)
	if !f.Visible {
		return
	}
	r := image.Rect(
		int(math.Round(f.Panel.Left)), int(math.Round(f.Panel.Top)),
		int(math.Round(f.Panel.Right)), int(math.Round(f.Panel.Bottom)),
	).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(panelColor.WithAlpha(f.Opacity)), image.Point{}, draw.Over)
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
