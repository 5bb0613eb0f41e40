package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/modal/cmd/modaldemo/internal/filmstrip"
	"github.com/go-drift/modal/pkg/graphics"
	"github.com/go-drift/modal/pkg/presenter"
)

var filmstripOpts struct {
	edge    edgeValue
	out     string
	frames  int
	columns int
	scale   float64
	width   float64
	height  float64
}

var filmstripCmd = &cobra.Command{
	Use:   "filmstrip",
	Short: "Render a present and dismiss cycle to a PNG contact sheet",
	Long: `Run one present and dismiss cycle on a simulated clock and draw
evenly spaced frames of it side by side into a PNG.

Usage:
  modaldemo filmstrip --edge top --out top.png
  modaldemo filmstrip --edge leading --opacity --spring 0.5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := resolve(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}
		defer closer.Close()

		o := filmstripOpts
		host := graphics.Size{Width: o.width, Height: o.height}
		panel := graphics.RectFromCenter(
			graphics.Offset{X: o.width / 2, Y: o.height / 2},
			graphics.Size{Width: o.width * 0.7, Height: o.height * 0.35},
		)
		frames, err := filmstrip.Record(filmstrip.Options{
			Config: res.Presenter,
			Edge:   presenter.Edge(o.edge),
			Host:   host,
			Panel:  panel,
			Logger: logger,
		})
		if err != nil {
			return err
		}

		sampled := filmstrip.Sample(frames, o.frames)
		img := filmstrip.Render(sampled, host, filmstrip.SheetOptions{
			Columns: o.columns,
			Scale:   o.scale,
			Gap:     4,
		})

		f, err := os.Create(o.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", o.out, err)
		}
		if err := filmstrip.WritePNG(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("wrote filmstrip", "path", o.out, "recorded", len(frames), "drawn", len(sampled))
		return nil
	},
}

func init() {
	flags := filmstripCmd.Flags()
	flags.Var(&filmstripOpts.edge, "edge", "edge to present from (leading, trailing, top, bottom)")
	flags.StringVarP(&filmstripOpts.out, "out", "o", "filmstrip.png", "output PNG path")
	flags.IntVar(&filmstripOpts.frames, "frames", 12, "number of frames to draw")
	flags.IntVar(&filmstripOpts.columns, "columns", 6, "thumbnails per row")
	flags.Float64Var(&filmstripOpts.scale, "scale", 0.25, "thumbnail scale relative to the host")
	flags.Float64Var(&filmstripOpts.width, "width", 390, "host width in pixels")
	flags.Float64Var(&filmstripOpts.height, "height", 844, "host height in pixels")
	addPresenterFlags(flags)
	rootCmd.AddCommand(filmstripCmd)
}
