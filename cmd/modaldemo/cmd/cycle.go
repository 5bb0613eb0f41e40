package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/modal/cmd/modaldemo/internal/cycle"
	"github.com/go-drift/modal/pkg/graphics"
	"github.com/go-drift/modal/pkg/presenter"
)

var cycleOpts struct {
	edges  []string
	width  float64
	height float64
}

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Present and dismiss from each edge in real time, without a screen",
	Long: `Run the presenter on its own frame loop with the system clock, present
and dismiss the panel once per edge, and print where each request left it.

Usage:
  modaldemo cycle
  modaldemo cycle --edges top,bottom --opacity`,
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

		edges := make([]presenter.Edge, 0, len(cycleOpts.edges))
		for _, s := range cycleOpts.edges {
			edge, err := presenter.ParseEdge(s)
			if err != nil {
				return err
			}
			edges = append(edges, edge)
		}

		host := graphics.Size{Width: cycleOpts.width, Height: cycleOpts.height}
		steps, err := cycle.Run(cmd.Context(), cycle.Options{
			Config: res.Presenter,
			Edges:  edges,
			Host:   host,
			Panel:  graphics.Size{Width: host.Width * 0.7, Height: host.Height * 0.35},
			Logger: logger,
		})
		out := cmd.OutOrStdout()
		for _, s := range steps {
			fmt.Fprintf(out, "%-8s %-8s center=(%.0f, %.0f) opacity=%.2f attached=%t %s\n",
				s.Op, s.Edge, s.Center.X, s.Center.Y, s.Opacity, s.Attached, s.Elapsed.Round(time.Millisecond))
		}
		return err
	},
}

func init() {
	flags := cycleCmd.Flags()
	flags.StringSliceVar(&cycleOpts.edges, "edges", []string{"leading", "trailing", "top", "bottom"}, "edges to cycle through, in order")
	flags.Float64Var(&cycleOpts.width, "width", 390, "host width")
	flags.Float64Var(&cycleOpts.height, "height", 844, "host height")
	addPresenterFlags(flags)
	rootCmd.AddCommand(cycleCmd)
}
