package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/modal/cmd/modaldemo/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive demo screen",
	Long: `Open a terminal screen with a panel that slides in from the chosen edge.

Keys l, r, t and b present the panel from the leading, trailing, top or
bottom edge, or dismiss it when it is up. With --gesture, drag the panel
with the mouse toward its edge to dismiss it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := resolve(cmd)
		if err != nil {
			return err
		}
		// The screen owns the terminal, so logs only go to --log.
		logger, closer, err := newLogger(io.Discard)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger.Info("starting demo", "config", res.Path, "module", res.ModulePath)

		model := tui.NewModel(tui.Options{
			Config: res.Presenter,
			Title:  res.Title,
			Logger: logger,
		})
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("bubble tea: %w", err)
		}
		return nil
	},
}

func init() {
	addPresenterFlags(runCmd.Flags())
	rootCmd.AddCommand(runCmd)
}
