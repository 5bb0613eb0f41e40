// Package cmd implements the modaldemo CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/modal/cmd/modaldemo/internal/config"
	"github.com/go-drift/modal/pkg/errors"
)

// Version information set at build time.
var Version = "0.1.0-dev"

var (
	configPath string
	logPath    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "modaldemo",
	Short: "Slide-in modal presenter demo",
	Long: `modaldemo drives the modal presenter from a terminal.

Settings are read from modal.yaml in the enclosing Go module, or from the
file named by --config, and can be overridden per flag.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "presenter config file (default: modal.yaml in the module root)")
	flags.StringVar(&logPath, "log", "", "write logs to this file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log presenter debug output")
}

// resolve loads the configuration for cmd and applies its flag overrides.
func resolve(cmd *cobra.Command) (*config.Resolved, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}
	res, err := config.Resolve(dir, configPath)
	if err != nil {
		return nil, err
	}
	if err := applyPresenterFlags(cmd.Flags(), &res.Presenter); err != nil {
		return nil, errors.New("modaldemo.flags", errors.KindConfig, err)
	}
	if err := res.Presenter.Validate(); err != nil {
		return nil, errors.New("modaldemo.flags", errors.KindConfig, err)
	}
	return res, nil
}

// newLogger returns a logger writing to --log, or to fallback when unset.
// The returned closer must be called when done.
func newLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}
