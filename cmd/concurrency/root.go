// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	root := &cobra.Command{
		Use:           "concurrency",
		Short:         "Parallel matrix product and concurrency demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogging(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(
		newMatrixCmd(a),
		newMetricsCmd(a),
		newEchoCmd(a),
		newChannelCmd(a),
	)

	return root
}

// setupLogging installs a text handler on w at the configured level.
func (a *app) setupLogging(w io.Writer) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level %q: %w", a.logLevel, err)
	}
	a.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))

	return nil
}
