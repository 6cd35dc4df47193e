// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/concurrency/echo"
	"github.com/spf13/cobra"
)

func newEchoCmd(a *app) *cobra.Command {
	var (
		addr   string
		buffer int
	)
	cmd := &cobra.Command{
		Use:   "echo",
		Short: "Serve the TCP echo handler until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if buffer <= 0 {
				return fmt.Errorf("--buffer must be > 0, got %d", buffer)
			}
			srv := echo.NewServer(echo.WithBufferSize(buffer), echo.WithLogger(a.log))
			a.log.Info("echo listening", "addr", addr)

			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", echo.DefaultAddr, "listen address")
	cmd.Flags().IntVar(&buffer, "buffer", echo.DefaultBufferSize, "read buffer size in bytes")

	return cmd
}
