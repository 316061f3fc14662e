// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ptxhq/ptx/internal/config"
	"github.com/ptxhq/ptx/internal/env"
	"github.com/ptxhq/ptx/internal/logger"
)

var (
	verbose bool
	debug   bool
	quiet   bool
)

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ptx",
		Short: "A log-querying engine: detect, parse and query heterogeneous log lines",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetGlobalLoggingFlags(verbose, debug, quiet)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfg, err := config.Load(env.NewOSEnvironment())
	if err != nil {
		cfg = config.Default()
	}

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(newQueryCmd(cfg))
	cmd.AddCommand(newFindCmd(cfg))
	cmd.AddCommand(newExtractCmd(cfg))
	cmd.AddCommand(newFormatsCmd())
	cmd.AddCommand(newSourcesCmd())

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging (shows all log levels)")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all logs except critical errors")

	return cmd
}

// Execute builds and runs the root command against ctx.
func Execute(ctx context.Context, version string) error {
	rootCmd := newRootCmd(ctx, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("error executing root command: %w", err)
	}
	return nil
}
