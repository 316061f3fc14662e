// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ptxhq/ptx/internal/cliutil"
	"github.com/ptxhq/ptx/internal/parser"
)

// newFormatsCmd builds the `formats` introspection command: spec.md
// §6's "list registered parser names".
func newFormatsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the registered log-format parsers",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := parser.BuiltinRegistry()
			names := make([]string, 0, len(registry.Parsers()))
			for _, p := range registry.Parsers() {
				names = append(names, p.FormatName())
			}
			return cliutil.New(resolveOutputFormat(output, nil), os.Stdout).WriteLines(names)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format: table|json|csv|yaml|pretty|chart")
	return cmd
}
