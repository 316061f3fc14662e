// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ptxhq/ptx/internal/cliutil"
)

// sourceCollaboratorKeys lists the source collaborator keys this module
// wires, per spec.md §6's "list ... source collaborator keys": the
// trivial local ones plus the one remote shell implemented in depth,
// and the three named-but-stubbed remote providers (see
// internal/source.ErrUnimplementedProvider).
var sourceCollaboratorKeys = []string{"file", "stdin", "kubernetes", "aws", "gcp", "azure"}

// newSourcesCmd builds the `sources` introspection command.
func newSourcesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the known source collaborator keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.New(resolveOutputFormat(output, nil), os.Stdout).WriteLines(sourceCollaboratorKeys)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format: table|json|csv|yaml|pretty|chart")
	return cmd
}
