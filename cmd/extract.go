// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ptxhq/ptx/internal/cliutil"
	"github.com/ptxhq/ptx/internal/config"
	"github.com/ptxhq/ptx/internal/errors"
)

// newExtractCmd builds the `extract` command: spec.md §6's
// "extract --fields a,b,c [files...]" field-projection shorthand, a
// detect/parse-only path with no query-language involvement.
func newExtractCmd(cfg *config.Config) *cobra.Command {
	var (
		fieldsCSV  string
		formatName string
		output     string
		limit      uint64
		sf         sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Project a fixed set of fields out of every event",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf.files = args

			fields := splitFields(fieldsCSV)
			if len(fields) == 0 {
				return errors.New(errors.KindMissingArgument, "extract requires --fields")
			}

			events, err := gatherAndParse(cmd, sf, cfg, formatName)
			if err != nil {
				return err
			}
			if limit > 0 && uint64(len(events)) > limit {
				events = events[:limit]
			}

			out := cliutil.New(resolveOutputFormat(output, cfg), os.Stdout)
			return out.WriteEvents(events, fields)
		},
	}

	cmd.Flags().StringVar(&fieldsCSV, "fields", "", "comma-separated field names to project")
	cmd.Flags().StringVar(&formatName, "format", "", "force a specific parser instead of detecting one")
	cmd.Flags().StringVar(&output, "output", "", "output format: table|json|csv|yaml|pretty|chart")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "maximum number of events to print (0 = unbounded)")
	registerSourceFlags(cmd.Flags(), &sf)

	return cmd
}

func splitFields(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
