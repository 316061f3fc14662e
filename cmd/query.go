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
	"github.com/ptxhq/ptx/internal/exec"
	"github.com/ptxhq/ptx/internal/logger"
	"github.com/ptxhq/ptx/internal/query"
	"github.com/ptxhq/ptx/internal/transform"
)

// newQueryCmd builds the `query` command: spec.md §6's
// "query <query-string> [files...]; reads from files or stdin when
// none given".
func newQueryCmd(cfg *config.Config) *cobra.Command {
	var (
		since, until string
		formatName   string
		output       string
		limit        uint64
		evalExpr     string
		sf           sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "query <query-string> [files...]",
		Short: "Filter, group, aggregate, sort and limit events with the query language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf.files = args[1:]
			log := logger.New("query")

			q, err := query.Parse(expandAlias(args[0], cfg.Aliases))
			if err != nil {
				return errors.Wrap(errors.KindQuerySyntax, "parse query", err)
			}
			if limit > 0 {
				q.Limit = &limit
			}

			events, err := gatherAndParse(cmd, sf, cfg, formatName)
			if err != nil {
				return err
			}
			cliutil.NewPrinter(os.Stderr).Verbose(verbose, "ingested %d event(s)", len(events))

			events, err = filterByTimeWindow(events, since, until)
			if err != nil {
				return err
			}

			if evalExpr != "" {
				tr, err := transform.ParseEval(evalExpr)
				if err != nil {
					return errors.Wrap(errors.KindTransformFault, "parse --eval expression", err)
				}
				chain := transform.NewChain(log.Slog(), tr)
				events = chain.Apply(events)
			}

			result := exec.Run(q, events)
			return writeResult(resolveOutputFormat(output, cfg), result, q, nil)
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "only include events at or after now-<dur>")
	cmd.Flags().StringVar(&until, "until", "", "only include events at or before now-<dur>")
	cmd.Flags().StringVar(&formatName, "format", "", "force a specific parser instead of detecting one")
	cmd.Flags().StringVar(&output, "output", "", "output format: table|json|csv|yaml|pretty|chart")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "maximum number of results (0 = query's own limit clause, if any)")
	cmd.Flags().StringVar(&evalExpr, "eval", "", `a transform expression: "field = <expr>" or "drop if <expr>"`)
	registerSourceFlags(cmd.Flags(), &sf)

	return cmd
}

// expandAlias substitutes queryStr's leading word against cfg's
// `aliases` map (PTX_CONFIG's `aliases.*` keys) before parsing, letting
// a saved shorthand like "errors" expand to a full query fragment such
// as "where level == \"error\"". Only the first word is looked up; the
// remainder of queryStr, if any, is appended unchanged.
func expandAlias(queryStr string, aliases map[string]string) string {
	if len(aliases) == 0 {
		return queryStr
	}
	head, rest, hasRest := strings.Cut(queryStr, " ")
	expansion, ok := aliases[head]
	if !ok {
		return queryStr
	}
	if hasRest {
		return expansion + " " + rest
	}
	return expansion
}
