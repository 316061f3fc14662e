// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ptxhq/ptx/internal/cliutil"
	"github.com/ptxhq/ptx/internal/config"
	"github.com/ptxhq/ptx/internal/errors"
	"github.com/ptxhq/ptx/internal/event"
)

var findHighlight = color.New(color.FgRed, color.Bold)

// newFindCmd builds the `find` command: spec.md §6's
// "find <pattern> [files...]" — a case-insensitive regex scan over each
// event's raw line and its field renderings.
func newFindCmd(cfg *config.Config) *cobra.Command {
	var (
		formatName string
		limit      uint64
		sf         sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "find <pattern> [files...]",
		Short: "Scan events for a regex match against raw text or any field",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf.files = args[1:]

			re, err := regexp.Compile("(?i)" + args[0])
			if err != nil {
				return errors.Wrap(errors.KindQuerySyntax, "compile find pattern", err)
			}

			events, err := gatherAndParse(cmd, sf, cfg, formatName)
			if err != nil {
				return err
			}

			var matches []string
			for _, ev := range events {
				if eventMatches(ev, re) {
					matches = append(matches, highlightMatches(renderMatch(ev), re))
					if limit > 0 && uint64(len(matches)) >= limit {
						break
					}
				}
			}

			if len(matches) == 0 {
				cliutil.NewPrinter(os.Stderr).Warning("no matches for %q across %d event(s)", args[0], len(events))
				return nil
			}
			for _, line := range matches {
				fmt.Fprintln(os.Stdout, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", "force a specific parser instead of detecting one")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "maximum number of matches to print (0 = unbounded)")
	registerSourceFlags(cmd.Flags(), &sf)

	return cmd
}

// eventMatches reports whether re matches ev's raw line or the rendered
// string of any field, per spec.md §6's "raw + field renderings" scan.
func eventMatches(ev event.Event, re *regexp.Regexp) bool {
	if ev.Raw != "" && re.MatchString(ev.Raw) {
		return true
	}
	for _, v := range ev.Fields {
		if re.MatchString(v.Render()) {
			return true
		}
	}
	return false
}

// renderMatch formats a matched event for printing: the raw line when
// present, else "source: field=value ..." built from its fields.
func renderMatch(ev event.Event) string {
	if ev.Raw != "" {
		return ev.Raw
	}
	line := ev.Source
	for name, v := range ev.Fields {
		line += fmt.Sprintf(" %s=%s", name, v.Render())
	}
	return line
}

// highlightMatches wraps every re match within line in bold red, via
// fatih/color — the same Sprint-a-colorized-substring idiom the teacher
// uses for status text. A no-op (honoring NO_COLOR/non-tty) when color
// output is disabled, since color.Sprint degrades to a plain string.
func highlightMatches(line string, re *regexp.Regexp) string {
	return re.ReplaceAllStringFunc(line, func(m string) string {
		return findHighlight.Sprint(m)
	})
}
