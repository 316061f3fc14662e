// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cliutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes colorized status lines to a writer, honoring NO_COLOR
// the same way internal/logger's ConsoleHandler does. Grounded on the
// teacher's OutputFormatter.Print{Success,Error,Warning,Info,Verbose}.
type Printer struct {
	w io.Writer
}

// NewPrinter builds a Printer writing to w.
func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// Success prints a green-checked success line.
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// Error prints a red-crossed error line.
func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s %s\n", color.RedString("✗"), fmt.Sprintf(format, args...))
}

// Warning prints a yellow warning line.
func (p *Printer) Warning(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s %s\n", color.YellowString("!"), fmt.Sprintf(format, args...))
}

// Info prints a plain informational line.
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s\n", fmt.Sprintf(format, args...))
}

// Verbose prints only when verbose is true.
func (p *Printer) Verbose(verbose bool, format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(p.w, "%s %s\n", color.CyanString("·"), fmt.Sprintf(format, args...))
	}
}
