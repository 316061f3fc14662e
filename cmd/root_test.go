//nolint:testpackage // White-box testing needed for internal function access
package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHelp(t *testing.T) {
	cmd := newRootCmd(context.Background(), "")
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"-h"})

	require.NoError(t, cmd.Execute())
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCmd(context.Background(), "")

	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"version", "query", "find", "extract", "formats", "sources"} {
		assert.True(t, names[want], "expected %q subcommand to be registered", want)
	}
}
