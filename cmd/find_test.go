//nolint:testpackage // White-box testing needed for internal function access
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptxhq/ptx/internal/config"
)

func TestFindCommandMatchesCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.log")
	require.NoError(t, os.WriteFile(path, []byte("{\"msg\":\"Connection RESET by peer\"}\n{\"msg\":\"all good\"}\n"), 0o644))

	cmd := newFindCmd(config.Default())
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"reset", path})

	require.NoError(t, cmd.Execute())
}

func TestFindCommandRejectsBadPattern(t *testing.T) {
	cmd := newFindCmd(config.Default())
	cmd.SetArgs([]string{"(unclosed", "nonexistent.log"})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestHighlightMatchesWrapsHitsInColor(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = orig }()

	re := regexp.MustCompile("(?i)reset")
	out := highlightMatches("connection RESET by peer", re)
	assert.NotEqual(t, "connection RESET by peer", out)
	assert.Contains(t, out, "RESET")
}
