// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Lines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644))

	s := FileSource{Path: path}
	assert.Equal(t, path, s.Label())

	lines, err := s.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestFileSource_MissingFileErrors(t *testing.T) {
	s := FileSource{Path: "/nonexistent/path/app.log"}
	_, err := s.Lines(context.Background())
	assert.Error(t, err)
}

func TestStdinSource_Lines(t *testing.T) {
	s := StdinSource{Reader: strings.NewReader("a\nb\n")}
	assert.Equal(t, "stdin", s.Label())

	lines, err := s.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestStdinSource_CustomTag(t *testing.T) {
	s := StdinSource{Reader: strings.NewReader(""), Tag: "pipe"}
	assert.Equal(t, "pipe", s.Label())
}

func TestRemoteStubs_ReturnUnimplemented(t *testing.T) {
	for _, s := range []Source{
		AWSSource{LogGroup: "g", LogStream: "s"},
		GCPSource{Project: "p", LogName: "l"},
		AzureSource{Workspace: "w", Table: "t"},
	} {
		_, err := s.Lines(context.Background())
		assert.ErrorIs(t, err, ErrUnimplementedProvider)
		assert.NotEmpty(t, s.Label())
	}
}
