//nolint:testpackage // White-box testing needed for internal function access
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptxhq/ptx/internal/config"
	"github.com/ptxhq/ptx/internal/parser"
	"github.com/ptxhq/ptx/internal/source"
)

func TestResolveSourcesFallsBackToStdin(t *testing.T) {
	stdin := source.StdinSource{Tag: "stdin"}
	srcs := resolveSources(sourceFlags{}, config.Default(), stdin)
	require.Len(t, srcs, 1)
	assert.Equal(t, "stdin", srcs[0].Label())
}

func TestResolveSourcesBuildsFileSources(t *testing.T) {
	srcs := resolveSources(sourceFlags{files: []string{"a.log", "b.log"}}, config.Default(), source.StdinSource{})
	require.Len(t, srcs, 2)
	assert.Equal(t, "a.log", srcs[0].Label())
	assert.Equal(t, "b.log", srcs[1].Label())
}

func TestResolveSourcesSelectsKubernetesOnPodFlag(t *testing.T) {
	cfg := config.Default()
	cfg.Kubernetes.Namespace = "prod"
	srcs := resolveSources(sourceFlags{pod: "api-0"}, cfg, source.StdinSource{})
	require.Len(t, srcs, 1)
	assert.Equal(t, "k8s:prod/api-0", srcs[0].Label())
}

func TestIngestEventsPreservesPerFileAndArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.log")
	fileB := filepath.Join(dir, "b.log")
	require.NoError(t, os.WriteFile(fileA, []byte("{\"msg\":\"a1\"}\n{\"msg\":\"a2\"}\n"), 0o644))
	require.NoError(t, os.WriteFile(fileB, []byte("{\"msg\":\"b1\"}\n"), 0o644))

	srcs := []source.Source{source.FileSource{Path: fileA}, source.FileSource{Path: fileB}}
	events, err := ingestEvents(context.Background(), srcs, "json", parser.BuiltinRegistry())
	require.NoError(t, err)
	require.Len(t, events, 3)

	msg := func(i int) string {
		v, _ := events[i].Get("msg")
		s, _ := v.AsString()
		return s
	}
	assert.Equal(t, "a1", msg(0))
	assert.Equal(t, "a2", msg(1))
	assert.Equal(t, "b1", msg(2))
}

func TestIngestEventsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.log")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))

	_, err := ingestEvents(context.Background(), []source.Source{source.FileSource{Path: path}}, "nope", parser.BuiltinRegistry())
	require.Error(t, err)
}

func TestIngestEventsMissingFile(t *testing.T) {
	_, err := ingestEvents(context.Background(), []source.Source{source.FileSource{Path: "/no/such/file"}}, "", parser.BuiltinRegistry())
	require.Error(t, err)
}
