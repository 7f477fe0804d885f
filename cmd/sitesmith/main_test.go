package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *Main {
	t.Helper()
	dir := t.TempDir()
	return &Main{
		DBPath:       filepath.Join(dir, "test.db"),
		KnowledgeDir: filepath.Join(dir, "knowledge"),
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help hint", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help runs without error", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "research")
	})

	t.Run("unknown command fails to parse", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"bogus"}, &stdout, &stderr)
		require.Error(t, err)
	})

	t.Run("cached reports uncached sites", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"cached", "example.com"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://example.com: not cached")
	})

	t.Run("runs reports empty history", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"runs"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs recorded.")
	})

}

// Setenv is incompatible with parallel tests, so this one runs alone.
func TestMain_Run_ResearchRequiresAPIKey(t *testing.T) {
	m := newTestMain(t)
	var stdout, stderr bytes.Buffer

	t.Setenv("GEMINI_API_KEY", "")

	err := m.Run(context.Background(), []string{"research", "example.com"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "GEMINI_API_KEY")
}
