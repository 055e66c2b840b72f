package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/noto-news/noto/cmd/noto"
)

func TestMainRun(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help runs clean", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		require.NoError(t, m.Run(context.Background(), []string{"--help"}, stdout, stderr))
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		require.Error(t, m.Run(context.Background(), []string{"bogus"}, stdout, stderr))
	})

	t.Run("compress end to end", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("Le PSG remporte le match 3-1 contre Marseille au Parc des Princes. ", 30)
		path := writeTempFile(t, content)

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		require.NoError(t, m.Run(context.Background(), []string{"compress", path, "-c", "sport", "-n", "300"}, stdout, stderr))

		assert.LessOrEqual(t, len(strings.TrimSpace(stdout.String())), 300)
		assert.Contains(t, stderr.String(), "chars ->")
	})

	t.Run("sources end to end", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		require.NoError(t, m.Run(context.Background(), []string{"sources"}, stdout, stderr))
		assert.Contains(t, stdout.String(), "lci.fr")
	})

	t.Run("health end to end", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		require.NoError(t, m.Run(context.Background(), []string{"health"}, stdout, stderr))

		assert.Contains(t, stdout.String(), "filter:    ok")
		assert.Contains(t, stdout.String(), "testScore:")
	})

	t.Run("stats end to end with fresh database", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "noto.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		require.NoError(t, m.Run(context.Background(), []string{"stats"}, stdout, stderr))

		assert.Contains(t, stderr.String(), "no extraction statistics")
		require.NoError(t, m.Close())
	})
}
