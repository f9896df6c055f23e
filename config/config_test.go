package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qtc-de/librofi/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops content into the per-user config location and
// points XDG_CONFIG_HOME at it.
func writeConfig(t *testing.T, content string) {
	t.Helper()

	base := t.TempDir()
	dir := filepath.Join(base, "librofi")

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	t.Setenv("XDG_CONFIG_HOME", base)
}

func TestResolveExecutable(t *testing.T) {
	t.Run("uses the configured path without consulting PATH", func(t *testing.T) {
		writeConfig(t, "[config]\nrofi = \"/bin/true\"\n")
		t.Setenv("PATH", t.TempDir())

		path, err := config.ResolveExecutable()

		require.NoError(t, err)
		assert.Equal(t, "/bin/true", path)
	})

	t.Run("environment override beats PATH", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("LIBROFI_CONFIG_ROFI", "/bin/echo")
		t.Setenv("PATH", t.TempDir())

		path, err := config.ResolveExecutable()

		require.NoError(t, err)
		assert.Equal(t, "/bin/echo", path)
	})

	t.Run("falls back to a PATH lookup", func(t *testing.T) {
		bin := t.TempDir()
		executable := filepath.Join(bin, config.ExecutableName)
		require.NoError(t, os.WriteFile(executable, []byte("#!/bin/sh\n"), 0o755))

		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("PATH", bin)

		path, err := config.ResolveExecutable()

		require.NoError(t, err)
		assert.Equal(t, executable, path)
	})

	t.Run("empty configured value falls through to PATH", func(t *testing.T) {
		bin := t.TempDir()
		executable := filepath.Join(bin, config.ExecutableName)
		require.NoError(t, os.WriteFile(executable, []byte("#!/bin/sh\n"), 0o755))

		writeConfig(t, "[config]\nrofi = \"\"\n")
		t.Setenv("PATH", bin)

		path, err := config.ResolveExecutable()

		require.NoError(t, err)
		assert.Equal(t, executable, path)
	})

	t.Run("fails on a malformed config file", func(t *testing.T) {
		writeConfig(t, "[config\nrofi = ???\n")

		_, err := config.ResolveExecutable()

		assert.ErrorContains(t, err, "could not parse config file")
	})

	t.Run("fails when nothing resolves", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("PATH", t.TempDir())

		_, err := config.ResolveExecutable()

		assert.ErrorIs(t, err, config.ErrNotFound)
	})
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := config.Dir()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/librofi", dir)
}
