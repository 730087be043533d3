package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnvExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.env")
	require.NoError(t, os.WriteFile(path, []byte("DCLAB_SERVER_ADDR=:9191\n"), 0o600))

	t.Setenv(envFileVar, path)
	t.Setenv("DCLAB_SERVER_ADDR", "")
	os.Unsetenv("DCLAB_SERVER_ADDR")

	require.NoError(t, loadDotEnv())
	assert.Equal(t, ":9191", os.Getenv("DCLAB_SERVER_ADDR"))
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.env")
	require.NoError(t, os.WriteFile(path, []byte("DCLAB_LOG_LEVEL=debug\n"), 0o600))

	t.Setenv(envFileVar, path)
	t.Setenv("DCLAB_LOG_LEVEL", "warn")

	require.NoError(t, loadDotEnv())
	assert.Equal(t, "warn", os.Getenv("DCLAB_LOG_LEVEL"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv(envFileVar, "")
	assert.NoError(t, loadDotEnv(), "missing default .env is ignored")

	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, loadDotEnv())
}
