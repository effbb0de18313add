package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/logpanel/cli/internal/errors"
)

func TestConfigPath_DefaultMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOGPANEL_CONFIG", "")
	t.Setenv("LOGPANEL_MAX_ITEMS", "")

	out, err := executeRootWithEnv(t, true, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "No default config file found.")
}

func TestConfigPath_FlagMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := executeRoot(t, true, "--config", missing, "config", "path")
	require.Error(t, err)

	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), missing)
}

func TestConfigPath_Existing(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("output:\n  maxItems: 5\n"), 0o644))

	out, err := executeRoot(t, true, "--config", configFile, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, configFile, strings.TrimSpace(out))
}

func TestConfigInit(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := executeRoot(t, true, "--config", configFile, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file created")

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "panels:")
	assert.Contains(t, string(data), "maxItems: 0")

	_, err = executeRoot(t, true, "--config", configFile, "config", "init")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	_, err = executeRoot(t, true, "--config", configFile, "config", "init", "--force")
	require.NoError(t, err)
}
