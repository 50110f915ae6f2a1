package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"simple_dao/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaults checks a missing config file leaves the built-in defaults intact.
func TestDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ".simpledao", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint64(2), cfg.MinimumQuorum)
}

// TestYamlOverlay checks yaml values overlay the defaults without clearing the rest.
func TestYamlOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simpledao.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataDir: /tmp/dao\nminimumQuorum: 5\n"), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dao", cfg.DataDir)
	assert.Equal(t, uint64(5), cfg.MinimumQuorum)
	assert.Equal(t, "info", cfg.LogLevel)
}

// TestEnvOverridesYaml checks environment variables win over file values.
func TestEnvOverridesYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simpledao.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: warn\n"), 0o644))
	t.Setenv("SIMPLEDAO_LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
