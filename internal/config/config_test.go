package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
dbname = "gym"
user = "gym"

[metrics]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "gym", cfg.Database.DBName)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Listing.DefaultPerPage)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "gym"
password = "from-file"
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "8181")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = ""
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv("HTTP_PORT", "abc")
	_, err = Load(writeConfig(t, "[database]\ndbname = \"gym\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
