package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "helmarr.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "/var/lib/helmarr/helmarr.db"

[log]
level = "debug"

[instances]
default_timeout_seconds = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/helmarr/helmarr.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Instances.DefaultTimeoutSeconds)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 60, cfg.Instances.DefaultTimeoutSeconds)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, "[database\npath = ")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvVarSubstitution(t *testing.T) {
	t.Setenv("HELMARR_TEST_DB", "/tmp/test.db")

	path := writeConfig(t, `
[database]
path = "${HELMARR_TEST_DB}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
}

func TestEnvVarSubstitutionUnsetKept(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "info"

[database]
path = "${HELMARR_DEFINITELY_UNSET_VAR}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "${HELMARR_DEFINITELY_UNSET_VAR}", cfg.Database.Path)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotEmpty(t, cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 60, cfg.Instances.DefaultTimeoutSeconds)
	assert.Empty(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing db path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad timeout", func(c *Config) { c.Instances.DefaultTimeoutSeconds = 45 }, "default_timeout_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if tt.wantErr == "" {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0], tt.wantErr)
		})
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Path: "/etc/helmarr/config.toml", Errors: []string{"database.path: required"}}
	assert.True(t, err.HasErrors())
	assert.Contains(t, err.Error(), "database.path: required")

	empty := &ConfigError{}
	assert.False(t, empty.HasErrors())
	assert.Empty(t, empty.Error())
}

func TestDiscoverEnvVar(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"info\"\n")
	t.Setenv("HELMARR_CONFIG", path)

	found, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestDiscoverEnvVarMissingFile(t *testing.T) {
	t.Setenv("HELMARR_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Discover()
	assert.Error(t, err)
}
