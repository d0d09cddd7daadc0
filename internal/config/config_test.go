package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err, "a missing config file should yield defaults")
	require.Equal(t, Default(), cfg)
}

func TestLoadFile_Values(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
log_level = "debug"

[sort]
reverse = true

[run]
timeout = "30s"

[bench]
runs = 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.Sort.Reverse)
	require.Equal(t, 25, cfg.Bench.Runs)

	timeout, err := cfg.RunTimeout()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, timeout)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sort]\nreverse = true\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 10, cfg.Bench.Runs)
	require.True(t, cfg.Sort.Reverse)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "debug"`), 0o644))

	t.Setenv("TOOLBELT_LOG_LEVEL", "trace")
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "trace", cfg.LogLevel)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = [broken"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"zero bench runs", func(c *Config) { c.Bench.Runs = 0 }, true},
		{"bad timeout", func(c *Config) { c.Run.Timeout = "soon" }, true},
		{"negative timeout", func(c *Config) { c.Run.Timeout = "-5s" }, true},
		{"valid timeout", func(c *Config) { c.Run.Timeout = "2m" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
