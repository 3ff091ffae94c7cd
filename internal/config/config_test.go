package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 1024, cfg.Log.Buffer)
	require.Equal(t, 15*time.Millisecond, cfg.UI.FrameInterval)
	require.Equal(t, 5*time.Second, cfg.UI.WaitTimeout)
	require.Equal(t, "name", cfg.UI.SortBy)
	require.True(t, cfg.UI.WrapLogs)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
log:
  level: debug
ui:
  show_hidden: true
  sort_by: size
  frame_interval: 30ms
fs:
  cache_ttl: 0s
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.UI.ShowHidden)
	require.Equal(t, "size", cfg.UI.SortBy)
	require.Equal(t, 30*time.Millisecond, cfg.UI.FrameInterval)
	require.Zero(t, cfg.FS.CacheTTL)
	require.Equal(t, 5*time.Second, cfg.UI.WaitTimeout)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FILEZ_UI_SORT_BY", "modified")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "modified", cfg.UI.SortBy)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"sort key", func(c *Config) { c.UI.SortBy = "color" }},
		{"frame interval", func(c *Config) { c.UI.FrameInterval = 0 }},
		{"wait timeout", func(c *Config) { c.UI.WaitTimeout = -time.Second }},
		{"log buffer", func(c *Config) { c.Log.Buffer = 0 }},
		{"trace file", func(c *Config) { c.Trace.Enabled = true; c.Trace.File = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
