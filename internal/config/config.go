// Package config loads filez settings from a YAML file, FILEZ_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration options for filez.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	UI    UIConfig    `mapstructure:"ui"`
	FS    FSConfig    `mapstructure:"fs"`
	Trace TraceConfig `mapstructure:"trace"`
}

// LogConfig controls the log panel and the optional log file.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Buffer int    `mapstructure:"buffer"` // records queued before new ones are dropped
}

// UIConfig holds user interface options.
type UIConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	WaitTimeout   time.Duration `mapstructure:"wait_timeout"` // pending key sequence timeout
	ShowHidden    bool          `mapstructure:"show_hidden"`
	SortBy        string        `mapstructure:"sort_by"` // name, size, modified or type
	SortReverse   bool          `mapstructure:"sort_reverse"`
	WrapLogs      bool          `mapstructure:"wrap_logs"`
	Scrollback    int           `mapstructure:"scrollback"`
	Editor        string        `mapstructure:"editor"` // overrides $VISUAL and $EDITOR
}

// FSConfig controls listing cache and directory watching.
type FSConfig struct {
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"` // zero disables the cache
}

// TraceConfig configures span export.
type TraceConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Exporter   string  `mapstructure:"exporter"`
	File       string  `mapstructure:"file"`
	SampleRate float64 `mapstructure:"sample_rate"`
}

var sortKeys = map[string]bool{"name": true, "size": true, "modified": true, "type": true}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.buffer", 1024)
	v.SetDefault("ui.frame_interval", 15*time.Millisecond)
	v.SetDefault("ui.wait_timeout", 5*time.Second)
	v.SetDefault("ui.show_hidden", false)
	v.SetDefault("ui.sort_by", "name")
	v.SetDefault("ui.sort_reverse", false)
	v.SetDefault("ui.wrap_logs", true)
	v.SetDefault("ui.scrollback", 5000)
	v.SetDefault("ui.editor", "")
	v.SetDefault("fs.watch", true)
	v.SetDefault("fs.debounce", 200*time.Millisecond)
	v.SetDefault("fs.cache_ttl", 2*time.Second)
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.exporter", "file")
	v.SetDefault("trace.file", "")
	v.SetDefault("trace.sample_rate", 1.0)
}

// Defaults returns the configuration used when nothing is configured.
func Defaults() Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Load reads configuration into v and decodes it. An explicit path must
// exist; without one the user config directory is searched and a missing
// file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "filez"))
		}
	}

	v.SetEnvPrefix("FILEZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option values.
func (c Config) Validate() error {
	if !sortKeys[c.UI.SortBy] {
		return fmt.Errorf("ui.sort_by: unknown sort key %q", c.UI.SortBy)
	}
	if c.UI.FrameInterval <= 0 {
		return fmt.Errorf("ui.frame_interval must be positive")
	}
	if c.UI.WaitTimeout <= 0 {
		return fmt.Errorf("ui.wait_timeout must be positive")
	}
	if c.Log.Buffer <= 0 {
		return fmt.Errorf("log.buffer must be positive")
	}
	if c.FS.CacheTTL < 0 {
		return fmt.Errorf("fs.cache_ttl must not be negative")
	}
	if c.Trace.Enabled && c.Trace.Exporter == "file" && c.Trace.File == "" {
		return fmt.Errorf("trace.file required for file exporter")
	}
	return nil
}
