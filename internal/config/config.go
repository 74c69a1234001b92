// Package config manages application configuration from various sources.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/viper"
)

// TUIConfig defines how the side-by-side view is laid out and scrolled.
type TUIConfig struct {
	Theme        string `json:"theme,omitempty"`
	ScrollStep   int    `json:"scrollStep,omitempty"`
	HScrollStep  int    `json:"hscrollStep,omitempty"`
	TabMarker    string `json:"tabMarker,omitempty"`
	MinWidth     int    `json:"minWidth,omitempty"`
	MinHeight    int    `json:"minHeight,omitempty"`
	ListMaxWidth int    `json:"listMaxWidth,omitempty"`
	PaneMaxWidth int    `json:"paneMaxWidth,omitempty"`
}

// LogConfig defines where log records go.
type LogConfig struct {
	File  string `json:"file,omitempty"`
	Level string `json:"level,omitempty"`
}

// Config is the main configuration structure for the application.
type Config struct {
	WorkingDir string    `json:"wd,omitempty"`
	Debug      bool      `json:"debug,omitempty"`
	TUI        TUIConfig `json:"tui"`
	Log        LogConfig `json:"log"`
}

// Application constants
const (
	appName         = "nadiff"
	defaultLogLevel = "info"
	debugLogFile    = "nadiff.log"

	DefaultScrollStep   = 5
	DefaultHScrollStep  = 1
	DefaultTabMarker    = "→"
	DefaultMinWidth     = 101
	DefaultMinHeight    = 21
	DefaultListMaxWidth = 40
	DefaultPaneMaxWidth = 200
	DefaultTheme        = "default"
)

// Load reads the global config file, merges a local one from workingDir and
// applies NADIFF_* environment overrides. An explicit configFile replaces
// the global search and must exist. If debug is true, debug logging is
// forced on.
func Load(workingDir, configFile string, debug bool) (*Config, error) {
	v := viper.New()
	configureViper(v, configFile)
	setDefaults(v, debug)

	if err := readConfig(v.ReadInConfig(), configFile != ""); err != nil {
		return nil, err
	}
	mergeLocalConfig(v, workingDir)

	cfg := &Config{WorkingDir: workingDir}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Debug && cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(os.TempDir(), debugLogFile)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// configureViper sets up viper's configuration paths and environment variables.
func configureViper(v *viper.Viper, configFile string) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(fmt.Sprintf(".%s", appName))
		v.AddConfigPath("$HOME")
		v.AddConfigPath(fmt.Sprintf("$XDG_CONFIG_HOME/%s", appName))
		v.AddConfigPath(fmt.Sprintf("$HOME/.config/%s", appName))
	}
	v.SetConfigType("json")
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// setDefaults configures default values for configuration options.
func setDefaults(v *viper.Viper, debug bool) {
	v.SetDefault("tui.theme", DefaultTheme)
	v.SetDefault("tui.scrollStep", DefaultScrollStep)
	v.SetDefault("tui.hscrollStep", DefaultHScrollStep)
	v.SetDefault("tui.tabMarker", DefaultTabMarker)
	v.SetDefault("tui.minWidth", DefaultMinWidth)
	v.SetDefault("tui.minHeight", DefaultMinHeight)
	v.SetDefault("tui.listMaxWidth", DefaultListMaxWidth)
	v.SetDefault("tui.paneMaxWidth", DefaultPaneMaxWidth)
	v.SetDefault("log.file", "")

	if debug {
		v.SetDefault("debug", true)
		v.Set("debug", true)
		v.Set("log.level", "debug")
	} else {
		v.SetDefault("debug", false)
		v.SetDefault("log.level", defaultLogLevel)
	}
}

// readConfig handles the result of reading a configuration file.
func readConfig(err error, explicit bool) error {
	if err == nil {
		return nil
	}

	// It's okay if no config file was found by searching
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && !explicit {
		return nil
	}

	return fmt.Errorf("failed to read config: %w", err)
}

// mergeLocalConfig loads and merges configuration from the local directory.
func mergeLocalConfig(v *viper.Viper, workingDir string) {
	if workingDir == "" {
		return
	}
	local := viper.New()
	local.SetConfigName(fmt.Sprintf(".%s", appName))
	local.SetConfigType("json")
	local.AddConfigPath(workingDir)

	if err := local.ReadInConfig(); err == nil {
		if err := v.MergeConfigMap(local.AllSettings()); err != nil {
			slog.Warn("ignoring local config", "path", local.ConfigFileUsed(), "error", err)
		}
	}
}

// Validate checks that sizes and steps are usable.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config not loaded")
	}

	t := cfg.TUI
	for name, value := range map[string]int{
		"tui.scrollStep":   t.ScrollStep,
		"tui.hscrollStep":  t.HScrollStep,
		"tui.minWidth":     t.MinWidth,
		"tui.minHeight":    t.MinHeight,
		"tui.listMaxWidth": t.ListMaxWidth,
		"tui.paneMaxWidth": t.PaneMaxWidth,
	} {
		if value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, value)
		}
	}
	if w := runewidth.StringWidth(t.TabMarker); w != 1 {
		return fmt.Errorf("tui.tabMarker must be one cell wide, %q is %d", t.TabMarker, w)
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Log.Level)
	}
	return nil
}
