// Package config provides configuration management for fsh.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/xvierd/fsh/internal/domain"
)

// Path styles for the directory segment.
const (
	PathStyleDOS  = "dos"
	PathStyleFull = "full"
	PathStyleHome = "home"
)

// Repository error policies.
const (
	OnErrorDegrade = "degrade"
	OnErrorFail    = "fail"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Shell dialects for escape sequence wrapping.
const (
	ShellNone = "none"
	ShellBash = "bash"
	ShellZsh  = "zsh"
)

// noHostnameEnv hides the host name when set to any value, even an empty one.
const noHostnameEnv = "FSH_NO_HOSTNAME"

// Config holds all configuration for fsh.
type Config struct {
	Prompt PromptConfig `mapstructure:"prompt"`
	Render RenderConfig `mapstructure:"render"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Log    LogConfig    `mapstructure:"log"`
}

// PromptConfig controls which segments are produced.
type PromptConfig struct {
	ShowHostname bool   `mapstructure:"show_hostname"`
	PathStyle    string `mapstructure:"path_style" validate:"oneof=dos full home"`
	VCS          bool   `mapstructure:"vcs"`
	OnError      string `mapstructure:"on_error" validate:"oneof=degrade fail"`
}

// RenderConfig controls how segments are turned into text.
type RenderConfig struct {
	Color string `mapstructure:"color" validate:"oneof=auto always never"`
	Shell string `mapstructure:"shell" validate:"oneof=none bash zsh"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorIdentity  string `mapstructure:"color_identity"`
	ColorHost      string `mapstructure:"color_host"`
	ColorLocation  string `mapstructure:"color_location"`
	ColorReference string `mapstructure:"color_reference"`
	ColorOperation string `mapstructure:"color_operation"`
	ColorPositive  string `mapstructure:"color_positive"`
	ColorNegative  string `mapstructure:"color_negative"`
	ColorPrompt    string `mapstructure:"color_prompt"`
	IconBranch     string `mapstructure:"icon_branch"`
	IconStaged     string `mapstructure:"icon_staged"`
	IconUnstaged   string `mapstructure:"icon_unstaged"`
	IconArrow      string `mapstructure:"icon_arrow"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorIdentity:  "#bd93f9",
		ColorHost:      "#ff79c6",
		ColorLocation:  "#50fa7b",
		ColorReference: "#8be9fd",
		ColorOperation: "#ff79c6",
		ColorPositive:  "#50fa7b",
		ColorNegative:  "#ff5555",
		ColorPrompt:    "#f1fa8c",
		IconBranch:     "\ue725",
		IconStaged:     "+",
		IconUnstaged:   "●",
		IconArrow:      "\uf061",
	}
}

// Glyphs returns the configured icons, falling back to the defaults for any
// that are empty.
func (t ThemeConfig) Glyphs() domain.Glyphs {
	g := domain.DefaultGlyphs()
	if t.IconBranch != "" {
		g.Branch = t.IconBranch
	}
	if t.IconStaged != "" {
		g.Staged = t.IconStaged
	}
	if t.IconUnstaged != "" {
		g.Unstaged = t.IconUnstaged
	}
	if t.IconArrow != "" {
		g.Arrow = t.IconArrow
	}
	return g
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptConfig{
			ShowHostname: true,
			PathStyle:    PathStyleDOS,
			VCS:          true,
			OnError:      OnErrorDegrade,
		},
		Render: RenderConfig{
			Color: ColorAuto,
			Shell: ShellNone,
		},
		Theme: DefaultThemeConfig(),
		Log: LogConfig{
			Level: "error",
		},
	}
}

// Load reads the configuration file at configPath, or the default path when
// configPath is empty. A missing file yields the defaults; FSH_* environment
// variables override file values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		var err error
		configPath, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	v := newViper()

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, ok := os.LookupEnv(noHostnameEnv); ok {
		cfg.Prompt.ShowHostname = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the configuration to configPath, or the default path when
// configPath is empty.
func Save(cfg *Config, configPath string) error {
	if configPath == "" {
		var err error
		configPath, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")

	v.Set("prompt.show_hostname", cfg.Prompt.ShowHostname)
	v.Set("prompt.path_style", cfg.Prompt.PathStyle)
	v.Set("prompt.vcs", cfg.Prompt.VCS)
	v.Set("prompt.on_error", cfg.Prompt.OnError)
	v.Set("render.color", cfg.Render.Color)
	v.Set("render.shell", cfg.Render.Shell)
	v.Set("theme.color_identity", cfg.Theme.ColorIdentity)
	v.Set("theme.color_host", cfg.Theme.ColorHost)
	v.Set("theme.color_location", cfg.Theme.ColorLocation)
	v.Set("theme.color_reference", cfg.Theme.ColorReference)
	v.Set("theme.color_operation", cfg.Theme.ColorOperation)
	v.Set("theme.color_positive", cfg.Theme.ColorPositive)
	v.Set("theme.color_negative", cfg.Theme.ColorNegative)
	v.Set("theme.color_prompt", cfg.Theme.ColorPrompt)
	v.Set("theme.icon_branch", cfg.Theme.IconBranch)
	v.Set("theme.icon_staged", cfg.Theme.IconStaged)
	v.Set("theme.icon_unstaged", cfg.Theme.IconUnstaged)
	v.Set("theme.icon_arrow", cfg.Theme.IconArrow)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	if p := os.Getenv("FSH_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".fsh", "config.toml"), nil
}

// newViper returns a viper instance with defaults and FSH_ environment binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("FSH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("prompt.show_hostname", defaults.Prompt.ShowHostname)
	v.SetDefault("prompt.path_style", defaults.Prompt.PathStyle)
	v.SetDefault("prompt.vcs", defaults.Prompt.VCS)
	v.SetDefault("prompt.on_error", defaults.Prompt.OnError)
	v.SetDefault("render.color", defaults.Render.Color)
	v.SetDefault("render.shell", defaults.Render.Shell)
	v.SetDefault("log.level", defaults.Log.Level)

	// Theme defaults
	v.SetDefault("theme.color_identity", defaults.Theme.ColorIdentity)
	v.SetDefault("theme.color_host", defaults.Theme.ColorHost)
	v.SetDefault("theme.color_location", defaults.Theme.ColorLocation)
	v.SetDefault("theme.color_reference", defaults.Theme.ColorReference)
	v.SetDefault("theme.color_operation", defaults.Theme.ColorOperation)
	v.SetDefault("theme.color_positive", defaults.Theme.ColorPositive)
	v.SetDefault("theme.color_negative", defaults.Theme.ColorNegative)
	v.SetDefault("theme.color_prompt", defaults.Theme.ColorPrompt)
	v.SetDefault("theme.icon_branch", defaults.Theme.IconBranch)
	v.SetDefault("theme.icon_staged", defaults.Theme.IconStaged)
	v.SetDefault("theme.icon_unstaged", defaults.Theme.IconUnstaged)
	v.SetDefault("theme.icon_arrow", defaults.Theme.IconArrow)
}
