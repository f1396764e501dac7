// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Layout() LayoutConfig
	Display() DisplayConfig

	// Layout Setters
	SetLayoutBaseSize(float64)
	SetLayoutInheritedSize(float64)

	// Display Setters
	SetDisplayMode(string)
	SetDisplayTopologyFile(string)
}

// Config holds the entire application configuration. Fields stay exported so
// viper can unmarshal into them; callers go through the Interface methods.
type Config struct {
	LoggerCfg  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	LayoutCfg  LayoutConfig  `mapstructure:"layout" yaml:"layout"`
	DisplayCfg DisplayConfig `mapstructure:"display" yaml:"display"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig   { return c.LoggerCfg }
func (c *Config) Layout() LayoutConfig   { return c.LayoutCfg }
func (c *Config) Display() DisplayConfig { return c.DisplayCfg }

// --- Interface Method Implementations (Setters) ---

// Layout Setters
func (c *Config) SetLayoutBaseSize(s float64)      { c.LayoutCfg.BaseSize = s }
func (c *Config) SetLayoutInheritedSize(s float64) { c.LayoutCfg.InheritedSize = s }

// Display Setters
func (c *Config) SetDisplayMode(m string)         { c.DisplayCfg.Mode = m }
func (c *Config) SetDisplayTopologyFile(p string) { c.DisplayCfg.TopologyFile = p }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// LayoutConfig supplies the reference lengths used when resolving relative
// units. BaseSize backs em, InheritedSize backs rem.
type LayoutConfig struct {
	BaseSize      float64 `mapstructure:"base_size" yaml:"base_size"`
	InheritedSize float64 `mapstructure:"inherited_size" yaml:"inherited_size"`
}

// DisplayConfig selects how monitors are composed and, optionally, a
// topology file to load instead of querying the platform.
type DisplayConfig struct {
	Mode         string `mapstructure:"mode" yaml:"mode"`
	TopologyFile string `mapstructure:"topology_file" yaml:"topology_file"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "facet")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Layout --
	// 16px is the conventional UI base size; the inherited size matches it
	// until an ancestor context overrides.
	v.SetDefault("layout.base_size", 16.0)
	v.SetDefault("layout.inherited_size", 16.0)

	// -- Display --
	v.SetDefault("display.mode", "unified")
	v.SetDefault("display.topology_file", "")
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.LayoutCfg.BaseSize <= 0 {
		return fmt.Errorf("layout.base_size must be a positive number of pixels")
	}
	if c.LayoutCfg.InheritedSize <= 0 {
		return fmt.Errorf("layout.inherited_size must be a positive number of pixels")
	}
	switch c.DisplayCfg.Mode {
	case "unified", "separate", "mixed":
	default:
		return fmt.Errorf("display.mode must be one of unified, separate, mixed (got %q)", c.DisplayCfg.Mode)
	}
	return nil
}
