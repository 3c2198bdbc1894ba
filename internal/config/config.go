package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Bindgen  BindgenConfig  `mapstructure:"bindgen"`
	Frontend FrontendConfig `mapstructure:"frontend"`
	Log      LogConfig      `mapstructure:"log"`
}

// BindgenConfig holds header generation configuration.
type BindgenConfig struct {
	Binary      string        `mapstructure:"binary"`
	PackageName string        `mapstructure:"package_name"`
	CrateDir    string        `mapstructure:"crate_dir"`
	OutputDir   string        `mapstructure:"output_dir"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// FrontendConfig holds header parsing configuration.
type FrontendConfig struct {
	PointerWidth int64 `mapstructure:"pointer_width"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New creates a new Config instance from Viper.
func New(v *viper.Viper) *Config {
	var config Config

	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("unable to decode config: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	return &config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Frontend.PointerWidth != 4 && c.Frontend.PointerWidth != 8 {
		return errors.New("frontend.pointer_width must be 4 or 8")
	}

	if c.Bindgen.Timeout < 0 {
		return errors.New("bindgen.timeout must not be negative")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of debug, info, warn, error")
	}

	return nil
}
