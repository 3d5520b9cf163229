// Package config provides Viper-based hierarchical configuration: defaults,
// then an optional YAML config file, then SPED_-prefixed environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Parser struct {
		// LayoutOverridesFile optionally extends the built-in layout
		// registry with layouts read from a YAML file.
		LayoutOverridesFile string `mapstructure:"layout_overrides_file" yaml:"layout_overrides_file"`
	} `mapstructure:"parser" yaml:"parser"`

	Consolidation struct {
		ApplyTransitionSchedule bool `mapstructure:"apply_transition_schedule" yaml:"apply_transition_schedule"`
	} `mapstructure:"consolidation" yaml:"consolidation"`

	Report struct {
		Format    string `mapstructure:"format" yaml:"format"`
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig loads the configuration with hierarchical precedence.
// A missing config file is not an error; defaults and env vars apply.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sped-consolidate")
	v.AddConfigPath(".sped-consolidate")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SPED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("parser.layout_overrides_file", "")

	v.SetDefault("consolidation.apply_transition_schedule", false)

	v.SetDefault("report.format", "json")
	v.SetDefault("report.directory", ".")
}

func validateConfig(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", config.Log.Level)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", config.Log.Format)
	}

	switch config.Report.Format {
	case "json", "yaml", "csv", "xlsx":
	default:
		return fmt.Errorf("unknown report format: %s", config.Report.Format)
	}

	return nil
}
