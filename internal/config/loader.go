package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. NETKIT_OUTPUT
const EnvPrefix = "NETKIT"

// Loader handles configuration loading from defaults, files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load reads the optional .netkit.yaml from the standard search paths.
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()
	l.setupConfigPaths()
	l.setupEnvVars()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return l.unmarshal()
}

// LoadWithPath loads configuration from a specific file path.
func (l *Loader) LoadWithPath(path string) (*Config, error) {
	l.setDefaults()
	l.setupEnvVars()
	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (l *Loader) setDefaults() {
	l.v.SetDefault("log_level", "info")
	l.v.SetDefault("log_format", "console")
	l.v.SetDefault("output", "text")
	l.v.SetDefault("http_timeout", 30)
	l.v.SetDefault("strict", false)
}

func (l *Loader) setupConfigPaths() {
	l.v.SetConfigName(".netkit")
	l.v.SetConfigType("yaml")

	l.v.AddConfigPath("/etc/netkit")
	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home)
	}
	l.v.AddConfigPath(".")
}

func (l *Loader) setupEnvVars() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
}

func validate(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log_format: %s (must be console or json)", cfg.LogFormat)
	}

	if cfg.Output != "text" && cfg.Output != "json" {
		return fmt.Errorf("invalid output: %s (must be text or json)", cfg.Output)
	}

	if cfg.HTTPTimeout < 1 {
		return fmt.Errorf("http_timeout must be at least 1 second")
	}

	return nil
}
