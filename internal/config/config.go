package config

import "time"

// Config holds the netkit CLI configuration.
type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	Output      string `mapstructure:"output"`
	HTTPTimeout int    `mapstructure:"http_timeout"` // seconds
	Strict      bool   `mapstructure:"strict"`
}

// Timeout returns the HTTP timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
