package config

import (
	"github.com/spf13/viper"
)

const (
	DefaultPort     = "3000"
	DefaultLogLevel = "info"
)

// Config holds all application configuration
type Config struct {
	// Port is kept as given, whitespace included, so the startup line echoes
	// the configured value and a malformed one fails at bind time.
	Port     string
	LogLevel string
}

// NewViper returns a viper instance with the defaults registered and
// environment lookup enabled (port -> PORT, log_level -> LOG_LEVEL).
// Empty environment values count as unset.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log_level", DefaultLogLevel)
	v.AutomaticEnv()
	return v
}

// Load reads configuration from v. Flags bound to v take precedence over the
// environment, which takes precedence over the defaults.
func Load(v *viper.Viper) *Config {
	return &Config{
		Port:     getString(v, "port", DefaultPort),
		LogLevel: getString(v, "log_level", DefaultLogLevel),
	}
}

func getString(v *viper.Viper, key, defaultValue string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}
