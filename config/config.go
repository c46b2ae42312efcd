package config

import (
	"github.com/multiversx/mx-chain-core-go/core"
)

// LogsConfig will hold settings related to the logging sub-system
type LogsConfig struct {
	LogLevel       string
	WithLoggerName bool
}

// SchemaConfig will hold the location of the type and function declarations. An empty DeclarationsFile
// selects the built-in fixture declarations.
type SchemaConfig struct {
	DeclarationsFile string
}

// MetricsConfig will hold the settings of the invocation metrics
type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// Config will hold the whole tool configuration
type Config struct {
	Logs    LogsConfig
	Schema  SchemaConfig
	Metrics MetricsConfig
}

// LoadConfig returns a Config by reading it from the provided toml file
func LoadConfig(filepath string) (*Config, error) {
	cfg := &Config{}
	err := core.LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, err
	}

	err = CheckConfig(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
