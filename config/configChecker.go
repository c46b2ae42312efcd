package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilConfig signals that a nil config has been provided
var ErrNilConfig = errors.New("nil config")

// ErrEmptyMetricsNamespace signals that metrics are enabled without a namespace
var ErrEmptyMetricsNamespace = errors.New("empty metrics namespace")

// ErrInvalidMetricsNamespace signals that the metrics namespace is not a valid prometheus name prefix
var ErrInvalidMetricsNamespace = errors.New("invalid metrics namespace")

// CheckConfig will check the loaded configuration for inconsistencies
func CheckConfig(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}

	return checkMetricsConfig(cfg.Metrics)
}

func checkMetricsConfig(cfg MetricsConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if len(cfg.Namespace) == 0 {
		return ErrEmptyMetricsNamespace
	}

	for i, r := range cfg.Namespace {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if isLetter || r == '_' || (isDigit && i > 0) {
			continue
		}

		return fmt.Errorf("%w: %s", ErrInvalidMetricsNamespace, cfg.Namespace)
	}
	if strings.HasSuffix(cfg.Namespace, "_") {
		return fmt.Errorf("%w: %s ends with an underscore", ErrInvalidMetricsNamespace, cfg.Namespace)
	}

	return nil
}
