package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigString = `
[Logs]
    LogLevel = "*:DEBUG,contract:TRACE"
    WithLoggerName = true

[Schema]
    DeclarationsFile = "./config/declarations.toml"

[Metrics]
    Enabled = true
    Namespace = "fixtures"
`

func TestTomlParser(t *testing.T) {
	t.Parallel()

	cfgExpected := Config{
		Logs: LogsConfig{
			LogLevel:       "*:DEBUG,contract:TRACE",
			WithLoggerName: true,
		},
		Schema: SchemaConfig{
			DeclarationsFile: "./config/declarations.toml",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "fixtures",
		},
	}

	cfg := Config{}
	err := toml.Unmarshal([]byte(testConfigString), &cfg)

	require.Nil(t, err)
	require.Equal(t, cfgExpected, cfg)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.NotNil(t, err)
		assert.Nil(t, cfg)
	})
	t.Run("invalid metrics namespace should error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		content := "[Metrics]\n    Enabled = true\n    Namespace = \"9lives\"\n"
		require.Nil(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		assert.True(t, errors.Is(err, ErrInvalidMetricsNamespace))
		assert.Nil(t, cfg)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.Nil(t, os.WriteFile(path, []byte(testConfigString), 0644))

		cfg, err := LoadConfig(path)
		require.Nil(t, err)
		assert.Equal(t, "fixtures", cfg.Metrics.Namespace)
		assert.True(t, cfg.Logs.WithLoggerName)
	})
}

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config should error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ErrNilConfig, CheckConfig(nil))
	})
	t.Run("disabled metrics ignore the namespace", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, CheckConfig(&Config{}))
	})
	t.Run("enabled metrics without namespace should error", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Metrics: MetricsConfig{Enabled: true}}
		assert.Equal(t, ErrEmptyMetricsNamespace, CheckConfig(cfg))
	})
	t.Run("namespace with invalid characters should error", func(t *testing.T) {
		t.Parallel()

		for _, namespace := range []string{"fix-tures", "1abc", "abc_", "a b"} {
			cfg := &Config{Metrics: MetricsConfig{Enabled: true, Namespace: namespace}}
			assert.True(t, errors.Is(CheckConfig(cfg), ErrInvalidMetricsNamespace), namespace)
		}
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Metrics: MetricsConfig{Enabled: true, Namespace: "scval_tool2"}}
		assert.Nil(t, CheckConfig(cfg))
	})
}
